package physics

// Layer is a collision category.
type Layer uint8

const (
	LayerNone         Layer = iota // never collides
	LayerPlayerBullet              // shots fired by the player
	LayerObstacle                  // obstacles crossing the screen
	LayerPlayer                    // the player avatar

	layerCount
)

var layerNames = [layerCount]string{
	LayerNone:         "no_collisions",
	LayerPlayerBullet: "player_bullet",
	LayerObstacle:     "obstacle",
	LayerPlayer:       "player",
}

func (l Layer) String() string {
	if l < layerCount {
		return layerNames[l]
	}
	return "unknown"
}

// ParseLayer maps a layer name (as printed by String) to its Layer.
func ParseLayer(name string) (Layer, bool) {
	for i, n := range layerNames {
		if n == name {
			return Layer(i), true
		}
	}
	return LayerNone, false
}

// LayerMask selects a set of layers, one bit per layer.
// The zero mask, AllLayers, matches every layer.
type LayerMask uint32

const AllLayers LayerMask = 0

// MaskOf builds a mask matching exactly the given layers.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= 1 << l
	}
	return m
}

// Matches reports whether l is selected by m.
func (m LayerMask) Matches(l Layer) bool {
	return m == AllLayers || m&(1<<l) != 0
}

// CollisionMatrix answers whether two layers may collide. It is symmetric by
// construction and the LayerNone row and column are always false.
// The zero value permits nothing.
type CollisionMatrix struct {
	cells [layerCount][layerCount]bool
}

// LayerPair is an unordered pair of layers permitted to collide.
type LayerPair [2]Layer

// NewCollisionMatrix builds a matrix permitting exactly the given pairs.
// Pairs involving LayerNone or unknown layers are ignored.
func NewCollisionMatrix(pairs ...LayerPair) CollisionMatrix {
	var m CollisionMatrix
	for _, p := range pairs {
		a, b := p[0], p[1]
		if a == LayerNone || b == LayerNone || a >= layerCount || b >= layerCount {
			continue
		}
		m.cells[a][b] = true
		m.cells[b][a] = true
	}
	return m
}

// DefaultCollisionMatrix permits player_bullet×obstacle and obstacle×player.
func DefaultCollisionMatrix() CollisionMatrix {
	return NewCollisionMatrix(
		LayerPair{LayerPlayerBullet, LayerObstacle},
		LayerPair{LayerObstacle, LayerPlayer},
	)
}

// Permits reports whether a and b may collide.
func (m CollisionMatrix) Permits(a, b Layer) bool {
	if a >= layerCount || b >= layerCount {
		return false
	}
	return m.cells[a][b]
}
