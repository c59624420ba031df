package object

import (
	"github.com/tomz197/dino/internal/physics"
)

// Kind is the closed set of entity variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// ObstacleType is the obstacle subtype. It only changes the box size.
type ObstacleType int

const (
	ObstacleNormal ObstacleType = iota
	ObstacleWide
	ObstacleHigh
)

var obstacleSizes = map[ObstacleType][2]float64{
	ObstacleNormal: {25, 35},
	ObstacleWide:   {50, 35},
	ObstacleHigh:   {25, 50},
}

func (t ObstacleType) String() string {
	switch t {
	case ObstacleNormal:
		return "normal"
	case ObstacleWide:
		return "wide"
	case ObstacleHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Player and obstacle tuning, in world units and seconds.
const (
	PlayerWidth   = 30.0
	PlayerHeight  = 50.0
	JumpSpeed     = 600.0  // Initial upward velocity
	Gravity       = 1800.0 // Downward acceleration
	ObstacleSpeed = 250.0  // Leftward velocity
)

// Entity is a box taking part in the game. Behavior is selected by Kind;
// fields that do not apply to a kind stay zero.
type Entity struct {
	physics.Body

	Kind     Kind
	Obstacle ObstacleType // Obstacles only
	Speed    float64      // Horizontal speed, obstacles only
	VY       float64      // Vertical velocity, player only (negative is up)
	Health   int
}

// NewPlayer creates the player with its bottom-left corner at (x, y).
func NewPlayer(x, y float64) *Entity {
	return &Entity{
		Body:   physics.NewBody(x, y, PlayerWidth, PlayerHeight, physics.LayerPlayer),
		Kind:   KindPlayer,
		Health: 1,
	}
}

// NewObstacle creates an obstacle of type t with its bottom-left corner at (x, y).
func NewObstacle(t ObstacleType, x, y float64) *Entity {
	size, ok := obstacleSizes[t]
	if !ok {
		t, size = ObstacleNormal, obstacleSizes[ObstacleNormal]
	}
	return &Entity{
		Body:     physics.NewBody(x, y, size[0], size[1], physics.LayerObstacle),
		Kind:     KindObstacle,
		Obstacle: t,
		Speed:    ObstacleSpeed,
		Health:   1,
	}
}

// Update advances the entity by one frame. Returns true if the entity
// should be removed.
func (e *Entity) Update(ctx UpdateContext) bool {
	switch e.Kind {
	case KindPlayer:
		e.updatePlayer(ctx)
	case KindObstacle:
		e.updateObstacle(ctx)
	}
	return e.Dead()
}

// Grounded reports whether the player stands on the ground line.
func (e *Entity) Grounded(ground float64) bool {
	return e.Y >= ground
}

func (e *Entity) updatePlayer(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()
	ground := ctx.Ground()

	if ctx.Input.Jump && e.Grounded(ground) {
		e.VY = -JumpSpeed
	}

	e.VY += Gravity * dt
	e.Y += e.VY * dt

	if e.Y >= ground {
		e.Y = ground
		e.VY = 0
	}
}

func (e *Entity) updateObstacle(ctx UpdateContext) {
	e.X -= e.Speed * ctx.Delta.Seconds()

	// Fully scrolled off the left edge
	if e.X+e.Width() <= ctx.World.X {
		e.Health = 0
	}
}

// Draw renders the entity's box on the canvas.
func (e *Entity) Draw(ctx DrawContext) {
	if ctx.Canvas == nil {
		return
	}
	box := e.AABB()
	switch e.Kind {
	case KindPlayer:
		ctx.Canvas.FillRect(box.Left, box.Top, box.Right, box.Bottom)
	case KindObstacle:
		ctx.Canvas.DrawRect(box.Left, box.Top, box.Right, box.Bottom)
		// Trunk line so cacti read differently from the player
		mid := (box.Left + box.Right) / 2
		ctx.Canvas.FillRect(mid, box.Top, mid, box.Bottom)
	}
}

// OnCollision is called by the collision dispatcher for an overlapping
// candidate. The response only runs if m permits e's layer against other's.
// Returns whether the response ran.
func (e *Entity) OnCollision(other *Entity, m physics.CollisionMatrix) bool {
	if other == nil || other == e {
		return false
	}
	if !m.Permits(e.Layer(), other.Layer()) {
		return false
	}
	e.handleCollision(other)
	return true
}

func (e *Entity) handleCollision(other *Entity) {
	switch e.Kind {
	case KindPlayer:
		e.Damage(1)
	case KindObstacle:
		// Obstacles are unaffected by what they hit.
	}
}

// Damage subtracts n health. Returns true if the entity died.
func (e *Entity) Damage(n int) bool {
	e.Health -= n
	return e.Dead()
}

// Dead reports whether the entity is out of health and should be swept.
func (e *Entity) Dead() bool {
	return e.Health <= 0
}
