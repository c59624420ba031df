package physics

// Body is a box with a collision layer. Y is the bottom edge of the box
// (ground convention), so the box spans [X, X+W] × [Y-H, Y].
type Body struct {
	X, Y  float64
	w, h  float64
	layer Layer
}

// NewBody creates a body. Negative sizes are clamped to zero.
func NewBody(x, y, w, h float64, layer Layer) Body {
	b := Body{X: x, Y: y, layer: layer}
	b.SetSize(w, h)
	return b
}

// AABB derives the bounding box from the current position and size.
func (b *Body) AABB() AABB {
	return AABB{Left: b.X, Top: b.Y - b.h, Right: b.X + b.w, Bottom: b.Y}
}

// Colliding reports whether the boxes of b and other overlap.
// A nil other never collides.
func (b *Body) Colliding(other *Body) bool {
	if b == nil || other == nil {
		return false
	}
	return b.AABB().Overlaps(other.AABB())
}

// SetPos moves the body.
func (b *Body) SetPos(x, y float64) {
	b.X = x
	b.Y = y
}

// SetSize resizes the body. Negative sizes are clamped to zero.
func (b *Body) SetSize(w, h float64) {
	b.w = max(w, 0)
	b.h = max(h, 0)
}

func (b *Body) Width() float64 { return b.w }
func (b *Body) Height() float64 { return b.h }

// SetLayer assigns the collision layer. Entities set it once at creation.
func (b *Body) SetLayer(l Layer) {
	b.layer = l
}

// Layer returns the collision layer.
func (b *Body) Layer() Layer {
	return b.layer
}
