// Package physics provides axis-aligned collision primitives, the layer
// permission model and the quadtree used for broad-phase queries.
//
// World coordinates grow right (x) and down (y).
package physics

// AABB is an axis-aligned bounding box.
type AABB struct {
	Left, Top, Right, Bottom float64
}

// Overlaps reports whether a and b intersect. Boxes that only touch along an
// edge or a corner overlap; they are separated only on a strict overrun.
func (a AABB) Overlaps(b AABB) bool {
	if a.Right < b.Left || a.Left > b.Right {
		return false
	}
	if a.Top > b.Bottom || a.Bottom < b.Top {
		return false
	}
	return true
}

// Within reports whether a lies entirely inside r, edges included.
func (a AABB) Within(r Rect) bool {
	return a.Left >= r.X && a.Right <= r.X+r.Width &&
		a.Top >= r.Y && a.Bottom <= r.Y+r.Height
}

// Rect is a region given by its top-left corner and size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Bounds returns r as an AABB.
func (r Rect) Bounds() AABB {
	return AABB{Left: r.X, Top: r.Y, Right: r.X + r.Width, Bottom: r.Y + r.Height}
}

// Quadrants splits r into four equal quadrants ordered NW, NE, SW, SE.
func (r Rect) Quadrants() [4]Rect {
	hw, hh := r.Width/2, r.Height/2
	return [4]Rect{
		{X: r.X, Y: r.Y, Width: hw, Height: hh},
		{X: r.X + hw, Y: r.Y, Width: hw, Height: hh},
		{X: r.X, Y: r.Y + hh, Width: hw, Height: hh},
		{X: r.X + hw, Y: r.Y + hh, Width: hw, Height: hh},
	}
}
