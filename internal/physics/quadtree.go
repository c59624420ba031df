package physics

// Item is anything the quadtree can index: a comparable reference exposing
// its bounding box and collision layer.
type Item interface {
	comparable
	AABB() AABB
	Layer() Layer
}

// noNode marks a leaf's missing child index.
const noNode = -1

// qtNode is one cell of the tree. Children are stored as four consecutive
// arena slots starting at first, ordered NW, NE, SW, SE.
type qtNode[T Item] struct {
	rect   Rect
	level  int
	first  int
	items  []T
}

func (n *qtNode[T]) leaf() bool {
	return n.first == noNode
}

// Quadtree is a fixed-depth spatial partition over a bounded world rectangle.
//
// The full 4-ary tree is built once by NewQuadtree and its shape never
// changes. Nodes live in a flat arena and refer to each other by index.
// Items are stored at the deepest node whose rectangle fully contains their
// box; the tree only references items, it never owns them.
//
// A Quadtree is not safe for concurrent use. It is meant to be rebuilt and
// queried within a single frame step.
type Quadtree[T Item] struct {
	nodes    []qtNode[T]
	maxLevel int
	dropped  int
}

// NewQuadtree builds the complete tree over bounds down to maxLevel.
// The root is level 0; a negative maxLevel is treated as 0.
func NewQuadtree[T Item](bounds Rect, maxLevel int) *Quadtree[T] {
	maxLevel = max(maxLevel, 0)
	total := ((1 << (2 * (maxLevel + 1))) - 1) / 3

	t := &Quadtree[T]{
		nodes:    make([]qtNode[T], 0, total),
		maxLevel: maxLevel,
	}
	t.nodes = append(t.nodes, qtNode[T]{rect: bounds, first: noNode})

	// Breadth-first, so every node's four children end up contiguous.
	for i := 0; i < len(t.nodes); i++ {
		level := t.nodes[i].level
		if level == maxLevel {
			continue
		}
		first := len(t.nodes)
		for _, q := range t.nodes[i].rect.Quadrants() {
			t.nodes = append(t.nodes, qtNode[T]{rect: q, level: level + 1, first: noNode})
		}
		t.nodes[i].first = first
	}
	return t
}

// Bounds returns the root rectangle.
func (t *Quadtree[T]) Bounds() Rect {
	return t.nodes[0].rect
}

// MaxLevel returns the configured depth of the leaves.
func (t *Quadtree[T]) MaxLevel() int {
	return t.maxLevel
}

// NodeCount returns the number of nodes in the tree.
func (t *Quadtree[T]) NodeCount() int {
	return len(t.nodes)
}

// Insert adds item at the deepest node whose rectangle fully contains its
// box, trying children in NW, NE, SW, SE order. An item straddling a split
// stays at the nearest node that contains it whole. Leaves accept anything
// that reaches them.
//
// If neither a node nor any of its children contains the item it is dropped:
// Insert returns false and the drop is counted by Dropped.
func (t *Quadtree[T]) Insert(item T) bool {
	box := item.AABB()
	idx := 0
	for {
		n := &t.nodes[idx]
		if n.leaf() {
			n.items = append(n.items, item)
			return true
		}

		next := noNode
		for q := n.first; q < n.first+4; q++ {
			if box.Within(t.nodes[q].rect) {
				next = q
				break
			}
		}
		if next != noNode {
			idx = next
			continue
		}

		if box.Within(n.rect) {
			n.items = append(n.items, item)
			return true
		}
		t.dropped++
		return false
	}
}

// Clear empties every node without touching the tree shape and resets the
// drop counter.
func (t *Quadtree[T]) Clear() {
	for i := range t.nodes {
		clear(t.nodes[i].items)
		t.nodes[i].items = t.nodes[i].items[:0]
	}
	t.dropped = 0
}

// Rebuild clears the tree and inserts items in order. It returns the number
// of items that fell outside the tree.
func (t *Quadtree[T]) Rebuild(items []T) int {
	t.Clear()
	for _, item := range items {
		t.Insert(item)
	}
	return t.dropped
}

// Dropped returns how many inserts were rejected since the last Clear.
func (t *Quadtree[T]) Dropped() int {
	return t.dropped
}

// Count returns the number of indexed items.
func (t *Quadtree[T]) Count() int {
	total := 0
	for i := range t.nodes {
		total += len(t.nodes[i].items)
	}
	return total
}

// QueryPoint returns the items stored along the path from the root to the
// cell containing (x, y), filtered by mask. The result is a superset of the
// items near the point: callers must confirm actual overlap.
func (t *Quadtree[T]) QueryPoint(x, y float64, mask LayerMask) []T {
	return t.AppendPoint(nil, x, y, mask)
}

// AppendPoint is QueryPoint appending to dst, for callers reusing a buffer.
func (t *Quadtree[T]) AppendPoint(dst []T, x, y float64, mask LayerMask) []T {
	idx := 0
	for idx != noNode {
		n := &t.nodes[idx]
		dst = appendMatching(dst, n.items, mask)
		if n.leaf() {
			break
		}
		idx = n.childAt(x, y)
	}
	return dst
}

// childAt picks the child quadrant holding (x, y). Quadrant ranges are
// open on the low side and closed on the high side. Points outside every
// range (including those on the node's own left or top edge) yield noNode.
func (n *qtNode[T]) childAt(x, y float64) int {
	r := n.rect
	midX, midY := r.X+r.Width/2, r.Y+r.Height/2
	right, bottom := r.X+r.Width, r.Y+r.Height

	top := y > r.Y && y <= midY
	low := y > midY && y <= bottom

	switch {
	case x > midX && x <= right:
		if low {
			return n.first + 3 // SE
		}
		if top {
			return n.first + 1 // NE
		}
	case x > r.X && x <= midX:
		if low {
			return n.first + 2 // SW
		}
		if top {
			return n.first // NW
		}
	}
	return noNode
}

// QueryRect returns the items of every node whose rectangle overlaps box,
// filtered by mask. Like QueryPoint, the result is a superset.
func (t *Quadtree[T]) QueryRect(box AABB, mask LayerMask) []T {
	var out []T
	stack := []int{0}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[idx]
		if !n.rect.Bounds().Overlaps(box) {
			continue
		}
		out = appendMatching(out, n.items, mask)
		if !n.leaf() {
			stack = append(stack, n.first, n.first+1, n.first+2, n.first+3)
		}
	}
	return out
}

// All returns every indexed item, each exactly once. Order is unspecified.
func (t *Quadtree[T]) All() []T {
	out := make([]T, 0, t.Count())
	for i := range t.nodes {
		out = append(out, t.nodes[i].items...)
	}
	return out
}

// Locate returns the rectangle and level of the node storing item.
func (t *Quadtree[T]) Locate(item T) (Rect, int, bool) {
	for i := range t.nodes {
		for _, it := range t.nodes[i].items {
			if it == item {
				return t.nodes[i].rect, t.nodes[i].level, true
			}
		}
	}
	return Rect{}, 0, false
}

// Leaves calls fn with the rectangle of every leaf, for debug rendering.
func (t *Quadtree[T]) Leaves(fn func(r Rect)) {
	for i := range t.nodes {
		if t.nodes[i].leaf() {
			fn(t.nodes[i].rect)
		}
	}
}

func appendMatching[T Item](dst, items []T, mask LayerMask) []T {
	if mask == AllLayers {
		return append(dst, items...)
	}
	for _, it := range items {
		if mask.Matches(it.Layer()) {
			dst = append(dst, it)
		}
	}
	return dst
}
