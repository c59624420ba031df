package loop

import (
	"github.com/tomz197/dino/internal/physics"
)

// rebuildIndex clears the tree and reinserts every obstacle, then the player.
// Entities not fully inside the world are left out for this frame.
func rebuildIndex(state *State) {
	state.Tree.Rebuild(state.Objects)
	if state.Player != nil {
		state.Tree.Insert(state.Player)
	}

	dropped := state.Tree.Dropped()
	if dropped > 0 {
		state.log.Debug("entities outside the world not indexed", "dropped", dropped)
	}
	instrumentRebuild(state.Tree.Count(), dropped)
}

// checkCollisions queries the tree just above the player's feet and hands
// every candidate that really overlaps the player to its collision handler.
// The handler itself applies the layer matrix.
func checkCollisions(state *State) {
	p := state.Player
	if p == nil || p.Layer() == physics.LayerNone {
		return
	}

	state.candidates = state.Tree.AppendPoint(state.candidates[:0], p.X, p.Y-1, physics.AllLayers)
	for _, c := range state.candidates {
		// Region queries are a superset; confirm the overlap.
		if c == p || !p.Colliding(&c.Body) {
			continue
		}
		instrumentCollision(p.OnCollision(c, state.Matrix))
	}
}
