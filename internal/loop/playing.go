package loop

// updatePlayingState runs one frame of gameplay.
//
// The index is rebuilt from positions at the start of the frame, before
// anything moves, and the collision query runs after the updates.
func updatePlayingState(state *State) {
	ctx := state.UpdateContext()

	if o := state.Spawner.Update(ctx); o != nil {
		state.Objects = append(state.Objects, o)
	}

	rebuildIndex(state)

	state.Player.Update(ctx)
	for _, o := range state.Objects {
		o.Update(ctx)
	}

	checkCollisions(state)

	if state.Player.Dead() {
		gameOver(state)
	} else {
		state.Score += PointsPerSecond * ctx.Delta.Seconds()
	}

	sweepDead(state)
}

// sweepDead removes dead obstacles. Runs after the frame's last query so the
// tree never refers to a removed entity while it is used.
func sweepDead(state *State) {
	kept := state.Objects[:0] // reuse backing array
	for _, o := range state.Objects {
		if !o.Dead() {
			kept = append(kept, o)
		}
	}
	clear(state.Objects[len(kept):])
	state.Objects = kept
}

// gameOver switches to the game over screen.
func gameOver(state *State) {
	state.GameState = GameStateDead
	state.restartTimer = RestartDelaySeconds
	state.log.Info("game over", "score", int(state.Score))
}
