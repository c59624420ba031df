package loop

import (
	"fmt"
	"io"
	"time"

	"github.com/tomz197/dino/internal/draw"
	"github.com/tomz197/dino/internal/object"
	"github.com/tomz197/dino/internal/physics"
)

// updateStartState handles the start screen state.
func updateStartState(state *State) {
	if state.Input.Start {
		startGame(state)
	}
}

// updateDeadState handles the game over screen. The world stays frozen.
func updateDeadState(state *State) {
	if state.restartTimer > 0 {
		state.restartTimer -= state.Delta.Seconds()
		return
	}
	if state.Input.Start {
		startGame(state)
	}
}

// startGame starts a new game from scratch.
func startGame(state *State) {
	if state.InputStream != nil {
		state.InputStream.Reset()
	}

	clear(state.Objects)
	state.Objects = state.Objects[:0]
	state.Tree.Clear()
	state.Spawner.Reset()

	state.Player = object.NewPlayer(state.World.X+playerStartX, state.ground()-playerStartHeight)
	state.Score = 0
	state.GameState = GameStatePlaying

	instrumentGameStart()
	state.log.Info("game started")
}

// drawFrame draws the current frame into cw and flushes it.
func drawFrame(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) error {
	draw.ClearScreen(cw)
	canvas.Clear()

	ctx := object.DrawContext{Canvas: canvas}

	// Ground line
	ground := state.ground()
	canvas.DrawLine(
		draw.Point{X: state.World.X, Y: ground},
		draw.Point{X: state.World.X + state.World.Width, Y: ground},
	)

	if state.GameState != GameStateStart {
		for _, o := range state.Objects {
			o.Draw(ctx)
		}
		if state.Player != nil {
			state.Player.Draw(ctx)
		}
	}

	if state.DebugTree {
		state.Tree.Leaves(func(r physics.Rect) {
			canvas.DrawRect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
		})
	}

	if err := canvas.Render(cw); err != nil {
		return err
	}

	// Draw UI overlay (after canvas render so it's on top)
	drawUI(state, cw, canvas)

	return cw.Flush()
}

// drawUI draws the game UI overlay.
func drawUI(state *State, w io.Writer, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if state.inactive {
		drawInactivityScreen(state, w, centerX, centerY)
		return
	}

	switch state.GameState {
	case GameStateStart:
		drawStartScreen(w, centerX, centerY)
	case GameStatePlaying:
		drawPlayingHUD(state, w, termWidth)
	case GameStateDead:
		drawPlayingHUD(state, w, termWidth)
		drawDeadScreen(state, w, centerX, centerY)
	}

	if state.DebugTree {
		drawIndexStats(state, w)
	}
}

// drawStartScreen draws the title screen.
func drawStartScreen(w io.Writer, centerX, centerY int) {
	draw.TextCentered(w, centerX, centerY-4, "D I N O")
	draw.TextCentered(w, centerX, centerY-2, "Press SPACE to Start")

	controls := []string{
		"SPACE / W / Up . . Jump",
		"G  . . . .  Quadtree view",
		"Q  . . . . . . . . . Quit",
	}
	for i, line := range controls {
		draw.TextCentered(w, centerX, centerY+1+i, line)
	}
}

// drawPlayingHUD draws the score in the top right corner.
func drawPlayingHUD(state *State, w io.Writer, termWidth int) {
	scoreText := fmt.Sprintf("Score: %04d", int(state.Score))
	draw.Text(w, termWidth-len(scoreText)-1, 1, scoreText)
}

// drawDeadScreen draws the game over screen.
func drawDeadScreen(state *State, w io.Writer, centerX, centerY int) {
	draw.TextCentered(w, centerX, centerY-2, "GAME OVER")
	draw.TextCentered(w, centerX, centerY, fmt.Sprintf("Score: %04d", int(state.Score)))
	if state.restartTimer <= 0 {
		draw.TextCentered(w, centerX, centerY+2, "Press SPACE to Restart")
	}
}

// drawIndexStats prints what the quadtree holds this frame.
func drawIndexStats(state *State, w io.Writer) {
	stats := fmt.Sprintf("index: %d entities, %d dropped, %d nodes, depth %d",
		len(state.Tree.All()), state.Tree.Dropped(), state.Tree.NodeCount(), state.Tree.MaxLevel())
	draw.Text(w, 2, 1, stats)

	if state.Player == nil || state.GameState == GameStateStart {
		return
	}
	near := state.Tree.QueryRect(state.Player.AABB(), physics.MaskOf(physics.LayerObstacle))
	line := fmt.Sprintf("near player: %d", len(near))
	if _, level, ok := state.Tree.Locate(state.Player); ok {
		line += fmt.Sprintf(", stored at level %d", level)
	}
	draw.Text(w, 2, 2, line)
}

// drawInactivityScreen draws the inactivity warning screen.
func drawInactivityScreen(state *State, w io.Writer, centerX, centerY int) {
	left := state.idleTimeout - time.Since(state.lastInput)
	draw.TextCentered(w, centerX, centerY-2, "INACTIVITY WARNING")
	draw.TextCentered(w, centerX, centerY,
		fmt.Sprintf("You will be disconnected in %d seconds.", int(left.Seconds())))
	draw.TextCentered(w, centerX, centerY+2, "Press any key to continue")
}
