// Package loop provides the main game loop and state management.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/dino/internal/config"
	"github.com/tomz197/dino/internal/draw"
	"github.com/tomz197/dino/internal/input"
)

// Options configures Run. Zero fields get defaults.
type Options struct {
	Config       config.Game       // Must be valid
	Logger       *log.Logger       // Defaults to discarding output
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Rand         *rand.Rand        // Obstacle randomness; seeded from the clock by default
	IdleTimeout  time.Duration     // Ends the game after this long without a key; 0 disables
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits, the input stream ends or the terminal
// cannot be written to.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if err := opts.Config.Validate(); err != nil {
		return err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	state := NewState(opts.Config, logger, rng)
	state.InputStream = input.StartStream(r)
	state.idleTimeout = opts.IdleTimeout

	cw := draw.NewChunkWriter(w)
	draw.HideCursor(cw)
	defer func() {
		draw.ClearScreen(cw)
		draw.ShowCursor(cw)
		cw.Flush()
	}()

	// Canvas maps world coordinates to terminal pixels
	termWidth, termHeight, _ := termSizeFunc()
	canvas := draw.NewScaledCanvas(termWidth, termHeight, state.World.Width, state.World.Height*canvasHeightScale)
	canvas.SetOrigin(state.World.X, state.World.Y)

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.Delta = min(frameStart.Sub(lastTime), maxFrameDelta)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		processInput(state)

		// ===== UPDATE PHASE =====
		updateScreen(canvas, termSizeFunc)

		switch state.GameState {
		case GameStateStart:
			updateStartState(state)
		case GameStatePlaying:
			updatePlayingState(state)
		case GameStateDead:
			updateDeadState(state)
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, cw, canvas); err != nil {
			return fmt.Errorf("drawing frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	return nil
}

// processInput reads all pending input and applies the global keys.
func processInput(state *State) {
	state.Input = input.ReadInput(state.InputStream)

	if state.Input.Quit {
		state.Running = false
		state.log.Debug("quit")
		return
	}

	if state.Input.Debug {
		state.DebugTree = !state.DebugTree
		state.log.Debug("quadtree overlay toggled", "on", state.DebugTree)
	}

	if state.idleTimeout <= 0 {
		return
	}
	if len(state.Input.Pressed) > 0 {
		state.lastInput = time.Now()
		state.inactive = false
		return
	}
	idle := time.Since(state.lastInput)
	switch {
	case idle > state.idleTimeout:
		state.log.Info("disconnecting inactive player", "idle", idle.Round(time.Second))
		state.Running = false
	case idle > state.idleTimeout-inactivityWarnBefore:
		state.inactive = true
	}
}

// updateScreen follows terminal resizes. The previous size is kept when the
// size cannot be read.
func updateScreen(canvas *draw.Canvas, termSizeFunc draw.TermSizeFunc) {
	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return
	}
	canvas.Resize(termWidth, termHeight)
}
