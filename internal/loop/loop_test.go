package loop

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/dino/internal/config"
	"github.com/tomz197/dino/internal/draw"
)

func fixedTermSize(w, h int) draw.TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func TestRunQuits(t *testing.T) {
	var out bytes.Buffer
	err := Run(bufio.NewReader(strings.NewReader("q")), &out, Options{
		Config:       config.Default(),
		TermSizeFunc: fixedTermSize(80, 24),
		Rand:         rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	s := out.String()
	require.True(t, strings.HasPrefix(s, "\033[?25l"), "hides the cursor first")
	require.True(t, strings.HasSuffix(s, "\033[?25h"), "restores the cursor last")
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.MaxLevel = -1

	err := Run(bufio.NewReader(strings.NewReader("")), io.Discard, Options{Config: cfg})
	require.ErrorIs(t, err, config.ErrInvalid)
}

var errBroken = errors.New("broken pipe")

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errBroken }

func TestRunReturnsWriteError(t *testing.T) {
	err := Run(bufio.NewReader(strings.NewReader("")), brokenWriter{}, Options{
		Config:       config.Default(),
		TermSizeFunc: fixedTermSize(80, 24),
	})
	require.ErrorIs(t, err, errBroken)
}

func TestDrawFrame(t *testing.T) {
	var out bytes.Buffer
	cw := draw.NewChunkWriter(&out)
	canvas := draw.NewScaledCanvas(80, 24, 800, 300*canvasHeightScale)

	state := newPlayingState(t)
	state.Score = 12.7
	require.NoError(t, drawFrame(state, cw, canvas))
	require.Contains(t, out.String(), "Score: 0012")
	require.NotContains(t, out.String(), "index:")

	out.Reset()
	state.DebugTree = true
	rebuildIndex(state)
	require.NoError(t, drawFrame(state, cw, canvas))
	require.Contains(t, out.String(), "index: 1 entities, 0 dropped, 21 nodes, depth 2")
	require.Contains(t, out.String(), "stored at level")
}

func TestDrawStartAndDeadScreens(t *testing.T) {
	var out bytes.Buffer
	cw := draw.NewChunkWriter(&out)
	canvas := draw.NewScaledCanvas(80, 24, 800, 300*canvasHeightScale)

	state := NewState(config.Default(), log.New(io.Discard), rand.New(rand.NewSource(1)))
	require.NoError(t, drawFrame(state, cw, canvas))
	require.Contains(t, out.String(), "Press SPACE to Start")

	out.Reset()
	startGame(state)
	gameOver(state)
	require.NoError(t, drawFrame(state, cw, canvas))
	require.Contains(t, out.String(), "GAME OVER")
	require.NotContains(t, out.String(), "Restart", "prompt hidden during the restart delay")
}
