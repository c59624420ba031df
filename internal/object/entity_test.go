package object

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tomz197/dino/internal/draw"
	"github.com/tomz197/dino/internal/physics"
)

var testWorld = physics.Rect{X: 0, Y: 0, Width: 800, Height: 300}

const frame = time.Second / 60

func ctxWith(in Input, delta time.Duration) UpdateContext {
	return UpdateContext{Delta: delta, Input: in, World: testWorld}
}

func TestPlayerFallsToGround(t *testing.T) {
	p := NewPlayer(40, 100)

	for range 60 {
		require.False(t, p.Update(ctxWith(Input{}, frame)))
	}
	require.Equal(t, 300.0, p.Y)
	require.Zero(t, p.VY)
	require.True(t, p.Grounded(300))
}

func TestPlayerJump(t *testing.T) {
	p := NewPlayer(40, 300)

	p.Update(ctxWith(Input{Jump: true}, frame))
	require.Less(t, p.Y, 300.0)
	require.Less(t, p.VY, 0.0)

	// Holding jump in the air does not jump again.
	apex := p.Y
	for range 120 {
		vy := p.VY
		p.Update(ctxWith(Input{Jump: true}, frame))
		if p.Y < 300 {
			require.Greater(t, p.VY, vy)
		}
		apex = min(apex, p.Y)
		if p.Y == 300 {
			break
		}
	}

	require.Equal(t, 300.0, p.Y, "lands again")
	require.InDelta(t, JumpSpeed*JumpSpeed/(2*Gravity), 300-apex, 10)
}

func TestObstacleScrollsAndDies(t *testing.T) {
	o := NewObstacle(ObstacleWide, 800, 299)
	require.Equal(t, 50.0, o.Width())
	require.Equal(t, 35.0, o.Height())
	require.Equal(t, physics.LayerObstacle, o.Layer())

	require.False(t, o.Update(ctxWith(Input{}, time.Second)))
	require.Equal(t, 550.0, o.X)

	// Still partly visible.
	o.X = -49
	require.False(t, o.Update(ctxWith(Input{}, 0)))

	o.X = -45
	require.True(t, o.Update(ctxWith(Input{}, 20*time.Millisecond)), "right edge reached the left border")
	require.True(t, o.Dead())
}

func TestObstacleSizes(t *testing.T) {
	tests := []struct {
		typ  ObstacleType
		w, h float64
	}{
		{ObstacleNormal, 25, 35},
		{ObstacleWide, 50, 35},
		{ObstacleHigh, 25, 50},
		{ObstacleType(42), 25, 35},
	}
	for _, test := range tests {
		t.Run(test.typ.String(), func(t *testing.T) {
			o := NewObstacle(test.typ, 0, 0)
			require.Equal(t, test.w, o.Width())
			require.Equal(t, test.h, o.Height())
		})
	}
}

func TestOnCollision(t *testing.T) {
	matrix := physics.DefaultCollisionMatrix()

	t.Run("player hit by obstacle dies", func(t *testing.T) {
		p := NewPlayer(40, 300)
		o := NewObstacle(ObstacleNormal, 50, 299)
		require.True(t, p.OnCollision(o, matrix))
		require.True(t, p.Dead())
	})

	t.Run("obstacle ignores hits", func(t *testing.T) {
		p := NewPlayer(40, 300)
		o := NewObstacle(ObstacleNormal, 50, 299)
		require.True(t, o.OnCollision(p, matrix))
		require.False(t, o.Dead())
	})

	t.Run("no_collisions layer never responds", func(t *testing.T) {
		p := NewPlayer(40, 300)
		p.SetLayer(physics.LayerNone)
		o := NewObstacle(ObstacleNormal, 50, 299)
		require.False(t, p.OnCollision(o, matrix))
		require.False(t, p.Dead())
	})

	t.Run("pair not in matrix", func(t *testing.T) {
		p := NewPlayer(40, 300)
		other := NewPlayer(45, 300)
		require.False(t, p.OnCollision(other, matrix))
		require.False(t, p.Dead())
	})

	t.Run("empty matrix", func(t *testing.T) {
		p := NewPlayer(40, 300)
		o := NewObstacle(ObstacleNormal, 50, 299)
		require.False(t, p.OnCollision(o, physics.CollisionMatrix{}))
	})

	t.Run("nil and self", func(t *testing.T) {
		p := NewPlayer(40, 300)
		require.False(t, p.OnCollision(nil, matrix))
		require.False(t, p.OnCollision(p, matrix))
		require.False(t, p.Dead())
	})
}

func TestEntityDraw(t *testing.T) {
	canvas := draw.NewScaledCanvas(80, 15, 800, 300)
	p := NewPlayer(40, 300)
	p.Draw(DrawContext{Canvas: canvas})

	// Player spans x 40..70, y 250..300 → columns 4..7, sub-pixel rows 25..30.
	require.True(t, canvas.Pixel(5, 27))
	require.False(t, canvas.Pixel(20, 27))

	// No canvas is a no-op.
	p.Draw(DrawContext{})
}
