package physics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var allLayers = []Layer{LayerNone, LayerPlayerBullet, LayerObstacle, LayerPlayer}

func TestDefaultCollisionMatrix(t *testing.T) {
	m := DefaultCollisionMatrix()

	permitted := map[LayerPair]bool{
		{LayerPlayerBullet, LayerObstacle}: true,
		{LayerObstacle, LayerPlayerBullet}: true,
		{LayerObstacle, LayerPlayer}:       true,
		{LayerPlayer, LayerObstacle}:       true,
	}
	for _, a := range allLayers {
		for _, b := range allLayers {
			require.Equal(t, permitted[LayerPair{a, b}], m.Permits(a, b), "%s×%s", a, b)
		}
	}
}

func TestCollisionMatrixSymmetric(t *testing.T) {
	m := NewCollisionMatrix(
		LayerPair{LayerPlayer, LayerPlayerBullet},
		LayerPair{LayerNone, LayerPlayer},
		LayerPair{LayerObstacle, LayerObstacle},
	)
	for _, a := range allLayers {
		for _, b := range allLayers {
			require.Equal(t, m.Permits(a, b), m.Permits(b, a), "%s×%s", a, b)
		}
		require.False(t, m.Permits(LayerNone, a), "no_collisions row must stay empty")
	}
	require.True(t, m.Permits(LayerPlayerBullet, LayerPlayer))
	require.True(t, m.Permits(LayerObstacle, LayerObstacle))
}

func TestCollisionMatrixOutOfRange(t *testing.T) {
	m := DefaultCollisionMatrix()
	require.False(t, m.Permits(Layer(9), LayerPlayer))
	require.False(t, m.Permits(LayerObstacle, Layer(200)))

	var zero CollisionMatrix
	require.False(t, zero.Permits(LayerObstacle, LayerPlayer))
}

func TestParseLayer(t *testing.T) {
	for _, l := range allLayers {
		got, ok := ParseLayer(l.String())
		require.True(t, ok)
		require.Equal(t, l, got)
	}
	_, ok := ParseLayer("cactus")
	require.False(t, ok)
	require.Equal(t, "unknown", Layer(42).String())
}

func TestLayerMask(t *testing.T) {
	for _, l := range allLayers {
		require.True(t, AllLayers.Matches(l))
	}

	m := MaskOf(LayerObstacle, LayerPlayerBullet)
	require.True(t, m.Matches(LayerObstacle))
	require.True(t, m.Matches(LayerPlayerBullet))
	require.False(t, m.Matches(LayerPlayer))
	require.False(t, m.Matches(LayerNone))

	require.True(t, MaskOf(LayerNone).Matches(LayerNone))
}
