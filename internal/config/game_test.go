package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tomz197/dino/internal/physics"
)

func TestDefaultMatrixMatchesPhysicsDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, physics.DefaultCollisionMatrix(), cfg.Matrix())
	require.Equal(t, physics.Rect{Width: 800, Height: 300}, cfg.World.Rect())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dino.yaml")
	data := []byte(`
world:
  x: 0
  y: 0
  width: 640
  height: 480
max_level: 3
collisions:
  - [player, obstacle]
  - [player, player_bullet]
log_level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvMaxLevel, "4")
	t.Setenv(EnvDebugTree, "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, World{Width: 640, Height: 480}, cfg.World)
	require.Equal(t, 4, cfg.MaxLevel)
	require.True(t, cfg.DebugTree)
	require.Equal(t, "debug", cfg.LogLevel)

	m := cfg.Matrix()
	require.True(t, m.Permits(physics.LayerObstacle, physics.LayerPlayer))
	require.True(t, m.Permits(physics.LayerPlayerBullet, physics.LayerPlayer))
	require.False(t, m.Permits(physics.LayerPlayerBullet, physics.LayerObstacle))
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Game)
	}{
		{"zero width", func(g *Game) { g.World.Width = 0 }},
		{"negative height", func(g *Game) { g.World.Height = -1 }},
		{"negative depth", func(g *Game) { g.MaxLevel = -1 }},
		{"too deep", func(g *Game) { g.MaxLevel = MaxTreeLevel + 1 }},
		{"unknown layer", func(g *Game) { g.Collisions = append(g.Collisions, [2]string{"player", "cactus"}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("DINO_TEST_INT", "12")
	t.Setenv("DINO_TEST_BAD", "twelve")
	t.Setenv("DINO_TEST_BOOL", "1")

	require.Equal(t, 12, GetEnvInt("DINO_TEST_INT", 3))
	require.Equal(t, 3, GetEnvInt("DINO_TEST_BAD", 3))
	require.Equal(t, 3, GetEnvInt("DINO_TEST_UNSET", 3))
	require.True(t, GetEnvBool("DINO_TEST_BOOL", false))
	require.False(t, GetEnvBool("DINO_TEST_BAD", false))
	require.Equal(t, "x", GetEnv("DINO_TEST_UNSET", "x"))
}
