package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/tomz197/dino/internal/physics"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfigFile = "DINO_CONFIG"
	EnvMaxLevel   = "DINO_MAX_LEVEL"
	EnvDebugTree  = "DINO_DEBUG_TREE"
	EnvLogLevel   = "DINO_LOG_LEVEL"
)

// MaxTreeLevel caps the quadtree depth. 4^8 leaves is already far more than
// a terminal can show.
const MaxTreeLevel = 8

// World is the rectangle the quadtree covers. The bottom edge is the ground.
type World struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect converts w to a physics rectangle.
func (w World) Rect() physics.Rect {
	return physics.Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}

// Game is the startup configuration of the game core. It is read once and
// not changed afterwards.
type Game struct {
	World      World       `yaml:"world"`
	MaxLevel   int         `yaml:"max_level"`
	Collisions [][2]string `yaml:"collisions"`
	DebugTree  bool        `yaml:"debug_tree"`
	LogLevel   string      `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Game {
	return Game{
		World:    World{X: 0, Y: 0, Width: 800, Height: 300},
		MaxLevel: 2,
		Collisions: [][2]string{
			{physics.LayerPlayerBullet.String(), physics.LayerObstacle.String()},
			{physics.LayerObstacle.String(), physics.LayerPlayer.String()},
		},
		LogLevel: "info",
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// DINO_CONFIG (if set), then individual environment overrides.
func Load() (Game, error) {
	cfg := Default()

	if path := GetEnv(EnvConfigFile, ""); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Game{}, err
		}
	}

	cfg.MaxLevel = GetEnvInt(EnvMaxLevel, cfg.MaxLevel)
	cfg.DebugTree = GetEnvBool(EnvDebugTree, cfg.DebugTree)
	cfg.LogLevel = GetEnv(EnvLogLevel, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return Game{}, err
	}
	return cfg, nil
}

func (g *Game) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, g); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Validate checks the world size, the tree depth and the layer names.
func (g Game) Validate() error {
	if g.World.Width <= 0 || g.World.Height <= 0 {
		return fmt.Errorf("%w: world size %vx%v", ErrInvalid, g.World.Width, g.World.Height)
	}
	if g.MaxLevel < 0 || g.MaxLevel > MaxTreeLevel {
		return fmt.Errorf("%w: max_level %d not in [0, %d]", ErrInvalid, g.MaxLevel, MaxTreeLevel)
	}
	for _, pair := range g.Collisions {
		for _, name := range pair {
			if _, ok := physics.ParseLayer(name); !ok {
				return fmt.Errorf("%w: unknown layer %q", ErrInvalid, name)
			}
		}
	}
	return nil
}

// Matrix builds the collision matrix from the configured pairs. Unknown
// names are skipped; Validate reports them.
func (g Game) Matrix() physics.CollisionMatrix {
	pairs := make([]physics.LayerPair, 0, len(g.Collisions))
	for _, p := range g.Collisions {
		a, okA := physics.ParseLayer(p[0])
		b, okB := physics.ParseLayer(p[1])
		if okA && okB {
			pairs = append(pairs, physics.LayerPair{a, b})
		}
	}
	return physics.NewCollisionMatrix(pairs...)
}
