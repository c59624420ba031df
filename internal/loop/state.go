package loop

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/dino/internal/config"
	"github.com/tomz197/dino/internal/input"
	"github.com/tomz197/dino/internal/object"
	"github.com/tomz197/dino/internal/physics"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
	GameStateDead                     // Player died, show restart prompt
)

func (g GameState) String() string {
	switch g {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// State holds all state of one game.
type State struct {
	World  physics.Rect                      // Playfield; bottom edge is the ground
	Matrix physics.CollisionMatrix           // Layer pairs allowed to collide
	Tree   *physics.Quadtree[*object.Entity] // Rebuilt every playing frame

	Player  *object.Entity
	Objects []*object.Entity // Obstacles; the player is not in here
	Spawner *object.ObstacleSpawner

	Input       object.Input
	InputStream *input.Stream
	GameState   GameState
	Score       float64
	DebugTree   bool // Draw quadtree leaves and index stats
	Running     bool
	Delta       time.Duration

	restartTimer float64 // Seconds until Start is accepted on the game over screen
	idleTimeout  time.Duration
	lastInput    time.Time
	inactive     bool

	log        *log.Logger
	candidates []*object.Entity // Reused query buffer
}

// NewState creates the state for a game with the given configuration.
// cfg must be valid.
func NewState(cfg config.Game, logger *log.Logger, rng *rand.Rand) *State {
	world := cfg.World.Rect()
	return &State{
		World:     world,
		Matrix:    cfg.Matrix(),
		Tree:      physics.NewQuadtree[*object.Entity](world, cfg.MaxLevel),
		Spawner:   object.NewObstacleSpawner(object.SpawnDelayMin, object.SpawnDelayMax, rng),
		GameState: GameStateStart,
		DebugTree: cfg.DebugTree,
		Running:   true,
		lastInput: time.Now(),
		log:       logger,
	}
}

// UpdateContext creates an UpdateContext from the current state.
func (s *State) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Delta: s.Delta,
		Input: s.Input,
		World: s.World,
	}
}

// ground returns the y coordinate of the ground line.
func (s *State) ground() float64 {
	return s.World.Y + s.World.Height
}
