package object

import (
	"math/rand"
)

// Default spawn delay range in seconds.
const (
	SpawnDelayMin = 1.0
	SpawnDelayMax = 2.0
)

// ObstacleSpawner emits obstacles at the right edge of the world after
// random delays.
type ObstacleSpawner struct {
	minDelay, maxDelay float64
	timer              float64 // Seconds until the next spawn
	rng                *rand.Rand
}

// NewObstacleSpawner creates a spawner whose delays are uniform in
// [minDelay, maxDelay). The first Update spawns immediately.
func NewObstacleSpawner(minDelay, maxDelay float64, rng *rand.Rand) *ObstacleSpawner {
	if minDelay < 0 {
		minDelay = 0
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &ObstacleSpawner{
		minDelay: minDelay,
		maxDelay: maxDelay,
		rng:      rng,
	}
}

// Reset makes the next Update spawn immediately.
func (s *ObstacleSpawner) Reset() {
	s.timer = 0
}

// Update advances the timer and returns a new obstacle when it expires,
// or nil.
func (s *ObstacleSpawner) Update(ctx UpdateContext) *Entity {
	s.timer -= ctx.Delta.Seconds()
	if s.timer > 0 {
		return nil
	}
	s.timer = s.nextDelay()

	// One unit above the ground line, entering from the right edge
	x := ctx.World.X + ctx.World.Width
	return NewObstacle(s.pickType(), x, ctx.Ground()-1)
}

func (s *ObstacleSpawner) nextDelay() float64 {
	return s.minDelay + s.rng.Float64()*(s.maxDelay-s.minDelay)
}

// pickType draws a subtype: 60% normal, 20% wide, 20% high.
func (s *ObstacleSpawner) pickType() ObstacleType {
	percent := s.rng.Intn(99) + 1
	switch {
	case percent <= 60:
		return ObstacleNormal
	case percent <= 80:
		return ObstacleWide
	default:
		return ObstacleHigh
	}
}
