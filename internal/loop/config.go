package loop

import "time"

// Game tuning constants.

// Frame timing
const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
	maxFrameDelta   = 100 * time.Millisecond // Longer stalls are not simulated in one step
)

// Scoring
const (
	PointsPerSecond = 4.0
)

// Player
const (
	playerStartX        = 40.0  // From the left edge of the world
	playerStartHeight   = 200.0 // Above the ground line; the player falls in
	RestartDelaySeconds = 0.5   // Game over screen ignores Start this long
)

// Canvas
const (
	// canvasHeightScale leaves a strip under the ground line so it stays visible.
	canvasHeightScale = 1.1
)

// Inactivity
const (
	inactivityWarnBefore = 30 * time.Second // Warning shown this long before disconnect
)
