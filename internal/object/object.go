package object

import (
	"time"

	"github.com/tomz197/dino/internal/draw"
	"github.com/tomz197/dino/internal/input"
	"github.com/tomz197/dino/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an entity needs during update.
type UpdateContext struct {
	Delta time.Duration
	Input Input
	World physics.Rect // Playfield; its bottom edge is the ground line
}

// Ground returns the y coordinate entities stand on.
func (ctx UpdateContext) Ground() float64 {
	return ctx.World.Y + ctx.World.Height
}

// DrawContext provides drawing resources for entities.
type DrawContext struct {
	Canvas *draw.Canvas // Scaled canvas in world coordinates
}
