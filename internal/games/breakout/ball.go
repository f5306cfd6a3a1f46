package breakout

import (
	"math"

	"github.com/vovakirdan/casse-briques/internal/core"
)

// Ball is a free-moving circle. Each velocity component keeps the magnitude
// BallSpeed for the whole round; bounces only change its sign.
type Ball struct {
	X, Y   float64 // Center
	VX, VY float64 // Velocity per tick
	R      float64
}

// NewBall creates a ball at the canonical spawn point: the viewport center,
// heading down and to the right.
func NewBall(v core.Viewport) *Ball {
	return &Ball{
		X:  v.Width / 2,
		Y:  v.Height / 2,
		VX: BallSpeed,
		VY: BallSpeed,
		R:  BallRadius,
	}
}

// Advance moves the ball by its velocity and reflects it off the viewport
// edges. Only the velocity changes, so the ball may overlap an edge for one
// frame. The reflected component always points away from the penetrated edge.
func (b *Ball) Advance(v core.Viewport) {
	b.X += b.VX
	b.Y += b.VY

	switch {
	case b.X-b.R < 0:
		b.VX = math.Abs(b.VX)
	case b.X+b.R >= v.Width:
		b.VX = -math.Abs(b.VX)
	}

	switch {
	case b.Y-b.R < 0:
		b.VY = math.Abs(b.VY)
	case b.Y+b.R >= v.Height:
		b.VY = -math.Abs(b.VY)
	}
}

// ResolvePaddleCollision bounces the ball off the paddle when its bottom edge
// reaches the paddle top while its center is within the paddle span.
// The paddle imparts no horizontal spin.
func (b *Ball) ResolvePaddleCollision(p *Paddle) bool {
	if b.Y+b.R < p.Y {
		return false
	}
	if b.X < p.X || b.X > p.X+p.W {
		return false
	}

	b.VY = -b.VY
	b.Y = p.Y - b.R
	return true
}

// Circle returns the ball shape.
func (b *Ball) Circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.R}
}

// Bottom returns the y-coordinate of the ball's lowest point.
func (b *Ball) Bottom() float64 {
	return b.Y + b.R
}
