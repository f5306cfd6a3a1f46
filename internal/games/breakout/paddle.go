package breakout

import (
	"math"

	"github.com/vovakirdan/casse-briques/internal/core"
)

// Paddle is the player's horizontal-only actor.
type Paddle struct {
	X, Y  float64 // Top-left corner in world units
	W, H  float64
	Speed float64 // World units per tick
}

// NewPaddle creates a paddle centered horizontally near the bottom of the viewport.
func NewPaddle(v core.Viewport) *Paddle {
	return &Paddle{
		X:     (v.Width - PaddleWidth) / 2,
		Y:     v.Height - PaddleOffsetY,
		W:     PaddleWidth,
		H:     PaddleHeight,
		Speed: PaddleSpeed,
	}
}

// MoveFrom applies held movement keys. Left is checked before right, each
// against its own bound, then the paddle is clamped so 0 <= X <= width-W.
func (p *Paddle) MoveFrom(in core.InputFrame, v core.Viewport) {
	if in.Has(core.ActionLeft) && p.X > 0 {
		p.X -= p.Speed
	}
	if in.Has(core.ActionRight) && p.X+p.W < v.Width {
		p.X += p.Speed
	}
	p.X = core.ClampF(p.X, 0, math.Max(0, v.Width-p.W))
}

// Rect returns the paddle bounds.
func (p *Paddle) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.W/2
}

// fit re-pins the paddle to the bottom of a resized viewport.
func (p *Paddle) fit(v core.Viewport) {
	p.Y = v.Height - PaddleOffsetY
	p.X = core.ClampF(p.X, 0, math.Max(0, v.Width-p.W))
}
