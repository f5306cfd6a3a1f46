package breakout

import "github.com/vovakirdan/casse-briques/internal/core"

// Hit records which brick edges a ball crossed.
// Vertical and horizontal sides are independent, so a corner hit sets one of
// each and bounces the ball diagonally.
type Hit struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool
}

// Vertical reports a top or bottom hit.
func (h Hit) Vertical() bool {
	return h.Top || h.Bottom
}

// Horizontal reports a left or right hit.
func (h Hit) Horizontal() bool {
	return h.Left || h.Right
}

// ClassifyHit compares the ball's current center with its position one tick
// ahead to find the edges it is crossing.
func ClassifyHit(brick core.RectF, b *Ball) Hit {
	nx := b.X + b.VX
	ny := b.Y + b.VY

	return Hit{
		Top:    ny+b.R >= brick.Y && b.Y <= brick.Y,
		Bottom: ny-b.R <= brick.Bottom() && b.Y >= brick.Bottom(),
		Left:   nx+b.R >= brick.X && b.X <= brick.X,
		Right:  nx-b.R <= brick.Right() && b.X >= brick.Right(),
	}
}

// ResolveBrickHit reflects the ball off a brick it overlaps and moves it just
// outside the crossed edges. Vertical correction is applied first (top wins
// over bottom), then horizontal (left wins over right).
func ResolveBrickHit(b *Ball, brick core.RectF) Hit {
	hit := ClassifyHit(brick, b)

	if hit.Vertical() {
		b.VY = -b.VY
	}
	if hit.Horizontal() {
		b.VX = -b.VX
	}

	switch {
	case hit.Top:
		b.Y = brick.Y - b.R
	case hit.Bottom:
		b.Y = brick.Bottom() + b.R
	}
	switch {
	case hit.Left:
		b.X = brick.X - b.R
	case hit.Right:
		b.X = brick.Right() + b.R
	}

	return hit
}
