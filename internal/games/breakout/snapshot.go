package breakout

import (
	"math"

	"github.com/vovakirdan/casse-briques/internal/core"
)

// Snapshot is a read-only copy of everything a host needs to draw a frame.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Viewport core.Viewport
	Paddle   core.RectF
	Ball     core.Circle
	BallVX   float64
	BallVY   float64
	Bricks   []Brick // Live bricks in field order
	Score    int
	Lives    int
	Cleared  bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:    g.phase,
		Viewport: g.viewport,
		Bricks:   g.bricks.Live(),
		Score:    g.score,
		Lives:    g.lives,
		Cleared:  g.cleared,
	}
	if g.paddle != nil {
		snap.Paddle = g.paddle.Rect()
	}
	if g.ball != nil {
		snap.Ball = g.ball.Circle()
		snap.BallVX = g.ball.VX
		snap.BallVY = g.ball.VY
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation

	for _, v := range []float64{
		snap.Paddle.X, snap.Paddle.Y,
		snap.Ball.X, snap.Ball.Y, snap.BallVX, snap.BallVY,
	} {
		h = h*31 + math.Float64bits(v)
	}

	for _, b := range snap.Bricks {
		h = h*31 + math.Float64bits(b.Rect.X)
		h = h*31 + math.Float64bits(b.Rect.Y)
	}
	return h
}
