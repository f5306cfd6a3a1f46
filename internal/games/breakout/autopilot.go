package breakout

import "github.com/vovakirdan/casse-briques/internal/core"

// Autopilot produces input that keeps the paddle under the ball and starts a
// round whenever none is running. Used by the headless runner and tests.
func Autopilot(snap Snapshot) core.InputFrame {
	in := core.NewInputFrame()

	if snap.Phase != PhasePlaying {
		in.Set(core.ActionConfirm)
		return in
	}

	center := snap.Paddle.X + snap.Paddle.W/2
	switch {
	case snap.Ball.X < center-PaddleSpeed:
		in.Set(core.ActionLeft)
	case snap.Ball.X > center+PaddleSpeed:
		in.Set(core.ActionRight)
	}
	return in
}
