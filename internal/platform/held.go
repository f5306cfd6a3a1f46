// Package platform holds pieces shared by every host: input hold tracking
// for keyboards without release events, and logging.
package platform

import "github.com/vovakirdan/casse-briques/internal/core"

// HeldInput turns key presses into per-tick input frames.
//
// Terminals deliver a press and then auto-repeat, but never a release.
// A movement key therefore counts as held for a fixed number of ticks after
// each press; auto-repeat keeps refreshing it while the key is down.
// Other actions are edge-triggered and delivered on the next tick only.
type HeldInput struct {
	hold    int
	left    int // Remaining ticks
	right   int
	pending []core.Action
}

// NewHeldInput creates a tracker that holds movement keys for holdTicks ticks.
func NewHeldInput(holdTicks int) *HeldInput {
	return &HeldInput{hold: max(holdTicks, 1)}
}

// Press records a key press.
func (h *HeldInput) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft:
		h.left = h.hold
		h.right = 0
	case core.ActionRight:
		h.right = h.hold
		h.left = 0
	default:
		h.pending = append(h.pending, a)
	}
}

// Frame returns the input for the next tick and ages held keys.
func (h *HeldInput) Frame() core.InputFrame {
	in := core.NewInputFrame()
	if h.left > 0 {
		in.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		in.Set(core.ActionRight)
		h.right--
	}
	for _, a := range h.pending {
		in.Set(a)
	}
	h.pending = h.pending[:0]
	return in
}

// Release drops every held key and pending action.
func (h *HeldInput) Release() {
	h.left, h.right = 0, 0
	h.pending = h.pending[:0]
}
