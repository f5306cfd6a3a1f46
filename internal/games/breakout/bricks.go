// Package breakout implements a single-screen brick breaker: a paddle deflects
// a ball into a grid of bricks while score and lives are tracked across the
// idle, playing and game-over phases.
package breakout

import "github.com/vovakirdan/casse-briques/internal/core"

// BrickID is a stable handle to a brick slot. It stays valid for the whole
// round; removing one brick never changes the handle of another.
type BrickID int

// Brick is a single destructible rectangle of the field.
type Brick struct {
	Rect  core.RectF
	Row   int // Grid row, used for coloring
	Col   int // Grid column
	Alive bool
}

// BrickField is an arena of bricks. Slots are created in bulk by Spawn in
// row-major order and individually flagged dead on hit.
type BrickField struct {
	bricks []Brick
	live   int
}

// NewBrickField creates an empty field.
func NewBrickField() *BrickField {
	return &BrickField{}
}

// Spawn clears the field and lays out a rows x cols grid centered
// horizontally, starting at a quarter of the viewport height.
// The same viewport always yields the same positions.
func (f *BrickField) Spawn(v core.Viewport, rows, cols int) {
	f.Clear()
	if rows <= 0 || cols <= 0 {
		return
	}

	gridW := float64(cols)*BrickWidth + float64(cols-1)*BrickGapX
	startX := (v.Width - gridW) / 2
	startY := v.Height / 4

	f.bricks = make([]Brick, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			f.bricks = append(f.bricks, Brick{
				Rect: core.RectF{
					X: startX + float64(col)*(BrickWidth+BrickGapX),
					Y: startY + float64(row)*(BrickHeight+BrickGapY),
					W: BrickWidth,
					H: BrickHeight,
				},
				Row:   row,
				Col:   col,
				Alive: true,
			})
		}
	}
	f.live = len(f.bricks)
}

// Add places a single brick and returns its handle.
func (f *BrickField) Add(r core.RectF) BrickID {
	f.bricks = append(f.bricks, Brick{Rect: r, Alive: true})
	f.live++
	return BrickID(len(f.bricks) - 1)
}

// Clear removes every brick and invalidates all handles.
func (f *BrickField) Clear() {
	f.bricks = f.bricks[:0]
	f.live = 0
}

// Len returns the number of live bricks.
func (f *BrickField) Len() int {
	return f.live
}

// Get returns the brick for a handle. ok is false for unknown or dead bricks.
func (f *BrickField) Get(id BrickID) (Brick, bool) {
	if id < 0 || int(id) >= len(f.bricks) {
		return Brick{}, false
	}
	b := f.bricks[id]
	return b, b.Alive
}

// Remove kills a brick. It returns false if the brick was already dead.
func (f *BrickField) Remove(id BrickID) bool {
	if id < 0 || int(id) >= len(f.bricks) || !f.bricks[id].Alive {
		return false
	}
	f.bricks[id].Alive = false
	f.live--
	return true
}

// Each calls fn for every live brick in insertion order.
func (f *BrickField) Each(fn func(id BrickID, b Brick)) {
	for i := range f.bricks {
		if f.bricks[i].Alive {
			fn(BrickID(i), f.bricks[i])
		}
	}
}

// Live returns a copy of every live brick in insertion order.
func (f *BrickField) Live() []Brick {
	out := make([]Brick, 0, f.live)
	f.Each(func(_ BrickID, b Brick) {
		out = append(out, b)
	})
	return out
}

// CheckCollision reports whether the ball, approximated by its bounding
// square, overlaps the brick.
func CheckCollision(brick core.RectF, ball *Ball) bool {
	return ball.Circle().IntersectsRect(brick)
}
