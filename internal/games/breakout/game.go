package breakout

import (
	"github.com/vovakirdan/casse-briques/internal/core"
	"github.com/vovakirdan/casse-briques/internal/registry"
)

// Gameplay constants in world units. A world unit is one pixel of the classic
// 800x600 playfield.
const (
	PaddleWidth   = 100.0
	PaddleHeight  = 10.0
	PaddleSpeed   = 8.0
	PaddleOffsetY = 30.0 // Distance from the paddle top to the bottom edge

	BallRadius = 10.0
	BallSpeed  = 5.0

	BrickRows   = 5
	BrickCols   = 10
	BrickWidth  = 50.0
	BrickHeight = 20.0
	BrickGapX   = 5.0
	BrickGapY   = 5.0

	StartLives = 3

	// Smallest playfield where the grid fits and the ball spawns clear of it.
	MinViewportW = 560.0
	MinViewportH = 520.0
)

// Phase is the top-level state of the game.
type Phase int

const (
	PhaseIdle     Phase = iota // Title screen, waiting for start
	PhasePlaying               // Round in progress
	PhaseGameOver              // Round ended, waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Game implements the brick breaker simulation.
// It is the single owner of every entity; nothing refers back to it.
type Game struct {
	runtime  core.RuntimeConfig
	viewport core.Viewport
	theme    Theme

	phase  Phase
	paddle *Paddle
	ball   *Ball
	bricks *BrickField

	score     int
	lives     int
	cleared   bool // Last round ended with an empty field
	tickCount int

	hits []BrickID // Scratch buffer for deferred removal
}

// New creates a new game using the package theme.
func New() *Game {
	return &Game{
		theme:  CurrentTheme(),
		bricks: NewBrickField(),
		lives:  StartLives,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Casse-Briques"
}

// Reset puts the game on the title screen with a fresh set of entities.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.viewport = runtime.Viewport()
	g.phase = PhaseIdle
	g.tickCount = 0
	g.cleared = false
	g.spawn()
}

// Resize adopts new screen dimensions without restarting the round.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.viewport = runtime.Viewport()
	if g.paddle != nil {
		g.paddle.fit(g.viewport)
	}
}

// spawn resets score, lives and every entity to their canonical state.
func (g *Game) spawn() {
	g.score = 0
	g.lives = StartLives
	g.paddle = NewPaddle(g.viewport)
	g.ball = NewBall(g.viewport)
	g.bricks.Spawn(g.viewport, BrickRows, BrickCols)
}

// startRound is the transition from Idle or GameOver into Playing.
func (g *Game) startRound() {
	g.cleared = false
	g.spawn()
	g.phase = PhasePlaying
}

// tooSmall reports whether the playfield cannot hold the brick grid.
func (g *Game) tooSmall() bool {
	return g.viewport.Width < MinViewportW || g.viewport.Height < MinViewportH
}

// Step advances the game by one frame.
//
// While playing the order is: paddle input, ball movement with wall bounces,
// paddle bounce, bottom-edge miss, brick collisions. A miss ends the frame
// without processing bricks.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.viewport = g.runtime.Viewport()
	if g.tooSmall() {
		return core.StepResult{State: g.State()}
	}

	if g.phase != PhasePlaying {
		if in.Started() {
			g.startRound()
		}
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.paddle.MoveFrom(in, g.viewport)
	g.ball.Advance(g.viewport)
	g.ball.ResolvePaddleCollision(g.paddle)

	if g.ball.Bottom() >= g.viewport.Height {
		g.handleMiss()
		return core.StepResult{State: g.State()}
	}

	g.resolveBricks()

	return core.StepResult{State: g.State()}
}

// handleMiss takes a life. The round ends at zero, otherwise the ball respawns.
func (g *Game) handleMiss() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.phase = PhaseGameOver
		return
	}
	g.ball = NewBall(g.viewport)
}

// resolveBricks tests every live brick against the ball in field order.
// Each hit bounces the shared ball before the next brick is tested, so
// later bricks see the updated velocity. Removal happens after the scan.
func (g *Game) resolveBricks() {
	g.hits = g.hits[:0]
	g.bricks.Each(func(id BrickID, b Brick) {
		if !CheckCollision(b.Rect, g.ball) {
			return
		}
		ResolveBrickHit(g.ball, b.Rect)
		g.hits = append(g.hits, id)
	})

	for _, id := range g.hits {
		if g.bricks.Remove(id) {
			g.score++
		}
	}

	if len(g.hits) > 0 && g.bricks.Len() == 0 {
		g.cleared = true
		g.phase = PhaseGameOver
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Cleared reports whether the last round ended by destroying every brick.
func (g *Game) Cleared() bool {
	return g.cleared
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Playing:  g.phase == PhasePlaying,
		GameOver: g.phase == PhaseGameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
