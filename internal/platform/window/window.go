// Package window hosts the brick breaker in a desktop window with Ebitengine.
// Unlike the terminal hosts it sees real key releases, so movement keys are
// read as held state every tick and one world unit maps to one pixel.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/casse-briques/internal/core"
	"github.com/vovakirdan/casse-briques/internal/games/breakout"
	"github.com/vovakirdan/casse-briques/internal/platform"
)

// Default window size, the classic playfield.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

var background = color.RGBA{R: 16, G: 16, B: 24, A: 255}

// Options configures the window host.
type Options struct {
	TickRate int
	Logger   *log.Logger
}

// Host adapts a breakout game to ebiten.Game.
type Host struct {
	game   *breakout.Game
	config core.RuntimeConfig
	theme  breakout.Theme
	logger *log.Logger

	state  core.GameState
	paused bool
}

// New creates a host with the default window size.
func New(game *breakout.Game, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  DefaultWidth,
		ScreenH:  DefaultHeight,
		CellW:    1,
		CellH:    1,
		TickRate: opts.TickRate,
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	game.Reset(cfg)
	return &Host{
		game:   game,
		config: cfg,
		theme:  breakout.CurrentTheme(),
		logger: logger,
		state:  game.State(),
	}
}

// Update reads the keyboard and advances the game by one tick.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		h.logger.Info("quit", "score", h.state.Score)
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if h.state.Playing {
			h.paused = !h.paused
		}
	}
	if h.paused {
		return nil
	}

	result := h.game.Step(readInput())
	platform.LogTransition(h.logger, h.state, result.State)
	h.state = result.State
	return nil
}

// readInput samples the keyboard for one tick.
func readInput() core.InputFrame {
	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.Set(core.ActionConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	return in
}

// Draw paints the current snapshot.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	snap := h.game.Snapshot()

	if snap.Viewport.Width < breakout.MinViewportW || snap.Viewport.Height < breakout.MinViewportH {
		ebitenutil.DebugPrintAt(screen, "Window too small", 10, 10)
		return
	}

	for _, b := range snap.Bricks {
		fillRect(screen, b.Rect, h.theme.BrickColor(b.Row))
	}
	fillRect(screen, snap.Paddle, h.theme.Paddle)
	vector.DrawFilledCircle(screen, float32(snap.Ball.X), float32(snap.Ball.Y), float32(snap.Ball.R),
		h.theme.Ball.RGB(), true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d", snap.Lives), int(snap.Viewport.Width)-70, 10)

	cx, cy := int(snap.Viewport.Width/2), int(snap.Viewport.Height/2)
	switch {
	case h.paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", cx-18, cy)
	case snap.Phase == breakout.PhaseIdle:
		ebitenutil.DebugPrintAt(screen, "CASSE-BRIQUES", cx-39, cy-20)
		ebitenutil.DebugPrintAt(screen, "Press SPACE to start", cx-60, cy)
	case snap.Phase == breakout.PhaseGameOver:
		title := "GAME OVER"
		if snap.Cleared {
			title = "YOU WIN!"
		}
		ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3, cy-20)
		ebitenutil.DebugPrintAt(screen, "Press SPACE or R to play again", cx-90, cy)
	}
}

func fillRect(screen *ebiten.Image, r core.RectF, c core.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.RGB(), false)
}

// Layout makes one world unit one pixel and resizes the game with the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.config.ScreenW || outsideHeight != h.config.ScreenH {
		h.config.ScreenW, h.config.ScreenH = outsideWidth, outsideHeight
		h.game.Resize(h.config)
		h.logger.Debug("resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(game *breakout.Game, opts Options) error {
	h := New(game, opts)

	ebiten.SetWindowSize(DefaultWidth, DefaultHeight)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(h.config.TickRate)

	h.logger.Info("game loaded", "game", game.ID(), "backend", "window")
	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
