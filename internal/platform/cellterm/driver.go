// Package cellterm hosts a game directly on a tcell screen, without the
// Bubble Tea runtime. It is an alternative terminal backend that writes
// cells in place instead of re-rendering whole frames as strings.
package cellterm

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/casse-briques/internal/core"
	"github.com/vovakirdan/casse-briques/internal/platform"
	"github.com/vovakirdan/casse-briques/internal/registry"
)

// Options configures the tcell host.
type Options struct {
	HoldTicks int
	Logger    *log.Logger
}

// Driver runs a game loop on a tcell screen.
type Driver struct {
	screen tcell.Screen
	game   registry.Game
	buf    *core.Screen
	config core.RuntimeConfig
	input  *platform.HeldInput
	logger *log.Logger
	styles map[core.Color]tcell.Style

	state  core.GameState
	paused bool
}

// Open creates and initializes the terminal screen.
// The caller must call Fini on it when done.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("cellterm: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("cellterm: init screen: %w", err)
	}
	return screen, nil
}

// New creates a driver for an initialized screen. The screen size replaces
// cfg.ScreenW and cfg.ScreenH.
func New(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, opts Options) *Driver {
	cfg.ScreenW, cfg.ScreenH = screen.Size()
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := &Driver{
		screen: screen,
		game:   game,
		buf:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		input:  platform.NewHeldInput(opts.HoldTicks),
		logger: logger,
		styles: make(map[core.Color]tcell.Style),
	}
	for _, c := range core.Colors() {
		d.styles[c] = styleFor(c)
	}

	game.Reset(cfg)
	d.state = game.State()
	return d
}

func styleFor(c core.Color) tcell.Style {
	if c == core.ColorDefault {
		return tcell.StyleDefault
	}
	rgb := c.RGB()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B)))
}

// Run drives the game until the player quits or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(d.config.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// PollEvent returns nil once the screen is finalized.
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	d.logger.Info("game loaded", "game", d.game.ID(), "backend", "tcell",
		"width", d.config.ScreenW, "height", d.config.ScreenH)
	d.draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !d.handleEvent(ev) {
				d.logger.Info("quit", "score", d.state.Score)
				return nil
			}

		case <-ticker.C:
			d.tick()
			d.draw()
		}
	}
}

// handleEvent applies one terminal event. It returns false on quit.
func (d *Driver) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch action := keyAction(ev); action {
		case core.ActionQuit:
			return false
		case core.ActionPause:
			if d.state.Playing {
				d.paused = !d.paused
				d.input.Release()
			}
		default:
			if !d.paused {
				d.input.Press(action)
			}
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		d.config.ScreenW, d.config.ScreenH = w, h
		d.buf.Resize(w, h)
		d.game.Resize(d.config)
		d.screen.Sync()
		d.logger.Debug("resized", "width", w, "height", h)
	}
	return true
}

// keyAction maps a tcell key event to a game action.
func keyAction(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEnter:
		return core.ActionConfirm
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case ' ':
			return core.ActionConfirm
		case 'r':
			return core.ActionRestart
		case 'p':
			return core.ActionPause
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// tick runs one simulation step unless paused.
func (d *Driver) tick() {
	if d.paused {
		return
	}
	result := d.game.Step(d.input.Frame())
	platform.LogTransition(d.logger, d.state, result.State)
	d.state = result.State
	if !d.state.Playing {
		d.paused = false
	}
}

// draw renders the game into the cell buffer and copies changed cells to
// the terminal.
func (d *Driver) draw() {
	d.game.Render(d.buf)
	if d.paused {
		d.buf.DrawTextCentered(d.buf.Height()/2, " PAUSED ")
	}

	for y := range d.buf.Height() {
		for x := range d.buf.Width() {
			cell := d.buf.GetCell(x, y)
			style, ok := d.styles[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			d.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	d.screen.Show()
}
