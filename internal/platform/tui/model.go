package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/casse-briques/internal/core"
	"github.com/vovakirdan/casse-briques/internal/platform"
	"github.com/vovakirdan/casse-briques/internal/registry"
)

// Options configures the terminal host.
type Options struct {
	HoldTicks int // Ticks a movement key stays held after a press
	Logger    *log.Logger
}

// Model is the Bubble Tea model that hosts a game.
// The bottom terminal row is reserved for the help line.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	input     *platform.HeldInput
	logger    *log.Logger
	gameState core.GameState
	paused    bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg describes the whole terminal; the game gets one row less.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	cfg.ScreenH = max(cfg.ScreenH-1, 0)
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		input:     platform.NewHeldInput(opts.HoldTicks),
		logger:    logger,
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game loaded", "game", m.game.ID(),
		"width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit

	case core.ActionPause:
		if !m.gameState.Playing {
			return m, nil
		}
		m.paused = !m.paused
		m.input.Release()
		m.logger.Debug("pause toggled", "paused", m.paused)

	default:
		if !m.paused {
			m.input.Press(action)
		}
	}

	return m, nil
}

// handleResize adopts the new terminal size without restarting the round.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-1, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	m.game.Resize(m.config)
	m.logger.Debug("resized", "width", m.config.ScreenW, "height", m.config.ScreenH)

	return m, nil
}

// handleTick runs one simulation step unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.input.Frame())
	platform.LogTransition(m.logger, m.gameState, result.State)
	m.gameState = result.State

	if !m.gameState.Playing {
		m.paused = false
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
