package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/casse-briques/internal/core"
	"github.com/vovakirdan/casse-briques/internal/games/breakout"
)

// newTestModel hosts a breakout game on an 800x600 playfield plus a help row.
func newTestModel(t *testing.T) (Model, *breakout.Game) {
	t.Helper()
	g := breakout.New()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 31, CellW: 10, CellH: 20, TickRate: 60}
	return NewModel(g, cfg, Options{HoldTicks: 4}), g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelStartsRound(t *testing.T) {
	m, g := newTestModel(t)

	if m.screen.Height() != 30 {
		t.Fatalf("screen height = %d, expected 30 with the help row", m.screen.Height())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg{})

	if !m.gameState.Playing || g.Phase() != breakout.PhasePlaying {
		t.Errorf("state = %+v, expected a round in progress", m.gameState)
	}
}

func TestModelHeldMovement(t *testing.T) {
	m, g := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})

	start := g.Snapshot().Paddle.X
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for range 6 {
		m = update(t, m, TickMsg{})
	}

	moved := start - g.Snapshot().Paddle.X
	if moved != 4*breakout.PaddleSpeed {
		t.Errorf("paddle moved %v, expected %v for a 4-tick hold", moved, 4*breakout.PaddleSpeed)
	}
}

func TestModelPause(t *testing.T) {
	m, g := newTestModel(t)

	// Pause is ignored outside a round.
	m = update(t, m, runeKey('p'))
	if m.paused {
		t.Fatal("pause should be ignored while idle")
	}

	m = update(t, m, runeKey(' '))
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('p'))
	if !m.paused {
		t.Fatal("expected paused")
	}

	before := g.Snapshot()
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("game advanced while paused")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say so")
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	if g.Snapshot().Tick != after.Tick+1 {
		t.Errorf("Tick = %d, expected %d after resuming", g.Snapshot().Tick, after.Tick+1)
	}
}

func TestModelResize(t *testing.T) {
	m, g := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 41})

	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 100x40", m.screen.Width(), m.screen.Height())
	}
	if vp := g.Snapshot().Viewport; vp.Width != 1000 || vp.Height != 800 {
		t.Errorf("viewport = %+v, expected 1000x800", vp)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelViewHasHelp(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 31 {
		t.Errorf("view has %d lines, expected 31", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "quit") {
		t.Errorf("last line = %q, expected help", lines[len(lines)-1])
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(4, 1, 'x', core.ColorRed)

	out := RenderScreen(s)
	if !strings.HasPrefix(out, "ab   \n") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if !strings.Contains(out, "x") {
		t.Errorf("RenderScreen() lost colored cell: %q", out)
	}
}
