package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/casse-briques/internal/core"
)

// Render draws the current game state to a character screen. World units are
// mapped to cells using the runtime cell size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall() {
		hint := fmt.Sprintf("Need %.0fx%.0f, have %.0fx%.0f",
			MinViewportW, MinViewportH, g.viewport.Width, g.viewport.Height)
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) cellSize() (float64, float64) {
	cw, ch := g.runtime.CellW, g.runtime.CellH
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}
	return cw, ch
}

// cellSpan returns the cells whose centers fall inside [lo, hi).
// Shapes thinner than a cell still get the cell holding their midpoint.
func cellSpan(lo, hi, size float64) (first, last int) {
	first = int(math.Ceil(lo/size - 0.5))
	last = int(math.Ceil(hi/size-0.5)) - 1
	if last < first {
		mid := int(math.Floor((lo + hi) / 2 / size))
		return mid, mid
	}
	return first, last
}

// cellRect converts a world box into a cell rectangle.
func (g *Game) cellRect(r core.RectF) core.Rect {
	cw, ch := g.cellSize()
	x0, x1 := cellSpan(r.X, r.Right(), cw)
	y0, y1 := cellSpan(r.Y, r.Bottom(), ch)
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}

func (g *Game) renderBricks(dst *core.Screen) {
	g.bricks.Each(func(_ BrickID, b Brick) {
		dst.DrawRect(g.cellRect(b.Rect), g.theme.brickGlyph(b.Col), g.theme.BrickColor(b.Row))
	})
}

func (g *Game) renderPaddle(dst *core.Screen) {
	dst.DrawRect(g.cellRect(g.paddle.Rect()), g.theme.PaddleGlyph, g.theme.Paddle)
}

func (g *Game) renderBall(dst *core.Screen) {
	cw, ch := g.cellSize()
	x := int(math.Floor(g.ball.X / cw))
	y := int(math.Floor(g.ball.Y / ch))
	dst.SetColored(x, y, g.theme.BallGlyph, g.theme.Ball)
}

// renderHUD draws the score and lives on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	livesText := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawText(dst.Width()-len(livesText)-1, 0, livesText)
}

// renderOverlay draws the message for the idle and game-over phases.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case PhaseIdle:
		g.drawCenteredBox(dst, "CASSE-BRIQUES", "Press SPACE to start")

	case PhaseGameOver:
		title := "GAME OVER"
		if g.cleared {
			title = "YOU WIN!"
		}
		subtitle := fmt.Sprintf("Score: %d  |  Press SPACE or R to play again", g.score)
		g.drawCenteredBox(dst, title, subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
