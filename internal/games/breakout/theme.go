package breakout

import (
	"fmt"

	"github.com/vovakirdan/casse-briques/internal/config"
	"github.com/vovakirdan/casse-briques/internal/core"
)

// Theme controls glyphs and colors used when rendering to a character screen.
type Theme struct {
	PaddleGlyph rune
	BallGlyph   rune
	BrickGlyphs []rune // Alternated by column so adjacent bricks stay distinct
	Paddle      core.Color
	Ball        core.Color
	Rows        []core.Color // Brick color per row, cycling
}

// DefaultTheme returns the built-in look.
func DefaultTheme() Theme {
	return Theme{
		PaddleGlyph: '▀',
		BallGlyph:   '●',
		BrickGlyphs: []rune{'█', '▓'},
		Paddle:      core.ColorWhite,
		Ball:        core.ColorRed,
		Rows: []core.Color{
			core.ColorRed,
			core.ColorOrange,
			core.ColorYellow,
			core.ColorGreen,
			core.ColorCyan,
		},
	}
}

// theme stores the theme set via CLI/config for games created afterwards.
var theme = DefaultTheme()

// SetTheme sets the theme used by games created with New.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the theme set with SetTheme.
func CurrentTheme() Theme {
	return theme
}

// ThemeFromConfig builds a theme from its YAML form. Empty fields keep defaults.
func ThemeFromConfig(cfg config.ThemeConfig) (Theme, error) {
	t := DefaultTheme()

	if cfg.Paddle != "" {
		c, err := core.ParseColor(cfg.Paddle)
		if err != nil {
			return t, fmt.Errorf("theme paddle: %w", err)
		}
		t.Paddle = c
	}
	if cfg.Ball != "" {
		c, err := core.ParseColor(cfg.Ball)
		if err != nil {
			return t, fmt.Errorf("theme ball: %w", err)
		}
		t.Ball = c
	}
	if len(cfg.Rows) > 0 {
		rows := make([]core.Color, 0, len(cfg.Rows))
		for i, name := range cfg.Rows {
			c, err := core.ParseColor(name)
			if err != nil {
				return t, fmt.Errorf("theme row %d: %w", i, err)
			}
			rows = append(rows, c)
		}
		t.Rows = rows
	}
	if glyphs := []rune(cfg.BrickGlyphs); len(glyphs) > 0 {
		t.BrickGlyphs = glyphs
	}
	return t, nil
}

// BrickColor returns the color of a brick row.
func (t Theme) BrickColor(row int) core.Color {
	if len(t.Rows) == 0 {
		return core.ColorDefault
	}
	return t.Rows[row%len(t.Rows)]
}

func (t Theme) brickGlyph(col int) rune {
	if len(t.BrickGlyphs) == 0 {
		return '#'
	}
	return t.BrickGlyphs[col%len(t.BrickGlyphs)]
}
