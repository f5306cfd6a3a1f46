package platform

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/casse-briques/internal/core"
)

// NewLogger creates the host logger. Interactive hosts own the terminal, so
// an empty path discards everything; otherwise entries are appended to the
// file. The returned close function is never nil.
func NewLogger(path, level string) (*log.Logger, func() error, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf("platform: log level: %w", err)
		}
		lvl = parsed
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("platform: open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "briques",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

// LogTransition logs what changed between two consecutive game states.
// Games stay silent, so hosts derive events by comparing states.
func LogTransition(logger *log.Logger, prev, next core.GameState) {
	if logger == nil {
		return
	}

	switch {
	case !prev.Playing && next.Playing:
		logger.Info("round started", "lives", next.Lives)
	case prev.Playing && next.GameOver:
		if next.Lives > 0 {
			logger.Info("field cleared", "score", next.Score, "lives", next.Lives)
		} else {
			logger.Info("out of lives", "score", next.Score)
		}
	case prev.Playing && next.Playing && next.Lives < prev.Lives:
		logger.Info("life lost", "lives", next.Lives, "score", next.Score)
	}

	if prev.Playing && next.Score > prev.Score {
		logger.Debug("bricks destroyed", "count", next.Score-prev.Score, "score", next.Score)
	}
}
