// Package logging builds the leveled logger shared by the CLI and the batch
// runner. Converters never log.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const width = 5

// New returns a logger writing to w at info level, or debug level when debug
// is set.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		TimeFormat:      time.RFC3339,
		Level:           level,
		Prefix:          "textconv",
		ReportTimestamp: true,
	})
	logger.SetStyles(styles())

	return logger
}

// Discard returns a logger that drops everything, for tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// styles are the default styles with level names padded to the same width.
func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Prefix = lipgloss.NewStyle().Bold(true).Faint(true)
	s.Key = lipgloss.NewStyle().Faint(true)
	s.Separator = lipgloss.NewStyle().Faint(true)
	s.Levels = map[log.Level]lipgloss.Style{
		log.DebugLevel: levelStyle(log.DebugLevel, "63"),
		log.InfoLevel:  levelStyle(log.InfoLevel, "86"),
		log.WarnLevel:  levelStyle(log.WarnLevel, "192"),
		log.ErrorLevel: levelStyle(log.ErrorLevel, "204"),
		log.FatalLevel: levelStyle(log.FatalLevel, "134"),
	}
	return s
}

func levelStyle(level log.Level, color string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(strings.ToUpper(level.String())).
		Bold(true).
		MaxWidth(width).
		Foreground(lipgloss.Color(color))
}
