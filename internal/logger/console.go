package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

// ConsoleHandler prints records as single prefixed lines without timestamps
type ConsoleHandler struct {
	writer  io.Writer
	verbose bool
}

// NewConsoleHandler creates a console handler writing to w. Debug records are
// only printed when verbose is set.
func NewConsoleHandler(w io.Writer, verbose bool) *ConsoleHandler {
	return &ConsoleHandler{writer: w, verbose: verbose}
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	// Trace level never goes to console
	if level <= LevelTrace {
		return false
	}

	if !h.verbose && level == slog.LevelDebug {
		return false
	}

	return true
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var prefix string
	var c *color.Color

	switch r.Level {
	case slog.LevelError:
		prefix = "ERROR: "
		c = color.New(color.FgRed)
	case slog.LevelWarn:
		prefix = "WARNING: "
		c = color.New(color.FgYellow)
	case slog.LevelDebug:
		prefix = "VERBOSE: "
		c = color.New(color.FgCyan)
	}

	line := prefix + formatMessage(r)

	if c != nil {
		_, _ = c.Fprintln(h.writer, line)
		return nil
	}

	_, _ = fmt.Fprintln(h.writer, line)
	return nil
}

// formatMessage appends key=value attributes to the record message
func formatMessage(r slog.Record) string {
	if r.NumAttrs() == 0 {
		return r.Message
	}

	attrs := make([]string, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
		return true
	})

	return r.Message + " " + strings.Join(attrs, " ")
}

func (h *ConsoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *ConsoleHandler) WithGroup(_ string) slog.Handler {
	return h
}
