// Package logging builds the structured loggers used across the editor.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

const system = "dockeditor"

// New returns a text logger tagged with component.
func New(component string, level slog.Level, w io.Writer) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(
		slog.String("component", component),
		slog.String("system", system),
	)
}

// ParseLevel maps a config level name to a slog level. Unknown names fall
// back to info and report false.
func ParseLevel(name string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, false
	}
	return level, true
}
