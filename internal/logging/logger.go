package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger installs a tint handler on stdout as the default slog logger.
func InitLogger() {
	slog.SetDefault(NewLogger(os.Stdout, false))
}

// InitFileLogger sends the default logger to w without colour, for programs
// that own the terminal.
func InitFileLogger(w io.Writer) {
	slog.SetDefault(NewLogger(w, true))
}

func NewLogger(w io.Writer, noColor bool) *slog.Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      levelFromEnv(),
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    noColor,
	})

	return slog.New(handler)
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
