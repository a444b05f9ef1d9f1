package logger

import (
	"log/slog"
	"os"
)

// New builds the process logger: JSON output at info level, switched to a
// human-readable debug handler in the dev environment.
func New(env string) *slog.Logger {
	if env == "dev" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
