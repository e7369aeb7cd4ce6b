package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs the default structured logger: JSON in production, text otherwise.
func Setup(env string) {
	slog.SetDefault(New(env, os.Stdout))
}

// New builds the logger Setup installs, writing to w.
func New(env string, w io.Writer) *slog.Logger {
	if IsProduction(env) {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func IsProduction(env string) bool {
	return env == "production" || env == "prod"
}
