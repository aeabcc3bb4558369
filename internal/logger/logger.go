package logger

import (
	"io"
	"log"
	"log/slog"
	"os"

	"exlog/internal/config"
)

// MustInitLogger builds the process logger from config: text output for
// local runs, JSON elsewhere, optionally routed to a file.
func MustInitLogger(cfg *config.Config) *slog.Logger {
	var out io.Writer = os.Stdout
	if cfg.Log.FilePath != "" {
		file, err := os.OpenFile(cfg.Log.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal("cannot open log file: ", err)
		}
		out = file
	}

	var handler slog.Handler
	switch cfg.Env {
	case "prod":
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo})
	case "dev":
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}
