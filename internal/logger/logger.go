// Package logger builds the slog.Logger used by both binaries.
package logger

import (
	"io"
	"log/slog"
)

// New returns a logger configured for env, writing to w.
//
//	prod     JSON, INFO and above
//	staging  JSON, DEBUG and above
//	other    human-readable text, DEBUG and above
func New(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	case "staging":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
}
