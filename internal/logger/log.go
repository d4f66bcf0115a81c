// Package logger installs the process-wide slog JSON handler and exposes
// thin level helpers so callers don't import log/slog everywhere.
package logger

import (
	"io"
	"log/slog"
	"os"

	"dooo/internal/config"

	"gopkg.in/lumberjack.v2"
)

func Init(cfg config.LogConfig) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	h := slog.NewJSONHandler(output(cfg), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
	Info("logger initialized", "level", level.String(), "file", cfg.File)
}

// output picks stdout, a rotating file, or both. With nothing configured
// logs still go to stdout.
func output(cfg config.LogConfig) io.Writer {
	var file io.Writer
	if cfg.File != "" {
		file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		}
	}
	switch {
	case file != nil && cfg.Console:
		return io.MultiWriter(os.Stdout, file)
	case file != nil:
		return file
	default:
		return os.Stdout
	}
}

func Info(msg string, args ...any)  { slog.Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Error(msg, args...) }
func Debug(msg string, args ...any) { slog.Debug(msg, args...) }
