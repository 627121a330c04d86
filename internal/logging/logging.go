// Package logging sets up the structured file logger. The terminal is owned by
// the UI while the game runs, so log output always goes to a file.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/samdwyer/glyphcrawl/internal/config"
)

// New creates a logger writing to the rotating file named in cfg.
// An empty file name discards all output.
func New(cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	logger.SetOutput(output(cfg))

	return logger, nil
}

func output(cfg config.LogConfig) io.Writer {
	if cfg.File == "" {
		return io.Discard
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
