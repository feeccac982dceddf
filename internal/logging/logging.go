// Package logging builds the zap logger used by finmetrics subcommands.
// Nothing is ever logged to stdout, which carries command output only.
package logging

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level   string // debug, info, warn, error
	File    string // optional log file
	Verbose bool   // log to stderr at debug level
}

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// New returns a logger for cfg. With neither Verbose nor File set it returns a
// no-op logger.
func New(cfg Config) (*zap.Logger, error) {
	var outputs []string
	if cfg.Verbose {
		outputs = append(outputs, "stderr")
	}
	if f := strings.TrimSpace(cfg.File); f != "" {
		outputs = append(outputs, f)
	}
	if len(outputs) == 0 {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = lvl
	}
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = outputs
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Verbose {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// L returns the process-wide logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Set replaces the process-wide logger and returns a function restoring the
// previous one.
func Set(l *zap.Logger) func() {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	prev := global
	global = l
	mu.Unlock()
	return func() {
		mu.Lock()
		global = prev
		mu.Unlock()
	}
}

// Sync flushes the process-wide logger. Errors from syncing stderr are
// expected on some platforms and ignored.
func Sync() {
	_ = L().Sync()
}
