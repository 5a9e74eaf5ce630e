package jsbind

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger. Defaults to a no-op logger so the
// library stays silent unless the embedder opts in.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs a logger for context and pool lifecycle events. Call it
// before creating contexts.
func SetLogger(l *zap.Logger) {
	logger = l
}
