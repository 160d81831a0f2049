package memolog

import (
	"go.uber.org/zap"
)

// NewConsole builds a debug-level, console-encoded logger writing to stdout.
func NewConsole() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{"stdout"}
	return cfg.Build()
}
