// Package logging sets up the zap logger for the editor. The TUI owns
// the terminal, so logs always go to a file; before Initialize the
// package-level logger is a safe no-op.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L is the process-wide sugared logger. Packages take a named child via
// L.Named("...").
var L *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize builds a production JSON logger writing to path and installs
// it as L. Returns a flush function for deferred use at shutdown.
func Initialize(path string) (func(), error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	L = logger.Sugar()
	return func() { _ = logger.Sync() }, nil
}
