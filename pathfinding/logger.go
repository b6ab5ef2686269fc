package pathfinding

import (
	"sync"

	"go.uber.org/zap"
)

// The package logger plays the role a module-level logger plays in the
// assembly pipelines this library serves: warnings about malformed inputs
// are visible by default, with no wiring required from the caller.
var (
	logMu sync.RWMutex
	log   = zap.Must(zap.NewProduction()).Named("pathfinding")
)

// SetLogger replaces the package logger; pass zap.NewNop() to silence the
// package. A nil logger is ignored. Call during initialization, before
// searches and extractions are in flight.
func SetLogger(l *zap.Logger) {
	if l == nil {
		return
	}
	logMu.Lock()
	defer logMu.Unlock()
	log = l.Named("pathfinding")
}

func logger() *zap.Logger {
	logMu.RLock()
	defer logMu.RUnlock()

	return log
}
