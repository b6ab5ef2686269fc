package statements

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logMu sync.RWMutex
	log   = zap.Must(zap.NewProduction()).Named("statements")
)

// SetLogger replaces the package logger; pass zap.NewNop() to silence the
// package. A nil logger is ignored.
func SetLogger(l *zap.Logger) {
	if l == nil {
		return
	}
	logMu.Lock()
	defer logMu.Unlock()
	log = l.Named("statements")
}

func logger() *zap.Logger {
	logMu.RLock()
	defer logMu.RUnlock()

	return log
}
