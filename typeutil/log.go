package typeutil

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger replaces the logger used to report lenient coercions, date format detection and class registration.
// All events are logged at debug level. Passing nil restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Named("typeutil"))
}

func log() *zap.Logger {
	return logger.Load()
}
