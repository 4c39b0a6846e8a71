//go:build linux

package dl

import (
	"log/slog"
	"sync/atomic"
)

var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger sets the logger used by dl and by the packages that load their
// libraries through it. Pass nil to go back to slog.Default().
//
// Load failures are logged at Warn, loads and unresolved symbols at Debug.
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

func logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return slog.Default()
}
