package cosmic

import "go.uber.org/zap"

// Package-level debug logger. Silent unless the host installs one; widget
// code only logs state-machine transitions at Debug level.
var pkgLogger = zap.NewNop()

// SetLogger installs a logger for debug tracing of focus and drag-and-drop
// transitions. Pass nil to silence logging again.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	pkgLogger = l
}

func logger() *zap.Logger {
	return pkgLogger
}
