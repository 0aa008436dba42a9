package logger

import "sync"

// Levels accepted by Get. Anything else falls back to debug.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	initOnce sync.Once
	shared   *Logger
)

// Get returns the process-wide logger. The level only matters on the first
// call; later callers share the already built instance regardless of what
// they pass.
func Get(level string) *Logger {
	initOnce.Do(func() {
		shared = newZapLogger(level)
	})
	return shared
}
