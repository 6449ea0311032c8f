package ai

import "sync/atomic"

// debugLoggingEnabled guards per-decision debug logs.
// Set via EnableDebugLogging during startup from the configured log level.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging enables or disables debug logging for the AI.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if debug logging is enabled.
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
