package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants for CLI flag counts.
const (
	VerbosityUser  = 0 // No flags: classifications and errors only
	VerbosityInfo  = 1 // -v: + per-definition progress, loader status
	VerbosityDebug = 2 // -vv: + fingerprints, config details
	VerbosityTrace = 3 // -vvv: + full error stacks
)

// VerbosityToLevel maps verbosity flags (-v, -vv, ...) to zap log levels.
//
//	0 (none)  -> InfoLevel  (status lines are the product of this tool)
//	1 (-v)    -> InfoLevel
//	2+ (-vv)  -> DebugLevel
func VerbosityToLevel(verbosity int) zapcore.Level {
	if verbosity >= VerbosityDebug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// ShouldLogStacks returns true for verbosity >= 3 (-vvv).
// Use this before dumping full error detail (wrapped causes, stack traces).
func ShouldLogStacks(verbosity int) bool {
	return verbosity >= VerbosityTrace
}
