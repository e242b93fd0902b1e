package halfpipe

import (
	"github.com/rs/zerolog"
)

// Tap returns a stage that calls fn with its input and passes the input on
// unchanged.
//
// Tap panics if fn is nil.
func Tap[T any](fn func(T)) func(T) T {
	if fn == nil {
		panic("halfpipe.Tap: fn must not be nil")
	}
	return func(v T) T {
		fn(v)
		return v
	}
}

// Log returns a pass-through stage that logs its input at debug level.
func Log[T any](logger zerolog.Logger, msg string) func(T) T {
	return LogLevel[T](logger, zerolog.DebugLevel, msg)
}

// LogLevel returns a pass-through stage that logs its input at the given level
// under the "value" field.
func LogLevel[T any](logger zerolog.Logger, level zerolog.Level, msg string) func(T) T {
	return Tap(func(v T) {
		logger.WithLevel(level).Interface("value", v).Msg(msg)
	})
}
