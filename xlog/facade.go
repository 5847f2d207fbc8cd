package xlog

// Facade helpers using the global Facility's root logger.
// Usage: xlog.Info().Str("k","v").Msg("hello")

func Trace() *Event { return L().Trace() }
func Debug() *Event { return L().Debug() }
func Info() *Event  { return L().Info() }
func Warn() *Event  { return L().Warn() }
func Error() *Event { return L().Error() }

// Named returns the logger called name from the global Facility.
func Named(name string) *Logger { return Global().Logger(name) }
