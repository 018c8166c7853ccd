package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards all log output. Useful in tests and benchmarks.
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(format string, args ...interface{}) {}
