package types

// Logger defines methods for structured logging.
//
// The engine and the policies write every diagnostic through this interface. The
// diagnostic channel is human-readable and never parsed by a parent process.
// All methods accept key-value pairs for structured fields.
type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel.
	// Protocol diagnostics ("Sent Ready", "EOFError", ...) are emitted at this level.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel.
	// The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
	Error(msg string, keysAndValues ...any)

	// Fatal logs a message at FatalLevel and calls os.Exit(1).
	//
	// The engine itself never calls Fatal; it returns errors to the caller which
	// decides the exit status.
	Fatal(msg string, keysAndValues ...any)
}
