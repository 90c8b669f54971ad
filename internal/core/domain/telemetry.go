package domain

// LogLevel tags a line written to a flavor's progress vertex.
// The values line up with log/slog so adapters can convert directly.
type LogLevel int

const (
	// LogLevelInfo tags progress such as cloning or the picked version.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn tags recoverable trouble with a repository.
	LogLevelWarn LogLevel = 4
	// LogLevelError tags the reason a flavor could not be resolved.
	LogLevelError LogLevel = 8
)

// String returns the tag printed in front of a vertex log line.
func (l LogLevel) String() string {
	switch {
	case l >= LogLevelError:
		return "ERROR"
	case l >= LogLevelWarn:
		return "WARN"
	default:
		return "INFO"
	}
}

// IsProblem reports whether lines of this level go to the error stream.
func (l LogLevel) IsProblem() bool {
	return l >= LogLevelWarn
}
