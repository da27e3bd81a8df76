package shell

var ResolveEnvironment = resolveEnvironment

// NewLogWriter exposes the line splitter for tests.
func NewLogWriter(emit func(string)) interface {
	Write(p []byte) (int, error)
	Close() error
} {
	return &logWriter{emit: emit}
}
