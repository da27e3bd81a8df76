package ports

// FileSystem abstracts the filesystem operations of the engine and the cache inspector.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether path exists.
	Exists(path string) (bool, error)
	// ReadFile returns the contents of path.
	ReadFile(path string) ([]byte, error)
	// Glob returns the sorted paths matching pattern. No match is not an error.
	Glob(pattern string) ([]string, error)
	// RemoveAll deletes path and everything below it.
	RemoveAll(path string) error
}
