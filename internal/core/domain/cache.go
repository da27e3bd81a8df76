package domain

// CacheMetadata is what the build generator recorded in a profile directory.
type CacheMetadata struct {
	// Configured is false when the directory is missing or holds no generator cache.
	Configured bool
	// CompilerID is the structured compiler identity, e.g. "GNU" or "AppleClang".
	CompilerID string
	// CompilerPath is the compiler executable recorded in the cache.
	CompilerPath string
	// ToolchainFile is the toolchain file reference recorded in the cache.
	ToolchainFile string
	// SystemToolchainFile is the toolchain included by the generator's system record.
	SystemToolchainFile string
}

// Family resolves the cached compiler family. The structured compiler id wins;
// the compiler path is only consulted when no id was recorded.
func (m CacheMetadata) Family() (CompilerFamily, bool) {
	if m.CompilerID != "" {
		if f, ok := FamilyFromCompilerID(m.CompilerID); ok {
			return f, true
		}
	}
	return InferFamilyFromPath(m.CompilerPath)
}

// Staleness is the verdict on a profile directory.
type Staleness struct {
	// Reason is empty when the directory can be reused.
	Reason string
	// Configured reports whether the directory held a generator cache when inspected.
	Configured bool
}

// Stale reports whether the directory must be recreated.
func (s Staleness) Stale() bool {
	return s.Reason != ""
}
