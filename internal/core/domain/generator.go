package domain

// GeneratorFlags are the resolved switches passed to the build generator.
type GeneratorFlags struct {
	BuildType BuildType
	Timing    bool
	PCH       bool
	LTO       bool
	// ToolchainFile is only set on the first configuration of a directory.
	ToolchainFile string
	// Generator is the CMake generator name (e.g. "Ninja"). Like ToolchainFile,
	// it is only set on the first configuration of a directory.
	Generator string
}

// GenerateSpec is a single generator configuration request.
type GenerateSpec struct {
	SourceDir string
	BuildDir  string
	Flags     GeneratorFlags
}

// Command is an external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds extra variables layered over the inherited environment.
	Env map[string]string
}
