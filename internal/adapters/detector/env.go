// Package detector inspects the process environment to pick how subprocess output is attached.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how a subprocess is attached to the caller's output.
type OutputMode int

const (
	// ModePipe attaches stdout and stderr as separate pipes.
	ModePipe OutputMode = iota
	// ModeTerminal runs the subprocess on a pseudo-terminal so it keeps its colors.
	ModeTerminal
)

// String returns the lowercase name of the mode.
func (m OutputMode) String() string {
	if m == ModeTerminal {
		return "terminal"
	}
	return "pipe"
}

// DetectEnvironment reports ModeTerminal when stdout is a TTY outside CI.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv)
}

func detect(isTTY bool, getenv func(string) string) OutputMode {
	ci := getenv("CI")
	if !isTTY || ci == "true" || ci == "1" {
		return ModePipe
	}
	return ModeTerminal
}
