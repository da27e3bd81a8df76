package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// stateFieldCount is the number of ':' separated fields in a state record.
const stateFieldCount = 4

// ConfigState is the record of the last successful configuration.
type ConfigState struct {
	BuildType BuildType
	Family    CompilerFamily
	// PCH is the resolved mode, always PCHOn or PCHOff.
	PCH      PCHMode
	BuildDir string
}

// Encode renders the state as build_type:compiler_family:pch_mode:build_dir.
func (s ConfigState) Encode() string {
	return strings.Join([]string{
		string(s.BuildType),
		string(s.Family),
		string(s.PCH),
		s.BuildDir,
	}, ":")
}

// DecodeConfigState parses a record produced by Encode.
// The build directory is the last field so it may itself contain ':'.
func DecodeConfigState(line string) (ConfigState, error) {
	line = strings.TrimSpace(line)
	parts := strings.SplitN(line, ":", stateFieldCount)
	if len(parts) != stateFieldCount {
		return ConfigState{}, zerr.With(ErrStateCorrupt, "record", line)
	}

	bt, err := ParseBuildType(parts[0])
	if err != nil {
		return ConfigState{}, zerr.With(zerr.Wrap(err, ErrStateCorrupt.Error()), "record", line)
	}

	family := CompilerFamily(parts[1])
	if !family.Valid() {
		return ConfigState{}, zerr.With(zerr.With(ErrStateCorrupt, "record", line), "family", parts[1])
	}

	pch := PCHMode(parts[2])
	if pch != PCHOn && pch != PCHOff {
		return ConfigState{}, zerr.With(zerr.With(ErrStateCorrupt, "record", line), "pch", parts[2])
	}

	if parts[3] == "" {
		return ConfigState{}, zerr.With(zerr.With(ErrStateCorrupt, "record", line), "build_dir", "")
	}

	return ConfigState{
		BuildType: bt,
		Family:    family,
		PCH:       pch,
		BuildDir:  parts[3],
	}, nil
}
