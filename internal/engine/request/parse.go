// Package request turns configure arguments into a domain.BuildRequest.
package request

import (
	"strconv"
	"strings"

	"go.trai.ch/cptools/internal/core/domain"
	"go.trai.ch/zerr"
)

// Recognized flags.
const (
	FlagBuildType  = "--build-type"
	FlagCompiler   = "--compiler"
	FlagTiming     = "--timing"
	FlagPCH        = "--pch"
	FlagPCHRebuild = "--pch-rebuild"
)

// Parse reads flags and bare tokens into a request, starting from the defaults.
// Flags take their value either as --flag=value or as the next argument.
// Unknown flags are returned as warnings; unknown tokens and values are errors.
func Parse(args []string) (domain.BuildRequest, []string, error) {
	req := domain.DefaultBuildRequest()
	var warnings []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			for _, tok := range args[i+1:] {
				if err := applyToken(&req, tok); err != nil {
					return domain.BuildRequest{}, warnings, err
				}
			}
			break
		}

		if !strings.HasPrefix(arg, "-") || arg == "-" {
			if err := applyToken(&req, arg); err != nil {
				return domain.BuildRequest{}, warnings, err
			}
			continue
		}

		name, value, hasValue := strings.Cut(arg, "=")
		switch name {
		case FlagPCHRebuild:
			rebuild := true
			if hasValue {
				b, err := strconv.ParseBool(value)
				if err != nil {
					return domain.BuildRequest{}, warnings, invalidValue(name, value)
				}
				rebuild = b
			}
			req.PCHRebuild = rebuild
			continue
		case FlagBuildType, FlagCompiler, FlagTiming, FlagPCH:
		default:
			warnings = append(warnings, "ignoring unknown flag "+name)
			continue
		}

		if !hasValue {
			if i+1 >= len(args) {
				return domain.BuildRequest{}, warnings, zerr.With(zerr.With(domain.ErrInvalidArgument, "flag", name), "reason", "missing value")
			}
			i++
			value = args[i]
		}

		if err := applyFlag(&req, name, value); err != nil {
			return domain.BuildRequest{}, warnings, err
		}
	}

	return req, warnings, nil
}

func applyFlag(req *domain.BuildRequest, name, value string) error {
	switch name {
	case FlagBuildType:
		bt, err := domain.ParseBuildType(value)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidArgument.Error()), "flag", name)
		}
		req.BuildType = bt
	case FlagCompiler:
		pref, err := domain.ParseCompilerPreference(value)
		if err != nil {
			return err
		}
		req.Compiler = pref
	case FlagTiming:
		on, err := parseOnOff(value)
		if err != nil {
			return invalidValue(name, value)
		}
		req.Timing = on
	case FlagPCH:
		mode, err := domain.ParsePCHMode(value)
		if err != nil {
			return err
		}
		req.PCH = mode
	}
	return nil
}

// applyToken handles the bare build type and compiler tokens.
func applyToken(req *domain.BuildRequest, tok string) error {
	if bt, err := domain.ParseBuildType(tok); err == nil {
		req.BuildType = bt
		return nil
	}
	if pref, err := domain.ParseCompilerPreference(tok); err == nil {
		req.Compiler = pref
		return nil
	}
	return zerr.With(domain.ErrInvalidArgument, "token", tok)
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return strconv.ParseBool(s)
	}
}

func invalidValue(flag, value string) error {
	return zerr.With(zerr.With(domain.ErrInvalidArgument, "flag", flag), "value", value)
}
