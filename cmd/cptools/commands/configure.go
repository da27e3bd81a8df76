package commands

import (
	"github.com/spf13/cobra"
)

const configureLong = `Configure the build profile selected by the given flags and tokens.

Flags:
  --build-type <Debug|Release|Sanitize>
  --compiler <gcc|clang|auto>
  --timing <on|off>
  --pch <on|off|auto>
  --pch-rebuild

Bare tokens select a build type (debug, release, sanitize) or a compiler (gcc, clang, auto).
Unknown flags are ignored with a warning.`

func (c *CLI) newConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "configure [flags] [tokens...]",
		Aliases: []string{"conf"},
		Short:   "Select a toolchain and configure its build profile",
		Long:    configureLong,
		// Arguments are parsed by the configurator so unknown flags only warn.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if arg == "--" {
					break
				}
				if arg == "-h" || arg == "--help" {
					return cmd.Help()
				}
			}
			return c.app.Configure(cmd.Context(), args)
		},
	}
}
