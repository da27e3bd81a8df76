// Package main is the entry point for cptools.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/cptools/cmd/cptools/commands"
	"go.trai.ch/cptools/internal/adapters/detector"
	"go.trai.ch/cptools/internal/app"
	_ "go.trai.ch/cptools/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	provider := func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, provider,
		generatorOutput(detector.DetectEnvironment(), os.Stdout, os.Stderr)))
}

// generatorOutput streams generator output straight to the terminal.
// In pipe mode the output keeps going through the logger line by line.
func generatorOutput(mode detector.OutputMode, stdout, stderr io.Writer) func(*app.App) {
	return func(a *app.App) {
		if mode == detector.ModeTerminal {
			a.WithGeneratorOutput(stdout, stderr)
		}
	}
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
