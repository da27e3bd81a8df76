// Package shell runs external commands for the build generator adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"
	"sync"

	"github.com/creack/pty"
	"go.trai.ch/cptools/internal/adapters/detector"
	"go.trai.ch/cptools/internal/core/domain"
	"go.trai.ch/cptools/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec, on a pty in terminal mode.
type Executor struct {
	logger ports.Logger
	mode   detector.OutputMode
}

// NewExecutor creates an Executor attaching subprocesses according to mode.
func NewExecutor(logger ports.Logger, mode detector.OutputMode) *Executor {
	return &Executor{
		logger: logger,
		mode:   mode,
	}
}

// Execute runs cmd and waits for it to exit.
func (e *Executor) Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error {
	if cmd == nil || cmd.Name == "" {
		return zerr.With(domain.ErrInvalidArgument, "command", "")
	}

	stdoutLog := &logWriter{emit: e.logger.Info}
	stderrLog := &logWriter{emit: e.logger.Warn}
	if stdout == nil {
		stdout = stdoutLog
	}
	if stderr == nil {
		stderr = stderrLog
	}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // generator binary comes from configuration
	c.Dir = cmd.Dir
	c.Env = resolveEnvironment(os.Environ(), cmd.Env)

	var err error
	if e.mode == detector.ModeTerminal {
		err = runOnPTY(c, stdout)
	} else {
		c.Stdout = stdout
		c.Stderr = stderr
		err = c.Run()
	}

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "command", cmd.Name), "exit_code", exitCode)
	}
	return nil
}

// runOnPTY starts c on a pseudo-terminal. The pty merges both streams into out.
func runOnPTY(c *exec.Cmd, out io.Writer) error {
	ptmx, err := pty.Start(c)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// Reads end with EIO once the child side closes.
		_, _ = io.Copy(out, ptmx)
	}()

	err = c.Wait()
	wg.Wait()
	_ = ptmx.Close()
	return err
}

// logWriter forwards complete lines to emit.
type logWriter struct {
	emit func(string)
	buf  []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Close flushes a trailing partial line.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs terminate lines with \r\n.
	w.emit(strings.TrimSuffix(string(line), "\r"))
}

// resolveEnvironment layers overrides over the inherited environment.
// The result is sorted so subprocesses see a stable order.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	env := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			env[k] = v
		}
	}
	for k, v := range overrides {
		env[k] = v
	}

	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}
