package shell_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cptools/internal/adapters/detector"
	"go.trai.ch/cptools/internal/adapters/shell"
	"go.trai.ch/cptools/internal/core/domain"
	"go.trai.ch/cptools/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_Pipes(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl), detector.ModePipe)

	var stdout, stderr bytes.Buffer
	err := executor.Execute(t.Context(), &domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo out; echo err >&2"},
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Execute_LogsWhenNoWriters(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("line1")
	log.EXPECT().Info("line2")
	log.EXPECT().Warn("careful")

	executor := shell.NewExecutor(log, detector.ModePipe)
	err := executor.Execute(t.Context(), &domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo line1; echo line2; echo careful >&2"},
	}, nil, nil)

	require.NoError(t, err)
}

func TestExecutor_Execute_DirAndEnv(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl), detector.ModePipe)
	dir := t.TempDir()

	var stdout bytes.Buffer
	err := executor.Execute(t.Context(), &domain.Command{
		Name: "sh",
		Args: []string{"-c", `printf "%s %s" "$PWD" "$CP_PROBE"`},
		Dir:  dir,
		Env:  map[string]string{"CP_PROBE": "value"},
	}, &stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), " value")
}

func TestExecutor_Execute_ExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl), detector.ModePipe)

	err := executor.Execute(t.Context(), &domain.Command{
		Name: "sh",
		Args: []string{"-c", "exit 3"},
	}, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCommandFailed.Error())
	assert.ErrorContains(t, err, "exit status 3")
}

func TestExecutor_Execute_MissingBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl), detector.ModePipe)

	err := executor.Execute(t.Context(), &domain.Command{Name: "cptools-no-such-binary"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.ErrorContains(t, err, domain.ErrCommandFailed.Error())
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl), detector.ModePipe)

	err := executor.Execute(t.Context(), &domain.Command{}, nil, nil)
	require.ErrorContains(t, err, domain.ErrInvalidArgument.Error())
}

func TestExecutor_Execute_Terminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl), detector.ModeTerminal)

	var out bytes.Buffer
	err := executor.Execute(t.Context(), &domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo hello; echo oops >&2"},
	}, &out, &bytes.Buffer{})
	if err != nil && strings.Contains(err.Error(), "failed to start pty") {
		t.Skip("pseudo-terminals unavailable")
	}

	require.NoError(t, err)
	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, out.String(), "oops")
}
