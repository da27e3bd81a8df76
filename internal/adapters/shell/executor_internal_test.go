package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cptools/internal/adapters/shell"
)

func TestResolveEnvironment(t *testing.T) {
	sys := []string{"PATH=/usr/bin", "HOME=/home/cp", "MALFORMED", "CC=cc"}
	got := shell.ResolveEnvironment(sys, map[string]string{"CC": "clang", "CP_EXTRA": "1"})

	assert.Equal(t, []string{
		"CC=clang",
		"CP_EXTRA=1",
		"HOME=/home/cp",
		"PATH=/usr/bin",
	}, got)
}

func TestLogWriter_SplitsLines(t *testing.T) {
	var lines []string
	w := shell.NewLogWriter(func(s string) { lines = append(lines, s) })

	_, err := w.Write([]byte("-- The CXX compiler identification is GNU 13.2.0\r\n-- Config"))
	require.NoError(t, err)
	_, err = w.Write([]byte("uring done\n-- partial"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, []string{
		"-- The CXX compiler identification is GNU 13.2.0",
		"-- Configuring done",
		"-- partial",
	}, lines)
}
