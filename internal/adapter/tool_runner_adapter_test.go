package adapter

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) string {
	t.Helper()

	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	return sh
}

func TestLocalToolRunnerAdapter_Run(t *testing.T) {
	sh := requireShell(t)
	runner := NewLocalToolRunnerAdapter()

	t.Run("captures stdout and stderr together", func(t *testing.T) {
		result, err := runner.Run(context.Background(), []string{sh, "-c", "echo out; echo err 1>&2"}, os.Environ())
		require.NoError(t, err)

		assert.Equal(t, "out\nerr\n", string(result.Output))
		assert.Equal(t, 0, result.ExitCode)
	})

	t.Run("non-zero exit is not an error", func(t *testing.T) {
		result, err := runner.Run(context.Background(), []string{sh, "-c", "echo 'x.go:1:1: bad scope'; exit 3"}, nil)
		require.NoError(t, err)

		assert.Equal(t, 3, result.ExitCode)
		assert.Equal(t, "x.go:1:1: bad scope\n", string(result.Output))
	})

	t.Run("environment is passed through", func(t *testing.T) {
		env := []string{"GOROOT=/first", "GOROOT=/second"}

		result, err := runner.Run(context.Background(), []string{sh, "-c", "printf %s \"$GOROOT\""}, env)
		require.NoError(t, err)

		assert.Equal(t, "/second", string(result.Output))
	})
}

func TestLocalToolRunnerAdapter_Run_LaunchFailures(t *testing.T) {
	runner := NewLocalToolRunnerAdapter()

	t.Run("missing binary", func(t *testing.T) {
		_, err := runner.Run(context.Background(), []string{filepath.Join(t.TempDir(), "no-such-tool")}, nil)
		require.Error(t, err)
	})

	t.Run("not executable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tool")
		writeTestFile(t, path, "#!/bin/sh\necho hi\n")

		_, err := runner.Run(context.Background(), []string{path}, nil)
		require.Error(t, err)
	})

	t.Run("empty argv", func(t *testing.T) {
		_, err := runner.Run(context.Background(), nil, nil)
		require.Error(t, err)
	})
}

func TestLocalToolRunnerAdapter_Run_Cancelled(t *testing.T) {
	sh := requireShell(t)
	runner := NewLocalToolRunnerAdapter()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := runner.Run(ctx, []string{sh, "-c", "exec sleep 5"}, nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
