package adapter

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"time"
)

// waitDelay bounds how long Wait keeps reading output after the tool was
// killed, in case it left children holding the pipe open.
const waitDelay = 2 * time.Second

// ToolResult is the captured outcome of one analysis tool run.
type ToolResult struct {
	// Output is the combined stdout and stderr, in the order written.
	Output   []byte
	ExitCode int
}

// ToolRunnerAdapter launches the external analysis tool.
type ToolRunnerAdapter interface {
	// Run executes argv[0] with argv[1:] and the complete environment env,
	// blocking until it exits. The returned error is non-nil only when the
	// process could not be started or ctx ended the run; a non-zero exit
	// status is reported through ToolResult.ExitCode.
	Run(ctx context.Context, argv []string, env []string) (ToolResult, error)
}

// LocalToolRunnerAdapter runs the tool with os/exec.
type LocalToolRunnerAdapter struct{}

// NewLocalToolRunnerAdapter constructs a LocalToolRunnerAdapter.
func NewLocalToolRunnerAdapter() *LocalToolRunnerAdapter {
	return &LocalToolRunnerAdapter{}
}

// Run starts the process and waits for it.
func (a *LocalToolRunnerAdapter) Run(ctx context.Context, argv []string, env []string) (ToolResult, error) {
	if len(argv) == 0 {
		return ToolResult{}, errors.New("empty command line")
	}

	// #nosec G204 - argv is built from the configured tool path and validated mode
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = env
	cmd.WaitDelay = waitDelay

	var output bytes.Buffer

	cmd.Stdout = &output
	cmd.Stderr = &output

	slog.Debug("starting analysis tool", "argv", argv)

	if err := cmd.Start(); err != nil {
		return ToolResult{}, err
	}

	err := cmd.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ToolResult{}, ctxErr
	}

	result := ToolResult{Output: output.Bytes(), ExitCode: cmd.ProcessState.ExitCode()}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return result, err
	}

	slog.Debug("analysis tool finished", "exit", result.ExitCode, "bytes", len(result.Output))

	return result, nil
}
