// Package ffmpeg wraps invocations of the ffmpeg binary. It knows nothing
// about presets or output naming; it only probes that the binary is usable
// and runs it with a prepared argument list, streaming the tool's own
// diagnostics to the caller's stdio.
package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"recast/internal/logging"
)

// DefaultBinary is resolved from PATH when no override is given.
const DefaultBinary = "ffmpeg"

var (
	// ErrUnavailable reports that the ffmpeg binary is missing or its
	// version probe failed.
	ErrUnavailable = errors.New("ffmpeg unavailable")
	// ErrProcessFailed reports that ffmpeg launched but exited non-zero.
	ErrProcessFailed = errors.New("ffmpeg failed")
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client runs a fixed ffmpeg binary.
type Client struct {
	binary string
	exec   Executor
	logger *slog.Logger
}

// New constructs a client for the given binary. An empty binary selects
// DefaultBinary.
func New(binary string, logger *slog.Logger, opts ...Option) *Client {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = DefaultBinary
	}
	client := &Client{
		binary: binary,
		exec:   commandExecutor{},
		logger: logging.NewComponentLogger(logger, "ffmpeg"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Binary returns the command name the client will execute.
func (c *Client) Binary() string {
	return c.binary
}

// Probe verifies the binary is runnable by executing its version query. Any
// launch failure or non-zero exit is reported as ErrUnavailable. Probe
// touches no files.
func (c *Client) Probe(ctx context.Context) error {
	c.logger.Debug("probing binary", logging.String("command", c.binary+" -version"))
	if err := c.exec.Run(ctx, c.binary, []string{"-version"}, nil, io.Discard, io.Discard); err != nil {
		return fmt.Errorf("%w: %s -version: %v", ErrUnavailable, c.binary, err)
	}
	return nil
}

// Run executes the binary with the prepared argument list, inheriting the
// invoking process's stdin, stdout and stderr so ffmpeg's diagnostics
// stream live and its prompts stay answerable. It blocks until the process
// exits.
func (c *Client) Run(ctx context.Context, args []string) error {
	c.logger.Info(
		"launching transcode",
		logging.String("command", CommandLine(c.binary, args)),
	)
	if err := c.exec.Run(ctx, c.binary, args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		return fmt.Errorf("%w: %v", ErrProcessFailed, err)
	}
	return nil
}

// CommandLine renders a binary and argument list for display. Arguments
// containing whitespace are quoted so filter graphs stay one token.
func CommandLine(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, binary)
	for _, arg := range args {
		if strings.ContainsAny(arg, " \t") {
			parts = append(parts, fmt.Sprintf("%q", arg))
			continue
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", binary, err)
	}
	return nil
}
