// Package transcode orchestrates a single transcode invocation: assemble
// the argument list, refuse to clobber existing output, run the process,
// and surface its exit status. Each invocation is one unit of work; a
// failure at any step is terminal.
package transcode

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"recast/internal/ffmpeg"
	"recast/internal/format"
	"recast/internal/logging"
)

// ErrOutputExists reports a derived output path that already names a
// regular file. The runner never overwrites silently.
var ErrOutputExists = errors.New("output already exists")

// Request carries the resolved parameters for one run. Start, End and
// Duration are verbatim ffmpeg timestamps; empty means unset. End and
// Duration are independent trims and may both be set, ffmpeg's own
// semantics govern precedence. Maps are stream selector tokens in caller
// order.
type Request struct {
	Input    string
	Preset   format.Preset
	Start    string
	End      string
	Duration string
	Maps     []string
}

// Args assembles the ffmpeg argument list in its fixed order: trim flags,
// preset input flags, the input specification, stream maps, preset output
// flags, and the output path as the final token. Trim and decode flags must
// precede -i and stream maps must follow it; ffmpeg is position-sensitive.
func (r Request) Args(output string) []string {
	args := make([]string, 0, 32)
	if r.Start != "" {
		args = append(args, "-ss", r.Start)
	}
	if r.End != "" {
		args = append(args, "-to", r.End)
	}
	if r.Duration != "" {
		args = append(args, "-t", r.Duration)
	}
	args = append(args, r.Preset.InputArgs()...)
	args = append(args, "-i", r.Input)
	for _, m := range r.Maps {
		args = append(args, "-map", m)
	}
	args = append(args, r.Preset.OutputArgs()...)
	args = append(args, output)
	return args
}

// Invoker is the slice of the ffmpeg client the runner needs. Tool
// availability is the caller's concern: the probe runs once at startup,
// before a preset is even selected.
type Invoker interface {
	Binary() string
	Run(ctx context.Context, args []string) error
}

// Option configures the runner.
type Option func(*Runner)

// WithDryRun makes the runner log the assembled command instead of
// executing it. The probe and collision checks still run.
func WithDryRun(dry bool) Option {
	return func(r *Runner) {
		r.dryRun = dry
	}
}

// Runner executes transcode requests against an ffmpeg invoker.
type Runner struct {
	invoker Invoker
	logger  *slog.Logger
	dryRun  bool
}

// NewRunner constructs a runner. A nil logger is replaced with a no-op one.
func NewRunner(invoker Invoker, logger *slog.Logger, opts ...Option) *Runner {
	runner := &Runner{
		invoker: invoker,
		logger:  logging.NewComponentLogger(logger, "transcode"),
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

// Transcode runs one request to completion and returns the derived output
// path. Steps, in order: output derivation, collision check, execution. No
// transcode subprocess is spawned if any earlier step fails.
func (r *Runner) Transcode(ctx context.Context, req Request) (string, error) {
	output, err := req.Preset.OutputPath(req.Input)
	if err != nil {
		return "", err
	}

	if err := checkCollision(output); err != nil {
		return "", err
	}

	args := req.Args(output)
	r.logger.Info(
		"transcode planned",
		logging.String("format", req.Preset.String()),
		logging.String("input", req.Input),
		logging.String("output", output),
	)

	if r.dryRun {
		r.logger.Info(
			"dry run, skipping execution",
			logging.String("command", ffmpeg.CommandLine(r.invoker.Binary(), args)),
		)
		return output, nil
	}

	if err := r.invoker.Run(ctx, args); err != nil {
		return "", err
	}
	return output, nil
}

func checkCollision(output string) error {
	info, err := os.Stat(output)
	switch {
	case err == nil:
		if info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s", ErrOutputExists, output)
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("stat output %s: %w", output, err)
	}
}
