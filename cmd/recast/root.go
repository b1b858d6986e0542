package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"recast/internal/ffmpeg"
	"recast/internal/format"
	"recast/internal/logging"
	"recast/internal/transcode"
)

// invoker joins the startup availability probe with the runner's execution
// surface; ffmpeg.Client satisfies both.
type invoker interface {
	transcode.Invoker
	Probe(ctx context.Context) error
}

// newInvoker builds the ffmpeg invoker the runner executes against. It is a
// package-level variable so tests can override it.
var newInvoker = func(binary string, logger *slog.Logger) invoker {
	return ffmpeg.New(binary, logger)
}

func newRootCommand() *cobra.Command {
	var (
		formatFlag string
		startFlag  string
		endFlag    string
		durFlag    string
		mapFlags   []string
		listFlag   bool
		dryRunFlag bool
		binaryFlag string
		logLevel   string
		logFormat  string
	)

	cmd := &cobra.Command{
		Use:   "recast <input>",
		Short: "Transcode videos into preset formats using ffmpeg",
		Long: `Recast builds and runs an ffmpeg invocation from a fixed preset catalog.

Presets decide the encoder flags and the output file name; recast never
overwrites an existing output. Trim and stream-map values are passed to
ffmpeg verbatim.

Examples:
  recast movie.mov                      # youtube preset, writes movie.mp4
  recast -f gif -s 00:01:00 -d 5 in.mkv # five-second gif from the 1m mark
  recast -f copy -m 0:0 -m 0:2 in.mkv   # remux selected streams losslessly`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listFlag {
				fmt.Fprintln(cmd.OutOrStdout(), renderFormatsTable(cmd.OutOrStdout()))
				return nil
			}
			if len(args) != 1 {
				return errors.New("missing <input> argument")
			}

			logger, err := logging.New(logging.Options{Level: logLevel, Format: logFormat})
			if err != nil {
				return err
			}

			// Verify the tool before anything else, preset selection
			// included; an unusable ffmpeg is fatal regardless of what
			// was asked for.
			inv := newInvoker(binaryFlag, logger)
			if err := inv.Probe(cmd.Context()); err != nil {
				return err
			}

			preset, err := format.Lookup(formatFlag)
			if err != nil {
				return err
			}

			runner := transcode.NewRunner(inv, logger, transcode.WithDryRun(dryRunFlag))

			output, err := runner.Transcode(cmd.Context(), transcode.Request{
				Input:    args[0],
				Preset:   preset,
				Start:    startFlag,
				End:      endFlag,
				Duration: durFlag,
				Maps:     mapFlags,
			})
			if err != nil {
				return err
			}

			if dryRunFlag {
				return nil
			}
			logger.Info("transcode complete", logging.String("output", output))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&formatFlag, "format", "f", "", "Output format: youtube, gif or copy (default youtube)")
	flags.StringVarP(&startFlag, "start", "s", "", "Timestamp to start transcoding from")
	flags.StringVarP(&endFlag, "end", "e", "", "Timestamp at which transcoding should end")
	flags.StringVarP(&durFlag, "duration", "d", "", "How long the transcoded output should be")
	flags.StringArrayVarP(&mapFlags, "map", "m", nil, "Stream selector to include (repeatable, 0:0 is usually video)")
	flags.BoolVar(&listFlag, "formats", false, "List the preset catalog and exit")
	flags.BoolVar(&dryRunFlag, "dry-run", false, "Log the ffmpeg command without executing it")
	flags.StringVar(&binaryFlag, "ffmpeg", "", "Path to the ffmpeg binary (default: resolve from PATH)")
	flags.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", "console", "Log format: console or json")

	return cmd
}
