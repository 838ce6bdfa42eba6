package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ironsheep/channel-isolate/internal/imaging"
	"github.com/ironsheep/channel-isolate/internal/pipeline"
)

func newRootCmd(logger *zap.Logger) *cobra.Command {
	var channel string

	cmd := &cobra.Command{
		Use:   "channel-isolate [flags] <input> <output>",
		Short: "Keep one color channel of an image and leave grays untouched",
		Long: `channel-isolate reads an image, keeps only the selected color channel
of every colored pixel and writes the result. Pixels whose red, green
and blue values are equal (black, white and grays) are left unchanged.

The output format follows the output file extension (png, jpg, gif, bmp, tif).`,
		Example:       "  channel-isolate -c green ghost.png ghost_green.png",
		Args:          cobra.ExactArgs(2),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logger, pipeline.Options{
				Input:   args[0],
				Output:  args[1],
				Channel: channel,
			})
		},
	}

	cmd.Flags().StringVarP(&channel, "channel", "c", imaging.DefaultChannel.String(),
		"channel to keep: red, green or blue (case-insensitive)")
	cmd.SetVersionTemplate(versionString())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func run(logger *zap.Logger, opts pipeline.Options) error {
	res, err := pipeline.Run(opts)
	if err != nil {
		return err
	}

	logger.Info("processed image saved",
		zap.String("input", opts.Input),
		zap.String("input_format", res.Input.Format),
		zap.String("output", res.Output),
		zap.Stringer("channel", res.Channel),
		zap.Int("width", res.Width),
		zap.Int("height", res.Height),
		zap.Int("isolated", res.Stats.Isolated),
		zap.Int("preserved", res.Stats.Preserved),
	)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func versionString() string {
	return fmt.Sprintf("channel-isolate %s\n  Build time: %s\n  Git commit: %s\n", Version, BuildTime, GitCommit)
}

func printVersion(w io.Writer) {
	fmt.Fprint(w, versionString())
}
