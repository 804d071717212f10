// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ik5/audcap/capture"
)

var streamCycles int

var streamCmd = &cobra.Command{
	Use:   "stream [url]",
	Short: "Capture voiceprint and keyword windows from a live stream",
	Long: `Capture windows from a live stream until interrupted.

Each cycle records every configured phase in order (by default a 3 s
voiceprint window, then a 1 s keyword window) and pauses briefly. A window
that cannot be captured is logged and skipped.

The URL argument overrides stream.url from the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStream,
}

func init() {
	streamCmd.Flags().IntVar(&streamCycles, "cycles", -1, "number of cycles to run, 0 for no limit (default from config)")

	rootCmd.AddCommand(streamCmd)
}

func runStream(cmd *cobra.Command, args []string) error {
	url := cfg.Stream.URL
	if len(args) == 1 {
		url = args[0]
	}
	if url == "" {
		return errors.New("no stream URL: pass one or set stream.url")
	}

	cycles := cfg.Stream.Cycles
	if streamCycles >= 0 {
		cycles = streamCycles
	}

	c, backend, err := newCapturer()
	if err != nil {
		return err
	}
	if _, native := backend.(*capture.Native); native {
		return errors.New("live streams need ffmpeg on PATH or --backend ffmpeg")
	}

	handler, err := windowHandler(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := &capture.Loop{
		Capturer:  c,
		URL:       url,
		Phases:    cfg.LoopPhases(),
		Gap:       cfg.Stream.Gap,
		MaxCycles: cycles,
		Handler:   handler,
	}

	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info().Msg("acquisition stopped")
		return nil
	}
	return err
}
