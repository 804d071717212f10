// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ik5/audcap/capture"
)

var (
	filePhase  string
	fileWindow time.Duration
)

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Capture one window from a media file",
	Long: `Decode the start of a media file into one mono window and print its
stats. Short files are padded with silence. Use this to check enrollment
recordings before registering a voice.

Fails when nothing could be decoded.`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	fileCmd.Flags().StringVar(&filePhase, "phase", "voiceprint", "phase name reported with the window")
	fileCmd.Flags().DurationVar(&fileWindow, "window", 0, "window length (default capture.window from config)")

	rootCmd.AddCommand(fileCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	path := args[0]

	window := cfg.Capture.Window
	if fileWindow > 0 {
		window = fileWindow
	}

	c, _, err := newCapturer()
	if err != nil {
		return err
	}

	handler, err := windowHandler(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	rate := cfg.Capture.TargetRate
	dst := make([]float32, capture.SamplesFor(rate, window))
	n, err := c.CaptureFile(cmd.Context(), path, dst)
	if err != nil {
		return fmt.Errorf("capturing %s: %w", path, err)
	}
	if n == 0 {
		return fmt.Errorf("no audio decoded from %s", path)
	}

	return handler.HandleWindow(cmd.Context(), capture.Window{
		Phase:    filePhase,
		ID:       uuid.New(),
		Samples:  dst[:n],
		Rate:     rate,
		Captured: time.Now(),
	})
}
