// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ik5/audcap/capture"
	"github.com/ik5/audcap/internal/config"
	"github.com/ik5/audcap/internal/logging"
	"github.com/ik5/audcap/internal/sink"
)

var (
	// Global flags
	configPath  string
	logLevel    string
	logFile     string
	backendName string
	dumpDir     string

	cfg       *config.Config
	logger    = zerolog.Nop()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "audcap",
	Short: "Fixed-length audio capture from streams and files",
	Long: `audcap - capture fixed-length mono windows at 16 kHz.

Live streams are decoded by ffmpeg at their native rate, then downmixed and
linearly resampled. Files are decoded by ffmpeg or, with --backend native,
by the built-in WAV, MP3, Ogg Vorbis and AIFF decoders.

Every window is printed as one JSON line on stdout.

Examples:
  audcap stream rtsp://10.0.0.2:554/stream1
  audcap stream --cycles 5 --dump-dir ./windows rtsp://cam/live
  audcap file --backend native enroll.wav`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(*cobra.Command, []string) error {
		if logCloser == nil {
			return nil
		}
		return logCloser.Close()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write JSON logs to this rotating file")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "decoder backend: auto, ffmpeg, native (overrides config)")
	rootCmd.PersistentFlags().StringVar(&dumpDir, "dump-dir", "", "write every window as WAV into this directory")
}

// setup loads the config, applies flag overrides, and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if logFile != "" {
		c.Log.File = logFile
	}
	if backendName != "" {
		c.Backend = backendName
	}
	if dumpDir != "" {
		c.DumpDir = dumpDir
	}
	if err := c.Validate(); err != nil {
		return err
	}

	log, closer, err := logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:      c.Log.Level,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
	})
	if err != nil {
		return err
	}

	cfg, logger, logCloser = c, log, closer
	return nil
}

func newCapturer() (*capture.Capturer, capture.Backend, error) {
	b, err := cfg.NewBackend()
	if err != nil {
		return nil, nil, err
	}
	return capture.New(cfg.Options(), capture.WithBackend(b), capture.WithLogger(logger)), b, nil
}

// windowHandler prints stats to out and, when configured, dumps WAV files.
func windowHandler(out io.Writer) (capture.WindowHandler, error) {
	handlers := sink.Multi{sink.NewStats(out)}
	if cfg.DumpDir != "" {
		w, err := sink.NewWAV(cfg.DumpDir)
		if err != nil {
			return nil, fmt.Errorf("dump dir: %w", err)
		}
		handlers = append(handlers, w)
	}
	return handlers, nil
}
