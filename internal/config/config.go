// SPDX-License-Identifier: EPL-2.0

// Package config loads the audcap YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audcap/capture"
)

type Config struct {
	Backend string        `yaml:"backend"` // "auto", "ffmpeg" or "native"
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Capture CaptureConfig `yaml:"capture"`
	Stream  StreamConfig  `yaml:"stream"`
	Phases  []PhaseConfig `yaml:"phases"`
	Log     LogConfig     `yaml:"log"`

	// DumpDir, when set, receives every captured window as a WAV file.
	DumpDir string `yaml:"dump_dir"`
}

type FFmpegConfig struct {
	Path        string `yaml:"path"`
	TimeoutFlag string `yaml:"timeout_flag"`
}

type CaptureConfig struct {
	TargetRate  int           `yaml:"target_rate"`
	Window      time.Duration `yaml:"window"`
	ReadCeiling time.Duration `yaml:"read_ceiling"`
	ReadBackoff time.Duration `yaml:"read_backoff"`
	FileCeiling time.Duration `yaml:"file_ceiling"`
}

type StreamConfig struct {
	URL            string        `yaml:"url"`
	SourceRate     int           `yaml:"source_rate"`
	SourceChannels int           `yaml:"source_channels"`
	Headroom       time.Duration `yaml:"headroom"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	Gap            time.Duration `yaml:"gap"`
	Cycles         int           `yaml:"cycles"` // 0 = forever
}

type PhaseConfig struct {
	Name   string        `yaml:"name"`
	Window time.Duration `yaml:"window"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	opts := capture.DefaultOptions()

	phases := make([]PhaseConfig, 0, 2)
	for _, p := range capture.DefaultPhases() {
		phases = append(phases, PhaseConfig{Name: p.Name, Window: p.Window})
	}

	return &Config{
		Backend: capture.BackendAuto,
		FFmpeg:  FFmpegConfig{Path: "ffmpeg", TimeoutFlag: "-timeout"},
		Capture: CaptureConfig{
			TargetRate:  opts.TargetRate,
			Window:      opts.Window,
			ReadCeiling: opts.ReadCeiling,
			ReadBackoff: opts.ReadBackoff,
			FileCeiling: opts.FileCeiling,
		},
		Stream: StreamConfig{
			SourceRate:     opts.SourceRate,
			SourceChannels: opts.SourceChannels,
			Headroom:       opts.Headroom,
			ConnectTimeout: opts.ConnectTimeout,
			Gap:            capture.CycleGap,
		},
		Phases: phases,
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Backend {
	case capture.BackendAuto, capture.BackendFFmpeg, capture.BackendNative:
	default:
		errs = append(errs, fmt.Errorf("backend: unknown value %q", c.Backend))
	}

	if c.Capture.TargetRate <= 0 {
		errs = append(errs, errors.New("capture.target_rate must be positive"))
	}
	if c.Capture.Window <= 0 {
		errs = append(errs, errors.New("capture.window must be positive"))
	}
	if c.Capture.ReadCeiling < 0 || c.Capture.FileCeiling < 0 || c.Capture.ReadBackoff < 0 {
		errs = append(errs, errors.New("capture: ceilings and backoff must not be negative"))
	}
	if c.Stream.SourceRate <= 0 {
		errs = append(errs, errors.New("stream.source_rate must be positive"))
	}
	if c.Stream.SourceChannels <= 0 {
		errs = append(errs, errors.New("stream.source_channels must be positive"))
	}
	if c.Stream.Cycles < 0 {
		errs = append(errs, errors.New("stream.cycles must not be negative"))
	}
	if c.Stream.Gap <= 0 {
		errs = append(errs, errors.New("stream.gap must be positive"))
	}

	for i, p := range c.Phases {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("phases[%d]: name is required", i))
		}
		if p.Window <= 0 {
			errs = append(errs, fmt.Errorf("phases[%d]: window must be positive", i))
		}
	}

	return errors.Join(errs...)
}

// Options converts the capture settings.
func (c *Config) Options() capture.Options {
	return capture.Options{
		TargetRate:     c.Capture.TargetRate,
		Window:         c.Capture.Window,
		SourceRate:     c.Stream.SourceRate,
		SourceChannels: c.Stream.SourceChannels,
		ReadCeiling:    c.Capture.ReadCeiling,
		ReadBackoff:    c.Capture.ReadBackoff,
		FileCeiling:    c.Capture.FileCeiling,
		Headroom:       c.Stream.Headroom,
		ConnectTimeout: c.Stream.ConnectTimeout,
	}
}

func (c *Config) LoopPhases() []capture.Phase {
	phases := make([]capture.Phase, len(c.Phases))
	for i, p := range c.Phases {
		phases[i] = capture.Phase{Name: p.Name, Window: p.Window}
	}
	return phases
}

// NewBackend builds the decode backend named by the config.
func (c *Config) NewBackend() (capture.Backend, error) {
	return capture.NewBackend(c.Backend, &capture.FFmpeg{
		Path:        c.FFmpeg.Path,
		TimeoutFlag: c.FFmpeg.TimeoutFlag,
	})
}
