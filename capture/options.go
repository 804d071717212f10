// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ik5/audcap/audio"
)

const (
	TargetRate       = 16000
	VoiceprintWindow = 3 * time.Second
	KWSWindow        = 1 * time.Second

	SourceRate     = 48000
	SourceChannels = 1
	BytesPerSample = audio.BytesPerSample

	ReadCeiling    = 5 * time.Second
	ReadBackoff    = 10 * time.Millisecond
	Headroom       = 200 * time.Millisecond
	ConnectTimeout = 3 * time.Second
	CycleGap       = 100 * time.Millisecond
)

// Options fixes the rates and time limits of a Capturer.
type Options struct {
	// TargetRate is the rate of every captured window in Hz.
	TargetRate int
	// Window is the live capture duration used by CaptureStream.
	Window time.Duration

	// SourceRate and SourceChannels describe what the live decoder is
	// asked to emit before downmix and resampling.
	SourceRate     int
	SourceChannels int

	ReadCeiling time.Duration
	ReadBackoff time.Duration
	// FileCeiling bounds no-data time while reading a file. Zero means
	// unbounded; the decoder ends on its own at the end of the input.
	FileCeiling time.Duration

	// Headroom is added to the window when limiting the live input
	// duration.
	Headroom       time.Duration
	ConnectTimeout time.Duration
}

// DefaultOptions returns the voiceprint window settings for a 48 kHz mono
// source resampled to 16 kHz.
func DefaultOptions() Options {
	return Options{
		TargetRate:     TargetRate,
		Window:         VoiceprintWindow,
		SourceRate:     SourceRate,
		SourceChannels: SourceChannels,
		ReadCeiling:    ReadCeiling,
		ReadBackoff:    ReadBackoff,
		Headroom:       Headroom,
		ConnectTimeout: ConnectTimeout,
	}
}

// SamplesFor returns how many samples per channel rate produces in d.
func SamplesFor(rate int, d time.Duration) int {
	secs, rem := int64(d/time.Second), int64(d%time.Second)
	return int(int64(rate)*secs + int64(rate)*rem/int64(time.Second))
}

// Option configures a Capturer.
type Option func(*Capturer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Capturer) { c.log = l }
}

// WithBackend replaces the default FFmpeg backend.
func WithBackend(b Backend) Option {
	return func(c *Capturer) { c.backend = b }
}

// WithClock replaces the wall clock used by the drain loop.
func WithClock(clock Clock) Option {
	return func(c *Capturer) { c.clock = clock }
}
