// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ik5/audcap/audio"
)

// Capturer fills caller buffers with audio from files and live streams.
type Capturer struct {
	opts    Options
	backend Backend
	clock   Clock
	log     zerolog.Logger
}

// New returns a Capturer for opts. Without options it uses ffmpeg from
// PATH, the system clock and a logger that discards everything.
func New(opts Options, options ...Option) *Capturer {
	c := &Capturer{
		opts:    opts,
		backend: &FFmpeg{},
		clock:   SystemClock{},
		log:     zerolog.Nop(),
	}
	for _, o := range options {
		o(c)
	}
	return c
}

// Options returns the options the Capturer was built with.
func (c *Capturer) Options() Options { return c.opts }

func (c *Capturer) drainer(ceiling time.Duration) Drainer {
	return Drainer{Backoff: c.opts.ReadBackoff, Ceiling: ceiling, Clock: c.clock}
}

// release closes p and logs a failure to do so.
func release(s *session, p Producer) {
	if err := p.Close(); err != nil {
		s.log.Warn().Err(err).Msg("closing decoder")
	}
}

// CaptureFile decodes up to len(dst) samples of path as mono at
// TargetRate. Samples past the decoded count are zeroed. It returns the
// number of decoded samples, which is 0 for an unreadable input.
func (c *Capturer) CaptureFile(ctx context.Context, path string, dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, ErrNoBuffer
	}

	s := newSession(c.log.With().Str("path", path).Logger(), uuid.New())
	s.enter(StateLaunching)

	p, err := c.backend.OpenFile(ctx, path, c.opts.TargetRate)
	if err != nil {
		clear(dst)
		return 0, s.fail(err)
	}
	defer release(s, p)

	s.enter(StateDraining)
	staging := make([]byte, len(dst)*BytesPerSample)
	got, err := c.drainer(c.opts.FileCeiling).Drain(ctx, p, staging)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		clear(dst)
		return 0, s.fail(err)
	}

	n := audio.DecodeS16LE(dst, staging[:got])
	clear(dst[n:])
	if n == 0 {
		s.log.Warn().Msg("no samples decoded; file missing or unreadable")
	}

	s.enter(StateDone)
	s.log.Debug().Int("bytes", got).Int("samples", n).Msg("file captured")
	return n, nil
}

// CaptureStream records one Options.Window of url into dst.
func (c *Capturer) CaptureStream(ctx context.Context, url string, dst []float32) (int, error) {
	return c.CaptureWindow(ctx, url, c.opts.Window, dst)
}

// CaptureWindow records window of url and resamples it onto exactly
// TargetRate × window samples at the front of dst. Elements past that
// count are left untouched. On success it returns the sample count.
func (c *Capturer) CaptureWindow(ctx context.Context, url string, window time.Duration, dst []float32) (int, error) {
	return c.captureWindow(ctx, uuid.New(), url, window, dst)
}

func (c *Capturer) captureWindow(ctx context.Context, id uuid.UUID, url string, window time.Duration, dst []float32) (int, error) {
	target := SamplesFor(c.opts.TargetRate, window)
	if target <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidWindow, window)
	}
	if len(dst) < target {
		return 0, fmt.Errorf("%w: need %d samples, have %d", ErrBufferTooSmall, target, len(dst))
	}

	channels := max(c.opts.SourceChannels, 1)
	frameBytes := channels * BytesPerSample
	staging := make([]byte, SamplesFor(c.opts.SourceRate, window)*frameBytes)

	s := newSession(c.log.With().Str("url", url).Logger(), id)
	s.enter(StateLaunching)

	p, err := c.backend.OpenStream(ctx, url, StreamParams{
		SampleRate:     c.opts.SourceRate,
		Channels:       channels,
		Duration:       window + c.opts.Headroom,
		ConnectTimeout: c.opts.ConnectTimeout,
	})
	if err != nil {
		return 0, s.fail(err)
	}
	defer release(s, p)

	s.enter(StateDraining)
	got, err := c.drainer(c.opts.ReadCeiling).Drain(ctx, p, staging)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return 0, s.fail(err)
	}

	got -= got % frameBytes
	if got == 0 {
		return 0, s.fail(ErrNoData)
	}

	s.enter(StateResampling)
	samples := make([]float32, got/BytesPerSample)
	audio.DecodeS16LE(samples, staging[:got])
	mono := samples[:audio.Downmix(samples, samples, channels)]
	audio.ResampleLinear(dst[:target], mono)

	s.enter(StateDone)
	s.log.Debug().
		Int("bytes", got).
		Int("source_samples", len(mono)).
		Int("samples", target).
		Msg("window captured")
	return target, nil
}
