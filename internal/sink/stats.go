// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"context"
	"io"
	"math"

	"github.com/rs/zerolog"

	"github.com/ik5/audcap/capture"
)

// Stats writes one JSON line per window with its signal level.
type Stats struct {
	log zerolog.Logger
}

// NewStats writes events to w without timestamps. Captured carries the
// capture time instead.
func NewStats(w io.Writer) *Stats {
	return &Stats{log: zerolog.New(w)}
}

func (s *Stats) HandleWindow(_ context.Context, w capture.Window) error {
	rms, peak := Levels(w.Samples)

	s.log.Log().
		Str("event", "window").
		Str("phase", w.Phase).
		Str("id", w.ID.String()).
		Int("samples", len(w.Samples)).
		Int("rate", w.Rate).
		Float64("seconds", w.Duration().Seconds()).
		Float64("rms", rms).
		Float64("peak", peak).
		Time("captured", w.Captured).
		Send()
	return nil
}

// Levels returns the RMS and the absolute peak of samples.
func Levels(samples []float32) (rms, peak float64) {
	if len(samples) == 0 {
		return 0, 0
	}

	var sum float64
	for _, v := range samples {
		f := float64(v)
		sum += f * f
		peak = max(peak, math.Abs(f))
	}
	return math.Sqrt(sum / float64(len(samples))), peak
}
