// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Phase is one named window length in the acquisition cycle.
type Phase struct {
	Name   string
	Window time.Duration
}

// DefaultPhases is a voiceprint window followed by a keyword-spotting
// window.
func DefaultPhases() []Phase {
	return []Phase{
		{Name: "voiceprint", Window: VoiceprintWindow},
		{Name: "kws", Window: KWSWindow},
	}
}

// Window is one finished capture handed to a WindowHandler.
type Window struct {
	Phase string
	ID    uuid.UUID
	// Samples is only valid for the duration of the handler call.
	Samples  []float32
	Rate     int
	Captured time.Time
}

// Duration is the audio time covered by Samples.
func (w Window) Duration() time.Duration {
	if w.Rate <= 0 {
		return 0
	}
	return time.Duration(len(w.Samples)) * time.Second / time.Duration(w.Rate)
}

// WindowHandler consumes captured windows. An error stops the Loop.
type WindowHandler interface {
	HandleWindow(ctx context.Context, w Window) error
}

type WindowHandlerFunc func(ctx context.Context, w Window) error

func (f WindowHandlerFunc) HandleWindow(ctx context.Context, w Window) error {
	return f(ctx, w)
}

// Loop captures every phase of a cycle in order, then waits Gap, until
// MaxCycles cycles have run or ctx is done.
type Loop struct {
	Capturer *Capturer
	URL      string
	Phases   []Phase
	Gap      time.Duration
	// MaxCycles of 0 runs until ctx is done.
	MaxCycles int
	Handler   WindowHandler
}

// Run blocks until the loop ends. Windows that fail to capture are logged
// and skipped, and the next launch waits one read backoff. It returns the
// handler's error, ctx's error, or nil after MaxCycles.
func (l *Loop) Run(ctx context.Context) error {
	if l.Capturer == nil || l.Handler == nil {
		return errors.New("loop needs a capturer and a handler")
	}

	phases := l.Phases
	if len(phases) == 0 {
		phases = DefaultPhases()
	}

	c := l.Capturer
	rate := c.opts.TargetRate
	buffers := make([][]float32, len(phases))
	for i, ph := range phases {
		n := SamplesFor(rate, ph.Window)
		if n <= 0 {
			return fmt.Errorf("phase %q: %w", ph.Name, ErrInvalidWindow)
		}
		buffers[i] = make([]float32, n)
	}

	c.log.Info().Str("url", l.URL).Int("phases", len(phases)).Msg("acquisition started")

	for cycle := 0; l.MaxCycles == 0 || cycle < l.MaxCycles; cycle++ {
		for i, ph := range phases {
			if err := ctx.Err(); err != nil {
				return err
			}

			id := uuid.New()
			log := c.log.With().Str("phase", ph.Name).Str("window_id", id.String()).Logger()
			log.Debug().Int("cycle", cycle).Msg("phase starting")

			n, err := c.captureWindow(ctx, id, l.URL, ph.Window, buffers[i])
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				log.Warn().Err(err).Str("category", Category(err)).Msg("window skipped")
				if err := c.clock.Sleep(ctx, c.drainer(0).backoff()); err != nil {
					return err
				}
				continue
			}

			w := Window{
				Phase:    ph.Name,
				ID:       id,
				Samples:  buffers[i][:n],
				Rate:     rate,
				Captured: c.clock.Now(),
			}
			if err := l.Handler.HandleWindow(ctx, w); err != nil {
				return fmt.Errorf("handling %s window %s: %w", ph.Name, id, err)
			}
		}

		if err := c.clock.Sleep(ctx, l.Gap); err != nil {
			return err
		}
	}

	return nil
}
