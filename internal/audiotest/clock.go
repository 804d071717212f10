// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"context"
	"time"
)

// FakeClock is a deterministic clock whose Sleep advances Now instantly.
type FakeClock struct {
	now    time.Time
	Slept  time.Duration
	Sleeps int
}

func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)}
}

func (c *FakeClock) Now() time.Time { return c.now }

// Sleep advances the clock by d unless ctx is already done.
func (c *FakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Sleeps++
	c.Slept += d
	c.now = c.now.Add(d)
	return nil
}

// Advance moves time forward without counting as a sleep.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
