// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Producer is a raw byte stream coming out of a decoder.
//
// Read follows a three-state contract. n > 0 is data. (0, io.EOF) is a
// clean end of data. (0, err) for any other error is a read failure.
// (0, nil) means nothing is available yet and the caller should retry.
type Producer interface {
	Read(p []byte) (int, error)
	Close() error
}

// Drainer fills a staging buffer from a producer.
type Drainer struct {
	// Backoff is the pause after a read that returned no data. Zero means
	// ReadBackoff.
	Backoff time.Duration
	// Ceiling bounds the total time spent waiting on no-data reads. Zero
	// disables the bound.
	Ceiling time.Duration
	Clock   Clock
}

func (d Drainer) backoff() time.Duration {
	if d.Backoff <= 0 {
		return ReadBackoff
	}
	return d.Backoff
}

// Drain reads from r until buf is full or r reports end of data, and
// returns the number of bytes obtained.
//
// Time spent in reads that came back empty, plus the backoff after them,
// counts against Ceiling. Reads that deliver data do not reset it.
// A read failure or end of data seen after ctx is done reports the
// context error.
func (d Drainer) Drain(ctx context.Context, r io.Reader, buf []byte) (int, error) {
	clock := d.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	backoff := d.backoff()

	var (
		got    int
		waited time.Duration
	)
	for got < len(buf) {
		if err := ctx.Err(); err != nil {
			return got, err
		}

		start := clock.Now()
		n, err := r.Read(buf[got:])
		got += n

		// A decoder killed by ctx also closes its pipe.
		if err != nil && ctx.Err() != nil {
			return got, ctx.Err()
		}

		switch {
		case errors.Is(err, io.EOF):
			return got, nil
		case err != nil:
			return got, fmt.Errorf("%w: %w", ErrRead, err)
		case n > 0:
			continue
		}

		if err := clock.Sleep(ctx, backoff); err != nil {
			return got, err
		}
		waited += clock.Now().Sub(start)
		if d.Ceiling > 0 && waited >= d.Ceiling {
			return got, fmt.Errorf("%w after %s", ErrReadTimeout, waited)
		}
	}

	return got, nil
}
