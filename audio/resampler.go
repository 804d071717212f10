// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audcap/utils"
)

// maxEmptyReads bounds how many (0, nil) reads from the source are tolerated
// in a row before the source is treated as exhausted.
const maxEmptyReads = 64

// Resampler streams src at a new sample rate using cubic interpolation.
// Works on interleaved samples and preserves the channel count. When
// downsampling, a one-pole low-pass runs over the input first.
type Resampler struct {
	src      Source
	rate     int
	step     float64 // source frames per output frame
	channels int

	// frames[1] and frames[2] bracket the output position; frames[0] and
	// frames[3] are the outer spline taps.
	frames [4][]float32
	valid  [4]bool
	pos    float64

	read   []float32
	primed bool
	eof    bool

	lowpass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidRate
	}

	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		rate:     dstRate,
		step:     step,
		channels: channels,
		read:     make([]float32, channels),
		lowpass:  step > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) Close() error    { return r.src.Close() }

// readFrame pulls one frame from the source into dst. It reports false once
// the source is exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	for empty := 0; !r.eof && empty < maxEmptyReads; empty++ {
		n, err := r.src.ReadSamples(r.read)
		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("resampler read: %w", err)
		}

		if n >= r.channels {
			copy(dst, r.read)
			r.filter(dst, !r.primed && !r.valid[1])
			return true, nil
		}
	}

	r.eof = true
	return false, nil
}

func (r *Resampler) filter(frame []float32, first bool) {
	if !r.lowpass {
		return
	}
	if first {
		copy(r.state, frame)
		return
	}
	for c := range frame {
		frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
		r.state[c] = frame[c]
	}
}

// prime loads the first three frames, duplicating the first one as the
// leading spline tap so output starts exactly on the first input frame.
func (r *Resampler) prime() error {
	ok, err := r.readFrame(r.frames[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	r.valid[1] = true
	copy(r.frames[0], r.frames[1])
	r.valid[0] = true

	for i := 2; i < 4; i++ {
		ok, err := r.readFrame(r.frames[i])
		if err != nil {
			return err
		}
		r.valid[i] = ok
	}

	r.primed = true
	return nil
}

func (r *Resampler) advance() error {
	first := r.frames[0]
	copy(r.frames[:3], r.frames[1:])
	copy(r.valid[:3], r.valid[1:])
	r.frames[3] = first

	ok, err := r.readFrame(r.frames[3])
	if err != nil {
		return err
	}
	r.valid[3] = ok

	if !r.valid[2] {
		return io.EOF
	}
	return nil
}

// ReadSamples produces len(dst) samples at the target rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	want := len(dst) / r.channels

	for written < want {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.valid[2] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		for c := range r.channels {
			y3 := r.frames[2][c]
			if r.valid[3] {
				y3 = r.frames[3][c]
			}
			dst[written*r.channels+c] = utils.CubicInterpolate(
				r.frames[0][c], r.frames[1][c], r.frames[2][c], y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
