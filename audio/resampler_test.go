// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audcap/internal/audiotest"
)

func drainSource(t *testing.T, src Source, chunk int) []float32 {
	t.Helper()

	buf := make([]float32, chunk)
	var out []float32
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
	}
}

func TestNewResampler_InvalidRate(t *testing.T) {
	t.Parallel()

	_, err := NewResampler(audiotest.NewSilentSource(8000, 1, 10), 0)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	rs, err := NewResampler(audiotest.NewSilentSource(44100, 2, 1000), 8000)
	require.NoError(t, err)
	assert.Equal(t, 8000, rs.SampleRate())
	assert.Equal(t, 2, rs.Channels())
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	rs, err := NewResampler(audiotest.NewSilentSource(8000, 2, 10), 8000)
	require.NoError(t, err)

	_, err = rs.ReadSamples(make([]float32, 3))
	assert.ErrorIs(t, err, ErrInvalidDstSize)
}

func TestResampler_SameRateIsIdentity(t *testing.T) {
	t.Parallel()

	rs, err := NewResampler(audiotest.NewRampSource(8000, 1, 100, 0.001), 8000)
	require.NoError(t, err)

	out := drainSource(t, rs, 32)
	require.NotEmpty(t, out)
	for i, v := range out {
		assert.InDelta(t, float32(i)*0.001, v, 1e-5, "sample %d", i)
	}
}

func TestResampler_Lengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		srcRate   int
		dstRate   int
		frames    int
		want      int
		tolerance int
	}{
		{name: "48k to 16k", srcRate: 48000, dstRate: 16000, frames: 48000, want: 16000, tolerance: 10},
		{name: "44.1k to 8k", srcRate: 44100, dstRate: 8000, frames: 44100, want: 8000, tolerance: 10},
		{name: "8k to 44.1k", srcRate: 8000, dstRate: 44100, frames: 8000, want: 44100, tolerance: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rs, err := NewResampler(audiotest.NewSineSource(tt.srcRate, 1, tt.frames, 440), tt.dstRate)
			require.NoError(t, err)

			out := drainSource(t, rs, 1024)
			assert.InDelta(t, tt.want, len(out), float64(tt.tolerance))
			for i, s := range out {
				if s < -1.5 || s > 1.5 {
					t.Fatalf("out[%d] = %v, outside [-1.5, 1.5]", i, s)
				}
			}
		})
	}
}

func TestResampler_ConstantSurvivesDownsampling(t *testing.T) {
	t.Parallel()

	rs, err := NewResampler(audiotest.NewConstantSource(48000, 1, 4800, 0.5), 16000)
	require.NoError(t, err)

	for i, v := range drainSource(t, rs, 256) {
		assert.InDelta(t, 0.5, v, 1e-4, "sample %d", i)
	}
}

func TestResampler_StereoPreserved(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(44100, 2, 1000, func(_ int, ch int) float32 {
		if ch == 0 {
			return 0.3
		}
		return 0.7
	})
	rs, err := NewResampler(src, 8000)
	require.NoError(t, err)

	buf := make([]float32, 20)
	n, err := rs.ReadSamples(buf)
	require.NoError(t, err)
	require.Equal(t, 20, n)
	for f := range n / 2 {
		assert.InDelta(t, 0.3, buf[2*f], 1e-4)
		assert.InDelta(t, 0.7, buf[2*f+1], 1e-4)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	rs, err := NewResampler(audiotest.NewSilentSource(16000, 1, 0), 8000)
	require.NoError(t, err)

	n, err := rs.ReadSamples(make([]float32, 16))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

type failingSource struct{}

func (failingSource) SampleRate() int                    { return 8000 }
func (failingSource) Channels() int                      { return 1 }
func (failingSource) Close() error                       { return nil }
func (failingSource) ReadSamples([]float32) (int, error) { return 0, errors.New("boom") }

func TestResampler_PropagatesSourceError(t *testing.T) {
	t.Parallel()

	rs, err := NewResampler(failingSource{}, 16000)
	require.NoError(t, err)

	_, err = rs.ReadSamples(make([]float32, 8))
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}
