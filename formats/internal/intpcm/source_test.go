// SPDX-License-Identifier: EPL-2.0

package intpcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	format  *goaudio.Format
	samples []int
	offset  int
	err     error
}

func (f *fakeReader) Format() *goaudio.Format { return f.format }

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := copy(buf.Data, f.samples[f.offset:])
	f.offset += n
	return n, nil
}

func TestNewSource_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewSource(&fakeReader{format: &goaudio.Format{NumChannels: 1, SampleRate: 8000}}, 12)
	assert.ErrorIs(t, err, ErrUnsupportedBitDepth)

	_, err = NewSource(&fakeReader{}, 16)
	assert.Error(t, err)
}

func TestSource_Scaling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		in       []int
		want     []float32
	}{
		{name: "8-bit", bitDepth: 8, in: []int{-128, 64}, want: []float32{-1, 0.5}},
		{name: "16-bit", bitDepth: 16, in: []int{-32768, 16384}, want: []float32{-1, 0.5}},
		{name: "24-bit", bitDepth: 24, in: []int{-8388608, 4194304}, want: []float32{-1, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := NewSource(&fakeReader{
				format:  &goaudio.Format{NumChannels: 1, SampleRate: 16000},
				samples: tt.in,
			}, tt.bitDepth)
			require.NoError(t, err)

			dst := make([]float32, 8)
			n, err := src.ReadSamples(dst)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dst[:n])

			n, err = src.ReadSamples(dst)
			assert.Zero(t, n)
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src, err := NewSource(&fakeReader{
		format: &goaudio.Format{NumChannels: 2, SampleRate: 44100},
		err:    errors.New("disk gone"),
	}, 16)
	require.NoError(t, err)
	assert.Equal(t, 2, src.Channels())
	assert.Equal(t, 44100, src.SampleRate())

	_, err = src.ReadSamples(make([]float32, 4))
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}
