// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audcap/audio"
)

func writeTemp(t *testing.T, write func(f *os.File) error) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, write(f))
	require.NoError(t, f.Close())
	return path
}

func readAll(t *testing.T, src audio.Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 7)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
	}
}

func TestWriteWAV16_DecodeRoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 16384, -32768, 32767}
	path := writeTemp(t, func(f *os.File) error { return WriteWAV16(f, 8000, samples) })

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 8000, src.SampleRate())
	assert.Equal(t, 1, src.Channels())

	got := readAll(t, src)
	require.Len(t, got, len(samples))
	for i, s := range samples {
		assert.Equal(t, float32(s)/32768, got[i], "sample %d", i)
	}
}

func TestWriteFloat32(t *testing.T) {
	t.Parallel()

	in := []float32{0, 0.5, -0.5, -1, 2}
	path := writeTemp(t, func(f *os.File) error { return WriteFloat32(f, 16000, in) })

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// non-seekable input goes through the in-memory path
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	require.NoError(t, err)

	got := readAll(t, src)
	require.Len(t, got, len(in))
	assert.InDelta(t, 0.5, got[1], 1e-4)
	assert.Equal(t, float32(-0.5), got[2])
	assert.Equal(t, float32(-1), got[3])
	assert.InDelta(t, 1, got[4], 1e-4, "clamped")
}

func TestDecoder_NotWav(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not a RIFF file at all, just text")))
	assert.ErrorIs(t, err, ErrNotWavFile)
}
