// SPDX-License-Identifier: EPL-2.0

package audcap

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audcap/audio"
	"github.com/ik5/audcap/capture"
)

// Default returns a Capturer with the default options and the best backend
// available: ffmpeg when it is on PATH, the built-in decoders otherwise.
// Later options override the backend choice.
func Default(options ...capture.Option) *capture.Capturer {
	// auto resolution cannot fail
	b, _ := capture.NewBackend(capture.BackendAuto, nil)
	return capture.New(capture.DefaultOptions(), append([]capture.Option{capture.WithBackend(b)}, options...)...)
}

// CaptureFile fills dst with the start of the file at path as 16 kHz mono.
// See capture.Capturer.CaptureFile.
func CaptureFile(ctx context.Context, path string, dst []float32) (int, error) {
	return Default().CaptureFile(ctx, path, dst)
}

// CaptureStream records three seconds of url as 48000 samples at 16 kHz.
// See capture.Capturer.CaptureStream.
func CaptureStream(ctx context.Context, url string, dst []float32) (int, error) {
	return Default().CaptureStream(ctx, url, dst)
}

// ResampleToMono reads src to the end, resampled to targetRate with cubic
// interpolation and mixed down to mono.
//
// bufferSize is the number of samples pulled per read.
func ResampleToMono(src audio.Source, targetRate int, bufferSize int) ([]float32, error) {
	if bufferSize <= 0 {
		return nil, fmt.Errorf("buffer size must be positive, got %d", bufferSize)
	}

	pipeline := src
	if src.SampleRate() != targetRate {
		res, err := audio.NewResampler(src, targetRate)
		if err != nil {
			return nil, err
		}
		pipeline = res
	}
	mono := audio.NewMonoMixer(pipeline)

	out := make([]float32, 0, targetRate)
	buf := make([]float32, bufferSize)
	for {
		n, err := mono.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
	}
}
