// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ik5/audcap/audio"
)

// nativeChunk is the number of samples pulled per decoder read.
const nativeChunk = 4096

// Native decodes files in-process through a format registry. It cannot
// open network streams.
type Native struct {
	Registry *audio.Registry
}

// OpenFile decodes path with the registry's decoder for its extension,
// resampling to rate and mixing down to mono. Any failure to open or
// recognize the file is reported as ErrLaunch.
func (n *Native) OpenFile(_ context.Context, path string, rate int) (Producer, error) {
	if n.Registry == nil {
		return nil, fmt.Errorf("%w: no decoders registered", ErrLaunch)
	}
	dec, ok := n.Registry.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: no decoder for %q", ErrLaunch, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLaunch, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %w", ErrLaunch, err)
	}

	if src.SampleRate() != rate {
		res, err := audio.NewResampler(src, rate)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %w", ErrLaunch, err)
		}
		src = res
	}

	return &nativeProducer{
		PCMReader: audio.NewPCMReader(audio.NewMonoMixer(src), nativeChunk),
		file:      f,
	}, nil
}

// OpenStream always fails with ErrUnsupported.
func (*Native) OpenStream(context.Context, string, StreamParams) (Producer, error) {
	return nil, fmt.Errorf("%w: native backend cannot open network streams", ErrUnsupported)
}

type nativeProducer struct {
	*audio.PCMReader
	file *os.File
}

func (p *nativeProducer) Close() error {
	return errors.Join(p.PCMReader.Close(), p.file.Close())
}
