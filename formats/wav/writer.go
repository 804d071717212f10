// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audcap/utils"
)

// WriteWAV16 writes mono 16-bit PCM at sampleRate. The go-audio encoder
// patches chunk sizes on Close, hence the io.WriteSeeker.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	return writeInts(w, sampleRate, data)
}

// WriteFloat32 converts normalized samples to 16-bit and writes a mono WAV.
func WriteFloat32(w io.WriteSeeker, sampleRate int, samples []float32) error {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(utils.Float32ToInt16(s))
	}
	return writeInts(w, sampleRate, data)
}

func writeInts(w io.WriteSeeker, sampleRate int, data []int) error {
	enc := gowav.NewEncoder(w, sampleRate, 16, 1, formatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav close: %w", err)
	}
	return nil
}
