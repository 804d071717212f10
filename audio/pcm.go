// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"

	"github.com/ik5/audcap/utils"
)

// BytesPerSample is the width of one signed 16-bit little-endian sample.
const BytesPerSample = 2

// DecodeS16LE converts little-endian signed 16-bit samples from src into
// normalized floats in dst. It converts min(len(dst), len(src)/2) samples,
// drops any trailing odd byte, and returns the count.
func DecodeS16LE(dst []float32, src []byte) int {
	n := min(len(dst), len(src)/BytesPerSample)
	for i := range n {
		v := int16(binary.LittleEndian.Uint16(src[BytesPerSample*i:]))
		dst[i] = utils.Int16ToFloat32(v)
	}
	return n
}

// EncodeS16LE writes src as little-endian signed 16-bit samples into dst
// and returns the number of bytes written.
func EncodeS16LE(dst []byte, src []float32) int {
	n := min(len(src), len(dst)/BytesPerSample)
	for i := range n {
		binary.LittleEndian.PutUint16(dst[BytesPerSample*i:], uint16(utils.Float32ToInt16(src[i])))
	}
	return n * BytesPerSample
}

// PCMReader exposes a Source as a raw s16le byte stream.
//
// Read returns (0, nil) when the source produced nothing on this call, and
// passes the source's terminal error (io.EOF included) through once every
// buffered byte has been handed out.
type PCMReader struct {
	src     Source
	samples []float32
	buf     []byte
	pending []byte
	err     error
}

// NewPCMReader wraps src, pulling up to chunk samples per source read.
func NewPCMReader(src Source, chunk int) *PCMReader {
	if chunk <= 0 {
		chunk = 4096
	}
	chunk -= chunk % src.Channels()
	return &PCMReader{
		src:     src,
		samples: make([]float32, chunk),
		buf:     make([]byte, chunk*BytesPerSample),
	}
}

func (r *PCMReader) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}

		n, err := r.src.ReadSamples(r.samples)
		r.pending = r.buf[:EncodeS16LE(r.buf, r.samples[:n])]
		r.err = err

		if len(r.pending) == 0 {
			return 0, r.err
		}
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func (r *PCMReader) Close() error { return r.src.Close() }
