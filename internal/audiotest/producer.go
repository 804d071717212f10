// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"io"
)

// Step is one scripted outcome of a ScriptedProducer read.
//
// Exactly one of the fields is meaningful: Data is handed out (in pieces no
// larger than the caller's buffer or Chunk), Empty yields that many
// (0, nil) reads, and Err is returned once.
type Step struct {
	Data  []byte
	Chunk int
	Empty int
	Err   error
}

// ScriptedProducer replays Steps through Read. When the script runs out it
// returns io.EOF, or (0, nil) forever if Hang is set.
type ScriptedProducer struct {
	Steps []Step
	Hang  bool

	Reads  int
	Closed int
}

func (p *ScriptedProducer) Read(b []byte) (int, error) {
	p.Reads++

	for len(p.Steps) > 0 {
		s := &p.Steps[0]

		switch {
		case len(s.Data) > 0:
			n := len(b)
			if s.Chunk > 0 {
				n = min(n, s.Chunk)
			}
			n = copy(b[:n], s.Data)
			s.Data = s.Data[n:]
			if len(s.Data) == 0 {
				p.Steps = p.Steps[1:]
			}
			return n, nil

		case s.Empty > 0:
			s.Empty--
			if s.Empty == 0 {
				p.Steps = p.Steps[1:]
			}
			return 0, nil

		case s.Err != nil:
			err := s.Err
			p.Steps = p.Steps[1:]
			return 0, err

		default:
			p.Steps = p.Steps[1:]
		}
	}

	if p.Hang {
		return 0, nil
	}
	return 0, io.EOF
}

func (p *ScriptedProducer) Close() error {
	p.Closed++
	return nil
}

// S16LE encodes samples as little-endian signed 16-bit bytes.
func S16LE(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// ConstantS16LE returns n samples of value v as s16le bytes.
func ConstantS16LE(n int, v int16) []byte {
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = v
	}
	return S16LE(samples...)
}
