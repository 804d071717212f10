// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level building blocks of the capture
// pipeline.
//
// # Sources
//
// A Source is a pull stream of interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Decoders in the formats packages produce Sources. Resampler and MonoMixer
// wrap a Source and are Sources themselves, so they chain:
//
//	rs, _ := audio.NewResampler(src, 16000)
//	mono := audio.NewMonoMixer(rs)
//	pcm := audio.NewPCMReader(mono, 4096) // io.Reader of s16le bytes
//
// # Fixed-length resampling
//
// ResampleLinear maps a whole captured window onto a fixed number of output
// samples. The live capture path uses it. Output is exact wherever a position
// lands on a source sample.
//
//	out := make([]float32, 48000)
//	audio.ResampleLinear(out, captured) // captured may be any length
//
// # Raw PCM
//
// DecodeS16LE and EncodeS16LE convert between little-endian 16-bit bytes and
// normalized floats. Decoding divides by 32768, so -32768 maps to exactly
// -1.0 and 32767 to just under 1.0.
//
// # Registry
//
// Registry maps file extensions to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register(wav.Decoder{}, "wav", "wave")
//	dec, ok := reg.ForPath("clip.wav")
package audio
