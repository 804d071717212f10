// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes integer PCM AIFF files (.aif, .aiff) through
// github.com/go-audio/aiff.
//
// # Decoding
//
// Decoder implements audio.Decoder, so it can be used directly or through
// the formats registry:
//
//	f, err := os.Open("enrollment.aiff")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//		return err
//	}
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// Samples come out interleaved at the file's own rate and channel count,
// scaled to [-1.0, 1.0) by the sample bit depth. Wrap the source in
// audio.NewResampler and audio.NewMonoMixer to reach a fixed mono rate,
// which is what the native capture backend does.
//
// The go-audio decoder needs to seek. A plain io.Reader is read into
// memory first, so prefer an *os.File for long recordings.
//
// # Supported input
//
//   - AIFF with 8, 16, 24 or 32-bit integer samples
//   - AIFF-C with the uncompressed "NONE" or little-endian "sowt" encodings
//   - any channel count and sample rate
//
// Compressed AIFF-C files fail the validity check and are reported as
// ErrNotAiffFile, like any other input that is not AIFF. Headers that parse
// but carry no channels or no sample rate are rejected when the source is
// built.
package aiff
