// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files through
// github.com/jfreymuth/oggvorbis.
//
// # Decoding
//
//	f, _ := os.Open("prompt.ogg")
//	defer f.Close()
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//		return err
//	}
//
// The decoder is pure Go and streams from any io.Reader, so no seeking is
// needed. Vorbis already decodes to floating point, so samples reach the
// caller without integer rescaling.
//
// # Reads
//
// ReadSamples only fills whole frames: a destination of 5 samples on a
// stereo file yields at most 4. A destination shorter than one frame
// returns 0 with no error. The end of the stream is io.EOF, and any other
// decoder failure is wrapped with a "vorbis read" prefix.
//
// Output keeps the file's channel layout and rate. Chain audio.NewResampler
// and audio.NewMonoMixer to feed a fixed-rate mono consumer.
package vorbis
