// SPDX-License-Identifier: EPL-2.0

// Package wav decodes integer PCM WAV files into audio.Source and writes
// mono 16-bit WAV files, both on top of github.com/go-audio/wav.
//
// Decoding accepts 8, 16, 24 and 32-bit integer PCM with any channel count
// and sample rate:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Writing needs an io.WriteSeeker (an *os.File in practice) because the
// RIFF sizes are patched once the data is known:
//
//	f, _ := os.Create("window.wav")
//	defer f.Close()
//	err := wav.WriteFloat32(f, 16000, samples)
package wav
