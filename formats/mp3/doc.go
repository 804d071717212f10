// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files through github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo at the file's sample rate;
// mono files are duplicated onto both channels by go-mp3. Wrap the source in
// audio.NewMonoMixer to fold it back down:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//		return err
//	}
//	mono := audio.NewMonoMixer(src)
//
// go-mp3 emits 16-bit samples, which are converted with the same scale as
// the rest of the module, so -32768 maps to -1.0 exactly. ReadSamples hands
// out whole stereo frames only. A trailing partial frame at the end of the
// stream is dropped.
package mp3
