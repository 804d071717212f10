// SPDX-License-Identifier: EPL-2.0

// Package audcap captures fixed-length mono audio windows from live network
// streams and media files, ready for feature extraction at 16 kHz.
//
// # Quick Start
//
// Capture one three second window from a camera:
//
//	buf := make([]float32, 48000)
//	n, err := audcap.CaptureStream(ctx, "rtsp://10.0.0.2:554/stream1", buf)
//
// Or the start of a recording, padded with silence when it is shorter:
//
//	n, err := audcap.CaptureFile(ctx, "enroll.wav", buf)
//
// Both use ffmpeg when it is on PATH. Files fall back to the built-in
// decoders otherwise; live streams always need ffmpeg.
//
// # Packages
//
//   - capture: the drain loop, decoder backends, file and live capture,
//     and the acquisition Loop
//   - audio: Source pipelines (cubic Resampler, MonoMixer), the linear
//     window resampler, and s16le conversion
//   - formats: WAV, MP3, Ogg Vorbis and AIFF decoders plus a WAV writer
//   - utils: sample conversion and interpolation kernels
//
// To decode a whole file in-process instead, build a pipeline:
//
//	dec, _ := formats.Registry().ForPath("voice.mp3")
//	src, _ := dec.Decode(f)
//	samples, err := audcap.ResampleToMono(src, 16000, 4096)
package audcap
