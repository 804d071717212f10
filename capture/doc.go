// SPDX-License-Identifier: EPL-2.0

// Package capture turns a media file or a live network stream into
// fixed-length windows of mono float32 samples at a target rate.
//
// A Backend starts a Producer, a raw s16le byte stream. The Drainer pulls
// that stream into a staging buffer of fixed size and gives up once the
// producer has been silent for longer than the read ceiling. File captures
// are converted as-is and zero-padded. Live captures are downmixed and
// linearly resampled onto exactly TargetRate × window samples.
//
//	c := capture.New(capture.DefaultOptions(), capture.WithLogger(log))
//	buf := make([]float32, 48000)
//	n, err := c.CaptureStream(ctx, "rtsp://camera/stream", buf)
//
// Loop runs the voiceprint and keyword-spotting windows back to back and
// hands every window to a WindowHandler.
//
// Captures are synchronous. A Capturer holds no per-call state, so one
// value may be reused for any number of sequential captures.
package capture
