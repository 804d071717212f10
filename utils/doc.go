// SPDX-License-Identifier: EPL-2.0

// Package utils holds the per-sample kernels shared by the audio and capture
// packages: 16-bit PCM scaling and the interpolators used by the resamplers.
package utils
