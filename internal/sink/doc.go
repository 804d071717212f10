// SPDX-License-Identifier: EPL-2.0

// Package sink holds the capture.WindowHandler implementations used by the
// command line: JSON stats lines, WAV dumps, and a fan-out.
package sink
