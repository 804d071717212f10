// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StreamParams are the decoder settings for one live window.
type StreamParams struct {
	SampleRate int
	Channels   int
	// Duration caps how much input the decoder reads.
	Duration       time.Duration
	ConnectTimeout time.Duration
}

// outputArgs ends every command: raw s16le on stdout, quiet logging.
func outputArgs(channels, rate int) []string {
	return []string{
		"-vn",
		"-ac", strconv.Itoa(channels),
		"-ar", strconv.Itoa(rate),
		"-f", "s16le",
		"-hide_banner",
		"-loglevel", "warning",
		"-",
	}
}

// FileArgs builds the ffmpeg arguments decoding path to mono s16le at rate.
func FileArgs(path string, rate int) []string {
	args := []string{"-nostdin", "-i", path}
	return append(args, outputArgs(1, rate)...)
}

// StreamArgs builds the ffmpeg arguments for one live window. timeoutFlag
// names the socket timeout option, given in microseconds.
func StreamArgs(rawURL string, p StreamParams, timeoutFlag string) []string {
	args := []string{"-nostdin"}
	if isRTSP(rawURL) {
		args = append(args, "-rtsp_transport", "tcp")
	}
	if p.ConnectTimeout > 0 && timeoutFlag != "" {
		args = append(args, timeoutFlag, strconv.FormatInt(p.ConnectTimeout.Microseconds(), 10))
	}
	if p.Duration > 0 {
		args = append(args, "-t", strconv.FormatFloat(p.Duration.Seconds(), 'f', -1, 64))
	}
	args = append(args, "-i", rawURL)
	return append(args, outputArgs(p.Channels, p.SampleRate)...)
}

func isRTSP(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "rtsp", "rtsps":
		return true
	}
	return false
}
