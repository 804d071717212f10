// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"
)

const (
	defaultFFmpegPath  = "ffmpeg"
	defaultTimeoutFlag = "-timeout"
	defaultPoll        = 10 * time.Millisecond
)

// FFmpeg runs the ffmpeg binary and reads PCM from its stdout.
type FFmpeg struct {
	// Path to the binary. Defaults to "ffmpeg" looked up on PATH.
	Path string
	// TimeoutFlag is the input socket timeout option. Defaults to
	// "-timeout"; builds older than 5.0 want "-stimeout".
	TimeoutFlag string
	// Poll is how long a single read waits on the pipe before reporting
	// that no data is available yet.
	Poll time.Duration
}

func (f *FFmpeg) path() string {
	if f.Path == "" {
		return defaultFFmpegPath
	}
	return f.Path
}

func (f *FFmpeg) timeoutFlag() string {
	if f.TimeoutFlag == "" {
		return defaultTimeoutFlag
	}
	return f.TimeoutFlag
}

// OpenFile starts ffmpeg decoding path to mono s16le at rate.
func (f *FFmpeg) OpenFile(ctx context.Context, path string, rate int) (Producer, error) {
	return f.start(ctx, FileArgs(path, rate))
}

// OpenStream starts ffmpeg on url with the duration limit and connection
// timeout in p. Over RTSP the transport is forced to TCP.
func (f *FFmpeg) OpenStream(ctx context.Context, url string, p StreamParams) (Producer, error) {
	return f.start(ctx, StreamArgs(url, p, f.timeoutFlag()))
}

func (f *FFmpeg) start(ctx context.Context, args []string) (Producer, error) {
	cmd := exec.CommandContext(ctx, f.path(), args...)
	// stderr stays nil and goes to the null device.
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLaunch, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLaunch, f.path(), err)
	}

	poll := f.Poll
	if poll <= 0 {
		poll = defaultPoll
	}
	return &process{cmd: cmd, out: out, poll: poll}, nil
}

type deadliner interface {
	SetReadDeadline(t time.Time) error
}

// process is a running decoder. Reads use a short deadline on the pipe so
// a silent decoder shows up as (0, nil) instead of blocking.
type process struct {
	cmd  *exec.Cmd
	out  io.ReadCloser
	poll time.Duration

	once sync.Once
}

func (p *process) Read(b []byte) (int, error) {
	if d, ok := p.out.(deadliner); ok {
		// Pipes that cannot take a deadline fall back to blocking reads;
		// the -t limit and ctx still end them.
		_ = d.SetReadDeadline(time.Now().Add(p.poll))
	}

	n, err := p.out.Read(b)
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return n, nil
	}
	return n, err
}

// Close kills the decoder if it is still running and reaps it. The exit
// status is ignored: a killed or truncated decoder never exits cleanly.
func (p *process) Close() error {
	var err error
	p.once.Do(func() {
		if kerr := p.cmd.Process.Kill(); kerr != nil && !errors.Is(kerr, os.ErrProcessDone) {
			err = kerr
		}
		_ = p.cmd.Wait()
	})
	return err
}
