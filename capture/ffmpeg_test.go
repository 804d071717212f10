// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDecoder writes a shell script standing in for the ffmpeg binary.
// These tests start processes and stay sequential so no other fork can
// hold the script open while it is executed.
func fakeDecoder(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no sh on PATH")
	}

	path := filepath.Join(t.TempDir(), "ffmpeg")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestFFmpeg_FileCapture(t *testing.T) {
	if _, err := exec.LookPath("head"); err != nil {
		t.Skip("no head on PATH")
	}
	ff := &FFmpeg{Path: fakeDecoder(t, "exec head -c 64 /dev/zero")}

	c := New(DefaultOptions(), WithBackend(ff))
	dst := make([]float32, 40)
	for i := range dst {
		dst[i] = 1
	}

	n, err := c.CaptureFile(context.Background(), "voice.wav", dst)
	require.NoError(t, err)
	assert.Equal(t, 32, n)
	assert.Equal(t, make([]float32, 40), dst)
}

func TestFFmpeg_SilentDecoderTimesOut(t *testing.T) {
	ff := &FFmpeg{Path: fakeDecoder(t, "exec sleep 30"), Poll: 5 * time.Millisecond}

	opts := DefaultOptions()
	opts.ReadCeiling = 100 * time.Millisecond
	c := New(opts, WithBackend(ff))

	start := time.Now()
	_, err := c.CaptureStream(context.Background(), "rtsp://cam/live", make([]float32, TargetRate*3))
	require.ErrorIs(t, err, ErrReadTimeout)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestFFmpeg_CancelDuringDrain(t *testing.T) {
	ff := &FFmpeg{Path: fakeDecoder(t, "head -c 2000 /dev/zero; exec sleep 30")}
	c := New(DefaultOptions(), WithBackend(ff))

	for _, poll := range []time.Duration{0, time.Second} {
		ff.Poll = poll

		ctx, cancel := context.WithCancel(context.Background())
		stop := time.AfterFunc(150*time.Millisecond, cancel)

		dst := make([]float32, TargetRate)
		n, err := c.CaptureWindow(ctx, "rtsp://cam/live", KWSWindow, dst)
		stop.Stop()
		cancel()

		require.ErrorIs(t, err, context.Canceled, "poll %s", poll)
		assert.Zero(t, n)
		assert.Equal(t, make([]float32, TargetRate), dst, "a canceled window leaves dst alone")
	}
}

func TestFFmpeg_CancelDuringFileCapture(t *testing.T) {
	ff := &FFmpeg{Path: fakeDecoder(t, "head -c 2000 /dev/zero; exec sleep 30")}
	c := New(DefaultOptions(), WithBackend(ff))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(150*time.Millisecond, cancel)

	dst := make([]float32, TargetRate)
	for i := range dst {
		dst[i] = 1
	}
	n, err := c.CaptureFile(ctx, "voice.wav", dst)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
	assert.Equal(t, make([]float32, TargetRate), dst)
}

func TestFFmpeg_CancelDuringLoopHandsOutNothing(t *testing.T) {
	ff := &FFmpeg{Path: fakeDecoder(t, "head -c 2000 /dev/zero; exec sleep 30")}
	c := New(DefaultOptions(), WithBackend(ff))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(150*time.Millisecond, cancel)

	rec := &recorder{}
	l := &Loop{Capturer: c, URL: "rtsp://cam/live", Gap: CycleGap, Handler: rec}
	err := l.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.windows)
}

func TestFFmpeg_CloseReapsProcess(t *testing.T) {
	ff := &FFmpeg{Path: fakeDecoder(t, "exec sleep 30")}

	p, err := ff.OpenStream(context.Background(), "rtsp://cam/live", StreamParams{SampleRate: SourceRate, Channels: 1})
	require.NoError(t, err)

	n, err := p.Read(make([]byte, 16))
	assert.Zero(t, n)
	assert.NoError(t, err, "no data yet is not an error")

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	proc := p.(*process)
	require.NotNil(t, proc.cmd.ProcessState)
	assert.True(t, proc.cmd.ProcessState.Exited() || !proc.cmd.ProcessState.Success())
}

func TestFFmpeg_LaunchFailure(t *testing.T) {
	ff := &FFmpeg{Path: filepath.Join(t.TempDir(), "no-such-ffmpeg")}

	_, err := ff.OpenFile(context.Background(), "voice.wav", TargetRate)
	require.ErrorIs(t, err, ErrLaunch)

	c := New(DefaultOptions(), WithBackend(ff))
	_, err = c.CaptureStream(context.Background(), "rtsp://cam/live", make([]float32, TargetRate*3))
	assert.ErrorIs(t, err, ErrLaunch)
}

func TestFFmpeg_Defaults(t *testing.T) {
	t.Parallel()

	ff := &FFmpeg{}
	assert.Equal(t, "ffmpeg", ff.path())
	assert.Equal(t, "-timeout", ff.timeoutFlag())

	ff = &FFmpeg{Path: "/opt/ffmpeg4/bin/ffmpeg", TimeoutFlag: "-stimeout"}
	assert.Equal(t, "/opt/ffmpeg4/bin/ffmpeg", ff.path())
	assert.Equal(t, "-stimeout", ff.timeoutFlag())
}
