// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/ik5/audcap/formats"
)

// Backend starts decoders that emit signed 16-bit little-endian PCM.
type Backend interface {
	// OpenFile decodes path to mono at rate.
	OpenFile(ctx context.Context, path string, rate int) (Producer, error)
	// OpenStream connects to a live source and decodes one window.
	OpenStream(ctx context.Context, url string, p StreamParams) (Producer, error)
}

const (
	BackendAuto   = "auto"
	BackendFFmpeg = "ffmpeg"
	BackendNative = "native"
)

// NewBackend resolves a backend by name. BackendAuto picks ff when its
// binary is on PATH and the in-process decoders otherwise.
func NewBackend(name string, ff *FFmpeg) (Backend, error) {
	if ff == nil {
		ff = &FFmpeg{}
	}

	switch name {
	case BackendFFmpeg:
		return ff, nil
	case BackendNative:
		return &Native{Registry: formats.Registry()}, nil
	case BackendAuto, "":
		if _, err := exec.LookPath(ff.path()); err == nil {
			return ff, nil
		}
		return &Native{Registry: formats.Registry()}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}
