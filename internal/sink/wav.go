// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audcap/capture"
	"github.com/ik5/audcap/formats/wav"
)

// WAV stores every window as <phase>_<id>.wav in Dir.
type WAV struct {
	Dir string
}

// NewWAV creates dir if needed.
func NewWAV(dir string) (*WAV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating dump dir: %w", err)
	}
	return &WAV{Dir: dir}, nil
}

// Path is where w is written.
func (s *WAV) Path(w capture.Window) string {
	phase := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, w.Phase)
	return filepath.Join(s.Dir, fmt.Sprintf("%s_%s.wav", phase, w.ID))
}

func (s *WAV) HandleWindow(_ context.Context, w capture.Window) error {
	f, err := os.Create(s.Path(w))
	if err != nil {
		return fmt.Errorf("dump window: %w", err)
	}
	if err := wav.WriteFloat32(f, w.Rate, w.Samples); err != nil {
		f.Close()
		return fmt.Errorf("dump window: %w", err)
	}
	return f.Close()
}
