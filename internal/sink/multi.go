// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"context"

	"github.com/ik5/audcap/capture"
)

// Multi hands each window to every handler in order and stops at the
// first error.
type Multi []capture.WindowHandler

func (m Multi) HandleWindow(ctx context.Context, w capture.Window) error {
	for _, h := range m {
		if err := h.HandleWindow(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
