// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"context"
	"errors"
)

var (
	ErrNoBuffer       = errors.New("destination buffer is empty")
	ErrBufferTooSmall = errors.New("destination buffer too small for window")
	ErrInvalidWindow  = errors.New("window duration must be positive")
	ErrLaunch         = errors.New("cannot start decoder")
	ErrUnsupported    = errors.New("operation not supported by backend")
	ErrRead           = errors.New("read from decoder failed")
	ErrReadTimeout    = errors.New("decoder produced no data before the read ceiling")
	ErrNoData         = errors.New("no audio data received")
)

// Category names the diagnostic class of err for log fields. It returns an
// empty string for nil.
func Category(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, ErrNoBuffer), errors.Is(err, ErrBufferTooSmall), errors.Is(err, ErrInvalidWindow):
		return "config"
	case errors.Is(err, ErrLaunch), errors.Is(err, ErrUnsupported):
		return "unavailable"
	case errors.Is(err, ErrReadTimeout):
		return "timeout"
	case errors.Is(err, ErrNoData):
		return "no-data"
	default:
		return "read"
	}
}
