// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

// ErrNotAiffFile indicates the input is not an AIFF stream.
var ErrNotAiffFile = errors.New("not an AIFF file")
