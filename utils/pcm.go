// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Int16Scale is the magnitude ceiling of a signed 16-bit sample.
const Int16Scale = 32768.0

// Int16ToFloat32 maps a signed 16-bit sample into [-1, 1).
// math.MinInt16 maps to exactly -1.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / Int16Scale
}

// Float32ToInt16 scales x by 32768 and saturates to the int16 range. It is
// the exact inverse of Int16ToFloat32 for every int16 value.
func Float32ToInt16(x float32) int16 {
	v := x * Int16Scale
	switch {
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}
