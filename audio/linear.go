// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audcap/utils"

// ResampleLinear stretches or squeezes src onto exactly len(dst) samples by
// linear interpolation between the two nearest source samples.
//
// Positions past the end of src read as silence, and the last source sample
// is held rather than wrapped. No anti-aliasing filter is applied. When
// len(src) == len(dst) the output equals the input.
func ResampleLinear(dst, src []float32) {
	if len(dst) == 0 {
		return
	}

	step := float64(len(src)) / float64(len(dst))
	for i := range dst {
		pos := float64(i) * step
		idx := int(pos)
		frac := pos - float64(idx)

		var s1 float32
		if idx < len(src) {
			s1 = src[idx]
		}
		s2 := s1
		if idx+1 < len(src) {
			s2 = src[idx+1]
		}

		dst[i] = utils.LinearInterpolate(s1, s2, frac)
	}
}
