// SPDX-License-Identifier: EPL-2.0

package utils

// LinearInterpolate blends a and b at fraction x (0 <= x <= 1).
// x == 0 returns a exactly.
func LinearInterpolate(a, b float32, x float64) float32 {
	return float32((1.0-x)*float64(a) + x*float64(b))
}

// CubicInterpolate evaluates a Catmull-Rom spline through four consecutive
// samples at fraction x between y1 and y2.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
