// SPDX-License-Identifier: MIT

package compute

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any signed integer or float type.
type Number interface {
	constraints.Signed | constraints.Float
}

// Min returns the smaller of a and b (b on ties).
func Min[T constraints.Ordered](a, b T) T {
	if a > b {
		return b
	}

	return a
}

// Max returns the larger of a and b (a on ties).
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}

	return b
}

// Clamp limits val to [lo, hi]. Assumes lo <= hi.
func Clamp[T constraints.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}

	return val
}

// Abs returns |a|. Negative zero is returned as positive zero.
func Abs[T Number](a T) T {
	if a < 0 {
		return -a
	}
	if a == 0 {
		return 0
	}

	return a
}

// Sign returns -1, 0 or 1 following the sign of a.
func Sign[T Number](a T) T {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}

	return 0
}

// Floor rounds a toward negative infinity.
func Floor(a float32) int {
	return int(math.Floor(float64(a)))
}

// Ceil rounds a toward positive infinity.
func Ceil(a float32) int {
	return int(math.Ceil(float64(a)))
}

// Round rounds a to the nearest integer, halves toward positive infinity
// (Round(2.5) == 3, Round(-2.5) == -2).
func Round(a float32) int {
	return int(math.Floor(float64(a) + 0.5))
}

// Equal reports whether a and b differ by at most PrecisionLoss.
func Equal(a, b float32) bool {
	return a >= b-PrecisionLoss && a <= b+PrecisionLoss
}

// EqualWithin reports whether a and b differ by at most
// PrecisionLoss + threshold.
func EqualWithin(a, b, threshold float32) bool {
	return a >= b-PrecisionLoss-threshold && a <= b+PrecisionLoss+threshold
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// SlopeToRad returns the angle of (x, y) around the origin in [0, 2π).
// (1,0) -> 0, (0,1) -> π/2, (-1,0) -> π. The origin itself maps to 0.
func SlopeToRad(x, y float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}
	radians := float32(math.Atan2(float64(y), float64(x)))
	if radians == 0 {
		return 0 // drop the sign of -0
	}
	if radians < 0 {
		return TwoPi + radians
	}

	return radians
}

// CrossProduct returns the z component of (x1,y1) × (x2,y2).
func CrossProduct(x1, y1, x2, y2 float32) float32 {
	return y2*x1 - x2*y1
}

// DotProduct returns (x1,y1) · (x2,y2).
func DotProduct(x1, y1, x2, y2 float32) float32 {
	return x1*x2 + y1*y2
}

// IndexToPoint maps a row-major index into (x, y) for a grid of the given
// width. The top-left cell is index 0; a non-positive width yields (0, 0).
func IndexToPoint(index, width int) (x, y int) {
	if width <= 0 {
		return 0, 0
	}

	return index % width, index / width
}

// PointToIndex is the inverse of IndexToPoint.
func PointToIndex(x, y, width int) int {
	return y*width + x
}
