// SPDX-License-Identifier: MIT

package compute

// Angle constants in single precision.
const (
	Pi             float32 = 3.141592653589793
	TwoPi          float32 = 6.283185307179586
	HalfPi         float32 = 1.570796326794897
	InvPi          float32 = 0.318309886192889
	DegToRadFactor float32 = 0.017453292519943
	RadToDegFactor float32 = 57.29577951308232
)

// Epsilon is the accountable computational loss of float32 arithmetic.
// It is the tolerance of tolerance-based equality across the module and the
// snap-to-integer window of matrix products; changing it changes results.
const Epsilon float32 = 2.0e-5

// PrecisionLoss is the slack added by Equal and EqualWithin.
const PrecisionLoss float32 = 2.0e-5
