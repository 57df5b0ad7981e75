// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the unexported kernels.
//
// This file is compiled only with the tests, so matrix_test can reach the
// elimination and snapping kernels without widening the production API.

// PanicEpsilonInvalid exposes the stable WithEpsilon panic message.
const PanicEpsilonInvalid = panicEpsilonInvalid

// Eliminate_TestOnly runs the elimination kernel on caller-owned buffers.
func Eliminate_TestOnly(a []float32, rows, cols int, b []float32, bcols int) {
	eliminate(a, rows, cols, b, bcols)
}

// SnapToInteger_TestOnly exposes the product correction.
func SnapToInteger_TestOnly(v float32) float32 { return snapToInteger(v) }
