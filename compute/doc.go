// SPDX-License-Identifier: MIT

// Package compute collects the scalar building blocks shared by the vector
// and matrix packages.
//
// What lives here:
//   - Float32 constants (π multiples, degree/radian factors) and the single
//     tolerance Epsilon used by every tolerance-based comparison in lvmath.
//   - Generic helpers over golang.org/x/exp/constraints: Clamp, Min, Max,
//     Abs, Sign.
//   - Integer rounding (Floor, Ceil, Round), degree/radian conversion and
//     slope-to-angle conversion.
//   - Scalar 2D products and point-in-shape tests that work on plain
//     coordinates (no vector allocation).
//   - Random helpers backed by golang.org/x/exp/rand.
//
// Every function is pure except the package-level random helpers, which
// share the goroutine-safe default source of x/exp/rand.
package compute
