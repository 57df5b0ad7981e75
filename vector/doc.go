// SPDX-License-Identifier: MIT

// Package vector provides the 2D, 3D and 4D single-precision point/vector
// types used by lvmath.
//
// Each value owns its coordinates. Mutating methods have pointer receivers
// and return the receiver so calls chain:
//
//	v := vector.NewVec2(3, 4).Normalize().Mul(10) // {6, 8}
//
// Callers that need the original value keep a Clone:
//
//	w := v.Clone().Sub(origin)
//
// Equality is tolerance-based: two components match when they differ by at
// most compute.Epsilon (plus an optional extra threshold for EqualWithin).
//
// Interop with golang.org/x/image: every type converts to and from the
// matching f32.VecN array, and Vec2 converts to and from fixed.Point26_6 for
// font and rasterizer coordinates.
package vector
