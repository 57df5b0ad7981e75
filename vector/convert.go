// SPDX-License-Identifier: MIT

package vector

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
)

// F32 returns v as an f32.Vec2.
func (v *Vec2) F32() f32.Vec2 { return f32.Vec2{v.X, v.Y} }

// F32 returns v as an f32.Vec3.
func (v *Vec3) F32() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }

// F32 returns v as an f32.Vec4.
func (v *Vec4) F32() f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }

// Vec2FromF32 converts an f32.Vec2.
func Vec2FromF32(a f32.Vec2) *Vec2 { return &Vec2{X: a[0], Y: a[1]} }

// Vec3FromF32 converts an f32.Vec3.
func Vec3FromF32(a f32.Vec3) *Vec3 { return &Vec3{X: a[0], Y: a[1], Z: a[2]} }

// Vec4FromF32 converts an f32.Vec4.
func Vec4FromF32(a f32.Vec4) *Vec4 { return &Vec4{X: a[0], Y: a[1], Z: a[2], W: a[3]} }

// fixedOne is 1.0 in 26.6 fixed point.
const fixedOne = 1 << 6

// Fixed returns v as a 26.6 fixed-point point, rounding each component to
// the nearest 1/64.
func (v *Vec2) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(v.X), Y: toFixed(v.Y)}
}

// Vec2FromFixed converts a 26.6 fixed-point point.
func Vec2FromFixed(p fixed.Point26_6) *Vec2 {
	return &Vec2{X: float32(p.X) / fixedOne, Y: float32(p.Y) / fixedOne}
}

func toFixed(f float32) fixed.Int26_6 {
	if f < 0 {
		return -fixed.Int26_6(-f*fixedOne + 0.5)
	}

	return fixed.Int26_6(f*fixedOne + 0.5)
}
