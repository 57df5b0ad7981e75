// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/compute"
)

// Vec4 is a 4D point or vector, also used as the augmented column of a
// 4x4 system.
type Vec4 struct {
	X, Y, Z, W float32
}

// NewVec4 returns a new Vec4 at (x, y, z, w).
func NewVec4(x, y, z, w float32) *Vec4 {
	return &Vec4{X: x, Y: y, Z: z, W: w}
}

// Clone returns an independent copy.
func (v *Vec4) Clone() *Vec4 {
	c := *v

	return &c
}

// Set assigns all components.
func (v *Vec4) Set(x, y, z, w float32) *Vec4 {
	v.X, v.Y, v.Z, v.W = x, y, z, w

	return v
}

// SetVec copies p into v.
func (v *Vec4) SetVec(p *Vec4) *Vec4 {
	*v = *p

	return v
}

func (v *Vec4) SetX(x float32) *Vec4 { v.X = x; return v }
func (v *Vec4) SetY(y float32) *Vec4 { v.Y = y; return v }
func (v *Vec4) SetZ(z float32) *Vec4 { v.Z = z; return v }
func (v *Vec4) SetW(w float32) *Vec4 { v.W = w; return v }

func (v *Vec4) IncX(d float32) *Vec4 { v.X += d; return v }
func (v *Vec4) IncY(d float32) *Vec4 { v.Y += d; return v }
func (v *Vec4) IncZ(d float32) *Vec4 { v.Z += d; return v }
func (v *Vec4) IncW(d float32) *Vec4 { v.W += d; return v }

// LenSqr returns the squared magnitude.
func (v *Vec4) LenSqr() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Len returns the magnitude.
func (v *Vec4) Len() float32 {
	return float32(math.Sqrt(float64(v.LenSqr())))
}

// DistSqr returns the squared distance between v and p.
func (v *Vec4) DistSqr(p *Vec4) float32 {
	return v.Clone().Sub(p).LenSqr()
}

// Dist returns the distance between v and p.
func (v *Vec4) Dist(p *Vec4) float32 {
	return float32(math.Sqrt(float64(v.DistSqr(p))))
}

// Dot returns v · p.
func (v *Vec4) Dot(p *Vec4) float32 {
	return v.X*p.X + v.Y*p.Y + v.Z*p.Z + v.W*p.W
}

func (v *Vec4) Add(p *Vec4) *Vec4 { return v.Set(v.X+p.X, v.Y+p.Y, v.Z+p.Z, v.W+p.W) }
func (v *Vec4) Sub(p *Vec4) *Vec4 { return v.Set(v.X-p.X, v.Y-p.Y, v.Z-p.Z, v.W-p.W) }

// AddXYZW adds (x, y, z, w).
func (v *Vec4) AddXYZW(x, y, z, w float32) *Vec4 {
	return v.Set(v.X+x, v.Y+y, v.Z+z, v.W+w)
}

// SubXYZW subtracts (x, y, z, w).
func (v *Vec4) SubXYZW(x, y, z, w float32) *Vec4 {
	return v.Set(v.X-x, v.Y-y, v.Z-z, v.W-w)
}

// Mul scales v by s.
func (v *Vec4) Mul(s float32) *Vec4 {
	return v.Set(v.X*s, v.Y*s, v.Z*s, v.W*s)
}

// MulVec multiplies component-wise.
func (v *Vec4) MulVec(p *Vec4) *Vec4 {
	return v.Set(v.X*p.X, v.Y*p.Y, v.Z*p.Z, v.W*p.W)
}

// Div divides v by s.
func (v *Vec4) Div(s float32) *Vec4 {
	return v.Set(v.X/s, v.Y/s, v.Z/s, v.W/s)
}

// DivVec divides component-wise.
func (v *Vec4) DivVec(p *Vec4) *Vec4 {
	return v.Set(v.X/p.X, v.Y/p.Y, v.Z/p.Z, v.W/p.W)
}

func (v *Vec4) Ceil() *Vec4 {
	return v.Set(float32(compute.Ceil(v.X)), float32(compute.Ceil(v.Y)),
		float32(compute.Ceil(v.Z)), float32(compute.Ceil(v.W)))
}

func (v *Vec4) Floor() *Vec4 {
	return v.Set(float32(compute.Floor(v.X)), float32(compute.Floor(v.Y)),
		float32(compute.Floor(v.Z)), float32(compute.Floor(v.W)))
}

func (v *Vec4) Abs() *Vec4 {
	return v.Set(compute.Abs(v.X), compute.Abs(v.Y), compute.Abs(v.Z), compute.Abs(v.W))
}

func (v *Vec4) Invert() *Vec4 {
	return v.Set(-v.X, -v.Y, -v.Z, -v.W)
}

// Normalize scales v to unit length. A zero vector is left as is.
func (v *Vec4) Normalize() *Vec4 {
	mag := v.Len()
	if mag == 0 {
		return v
	}

	return v.Div(mag)
}

// Equal reports whether every component matches within compute.Epsilon.
func (v *Vec4) Equal(p *Vec4) bool {
	return v.EqualWithin(p, 0)
}

// EqualWithin reports whether every component matches within
// compute.Epsilon + threshold.
func (v *Vec4) EqualWithin(p *Vec4, threshold float32) bool {
	r := compute.Epsilon + threshold

	return within(v.X, p.X, r) && within(v.Y, p.Y, r) &&
		within(v.Z, p.Z, r) && within(v.W, p.W, r)
}

// String renders v as {x, y, z, w}.
func (v *Vec4) String() string {
	return fmt.Sprintf("{%g, %g, %g, %g}", v.X, v.Y, v.Z, v.W)
}
