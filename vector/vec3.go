// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/compute"
)

// Vec3 is a 3D point or vector.
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 returns a new Vec3 at (x, y, z).
func NewVec3(x, y, z float32) *Vec3 {
	return &Vec3{X: x, Y: y, Z: z}
}

// Clone returns an independent copy.
func (v *Vec3) Clone() *Vec3 {
	c := *v

	return &c
}

// Set assigns all components.
func (v *Vec3) Set(x, y, z float32) *Vec3 {
	v.X, v.Y, v.Z = x, y, z

	return v
}

// SetVec copies p into v.
func (v *Vec3) SetVec(p *Vec3) *Vec3 {
	*v = *p

	return v
}

func (v *Vec3) SetX(x float32) *Vec3 { v.X = x; return v }
func (v *Vec3) SetY(y float32) *Vec3 { v.Y = y; return v }
func (v *Vec3) SetZ(z float32) *Vec3 { v.Z = z; return v }

func (v *Vec3) IncX(d float32) *Vec3 { v.X += d; return v }
func (v *Vec3) IncY(d float32) *Vec3 { v.Y += d; return v }
func (v *Vec3) IncZ(d float32) *Vec3 { v.Z += d; return v }

// LenSqr returns the squared magnitude.
func (v *Vec3) LenSqr() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Len returns the magnitude.
func (v *Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.LenSqr())))
}

// DistSqr returns the squared distance between v and p.
func (v *Vec3) DistSqr(p *Vec3) float32 {
	dx, dy, dz := v.X-p.X, v.Y-p.Y, v.Z-p.Z

	return dx*dx + dy*dy + dz*dz
}

// Dist returns the distance between v and p.
func (v *Vec3) Dist(p *Vec3) float32 {
	return float32(math.Sqrt(float64(v.DistSqr(p))))
}

// Dot returns v · p.
func (v *Vec3) Dot(p *Vec3) float32 {
	return v.X*p.X + v.Y*p.Y + v.Z*p.Z
}

// Cross returns v × p as a new vector; v is not modified.
func (v *Vec3) Cross(p *Vec3) *Vec3 {
	return &Vec3{
		X: v.Y*p.Z - v.Z*p.Y,
		Y: v.Z*p.X - v.X*p.Z,
		Z: v.X*p.Y - v.Y*p.X,
	}
}

// InSphere reports whether v lies inside or on the sphere.
func (v *Vec3) InSphere(center *Vec3, radius float32) bool {
	return v.DistSqr(center) <= radius*radius
}

// InBox reports whether v lies inside the box whose minimum corner is loc.
func (v *Vec3) InBox(loc *Vec3, w, h, d float32) bool {
	return v.X >= loc.X && v.X <= loc.X+w &&
		v.Y >= loc.Y && v.Y <= loc.Y+h &&
		v.Z >= loc.Z && v.Z <= loc.Z+d
}

// Add adds p component-wise.
func (v *Vec3) Add(p *Vec3) *Vec3 {
	return v.Set(v.X+p.X, v.Y+p.Y, v.Z+p.Z)
}

// AddXYZ adds (x, y, z).
func (v *Vec3) AddXYZ(x, y, z float32) *Vec3 {
	return v.Set(v.X+x, v.Y+y, v.Z+z)
}

// Sub subtracts p component-wise.
func (v *Vec3) Sub(p *Vec3) *Vec3 {
	return v.Set(v.X-p.X, v.Y-p.Y, v.Z-p.Z)
}

// SubXYZ subtracts (x, y, z).
func (v *Vec3) SubXYZ(x, y, z float32) *Vec3 {
	return v.Set(v.X-x, v.Y-y, v.Z-z)
}

// Mul scales v by s.
func (v *Vec3) Mul(s float32) *Vec3 {
	return v.Set(v.X*s, v.Y*s, v.Z*s)
}

// MulVec multiplies component-wise.
func (v *Vec3) MulVec(p *Vec3) *Vec3 {
	return v.Set(v.X*p.X, v.Y*p.Y, v.Z*p.Z)
}

// Div divides v by s.
func (v *Vec3) Div(s float32) *Vec3 {
	return v.Set(v.X/s, v.Y/s, v.Z/s)
}

// DivVec divides component-wise.
func (v *Vec3) DivVec(p *Vec3) *Vec3 {
	return v.Set(v.X/p.X, v.Y/p.Y, v.Z/p.Z)
}

func (v *Vec3) Ceil() *Vec3 {
	return v.Set(float32(compute.Ceil(v.X)), float32(compute.Ceil(v.Y)), float32(compute.Ceil(v.Z)))
}

func (v *Vec3) Floor() *Vec3 {
	return v.Set(float32(compute.Floor(v.X)), float32(compute.Floor(v.Y)), float32(compute.Floor(v.Z)))
}

func (v *Vec3) Abs() *Vec3 {
	return v.Set(compute.Abs(v.X), compute.Abs(v.Y), compute.Abs(v.Z))
}

func (v *Vec3) Invert() *Vec3 {
	return v.Set(-v.X, -v.Y, -v.Z)
}

// Normalize scales v to unit length. A zero vector is left as is.
func (v *Vec3) Normalize() *Vec3 {
	mag := v.Len()
	if mag == 0 {
		return v
	}

	return v.Div(mag)
}

// Equal reports whether every component matches within compute.Epsilon.
func (v *Vec3) Equal(p *Vec3) bool {
	return v.EqualWithin(p, 0)
}

// EqualWithin reports whether every component matches within
// compute.Epsilon + threshold.
func (v *Vec3) EqualWithin(p *Vec3, threshold float32) bool {
	r := compute.Epsilon + threshold

	return within(v.X, p.X, r) && within(v.Y, p.Y, r) && within(v.Z, p.Z, r)
}

// String renders v as {x, y, z}.
func (v *Vec3) String() string {
	return fmt.Sprintf("{%g, %g, %g}", v.X, v.Y, v.Z)
}
