// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/compute"
)

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X, Y float32
}

// NewVec2 returns a new Vec2 at (x, y).
func NewVec2(x, y float32) *Vec2 {
	return &Vec2{X: x, Y: y}
}

// Clone returns an independent copy.
func (v *Vec2) Clone() *Vec2 {
	c := *v

	return &c
}

// Set assigns both components.
func (v *Vec2) Set(x, y float32) *Vec2 {
	v.X, v.Y = x, y

	return v
}

// SetVec copies p into v.
func (v *Vec2) SetVec(p *Vec2) *Vec2 {
	v.X, v.Y = p.X, p.Y

	return v
}

// SetX assigns the x component.
func (v *Vec2) SetX(x float32) *Vec2 {
	v.X = x

	return v
}

// SetY assigns the y component.
func (v *Vec2) SetY(y float32) *Vec2 {
	v.Y = y

	return v
}

// SetFromIndex places v on the cell of a row-major grid of the given width
// (x = column, y = row). A negative index or non-positive width resets v
// to the origin.
func (v *Vec2) SetFromIndex(index, width int) *Vec2 {
	if index < 0 || width <= 0 {
		return v.Set(0, 0)
	}
	x, y := compute.IndexToPoint(index, width)

	return v.Set(float32(x), float32(y))
}

// Index is the row-major index of v's truncated coordinates in a grid of
// the given width, or 0 when width or a coordinate is negative.
func (v *Vec2) Index(width int) int {
	if width < 0 || v.X < 0 || v.Y < 0 {
		return 0
	}

	return compute.PointToIndex(int(v.X), int(v.Y), width)
}

// LenSqr returns the squared magnitude.
func (v *Vec2) LenSqr() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the magnitude.
func (v *Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.LenSqr())))
}

// DistSqr returns the squared distance between v and p.
func (v *Vec2) DistSqr(p *Vec2) float32 {
	dx, dy := v.X-p.X, v.Y-p.Y

	return dx*dx + dy*dy
}

// Dist returns the distance between v and p.
func (v *Vec2) Dist(p *Vec2) float32 {
	return float32(math.Sqrt(float64(v.DistSqr(p))))
}

// Slope returns y/x.
func (v *Vec2) Slope() float32 {
	return v.Y / v.X
}

// SlopeTo returns the slope of the line through v and p.
func (v *Vec2) SlopeTo(p *Vec2) float32 {
	return (v.Y - p.Y) / (v.X - p.X)
}

// Atan2 returns atan2(y, x) in (-π, π].
func (v *Vec2) Atan2() float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X)))
}

// Radians returns the angle of v around the origin in [0, 2π).
func (v *Vec2) Radians() float32 {
	return compute.SlopeToRad(v.X, v.Y)
}

// RadiansTo returns the angle of v around p in [0, 2π).
func (v *Vec2) RadiansTo(p *Vec2) float32 {
	return compute.SlopeToRad(v.X-p.X, v.Y-p.Y)
}

// Dot returns v · p.
func (v *Vec2) Dot(p *Vec2) float32 {
	return compute.DotProduct(v.X, v.Y, p.X, p.Y)
}

// Cross returns the z component of v × p.
func (v *Vec2) Cross(p *Vec2) float32 {
	return compute.CrossProduct(v.X, v.Y, p.X, p.Y)
}

// SideOf reports on which side of the line v→end the point test lies.
// The sign flips with the side; zero means collinear.
func (v *Vec2) SideOf(end, test *Vec2) float32 {
	return SideOf(test, v, end)
}

// YIntercept returns b of the line y = m*x + b through v and p.
func (v *Vec2) YIntercept(p *Vec2) float32 {
	return v.Y - v.SlopeTo(p)*v.X
}

// SolveX returns x on the line through v and p at the given y. A vertical
// line returns v.X; a horizontal line has no unique answer and returns NaN.
func (v *Vec2) SolveX(p *Vec2, y float32) float32 {
	dx, dy := v.X-p.X, v.Y-p.Y
	switch {
	case dx != 0 && dy != 0:
		return (y - v.YIntercept(p)) / v.SlopeTo(p)
	case dx == 0:
		return v.X
	}

	return float32(math.NaN())
}

// SolveY returns y on the line through v and p at the given x. A
// horizontal line returns v.Y; a vertical line returns NaN.
func (v *Vec2) SolveY(p *Vec2, x float32) float32 {
	dx, dy := v.X-p.X, v.Y-p.Y
	switch {
	case dx != 0 && dy != 0:
		return v.SlopeTo(p)*x + v.YIntercept(p)
	case dy == 0:
		return v.Y
	}

	return float32(math.NaN())
}

// SolveXSlope returns x on the line of slope m through v at the given y.
func (v *Vec2) SolveXSlope(m, y float32) float32 {
	return (y - v.Y + m*v.X) / m
}

// SolveYSlope returns y on the line of slope m through v at the given x.
func (v *Vec2) SolveYSlope(m, x float32) float32 {
	return m*x - m*v.X + v.Y
}

// InTriangle reports whether v lies inside triangle abc (either winding).
func (v *Vec2) InTriangle(a, b, c *Vec2) bool {
	return InTriangle(v, a, b, c)
}

// InCircle reports whether v lies inside or on the circle.
func (v *Vec2) InCircle(center *Vec2, radius float32) bool {
	return v.DistSqr(center) <= radius*radius
}

// InEllipse reports whether v lies inside or on the axis-aligned ellipse
// with radii rw and rh.
func (v *Vec2) InEllipse(center *Vec2, rw, rh float32) bool {
	dx, dy := v.X-center.X, v.Y-center.Y

	return (dx*dx)/(rw*rw)+(dy*dy)/(rh*rh) <= 1
}

// InBox reports whether v lies inside the box with top-left corner loc.
func (v *Vec2) InBox(loc *Vec2, w, h float32) bool {
	return compute.PointInBox(v.X, v.Y, loc.X, loc.Y, w, h)
}

// IncX adds d to x.
func (v *Vec2) IncX(d float32) *Vec2 {
	v.X += d

	return v
}

// IncY adds d to y.
func (v *Vec2) IncY(d float32) *Vec2 {
	v.Y += d

	return v
}

// Add adds p component-wise.
func (v *Vec2) Add(p *Vec2) *Vec2 {
	v.X += p.X
	v.Y += p.Y

	return v
}

// AddXY adds (x, y).
func (v *Vec2) AddXY(x, y float32) *Vec2 {
	v.X += x
	v.Y += y

	return v
}

// Sub subtracts p component-wise.
func (v *Vec2) Sub(p *Vec2) *Vec2 {
	v.X -= p.X
	v.Y -= p.Y

	return v
}

// SubXY subtracts (x, y).
func (v *Vec2) SubXY(x, y float32) *Vec2 {
	v.X -= x
	v.Y -= y

	return v
}

// Mul scales v by s.
func (v *Vec2) Mul(s float32) *Vec2 {
	v.X *= s
	v.Y *= s

	return v
}

// MulVec multiplies component-wise.
func (v *Vec2) MulVec(p *Vec2) *Vec2 {
	v.X *= p.X
	v.Y *= p.Y

	return v
}

// Div divides v by s.
func (v *Vec2) Div(s float32) *Vec2 {
	v.X /= s
	v.Y /= s

	return v
}

// DivVec divides component-wise.
func (v *Vec2) DivVec(p *Vec2) *Vec2 {
	v.X /= p.X
	v.Y /= p.Y

	return v
}

// Ceil rounds both components up.
func (v *Vec2) Ceil() *Vec2 {
	return v.Set(float32(compute.Ceil(v.X)), float32(compute.Ceil(v.Y)))
}

// Floor rounds both components down.
func (v *Vec2) Floor() *Vec2 {
	return v.Set(float32(compute.Floor(v.X)), float32(compute.Floor(v.Y)))
}

// Abs makes both components non-negative.
func (v *Vec2) Abs() *Vec2 {
	return v.Set(compute.Abs(v.X), compute.Abs(v.Y))
}

// Invert negates both components.
func (v *Vec2) Invert() *Vec2 {
	return v.Set(-v.X, -v.Y)
}

// Normalize scales v to unit length. A zero vector is left as is.
func (v *Vec2) Normalize() *Vec2 {
	mag := v.Len()
	if mag == 0 {
		return v
	}

	return v.Div(mag)
}

// Rotate rotates v about center by radians (counter-clockwise in a y-up
// frame).
func (v *Vec2) Rotate(center *Vec2, radians float32) *Vec2 {
	s, c := math.Sincos(float64(radians))
	dx, dy := float64(v.X-center.X), float64(v.Y-center.Y)

	return v.Set(
		center.X+float32(dx*c-dy*s),
		center.Y+float32(dx*s+dy*c),
	)
}

// LerpY moves v by xOff along the line of slope m through v.
func (v *Vec2) LerpY(m, xOff float32) *Vec2 {
	return v.Set(v.X+xOff, v.Y+m*xOff)
}

// LerpX moves v by yOff along the line of slope m through v.
func (v *Vec2) LerpX(m, yOff float32) *Vec2 {
	return v.Set(v.X+yOff/m, v.Y+yOff)
}

// LerpRatio moves v toward p by ratio of the distance between them
// (0 stays, 1 arrives).
func (v *Vec2) LerpRatio(p *Vec2, ratio float32) *Vec2 {
	return v.LerpDistance(p, v.Dist(p)*ratio)
}

// LerpDistance moves v toward p by dist.
func (v *Vec2) LerpDistance(p *Vec2, dist float32) *Vec2 {
	step := p.Clone().Sub(v).Normalize().Mul(dist)

	return v.Add(step)
}

// ToPolar rewrites (x, y) as (radius, angle).
func (v *Vec2) ToPolar() *Vec2 {
	return v.Set(v.Len(), v.Atan2())
}

// ToCartesian rewrites (radius, angle) as (x, y).
func (v *Vec2) ToCartesian() *Vec2 {
	s, c := math.Sincos(float64(v.Y))

	return v.Set(v.X*float32(c), v.X*float32(s))
}

// Equal reports whether every component matches within compute.Epsilon.
func (v *Vec2) Equal(p *Vec2) bool {
	return v.EqualWithin(p, 0)
}

// EqualWithin reports whether every component matches within
// compute.Epsilon + threshold.
func (v *Vec2) EqualWithin(p *Vec2, threshold float32) bool {
	r := compute.Epsilon + threshold

	return within(v.X, p.X, r) && within(v.Y, p.Y, r)
}

// String renders v as {x, y}.
func (v *Vec2) String() string {
	return fmt.Sprintf("{%g, %g}", v.X, v.Y)
}

// SideOf returns the cross product of (start-end) × (point-end): positive
// when point is to the right of (or below) the line start→end in screen
// coordinates, negative on the other side, zero when collinear.
func SideOf(point, start, end *Vec2) float32 {
	return compute.CrossProduct(start.X-end.X, start.Y-end.Y, point.X-end.X, point.Y-end.Y)
}

// InTriangle reports whether point lies on the same side of all three edges
// of triangle abc. Either winding works.
func InTriangle(point, a, b, c *Vec2) bool {
	b1 := SideOf(point, a, b) > 0
	b2 := SideOf(point, b, c) > 0
	b3 := SideOf(point, c, a) > 0

	return b1 == b2 && b2 == b3
}

func within(a, b, r float32) bool {
	return a+r >= b && a-r <= b
}
