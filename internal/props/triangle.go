package props

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// RightTriangle is a triangle standing on its base along the local x-axis.
//
// Its vertices are (0, 0), (b, 0) and the apex (a, h), where a = h/tan θ and θ
// is the base angle at the origin. θ = π/2 gives a right angle at the origin.
type RightTriangle struct {
	base   float64
	height float64
	angle  float64
}

var _ Shape = RightTriangle{}

// NewRightTriangle returns a triangle of base b on the x axis, height h and
// base angle θ at the origin; θ = π/2 is a right triangle.
func NewRightTriangle(base, height, angle float64) (RightTriangle, error) {
	if err := checkLength("triangle", "base", base); err != nil {
		return RightTriangle{}, err
	}
	if err := checkLength("triangle", "height", height); err != nil {
		return RightTriangle{}, err
	}
	if err := checkAngle("triangle", "base angle", angle); err != nil {
		return RightTriangle{}, err
	}
	return RightTriangle{base: base, height: height, angle: angle}, nil
}

func (t RightTriangle) Base() float64   { return t.base }
func (t RightTriangle) Height() float64 { return t.height }
func (t RightTriangle) Angle() float64  { return t.angle }

// apexOffset is the horizontal position a of the apex.
func (t RightTriangle) apexOffset() float64 {
	return t.height / math.Tan(t.angle)
}

// Vertices returns the corners counter-clockwise from the origin.
func (t RightTriangle) Vertices() []r2.Vec {
	return []r2.Vec{{}, {X: t.base}, {X: t.apexOffset(), Y: t.height}}
}

func (t RightTriangle) Area() float64 { return t.base * t.height / 2 }

func (t RightTriangle) Centroid() r2.Vec {
	return r2.Vec{X: (t.base + t.apexOffset()) / 3, Y: t.height / 3}
}

// SecondMomentX is b·h³/36.
func (t RightTriangle) SecondMomentX() float64 {
	return t.base * t.height * t.height * t.height / 36
}

// SecondMomentY is (b³h − b²h·a + b·h·a²)/36.
func (t RightTriangle) SecondMomentY() float64 {
	b, h, a := t.base, t.height, t.apexOffset()
	return (b*b*b*h - b*b*h*a + b*h*a*a) / 36
}

// ProductOfInertia is b·h²·(2a − b)/72. The triangle has no symmetry axis in
// its local frame, so this is generally non-zero.
func (t RightTriangle) ProductOfInertia() float64 {
	b, h, a := t.base, t.height, t.apexOffset()
	return b * h * h * (2*a - b) / 72
}

func (t RightTriangle) Reach(dir r2.Vec) float64 {
	return reachPoints(dir, t.Vertices()...)
}

func (t RightTriangle) RadiusOfGyrationX() (float64, error) {
	return radiusOfGyration("triangle", t.SecondMomentX(), t.Area())
}

func (t RightTriangle) RadiusOfGyrationY() (float64, error) {
	return radiusOfGyration("triangle", t.SecondMomentY(), t.Area())
}

// ElasticModulusX divides by the apex distance 2h/3.
func (t RightTriangle) ElasticModulusX() (float64, error) {
	return elasticModulus("triangle", t.SecondMomentX(), fibreX(t))
}

func (t RightTriangle) ElasticModulusY() (float64, error) {
	return elasticModulus("triangle", t.SecondMomentY(), fibreY(t))
}

func (t RightTriangle) PlasticModulusX() (float64, error) {
	return 0, unsupported("triangle", "plastic modulus")
}

func (t RightTriangle) PlasticModulusY() (float64, error) {
	return 0, unsupported("triangle", "plastic modulus")
}
