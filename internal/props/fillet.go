package props

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Fillet is the material filling a concave corner of interior angle α with
// a round of radius R.
//
// The corner vertex is at the local origin and the corner bisector runs
// along +x, so the two faces leave the vertex at ±α/2. The fillet owns two
// right triangles (the kite between the vertex, both tangent points and the
// arc centre) and removes the circular sector between the tangent points.
type Fillet struct {
	radius float64
	angle  float64
	body   *Composite
}

var _ Shape = Fillet{}

// NewFillet returns the fillet of radius R in a corner of interior angle α.
func NewFillet(radius, angle float64) (Fillet, error) {
	if err := checkLength("fillet", "radius", radius); err != nil {
		return Fillet{}, err
	}
	if err := checkAngle("fillet", "corner angle", angle); err != nil {
		return Fillet{}, err
	}
	f := Fillet{radius: radius, angle: angle}

	t := f.TangentLength()
	sin, cos := math.Sincos(angle / 2)

	// Each triangle has its right angle at a tangent point. Legs are t
	// (towards the vertex) and R (towards the arc centre).
	upper, err := NewRightTriangle(t, radius, math.Pi/2)
	if err != nil {
		return Fillet{}, err
	}
	lower, err := NewRightTriangle(radius, t, math.Pi/2)
	if err != nil {
		return Fillet{}, err
	}
	cutout, err := NewCircularSector(radius, (math.Pi-angle)/2)
	if err != nil {
		return Fillet{}, err
	}

	f.body, err = NewComposite([]Part{
		{Shape: upper, Offset: r2.Vec{X: t * cos, Y: t * sin}, Rotation: math.Pi + angle/2, Sign: Add},
		{Shape: lower, Offset: r2.Vec{X: t * cos, Y: -t * sin}, Rotation: math.Pi/2 - angle/2, Sign: Add},
		{Shape: cutout, Offset: f.ArcCentre(), Rotation: math.Pi, Sign: Subtract},
	}, withKind("fillet"))
	if err != nil {
		return Fillet{}, err
	}
	return f, nil
}

func (f Fillet) Radius() float64 { return f.radius }
func (f Fillet) Angle() float64  { return f.angle }

// TangentLength is the distance R/tan(α/2) from the vertex to either tangent
// point.
func (f Fillet) TangentLength() float64 {
	return f.radius / math.Tan(f.angle/2)
}

// ArcCentre lies on the bisector at R/sin(α/2) from the vertex.
func (f Fillet) ArcCentre() r2.Vec {
	return r2.Vec{X: f.radius / math.Sin(f.angle/2)}
}

// TangentPoints returns the upper and lower points where the round meets the
// corner faces.
func (f Fillet) TangentPoints() (upper, lower r2.Vec) {
	t := f.TangentLength()
	sin, cos := math.Sincos(f.angle / 2)
	return r2.Vec{X: t * cos, Y: t * sin}, r2.Vec{X: t * cos, Y: -t * sin}
}

// Parts returns the owned constituents.
func (f Fillet) Parts() []Part { return f.body.Parts() }

func (f Fillet) Area() float64             { return f.body.Area() }
func (f Fillet) Centroid() r2.Vec          { return f.body.Centroid() }
func (f Fillet) SecondMomentX() float64    { return f.body.SecondMomentX() }
func (f Fillet) SecondMomentY() float64    { return f.body.SecondMomentY() }
func (f Fillet) ProductOfInertia() float64 { return f.body.ProductOfInertia() }

// Reach is exact: the arc bulges towards the vertex, so the fillet lies in
// the triangle formed by the vertex and the two tangent points.
func (f Fillet) Reach(dir r2.Vec) float64 {
	upper, lower := f.TangentPoints()
	return reachPoints(dir, r2.Vec{}, upper, lower)
}

func (f Fillet) RadiusOfGyrationX() (float64, error) {
	return radiusOfGyration("fillet", f.SecondMomentX(), f.Area())
}

func (f Fillet) RadiusOfGyrationY() (float64, error) {
	return radiusOfGyration("fillet", f.SecondMomentY(), f.Area())
}

func (f Fillet) ElasticModulusX() (float64, error) {
	return elasticModulus("fillet", f.SecondMomentX(), fibreX(f))
}

func (f Fillet) ElasticModulusY() (float64, error) {
	return elasticModulus("fillet", f.SecondMomentY(), fibreY(f))
}

func (f Fillet) PlasticModulusX() (float64, error) {
	return 0, unsupported("fillet", "plastic modulus")
}

func (f Fillet) PlasticModulusY() (float64, error) {
	return 0, unsupported("fillet", "plastic modulus")
}
