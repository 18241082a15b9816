package props

import "gonum.org/v1/gonum/spatial/r2"

// Rectangle has its length along the local x-axis and its breadth along the
// local y-axis, with one corner at the local origin.
type Rectangle struct {
	length  float64
	breadth float64
}

var _ Shape = Rectangle{}

// NewRectangle returns an L×B rectangle.
func NewRectangle(length, breadth float64) (Rectangle, error) {
	if err := checkLength("rectangle", "length", length); err != nil {
		return Rectangle{}, err
	}
	if err := checkLength("rectangle", "breadth", breadth); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{length: length, breadth: breadth}, nil
}

func (r Rectangle) Length() float64  { return r.length }
func (r Rectangle) Breadth() float64 { return r.breadth }

func (r Rectangle) Area() float64 { return r.length * r.breadth }

func (r Rectangle) Centroid() r2.Vec {
	return r2.Vec{X: r.length / 2, Y: r.breadth / 2}
}

// SecondMomentX is L·B³/12.
func (r Rectangle) SecondMomentX() float64 {
	return r.length * r.breadth * r.breadth * r.breadth / 12
}

// SecondMomentY is B·L³/12.
func (r Rectangle) SecondMomentY() float64 {
	return r.breadth * r.length * r.length * r.length / 12
}

func (r Rectangle) ProductOfInertia() float64 { return 0 }

// Corners returns the vertices counter-clockwise from the origin.
func (r Rectangle) Corners() []r2.Vec {
	return []r2.Vec{{}, {X: r.length}, {X: r.length, Y: r.breadth}, {Y: r.breadth}}
}

func (r Rectangle) Reach(dir r2.Vec) float64 {
	return reachPoints(dir, r.Corners()...)
}

func (r Rectangle) RadiusOfGyrationX() (float64, error) {
	return radiusOfGyration("rectangle", r.SecondMomentX(), r.Area())
}

func (r Rectangle) RadiusOfGyrationY() (float64, error) {
	return radiusOfGyration("rectangle", r.SecondMomentY(), r.Area())
}

// ElasticModulusX is 2·Ix/B.
func (r Rectangle) ElasticModulusX() (float64, error) {
	return elasticModulus("rectangle", r.SecondMomentX(), r.breadth/2)
}

// ElasticModulusY is 2·Iy/L.
func (r Rectangle) ElasticModulusY() (float64, error) {
	return elasticModulus("rectangle", r.SecondMomentY(), r.length/2)
}

// PlasticModulusX is L·B²/4.
func (r Rectangle) PlasticModulusX() (float64, error) {
	return r.length * r.breadth * r.breadth / 4, nil
}

// PlasticModulusY is B·L²/4.
func (r Rectangle) PlasticModulusY() (float64, error) {
	return r.breadth * r.length * r.length / 4, nil
}
