// Package props computes geometric section properties of plane cross-sections.
//
// Primitive shapes carry closed-form formulas in their own local frame.
// A [Composite] places primitives (or other composites) with an offset, a
// rotation and a sign, and combines their properties about its own centroid
// through [AxisRotation] and [ParallelAxisShift].
//
// All shapes are immutable once constructed and are safe for concurrent use.
package props

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Shape is the query surface shared by every section.
//
// Centroid is given in the shape's local frame. Second moments and the
// product of inertia are about axes through the centroid, parallel to the
// local frame.
type Shape interface {
	Area() float64
	Centroid() r2.Vec
	SecondMomentX() float64
	SecondMomentY() float64
	ProductOfInertia() float64

	// Reach returns the largest projection onto the unit vector dir of any
	// point of the shape, measured from the local origin.
	Reach(dir r2.Vec) float64

	RadiusOfGyrationX() (float64, error)
	RadiusOfGyrationY() (float64, error)
	ElasticModulusX() (float64, error)
	ElasticModulusY() (float64, error)
	PlasticModulusX() (float64, error)
	PlasticModulusY() (float64, error)
}

var (
	unitX = r2.Vec{X: 1}
	unitY = r2.Vec{Y: 1}
)

func radiusOfGyration(kind string, i, area float64) (float64, error) {
	if !(area > 0) {
		return 0, domain(kind, "radius of gyration needs a positive area, got %g", area)
	}
	r := math.Sqrt(i / area)
	if !finite(r) {
		return 0, domain(kind, "radius of gyration is not finite")
	}
	return r, nil
}

func elasticModulus(kind string, i, fibre float64) (float64, error) {
	if !(fibre > 0) {
		return 0, domain(kind, "extreme fibre distance must be positive, got %g", fibre)
	}
	z := i / fibre
	if !finite(z) {
		return 0, domain(kind, "elastic modulus is not finite")
	}
	return z, nil
}

// fibreX is the distance from the centroidal x-axis to the farthest fibre.
func fibreX(s Shape) float64 {
	c := s.Centroid()
	return math.Max(s.Reach(unitY)-c.Y, s.Reach(r2.Scale(-1, unitY))+c.Y)
}

// fibreY is the distance from the centroidal y-axis to the farthest fibre.
func fibreY(s Shape) float64 {
	c := s.Centroid()
	return math.Max(s.Reach(unitX)-c.X, s.Reach(r2.Scale(-1, unitX))+c.X)
}

// reachPoints is the support function of the convex hull of pts.
func reachPoints(dir r2.Vec, pts ...r2.Vec) float64 {
	best := math.Inf(-1)
	for _, p := range pts {
		best = math.Max(best, r2.Dot(p, dir))
	}
	return best
}
