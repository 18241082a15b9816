package props

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// CircularSector has its apex at the local origin and is symmetric about the
// local x-axis. It spans the angle 2φ, from −φ to +φ.
type CircularSector struct {
	radius    float64
	halfAngle float64
}

var _ Shape = CircularSector{}

// NewCircularSector takes the half-angle φ. Callers holding the full
// subtended angle must halve it first.
func NewCircularSector(radius, halfAngle float64) (CircularSector, error) {
	if err := checkLength("sector", "radius", radius); err != nil {
		return CircularSector{}, err
	}
	if err := checkAngle("sector", "half-angle", halfAngle); err != nil {
		return CircularSector{}, err
	}
	return CircularSector{radius: radius, halfAngle: halfAngle}, nil
}

func (s CircularSector) Radius() float64    { return s.radius }
func (s CircularSector) HalfAngle() float64 { return s.halfAngle }

// span is the subtended angle 2φ.
func (s CircularSector) span() float64 { return 2 * s.halfAngle }

// Area is R²·2φ/2.
func (s CircularSector) Area() float64 {
	return s.radius * s.radius * s.span() / 2
}

// Centroid lies on the symmetry axis at 4R·sin(2φ/2)/(3·2φ).
func (s CircularSector) Centroid() r2.Vec {
	return r2.Vec{X: 4 * s.radius * math.Sin(s.span()/2) / (3 * s.span())}
}

func (s CircularSector) r4() float64 {
	rr := s.radius * s.radius
	return rr * rr
}

// SecondMomentX is R⁴/8·(2φ − sin 2φ); the x-axis is the symmetry axis.
func (s CircularSector) SecondMomentX() float64 {
	return s.r4() / 8 * (s.span() - math.Sin(s.span()))
}

// SecondMomentY is R⁴/8·(2φ + sin 2φ) moved from the apex to the centroid.
func (s CircularSector) SecondMomentY() float64 {
	xc := s.Centroid().X
	return s.r4()/8*(s.span()+math.Sin(s.span())) - s.Area()*xc*xc
}

func (s CircularSector) ProductOfInertia() float64 { return 0 }

// Reach covers the apex, both arc ends and the arc itself when dir points
// into the sector's angular range.
func (s CircularSector) Reach(dir r2.Vec) float64 {
	sin, cos := math.Sincos(s.halfAngle)
	best := reachPoints(dir,
		r2.Vec{},
		r2.Vec{X: s.radius * cos, Y: s.radius * sin},
		r2.Vec{X: s.radius * cos, Y: -s.radius * sin},
	)
	if math.Abs(math.Atan2(dir.Y, dir.X)) <= s.halfAngle {
		best = math.Max(best, s.radius*r2.Norm(dir))
	}
	return best
}

func (s CircularSector) RadiusOfGyrationX() (float64, error) {
	return radiusOfGyration("sector", s.SecondMomentX(), s.Area())
}

func (s CircularSector) RadiusOfGyrationY() (float64, error) {
	return radiusOfGyration("sector", s.SecondMomentY(), s.Area())
}

func (s CircularSector) ElasticModulusX() (float64, error) {
	return elasticModulus("sector", s.SecondMomentX(), fibreX(s))
}

func (s CircularSector) ElasticModulusY() (float64, error) {
	return elasticModulus("sector", s.SecondMomentY(), fibreY(s))
}

func (s CircularSector) PlasticModulusX() (float64, error) {
	return 0, unsupported("sector", "plastic modulus")
}

func (s CircularSector) PlasticModulusY() (float64, error) {
	return 0, unsupported("sector", "plastic modulus")
}
