package props

import "math"

// ParallelAxisShift moves a second moment from an axis through the shape's
// centroid to a parallel axis at signed perpendicular distance d.
//
// iLocal must be about the centroidal axis. A removed constituent passes its
// area negated, which subtracts both its own moment and its transfer term.
func ParallelAxisShift(iLocal, area, d float64) float64 {
	return iLocal + area*d*d
}

// ParallelAxisProduct is the product-of-inertia counterpart of
// [ParallelAxisShift]: the centroid sits at (dx, dy) from the target axes.
func ParallelAxisProduct(ixyLocal, area, dx, dy float64) float64 {
	return ixyLocal + area*dx*dy
}

// AxisRotation re-expresses second moments about axes rotated by angle
// (radians, counter-clockwise) from the input axes, through the same point.
//
// When a constituent is both rotated and displaced, rotate first and shift
// second; the two operations do not commute.
func AxisRotation(ix, iy, ixy, angle float64) (iu, iv float64) {
	sin2, cos2 := math.Sincos(2 * angle)
	mean := (ix + iy) / 2
	half := (ix - iy) / 2
	iu = mean + half*cos2 - ixy*sin2
	iv = mean - half*cos2 + ixy*sin2
	return iu, iv
}

// ProductRotation returns the product of inertia about the axes
// [AxisRotation] rotates to.
func ProductRotation(ix, iy, ixy, angle float64) float64 {
	sin2, cos2 := math.Sincos(2 * angle)
	return (ix-iy)/2*sin2 + ixy*cos2
}

// inertia is a second-moment triple about axes through one point.
type inertia struct {
	ix, iy, ixy float64
}

func (in inertia) rotate(angle float64) inertia {
	if angle == 0 {
		return in
	}
	iu, iv := AxisRotation(in.ix, in.iy, in.ixy, angle)
	return inertia{iu, iv, ProductRotation(in.ix, in.iy, in.ixy, angle)}
}

// shift moves the triple from a centroid at offset d to the target point.
func (in inertia) shift(area float64, dx, dy float64) inertia {
	return inertia{
		ix:  ParallelAxisShift(in.ix, area, dy),
		iy:  ParallelAxisShift(in.iy, area, dx),
		ixy: ParallelAxisProduct(in.ixy, area, dx, dy),
	}
}

func (in inertia) add(o inertia) inertia {
	return inertia{in.ix + o.ix, in.iy + o.iy, in.ixy + o.ixy}
}

// PrincipalMoments returns the major and minor centroidal second moments of
// s and the angle (radians, counter-clockwise from the local x-axis) of the
// major axis. The product of inertia vanishes about these axes.
func PrincipalMoments(s Shape) (major, minor, angle float64) {
	ix, iy, ixy := s.SecondMomentX(), s.SecondMomentY(), s.ProductOfInertia()
	angle = math.Atan2(-2*ixy, ix-iy) / 2
	major, minor = AxisRotation(ix, iy, ixy, angle)
	return major, minor, angle
}
