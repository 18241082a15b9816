package props

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sign says whether a constituent adds or removes area.
type Sign int

const (
	Add      Sign = 1
	Subtract Sign = -1
)

func (s Sign) String() string {
	switch s {
	case Add:
		return "+"
	case Subtract:
		return "-"
	}
	return "?"
}

// Part places one constituent in a composite's frame.
type Part struct {
	Shape Shape

	// Offset is the position of the constituent's local origin.
	Offset r2.Vec

	// Rotation of the constituent's local axes relative to the composite's
	// axes, in radians, counter-clockwise positive.
	Rotation float64

	Sign Sign
}

// Place maps a point from the constituent's local frame into the
// composite's frame.
func (p Part) Place(v r2.Vec) r2.Vec {
	if p.Rotation != 0 {
		v = r2.Rotate(v, p.Rotation, r2.Vec{})
	}
	return r2.Add(p.Offset, v)
}

// Centroid is the constituent's centroid in the composite's frame.
func (p Part) Centroid() r2.Vec {
	return p.Place(p.Shape.Centroid())
}

// Option configures a Composite.
type Option func(*compositeConfig)

type compositeConfig struct {
	tolerance float64
	hasTol    bool
	kind      string
}

// WithAreaTolerance sets the absolute tolerance below which a net area is
// treated as zero. It should match the units of the dimensions; the default
// is 1e-9 times the total added area.
func WithAreaTolerance(eps float64) Option {
	return func(c *compositeConfig) {
		c.tolerance = eps
		c.hasTol = true
	}
}

// withKind names the composite in errors.
func withKind(kind string) Option {
	return func(c *compositeConfig) {
		c.kind = kind
	}
}

// Composite is a compound section built from signed, placed constituents.
// Its second moments are about its own centroidal axes, parallel to its
// frame.
type Composite struct {
	kind     string
	parts    []Part
	area     float64
	centroid r2.Vec
	moments  inertia
}

var _ Shape = (*Composite)(nil)

// NewComposite combines parts in order. All derived quantities are computed
// here; the returned value never changes.
func NewComposite(parts []Part, opts ...Option) (*Composite, error) {
	cfg := compositeConfig{kind: "composite"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(parts) == 0 {
		return nil, invalid(cfg.kind, "no constituents")
	}
	if cfg.hasTol && (!finite(cfg.tolerance) || cfg.tolerance < 0) {
		return nil, invalid(cfg.kind, "area tolerance must be a non-negative number, got %g", cfg.tolerance)
	}

	var added, removed float64
	for i, p := range parts {
		if p.Shape == nil {
			return nil, invalid(cfg.kind, "constituent %d has no shape", i+1)
		}
		if p.Sign != Add && p.Sign != Subtract {
			return nil, invalid(cfg.kind, "constituent %d has sign %d, want +1 or -1", i+1, int(p.Sign))
		}
		if !finite(p.Rotation) || !finite(p.Offset.X) || !finite(p.Offset.Y) {
			return nil, invalid(cfg.kind, "constituent %d has a non-finite placement", i+1)
		}
		if p.Sign == Add {
			added += p.Shape.Area()
		} else {
			removed += p.Shape.Area()
		}
	}

	tol := 1e-9 * added
	if cfg.hasTol {
		tol = cfg.tolerance
	}
	net := added - removed
	if net <= tol {
		return nil, invalid(cfg.kind, "net area %g is not positive (added %g, removed %g)", net, added, removed)
	}

	c := &Composite{
		kind:  cfg.kind,
		parts: append([]Part(nil), parts...),
		area:  net,
	}

	var first r2.Vec
	for _, p := range c.parts {
		s := float64(p.Sign)
		first = r2.Add(first, r2.Scale(s*p.Shape.Area(), p.Centroid()))
	}
	c.centroid = r2.Scale(1/net, first)

	for _, p := range c.parts {
		c.moments = c.moments.add(contribution(p, c.centroid))
	}
	return c, nil
}

// contribution is the signed second-moment triple of one constituent about
// the composite centroid: rotate into the composite's orientation, then
// shift from the constituent's centroid.
func contribution(p Part, about r2.Vec) inertia {
	s := float64(p.Sign)
	local := inertia{
		ix:  s * p.Shape.SecondMomentX(),
		iy:  s * p.Shape.SecondMomentY(),
		ixy: s * p.Shape.ProductOfInertia(),
	}
	// The composite's axes sit at -Rotation from the constituent's axes.
	local = local.rotate(-p.Rotation)
	d := r2.Sub(p.Centroid(), about)
	return local.shift(s*p.Shape.Area(), d.X, d.Y)
}

// Parts returns a copy of the constituents.
func (c *Composite) Parts() []Part {
	return append([]Part(nil), c.parts...)
}

func (c *Composite) Area() float64             { return c.area }
func (c *Composite) Centroid() r2.Vec          { return c.centroid }
func (c *Composite) SecondMomentX() float64    { return c.moments.ix }
func (c *Composite) SecondMomentY() float64    { return c.moments.iy }
func (c *Composite) ProductOfInertia() float64 { return c.moments.ixy }

// Reach considers added constituents only. A subtracted constituent that
// trims an extreme fibre is not detected.
func (c *Composite) Reach(dir r2.Vec) float64 {
	best := math.Inf(-1)
	for _, p := range c.parts {
		if p.Sign != Add {
			continue
		}
		local := dir
		if p.Rotation != 0 {
			local = r2.Rotate(dir, -p.Rotation, r2.Vec{})
		}
		best = math.Max(best, r2.Dot(p.Offset, dir)+p.Shape.Reach(local))
	}
	return best
}

func (c *Composite) RadiusOfGyrationX() (float64, error) {
	return radiusOfGyration(c.kind, c.SecondMomentX(), c.area)
}

func (c *Composite) RadiusOfGyrationY() (float64, error) {
	return radiusOfGyration(c.kind, c.SecondMomentY(), c.area)
}

func (c *Composite) ElasticModulusX() (float64, error) {
	return elasticModulus(c.kind, c.SecondMomentX(), fibreX(c))
}

func (c *Composite) ElasticModulusY() (float64, error) {
	return elasticModulus(c.kind, c.SecondMomentY(), fibreY(c))
}

func (c *Composite) PlasticModulusX() (float64, error) {
	return 0, unsupported(c.kind, "plastic modulus")
}

func (c *Composite) PlasticModulusY() (float64, error) {
	return 0, unsupported(c.kind, "plastic modulus")
}
