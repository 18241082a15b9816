package props

import (
	"math"
	"sync"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func rect(t *testing.T, l, b float64) Rectangle {
	t.Helper()
	r, err := NewRectangle(l, b)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestCompositeStackedRectangles(t *testing.T) {
	r := rect(t, 10, 2)
	// Centroids at (0, 1) and (0, 3).
	c, err := NewComposite([]Part{
		{Shape: r, Offset: r2.Vec{X: -5, Y: 0}, Sign: Add},
		{Shape: r, Offset: r2.Vec{X: -5, Y: 2}, Sign: Add},
	})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 40.0, c.Area(), approx)
	diff(t, r2.Vec{X: 0, Y: 2}, c.Centroid(), approx)

	own := r.SecondMomentX()
	want := (own + r.Area()*1*1) + (own + r.Area()*1*1)
	diff(t, want, c.SecondMomentX(), approx)
	// Equivalent to a single 10×4 rectangle.
	diff(t, rect(t, 10, 4).SecondMomentX(), c.SecondMomentX(), approx)
	diff(t, rect(t, 10, 4).SecondMomentY(), c.SecondMomentY(), approx)
	diff(t, 0.0, c.ProductOfInertia(), nearZero)
}

func TestCompositeMirrorSymmetry(t *testing.T) {
	r := rect(t, 3, 2)
	c, err := NewComposite([]Part{
		{Shape: r, Offset: r2.Vec{X: 1, Y: 0}, Sign: Add},
		{Shape: r, Offset: r2.Vec{X: -4, Y: 0}, Sign: Add},
	})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0.0, c.Centroid().X, nearZero)
	diff(t, 0.0, c.ProductOfInertia(), nearZero)
	// Each 3×2 block sits 2.5 from the y-axis.
	diff(t, 2*(r.SecondMomentY()+6*2.5*2.5), c.SecondMomentY(), approx)
}

func TestCompositeMirroredTrianglesCancelProduct(t *testing.T) {
	// A right triangle and its mirror image about the y-axis form an
	// isosceles triangle. The mirror is the same triangle with its legs
	// swapped, turned a quarter.
	c, err := NewComposite([]Part{
		{Shape: mustTriangle(t, 3, 4), Sign: Add},
		{Shape: mustTriangle(t, 4, 3), Rotation: math.Pi / 2, Sign: Add},
	})
	if err != nil {
		t.Fatal(err)
	}
	// Vertices: (0,0),(3,0),(0,4) and (0,0),(0,4),(-3,0).
	diff(t, 12.0, c.Area(), approx)
	diff(t, r2.Vec{X: 0, Y: 4.0 / 3}, c.Centroid(), approx)
	diff(t, 0.0, c.ProductOfInertia(), nearZero)
	diff(t, 6*64/36.0, c.SecondMomentX(), approx)
	diff(t, 4*6*6*6/48.0, c.SecondMomentY(), approx)
}

func mustTriangle(t *testing.T, b, h float64) RightTriangle {
	t.Helper()
	tri, err := NewRightTriangle(b, h, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	return tri
}

func TestCompositeRotatedConstituent(t *testing.T) {
	r := rect(t, 10, 4)
	c, err := NewComposite([]Part{{Shape: r, Rotation: math.Pi / 2, Sign: Add}})
	if err != nil {
		t.Fatal(err)
	}
	// The rectangle now spans x ∈ [-4, 0], y ∈ [0, 10].
	diff(t, r2.Vec{X: -2, Y: 5}, c.Centroid(), approx)
	diff(t, r.SecondMomentY(), c.SecondMomentX(), approx)
	diff(t, r.SecondMomentX(), c.SecondMomentY(), approx)
	diff(t, 0.0, c.ProductOfInertia(), nearZero)
	diff(t, 10.0, c.Reach(r2.Vec{Y: 1}), approx)
	diff(t, 4.0, c.Reach(r2.Vec{X: -1}), approx)
	diff(t, r.SecondMomentY()/5, mustValue(t)(c.ElasticModulusX()), approx)
}

func TestCompositeObliqueRotation(t *testing.T) {
	r := rect(t, 10, 4)
	const phi = math.Pi / 6
	c, err := NewComposite([]Part{{Shape: r, Rotation: phi, Sign: Add}})
	if err != nil {
		t.Fatal(err)
	}
	// Trace of the inertia tensor is invariant.
	diff(t, r.SecondMomentX()+r.SecondMomentY(), c.SecondMomentX()+c.SecondMomentY(), approx)
	iu, iv := AxisRotation(r.SecondMomentX(), r.SecondMomentY(), 0, -phi)
	diff(t, []float64{iu, iv}, []float64{c.SecondMomentX(), c.SecondMomentY()}, approx)
	diff(t, ProductRotation(r.SecondMomentX(), r.SecondMomentY(), 0, -phi), c.ProductOfInertia(), approx)
	diff(t, r2.Rotate(r2.Vec{X: 5, Y: 2}, phi, r2.Vec{}), c.Centroid(), approx)
}

func TestCompositeRotateThenShift(t *testing.T) {
	// A rotated, displaced rectangle pair about their shared centroid.
	r := rect(t, 6, 1)
	c, err := NewComposite([]Part{
		{Shape: r, Offset: r2.Vec{X: 0, Y: 0}, Sign: Add},
		{Shape: r, Offset: r2.Vec{X: 1, Y: 1}, Rotation: math.Pi / 2, Sign: Add},
	})
	if err != nil {
		t.Fatal(err)
	}
	// Second part spans x ∈ [0, 1], y ∈ [1, 7]; centroid (0.5, 4).
	want := r2.Vec{X: (3 + 0.5) / 2, Y: (0.5 + 4) / 2}
	diff(t, want, c.Centroid(), approx)
	ix := (r.SecondMomentX() + 6*math.Pow(0.5-want.Y, 2)) + (r.SecondMomentY() + 6*math.Pow(4-want.Y, 2))
	iy := (r.SecondMomentY() + 6*math.Pow(3-want.X, 2)) + (r.SecondMomentX() + 6*math.Pow(0.5-want.X, 2))
	ixy := 6*(3-want.X)*(0.5-want.Y) + 6*(0.5-want.X)*(4-want.Y)
	diff(t, []float64{ix, iy, ixy}, []float64{c.SecondMomentX(), c.SecondMomentY(), c.ProductOfInertia()}, approx)
}

func TestCompositeHole(t *testing.T) {
	outer := rect(t, 10, 20)
	inner := rect(t, 8, 18)
	c, err := NewComposite([]Part{
		{Shape: outer, Sign: Add},
		{Shape: inner, Offset: r2.Vec{X: 1, Y: 1}, Sign: Subtract},
	})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 56.0, c.Area(), approx)
	diff(t, r2.Vec{X: 5, Y: 10}, c.Centroid(), approx)
	diff(t, (10*8000-8*5832)/12.0, c.SecondMomentX(), approx)
	diff(t, (20*1000-18*512)/12.0, c.SecondMomentY(), approx)
	// The hole does not change the extreme fibres.
	diff(t, c.SecondMomentX()/10, mustValue(t)(c.ElasticModulusX()), approx)
}

func TestCompositeNotchedFibre(t *testing.T) {
	// A full-width strip cut from the top of a 10×4 plate leaves a 10×3
	// plate. Reach ignores subtracted parts, so the top fibre stays at 4.
	c, err := NewComposite([]Part{
		{Shape: rect(t, 10, 4), Sign: Add},
		{Shape: rect(t, 10, 1), Offset: r2.Vec{Y: 3}, Sign: Subtract},
	})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 30.0, c.Area(), approx)
	diff(t, r2.Vec{X: 5, Y: 1.5}, c.Centroid(), approx)
	diff(t, 10*27/12.0, c.SecondMomentX(), approx)
	diff(t, 4.0, c.Reach(unitY), approx)
	diff(t, 2.5, fibreX(c), approx)

	// The modulus errs low: 22.5/2.5 rather than 22.5/1.5.
	sx := mustValue(t)(c.ElasticModulusX())
	diff(t, 9.0, sx, approx)
	if exact := c.SecondMomentX() / 1.5; sx >= exact {
		t.Errorf("Sx = %g, want below the exact %g", sx, exact)
	}
}

func TestCompositeNested(t *testing.T) {
	r := rect(t, 10, 2)
	inner, err := NewComposite([]Part{
		{Shape: r, Sign: Add},
		{Shape: r, Offset: r2.Vec{Y: 2}, Sign: Add},
	})
	if err != nil {
		t.Fatal(err)
	}
	outer, err := NewComposite([]Part{{Shape: inner, Offset: r2.Vec{X: 3, Y: -1}, Rotation: math.Pi / 2, Sign: Add}})
	if err != nil {
		t.Fatal(err)
	}
	flat, err := NewComposite([]Part{{Shape: rect(t, 10, 4), Offset: r2.Vec{X: 3, Y: -1}, Rotation: math.Pi / 2, Sign: Add}})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, flat.Area(), outer.Area(), approx)
	diff(t, flat.Centroid(), outer.Centroid(), approx)
	diff(t, flat.SecondMomentX(), outer.SecondMomentX(), approx)
	diff(t, flat.SecondMomentY(), outer.SecondMomentY(), approx)
}

func TestCompositeInvalid(t *testing.T) {
	small := rect(t, 1, 1)
	big := rect(t, 2, 2)
	tests := []struct {
		name  string
		parts []Part
		opts  []Option
	}{
		{"empty", nil, nil},
		{"nil shape", []Part{{Sign: Add}}, nil},
		{"zero sign", []Part{{Shape: small}}, nil},
		{"sign two", []Part{{Shape: small, Sign: 2}}, nil},
		{"only removed", []Part{{Shape: small, Sign: Subtract}}, nil},
		{"removed exceeds added", []Part{{Shape: small, Sign: Add}, {Shape: big, Sign: Subtract}}, nil},
		{"net zero", []Part{{Shape: small, Sign: Add}, {Shape: small, Sign: Subtract}}, nil},
		{"within tolerance", []Part{{Shape: big, Sign: Add}, {Shape: rect(t, 1.99, 2), Sign: Subtract}}, []Option{WithAreaTolerance(0.05)}},
		{"negative tolerance", []Part{{Shape: small, Sign: Add}}, []Option{WithAreaTolerance(-1)}},
		{"non-finite offset", []Part{{Shape: small, Offset: r2.Vec{X: math.Inf(1)}, Sign: Add}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewComposite(tt.parts, tt.opts...)
			wantKind(t, err, ErrInvalidGeometry)
		})
	}
}

func TestCompositeToleranceScalesWithUnits(t *testing.T) {
	// Sub-millimetre sections expressed in metres are still positive.
	tiny := rect(t, 1e-4, 1e-4)
	c, err := NewComposite([]Part{{Shape: tiny, Sign: Add}})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 1e-8, c.Area(), approx)
}

func TestCompositePartsCopied(t *testing.T) {
	parts := []Part{{Shape: rect(t, 2, 2), Sign: Add}}
	c, err := NewComposite(parts)
	if err != nil {
		t.Fatal(err)
	}
	parts[0].Sign = Subtract
	got := c.Parts()
	got[0].Offset = r2.Vec{X: 9}
	diff(t, Add, c.Parts()[0].Sign)
	diff(t, r2.Vec{}, c.Parts()[0].Offset)
}

func TestCompositeConcurrentReads(t *testing.T) {
	c, err := NewIBeam(300, 150, 10, 6, 12)
	if err != nil {
		t.Fatal(err)
	}
	want := c.SecondMomentX()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := c.SecondMomentX(); got != want {
				t.Errorf("got %v, want %v", got, want)
			}
			if _, err := c.ElasticModulusX(); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
}

func TestPrincipalMomentsOfRotatedRectangle(t *testing.T) {
	r := rect(t, 10, 4)
	const phi = 0.4
	c, err := NewComposite([]Part{{Shape: r, Rotation: phi, Sign: Add}})
	if err != nil {
		t.Fatal(err)
	}
	major, minor, angle := PrincipalMoments(c)
	// Rotation leaves the principal values unchanged.
	diff(t, []float64{r.SecondMomentY(), r.SecondMomentX()}, []float64{major, minor}, approx)
	diff(t, 0.0, ProductRotation(c.SecondMomentX(), c.SecondMomentY(), c.ProductOfInertia(), angle), nearZero)
}
