package props

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// NewIBeam builds a rolled I-section with its origin at mid-depth on the web
// centreline. Depth runs along y. A positive rootRadius adds the four
// web-to-flange fillets.
func NewIBeam(depth, flangeWidth, flangeThickness, webThickness, rootRadius float64) (*Composite, error) {
	const kind = "ibeam"
	for _, dim := range []struct {
		name string
		v    float64
	}{
		{"depth", depth},
		{"flange width", flangeWidth},
		{"flange thickness", flangeThickness},
		{"web thickness", webThickness},
	} {
		if err := checkLength(kind, dim.name, dim.v); err != nil {
			return nil, err
		}
	}
	if !finite(rootRadius) || rootRadius < 0 {
		return nil, invalid(kind, "root radius must be zero or positive, got %g", rootRadius)
	}
	if webThickness >= flangeWidth {
		return nil, invalid(kind, "web thickness %g must be less than flange width %g", webThickness, flangeWidth)
	}
	webDepth := depth - 2*flangeThickness
	if webDepth <= 0 {
		return nil, invalid(kind, "flanges %g thick leave no web in depth %g", flangeThickness, depth)
	}
	if outstand := (flangeWidth - webThickness) / 2; rootRadius > outstand || 2*rootRadius > webDepth {
		return nil, invalid(kind, "root radius %g does not fit between the flanges", rootRadius)
	}

	flange, err := NewRectangle(flangeWidth, flangeThickness)
	if err != nil {
		return nil, err
	}
	web, err := NewRectangle(webThickness, webDepth)
	if err != nil {
		return nil, err
	}
	parts := []Part{
		{Shape: flange, Offset: r2.Vec{X: -flangeWidth / 2, Y: depth/2 - flangeThickness}, Sign: Add},
		{Shape: web, Offset: r2.Vec{X: -webThickness / 2, Y: -webDepth / 2}, Sign: Add},
		{Shape: flange, Offset: r2.Vec{X: -flangeWidth / 2, Y: -depth / 2}, Sign: Add},
	}

	if rootRadius > 0 {
		root, err := NewFillet(rootRadius, math.Pi/2)
		if err != nil {
			return nil, err
		}
		x, y := webThickness/2, webDepth/2
		parts = append(parts,
			Part{Shape: root, Offset: r2.Vec{X: x, Y: y}, Rotation: -math.Pi / 4, Sign: Add},
			Part{Shape: root, Offset: r2.Vec{X: -x, Y: y}, Rotation: -3 * math.Pi / 4, Sign: Add},
			Part{Shape: root, Offset: r2.Vec{X: -x, Y: -y}, Rotation: 3 * math.Pi / 4, Sign: Add},
			Part{Shape: root, Offset: r2.Vec{X: x, Y: -y}, Rotation: math.Pi / 4, Sign: Add},
		)
	}
	return NewComposite(parts, withKind(kind))
}

// NewBox builds a hollow rectangular section of uniform wall thickness,
// centred on its origin.
func NewBox(width, depth, thickness float64) (*Composite, error) {
	const kind = "box"
	if err := checkLength(kind, "width", width); err != nil {
		return nil, err
	}
	if err := checkLength(kind, "depth", depth); err != nil {
		return nil, err
	}
	if err := checkLength(kind, "thickness", thickness); err != nil {
		return nil, err
	}
	if 2*thickness >= math.Min(width, depth) {
		return nil, invalid(kind, "wall thickness %g leaves no void in %g×%g", thickness, width, depth)
	}

	outer, err := NewRectangle(width, depth)
	if err != nil {
		return nil, err
	}
	inner, err := NewRectangle(width-2*thickness, depth-2*thickness)
	if err != nil {
		return nil, err
	}
	return NewComposite([]Part{
		{Shape: outer, Offset: r2.Vec{X: -width / 2, Y: -depth / 2}, Sign: Add},
		{Shape: inner, Offset: r2.Vec{X: -width/2 + thickness, Y: -depth/2 + thickness}, Sign: Subtract},
	}, withKind(kind))
}
