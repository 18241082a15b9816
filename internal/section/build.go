package section

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/alexiusacademia/sectprop/internal/props"
	"gonum.org/v1/gonum/spatial/r2"
)

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(filepath string) (*Definition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a section definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, err
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// Build constructs the shape tree. Geometry errors keep their props kind.
func (d *Definition) Build() (props.Shape, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.Shape.build("shape")
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func (n *Node) build(path string) (props.Shape, error) {
	if n.Type == "composite" {
		return n.buildComposite(path)
	}
	s, err := n.primitive()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (n *Node) primitive() (props.Shape, error) {
	switch n.Type {
	case "rectangle":
		return props.NewRectangle(n.Length, n.Breadth)
	case "triangle":
		return props.NewRightTriangle(n.Base, n.Height, Radians(n.Angle))
	case "sector":
		return props.NewCircularSector(n.Radius, Radians(n.HalfAngle))
	case "fillet":
		return props.NewFillet(n.Radius, Radians(n.Angle))
	case "ibeam":
		return props.NewIBeam(n.Depth, n.FlangeWidth, n.FlangeThickness, n.WebThickness, n.RootRadius)
	case "box":
		return props.NewBox(n.Width, n.Depth, n.Thickness)
	}
	return nil, &ValidationError{msg: fmt.Sprintf("unknown shape type %q", n.Type)}
}

// buildComposite returns child errors unchanged; they already name their
// own path.
func (n *Node) buildComposite(path string) (props.Shape, error) {
	parts := make([]props.Part, 0, len(n.Parts))
	for i, p := range n.Parts {
		child, err := p.Shape.build(fmt.Sprintf("%s.parts[%d].shape", path, i))
		if err != nil {
			return nil, err
		}
		sign := props.Add
		if p.Subtract {
			sign = props.Subtract
		}
		parts = append(parts, props.Part{
			Shape:    child,
			Offset:   r2.Vec{X: p.Offset.X, Y: p.Offset.Y},
			Rotation: Radians(p.Rotation),
			Sign:     sign,
		})
	}

	var opts []props.Option
	if n.AreaTolerance > 0 {
		opts = append(opts, props.WithAreaTolerance(n.AreaTolerance))
	}
	c, err := props.NewComposite(parts, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
