package section

import "fmt"

// Definition is a section described in a JSON file.
//
// Lengths are in the file's unit (mm unless stated) and angles are in
// degrees, counter-clockwise positive.
type Definition struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Unit        string `json:"unit,omitempty"`

	// Steel yield strength (MPa) or grade name for capacity checks (optional)
	Fy    float64 `json:"fy,omitempty"`
	Grade string  `json:"grade,omitempty"`

	Shape *Node `json:"shape"`
}

// Node is one shape in the section tree. Type selects which dimensions
// apply:
//
//	rectangle  length, breadth
//	triangle   base, height, angle (base angle)
//	sector     radius, half_angle
//	fillet     radius, angle (corner angle)
//	ibeam      depth, flange_width, flange_thickness, web_thickness, root_radius
//	box        width, depth, thickness
//	composite  parts, area_tolerance
type Node struct {
	Type string `json:"type"`

	Length    float64 `json:"length,omitempty"`
	Breadth   float64 `json:"breadth,omitempty"`
	Base      float64 `json:"base,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Angle     float64 `json:"angle,omitempty"`
	Radius    float64 `json:"radius,omitempty"`
	HalfAngle float64 `json:"half_angle,omitempty"`

	Depth           float64 `json:"depth,omitempty"`
	FlangeWidth     float64 `json:"flange_width,omitempty"`
	FlangeThickness float64 `json:"flange_thickness,omitempty"`
	WebThickness    float64 `json:"web_thickness,omitempty"`
	RootRadius      float64 `json:"root_radius,omitempty"`
	Width           float64 `json:"width,omitempty"`
	Thickness       float64 `json:"thickness,omitempty"`

	// Absolute net-area tolerance for composites (optional, in unit²)
	AreaTolerance float64 `json:"area_tolerance,omitempty"`

	Parts []Part `json:"parts,omitempty"`
}

// Part places a child node inside a composite.
type Part struct {
	Shape    *Node   `json:"shape"`
	Offset   Point   `json:"offset"`
	Rotation float64 `json:"rotation,omitempty"` // degrees
	Subtract bool    `json:"subtract,omitempty"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Validate checks the structure of the definition. Dimensional checks are
// left to the shape constructors.
func (d *Definition) Validate() error {
	if d.Shape == nil {
		return &ValidationError{"section must define a shape"}
	}
	if d.Fy < 0 {
		return &ValidationError{"fy must not be negative"}
	}
	return d.Shape.validate("shape")
}

func (n *Node) validate(path string) error {
	switch n.Type {
	case "rectangle", "triangle", "sector", "fillet", "ibeam", "box":
		if len(n.Parts) > 0 {
			return &ValidationError{msg: fmt.Sprintf("%s: %s cannot have parts", path, n.Type)}
		}
	case "composite":
		if len(n.Parts) == 0 {
			return &ValidationError{msg: fmt.Sprintf("%s: composite must have at least one part", path)}
		}
		for i, p := range n.Parts {
			child := fmt.Sprintf("%s.parts[%d]", path, i)
			if p.Shape == nil {
				return &ValidationError{msg: child + ": part must define a shape"}
			}
			if err := p.Shape.validate(child + ".shape"); err != nil {
				return err
			}
		}
	case "":
		return &ValidationError{msg: path + ": missing type"}
	default:
		return &ValidationError{msg: fmt.Sprintf("%s: unknown shape type %q", path, n.Type)}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
