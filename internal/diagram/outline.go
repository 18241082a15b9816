package diagram

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/sectprop/internal/props"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon is one closed outline in the section's frame. Hole outlines mark
// removed area.
type Polygon struct {
	Points []r2.Vec
	Hole   bool
}

// SectionDiagramData holds data for drawing a section outline
type SectionDiagramData struct {
	Title    string
	Unit     string
	Polygons []Polygon
	Centroid r2.Vec
}

// NewSectionDiagramData flattens a shape tree into outlines. Arcs are split
// into arcSegments chords per quarter turn.
func NewSectionDiagramData(title, unit string, s props.Shape, arcSegments int) (SectionDiagramData, error) {
	polys, err := Outline(s, arcSegments)
	if err != nil {
		return SectionDiagramData{}, err
	}
	return SectionDiagramData{
		Title:    title,
		Unit:     unit,
		Polygons: polys,
		Centroid: s.Centroid(),
	}, nil
}

// Outline returns the polygons of s in its local frame, in drawing order.
func Outline(s props.Shape, arcSegments int) ([]Polygon, error) {
	if arcSegments < 1 {
		arcSegments = 1
	}
	switch s := s.(type) {
	case props.Rectangle:
		return []Polygon{{Points: s.Corners()}}, nil
	case props.RightTriangle:
		return []Polygon{{Points: s.Vertices()}}, nil
	case props.CircularSector:
		pts := []r2.Vec{{}}
		pts = append(pts, arc(r2.Vec{}, s.Radius(), -s.HalfAngle(), s.HalfAngle(), arcSegments)...)
		return []Polygon{{Points: pts}}, nil
	case props.Fillet:
		upper, lower := s.TangentPoints()
		half := s.Angle() / 2
		pts := []r2.Vec{{}, upper}
		pts = append(pts, arc(s.ArcCentre(), s.Radius(), math.Pi/2+half, 3*math.Pi/2-half, arcSegments)...)
		pts = append(pts, lower)
		return []Polygon{{Points: pts}}, nil
	case *props.Composite:
		var out []Polygon
		for _, p := range s.Parts() {
			child, err := Outline(p.Shape, arcSegments)
			if err != nil {
				return nil, err
			}
			for _, c := range child {
				placed := Polygon{Hole: c.Hole != (p.Sign == props.Subtract)}
				for _, v := range c.Points {
					placed.Points = append(placed.Points, p.Place(v))
				}
				out = append(out, placed)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("no outline for shape %T", s)
}

// arc samples a circular arc from angle a0 to a1 inclusive.
func arc(centre r2.Vec, radius, a0, a1 float64, perQuarter int) []r2.Vec {
	n := int(math.Ceil(math.Abs(a1-a0) / (math.Pi / 2) * float64(perQuarter)))
	if n < 1 {
		n = 1
	}
	pts := make([]r2.Vec, 0, n+1)
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		sin, cos := math.Sincos(a)
		pts = append(pts, r2.Add(centre, r2.Vec{X: radius * cos, Y: radius * sin}))
	}
	return pts
}

// Bounds returns the bounding box of the outlines.
func Bounds(polys []Polygon) (lo, hi r2.Vec) {
	lo = r2.Vec{X: math.Inf(1), Y: math.Inf(1)}
	hi = r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range polys {
		for _, v := range p.Points {
			lo.X, lo.Y = math.Min(lo.X, v.X), math.Min(lo.Y, v.Y)
			hi.X, hi.Y = math.Max(hi.X, v.X), math.Max(hi.Y, v.Y)
		}
	}
	return lo, hi
}

// Covered reports whether point q lies in solid material: inside more
// outlines than holes.
func Covered(polys []Polygon, q r2.Vec) bool {
	depth := 0
	for _, p := range polys {
		if !p.contains(q) {
			continue
		}
		if p.Hole {
			depth--
		} else {
			depth++
		}
	}
	return depth > 0
}

// contains uses horizontal ray crossings.
func (p Polygon) contains(q r2.Vec) bool {
	inside := false
	n := len(p.Points)
	for i := 0; i < n; i++ {
		v1, v2 := p.Points[i], p.Points[(i+1)%n]

		// Check if the edge crosses the Y level
		if (v1.Y <= q.Y && v2.Y > q.Y) || (v2.Y <= q.Y && v1.Y > q.Y) {
			t := (q.Y - v1.Y) / (v2.Y - v1.Y)
			if x := v1.X + t*(v2.X-v1.X); x > q.X {
				inside = !inside
			}
		}
	}
	return inside
}
