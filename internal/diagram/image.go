package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	materialColor = color.RGBA{R: 100, G: 149, B: 237, A: 200}
	outlineColor  = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	axisColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ExportSectionDiagram exports the section outline with its centroid and
// centroidal axes to an image file. The extension picks the format (png,
// svg, pdf); anything else is written as png.
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	if len(data.Polygons) == 0 {
		return fmt.Errorf("section has no outline to draw")
	}

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = axisLabel("x", data.Unit)
	p.Y.Label.Text = axisLabel("y", data.Unit)

	// Holes are painted over the material in the background colour, so
	// outlines draw in constituent order.
	for _, poly := range data.Polygons {
		pts := make(plotter.XYs, len(poly.Points))
		for i, v := range poly.Points {
			pts[i] = plotter.XY{X: v.X, Y: v.Y}
		}
		shape, err := plotter.NewPolygon(pts)
		if err != nil {
			return err
		}
		shape.LineStyle.Color = outlineColor
		shape.LineStyle.Width = vg.Points(1)
		if poly.Hole {
			shape.Color = color.White
			shape.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
		} else {
			shape.Color = materialColor
		}
		p.Add(shape)
	}

	lo, hi := Bounds(data.Polygons)
	margin := 0.1 * max(hi.X-lo.X, hi.Y-lo.Y)
	c := data.Centroid

	// Centroidal axes
	for _, axis := range []plotter.XYs{
		{{X: lo.X - margin, Y: c.Y}, {X: hi.X + margin, Y: c.Y}},
		{{X: c.X, Y: lo.Y - margin}, {X: c.X, Y: hi.Y + margin}},
	} {
		line, err := plotter.NewLine(axis)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = axisColor
		line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(line)
	}

	centroid, err := plotter.NewScatter(plotter.XYs{{X: c.X, Y: c.Y}})
	if err != nil {
		return err
	}
	centroid.GlyphStyle.Color = axisColor
	centroid.GlyphStyle.Radius = vg.Points(4)
	centroid.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(centroid)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: c.X + margin/4, Y: c.Y + margin/4}},
		Labels: []string{fmt.Sprintf("C (%.2f, %.2f)", c.X, c.Y)},
	})
	if err != nil {
		return err
	}
	p.Add(label)

	// Equal scale on both axes
	span := max(hi.X-lo.X, hi.Y-lo.Y)/2 + margin
	mx, my := (lo.X+hi.X)/2, (lo.Y+hi.Y)/2
	p.X.Min, p.X.Max = mx-span, mx+span
	p.Y.Min, p.Y.Max = my-span, my+span

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	size := 6 * vg.Inch
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(size, size, filename)
	default:
		return p.Save(size, size, filename+".png")
	}
}

func axisLabel(name, unit string) string {
	if unit == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, unit)
}
