package cmd

import (
	"errors"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/sectprop/internal/diagram"
	"github.com/alexiusacademia/sectprop/internal/nscp"
	"github.com/alexiusacademia/sectprop/internal/props"
	"github.com/spf13/cobra"
)

// outputOptions are the report flags shared by every shape command.
type outputOptions struct {
	unit        string
	fy          float64
	grade       string
	showDiagram bool
	exportFile  string
}

func addOutputFlags(cmd *cobra.Command, o *outputOptions) {
	cmd.Flags().StringVar(&o.unit, "unit", "mm", "Length unit used for the dimensions")
	cmd.Flags().Float64Var(&o.fy, "fy", 0, "Steel yield strength fy (MPa) for flexural capacity")
	cmd.Flags().StringVar(&o.grade, "grade", "", "Steel grade for flexural capacity (A36, A572-50, A992)")

	// Diagram options
	cmd.Flags().BoolVar(&o.showDiagram, "diagram", false, "Show ASCII section sketch")
	cmd.Flags().StringVarP(&o.exportFile, "output", "o", "", "Export section drawing to file (png, svg, pdf)")
}

// yieldStrength resolves --fy and --grade; fy wins when both are set.
func (o *outputOptions) yieldStrength() (float64, error) {
	if o.fy > 0 || o.grade == "" {
		return o.fy, nil
	}
	g, err := nscp.LookupGrade(o.grade)
	if err != nil {
		return 0, err
	}
	return g.Fy, nil
}

// dimension is one input row of the report.
type dimension struct {
	label string
	value string
}

func printReport(title string, dims []dimension, s props.Shape, o outputOptions) {
	u := o.unit
	fy, err := o.yieldStrength()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s - SECTION PROPERTIES\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if len(dims) > 0 {
		fmt.Println("INPUT DATA:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, d := range dims {
			fmt.Fprintf(w, "  %s:\t%s\n", d.label, d.value)
		}
		w.Flush()
		fmt.Println()
	}

	c := s.Centroid()
	fmt.Println("AREA AND CENTROID:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%.4f %s²\n", s.Area(), u)
	fmt.Fprintf(w, "  Centroid (x̄):\t%.4f %s\n", c.X, u)
	fmt.Fprintf(w, "  Centroid (ȳ):\t%.4f %s\n", c.Y, u)
	w.Flush()
	fmt.Println()

	major, minor, angle := props.PrincipalMoments(s)
	fmt.Println("SECOND MOMENTS (centroidal axes):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ix:\t%.4f %s⁴\n", s.SecondMomentX(), u)
	fmt.Fprintf(w, "  Iy:\t%.4f %s⁴\n", s.SecondMomentY(), u)
	fmt.Fprintf(w, "  Ixy:\t%.4f %s⁴\n", s.ProductOfInertia(), u)
	fmt.Fprintf(w, "  I₁ (major principal):\t%.4f %s⁴\n", major, u)
	fmt.Fprintf(w, "  I₂ (minor principal):\t%.4f %s⁴\n", minor, u)
	fmt.Fprintf(w, "  Principal axis angle:\t%.4f°\n", angle*180/math.Pi)
	w.Flush()
	fmt.Println()

	rx, rxErr := s.RadiusOfGyrationX()
	ry, ryErr := s.RadiusOfGyrationY()
	sx, sxErr := s.ElasticModulusX()
	sy, syErr := s.ElasticModulusY()
	zx, zxErr := s.PlasticModulusX()
	zy, zyErr := s.PlasticModulusY()

	fmt.Println("DERIVED PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Radius of gyration (rx):\t%s\n", quantity(rx, rxErr, u))
	fmt.Fprintf(w, "  Radius of gyration (ry):\t%s\n", quantity(ry, ryErr, u))
	fmt.Fprintf(w, "  Elastic modulus (Sx):\t%s\n", quantity(sx, sxErr, u+"³"))
	fmt.Fprintf(w, "  Elastic modulus (Sy):\t%s\n", quantity(sy, syErr, u+"³"))
	fmt.Fprintf(w, "  Plastic modulus (Zx):\t%s\n", quantity(zx, zxErr, u+"³"))
	fmt.Fprintf(w, "  Plastic modulus (Zy):\t%s\n", quantity(zy, zyErr, u+"³"))
	w.Flush()
	fmt.Println()

	if fy > 0 {
		fmt.Printf("FLEXURAL CAPACITY (fy = %.0f MPa, NSCP 2015):\n", fy)
		fmt.Println("───────────────────────────────────────────────────────────────")
		if u != "mm" {
			fmt.Printf("  ⚠ capacities assume dimensions in mm (got %s)\n", u)
		}
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		if sxErr == nil {
			fmt.Fprintf(w, "  Yield moment (Myx):\t%.2f kN-m\n", nscp.YieldMoment(fy, sx))
		}
		if syErr == nil {
			fmt.Fprintf(w, "  Yield moment (Myy):\t%.2f kN-m\n", nscp.YieldMoment(fy, sy))
		}
		if zxErr == nil {
			mp := nscp.PlasticMoment(fy, zx)
			fmt.Fprintf(w, "  Plastic moment (Mpx):\t%.2f kN-m\n", mp)
			fmt.Fprintf(w, "  Design strength (φb·Mpx):\t%.2f kN-m\n", nscp.DesignFlexuralStrength(mp))
			if sxErr == nil {
				fmt.Fprintf(w, "  Shape factor (Zx/Sx):\t%.3f\n", nscp.ShapeFactor(zx, sx))
			}
		}
		if zyErr == nil {
			mp := nscp.PlasticMoment(fy, zy)
			fmt.Fprintf(w, "  Plastic moment (Mpy):\t%.2f kN-m\n", mp)
			fmt.Fprintf(w, "  Design strength (φb·Mpy):\t%.2f kN-m\n", nscp.DesignFlexuralStrength(mp))
		}
		if zxErr != nil && sxErr == nil {
			// Without Z the elastic limit is the only available capacity.
			fmt.Fprintf(w, "  Design strength (φb·Myx):\t%.2f kN-m\n", nscp.DesignFlexuralStrength(nscp.YieldMoment(fy, sx)))
		}
		w.Flush()
		fmt.Println()
	}

	if sxErr == nil {
		fmt.Print(diagram.DrawSummaryBox("SUMMARY", []string{
			fmt.Sprintf("A  = %.2f %s²", s.Area(), u),
			fmt.Sprintf("Ix = %.4g %s⁴", s.SecondMomentX(), u),
			fmt.Sprintf("Sx = %.4g %s³", sx, u),
		}))
		fmt.Println()
	}

	showDiagrams(title, s, o)
}

// quantity formats a query result, naming the error kind on failure.
func quantity(v float64, err error, unit string) string {
	switch {
	case err == nil:
		return fmt.Sprintf("%.4f %s", v, unit)
	case errors.Is(err, props.ErrUnsupported):
		return "n/a (no closed form for this shape)"
	case errors.Is(err, props.ErrDomain):
		return "n/a (domain error)"
	}
	return "error: " + err.Error()
}

func showDiagrams(title string, s props.Shape, o outputOptions) {
	if !o.showDiagram && o.exportFile == "" {
		return
	}
	data, err := diagram.NewSectionDiagramData(title, o.unit, s, 16)
	if err != nil {
		fmt.Printf("Error preparing diagram: %v\n", err)
		return
	}

	// Show diagram if requested
	if o.showDiagram {
		fmt.Println(diagram.DrawASCIISectionDiagram(data, 40))
	}

	// Export diagram if requested
	if o.exportFile != "" {
		err := diagram.ExportSectionDiagram(data, o.exportFile)
		if err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", o.exportFile)
		}
	}
}

func length(v float64, unit string) string {
	return fmt.Sprintf("%g %s", v, unit)
}

func degrees(v float64) string {
	return fmt.Sprintf("%g°", v)
}
