package cmd

import (
	"fmt"

	"github.com/alexiusacademia/sectprop/internal/props"
	"github.com/spf13/cobra"
)

var (
	rectLength  float64
	rectBreadth float64
	rectOutput  outputOptions
)

var shapeRectangleCmd = &cobra.Command{
	Use:   "rectangle",
	Short: "Section properties of a solid rectangle",
	Long: `Compute the properties of a rectangle of length L (along x)
and breadth B (along y), about its centroidal axes.

Examples:
  sectprop shape rectangle -L 300 -B 500
  sectprop shape rectangle -L 300 -B 500 --grade A36 --diagram`,
	Run: runShapeRectangle,
}

func init() {
	shapeCmd.AddCommand(shapeRectangleCmd)

	shapeRectangleCmd.Flags().Float64VarP(&rectLength, "length", "L", 0, "Length along x [required]")
	shapeRectangleCmd.Flags().Float64VarP(&rectBreadth, "breadth", "B", 0, "Breadth along y [required]")
	shapeRectangleCmd.MarkFlagRequired("length")
	shapeRectangleCmd.MarkFlagRequired("breadth")

	addOutputFlags(shapeRectangleCmd, &rectOutput)
}

func runShapeRectangle(cmd *cobra.Command, args []string) {
	r, err := props.NewRectangle(rectLength, rectBreadth)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printReport("RECTANGLE", []dimension{
		{"Length (L)", length(rectLength, rectOutput.unit)},
		{"Breadth (B)", length(rectBreadth, rectOutput.unit)},
	}, r, rectOutput)
}
