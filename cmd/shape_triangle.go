package cmd

import (
	"fmt"

	"github.com/alexiusacademia/sectprop/internal/props"
	"github.com/alexiusacademia/sectprop/internal/section"
	"github.com/spf13/cobra"
)

var (
	triBase   float64
	triHeight float64
	triAngle  float64
	triOutput outputOptions
)

var shapeTriangleCmd = &cobra.Command{
	Use:   "triangle",
	Short: "Section properties of a right triangle",
	Long: `Compute the properties of a triangle with base b on the x axis,
height h, and base angle θ at the origin. θ = 90 gives a right
triangle with the right angle at the origin.

The plastic modulus of a triangle has no closed form and is
reported as n/a.

Examples:
  sectprop shape triangle -b 600 --height 400
  sectprop shape triangle -b 600 --height 400 --angle 60`,
	Run: runShapeTriangle,
}

func init() {
	shapeCmd.AddCommand(shapeTriangleCmd)

	shapeTriangleCmd.Flags().Float64VarP(&triBase, "base", "b", 0, "Base length along x [required]")
	shapeTriangleCmd.Flags().Float64Var(&triHeight, "height", 0, "Height along y [required]")
	shapeTriangleCmd.Flags().Float64Var(&triAngle, "angle", 90, "Base angle in degrees, 0 < θ < 180")
	shapeTriangleCmd.MarkFlagRequired("base")
	shapeTriangleCmd.MarkFlagRequired("height")

	addOutputFlags(shapeTriangleCmd, &triOutput)
}

func runShapeTriangle(cmd *cobra.Command, args []string) {
	t, err := props.NewRightTriangle(triBase, triHeight, section.Radians(triAngle))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printReport("TRIANGLE", []dimension{
		{"Base (b)", length(triBase, triOutput.unit)},
		{"Height (h)", length(triHeight, triOutput.unit)},
		{"Base angle (θ)", degrees(triAngle)},
	}, t, triOutput)
}
