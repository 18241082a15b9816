package cmd

import (
	"fmt"

	"github.com/alexiusacademia/sectprop/internal/props"
	"github.com/alexiusacademia/sectprop/internal/section"
	"github.com/spf13/cobra"
)

var (
	filletRadius float64
	filletAngle  float64
	filletOutput outputOptions
)

var shapeFilletCmd = &cobra.Command{
	Use:   "fillet",
	Short: "Section properties of a fillet",
	Long: `Compute the properties of the region between two lines meeting
at angle α and a circular arc of radius R tangent to both.
The vertex is at the origin and the bisector runs along +x.

Examples:
  sectprop shape fillet -R 12
  sectprop shape fillet -R 12 --angle 60`,
	Run: runShapeFillet,
}

func init() {
	shapeCmd.AddCommand(shapeFilletCmd)

	shapeFilletCmd.Flags().Float64VarP(&filletRadius, "radius", "R", 0, "Fillet radius [required]")
	shapeFilletCmd.Flags().Float64Var(&filletAngle, "angle", 90, "Angle between the tangent lines in degrees, 0 < α < 180")
	shapeFilletCmd.MarkFlagRequired("radius")

	addOutputFlags(shapeFilletCmd, &filletOutput)
}

func runShapeFillet(cmd *cobra.Command, args []string) {
	f, err := props.NewFillet(filletRadius, section.Radians(filletAngle))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printReport("FILLET", []dimension{
		{"Radius (R)", length(filletRadius, filletOutput.unit)},
		{"Included angle (α)", degrees(filletAngle)},
		{"Tangent length", length(f.TangentLength(), filletOutput.unit)},
	}, f, filletOutput)
}
