package cmd

import (
	"fmt"

	"github.com/alexiusacademia/sectprop/internal/props"
	"github.com/alexiusacademia/sectprop/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectorRadius    float64
	sectorHalfAngle float64
	sectorOutput    outputOptions
)

var shapeSectorCmd = &cobra.Command{
	Use:   "sector",
	Short: "Section properties of a circular sector",
	Long: `Compute the properties of a circular sector of radius R whose
apex is at the origin and which opens symmetrically about +x
by the half-angle φ either side. φ = 90 is a semicircle.

Examples:
  sectprop shape sector -R 150 --half-angle 90
  sectprop shape sector -R 150 --half-angle 30 --diagram`,
	Run: runShapeSector,
}

func init() {
	shapeCmd.AddCommand(shapeSectorCmd)

	shapeSectorCmd.Flags().Float64VarP(&sectorRadius, "radius", "R", 0, "Radius [required]")
	shapeSectorCmd.Flags().Float64Var(&sectorHalfAngle, "half-angle", 0, "Half-angle φ in degrees, 0 < φ < 180 [required]")
	shapeSectorCmd.MarkFlagRequired("radius")
	shapeSectorCmd.MarkFlagRequired("half-angle")

	addOutputFlags(shapeSectorCmd, &sectorOutput)
}

func runShapeSector(cmd *cobra.Command, args []string) {
	s, err := props.NewCircularSector(sectorRadius, section.Radians(sectorHalfAngle))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printReport("CIRCULAR SECTOR", []dimension{
		{"Radius (R)", length(sectorRadius, sectorOutput.unit)},
		{"Half-angle (φ)", degrees(sectorHalfAngle)},
		{"Included angle (2φ)", degrees(2 * sectorHalfAngle)},
	}, s, sectorOutput)
}
