package cmd

import (
	"fmt"

	"github.com/alexiusacademia/sectprop/internal/props"
	"github.com/spf13/cobra"
)

var (
	boxWidth     float64
	boxDepth     float64
	boxThickness float64
	boxOutput    outputOptions
)

var shapeBoxCmd = &cobra.Command{
	Use:   "box",
	Short: "Section properties of a rectangular hollow section",
	Long: `Compute the properties of a rectangular tube of outside width b,
outside depth d and uniform wall thickness t. Corners are square.

Examples:
  sectprop shape box -b 100 -d 200 -t 6
  sectprop shape box -b 100 -d 200 -t 6 --fy 345 -o box.svg`,
	Run: runShapeBox,
}

func init() {
	shapeCmd.AddCommand(shapeBoxCmd)

	shapeBoxCmd.Flags().Float64VarP(&boxWidth, "width", "b", 0, "Outside width [required]")
	shapeBoxCmd.Flags().Float64VarP(&boxDepth, "depth", "d", 0, "Outside depth [required]")
	shapeBoxCmd.Flags().Float64VarP(&boxThickness, "thickness", "t", 0, "Wall thickness [required]")
	shapeBoxCmd.MarkFlagRequired("width")
	shapeBoxCmd.MarkFlagRequired("depth")
	shapeBoxCmd.MarkFlagRequired("thickness")

	addOutputFlags(shapeBoxCmd, &boxOutput)
}

func runShapeBox(cmd *cobra.Command, args []string) {
	s, err := props.NewBox(boxWidth, boxDepth, boxThickness)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	u := boxOutput.unit
	printReport("BOX SECTION", []dimension{
		{"Width (b)", length(boxWidth, u)},
		{"Depth (d)", length(boxDepth, u)},
		{"Wall thickness (t)", length(boxThickness, u)},
	}, s, boxOutput)
}
