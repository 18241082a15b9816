package cmd

import (
	"fmt"

	"github.com/alexiusacademia/sectprop/internal/props"
	"github.com/spf13/cobra"
)

var (
	ibeamDepth  float64
	ibeamWidth  float64
	ibeamFlange float64
	ibeamWeb    float64
	ibeamRoot   float64
	ibeamOutput outputOptions
)

var shapeIBeamCmd = &cobra.Command{
	Use:   "ibeam",
	Short: "Section properties of a doubly symmetric I-section",
	Long: `Compute the properties of an I-section of overall depth d,
flange width bf, flange thickness tf and web thickness tw, with
optional root fillets of radius r between web and flanges.
The origin is at the centre of the section.

Examples:
  sectprop shape ibeam -d 310 --bf 165 --tf 9.7 --tw 5.8 -r 8
  sectprop shape ibeam -d 310 --bf 165 --tf 9.7 --tw 5.8 --grade A992`,
	Run: runShapeIBeam,
}

func init() {
	shapeCmd.AddCommand(shapeIBeamCmd)

	shapeIBeamCmd.Flags().Float64VarP(&ibeamDepth, "depth", "d", 0, "Overall depth [required]")
	shapeIBeamCmd.Flags().Float64Var(&ibeamWidth, "bf", 0, "Flange width [required]")
	shapeIBeamCmd.Flags().Float64Var(&ibeamFlange, "tf", 0, "Flange thickness [required]")
	shapeIBeamCmd.Flags().Float64Var(&ibeamWeb, "tw", 0, "Web thickness [required]")
	shapeIBeamCmd.Flags().Float64VarP(&ibeamRoot, "root-radius", "r", 0, "Root fillet radius")
	shapeIBeamCmd.MarkFlagRequired("depth")
	shapeIBeamCmd.MarkFlagRequired("bf")
	shapeIBeamCmd.MarkFlagRequired("tf")
	shapeIBeamCmd.MarkFlagRequired("tw")

	addOutputFlags(shapeIBeamCmd, &ibeamOutput)
}

func runShapeIBeam(cmd *cobra.Command, args []string) {
	s, err := props.NewIBeam(ibeamDepth, ibeamWidth, ibeamFlange, ibeamWeb, ibeamRoot)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	u := ibeamOutput.unit
	printReport("I-SECTION", []dimension{
		{"Depth (d)", length(ibeamDepth, u)},
		{"Flange width (bf)", length(ibeamWidth, u)},
		{"Flange thickness (tf)", length(ibeamFlange, u)},
		{"Web thickness (tw)", length(ibeamWeb, u)},
		{"Root radius (r)", length(ibeamRoot, u)},
	}, s, ibeamOutput)
}
