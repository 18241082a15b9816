package cmd

import (
	"github.com/spf13/cobra"
)

var shapeCmd = &cobra.Command{
	Use:   "shape",
	Short: "Section properties of a single standard shape",
	Long: `Compute the section properties of one standard shape given
its dimensions on the command line.

Angles are entered in degrees. Lengths are in the unit named by
--unit (mm by default); capacities from --fy or --grade assume mm.

Subcommands:
  rectangle  - Solid rectangle
  triangle   - Right triangle with a given base angle
  sector     - Circular sector with a given half-angle
  fillet     - Fillet (spandrel) between two tangent lines
  ibeam      - Doubly symmetric I-section with root fillets
  box        - Rectangular hollow section`,
}

func init() {
	rootCmd.AddCommand(shapeCmd)
}
