package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Composite section analysis",
	Long: `Analyze built-up and composite sections defined in JSON files.

A section is a tree of shapes. Composite nodes hold parts, each a
shape placed with an offset and a rotation (degrees, counter-clockwise)
and either added or subtracted. Leaf shapes are rectangle, triangle,
sector, fillet, ibeam and box.

Subcommands:
  analyze  - Calculate section properties for a defined section

Example JSON file structure:
{
  "name": "Welded Tee",
  "unit": "mm",
  "grade": "A36",
  "shape": {
    "type": "composite",
    "parts": [
      {"shape": {"type": "rectangle", "length": 250, "breadth": 20},
       "offset": {"x": -125, "y": 230}},
      {"shape": {"type": "rectangle", "length": 12, "breadth": 230},
       "offset": {"x": -6, "y": 0}},
      {"shape": {"type": "sector", "radius": 5, "half_angle": 90},
       "offset": {"x": 0, "y": 100}, "rotation": 90, "subtract": true}
    ]
  }
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
