package cmd

import (
	"fmt"

	"github.com/alexiusacademia/sectprop/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionAnalyzeFile   string
	sectionAnalyzeOutput outputOptions
)

var sectionAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Calculate section properties of a composite section",
	Long: `Calculate area, centroid, second moments, principal axes and
section moduli of a section defined in a JSON file.

Flexural capacity is reported when the file or the command line
gives a yield strength (fy) or a steel grade.

Examples:
  sectprop section analyze --file tee.json
  sectprop section analyze -f plate.json --diagram -o plate.png`,
	Run: runSectionAnalyze,
}

func init() {
	sectionCmd.AddCommand(sectionAnalyzeCmd)

	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeFile, "file", "f", "", "Path to section JSON file [required]")
	sectionAnalyzeCmd.MarkFlagRequired("file")

	addOutputFlags(sectionAnalyzeCmd, &sectionAnalyzeOutput)
}

func runSectionAnalyze(cmd *cobra.Command, args []string) {
	// Load section from file
	def, err := section.LoadFromFile(sectionAnalyzeFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	s, err := def.Build()
	if err != nil {
		fmt.Printf("Error building section: %v\n", err)
		return
	}

	// Command-line flags override the file
	o := sectionAnalyzeOutput
	if !cmd.Flags().Changed("unit") && def.Unit != "" {
		o.unit = def.Unit
	}
	if o.fy == 0 && o.grade == "" {
		o.fy, o.grade = def.Fy, def.Grade
	}

	title := def.Name
	if title == "" {
		title = "SECTION"
	}
	if def.Description != "" {
		fmt.Println()
		fmt.Printf("  Description: %s\n", def.Description)
	}

	printReport(title, nil, s, o)
}
