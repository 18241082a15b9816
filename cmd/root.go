package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/sectprop/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sectprop",
	Short: "Geometric Section Properties Calculator",
	Long: `sectprop - Go Section Properties Calculator

A CLI tool for the geometric properties of plane cross-sections
built from rectangles, right triangles, circular sectors and fillets.

This tool computes:
  - Area and centroid
  - Second moments and product of inertia about centroidal axes
  - Principal moments and principal axis angle
  - Radii of gyration, elastic and plastic section moduli
  - Steel flexural capacity based on NSCP 2015 (Volume 1)

Composite sections of added and subtracted parts, placed with an
offset and a rotation, are defined in JSON files.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   sectprop v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Section Properties Calculator                        ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the geometric properties of plane sections.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Rectangle, right triangle, circular sector and fillet")
		fmt.Println("    • Rolled I-sections with root fillets and hollow boxes")
		fmt.Println("    • Composite sections with holes from JSON definitions")
		fmt.Println("    • ASCII sketches and PNG/SVG/PDF drawings")
		fmt.Println()
		fmt.Println("  Use 'sectprop --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
