package cmd

import (
	"fmt"

	"github.com/alexiusacademia/sectprop/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sectprop",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sectprop %s\n", version.String())
		fmt.Println("Geometric Section Properties Calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
