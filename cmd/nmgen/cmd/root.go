package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "nmgen",
	Short: "build navigation mesh contours",
	Long: `nmgen extracts simplified region contours from compact heightfields,
the intermediate step between region partitioning and polygon meshing:
	- build contour sets from cell grid files,
	- render them to SVG for inspection,
	- easily tweak build settings (YAML files),
	- show infos about input geometry.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
