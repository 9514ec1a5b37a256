// Command spectool inspects and transforms column-oriented measurement
// files. The first column is the coordinate axis; every further column is a
// measurement channel.
//
// Examples:
//
//	spectool stats scan.txt
//	spectool derive --order 2 scan.txt
//	spectool spectrum --channel 1 interferogram.txt
//	spectool clean noisy.txt
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spectool",
	Short: "spectool — numeric utilities for column-oriented measurement files",
	Long: `spectool applies the algo-spectra numeric routines to whitespace-separated
column files. The first column is interpreted as the coordinate axis; every
remaining column is a measurement channel. NaN markers in any column are
understood by the cleaning and statistics commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
