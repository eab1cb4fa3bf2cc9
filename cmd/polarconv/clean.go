package main

import (
	"github.com/spf13/cobra"

	"polarconv/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [flags] <input> <output>",
	Short: "Sort and de-duplicate a native polar file",
	Long: `Clean reads a native file (TWS followed by TWA/value pairs on each line),
sorts every curve by TWA, collapses duplicate angles and writes the result.
The delimiter is taken from the first character that is not a digit on the
first data line unless --delimiter is given.`,
	Args: exactArgs(2, "<input> <output>"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, driver.Clean, args[0], args[1])
	},
}

func init() {
	addConversionFlags(cleanCmd)
	cleanCmd.Flags().String("delimiter", "", "input delimiter: a single character, tab or space (default: detect)")
}
