package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"polarconv/internal/diagfmt"
	"polarconv/internal/driver"
	"polarconv/internal/normalize"
	"polarconv/internal/resolve"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] <input>",
	Short: "Print a parsed polar table",
	Args:  exactArgs(1, "<input>"),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().String("input", "native", "input layout (generic|native)")
	showCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
	showCmd.Flags().Bool("normalize", false, "sort and de-duplicate (keeping the first entry) before printing")
	showCmd.Flags().String("encoding", "utf-8", "input character set (utf-8|latin1|windows-1252|utf-16)")
	showCmd.Flags().String("delimiter", "", "native input delimiter (default: detect)")
}

func runShow(cmd *cobra.Command, args []string) (runErr error) {
	input := args[0]

	layoutFlag, err := cmd.Flags().GetString("input")
	if err != nil {
		return fmt.Errorf("failed to get input flag: %w", err)
	}
	layout, err := driver.ParseLayout(layoutFlag)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	doNormalize, err := cmd.Flags().GetBool("normalize")
	if err != nil {
		return fmt.Errorf("failed to get normalize flag: %w", err)
	}

	s, err := loadSettings(cmd, input)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer func() { cleanup(runErr) }()

	res, err := driver.Read(cmd.Context(), driver.ReadRequest{
		Path:           input,
		Layout:         layout,
		Encoding:       s.encoding,
		Detector:       s.detector,
		MaxDiagnostics: s.maxDiag,
	})
	if res != nil {
		defer s.printDiagnostics(cmd, res.Bag)
	}
	if err != nil {
		if res != nil {
			return alreadyShown(res.Bag, err)
		}
		return err
	}

	if doNormalize {
		if _, err := normalize.Normalize(cmd.Context(), res.Table, resolve.KeepFirst); err != nil {
			return err
		}
	}
	return diagfmt.FormatTable(cmd.OutOrStdout(), res.Table, format)
}
