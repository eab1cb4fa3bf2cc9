package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"polarconv/internal/diag"
	"polarconv/internal/driver"
	"polarconv/internal/resolve"
	"polarconv/internal/version"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <input> <output>",
	Short: "Convert a generic TWA-major table into the native layout",
	Long: `Convert reads a generic table whose first line is TWA\TWS (or TWA/TWS)
followed by the TWS axis, transposes it into TWS curves, sorts and cleans
every curve and writes the native layout.`,
	Args: exactArgs(2, "<input> <output>"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, driver.Convert, args[0], args[1])
	},
}

func init() {
	addConversionFlags(convertCmd)
}

func addConversionFlags(cmd *cobra.Command) {
	cmd.Flags().String("resolve", "prompt", "conflict policy (prompt|keep-first|keep-last|fail)")
	cmd.Flags().String("ui", "auto", "terminal chooser for prompts (auto|on|off)")
	cmd.Flags().Bool("remember", false, "reuse answers given for the same input on earlier runs")
	cmd.Flags().String("encoding", "utf-8", "input character set (utf-8|latin1|windows-1252|utf-16)")
	cmd.Flags().Int("precision", -1, "significant digits in output (-1 = shortest exact)")
}

func runConversion(cmd *cobra.Command, command driver.Command, input, output string) (runErr error) {
	s, err := loadSettings(cmd, input)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer func() { cleanup(runErr) }()

	var echo io.Writer
	if !s.quiet {
		echo = cmd.OutOrStdout()
		fmt.Fprintln(echo, version.Banner("polarconv"))
		fmt.Fprintf(echo, "Input: %s\nOutput: %s\n", input, output)
	}

	req := driver.Request{
		Command:        command,
		Input:          input,
		Output:         output,
		Encoding:       s.encoding,
		Detector:       s.detector,
		Resolver:       s.buildResolver(cmd),
		Precision:      s.precision,
		Echo:           echo,
		MaxDiagnostics: s.maxDiag,
	}
	if s.remember {
		cache, err := resolve.OpenDecisionCache("polarconv")
		if err != nil {
			return fmt.Errorf("failed to open decision cache: %w", err)
		}
		req.Cache = cache
	}

	res, err := driver.Run(cmd.Context(), req)
	var bag *diag.Bag
	if res != nil {
		bag = res.Bag
		s.printDiagnostics(cmd, res.Bag)
		if s.timings {
			printTimings(cmd.ErrOrStderr(), res.Timer)
		}
	}
	if err != nil {
		return alreadyShown(bag, fmt.Errorf("%s failed: %w", command, err))
	}
	if echo != nil {
		fmt.Fprintf(echo, "Wrote %d curve(s) to %s", res.Table.Len(), output)
		if n := res.Report.Identical + res.Report.Conflicts(); n > 0 {
			fmt.Fprintf(echo, " (%d duplicate(s) removed", n)
			if res.CacheHits > 0 {
				fmt.Fprintf(echo, ", %d answered from cache", res.CacheHits)
			}
			fmt.Fprint(echo, ")")
		}
		fmt.Fprintln(echo)
	}
	return nil
}
