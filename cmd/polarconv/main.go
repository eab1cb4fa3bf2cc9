package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"polarconv/internal/version"
)

// exitUsage is returned when the command line has too few arguments.
const exitUsage = 154

var rootCmd = &cobra.Command{
	Use:   "polarconv",
	Short: "Convert and clean sailing polar tables",
	Long: `polarconv turns TWA-major polar tables (the generic spreadsheet layout)
into the native TWS-major pair layout and cleans existing native files:
every curve is sorted by TWA and duplicate angles are collapsed.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return &usageError{cmd: cmd, msg: "missing command"}
	},
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect")
	rootCmd.PersistentFlags().String("diagnostics", "pretty", "diagnostics output format (pretty|json)")
	rootCmd.PersistentFlags().String("config", "", "path to polarconv.toml (default: search upwards from the input)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
}

// main executes the root command. A usage error exits with status 154, any
// other error with 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var shown *reportedError
	if errors.As(err, &shown) {
		return 1
	}
	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", uerr)
		fmt.Fprint(os.Stderr, uerr.cmd.UsageString())
		return exitUsage
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}

// usageError marks argument errors that should print usage.
type usageError struct {
	cmd *cobra.Command
	msg string
}

func (e *usageError) Error() string { return e.msg }

// reportedError wraps a failure that was already printed as a diagnostic.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// exactArgs is cobra.ExactArgs with a distinguished exit status.
func exactArgs(n int, names string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &usageError{
				cmd: cmd,
				msg: fmt.Sprintf("%s expects %s, got %d argument(s)", cmd.Name(), names, len(args)),
			}
		}
		return nil
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
