package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"polarconv/internal/config"
	"polarconv/internal/diag"
	"polarconv/internal/diagfmt"
	"polarconv/internal/parser"
	"polarconv/internal/resolve"
	"polarconv/internal/source"
)

// settings is the merged view of config file, environment and flags.
type settings struct {
	cfg       *config.Config
	encoding  source.Encoding
	detector  parser.Detector
	policy    resolve.Policy
	ui        uiMode
	remember  bool
	precision int
	maxDiag   int
	quiet     bool
	timings   bool
	color     bool
	diagFmt   string
}

// loadSettings reads polarconv.toml (searching upwards from the input's
// directory) and lets explicitly set flags win over it.
func loadSettings(cmd *cobra.Command, input string) (*settings, error) {
	root := cmd.Root().PersistentFlags()
	flags := cmd.Flags()

	cfgPath, err := root.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(config.Options{Path: cfgPath, StartDir: filepath.Dir(input)})
	if err != nil {
		return nil, err
	}

	s := &settings{cfg: cfg}

	if flags.Lookup("encoding") != nil && flags.Changed("encoding") {
		cfg.Input.Encoding, _ = flags.GetString("encoding")
	}
	if flags.Lookup("delimiter") != nil && flags.Changed("delimiter") {
		cfg.Input.Delimiter, _ = flags.GetString("delimiter")
	}
	if flags.Lookup("precision") != nil && flags.Changed("precision") {
		cfg.Output.Precision, _ = flags.GetInt("precision")
	}
	if flags.Lookup("resolve") != nil && flags.Changed("resolve") {
		cfg.Resolve.Policy, _ = flags.GetString("resolve")
	}
	if flags.Lookup("ui") != nil && flags.Changed("ui") {
		cfg.Resolve.UI, _ = flags.GetString("ui")
	}
	if flags.Lookup("remember") != nil && flags.Changed("remember") {
		cfg.Resolve.Remember, _ = flags.GetBool("remember")
	}
	if root.Changed("max-diagnostics") {
		cfg.Diagnostics.Max, _ = root.GetInt("max-diagnostics")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if s.encoding, err = source.ParseEncoding(cfg.Input.Encoding); err != nil {
		return nil, err
	}
	if cfg.Input.Delimiter != "" {
		if s.detector, err = parser.DetectorFor(cfg.Input.Delimiter); err != nil {
			return nil, err
		}
	}
	if s.policy, err = resolve.ParsePolicy(cfg.Resolve.Policy); err != nil {
		return nil, err
	}
	if s.ui, err = readUIMode(cfg.Resolve.UI); err != nil {
		return nil, err
	}
	s.remember = cfg.Resolve.Remember
	s.precision = cfg.Output.Precision
	s.maxDiag = cfg.Diagnostics.Max

	if s.quiet, err = root.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = root.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	colorFlag, err := root.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	if s.color, err = applyColor(colorFlag); err != nil {
		return nil, err
	}
	if s.diagFmt, err = root.GetString("diagnostics"); err != nil {
		return nil, fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	if s.diagFmt != "pretty" && s.diagFmt != "json" {
		return nil, fmt.Errorf("invalid --diagnostics value %q (expected pretty|json)", s.diagFmt)
	}
	return s, nil
}

// buildResolver maps the policy to a resolver. Prompts go to the console
// even with --quiet.
func (s *settings) buildResolver(cmd *cobra.Command) resolve.Resolver {
	switch s.policy {
	case resolve.PolicyKeepFirst:
		return resolve.KeepFirst
	case resolve.PolicyKeepLast:
		return resolve.KeepLast
	case resolve.PolicyFail:
		return resolve.Fail
	}
	if shouldUseTUI(s.ui) {
		return resolve.NewTUI(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return resolve.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout())
}

// printDiagnostics writes warnings and errors to stderr, and the number of
// diagnostics dropped over --max-diagnostics.
func (s *settings) printDiagnostics(cmd *cobra.Command, bag *diag.Bag) {
	if bag == nil || (!bag.HasErrors() && !bag.HasWarnings() && bag.Dropped() == 0 && s.diagFmt != "json") {
		return
	}
	bag.Sort()
	if s.diagFmt == "json" {
		if err := diagfmt.JSON(cmd.ErrOrStderr(), bag, diagfmt.JSONOpts{MinSeverity: diag.SevWarning}); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write diagnostics: %v\n", err)
		}
		return
	}
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, diagfmt.PrettyOpts{
		Color:       s.color,
		MinSeverity: diag.SevWarning,
	})
}

// alreadyShown marks a read failure whose error diagnostic is in bag, so it
// is not printed a second time on exit.
func alreadyShown(bag *diag.Bag, err error) error {
	var lineErr *parser.LineError
	if bag != nil && bag.HasErrors() && errors.As(err, &lineErr) {
		return &reportedError{err: err}
	}
	return err
}
