package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/tailorcss"
	"github.com/yacobolo/tailorcss/internal/tailor"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// errCheckFailed exits with status 1 without printing an error; the
// reporter has already shown the issues.
var errCheckFailed = errors.New("stylesheet check failed")

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check that a generated stylesheet matches the markup",
	Long: `Compile the shorthand classes found in the given paths and compare them
with an existing stylesheet. Missing or changed rules are errors, rules the
markup no longer uses are warnings.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.String("stylesheet", "", "Stylesheet to check (default: generate.output)")
	f.Bool("strict", false, "Exit 1 on any issue, warnings included (CI mode)")
	f.Bool("important", false, "The stylesheet was generated with !important")
	f.StringSlice("ext", []string{".html"}, "File extensions to read")
	f.Bool("gitignore", false, "Skip files matched by .gitignore")
}

func runCheck(_ *cobra.Command, args []string) error {
	quiet := getBool("quiet", false)
	verbose := getBool("verbose", false)
	log := newLogger(verbose, quiet)
	defer func() { _ = log.Sync() }()

	stylesheet := getString("check.stylesheet", getString("generate.output", ""))

	collect := buildCollectOptions()
	collect.Logger = log

	result, err := tailorcss.Check(tailorcss.CheckConfig{
		Paths:      resolvePaths(args),
		Stylesheet: stylesheet,
		Options:    buildOptions(),
		Collect:    collect,
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	for _, scanErr := range multierr.Errors(result.ScanErr) {
		log.Debug("Path skipped during check", zap.Error(scanErr))
	}

	if !quiet {
		reporter := tailor.NewReporter(os.Stdout, getBool("color", false))
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues)

		if verbose {
			vr := tailor.NewVerboseReporter(os.Stdout, reporter.UseColors())
			vr.PrintStatistics(result.Stats())
			vr.PrintCoverage(result.Stats())
			vr.PrintWarnings(result.StylesheetWarnings)
		}
	}

	// Default mode: only errors fail; strict mode: any issue fails
	strict := getBool("check.strict", false)
	if result.ErrorCount > 0 || (strict && !result.UpToDate()) {
		return errCheckFailed
	}

	return nil
}
