package tailorcss

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/tailorcss/internal/tailor"
	"go.uber.org/zap"
)

// Issue is a single stylesheet check finding
type Issue = tailor.Issue

// ErrStylesheetRequired is returned when Check has no stylesheet to compare
var ErrStylesheetRequired = errors.New("stylesheet path is required")

// CheckConfig configures a stylesheet check
type CheckConfig struct {
	Paths      []string       // HTML files, directories or glob patterns
	Stylesheet string         // Previously generated stylesheet
	Options    Options        // Rendering options used when the stylesheet was generated
	Collect    CollectOptions // How Paths are read
}

// CheckResult reports how the stylesheet differs from the markup
type CheckResult struct {
	Issues       []Issue
	ErrorCount   int
	WarningCount int
	RulesChecked int       // Distinct selectors the markup implies
	Scan         ScanStats // Files read while collecting markup
	ScanErr      error     // Non-fatal collection errors

	StylesheetRules    int      // Rule sets found in the stylesheet
	StylesheetWarnings []string // Parse problems in the stylesheet
}

// UpToDate reports whether the stylesheet matches the markup exactly
func (r *CheckResult) UpToDate() bool {
	return len(r.Issues) == 0
}

// Stats returns the counters shown by the verbose check report
func (r *CheckResult) Stats() tailor.CheckStats {
	return tailor.CheckStats{
		FilesScanned:    r.Scan.FilesRead,
		FilesSkipped:    r.Scan.FilesSkipped,
		RulesChecked:    r.RulesChecked,
		StylesheetRules: r.StylesheetRules,
		Errors:          r.ErrorCount,
		Warnings:        r.WarningCount,
	}
}

// Check compiles the markup at config.Paths and compares the result with
// the rules in config.Stylesheet.
func Check(config CheckConfig) (*CheckResult, error) {
	if len(config.Paths) == 0 {
		return nil, ErrPathRequired
	}
	if config.Stylesheet == "" {
		return nil, ErrStylesheetRequired
	}

	log := config.Collect.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(config.Stylesheet)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}

	collection, err := NewCollector(config.Collect).Collect(config.Paths)
	if err != nil {
		return nil, err
	}

	result := tailor.CompileMarkup(collection.Markup, config.Options)
	sheet := tailor.NewStylesheetParser(log).Parse(string(content))
	for _, w := range sheet.Warnings {
		log.Warn("Stylesheet parse warning", zap.String("file", config.Stylesheet), zap.String("warning", w))
	}

	checkResult := &CheckResult{
		Issues:       tailor.CompareStylesheet(result, sheet, config.Stylesheet),
		RulesChecked: len(result.Object),
		Scan:         collection.Stats,
		ScanErr:      collection.Err,

		StylesheetRules:    len(sheet.Rules),
		StylesheetWarnings: sheet.Warnings,
	}
	for _, issue := range checkResult.Issues {
		switch issue.Severity {
		case tailor.SeverityError:
			checkResult.ErrorCount++
		case tailor.SeverityWarning:
			checkResult.WarningCount++
		}
	}

	return checkResult, nil
}
