package tailor

import (
	"fmt"
	"io"
)

// CheckStats summarizes a stylesheet check for the verbose report
type CheckStats struct {
	FilesScanned    int
	FilesSkipped    int
	RulesChecked    int // Distinct selectors the markup implies
	StylesheetRules int // Rule sets found in the stylesheet
	Errors          int
	Warnings        int
}

// UpToDatePercentage is the share of implied rules the stylesheet already
// contains unchanged. An empty check counts as fully up to date.
func (s CheckStats) UpToDatePercentage() float64 {
	if s.RulesChecked == 0 {
		return 100
	}
	current := s.RulesChecked - s.Errors
	if current < 0 {
		current = 0
	}
	return float64(current) / float64(s.RulesChecked) * 100
}

// VerboseReporter prints detailed check statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs the check counters
func (r *VerboseReporter) PrintStatistics(stats CheckStats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Stylesheet Check Statistics", r.useColors))
	fmt.Fprintln(r.w, "---------------------------")

	fmt.Fprintf(r.w, "Files Scanned:    %d\n", stats.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:    %d\n", stats.FilesSkipped)
	fmt.Fprintf(r.w, "Rules Implied:    %d\n", stats.RulesChecked)
	fmt.Fprintf(r.w, "Stylesheet Rules: %d\n", stats.StylesheetRules)
	fmt.Fprintf(r.w, "Errors:           %d\n", stats.Errors)
	fmt.Fprintf(r.w, "Warnings:         %d\n", stats.Warnings)
}

// PrintCoverage shows how much of the markup the stylesheet already covers
func (r *VerboseReporter) PrintCoverage(stats CheckStats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Coverage", r.useColors))
	fmt.Fprintln(r.w, "--------")
	printProgressBar(r.w, stats.UpToDatePercentage())
}

// PrintWarnings lists stylesheet parse warnings
func (r *VerboseReporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
