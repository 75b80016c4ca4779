package tailor

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Reporter prints check issues and generation summaries
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLinterName bool
}

// NewReporter creates a reporter. Colors are used when forced or when
// stdout is a terminal.
func NewReporter(w io.Writer, forceColors bool) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(forceColors),
		printLinterName: true,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}

	// FORCE_COLOR is set by GitHub Actions and friends
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues sorted by file, line and selector
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pos.Filename != sorted[j].Pos.Filename {
			return sorted[i].Pos.Filename < sorted[j].Pos.Filename
		}
		if sorted[i].Pos.Line != sorted[j].Pos.Line {
			return sorted[i].Pos.Line < sorted[j].Pos.Line
		}
		return sorted[i].Selector < sorted[j].Selector
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue as "file:line: message (linter)"
func (r *Reporter) printIssue(issue Issue) {
	location := issue.Pos.Filename + ":"
	if issue.Pos.Line > 0 {
		location = fmt.Sprintf("%s:%d:", issue.Pos.Filename, issue.Pos.Line)
	}

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	text := issue.Text
	if issue.Severity == SeverityError {
		text = RenderStyle(StyleRed, text, r.useColors)
	} else {
		text = RenderStyle(StyleYellow, text, r.useColors)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))
}

// PrintSummary outputs the issue counts
func (r *Reporter) PrintSummary(issues []Issue) {
	var errors, warnings int
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	fmt.Fprintln(r.w, "")

	if len(issues) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Stylesheet is up to date", r.useColors))
		return
	}

	fmt.Fprintf(r.w, "%s (%s, %s)\n",
		pluralizeCount(len(issues), "issue", "issues"),
		pluralizeCount(errors, "error", "errors"),
		pluralizeCount(warnings, "warning", "warnings"))
	fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: run tailorcss generate to rewrite the stylesheet", r.useColors))
}

// PrintGenerated outputs a one-line summary of a generation run
func (r *Reporter) PrintGenerated(result *Result, outputPath string) {
	selectors := 0
	if result != nil {
		selectors = len(result.Object)
	}

	msg := fmt.Sprintf("Generated %s", pluralizeCount(selectors, "rule", "rules"))
	if outputPath != "" {
		msg += " in " + outputPath
	}
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, msg, r.useColors))
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
