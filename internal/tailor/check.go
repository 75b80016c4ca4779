package tailor

import (
	"fmt"
	"sort"
	"strings"
)

// CompareStylesheet reports the differences between the rules the markup
// implies and the rules found in an existing stylesheet.
//
// Selectors present in result but absent from the sheet are errors, as are
// selectors whose declarations differ. Shorthand selectors left in the sheet
// that the markup no longer produces are warnings. Non-shorthand selectors in
// the sheet are ignored.
func CompareStylesheet(result *Result, sheet *Stylesheet, filename string) []Issue {
	var issues []Issue
	existing := sheet.Lookup()

	for _, selector := range sortedSelectors(result.Object) {
		want := result.Object[selector]
		have, ok := existing[selector]
		if !ok {
			issues = append(issues, Issue{
				FromLinter: LinterName,
				Text:       fmt.Sprintf(IssueMissingRule, selector),
				Severity:   SeverityError,
				Selector:   selector,
				Pos:        IssuePos{Filename: filename},
			})
			continue
		}

		wantText := renderDeclarations(want.Properties)
		haveText := renderDeclarations(have.Declarations)
		if wantText != haveText {
			issues = append(issues, Issue{
				FromLinter: LinterName,
				Text:       fmt.Sprintf(IssueChangedRule, selector, haveText, wantText),
				Severity:   SeverityError,
				Selector:   selector,
				Pos:        IssuePos{Filename: filename, Line: have.Line},
			})
		}
	}

	for _, rule := range sheet.Rules {
		if _, ok := result.Object[rule.Selector]; ok {
			continue
		}
		if !isShorthandSelector(rule.Selector) {
			continue
		}
		issues = append(issues, Issue{
			FromLinter: LinterName,
			Text:       fmt.Sprintf(IssueStaleRule, rule.Selector),
			Severity:   SeverityWarning,
			Selector:   rule.Selector,
			Pos:        IssuePos{Filename: filename, Line: rule.Line},
		})
	}

	return issues
}

// isShorthandSelector reports whether selector is ".<token>" for a token
// that compiles to a rule
func isShorthandSelector(selector string) bool {
	raw, ok := strings.CutPrefix(selector, ".")
	if !ok {
		return false
	}
	_, ok = compileToken(raw, false)
	return ok
}

func renderDeclarations(decls []Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

func sortedSelectors(object map[string]RuleSet) []string {
	keys := make([]string, 0, len(object))
	for k := range object {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
