package tailor

import "regexp"

// classAttr matches a class attribute and its value in one of three forms:
// double-quoted, single-quoted or bare (no whitespace, quotes or angle brackets).
var classAttr = regexp.MustCompile(`\bclass\s*=\s*(?:"(?P<dq>[^"]*)"|'(?P<sq>[^']*)'|(?P<bare>[^"'<>\s]+))`)

var (
	dqGroup   = classAttr.SubexpIndex("dq")
	sqGroup   = classAttr.SubexpIndex("sq")
	bareGroup = classAttr.SubexpIndex("bare")
)

// ExtractClassValues returns every class attribute value in markup, in order of
// first appearance. Exact duplicates are dropped. Empty values are kept.
func ExtractClassValues(markup string) []string {
	matches := classAttr.FindAllStringSubmatchIndex(markup, -1)

	values := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))

	for _, match := range matches {
		value, ok := capturedValue(markup, match)
		if !ok || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}

	return values
}

// capturedValue picks whichever alternative participated in the match
func capturedValue(markup string, match []int) (string, bool) {
	for _, group := range []int{dqGroup, sqGroup, bareGroup} {
		start, end := match[2*group], match[2*group+1]
		if start >= 0 {
			return markup[start:end], true
		}
	}
	return "", false
}
