package tailor

import "strings"

// Declaration is a single property/value pair inside a rule set
type Declaration struct {
	Property string `json:"property"` // "padding-top"
	Value    string `json:"value"`    // "30px" or "30px !important"
}

// RuleSet is the structured form of the declarations for one selector
type RuleSet struct {
	Properties []Declaration `json:"properties"`
}

// Rule is one CSS rule derived from a shorthand token
type Rule struct {
	Selector string // ".pt30"
	Property string // "padding-top"
	Value    string // "30px"
}

// Result holds the three equivalent renditions of the generated CSS.
// It is built fresh on every compile and is not modified afterwards.
type Result struct {
	Minified  string             `json:"minified"`
	Formatted string             `json:"formatted"`
	Object    map[string]RuleSet `json:"object"`

	// Rules lists every emitted rule in emission order, duplicates included.
	Rules []Rule `json:"-"`
}

// EmptyResult returns the canonical "nothing to generate" result
func EmptyResult() *Result {
	return &Result{
		Object: make(map[string]RuleSet),
	}
}

// IsEmpty reports whether no rule was generated
func (r *Result) IsEmpty() bool {
	return r == nil || len(r.Rules) == 0
}

// Options controls how rules are rendered
type Options struct {
	NewLineChar  string // Line separator in formatted output (default: "\n")
	TabSpacing   int    // Indent width in formatted output (default: 4; 0 also means 4, use -1 for no indent)
	OutputPath   string // Write the generated CSS here when set (must end in .css)
	MinifyOutput bool   // Persist minified instead of formatted CSS
	SetImportant bool   // Append " !important" to every value
}

// Default option values
const (
	DefaultNewLineChar = "\n"
	DefaultTabSpacing  = 4
)

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		NewLineChar: DefaultNewLineChar,
		TabSpacing:  DefaultTabSpacing,
	}
}

// WithDefaults fills zero-valued fields with their defaults
func (o Options) WithDefaults() Options {
	if o.NewLineChar == "" {
		o.NewLineChar = DefaultNewLineChar
	}
	if o.TabSpacing == 0 {
		o.TabSpacing = DefaultTabSpacing
	}
	return o
}

// indent returns the formatted-output indentation
func (o Options) indent() string {
	if o.TabSpacing <= 0 {
		return ""
	}
	return strings.Repeat(" ", o.TabSpacing)
}
