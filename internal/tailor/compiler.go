package tailor

import "strings"

const importantSuffix = " !important"

// Compile turns class attribute values into CSS.
//
// Tokens are processed in value order, then left to right within a value.
// The minified and formatted texts contain every matching occurrence, while
// Object is keyed by selector so the last occurrence wins. Tokens that do not
// follow the shorthand grammar or use an unknown alias are skipped.
func Compile(values []string, opts Options) *Result {
	opts = opts.WithDefaults()
	indent := opts.indent()
	nl := opts.NewLineChar

	result := EmptyResult()
	var minified, formatted strings.Builder

	for _, value := range values {
		for _, raw := range strings.Fields(value) {
			rule, ok := compileToken(raw, opts.SetImportant)
			if !ok {
				continue
			}

			minified.WriteString(rule.Selector + "{" + rule.Property + ":" + rule.Value + ";}")

			formatted.WriteString(rule.Selector + " {" + nl)
			formatted.WriteString(indent + rule.Property + ": " + rule.Value + ";" + nl)
			formatted.WriteString("}" + nl + nl)

			result.Object[rule.Selector] = RuleSet{
				Properties: []Declaration{{Property: rule.Property, Value: rule.Value}},
			}
			result.Rules = append(result.Rules, rule)
		}
	}

	result.Minified = minified.String()
	result.Formatted = formatted.String()
	return result
}

// CompileMarkup extracts class values from markup and compiles them
func CompileMarkup(markup string, opts Options) *Result {
	values := ExtractClassValues(markup)
	if len(values) == 0 {
		return EmptyResult()
	}
	return Compile(values, opts)
}

// compileToken maps one token to a rule
func compileToken(raw string, important bool) (Rule, bool) {
	tok, ok := ParseToken(raw)
	if !ok {
		return Rule{}, false
	}

	prop, ok := LookupProperty(tok.Alias)
	if !ok {
		return Rule{}, false
	}

	value := tok.Magnitude + ResolveUnit(tok.Suffix)
	if important {
		value += importantSuffix
	}

	return Rule{
		Selector: "." + tok.Raw,
		Property: prop,
		Value:    value,
	}, true
}
