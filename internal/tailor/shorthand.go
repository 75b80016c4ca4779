package tailor

import "strings"

// Token grammar limits
const (
	maxAliasLen     = 23
	maxMagnitudeLen = 4
)

// propertyAliases maps shorthand aliases to the CSS property they set.
// Only numeric-valued properties are supported.
var propertyAliases = map[string]string{
	"t": "top",
	"b": "bottom",
	"l": "left",
	"r": "right",

	"w": "width",
	"h": "height",

	"p": "padding",
	"m": "margin",

	"br": "border-radius",
	"fs": "font-size",
	"fw": "font-weight",
	"lh": "line-height",

	"mt": "margin-top",
	"mb": "margin-bottom",
	"ml": "margin-left",
	"mr": "margin-right",

	"pt": "padding-top",
	"pb": "padding-bottom",
	"pl": "padding-left",
	"pr": "padding-right",
}

// defaultUnit is used when the suffix is empty or unknown
const defaultUnit = "px"

// unitSuffixes maps token suffixes to CSS units
var unitSuffixes = map[string]string{
	"default": defaultUnit,
	"px":      "px",
	"pt":      "pt",
	"em":      "em",
	"p":       "%",
	"vh":      "vh",
	"vw":      "vw",
	"vmin":    "vmin",
	"ex":      "ex",
	"cm":      "cm",
	"in":      "in",
	"mm":      "mm",
	"pc":      "pc",
	"n":       "", // unitless
}

// Token is a shorthand class decomposed into its parts
type Token struct {
	Raw       string // "mb30em"
	Alias     string // "mb"
	Magnitude string // "30"
	Suffix    string // "em"
}

// ParseToken decomposes a class token of the form
//
//	<alias: 1-23 lowercase letters><magnitude: 1-4 digits><suffix: word characters>
//
// The match is anchored at the start of the token only. Anything after the
// suffix's word-character run is ignored, so "w10-sm" parses as w/10/"".
// The boolean is false when the token does not follow the grammar.
func ParseToken(raw string) (Token, bool) {
	i := 0
	for i < len(raw) && isLower(raw[i]) {
		i++
	}
	if i == 0 || i > maxAliasLen {
		return Token{}, false
	}
	alias := raw[:i]

	j := i
	for j < len(raw) && j-i < maxMagnitudeLen && isDigit(raw[j]) {
		j++
	}
	if j == i {
		return Token{}, false
	}
	magnitude := raw[i:j]

	k := j
	for k < len(raw) && isWordChar(raw[k]) {
		k++
	}

	return Token{
		Raw:       raw,
		Alias:     alias,
		Magnitude: magnitude,
		Suffix:    raw[j:k],
	}, true
}

// LookupProperty returns the CSS property for a shorthand alias
func LookupProperty(alias string) (string, bool) {
	prop, ok := propertyAliases[alias]
	return prop, ok
}

// ResolveUnit maps a suffix to its CSS unit, falling back to px
func ResolveUnit(suffix string) string {
	suffix = strings.TrimSpace(suffix)
	if suffix == "" {
		return defaultUnit
	}
	if unit, ok := unitSuffixes[suffix]; ok {
		return unit
	}
	return defaultUnit
}

// Aliases returns a copy of the alias table
func Aliases() map[string]string {
	out := make(map[string]string, len(propertyAliases))
	for k, v := range propertyAliases {
		out[k] = v
	}
	return out
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isWordChar matches the ASCII word class [A-Za-z0-9_]
func isWordChar(c byte) bool {
	return isLower(c) || isDigit(c) || (c >= 'A' && c <= 'Z') || c == '_'
}

// Units returns a copy of the unit suffix table
func Units() map[string]string {
	out := make(map[string]string, len(unitSuffixes))
	for k, v := range unitSuffixes {
		out[k] = v
	}
	return out
}
