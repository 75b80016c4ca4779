package tailor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileMarkup(t *testing.T) {
	tests := []struct {
		name         string
		markup       string
		wantMinified string
		wantObject   map[string]RuleSet
	}{
		{
			name:         "single rule",
			markup:       `<div class="container pt30"></div>`,
			wantMinified: ".pt30{padding-top:30px;}",
			wantObject: map[string]RuleSet{
				".pt30": {Properties: []Declaration{{Property: "padding-top", Value: "30px"}}},
			},
		},
		{
			name:         "units from suffix",
			markup:       `<div class="container w30em fs40"><span class="head fw600n"></span><span class="w40p"></span></div>`,
			wantMinified: ".w30em{width:30em;}.fs40{font-size:40px;}.fw600n{font-weight:600;}.w40p{width:40%;}",
			wantObject: map[string]RuleSet{
				".w30em":  {Properties: []Declaration{{Property: "width", Value: "30em"}}},
				".fs40":   {Properties: []Declaration{{Property: "font-size", Value: "40px"}}},
				".fw600n": {Properties: []Declaration{{Property: "font-weight", Value: "600"}}},
				".w40p":   {Properties: []Declaration{{Property: "width", Value: "40%"}}},
			},
		},
		{
			name:         "unknown suffix falls back to px",
			markup:       `<div class="h10rem"></div>`,
			wantMinified: ".h10rem{height:10px;}",
			wantObject: map[string]RuleSet{
				".h10rem": {Properties: []Declaration{{Property: "height", Value: "10px"}}},
			},
		},
		{
			name:         "no recognized alias",
			markup:       `<div class="container"></div>`,
			wantMinified: "",
			wantObject:   map[string]RuleSet{},
		},
		{
			name:         "unknown alias",
			markup:       `<div class="zz10 x5"></div>`,
			wantMinified: "",
			wantObject:   map[string]RuleSet{},
		},
		{
			name:         "no class attribute",
			markup:       `<div id="pt30"></div>`,
			wantMinified: "",
			wantObject:   map[string]RuleSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompileMarkup(tt.markup, Options{})
			assert.Equal(t, tt.wantMinified, got.Minified)
			assert.Equal(t, tt.wantObject, got.Object)
		})
	}
}

func TestCompile_EmptyResult(t *testing.T) {
	got := Compile([]string{"", "   ", "container head", "1200"}, Options{})
	assert.Equal(t, EmptyResult(), got)
	assert.True(t, got.IsEmpty())
}

func TestCompile_Formatted(t *testing.T) {
	got := Compile([]string{"pt30 mb2em"}, Options{})

	want := ".pt30 {\n    padding-top: 30px;\n}\n\n" +
		".mb2em {\n    margin-bottom: 2em;\n}\n\n"
	assert.Equal(t, want, got.Formatted)
}

func TestCompile_FormattingOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "custom newline and indent",
			opts: Options{NewLineChar: "\r\n", TabSpacing: 2},
			want: ".p4 {\r\n  padding: 4px;\r\n}\r\n\r\n",
		},
		{
			name: "zero spacing uses the default indent",
			opts: Options{TabSpacing: 0},
			want: ".p4 {\n    padding: 4px;\n}\n\n",
		},
		{
			name: "negative spacing disables indent",
			opts: Options{TabSpacing: -1},
			want: ".p4 {\npadding: 4px;\n}\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compile([]string{"p4"}, tt.opts)
			assert.Equal(t, tt.want, got.Formatted)
		})
	}
}

func TestCompile_Important(t *testing.T) {
	got := Compile([]string{"container pt30 w40p"}, Options{SetImportant: true})

	assert.Equal(t, ".pt30{padding-top:30px !important;}.w40p{width:40% !important;}", got.Minified)
	assert.Equal(t, "30px !important", got.Object[".pt30"].Properties[0].Value)

	// The suffix lands on values only
	for _, rule := range got.Rules {
		assert.True(t, strings.HasSuffix(rule.Value, " !important"))
		assert.NotContains(t, rule.Selector, "important")
		assert.NotContains(t, rule.Property, "important")
	}
	assert.Equal(t, 2, strings.Count(got.Formatted, " !important"))
}

func TestCompile_MagnitudeVerbatim(t *testing.T) {
	for _, alias := range []string{"t", "b", "l", "r", "w", "h", "p", "m", "br", "fs", "fw", "lh", "mt", "mb", "ml", "mr", "pt", "pb", "pl", "pr"} {
		for _, digits := range []string{"0", "05", "120", "9999"} {
			token := alias + digits
			got := Compile([]string{token}, Options{})
			require.Len(t, got.Rules, 1, token)
			assert.Equal(t, digits+"px", got.Rules[0].Value, token)
			assert.Equal(t, "."+token, got.Rules[0].Selector)
		}
	}
}

func TestCompile_RepeatedTokens(t *testing.T) {
	// Text outputs keep every occurrence, the object keeps one entry per selector
	got := Compile([]string{"pt30 w10", "w10 pt30"}, Options{})

	assert.Equal(t, ".pt30{padding-top:30px;}.w10{width:10px;}.w10{width:10px;}.pt30{padding-top:30px;}", got.Minified)
	assert.Len(t, got.Object, 2)
	assert.Len(t, got.Rules, 4)
}

func TestCompileMarkup_DuplicateValues(t *testing.T) {
	once := CompileMarkup(`<div class="pt30 w10"></div>`, Options{})
	twice := CompileMarkup(`<div class="pt30 w10"></div><div class="pt30 w10"></div>`, Options{})
	assert.Equal(t, once, twice)
}

func TestCompile_WhitespaceCollapsed(t *testing.T) {
	got := Compile([]string{"  pt30 \t\n  mb5  "}, Options{})
	assert.Equal(t, ".pt30{padding-top:30px;}.mb5{margin-bottom:5px;}", got.Minified)
}

func TestCompile_OutputParsesAsCSS(t *testing.T) {
	got := CompileMarkup(`<div class="pt30 w40p fw600n lh15em"></div>`, Options{SetImportant: true})

	for _, text := range []string{got.Minified, got.Formatted} {
		sheet := NewStylesheetParser(nil).Parse(text)
		assert.Empty(t, sheet.Warnings)
		require.Len(t, sheet.Rules, 4)
		for _, rule := range sheet.Rules {
			want := got.Object[rule.Selector].Properties
			assert.Equal(t, want, rule.Declarations, rule.Selector)
		}
	}
}
