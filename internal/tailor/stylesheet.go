package tailor

import (
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// StyleRule is a rule read back from an existing stylesheet
type StyleRule struct {
	Selector     string
	Declarations []Declaration
	Line         int // 1-based line of the first occurrence of the selector, 0 if unknown
}

// Stylesheet is the parsed form of a CSS file
type Stylesheet struct {
	Rules    []StyleRule
	Warnings []string
}

// Lookup indexes the rules by selector. Later rules win.
func (s *Stylesheet) Lookup() map[string]StyleRule {
	index := make(map[string]StyleRule, len(s.Rules))
	for _, rule := range s.Rules {
		index[rule.Selector] = rule
	}
	return index
}

// StylesheetParser reads CSS back into rules
type StylesheetParser struct {
	log *zap.Logger
}

// NewStylesheetParser creates a parser. A nil logger disables logging.
func NewStylesheetParser(log *zap.Logger) *StylesheetParser {
	if log == nil {
		log = zap.NewNop()
	}
	return &StylesheetParser{log: log.Named("stylesheet")}
}

// Parse parses CSS content. Grouped selectors produce one rule each.
// At-rules and their blocks are skipped.
func (p *StylesheetParser) Parse(content string) *Stylesheet {
	sheet := &Stylesheet{}
	parser := css.NewParser(parse.NewInputString(content), false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				p.log.Debug("CSS parse error", zap.Error(err))
				sheet.Warnings = append(sheet.Warnings, err.Error())
			}
			return sheet

		case css.BeginAtRuleGrammar:
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))
			skipBlock(parser)

		case css.BeginRulesetGrammar:
			selectors := joinSelectors(data, parser.Values())
			decls := readDeclarations(parser)
			for _, sel := range selectors {
				sheet.Rules = append(sheet.Rules, StyleRule{
					Selector:     sel,
					Declarations: decls,
					Line:         lineOf(content, sel),
				})
			}
		}
	}
}

// skipBlock consumes tokens up to the end of the current at-rule block
func skipBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// joinSelectors rebuilds the selector text and splits grouped selectors
func joinSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for _, s := range strings.Split(sb.String(), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// readDeclarations collects declarations until the end of the ruleset
func readDeclarations(parser *css.Parser) []Declaration {
	var decls []Declaration
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls
		case css.DeclarationGrammar:
			decls = append(decls, Declaration{
				Property: strings.ToLower(string(data)),
				Value:    joinValue(parser.Values()),
			})
		}
	}
}

// joinValue renders value tokens with single spaces and a space before "!important"
func joinValue(tokens []css.Token) string {
	var parts []string
	var current strings.Builder
	for _, t := range tokens {
		switch {
		case t.TokenType == css.WhitespaceToken:
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		case t.TokenType == css.DelimToken && string(t.Data) == "!":
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
			current.WriteString("!")
		default:
			current.Write(t.Data)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return strings.Join(parts, " ")
}

// lineOf returns the 1-based line where text first appears, 0 if absent
func lineOf(content, text string) int {
	offset := 0
	for {
		idx := strings.Index(content[offset:], text)
		if idx < 0 {
			return 0
		}
		idx += offset
		end := idx + len(text)
		if end >= len(content) || !isSelectorChar(content[end]) {
			return strings.Count(content[:idx], "\n") + 1
		}
		offset = idx + 1
	}
}

// isSelectorChar reports whether b can continue a class name
func isSelectorChar(b byte) bool {
	return isWordChar(b) || b == '-'
}
