package stylesheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".heading" or "#title"
	Props    map[string]string // e.g. "color" -> "#fff"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// Load parses the CSS file at path.
func Load(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stylesheet: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// ParseString parses CSS held in memory.
func ParseString(s string) (*Stylesheet, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a CSS subset: rulesets whose selector is a single .class or #id. Other rulesets and
// at-rules are skipped. Property names are lowercased; values keep their original text.
func Parse(r io.Reader) (*Stylesheet, error) {
	p := css.NewParser(parse.NewInput(r), false)
	sheet := &Stylesheet{}
	var cur *Rule
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("stylesheet: %w", err)
			}
			return sheet, nil
		case css.BeginRulesetGrammar:
			sel := strings.TrimSpace(tokensText(p.Values()))
			if validSelector(sel) {
				cur = &Rule{Selector: sel, Props: make(map[string]string)}
			} else {
				cur = nil
			}
		case css.DeclarationGrammar:
			if cur != nil {
				cur.Props[strings.ToLower(string(data))] = strings.TrimSpace(tokensText(p.Values()))
			}
		case css.EndRulesetGrammar:
			if cur != nil {
				sheet.Rules = append(sheet.Rules, *cur)
			}
			cur = nil
		}
	}
}

func tokensText(toks []css.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.Write(t.Data)
	}
	return b.String()
}

// validSelector accepts ".name" or "#name" with no combinators.
func validSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel[1:], " \t\n>+~,.#:[")
}

// Resolve merges the properties of every rule matching class or id, in sheet order (last wins).
func (s *Stylesheet) Resolve(class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, rule := range s.Rules {
		sel := rule.Selector
		matches := (sel[0] == '.' && class != "" && sel[1:] == class) ||
			(sel[0] == '#' && id != "" && sel[1:] == id)
		if !matches {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}
