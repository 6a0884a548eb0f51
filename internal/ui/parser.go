package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a primitive stylesheet: rulesets whose selectors are .class or #id (comma-separated
// lists allowed) with "key: value;" declarations. Other selectors, at-rules and their contents are
// skipped. Later rules override earlier for the same selector.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)

	var (
		selectors []string
		props     map[string]string
		atDepth   int
	)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if p.HasParseError() {
				continue
			}
			if err := p.Err(); err != io.EOF {
				return nil, fmt.Errorf("ui: parse css: %w", err)
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			atDepth--
		case css.BeginRulesetGrammar:
			if atDepth > 0 {
				selectors = nil
				continue
			}
			selectors = simpleSelectors(p.Values())
			props = make(map[string]string)
		case css.DeclarationGrammar:
			if selectors == nil {
				continue
			}
			props[string(data)] = tokensText(p.Values())
		case css.EndRulesetGrammar:
			for _, sel := range selectors {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
			}
			selectors = nil
		}
	}
}

// simpleSelectors returns the ".class" and "#id" selectors of a selector list. Compound selectors
// (descendants, type selectors, pseudo classes) are dropped.
func simpleSelectors(tokens []css.Token) []string {
	var out []string
	for _, group := range splitTokens(tokens, css.CommaToken) {
		switch {
		case len(group) == 1 && group[0].TokenType == css.HashToken:
			out = append(out, string(group[0].Data))
		case len(group) == 2 && string(group[0].Data) == "." && group[1].TokenType == css.IdentToken:
			out = append(out, "."+string(group[1].Data))
		}
	}
	return out
}

func splitTokens(tokens []css.Token, sep css.TokenType) [][]css.Token {
	var (
		groups [][]css.Token
		cur    []css.Token
	)
	for _, t := range tokens {
		if t.TokenType == sep {
			groups = append(groups, cur)
			cur = nil
			continue
		}
		if t.TokenType == css.WhitespaceToken && len(cur) == 0 {
			continue
		}
		cur = append(cur, t)
	}
	return append(groups, cur)
}

func tokensText(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}
