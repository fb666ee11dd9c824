package clamp

import (
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var (
	varRefPattern    = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)\s*\)`)
	remValuePattern  = regexp.MustCompile(`^(-?\d*\.?\d+)rem$`)
	staticRefPattern = regexp.MustCompile(`^var\(\s*(--[A-Za-z0-9_-]+)\s*\)$`)
	clampRefPattern  = regexp.MustCompile(`^clamp\(\s*var\(\s*(--[A-Za-z0-9_-]+)\s*\)\s*,.*,\s*var\(\s*(--[A-Za-z0-9_-]+)\s*\)\s*\)$`)
)

// Declaration is a custom property declared inside a :root rule
type Declaration struct {
	Name  string // "--text-m"
	Value string // "clamp(var(--text-16), 0.951rem + 0.2174vw, var(--text-18))"
}

// Sheet holds the declarations of a parsed stylesheet, in source order
type Sheet struct {
	Declarations []Declaration
}

// ParseStylesheet parses CSS made only of :root rules holding custom properties,
// which is the shape Generate emits. Any other selector, at-rule or regular
// property is rejected with ErrUnexpectedRule.
func ParseStylesheet(src string) (*Sheet, error) {
	p := css.NewParser(parse.NewInputString(src), false)
	sheet := &Sheet{}
	depth := 0

	for {
		gt, tt, data := p.Next()
		if tt == css.CommentToken || gt == css.CommentGrammar {
			continue
		}

		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse stylesheet: %w", err)
			}
			if depth != 0 {
				return nil, fmt.Errorf("parse stylesheet: unterminated :root rule")
			}
			return sheet, nil

		case css.BeginRulesetGrammar:
			selector := tokensText(p.Values())
			if depth > 0 || selector != ":root" {
				return nil, fmt.Errorf("selector %q: %w", selector, ErrUnexpectedRule)
			}
			depth++

		case css.EndRulesetGrammar:
			depth--

		case css.CustomPropertyGrammar, css.DeclarationGrammar:
			if !strings.HasPrefix(string(data), "--") {
				return nil, fmt.Errorf("property %s is not a custom property: %w", data, ErrUnexpectedRule)
			}
			if depth == 0 {
				return nil, fmt.Errorf("property %s outside :root: %w", data, ErrUnexpectedRule)
			}
			sheet.Declarations = append(sheet.Declarations, Declaration{
				Name:  string(data),
				Value: tokensText(p.Values()),
			})

		default:
			return nil, fmt.Errorf("%s %q: %w", gt, data, ErrUnexpectedRule)
		}
	}
}

// VerifyStylesheet parses each sheet and checks that every var() reference
// resolves to a custom property declared in one of them.
func VerifyStylesheet(sheets ...string) error {
	declared := make(map[string]bool)
	var parsed []*Sheet

	for i, src := range sheets {
		if strings.TrimSpace(src) == "" {
			continue
		}
		sheet, err := ParseStylesheet(src)
		if err != nil {
			return fmt.Errorf("sheet %d: %w", i+1, err)
		}
		for _, d := range sheet.Declarations {
			declared[d.Name] = true
		}
		parsed = append(parsed, sheet)
	}

	for _, sheet := range parsed {
		for _, d := range sheet.Declarations {
			for _, m := range varRefPattern.FindAllStringSubmatch(d.Value, -1) {
				if !declared[m[1]] {
					return fmt.Errorf(IssueUnresolvedToken+": %w", d.Name, m[1], ErrUnresolvedVar)
				}
			}
		}
	}

	return nil
}

// ImportRows rebuilds token rows from generated stylesheets. Primitive rem
// values are converted back to pixels with rootFontPx; the slug of each row is
// the token's property name without the leading "--".
func ImportRows(rootFontPx float64, sheets ...string) ([]Row, error) {
	primitives := make(map[string]float64)
	var decls []Declaration

	for i, src := range sheets {
		if strings.TrimSpace(src) == "" {
			continue
		}
		sheet, err := ParseStylesheet(src)
		if err != nil {
			return nil, fmt.Errorf("sheet %d: %w", i+1, err)
		}
		for _, d := range sheet.Declarations {
			if m := remValuePattern.FindStringSubmatch(d.Value); m != nil {
				rem, err := strconv.ParseFloat(m[1], 64)
				if err != nil {
					return nil, fmt.Errorf("primitive %s: %w", d.Name, err)
				}
				if _, exists := primitives[d.Name]; !exists {
					primitives[d.Name] = rem
				}
				continue
			}
			decls = append(decls, d)
		}
	}

	var rows []Row
	for _, d := range decls {
		var minVar, maxVar string
		if m := staticRefPattern.FindStringSubmatch(d.Value); m != nil {
			minVar, maxVar = m[1], m[1]
		} else if m := clampRefPattern.FindStringSubmatch(d.Value); m != nil {
			minVar, maxVar = m[1], m[2]
		} else {
			continue
		}

		minRem, ok := primitives[minVar]
		if !ok {
			return nil, fmt.Errorf(IssueUnresolvedToken+": %w", d.Name, minVar, ErrUnresolvedVar)
		}
		maxRem, ok := primitives[maxVar]
		if !ok {
			return nil, fmt.Errorf(IssueUnresolvedToken+": %w", d.Name, maxVar, ErrUnresolvedVar)
		}

		rows = append(rows, Row{
			Slug: strings.TrimPrefix(d.Name, "--"),
			Min:  remToPx(minRem, rootFontPx),
			Max:  remToPx(maxRem, rootFontPx),
		})
	}

	return rows, nil
}

// remToPx converts back to pixels, trimming float noise below 1/1000 px
func remToPx(rem, rootFontPx float64) float64 {
	return math.Round(rem*rootFontPx*1000) / 1000
}

// tokensText concatenates parser tokens into trimmed source text
func tokensText(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}
