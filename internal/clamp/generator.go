package clamp

import (
	"fmt"
	"strings"
)

// sectionTitles holds the comment line emitted above each section
var sectionTitles = map[Category][2]string{
	CategoryTypography: {"Typography primitives", "Typography tokens"},
	CategorySpacing:    {"Spacing primitives", "Spacing tokens"},
	CategoryOther:      {"Other primitives", "Other tokens"},
}

// section is one commented group of declarations inside a :root block
type section struct {
	title string
	lines []string
}

// Generate turns token rows into CSS custom properties.
//
// Rows with an empty slug or non-finite bounds are skipped. Degenerate options
// (equal viewports, NaN values) never fail: non-finite numbers format as "0".
// The function is pure; identical inputs produce byte-identical output.
func Generate(rows []Row, opts Options) *Stylesheet {
	sheet := &Stylesheet{}

	var tokens []Token
	var primitives []Primitive
	var origins []string

	for _, r := range rows {
		token, ok := buildToken(r, opts)
		if !ok {
			sheet.Skipped++
			continue
		}
		tokens = append(tokens, token)

		cat := categorizeBaseName(token.BaseName)
		primitives = append(primitives,
			Primitive{Name: token.MinVar, Value: FormatNumber(token.MinRem, 3) + "rem", Category: cat},
			Primitive{Name: token.MaxVar, Value: FormatNumber(token.MaxRem, 3) + "rem", Category: cat},
		)
		origins = append(origins, token.Slug, token.Slug)
	}

	tokensByCat := groupTokens(tokens)
	primsByCat, conflicts := groupPrimitives(primitives, origins)
	sheet.Conflicts = conflicts

	var primSections, tokenSections []section
	for _, cat := range Categories {
		// the trailing "other" family only appears when it has tokens
		if cat == CategoryOther && len(tokensByCat[cat]) == 0 {
			continue
		}

		titles := sectionTitles[cat]
		primLines := make([]string, 0, len(primsByCat[cat]))
		for _, p := range primsByCat[cat] {
			primLines = append(primLines, fmt.Sprintf("  %s: %s;", p.Name, p.Value))
		}
		tokenLines := make([]string, 0, len(tokensByCat[cat]))
		for _, t := range tokensByCat[cat] {
			tokenLines = append(tokenLines, buildTokenLine(t))
		}

		primSections = append(primSections, section{title: titles[0], lines: primLines})
		tokenSections = append(tokenSections, section{title: titles[1], lines: tokenLines})

		sheet.Tokens = append(sheet.Tokens, tokensByCat[cat]...)
		sheet.Primitives = append(sheet.Primitives, primsByCat[cat]...)
	}

	if opts.Layout == LayoutSplit {
		sheet.ThemeCSS = writeBlock(primSections)
		sheet.TokensCSS = writeBlock(tokenSections)
		return sheet
	}

	combined := make([]section, 0, len(primSections)*2)
	for i := range primSections {
		combined = append(combined, primSections[i], tokenSections[i])
	}
	sheet.ThemeCSS = writeBlock(combined)
	return sheet
}

// buildToken derives the token for one row; ok is false when the row is skipped
func buildToken(r Row, opts Options) (Token, bool) {
	slug := strings.TrimSpace(r.Slug)
	if slug == "" || !isFinite(r.Min) || !isFinite(r.Max) {
		return Token{}, false
	}
	slug = strings.ToLower(slug)
	base := baseName(slug)

	// px per 1vw, and the viewport-independent part of the formula
	slope := (r.Max - r.Min) / (opts.MaxViewport - opts.MinViewport) * 100
	interceptPx := r.Min - slope*(opts.MinViewport/100)

	return Token{
		Slug:         slug,
		BaseName:     base,
		Category:     categorizeSlug(slug),
		MinPx:        r.Min,
		MaxPx:        r.Max,
		MinRem:       r.Min / opts.RootFontPx,
		MaxRem:       r.Max / opts.RootFontPx,
		Slope:        slope,
		InterceptRem: interceptPx / opts.RootFontPx,
		MinVar:       primitiveName(base, r.Min),
		MaxVar:       primitiveName(base, r.Max),
		IsFluid:      r.Min != r.Max,
	}, true
}

// primitiveName builds "--<base>-<rounded px>"
func primitiveName(base string, px float64) string {
	return "--" + base + "-" + formatPx(px)
}

// buildTokenLine renders the declaration of a single token
func buildTokenLine(t Token) string {
	if !t.IsFluid {
		return fmt.Sprintf("  --%s: var(%s);", t.Slug, t.MinVar)
	}
	return fmt.Sprintf("  --%s: clamp(var(%s), %s, var(%s));", t.Slug, t.MinVar, FluidExpression(t), t.MaxVar)
}

// FluidExpression renders the preferred value of a clamp(): "<rem>rem + <vw>vw".
// Terms that format to zero are dropped; "0rem" stands in when both are.
func FluidExpression(t Token) string {
	intercept := FormatNumber(t.InterceptRem, 3)
	slope := FormatNumber(t.Slope, 4)

	parts := make([]string, 0, 2)
	if !isZeroLiteral(intercept) {
		parts = append(parts, intercept+"rem")
	}
	if !isZeroLiteral(slope) {
		parts = append(parts, slope+"vw")
	}
	if len(parts) == 0 {
		return "0rem"
	}
	return strings.Join(parts, " + ")
}

// writeBlock renders sections inside a single :root rule
func writeBlock(sections []section) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  /* %s */\n", s.title)
		if len(s.lines) > 0 {
			b.WriteString(strings.Join(s.lines, "\n"))
			b.WriteString("\n")
		}
	}
	b.WriteString("}\n")
	return b.String()
}
