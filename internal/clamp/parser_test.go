package clamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []Row {
	return []Row{
		{Slug: "text-m", Min: 16, Max: 18},
		{Slug: "text-xs", Min: 12, Max: 12},
		{Slug: "spacing-s", Min: 8, Max: 12},
	}
}

func TestParseStylesheet_GeneratedOutput(t *testing.T) {
	sheet := Generate(sampleRows(), DefaultOptions())

	parsed, err := ParseStylesheet(sheet.ThemeCSS)
	require.NoError(t, err)

	assert.Len(t, parsed.Declarations, len(sheet.Primitives)+len(sheet.Tokens))

	values := make(map[string]string)
	for _, d := range parsed.Declarations {
		values[d.Name] = d.Value
	}
	assert.Equal(t, "clamp(var(--text-16), 0.951rem + 0.2174vw, var(--text-18))", values["--text-m"])
	assert.Equal(t, "0.75rem", values["--text-12"])
	assert.NotContains(t, values, "--text-l")
}

func TestParseStylesheet_Empty(t *testing.T) {
	parsed, err := ParseStylesheet("")
	require.NoError(t, err)
	assert.Empty(t, parsed.Declarations)

	parsed, err = ParseStylesheet(":root {\n}\n")
	require.NoError(t, err)
	assert.Empty(t, parsed.Declarations)
}

func TestParseStylesheet_RejectsForeignRules(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"class selector", ".btn { --a: 1rem; }"},
		{"compound selector", ":root, html { --a: 1rem; }"},
		{"at-rule", "@media (min-width: 40rem) { :root { --a: 1rem; } }"},
		{"import", `@import "base.css";`},
		{"regular property", ":root { color: red; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStylesheet(tt.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnexpectedRule)
		})
	}
}

func TestVerifyStylesheet(t *testing.T) {
	opts := DefaultOptions()

	combined := Generate(sampleRows(), opts)
	assert.NoError(t, VerifyStylesheet(combined.ThemeCSS, combined.TokensCSS))

	opts.Layout = LayoutSplit
	split := Generate(sampleRows(), opts)
	assert.NoError(t, VerifyStylesheet(split.ThemeCSS, split.TokensCSS))

	// tokens without their primitives do not resolve
	err := VerifyStylesheet(split.TokensCSS)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedVar)
	assert.Contains(t, err.Error(), "token --text-xs references undeclared --text-12")
}

func TestVerifyStylesheet_ParseError(t *testing.T) {
	err := VerifyStylesheet(":root { --a: 1rem; }", "body { margin: 0; }")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedRule)
	assert.Contains(t, err.Error(), "sheet 2")
}

func TestImportRows_RoundTrip(t *testing.T) {
	for _, layout := range []Layout{LayoutCombined, LayoutSplit} {
		t.Run(string(layout), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Layout = layout
			sheet := Generate(sampleRows(), opts)

			rows, err := ImportRows(opts.RootFontPx, sheet.ThemeCSS, sheet.TokensCSS)
			require.NoError(t, err)

			assert.Equal(t, []Row{
				{Slug: "text-xs", Min: 12, Max: 12},
				{Slug: "text-m", Min: 16, Max: 18},
				{Slug: "spacing-s", Min: 8, Max: 12},
			}, rows)

			again := Generate(rows, opts)
			assert.Equal(t, sheet.ThemeCSS, again.ThemeCSS)
			assert.Equal(t, sheet.TokensCSS, again.TokensCSS)
		})
	}
}

func TestImportRows_RootFont(t *testing.T) {
	src := ":root {\n  --text-20: 1rem;\n  --text-24: 1.2rem;\n  --text-l: clamp(var(--text-20), 0.9rem + 0.4vw, var(--text-24));\n}\n"

	rows, err := ImportRows(20, src)
	require.NoError(t, err)
	assert.Equal(t, []Row{{Slug: "text-l", Min: 20, Max: 24}}, rows)
}

func TestImportRows_UnresolvedPrimitive(t *testing.T) {
	_, err := ImportRows(16, ":root {\n  --text-m: var(--text-16);\n}\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedVar)
}
