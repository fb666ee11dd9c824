package clampgen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/clampgen/internal/clamp"
)

func TestImport_SplitLayout(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tokens.clamp.yaml", sampleTables)

	config := testConfig(dir)
	config.Layout = clamp.LayoutSplit
	generated, err := Generate(config)
	require.NoError(t, err)

	result, err := Import(ImportConfig{Files: generated.WrittenFiles, RootFontPx: 16})
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesRead)
	assert.Equal(t, 4, result.Rows())
	assert.Equal(t, map[string][]clamp.Row{
		"typography": {
			{Slug: "text-xs", Min: 12, Max: 12},
			{Slug: "text-m", Min: 16, Max: 18},
		},
		"spacing": {{Slug: "spacing-s", Min: 8, Max: 12}},
		"other":   {{Slug: "radius-m", Min: 4, Max: 8}},
	}, result.Tables)
}

func TestImport_MissingFile(t *testing.T) {
	_, err := Import(ImportConfig{Files: []string{filepath.Join(t.TempDir(), "theme.css")}})
	require.Error(t, err)
}

func TestImport_UnresolvedPrimitive(t *testing.T) {
	dir := t.TempDir()
	tokens := writeFile(t, dir, "theme-tokens.css", ":root {\n  --text-m: var(--text-16);\n}\n")

	_, err := Import(ImportConfig{Files: []string{tokens}})
	require.Error(t, err)
	assert.ErrorIs(t, err, clamp.ErrUnresolvedVar)
}

func TestMarshalTables_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tokens.clamp.yaml", sampleTables)

	config := testConfig(dir)
	config.DryRun = true
	original, err := Generate(config)
	require.NoError(t, err)

	theme := writeFile(t, dir, "theme.css", original.ThemeCSS)
	imported, err := Import(ImportConfig{Files: []string{theme}})
	require.NoError(t, err)

	data, err := MarshalTables(imported.Tables)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tables:")
	assert.Contains(t, string(data), "slug: text-m")

	// the rendered tables regenerate the same stylesheet
	rebuilt := t.TempDir()
	writeFile(t, rebuilt, "imported.clamp.yaml", string(data))
	again, err := Generate(func() Config {
		c := testConfig(rebuilt)
		c.DryRun = true
		return c
	}())
	require.NoError(t, err)
	assert.Equal(t, original.ThemeCSS, again.ThemeCSS)
}
