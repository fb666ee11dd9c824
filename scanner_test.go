package clampgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/clampgen/internal/clamp"
)

const sampleTables = `tables:
  spacing:
    - {slug: spacing-s, min: 8, max: 12}
  typography:
    - {slug: text-m, min: 16, max: 18}
    - {slug: text-xs, min: "12", max: 12}
  radius:
    - {slug: radius-m, min: 4, max: 8}
`

// writeFile creates a file (and its parent directories) under dir
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTableFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tokens.clamp.yaml", sampleTables)

	rows, err := LoadTableFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	tests := []struct {
		slug  string
		table string
		index int
		min   float64
		max   float64
	}{
		{"text-m", "typography", 0, 16, 18},
		{"text-xs", "typography", 1, 12, 12},
		{"spacing-s", "spacing", 0, 8, 12},
		{"radius-m", "radius", 0, 4, 8},
	}

	for i, tt := range tests {
		assert.Equal(t, tt.slug, rows[i].Slug)
		assert.Equal(t, clamp.Position{Filename: path, Table: tt.table, Index: tt.index}, rows[i].Pos)
		assert.InDelta(t, tt.min, clamp.ToNumber(rows[i].Min), 0)
		assert.InDelta(t, tt.max, clamp.ToNumber(rows[i].Max), 0)
	}

	// quoted numbers stay strings until the row boundary coerces them
	assert.Equal(t, "12", rows[1].Min)
}

func TestLoadTableFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTableFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "tables: [unclosed\n")
	_, err = LoadTableFile(bad)
	require.Error(t, err)

	empty := writeFile(t, dir, "empty.yaml", "other: 1\n")
	rows, err := LoadTableFile(empty)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTableOrder(t *testing.T) {
	got := tableOrder([]string{"radius", "spacing", "borders", "typography"})
	assert.Equal(t, []string{"typography", "spacing", "borders", "radius"}, got)
}

func TestExpandGlobPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.clamp.yaml", sampleTables)
	writeFile(t, dir, "nested/b.clamp.yaml", sampleTables)
	writeFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dir.clamp.yaml"), 0o755))

	files, stats, err := expandGlobPatterns([]string{
		filepath.Join(dir, "**", "*.clamp.yaml"),
		filepath.Join(dir, "a.clamp.yaml"), // duplicate
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.clamp.yaml"),
		filepath.Join(dir, "nested", "b.clamp.yaml"),
	}, files)
	assert.Equal(t, ScanStats{FilesDiscovered: 2, FilesScanned: 2}, stats)
}

func TestShouldSkipFile_AbsolutePath(t *testing.T) {
	// absolute paths are never matched against the project .gitignore
	assert.False(t, shouldSkipFile(filepath.Join(t.TempDir(), "tokens.clamp.yaml")))
}

func TestLoadSources_Warnings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.clamp.yaml", sampleTables)
	writeFile(t, dir, "broken.clamp.yaml", "tables: [unclosed\n")
	writeFile(t, dir, "blank.clamp.yaml", "name: blank\n")

	rows, stats, warnings, err := loadSources([]string{filepath.Join(dir, "*.clamp.yaml")}, false)
	require.NoError(t, err)

	assert.Len(t, rows, 4)
	assert.Equal(t, 3, stats.FilesScanned)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0]+warnings[1], "Failed to load")
	assert.Contains(t, warnings[0]+warnings[1], "No tables in")
}
