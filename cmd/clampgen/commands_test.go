package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectConfig = `generate:
  sources:
    - "tokens/*.clamp.yaml"
  output-dir: out
  layout: split
tables:
  spacing:
    - {slug: spacing-s, min: 8, max: 12}
`

const projectTables = `tables:
  typography:
    - {slug: text-m, min: 16, max: 18}
    - {slug: text-xs, min: 12, max: 12}
`

// setupProject writes a config file and one table file into a temp working dir
func setupProject(t *testing.T, tables string) {
	t.Helper()
	resetKoanf()
	chdirTemp(t)
	require.NoError(t, os.WriteFile(".clampgen.yaml", []byte(projectConfig), 0o644))
	require.NoError(t, os.MkdirAll("tokens", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("tokens", "base.clamp.yaml"), []byte(tables), 0o644))
}

// execute runs the root command and returns what it printed
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGenerateCommand(t *testing.T) {
	setupProject(t, projectTables)

	out, err := execute(t, "generate")
	require.NoError(t, err)

	assert.Contains(t, out, "Generated 3 tokens (2 fluid, 1 static)")
	assert.Contains(t, out, "Files scanned: 1")
	assert.Contains(t, out, filepath.Join("out", "theme.css"))

	theme, err := os.ReadFile(filepath.Join("out", "theme.css"))
	require.NoError(t, err)
	assert.Contains(t, string(theme), "--spacing-8: 0.5rem;")

	tokens, err := os.ReadFile(filepath.Join("out", "theme-tokens.css"))
	require.NoError(t, err)
	assert.Contains(t, string(tokens), "--text-xs: var(--text-12);")
	assert.Contains(t, string(tokens), "--spacing-s: clamp(var(--spacing-8), 0.402rem + 0.4348vw, var(--spacing-12));")
}

func TestCheckCommand_Clean(t *testing.T) {
	setupProject(t, projectTables)

	out, err := execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "0 issues.")
}

func TestCheckCommand_ReportsErrors(t *testing.T) {
	setupProject(t, `tables:
  typography:
    - {slug: text-m, min: 16, max: big}
`)

	out, err := execute(t, "check")
	require.ErrorIs(t, err, errIssuesFound)
	assert.Contains(t, out, filepath.Join("tokens", "base.clamp.yaml")+":typography[0]: error:")
	assert.Contains(t, out, "1 issue (1 error, 0 warnings)")
}

func TestImportCommand(t *testing.T) {
	setupProject(t, projectTables)

	_, err := execute(t, "generate")
	require.NoError(t, err)

	out, err := execute(t, "import", filepath.Join("out", "theme.css"), filepath.Join("out", "theme-tokens.css"))
	require.NoError(t, err)

	assert.Contains(t, out, "tables:")
	assert.Contains(t, out, "slug: text-m")
	assert.Contains(t, out, "slug: spacing-s")
}
