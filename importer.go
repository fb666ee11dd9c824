package clampgen

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/yacobolo/clampgen/internal/clamp"
)

// ImportConfig holds configuration for rebuilding tables from stylesheets
type ImportConfig struct {
	Files      []string // Generated stylesheets (theme.css, theme-tokens.css)
	RootFontPx float64  // Root font size the stylesheets were generated with
	Verbose    bool
}

// ImportResult contains the rebuilt token tables
type ImportResult struct {
	FilesRead int
	Tables    map[string][]clamp.Row // Keyed by category: typography, spacing, other
}

// Rows returns the number of imported rows
func (r *ImportResult) Rows() int {
	n := 0
	for _, rows := range r.Tables {
		n += len(rows)
	}
	return n
}

// Import parses generated stylesheets and groups the recovered rows into tables.
// All files are resolved together, so a split theme/tokens pair imports cleanly.
func Import(config ImportConfig) (*ImportResult, error) {
	rootFont := clamp.OptionsFromValues(nil, nil, setting(config.RootFontPx)).RootFontPx

	sources := make([]string, 0, len(config.Files))
	for _, f := range config.Files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		if config.Verbose {
			fmt.Printf("Parsing %s\n", f)
		}
		sources = append(sources, string(data))
	}

	rows, err := clamp.ImportRows(rootFont, sources...)
	if err != nil {
		return nil, fmt.Errorf("import failed: %w", err)
	}

	result := &ImportResult{
		FilesRead: len(sources),
		Tables:    make(map[string][]clamp.Row),
	}
	for _, row := range rows {
		table := string(clamp.CategoryOf(row.Slug))
		result.Tables[table] = append(result.Tables[table], row)
	}

	if config.Verbose {
		fmt.Printf("Imported %d rows\n", len(rows))
	}

	return result, nil
}

// MarshalTables renders tables in the table file format read by Generate.
func MarshalTables(tables map[string][]clamp.Row) ([]byte, error) {
	out := make(map[string]interface{}, len(tables))
	for name, rows := range tables {
		entries := make([]tableRow, len(rows))
		for i, r := range rows {
			entries[i] = tableRow{Slug: r.Slug, Min: r.Min, Max: r.Max}
		}
		out[name] = entries
	}

	b, err := yaml.Parser().Marshal(map[string]interface{}{TablesKey: out})
	if err != nil {
		return nil, fmt.Errorf("marshal tables: %w", err)
	}
	return b, nil
}
