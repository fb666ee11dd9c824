package clampgen

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/yacobolo/clampgen/internal/clamp"
)

// TablesKey is the top-level key holding token tables in a table file
const TablesKey = "tables"

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually loaded (after filtering)
	FilesSkipped    int // Files skipped due to .gitignore
}

// tableRow mirrors one row of a YAML table. Min and Max stay untyped so the
// row boundary can report non-numeric values instead of the decoder.
type tableRow struct {
	Slug string `koanf:"slug" yaml:"slug"`
	Min  any    `koanf:"min" yaml:"min"`
	Max  any    `koanf:"max" yaml:"max"`
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a relative path is excluded by .gitignore.
// Absolute paths (like /tmp/...) are never matched against the project gitignore.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// expandGlobPatterns expands glob patterns to table files, deduplicated and in
// match order, and tracks statistics
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// LoadTableFile reads the token tables of one YAML file.
func LoadTableFile(path string) ([]clamp.RawRow, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return TablesFromKoanf(k, path)
}

// TablesFromKoanf extracts the rows under the "tables" key of a loaded koanf
// instance. Tables are read in the order typography, spacing, then the rest
// alphabetically; each row keeps its file, table and index for reporting.
func TablesFromKoanf(k *koanf.Koanf, filename string) ([]clamp.RawRow, error) {
	if !k.Exists(TablesKey) {
		return nil, nil
	}

	var rows []clamp.RawRow
	for _, table := range tableOrder(k.MapKeys(TablesKey)) {
		var entries []tableRow
		if err := k.Unmarshal(TablesKey+"."+table, &entries); err != nil {
			return nil, fmt.Errorf("table %s in %s: %w", table, filename, err)
		}

		for i, e := range entries {
			rows = append(rows, clamp.RawRow{
				Slug: e.Slug,
				Min:  e.Min,
				Max:  e.Max,
				Pos:  clamp.Position{Filename: filename, Table: table, Index: i},
			})
		}
	}

	return rows, nil
}

// tableOrder puts the typography and spacing tables first
func tableOrder(names []string) []string {
	rank := func(name string) int {
		switch clamp.Category(name) {
		case clamp.CategoryTypography:
			return 0
		case clamp.CategorySpacing:
			return 1
		default:
			return 2
		}
	}

	ordered := slices.Clone(names)
	slices.SortStableFunc(ordered, func(a, b string) int {
		if ra, rb := rank(a), rank(b); ra != rb {
			return cmp.Compare(ra, rb)
		}
		return cmp.Compare(a, b)
	})
	return ordered
}

// loadSources expands the source globs and loads every table file. Files that
// fail to load become warnings, like unparsable stylesheets in a CSS scan.
func loadSources(patterns []string, verbose bool) ([]clamp.RawRow, ScanStats, []string, error) {
	files, stats, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, stats, nil, err
	}

	if verbose {
		fmt.Printf("Found %d table files", stats.FilesScanned)
		if stats.FilesSkipped > 0 {
			fmt.Printf(" (skipped %d ignored files)", stats.FilesSkipped)
		}
		fmt.Println()
	}

	var rows []clamp.RawRow
	var warnings []string
	for _, f := range files {
		if verbose {
			fmt.Printf("Loading %s\n", f)
		}

		fileRows, err := LoadTableFile(f)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Failed to load %s: %v", f, err))
			continue
		}
		if len(fileRows) == 0 {
			warnings = append(warnings, fmt.Sprintf("No tables in %s", f))
		}
		rows = append(rows, fileRows...)
	}

	return rows, stats, warnings, nil
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
