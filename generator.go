package clampgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yacobolo/clampgen/internal/clamp"
)

// Default output file names
const (
	DefaultThemeFile  = "theme.css"
	DefaultTokensFile = "theme-tokens.css"
)

// Config holds generation configuration
type Config struct {
	Sources []string       // Glob patterns for table files ("tokens/**/*.clamp.yaml")
	Rows    []clamp.RawRow // Inline rows, appended after the table files

	OutputDir  string // Directory the stylesheets are written to
	ThemeFile  string // "theme.css"
	TokensFile string // "theme-tokens.css", split layout only

	Layout      clamp.Layout
	MinViewport float64
	MaxViewport float64
	RootFontPx  float64

	StrictViewport bool // Fail on degenerate viewport or root font settings
	Fix            bool // Lower min to max on inverted rows before generating
	Verify         bool // Parse the output back and resolve every var()
	DryRun         bool // Generate without writing files
	Verbose        bool
}

// GenerateResult contains generation statistics and output
type GenerateResult struct {
	FilesScanned int
	RowsLoaded   int
	Stats        clamp.Stats
	Fixed        []clamp.Issue // Corrections applied by Fix
	Warnings     []string

	ThemeCSS     string
	TokensCSS    string
	WrittenFiles []string
}

// Options converts the numeric settings into generator options.
// Zero settings take the generator defaults (360px, 1280px, 16px).
func (c Config) Options() clamp.Options {
	opts := clamp.OptionsFromValues(setting(c.MinViewport), setting(c.MaxViewport), setting(c.RootFontPx))
	if c.Layout != "" {
		opts.Layout = c.Layout
	}
	return opts
}

// setting reports a zero value as unset
func setting(v float64) any {
	if v == 0 {
		return nil
	}
	return v
}

// Generate is the main entry point
func Generate(config Config) (*GenerateResult, error) {
	result := &GenerateResult{}
	opts := config.Options()

	if config.StrictViewport {
		if err := opts.Validate(); err != nil {
			return nil, fmt.Errorf("invalid options: %w", err)
		}
	}

	// 1. Load table files
	raws, stats, warnings, err := loadSources(config.Sources, config.Verbose)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = stats.FilesScanned
	result.Warnings = warnings
	raws = append(raws, config.Rows...)
	result.RowsLoaded = len(raws)

	if config.Verbose {
		fmt.Printf("Loaded %d rows\n", len(raws))
	}

	// 2. Correct inverted ranges
	if config.Fix {
		raws, result.Fixed = clamp.FixInverted(raws)
		if config.Verbose {
			fmt.Printf("Fixed %d inverted rows\n", len(result.Fixed))
		}
	}

	// 3. Generate
	sheet := clamp.Generate(clamp.RowsFromRaw(raws), opts)
	result.ThemeCSS = sheet.ThemeCSS
	result.TokensCSS = sheet.TokensCSS
	result.Stats = clamp.StatsFor(sheet, len(raws), stats.FilesScanned)

	if sheet.Skipped > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped %d invalid rows", sheet.Skipped))
	}
	for _, c := range sheet.Conflicts {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf(clamp.IssuePrimitiveClash, c.Name, c.Kept, c.Dropped, c.Slug))
	}

	if config.Verbose {
		fmt.Printf("Generated %d tokens (%d fluid) and %d primitives\n",
			result.Stats.Tokens, result.Stats.FluidTokens, result.Stats.Primitives)
	}

	// 4. Verify the output resolves
	if config.Verify {
		if err := clamp.VerifyStylesheet(sheet.ThemeCSS, sheet.TokensCSS); err != nil {
			return nil, fmt.Errorf("verify failed: %w", err)
		}
	}

	if config.DryRun {
		return result, nil
	}

	// 5. Write stylesheets
	written, err := writeStylesheets(config, sheet)
	if err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	result.WrittenFiles = written

	return result, nil
}

// writeStylesheets writes the theme file, and the tokens file when the layout
// produced one
func writeStylesheets(config Config, sheet *clamp.Stylesheet) ([]string, error) {
	themeFile := config.ThemeFile
	if themeFile == "" {
		themeFile = DefaultThemeFile
	}
	tokensFile := config.TokensFile
	if tokensFile == "" {
		tokensFile = DefaultTokensFile
	}

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	outputs := []struct {
		name    string
		content string
	}{
		{themeFile, sheet.ThemeCSS},
		{tokensFile, sheet.TokensCSS},
	}

	var written []string
	for _, out := range outputs {
		if out.content == "" {
			continue
		}
		path := filepath.Join(config.OutputDir, out.name)
		if err := os.WriteFile(path, []byte(out.content), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		if config.Verbose {
			fmt.Printf("Wrote %s\n", GetRelativePath(path))
		}
		written = append(written, path)
	}

	return written, nil
}
