package clampgen

import (
	"fmt"

	"github.com/yacobolo/clampgen/internal/clamp"
)

// CheckConfig holds checking configuration
type CheckConfig struct {
	Sources    []string       // Glob patterns for table files
	Rows       []clamp.RawRow // Inline rows, checked after the table files
	ConfigFile string         // Location reported for option issues

	MinViewport float64
	MaxViewport float64
	RootFontPx  float64

	Verbose bool
	Strict  bool // Exit with code 1 on any issue, not only errors
}

// Options converts the numeric settings into generator options.
// Zero settings take the generator defaults, as in Config.
func (c CheckConfig) Options() clamp.Options {
	return clamp.OptionsFromValues(setting(c.MinViewport), setting(c.MaxViewport), setting(c.RootFontPx))
}

// CheckResult contains validation results
type CheckResult struct {
	Issues       []clamp.Issue // All issues found, golangci-lint style
	Stats        clamp.Stats
	FilesScanned int
	ErrorCount   int
	WarningCount int
	Warnings     []string // Loader warnings (unreadable files)
}

// Check validates table rows and generator options without writing output.
// Rows are run through the generator as well so primitive clashes surface.
func Check(config CheckConfig) (*CheckResult, error) {
	raws, stats, warnings, err := loadSources(config.Sources, config.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}
	raws = append(raws, config.Rows...)

	opts := config.Options()
	result := &CheckResult{
		FilesScanned: stats.FilesScanned,
		Warnings:     warnings,
	}

	result.Issues = append(result.Issues,
		clamp.OptionIssues(opts, clamp.Position{Filename: config.ConfigFile, Index: -1})...)
	result.Issues = append(result.Issues, clamp.ValidateRows(raws)...)

	sheet := clamp.Generate(clamp.RowsFromRaw(raws), opts)
	result.Issues = append(result.Issues, clamp.ConflictIssues(sheet, raws)...)
	result.Stats = clamp.StatsFor(sheet, len(raws), stats.FilesScanned)

	for _, issue := range result.Issues {
		switch issue.Severity {
		case clamp.SeverityError:
			result.ErrorCount++
		case clamp.SeverityWarning:
			result.WarningCount++
		}
	}

	if config.Verbose {
		fmt.Printf("Checked %d rows: %d errors, %d warnings\n", len(raws), result.ErrorCount, result.WarningCount)
	}

	return result, nil
}

// Failed applies the exit code policy: errors always fail, warnings only in strict mode
func (r *CheckResult) Failed(strict bool) bool {
	if strict {
		return len(r.Issues) > 0
	}
	return r.ErrorCount > 0
}
