package clampgen

import (
	"io"
	"os"

	"github.com/yacobolo/clampgen/internal/clamp"
)

// OutputFormat selects how check results are rendered
type OutputFormat string

// Supported output formats
const (
	OutputIssues  OutputFormat = "issues"
	OutputSummary OutputFormat = "summary"
	OutputFull    OutputFormat = "full"
	OutputJSON    OutputFormat = "json"
)

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit --quiet flag wins (exit code only)
	if quiet {
		return OutputIssues // Issues only, suppressed by the CLI
	}

	switch OutputFormat(formatFlag) {
	case OutputIssues, OutputSummary, OutputFull, OutputJSON:
		return OutputFormat(formatFlag)
	default:
		// Unknown or empty: golangci-lint style default
		return OutputIssues
	}
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, useColors bool) {
	switch format {
	case OutputIssues:
		reporter := clamp.NewReporter(w, useColors, true)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues)

	case OutputSummary:
		verboseReporter := clamp.NewVerboseReporter(w, useColors)
		verboseReporter.PrintStatistics(result.Stats)
		verboseReporter.PrintWarnings(result.Warnings)

	case OutputFull:
		reporter := clamp.NewReporter(w, useColors, true)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues)

		verboseReporter := clamp.NewVerboseReporter(w, reporter.UseColors())
		verboseReporter.PrintStatistics(result.Stats)
		verboseReporter.PrintWarnings(result.Warnings)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}
