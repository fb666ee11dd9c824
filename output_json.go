package clampgen

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/clampgen/internal/clamp"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Fixable      int `json:"fixable"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains token statistics
type JSONStats struct {
	RowsChecked  int `json:"rows_checked"`
	RowsSkipped  int `json:"rows_skipped"`
	Tokens       int `json:"tokens"`
	FluidTokens  int `json:"fluid_tokens"`
	StaticTokens int `json:"static_tokens"`
	Primitives   int `json:"primitives"`
	Conflicts    int `json:"conflicts"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File     string   `json:"file"`
	Table    string   `json:"table,omitempty"`
	Row      *int     `json:"row,omitempty"` // nil for option issues
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	Linter   string   `json:"linter"`
	Fix      *JSONFix `json:"fix,omitempty"`
}

// JSONFix describes the correction generate --fix applies
type JSONFix struct {
	Field    string  `json:"field"`
	OldValue float64 `json:"old_value"`
	NewValue float64 `json:"new_value"`
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	output := buildJSONOutput(result, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts CheckResult to JSONOutput
func buildJSONOutput(result *CheckResult, now time.Time) JSONOutput {
	fixable := 0
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Table:    issue.Pos.Table,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		}
		if issue.Pos.Index >= 0 {
			row := issue.Pos.Index
			ji.Row = &row
		}
		if issue.Fix != nil {
			fixable++
			ji.Fix = &JSONFix{
				Field:    issue.Fix.Field,
				OldValue: issue.Fix.OldValue,
				NewValue: issue.Fix.NewValue,
			}
		}
		jsonIssues[i] = ji
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       countSeverity(result.Issues, clamp.SeverityError),
			Warnings:     countSeverity(result.Issues, clamp.SeverityWarning),
			Fixable:      fixable,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			RowsChecked:  result.Stats.RowsChecked,
			RowsSkipped:  result.Stats.RowsSkipped,
			Tokens:       result.Stats.Tokens,
			FluidTokens:  result.Stats.FluidTokens,
			StaticTokens: result.Stats.StaticTokens,
			Primitives:   result.Stats.Primitives,
			Conflicts:    result.Stats.Conflicts,
		},
		Issues:   jsonIssues,
		Warnings: warnings,
	}
}

func countSeverity(issues []clamp.Issue, severity string) int {
	n := 0
	for _, issue := range issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}
