package clamp

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Stats summarizes one check or generate run
type Stats struct {
	FilesScanned int
	RowsChecked  int
	RowsSkipped  int
	Tokens       int
	FluidTokens  int
	StaticTokens int
	Primitives   int
	Conflicts    int
}

// StatsFor fills the token and primitive counters from a stylesheet.
func StatsFor(sheet *Stylesheet, rowsChecked, filesScanned int) Stats {
	fluid := sheet.FluidCount()
	return Stats{
		FilesScanned: filesScanned,
		RowsChecked:  rowsChecked,
		RowsSkipped:  sheet.Skipped,
		Tokens:       len(sheet.Tokens),
		FluidTokens:  fluid,
		StaticTokens: len(sheet.Tokens) - fluid,
		Primitives:   len(sheet.Primitives),
		Conflicts:    len(sheet.Conflicts),
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// CI systems that render ANSI colors
	if os.Getenv("FORCE_COLOR") != "" || os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// Reporter prints issues in golangci-lint format
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLinterName bool
}

// NewReporter creates a new reporter
func NewReporter(w io.Writer, useColors, printLinterName bool) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       useColors,
		printLinterName: printLinterName,
	}
}

// PrintIssues outputs issues sorted by file, table, then row index
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Pos, sorted[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Table != b.Table {
			return a.Table < b.Table
		}
		return a.Index < b.Index
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats: file:table[index]: severity: message (clampcheck)
func (r *Reporter) printIssue(issue Issue) {
	location := issue.Pos.String() + ":"

	linterSuffix := ""
	if r.printLinterName && issue.FromLinter != "" {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		RenderStyle(severityStyle(issue.Severity), issue.Severity+":", r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(issues []Issue) {
	var errors, warnings int
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	fmt.Fprintln(r.w, "")
	if len(issues) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "0 issues.", r.useColors))
		return
	}

	fmt.Fprintf(r.w, "%s (%s, %s)\n",
		pluralizeCount(len(issues), "issue", "issues"),
		pluralizeCount(errors, "error", "errors"),
		pluralizeCount(warnings, "warning", "warnings"))

	fixable := 0
	for _, issue := range issues {
		if issue.Fix != nil {
			fixable++
		}
	}
	if fixable > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGray,
			fmt.Sprintf("Hint: %s can be corrected with generate --fix", pluralizeCount(fixable, "issue", "issues")),
			r.useColors))
	}
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// VerboseReporter handles statistics and warnings
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs token statistics
func (r *VerboseReporter) PrintStatistics(stats Stats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Token Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------")

	fmt.Fprintf(r.w, "Files Scanned:      %d\n", stats.FilesScanned)
	fmt.Fprintf(r.w, "Rows Checked:       %d\n", stats.RowsChecked)
	fmt.Fprintf(r.w, "Rows Skipped:       %d\n", stats.RowsSkipped)
	fmt.Fprintf(r.w, "Tokens:             %d (%d fluid, %d static)\n", stats.Tokens, stats.FluidTokens, stats.StaticTokens)
	fmt.Fprintf(r.w, "Primitives:         %d\n", stats.Primitives)
	fmt.Fprintf(r.w, "Primitive Clashes:  %d\n", stats.Conflicts)
}

// PrintWarnings shows loader warnings
func (r *VerboseReporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
