package clamp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_PrintIssues(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false, true)

	r.PrintIssues([]Issue{
		{FromLinter: LinterName, Severity: SeverityWarning, Text: "text-xl: min 24 is greater than max 20",
			Pos: Position{Filename: "b.yaml", Table: "typography", Index: 1}},
		{FromLinter: LinterName, Severity: SeverityError, Text: "slug is empty",
			Pos: Position{Filename: "a.yaml", Table: "spacing", Index: 3}},
		{FromLinter: LinterName, Severity: SeverityError, Text: `min value "x" is not a finite number`,
			Pos: Position{Filename: "a.yaml", Table: "spacing", Index: 0}},
	})

	assert.Equal(t,
		"a.yaml:spacing[0]: error: min value \"x\" is not a finite number (clampcheck)\n"+
			"a.yaml:spacing[3]: error: slug is empty (clampcheck)\n"+
			"b.yaml:typography[1]: warning: text-xl: min 24 is greater than max 20 (clampcheck)\n",
		buf.String())
}

func TestReporter_PrintIssuesWithoutLinterName(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false, false)

	r.PrintIssues([]Issue{{FromLinter: LinterName, Severity: SeverityError, Text: "slug is empty",
		Pos: Position{Filename: "a.yaml", Table: "typography", Index: 0}}})

	assert.Equal(t, "a.yaml:typography[0]: error: slug is empty\n", buf.String())
	assert.False(t, r.UseColors())
}

func TestReporter_PrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		issues []Issue
		want   string
	}{
		{
			name: "clean",
			want: "\n0 issues.\n",
		},
		{
			name: "mixed",
			issues: []Issue{
				{Severity: SeverityError},
				{Severity: SeverityWarning},
				{Severity: SeverityWarning},
			},
			want: "\n3 issues (1 error, 2 warnings)\n",
		},
		{
			name: "fixable",
			issues: []Issue{
				{Severity: SeverityWarning, Fix: &Fix{Field: "min", OldValue: 24, NewValue: 20}},
			},
			want: "\n1 issue (0 errors, 1 warning)\nHint: 1 issue can be corrected with generate --fix\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, false, true).PrintSummary(tt.issues)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestVerboseReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewVerboseReporter(&buf, false)

	r.PrintStatistics(Stats{FilesScanned: 2, RowsChecked: 5, RowsSkipped: 1, Tokens: 4, FluidTokens: 3, StaticTokens: 1, Primitives: 6})
	r.PrintWarnings(nil)
	r.PrintWarnings([]string{"ignored tokens/old.clamp.yaml"})

	out := buf.String()
	assert.Contains(t, out, "Token Statistics")
	assert.Contains(t, out, "Files Scanned:      2\n")
	assert.Contains(t, out, "Tokens:             4 (3 fluid, 1 static)\n")
	assert.Contains(t, out, "Primitive Clashes:  0\n")
	assert.Contains(t, out, "• ignored tokens/old.clamp.yaml\n")
}

func TestStatsFor(t *testing.T) {
	sheet := Generate([]Row{
		{Slug: "text-m", Min: 16, Max: 18},
		{Slug: "text-xs", Min: 12, Max: 12},
		{Slug: "", Min: 1, Max: 2},
	}, DefaultOptions())

	stats := StatsFor(sheet, 3, 1)

	assert.Equal(t, Stats{
		FilesScanned: 1,
		RowsChecked:  3,
		RowsSkipped:  1,
		Tokens:       2,
		FluidTokens:  1,
		StaticTokens: 1,
		Primitives:   3,
	}, stats)
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
	assert.Equal(t, "2 errors", pluralizeCount(2, "error", "errors"))
}

func TestRenderStyle_NoColors(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}
