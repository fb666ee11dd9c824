package clamp

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ToNumber coerces a decoded value into a float64.
// Numeric strings are trimmed and parsed; anything unparseable (including a blank
// string or nil) becomes NaN.
func ToNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// ValidSlug reports whether a slug (after trimming and lowercasing) only uses
// lowercase letters, digits and hyphens.
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(strings.ToLower(strings.TrimSpace(slug)))
}

// RowFromRaw converts a raw row without validation. Bad numbers become NaN and
// the generator drops the row.
func RowFromRaw(raw RawRow) Row {
	return Row{
		Slug: raw.Slug,
		Min:  ToNumber(raw.Min),
		Max:  ToNumber(raw.Max),
	}
}

// RowsFromRaw converts a table of raw rows with RowFromRaw.
func RowsFromRaw(raws []RawRow) []Row {
	rows := make([]Row, 0, len(raws))
	for _, raw := range raws {
		rows = append(rows, RowFromRaw(raw))
	}
	return rows
}

// ParseRow is the strict boundary: every problem in the row becomes a *RowError,
// joined when there are several. The returned row carries the normalized slug
// and coerced numbers even when err is non-nil.
func ParseRow(raw RawRow) (Row, error) {
	row := Row{
		Slug: strings.ToLower(strings.TrimSpace(raw.Slug)),
		Min:  ToNumber(raw.Min),
		Max:  ToNumber(raw.Max),
	}

	var errs []error
	switch {
	case row.Slug == "":
		errs = append(errs, &RowError{Pos: raw.Pos, Field: "slug", Value: raw.Slug, Err: ErrEmptySlug})
	case !ValidSlug(row.Slug):
		errs = append(errs, &RowError{Pos: raw.Pos, Field: "slug", Value: raw.Slug, Err: ErrInvalidSlug})
	}
	if !isFinite(row.Min) {
		errs = append(errs, &RowError{Pos: raw.Pos, Field: "min", Value: raw.Min, Err: ErrNotNumeric})
	}
	if !isFinite(row.Max) {
		errs = append(errs, &RowError{Pos: raw.Pos, Field: "max", Value: raw.Max, Err: ErrNotNumeric})
	}

	return row, errors.Join(errs...)
}

// ValidateRows checks every raw row and returns one issue per problem found.
// Inverted ranges are warnings carrying the Fix that FixInverted would apply.
func ValidateRows(raws []RawRow) []Issue {
	var issues []Issue
	seen := make(map[string]Position)

	for _, raw := range raws {
		row, err := ParseRow(raw)
		issues = append(issues, rowIssues(err)...)

		if !errors.Is(err, ErrEmptySlug) && !errors.Is(err, ErrInvalidSlug) {
			if first, dup := seen[row.Slug]; dup {
				issues = append(issues, newIssue(raw.Pos, SeverityWarning,
					fmt.Sprintf(IssueDuplicateSlug, row.Slug, first.String())))
			} else {
				seen[row.Slug] = raw.Pos
			}
		}

		if !errors.Is(err, ErrNotNumeric) && row.Min > row.Max {
			issue := newIssue(raw.Pos, SeverityWarning, fmt.Sprintf(IssueInvertedRange,
				displaySlug(row.Slug), FormatNumber(row.Min, 4), FormatNumber(row.Max, 4)))
			issue.Fix = &Fix{Field: "min", OldValue: row.Min, NewValue: row.Max}
			issues = append(issues, issue)
		}
	}

	return issues
}

// rowIssues turns the errors returned by ParseRow into error issues, in order.
func rowIssues(err error) []Issue {
	if err == nil {
		return nil
	}

	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	issues := make([]Issue, 0, len(errs))
	for _, e := range errs {
		var rowErr *RowError
		if !errors.As(e, &rowErr) {
			continue
		}

		var text string
		switch {
		case errors.Is(rowErr, ErrEmptySlug):
			text = IssueEmptySlug
		case errors.Is(rowErr, ErrInvalidSlug):
			text = fmt.Sprintf(IssueInvalidSlug, describe(rowErr.Value))
		default:
			text = fmt.Sprintf(IssueNotNumeric, rowErr.Field, describe(rowErr.Value))
		}
		issues = append(issues, newIssue(rowErr.Pos, SeverityError, text))
	}
	return issues
}

// FixInverted lowers the min of every finite min > max row to its max and
// returns the corrected copy together with the fixes that were applied.
func FixInverted(raws []RawRow) ([]RawRow, []Issue) {
	fixed := make([]RawRow, len(raws))
	var applied []Issue

	for i, raw := range raws {
		fixed[i] = raw
		row, err := ParseRow(raw)
		if errors.Is(err, ErrNotNumeric) || row.Min <= row.Max {
			continue
		}

		fixed[i].Min = row.Max
		issue := newIssue(raw.Pos, SeverityWarning,
			fmt.Sprintf(IssueFixedInverted, displaySlug(row.Slug), FormatNumber(row.Max, 4)))
		issue.Fix = &Fix{Field: "min", OldValue: row.Min, NewValue: row.Max}
		applied = append(applied, issue)
	}

	return fixed, applied
}

func newIssue(pos Position, severity, text string) Issue {
	return Issue{
		FromLinter: LinterName,
		Text:       text,
		Severity:   severity,
		Pos:        pos,
	}
}

func describe(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func displaySlug(slug string) string {
	if slug == "" {
		return "(no slug)"
	}
	return slug
}

// ConflictIssues turns the primitive clashes of a stylesheet into warnings,
// located at the first raw row carrying the slug that lost.
func ConflictIssues(sheet *Stylesheet, raws []RawRow) []Issue {
	issues := make([]Issue, 0, len(sheet.Conflicts))
	for _, c := range sheet.Conflicts {
		var pos Position
		for _, raw := range raws {
			if strings.ToLower(strings.TrimSpace(raw.Slug)) == c.Slug {
				pos = raw.Pos
				break
			}
		}
		issues = append(issues, newIssue(pos, SeverityWarning,
			fmt.Sprintf(IssuePrimitiveClash, c.Name, c.Kept, c.Dropped, c.Slug)))
	}
	return issues
}

// OptionIssues reports degenerate generator options as errors.
func OptionIssues(opts Options, pos Position) []Issue {
	var issues []Issue
	if !isFinite(opts.MinViewport) || !isFinite(opts.MaxViewport) || opts.MinViewport >= opts.MaxViewport {
		issues = append(issues, newIssue(pos, SeverityError,
			fmt.Sprintf(IssueViewportRange, opts.MinViewport, opts.MaxViewport)))
	}
	if !isFinite(opts.RootFontPx) || opts.RootFontPx <= 0 {
		issues = append(issues, newIssue(pos, SeverityError, fmt.Sprintf(IssueRootFont, opts.RootFontPx)))
	}
	return issues
}
