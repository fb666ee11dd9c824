package clamp

// Issue represents a single validation finding in golangci-lint format
type Issue struct {
	FromLinter string   `json:"FromLinter"` // "clampcheck"
	Text       string   `json:"Text"`       // "slug \"Text M\" must match [a-z0-9-]+"
	Severity   string   `json:"Severity"`   // "warning", "error"
	Pos        Position `json:"Pos"`
	Fix        *Fix     `json:"Fix"` // Optional automatic correction
}

// Fix describes an automatic correction applied (or applicable) to a row
type Fix struct {
	Field    string  `json:"Field"`    // "min"
	OldValue float64 `json:"OldValue"` // 24
	NewValue float64 `json:"NewValue"` // 20
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// LinterName is the suffix printed after each issue.
const LinterName = "clampcheck"

// Issue message formats
const (
	IssueEmptySlug       = "slug is empty"
	IssueInvalidSlug     = "slug %q must match [a-z0-9-]+"
	IssueNotNumeric      = "%s value %q is not a finite number"
	IssueInvertedRange   = "%s: min %s is greater than max %s"
	IssueDuplicateSlug   = "slug %q is already defined at %s"
	IssuePrimitiveClash  = "primitive %s keeps %s, %s from %q is dropped"
	IssueViewportRange   = "min viewport %v must be lower than max viewport %v"
	IssueRootFont        = "root font size %v must be a positive number"
	IssueFixedInverted   = "%s: min adjusted to %s"
	IssueUnresolvedToken = "token %s references undeclared %s"
)
