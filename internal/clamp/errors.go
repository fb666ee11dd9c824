package clamp

import (
	"errors"
	"fmt"
)

// Sentinel errors for the row boundary, configuration and stylesheet parsing.
var (
	ErrEmptySlug      = errors.New("empty slug")
	ErrInvalidSlug    = errors.New("slug must match [a-z0-9-]+")
	ErrNotNumeric     = errors.New("value is not a finite number")
	ErrViewportRange  = errors.New("min viewport must be lower than max viewport")
	ErrRootFont       = errors.New("root font size must be a positive number")
	ErrUnexpectedRule = errors.New("unexpected rule")
	ErrUnresolvedVar  = errors.New("unresolved var() reference")
)

// RowError ties a boundary error to the row and field that caused it.
type RowError struct {
	Pos   Position
	Field string // "slug", "min", "max"
	Value any
	Err   error
}

func (e *RowError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := e.Pos.String()
	if e.Field != "" {
		base += fmt.Sprintf(" %s=%v", e.Field, e.Value)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *RowError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// String formats the position as file:table[index]. A negative index marks a
// position that refers to a whole file or setting rather than a row.
func (p Position) String() string {
	loc := p.Table
	if p.Index >= 0 {
		if loc == "" {
			loc = "rows"
		}
		loc += fmt.Sprintf("[%d]", p.Index)
	}

	switch {
	case p.Filename == "":
		return loc
	case loc == "":
		return p.Filename
	default:
		return p.Filename + ":" + loc
	}
}
