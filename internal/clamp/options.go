package clamp

import (
	"fmt"
	"math"
	"strings"
)

// Default configuration values
const (
	DefaultMinViewport = 360.0
	DefaultMaxViewport = 1280.0
	DefaultRootFontPx  = 16.0
)

// Options holds the three numeric knobs of the generator plus the output layout.
type Options struct {
	MinViewport float64 // px
	MaxViewport float64 // px
	RootFontPx  float64 // px per rem
	Layout      Layout  // "" behaves as LayoutCombined
}

// DefaultOptions returns the 360px..1280px, 16px root configuration.
func DefaultOptions() Options {
	return Options{
		MinViewport: DefaultMinViewport,
		MaxViewport: DefaultMaxViewport,
		RootFontPx:  DefaultRootFontPx,
		Layout:      LayoutCombined,
	}
}

// OptionsFromValues builds Options from loosely typed values.
// A nil value falls back to its default; anything else is coerced with ToNumber,
// so a non-numeric value becomes NaN and degrades the output instead of failing.
func OptionsFromValues(minViewport, maxViewport, rootFontPx any) Options {
	opts := DefaultOptions()
	if minViewport != nil {
		opts.MinViewport = ToNumber(minViewport)
	}
	if maxViewport != nil {
		opts.MaxViewport = ToNumber(maxViewport)
	}
	if rootFontPx != nil {
		opts.RootFontPx = ToNumber(rootFontPx)
	}
	return opts
}

// Validate reports configurations that would make the fluid formula degenerate.
// Generate never calls it; callers that want to fail fast do.
func (o Options) Validate() error {
	if !isFinite(o.MinViewport) || !isFinite(o.MaxViewport) || o.MinViewport >= o.MaxViewport {
		return fmt.Errorf("viewport %v..%v: %w", o.MinViewport, o.MaxViewport, ErrViewportRange)
	}
	if !isFinite(o.RootFontPx) || o.RootFontPx <= 0 {
		return fmt.Errorf("root font %v: %w", o.RootFontPx, ErrRootFont)
	}
	if _, err := ParseLayout(string(o.Layout)); err != nil {
		return err
	}
	return nil
}

// ParseLayout maps a config string onto a Layout. An empty string means combined.
func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case "", LayoutCombined:
		return LayoutCombined, nil
	case LayoutSplit:
		return LayoutSplit, nil
	default:
		return LayoutCombined, fmt.Errorf("unknown layout %q (want %s or %s)", s, LayoutCombined, LayoutSplit)
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
