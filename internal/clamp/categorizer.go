package clamp

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	typographySlug = regexp.MustCompile(`(?i)^text(?:-|$)`)
	spacingSlug    = regexp.MustCompile(`(?i)^(?:spacing|gap)(?:-|$)`)

	// primitiveSuffix extracts the numeric suffix of a primitive name
	primitiveSuffix = regexp.MustCompile(`(?i)--[a-z0-9\-]+-(\d+)`)
)

// sizeScale is the canonical t-shirt ordering applied to a slug's last segment
var sizeScale = []string{"xxs", "xs", "s", "m", "l", "xl", "2xl", "3xl", "4xl", "5xl"}

// categorizeSlug determines the category of a token from its slug
func categorizeSlug(slug string) Category {
	switch {
	case typographySlug.MatchString(slug):
		return CategoryTypography
	case spacingSlug.MatchString(slug):
		return CategorySpacing
	default:
		return CategoryOther
	}
}

// CategoryOf reports the token section a slug is emitted in.
func CategoryOf(slug string) Category {
	return categorizeSlug(strings.ToLower(strings.TrimSpace(slug)))
}

// categorizeBaseName determines the category of a primitive from its base name
func categorizeBaseName(base string) Category {
	switch base {
	case "text":
		return CategoryTypography
	case "spacing":
		return CategorySpacing
	default:
		return CategoryOther
	}
}

// baseName returns the slug prefix before the first hyphen, folding gap into spacing
func baseName(slug string) string {
	base, _, _ := strings.Cut(slug, "-")
	if base == "gap" {
		return "spacing"
	}
	return base
}

// sizeIndex returns the position of the slug's last segment on the size scale, or -1
func sizeIndex(slug string) int {
	last := slug
	if i := strings.LastIndex(slug, "-"); i >= 0 {
		last = slug[i+1:]
	}
	return slices.Index(sizeScale, last)
}

// compareTokens orders tokens by size scale; unknown sizes go last, ties by slug
func compareTokens(a, b Token) int {
	ia, ib := sizeIndex(a.Slug), sizeIndex(b.Slug)
	if ia != -1 || ib != -1 {
		if ia == -1 {
			return 1
		}
		if ib == -1 {
			return -1
		}
		if ia != ib {
			return cmp.Compare(ia, ib)
		}
	}
	return strings.Compare(a.Slug, b.Slug)
}

// suffixValue extracts the numeric suffix used to order primitives (0 if absent)
func suffixValue(name string) float64 {
	m := primitiveSuffix.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// comparePrimitives orders primitives by numeric suffix, then by name
func comparePrimitives(a, b Primitive) int {
	if c := cmp.Compare(suffixValue(a.Name), suffixValue(b.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// groupTokens splits tokens into categories and sorts each one
func groupTokens(tokens []Token) map[Category][]Token {
	result := make(map[Category][]Token)
	for _, t := range tokens {
		result[t.Category] = append(result[t.Category], t)
	}

	for cat := range result {
		slices.SortStableFunc(result[cat], compareTokens)
	}

	return result
}

// groupPrimitives deduplicates primitives by name, keeping the first occurrence,
// and returns them grouped by category and sorted by numeric suffix.
func groupPrimitives(all []Primitive, origins []string) (map[Category][]Primitive, []Conflict) {
	result := make(map[Category][]Primitive)
	kept := make(map[string]string)
	var conflicts []Conflict

	for i, p := range all {
		if value, exists := kept[p.Name]; exists {
			if value != p.Value {
				conflicts = append(conflicts, Conflict{
					Name:    p.Name,
					Kept:    value,
					Dropped: p.Value,
					Slug:    origins[i],
				})
			}
			continue
		}
		kept[p.Name] = p.Value
		result[p.Category] = append(result[p.Category], p)
	}

	for cat := range result {
		slices.SortStableFunc(result[cat], comparePrimitives)
	}

	return result, conflicts
}
