package clamp

// Row is a validated token row: a slug and its pixel bounds.
type Row struct {
	Slug string  `json:"slug"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// RawRow is a row as read from a table file, before numeric coercion.
// Min and Max hold whatever the decoder produced (int, float64, string, nil).
type RawRow struct {
	Slug string
	Min  any
	Max  any
	Pos  Position
}

// Position locates a raw row inside its source
type Position struct {
	Filename string // "tokens/typography.clamp.yaml"
	Table    string // "typography"
	Index    int    // 0-based index within the table
}

// Category groups tokens and primitives in the generated stylesheet
type Category string

// Token categories, in emission order
const (
	CategoryTypography Category = "typography"
	CategorySpacing    Category = "spacing"
	CategoryOther      Category = "other"
)

// Categories lists every category in the order sections are emitted.
var Categories = []Category{CategoryTypography, CategorySpacing, CategoryOther}

// Layout selects how primitives and tokens are split across output blocks
type Layout string

const (
	// LayoutCombined emits primitives and tokens in a single :root block (ThemeCSS).
	LayoutCombined Layout = "combined"
	// LayoutSplit emits primitives in ThemeCSS and token declarations in TokensCSS.
	LayoutSplit Layout = "split"
)

// Token is the derived form of one valid row
type Token struct {
	Slug         string   // "text-m"
	BaseName     string   // "text" ("gap" is folded into "spacing")
	Category     Category // CategoryTypography
	MinPx        float64
	MaxPx        float64
	MinRem       float64
	MaxRem       float64
	Slope        float64 // px per 1vw
	InterceptRem float64
	MinVar       string // "--text-16"
	MaxVar       string // "--text-18"
	IsFluid      bool   // MinPx != MaxPx
}

// Primitive is a fixed rem custom property derived from one pixel measurement
type Primitive struct {
	Name     string // "--text-16"
	Value    string // "1rem"
	Category Category
}

// Conflict records a primitive dropped during deduplication whose value
// differed from the declaration that was kept.
type Conflict struct {
	Name    string // "--text-16"
	Kept    string // "1.013rem"
	Dropped string // "1.025rem"
	Slug    string // slug of the row that produced the dropped value
}

// Stylesheet is the result of one generation pass
type Stylesheet struct {
	ThemeCSS   string
	TokensCSS  string
	Tokens     []Token     // ordered by category, then size scale
	Primitives []Primitive // deduplicated, ordered by category, then numeric suffix
	Conflicts  []Conflict
	Skipped    int // rows dropped for an empty slug or non-finite bounds
}

// FluidCount returns the number of clamp() tokens in the stylesheet.
func (s *Stylesheet) FluidCount() int {
	n := 0
	for _, t := range s.Tokens {
		if t.IsFluid {
			n++
		}
	}
	return n
}
