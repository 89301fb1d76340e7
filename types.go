package windc

// VariantCategory classifies a variant by the kind of CSS construct it
// produces. Categories with lower precedence bands compose closer to the
// element (selector suffixes); higher bands become outer at-rule wrappers.
type VariantCategory int

// Variant categories in ascending precedence-band order.
const (
	CategoryPseudoClass VariantCategory = iota
	CategoryPseudoElement
	CategoryState
	CategoryMediaQuery
	CategoryPrint
	CategorySupportsQuery
	CategoryAriaAttribute
	CategoryDataAttribute
	CategoryDirectional
	CategoryResponsive
	CategoryArbitrary
)

// String returns the category name for diagnostics.
func (c VariantCategory) String() string {
	switch c {
	case CategoryPseudoClass:
		return "pseudo-class"
	case CategoryPseudoElement:
		return "pseudo-element"
	case CategoryState:
		return "state"
	case CategoryMediaQuery:
		return "media-query"
	case CategoryPrint:
		return "print"
	case CategorySupportsQuery:
		return "supports-query"
	case CategoryAriaAttribute:
		return "aria-attribute"
	case CategoryDataAttribute:
		return "data-attribute"
	case CategoryDirectional:
		return "directional"
	case CategoryResponsive:
		return "responsive"
	case CategoryArbitrary:
		return "arbitrary"
	}
	return "unknown"
}

// VariantDefinition is one entry in the variant registry. Definitions are
// immutable after registry construction and safe for concurrent reads.
type VariantDefinition struct {
	Name       string          // registry key, e.g. "hover", "group-hover", "md"
	Category   VariantCategory // determines selector-vs-context behavior
	Fragment   string          // selector suffix (":hover") or at-rule header ("@media print")
	Precedence uint            // unique, within the category's band
}

// VariantReference is one variant occurrence inside a parsed token.
type VariantReference struct {
	RawName      string // "hover", "group-hover", or a bracketed literal "[&:nth-child(3)]"
	AncestorName string // the "/name" segment of group/peer variants, "" when absent
	Arbitrary    bool   // true when written as a bracketed literal selector
}

// ParsedClassName is the parser's output for one raw class token.
// Variants preserve syntactic left-to-right order (outer to inner as
// written). Utility keeps the token's base segment verbatim, including any
// leading negative sign and arbitrary-value brackets, so the catalog can
// pattern-match the prefix.
type ParsedClassName struct {
	Important      bool
	Variants       []VariantReference
	Utility        string
	IsArbitrary    bool
	ArbitraryValue string
}

// Declaration is a single CSS property/value pair as supplied by the
// utility catalog. The core treats it as opaque beyond ordering and
// equality.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a fully composed CSS rule. AtRules is ordered outermost first.
// Two rules with the same at-rule stack, selector, declarations, and
// importance are the same rule for deduplication purposes.
type Rule struct {
	Selector     string
	AtRules      []string
	Declarations []Declaration
	Important    bool
}

// TokenRef is one class token occurrence found in a source file.
type TokenRef struct {
	Token      string
	File       string
	Line       int
	Col        int    // 1-based column of the token within the line
	SourceLine string // content of the line, for caret rendering
}

// Config holds build configuration.
type Config struct {
	SourceDir string   // root scanned for markup, e.g. "web"
	Includes  []string // glob patterns relative to SourceDir, e.g. ["**/*.html"]
	Output    string   // stylesheet path, e.g. "dist/windc.css"
	Workers   int      // parallel file workers; <=0 means GOMAXPROCS
	Verbose   bool
}

// BuildResult contains compilation statistics and per-token diagnostics.
type BuildResult struct {
	FilesScanned int
	TokensFound  int
	RulesEmitted int
	Diagnostics  []Diagnostic
	CSS          string // emitted stylesheet text
}
