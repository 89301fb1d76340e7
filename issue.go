package windc

// Diagnostic reports a per-token problem in golangci-lint shape. The core
// only classifies; formatting and suggestions belong to the reporter.
type Diagnostic struct {
	Check      string   `json:"Check"`    // "parse", "variant", "utility", "compose"
	Text       string   `json:"Text"`     // human-readable message
	Severity   string   `json:"Severity"` // "error" or "warning"
	Token      string   `json:"Token"`    // the offending raw class token
	Pos        Position `json:"Pos"`
	SourceLine string   `json:"SourceLine,omitempty"` // line content for context
}

// Position is the source location of a diagnostic.
type Position struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, 0 when unknown
}

// Diagnostic severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Check names used in diagnostics.
const (
	CheckParse   = "parse"   // token failed to parse
	CheckVariant = "variant" // variant name not in the registry
	CheckUtility = "utility" // catalog could not resolve the base utility
	CheckCompose = "compose" // selector composition invariant violated
)
