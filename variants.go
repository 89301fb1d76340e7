package windc

// The variant registry is fixed data: every recognized variant name maps to
// exactly one definition whose precedence falls inside its category's band.
// The table is built once into a package-level index and never mutated, so
// lookups need no synchronization.

// Precedence bands per category. Lower bands compose closer to the element
// as selector suffixes; higher bands wrap the rule in at-rule contexts.
const (
	bandPseudoClassMin   = 100
	bandPseudoClassMax   = 199
	bandPseudoElementMin = 200
	bandPseudoElementMax = 299
	bandStateMin         = 300
	bandStateMax         = 399
	bandMediaQueryMin    = 400
	bandMediaQueryMax    = 499
	bandPrintMin         = 500
	bandPrintMax         = 599
	bandSupportsMin      = 600
	bandSupportsMax      = 699
	bandAriaMin          = 700
	bandAriaMax          = 799
	bandDataMin          = 800
	bandDataMax          = 899
	bandDirectionalMin   = 900
	bandDirectionalMax   = 999
	bandResponsiveMin    = 1000
	bandResponsiveMax    = 1999
)

// PrecedenceBand returns the inclusive precedence range of a category.
// Arbitrary selector variants are synthetic: they sit at the pseudo-class
// band maximum so they behave as innermost selector rewrites.
func PrecedenceBand(c VariantCategory) (min, max uint) {
	switch c {
	case CategoryPseudoClass:
		return bandPseudoClassMin, bandPseudoClassMax
	case CategoryPseudoElement:
		return bandPseudoElementMin, bandPseudoElementMax
	case CategoryState:
		return bandStateMin, bandStateMax
	case CategoryMediaQuery:
		return bandMediaQueryMin, bandMediaQueryMax
	case CategoryPrint:
		return bandPrintMin, bandPrintMax
	case CategorySupportsQuery:
		return bandSupportsMin, bandSupportsMax
	case CategoryAriaAttribute:
		return bandAriaMin, bandAriaMax
	case CategoryDataAttribute:
		return bandDataMin, bandDataMax
	case CategoryDirectional:
		return bandDirectionalMin, bandDirectionalMax
	case CategoryResponsive:
		return bandResponsiveMin, bandResponsiveMax
	case CategoryArbitrary:
		return bandPseudoClassMax, bandPseudoClassMax
	}
	return 0, 0
}

// LookupVariant returns the definition registered under name.
func LookupVariant(name string) (VariantDefinition, bool) {
	def, ok := variantIndex[name]
	return def, ok
}

// Variants returns all registered definitions in precedence order. The
// returned slice is shared; callers must not modify it.
func Variants() []VariantDefinition {
	return variantTable
}

var variantIndex = func() map[string]VariantDefinition {
	idx := make(map[string]VariantDefinition, len(variantTable))
	for _, def := range variantTable {
		idx[def.Name] = def
	}
	return idx
}()

var variantTable = []VariantDefinition{
	// Pseudo-classes: suffixes on the element's own selector.
	{Name: "hover", Category: CategoryPseudoClass, Fragment: ":hover", Precedence: 100},
	{Name: "focus", Category: CategoryPseudoClass, Fragment: ":focus", Precedence: 101},
	{Name: "focus-within", Category: CategoryPseudoClass, Fragment: ":focus-within", Precedence: 102},
	{Name: "focus-visible", Category: CategoryPseudoClass, Fragment: ":focus-visible", Precedence: 103},
	{Name: "active", Category: CategoryPseudoClass, Fragment: ":active", Precedence: 104},
	{Name: "visited", Category: CategoryPseudoClass, Fragment: ":visited", Precedence: 105},
	{Name: "target", Category: CategoryPseudoClass, Fragment: ":target", Precedence: 106},
	{Name: "first", Category: CategoryPseudoClass, Fragment: ":first-child", Precedence: 107},
	{Name: "last", Category: CategoryPseudoClass, Fragment: ":last-child", Precedence: 108},
	{Name: "only", Category: CategoryPseudoClass, Fragment: ":only-child", Precedence: 109},
	{Name: "odd", Category: CategoryPseudoClass, Fragment: ":nth-child(odd)", Precedence: 110},
	{Name: "even", Category: CategoryPseudoClass, Fragment: ":nth-child(even)", Precedence: 111},
	{Name: "first-of-type", Category: CategoryPseudoClass, Fragment: ":first-of-type", Precedence: 112},
	{Name: "last-of-type", Category: CategoryPseudoClass, Fragment: ":last-of-type", Precedence: 113},
	{Name: "only-of-type", Category: CategoryPseudoClass, Fragment: ":only-of-type", Precedence: 114},
	{Name: "empty", Category: CategoryPseudoClass, Fragment: ":empty", Precedence: 115},
	{Name: "disabled", Category: CategoryPseudoClass, Fragment: ":disabled", Precedence: 116},
	{Name: "enabled", Category: CategoryPseudoClass, Fragment: ":enabled", Precedence: 117},
	{Name: "checked", Category: CategoryPseudoClass, Fragment: ":checked", Precedence: 118},
	{Name: "indeterminate", Category: CategoryPseudoClass, Fragment: ":indeterminate", Precedence: 119},
	{Name: "default", Category: CategoryPseudoClass, Fragment: ":default", Precedence: 120},
	{Name: "required", Category: CategoryPseudoClass, Fragment: ":required", Precedence: 121},
	{Name: "optional", Category: CategoryPseudoClass, Fragment: ":optional", Precedence: 122},
	{Name: "valid", Category: CategoryPseudoClass, Fragment: ":valid", Precedence: 123},
	{Name: "invalid", Category: CategoryPseudoClass, Fragment: ":invalid", Precedence: 124},
	{Name: "in-range", Category: CategoryPseudoClass, Fragment: ":in-range", Precedence: 125},
	{Name: "out-of-range", Category: CategoryPseudoClass, Fragment: ":out-of-range", Precedence: 126},
	{Name: "placeholder-shown", Category: CategoryPseudoClass, Fragment: ":placeholder-shown", Precedence: 127},
	{Name: "autofill", Category: CategoryPseudoClass, Fragment: ":autofill", Precedence: 128},
	{Name: "read-only", Category: CategoryPseudoClass, Fragment: ":read-only", Precedence: 129},

	// Pseudo-elements.
	{Name: "before", Category: CategoryPseudoElement, Fragment: "::before", Precedence: 200},
	{Name: "after", Category: CategoryPseudoElement, Fragment: "::after", Precedence: 201},
	{Name: "placeholder", Category: CategoryPseudoElement, Fragment: "::placeholder", Precedence: 202},
	{Name: "file", Category: CategoryPseudoElement, Fragment: "::file-selector-button", Precedence: 203},
	{Name: "marker", Category: CategoryPseudoElement, Fragment: "::marker", Precedence: 204},
	{Name: "selection", Category: CategoryPseudoElement, Fragment: "::selection", Precedence: 205},
	{Name: "first-line", Category: CategoryPseudoElement, Fragment: "::first-line", Precedence: 206},
	{Name: "first-letter", Category: CategoryPseudoElement, Fragment: "::first-letter", Precedence: 207},
	{Name: "backdrop", Category: CategoryPseudoElement, Fragment: "::backdrop", Precedence: 208},

	// Ancestor state variants. The fragment is the pseudo suffix applied to
	// the .group/.peer ancestor class; the bare forms carry no suffix.
	{Name: "group", Category: CategoryState, Fragment: "", Precedence: 300},
	{Name: "group-hover", Category: CategoryState, Fragment: ":hover", Precedence: 301},
	{Name: "group-focus", Category: CategoryState, Fragment: ":focus", Precedence: 302},
	{Name: "group-focus-within", Category: CategoryState, Fragment: ":focus-within", Precedence: 303},
	{Name: "group-active", Category: CategoryState, Fragment: ":active", Precedence: 304},
	{Name: "group-visited", Category: CategoryState, Fragment: ":visited", Precedence: 305},
	{Name: "group-disabled", Category: CategoryState, Fragment: ":disabled", Precedence: 306},
	{Name: "group-checked", Category: CategoryState, Fragment: ":checked", Precedence: 307},
	{Name: "peer", Category: CategoryState, Fragment: "", Precedence: 310},
	{Name: "peer-hover", Category: CategoryState, Fragment: ":hover", Precedence: 311},
	{Name: "peer-focus", Category: CategoryState, Fragment: ":focus", Precedence: 312},
	{Name: "peer-focus-within", Category: CategoryState, Fragment: ":focus-within", Precedence: 313},
	{Name: "peer-active", Category: CategoryState, Fragment: ":active", Precedence: 314},
	{Name: "peer-disabled", Category: CategoryState, Fragment: ":disabled", Precedence: 315},
	{Name: "peer-checked", Category: CategoryState, Fragment: ":checked", Precedence: 316},
	{Name: "peer-invalid", Category: CategoryState, Fragment: ":invalid", Precedence: 317},
	{Name: "peer-required", Category: CategoryState, Fragment: ":required", Precedence: 318},
	{Name: "peer-placeholder-shown", Category: CategoryState, Fragment: ":placeholder-shown", Precedence: 319},

	// Feature and preference media queries.
	{Name: "dark", Category: CategoryMediaQuery, Fragment: "@media (prefers-color-scheme: dark)", Precedence: 400},
	{Name: "motion-safe", Category: CategoryMediaQuery, Fragment: "@media (prefers-reduced-motion: no-preference)", Precedence: 401},
	{Name: "motion-reduce", Category: CategoryMediaQuery, Fragment: "@media (prefers-reduced-motion: reduce)", Precedence: 402},
	{Name: "contrast-more", Category: CategoryMediaQuery, Fragment: "@media (prefers-contrast: more)", Precedence: 403},
	{Name: "contrast-less", Category: CategoryMediaQuery, Fragment: "@media (prefers-contrast: less)", Precedence: 404},
	{Name: "portrait", Category: CategoryMediaQuery, Fragment: "@media (orientation: portrait)", Precedence: 405},
	{Name: "landscape", Category: CategoryMediaQuery, Fragment: "@media (orientation: landscape)", Precedence: 406},
	{Name: "forced-colors", Category: CategoryMediaQuery, Fragment: "@media (forced-colors: active)", Precedence: 407},

	{Name: "print", Category: CategoryPrint, Fragment: "@media print", Precedence: 500},

	{Name: "supports-grid", Category: CategorySupportsQuery, Fragment: "@supports (display: grid)", Precedence: 600},
	{Name: "supports-flex", Category: CategorySupportsQuery, Fragment: "@supports (display: flex)", Precedence: 601},
	{Name: "supports-backdrop-filter", Category: CategorySupportsQuery, Fragment: "@supports (backdrop-filter: blur(0))", Precedence: 602},

	// ARIA state attributes.
	{Name: "aria-busy", Category: CategoryAriaAttribute, Fragment: `[aria-busy="true"]`, Precedence: 700},
	{Name: "aria-checked", Category: CategoryAriaAttribute, Fragment: `[aria-checked="true"]`, Precedence: 701},
	{Name: "aria-disabled", Category: CategoryAriaAttribute, Fragment: `[aria-disabled="true"]`, Precedence: 702},
	{Name: "aria-expanded", Category: CategoryAriaAttribute, Fragment: `[aria-expanded="true"]`, Precedence: 703},
	{Name: "aria-hidden", Category: CategoryAriaAttribute, Fragment: `[aria-hidden="true"]`, Precedence: 704},
	{Name: "aria-pressed", Category: CategoryAriaAttribute, Fragment: `[aria-pressed="true"]`, Precedence: 705},
	{Name: "aria-readonly", Category: CategoryAriaAttribute, Fragment: `[aria-readonly="true"]`, Precedence: 706},
	{Name: "aria-required", Category: CategoryAriaAttribute, Fragment: `[aria-required="true"]`, Precedence: 707},
	{Name: "aria-selected", Category: CategoryAriaAttribute, Fragment: `[aria-selected="true"]`, Precedence: 708},

	// Data state attributes.
	{Name: "data-active", Category: CategoryDataAttribute, Fragment: "[data-active]", Precedence: 800},
	{Name: "data-open", Category: CategoryDataAttribute, Fragment: "[data-open]", Precedence: 801},
	{Name: "data-closed", Category: CategoryDataAttribute, Fragment: "[data-closed]", Precedence: 802},
	{Name: "data-checked", Category: CategoryDataAttribute, Fragment: "[data-checked]", Precedence: 803},
	{Name: "data-disabled", Category: CategoryDataAttribute, Fragment: "[data-disabled]", Precedence: 804},
	{Name: "data-highlighted", Category: CategoryDataAttribute, Fragment: "[data-highlighted]", Precedence: 805},

	{Name: "rtl", Category: CategoryDirectional, Fragment: ":dir(rtl)", Precedence: 900},
	{Name: "ltr", Category: CategoryDirectional, Fragment: ":dir(ltr)", Precedence: 901},

	// Responsive breakpoints: always the outermost wrapping context.
	{Name: "sm", Category: CategoryResponsive, Fragment: "@media (min-width: 640px)", Precedence: 1000},
	{Name: "md", Category: CategoryResponsive, Fragment: "@media (min-width: 768px)", Precedence: 1001},
	{Name: "lg", Category: CategoryResponsive, Fragment: "@media (min-width: 1024px)", Precedence: 1002},
	{Name: "xl", Category: CategoryResponsive, Fragment: "@media (min-width: 1280px)", Precedence: 1003},
	{Name: "2xl", Category: CategoryResponsive, Fragment: "@media (min-width: 1536px)", Precedence: 1004},
}
