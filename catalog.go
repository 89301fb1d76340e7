package windc

import (
	"sort"
	"strings"
)

// Catalog resolves a base utility name (as written, including any
// arbitrary-value brackets) plus the separately extracted arbitrary value
// into CSS declarations. Implementations must be safe for concurrent use.
type Catalog interface {
	Resolve(utility string, arbitraryValue string) ([]Declaration, error)
}

// PrefixHandler produces declarations for one utility family. rest is the
// utility name with the registered prefix removed (and without any bracket
// suffix), arbitrary is the extracted bracket value ("" when absent), and
// negative reports a leading minus on the utility. Returning nil means the
// handler does not recognize the input and resolution continues.
type PrefixHandler func(rest, arbitrary string, negative bool) []Declaration

type prefixEntry struct {
	prefix string
	fn     PrefixHandler
}

// DefaultCatalog is a registration-table catalog: exact names map to fixed
// declaration lists, prefixes map to handler funcs. Longest prefix wins.
// The zero value is not usable; construct with NewDefaultCatalog.
type DefaultCatalog struct {
	static   map[string][]Declaration
	prefixes []prefixEntry
}

// NewDefaultCatalog builds a catalog covering the common utility families:
// display, position, flexbox, spacing, sizing, color, typography, borders,
// radius, shadow, opacity, z-index, and translate.
func NewDefaultCatalog() *DefaultCatalog {
	c := &DefaultCatalog{static: make(map[string][]Declaration, 64)}
	registerStaticUtilities(c)
	registerPrefixUtilities(c)
	return c
}

// RegisterStatic maps an exact utility name to a fixed declaration list.
func (c *DefaultCatalog) RegisterStatic(name string, decls ...Declaration) {
	c.static[name] = decls
}

// RegisterPrefix maps a utility name prefix to a handler. Prefixes are
// matched longest first, so "px-" takes precedence over "p-". Registration
// must finish before the catalog is shared across goroutines.
func (c *DefaultCatalog) RegisterPrefix(prefix string, fn PrefixHandler) {
	c.prefixes = append(c.prefixes, prefixEntry{prefix: prefix, fn: fn})
	sort.SliceStable(c.prefixes, func(i, j int) bool {
		return len(c.prefixes[i].prefix) > len(c.prefixes[j].prefix)
	})
}

// Resolve implements Catalog.
func (c *DefaultCatalog) Resolve(utility, arbitraryValue string) ([]Declaration, error) {
	if utility == "" {
		return nil, &UnknownUtilityError{Utility: utility}
	}

	name := utility
	negative := false
	if name[0] == '-' {
		negative = true
		name = name[1:]
	}
	// Prefix matching ignores the bracket suffix: "w-[200px]" matches "w-".
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}

	if arbitraryValue == "" && !negative {
		if decls, ok := c.static[name]; ok {
			return append([]Declaration(nil), decls...), nil
		}
	}

	for _, entry := range c.prefixes {
		if !strings.HasPrefix(name, entry.prefix) {
			continue
		}
		rest := name[len(entry.prefix):]
		if decls := entry.fn(rest, arbitraryValue, negative); decls != nil {
			return decls, nil
		}
	}

	return nil, &UnknownUtilityError{Utility: utility}
}

func registerStaticUtilities(c *DefaultCatalog) {
	d := func(prop, val string) Declaration { return Declaration{Property: prop, Value: val} }

	// Display.
	c.RegisterStatic("block", d("display", "block"))
	c.RegisterStatic("inline-block", d("display", "inline-block"))
	c.RegisterStatic("inline", d("display", "inline"))
	c.RegisterStatic("flex", d("display", "flex"))
	c.RegisterStatic("inline-flex", d("display", "inline-flex"))
	c.RegisterStatic("grid", d("display", "grid"))
	c.RegisterStatic("contents", d("display", "contents"))
	c.RegisterStatic("hidden", d("display", "none"))

	// Position.
	c.RegisterStatic("static", d("position", "static"))
	c.RegisterStatic("relative", d("position", "relative"))
	c.RegisterStatic("absolute", d("position", "absolute"))
	c.RegisterStatic("fixed", d("position", "fixed"))
	c.RegisterStatic("sticky", d("position", "sticky"))

	// Flexbox.
	c.RegisterStatic("flex-row", d("flex-direction", "row"))
	c.RegisterStatic("flex-row-reverse", d("flex-direction", "row-reverse"))
	c.RegisterStatic("flex-col", d("flex-direction", "column"))
	c.RegisterStatic("flex-col-reverse", d("flex-direction", "column-reverse"))
	c.RegisterStatic("flex-wrap", d("flex-wrap", "wrap"))
	c.RegisterStatic("flex-nowrap", d("flex-wrap", "nowrap"))
	c.RegisterStatic("flex-1", d("flex", "1 1 0%"))
	c.RegisterStatic("grow", d("flex-grow", "1"))
	c.RegisterStatic("grow-0", d("flex-grow", "0"))
	c.RegisterStatic("shrink", d("flex-shrink", "1"))
	c.RegisterStatic("shrink-0", d("flex-shrink", "0"))
	c.RegisterStatic("items-start", d("align-items", "flex-start"))
	c.RegisterStatic("items-center", d("align-items", "center"))
	c.RegisterStatic("items-end", d("align-items", "flex-end"))
	c.RegisterStatic("items-baseline", d("align-items", "baseline"))
	c.RegisterStatic("items-stretch", d("align-items", "stretch"))
	c.RegisterStatic("justify-start", d("justify-content", "flex-start"))
	c.RegisterStatic("justify-center", d("justify-content", "center"))
	c.RegisterStatic("justify-end", d("justify-content", "flex-end"))
	c.RegisterStatic("justify-between", d("justify-content", "space-between"))
	c.RegisterStatic("justify-around", d("justify-content", "space-around"))
	c.RegisterStatic("justify-evenly", d("justify-content", "space-evenly"))

	// Typography.
	c.RegisterStatic("italic", d("font-style", "italic"))
	c.RegisterStatic("not-italic", d("font-style", "normal"))
	c.RegisterStatic("underline", d("text-decoration-line", "underline"))
	c.RegisterStatic("line-through", d("text-decoration-line", "line-through"))
	c.RegisterStatic("no-underline", d("text-decoration-line", "none"))
	c.RegisterStatic("uppercase", d("text-transform", "uppercase"))
	c.RegisterStatic("lowercase", d("text-transform", "lowercase"))
	c.RegisterStatic("capitalize", d("text-transform", "capitalize"))
	c.RegisterStatic("normal-case", d("text-transform", "none"))
	c.RegisterStatic("text-left", d("text-align", "left"))
	c.RegisterStatic("text-center", d("text-align", "center"))
	c.RegisterStatic("text-right", d("text-align", "right"))
	c.RegisterStatic("truncate",
		d("overflow", "hidden"),
		d("text-overflow", "ellipsis"),
		d("white-space", "nowrap"))

	// Borders and radius.
	c.RegisterStatic("border", d("border-width", "1px"))
	c.RegisterStatic("rounded", d("border-radius", "0.25rem"))
	c.RegisterStatic("rounded-full", d("border-radius", "9999px"))
	c.RegisterStatic("rounded-none", d("border-radius", "0px"))

	// Effects.
	c.RegisterStatic("shadow", d("box-shadow", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)"))
	c.RegisterStatic("shadow-md", d("box-shadow", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)"))
	c.RegisterStatic("shadow-lg", d("box-shadow", "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)"))
	c.RegisterStatic("shadow-none", d("box-shadow", "none"))

	// Interaction and overflow.
	c.RegisterStatic("cursor-pointer", d("cursor", "pointer"))
	c.RegisterStatic("cursor-default", d("cursor", "default"))
	c.RegisterStatic("select-none", d("user-select", "none"))
	c.RegisterStatic("pointer-events-none", d("pointer-events", "none"))
	c.RegisterStatic("overflow-hidden", d("overflow", "hidden"))
	c.RegisterStatic("overflow-auto", d("overflow", "auto"))
	c.RegisterStatic("overflow-scroll", d("overflow", "scroll"))

	c.RegisterStatic("sr-only",
		d("position", "absolute"),
		d("width", "1px"),
		d("height", "1px"),
		d("padding", "0"),
		d("margin", "-1px"),
		d("overflow", "hidden"),
		d("clip", "rect(0, 0, 0, 0)"),
		d("white-space", "nowrap"),
		d("border-width", "0"))
}

func registerPrefixUtilities(c *DefaultCatalog) {
	// Padding and margin.
	c.RegisterPrefix("p-", spacingHandler("padding"))
	c.RegisterPrefix("px-", spacingHandler("padding-left", "padding-right"))
	c.RegisterPrefix("py-", spacingHandler("padding-top", "padding-bottom"))
	c.RegisterPrefix("pt-", spacingHandler("padding-top"))
	c.RegisterPrefix("pr-", spacingHandler("padding-right"))
	c.RegisterPrefix("pb-", spacingHandler("padding-bottom"))
	c.RegisterPrefix("pl-", spacingHandler("padding-left"))
	c.RegisterPrefix("m-", spacingHandler("margin"))
	c.RegisterPrefix("mx-", spacingHandler("margin-left", "margin-right"))
	c.RegisterPrefix("my-", spacingHandler("margin-top", "margin-bottom"))
	c.RegisterPrefix("mt-", spacingHandler("margin-top"))
	c.RegisterPrefix("mr-", spacingHandler("margin-right"))
	c.RegisterPrefix("mb-", spacingHandler("margin-bottom"))
	c.RegisterPrefix("ml-", spacingHandler("margin-left"))
	c.RegisterPrefix("gap-", spacingHandler("gap"))
	c.RegisterPrefix("gap-x-", spacingHandler("column-gap"))
	c.RegisterPrefix("gap-y-", spacingHandler("row-gap"))

	// Offsets.
	c.RegisterPrefix("inset-", spacingHandler("inset"))
	c.RegisterPrefix("top-", spacingHandler("top"))
	c.RegisterPrefix("right-", spacingHandler("right"))
	c.RegisterPrefix("bottom-", spacingHandler("bottom"))
	c.RegisterPrefix("left-", spacingHandler("left"))

	// Sizing.
	c.RegisterPrefix("w-", sizingHandler("width", "100vw"))
	c.RegisterPrefix("h-", sizingHandler("height", "100vh"))
	c.RegisterPrefix("min-w-", sizingHandler("min-width", "100vw"))
	c.RegisterPrefix("max-w-", sizingHandler("max-width", "100vw"))
	c.RegisterPrefix("min-h-", sizingHandler("min-height", "100vh"))
	c.RegisterPrefix("max-h-", sizingHandler("max-height", "100vh"))

	// Color.
	c.RegisterPrefix("bg-", colorHandler("background-color"))
	c.RegisterPrefix("border-", colorHandler("border-color"))
	c.RegisterPrefix("text-", textHandler)

	// Typography scales.
	c.RegisterPrefix("font-", fontHandler)

	// Radius scale.
	c.RegisterPrefix("rounded-", func(rest, arbitrary string, negative bool) []Declaration {
		if negative {
			return nil
		}
		if arbitrary != "" {
			return []Declaration{{Property: "border-radius", Value: arbitrary}}
		}
		if v, ok := radiusScale[rest]; ok {
			return []Declaration{{Property: "border-radius", Value: v}}
		}
		return nil
	})

	// Opacity and stacking.
	c.RegisterPrefix("opacity-", func(rest, arbitrary string, negative bool) []Declaration {
		if negative {
			return nil
		}
		if arbitrary != "" {
			return []Declaration{{Property: "opacity", Value: arbitrary}}
		}
		if v, ok := opacityScale[rest]; ok {
			return []Declaration{{Property: "opacity", Value: v}}
		}
		return nil
	})
	c.RegisterPrefix("z-", func(rest, arbitrary string, negative bool) []Declaration {
		v := arbitrary
		if v == "" {
			var ok bool
			if v, ok = zIndexScale[rest]; !ok {
				return nil
			}
		}
		if negative {
			var ok bool
			if v, ok = negate(v); !ok {
				return nil
			}
		}
		return []Declaration{{Property: "z-index", Value: v}}
	})

	// Transforms. Negative values are the common case here.
	c.RegisterPrefix("translate-x-", translateHandler("translateX"))
	c.RegisterPrefix("translate-y-", translateHandler("translateY"))
}

// spacingHandler resolves the shared spacing scale (or an arbitrary value)
// onto one or more properties, negating when the utility carries a leading
// minus.
func spacingHandler(props ...string) PrefixHandler {
	return func(rest, arbitrary string, negative bool) []Declaration {
		v := arbitrary
		if v == "" {
			var ok bool
			if v, ok = spacingScale[rest]; !ok {
				return nil
			}
		}
		if negative {
			var ok bool
			if v, ok = negate(v); !ok {
				return nil
			}
		}
		decls := make([]Declaration, len(props))
		for i, p := range props {
			decls[i] = Declaration{Property: p, Value: v}
		}
		return decls
	}
}

// sizingHandler is spacingHandler plus the sizing keywords (full, screen,
// min, max, fit, auto).
func sizingHandler(prop, screen string) PrefixHandler {
	spacing := spacingHandler(prop)
	return func(rest, arbitrary string, negative bool) []Declaration {
		if negative {
			return nil
		}
		if arbitrary == "" {
			if v, ok := sizingKeywords[rest]; ok {
				return []Declaration{{Property: prop, Value: v}}
			}
			if rest == "screen" {
				return []Declaration{{Property: prop, Value: screen}}
			}
		}
		return spacing(rest, arbitrary, false)
	}
}

func colorHandler(prop string) PrefixHandler {
	return func(rest, arbitrary string, negative bool) []Declaration {
		if negative {
			return nil
		}
		if arbitrary != "" {
			return []Declaration{{Property: prop, Value: arbitrary}}
		}
		if v, ok := colorPalette[rest]; ok {
			return []Declaration{{Property: prop, Value: v}}
		}
		return nil
	}
}

// textHandler resolves text-* into either a font-size pair or a color.
func textHandler(rest, arbitrary string, negative bool) []Declaration {
	if negative {
		return nil
	}
	if arbitrary != "" {
		return []Declaration{{Property: "font-size", Value: arbitrary}}
	}
	if size, ok := fontSizeScale[rest]; ok {
		return []Declaration{
			{Property: "font-size", Value: size.size},
			{Property: "line-height", Value: size.lineHeight},
		}
	}
	if v, ok := colorPalette[rest]; ok {
		return []Declaration{{Property: "color", Value: v}}
	}
	return nil
}

func fontHandler(rest, arbitrary string, negative bool) []Declaration {
	if negative {
		return nil
	}
	if arbitrary != "" {
		return []Declaration{{Property: "font-family", Value: arbitrary}}
	}
	if v, ok := fontWeightScale[rest]; ok {
		return []Declaration{{Property: "font-weight", Value: v}}
	}
	return nil
}

func translateHandler(fn string) PrefixHandler {
	return func(rest, arbitrary string, negative bool) []Declaration {
		v := arbitrary
		if v == "" {
			var ok bool
			if v, ok = spacingScale[rest]; !ok {
				return nil
			}
		}
		if negative {
			var ok bool
			if v, ok = negate(v); !ok {
				return nil
			}
		}
		return []Declaration{{Property: "transform", Value: fn + "(" + v + ")"}}
	}
}

// negate flips the sign of a CSS length. Zero stays zero. Keywords like
// auto have no negative form and report ok=false.
func negate(v string) (negated string, ok bool) {
	if v == "0" || v == "0px" || v == "0rem" {
		return v, true
	}
	if strings.HasPrefix(v, "-") {
		return v[1:], true
	}
	if v == "" || (v[0] != '.' && (v[0] < '0' || v[0] > '9')) {
		return "", false
	}
	return "-" + v, true
}

var spacingScale = map[string]string{
	"0": "0px", "px": "1px",
	"0.5": "0.125rem", "1": "0.25rem", "1.5": "0.375rem", "2": "0.5rem",
	"2.5": "0.625rem", "3": "0.75rem", "3.5": "0.875rem", "4": "1rem",
	"5": "1.25rem", "6": "1.5rem", "7": "1.75rem", "8": "2rem",
	"9": "2.25rem", "10": "2.5rem", "11": "2.75rem", "12": "3rem",
	"14": "3.5rem", "16": "4rem", "20": "5rem", "24": "6rem",
	"28": "7rem", "32": "8rem", "36": "9rem", "40": "10rem",
	"44": "11rem", "48": "12rem", "52": "13rem", "56": "14rem",
	"60": "15rem", "64": "16rem", "72": "18rem", "80": "20rem", "96": "24rem",
	"auto": "auto",
}

var sizingKeywords = map[string]string{
	"full": "100%",
	"min":  "min-content",
	"max":  "max-content",
	"fit":  "fit-content",
	"auto": "auto",
}

var radiusScale = map[string]string{
	"sm": "0.125rem", "md": "0.375rem", "lg": "0.5rem",
	"xl": "0.75rem", "2xl": "1rem", "3xl": "1.5rem",
}

var opacityScale = map[string]string{
	"0": "0", "5": "0.05", "10": "0.1", "20": "0.2", "25": "0.25",
	"30": "0.3", "40": "0.4", "50": "0.5", "60": "0.6", "70": "0.7",
	"75": "0.75", "80": "0.8", "90": "0.9", "95": "0.95", "100": "1",
}

var zIndexScale = map[string]string{
	"0": "0", "10": "10", "20": "20", "30": "30", "40": "40", "50": "50",
	"auto": "auto",
}

var fontWeightScale = map[string]string{
	"thin": "100", "light": "300", "normal": "400", "medium": "500",
	"semibold": "600", "bold": "700", "extrabold": "800", "black": "900",
}

type fontSize struct {
	size       string
	lineHeight string
}

var fontSizeScale = map[string]fontSize{
	"xs":   {"0.75rem", "1rem"},
	"sm":   {"0.875rem", "1.25rem"},
	"base": {"1rem", "1.5rem"},
	"lg":   {"1.125rem", "1.75rem"},
	"xl":   {"1.25rem", "1.75rem"},
	"2xl":  {"1.5rem", "2rem"},
	"3xl":  {"1.875rem", "2.25rem"},
	"4xl":  {"2.25rem", "2.5rem"},
}

var colorPalette = map[string]string{
	"inherit":     "inherit",
	"current":     "currentColor",
	"transparent": "transparent",
	"white":       "#ffffff",
	"black":       "#000000",

	"gray-50": "#f9fafb", "gray-100": "#f3f4f6", "gray-200": "#e5e7eb",
	"gray-300": "#d1d5db", "gray-400": "#9ca3af", "gray-500": "#6b7280",
	"gray-600": "#4b5563", "gray-700": "#374151", "gray-800": "#1f2937",
	"gray-900": "#111827",

	"red-100": "#fee2e2", "red-300": "#fca5a5", "red-500": "#ef4444",
	"red-700": "#b91c1c", "red-900": "#7f1d1d",

	"blue-100": "#dbeafe", "blue-300": "#93c5fd", "blue-500": "#3b82f6",
	"blue-700": "#1d4ed8", "blue-900": "#1e3a8a",

	"green-100": "#dcfce7", "green-300": "#86efac", "green-500": "#22c55e",
	"green-700": "#15803d", "green-900": "#14532d",

	"yellow-100": "#fef9c3", "yellow-300": "#fde047", "yellow-500": "#eab308",
	"yellow-700": "#a16207", "yellow-900": "#713f12",

	"indigo-100": "#e0e7ff", "indigo-300": "#a5b4fc", "indigo-500": "#6366f1",
	"indigo-700": "#4338ca", "indigo-900": "#312e81",
}
