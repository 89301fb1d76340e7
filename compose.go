package windc

import (
	"sort"
	"strings"
)

// resolvedVariant pairs a parsed variant occurrence with its registry (or
// synthetic) definition.
type resolvedVariant struct {
	ref VariantReference
	def VariantDefinition
}

// Compose turns a parsed class name plus its catalog declarations into a
// CSS rule. Context-affecting variants (media, print, supports, responsive)
// become the at-rule stack ordered outermost first by descending precedence.
// Selector-affecting variants apply to the base class selector in ascending
// precedence order, preserving syntactic order for ties.
func Compose(parsed ParsedClassName, decls []Declaration) (Rule, error) {
	selectorVariants := make([]resolvedVariant, 0, len(parsed.Variants))
	contextVariants := make([]resolvedVariant, 0, 2)

	for _, ref := range parsed.Variants {
		rv, err := resolveVariant(ref)
		if err != nil {
			return Rule{}, err
		}
		switch rv.def.Category {
		case CategoryMediaQuery, CategoryPrint, CategorySupportsQuery, CategoryResponsive:
			contextVariants = append(contextVariants, rv)
		default:
			selectorVariants = append(selectorVariants, rv)
		}
	}

	sort.SliceStable(contextVariants, func(i, j int) bool {
		return contextVariants[i].def.Precedence > contextVariants[j].def.Precedence
	})
	var atRules []string
	for _, rv := range contextVariants {
		atRules = append(atRules, rv.def.Fragment)
	}

	sort.SliceStable(selectorVariants, func(i, j int) bool {
		return selectorVariants[i].def.Precedence < selectorVariants[j].def.Precedence
	})

	selector := "." + EscapeClassName(parsed.Utility)
	for _, rv := range selectorVariants {
		selector = applySelectorVariant(selector, rv)
	}

	return Rule{
		Selector:     selector,
		AtRules:      atRules,
		Declarations: decls,
		Important:    parsed.Important,
	}, nil
}

// resolveVariant looks up a variant reference in the registry. Bracketed
// literals get a synthetic Arbitrary definition at the pseudo-class band
// maximum (innermost selector rewrites). Unknown non-bracket names fall back
// to a pass-through pseudo-class suffix at the band minimum.
func resolveVariant(ref VariantReference) (resolvedVariant, error) {
	if ref.Arbitrary {
		_, maxArb := PrecedenceBand(CategoryArbitrary)
		return resolvedVariant{ref: ref, def: VariantDefinition{
			Name:       ref.RawName,
			Category:   CategoryArbitrary,
			Fragment:   strings.TrimSuffix(strings.TrimPrefix(ref.RawName, "["), "]"),
			Precedence: maxArb,
		}}, nil
	}

	def, ok := LookupVariant(ref.RawName)
	if !ok {
		minPC, _ := PrecedenceBand(CategoryPseudoClass)
		def = VariantDefinition{
			Name:       ref.RawName,
			Category:   CategoryPseudoClass,
			Fragment:   ":" + ref.RawName,
			Precedence: minPC,
		}
	}
	if ref.AncestorName != "" && def.Category != CategoryState {
		return resolvedVariant{}, &ComposeError{
			Variant: ref.RawName,
			Reason:  "ancestor name on a variant with no ancestor concept",
		}
	}
	return resolvedVariant{ref: ref, def: def}, nil
}

// applySelectorVariant folds one selector-affecting variant into the
// accumulated selector.
func applySelectorVariant(selector string, rv resolvedVariant) string {
	switch rv.def.Category {
	case CategoryState:
		return ancestorPrefix(rv) + selector
	case CategoryArbitrary:
		// The bracketed template rewrites the whole selector; & stands for
		// the selector composed so far. Underscores follow arbitrary-value
		// spacing rules.
		template := substituteUnderscores(rv.def.Fragment)
		return strings.ReplaceAll(template, "&", selector)
	default:
		return selector + rv.def.Fragment
	}
}

// ancestorPrefix builds the combinator prefix for a group/peer variant.
// group variants react to any ancestor (descendant combinator); peer
// variants react to a preceding sibling. A named variant like
// group/sidebar-hover targets the .group\/sidebar ancestor class.
func ancestorPrefix(rv resolvedVariant) string {
	family := rv.def.Name
	if idx := strings.IndexByte(family, '-'); idx >= 0 {
		family = family[:idx]
	}

	anc := "." + family
	if rv.ref.AncestorName != "" {
		anc += `\/` + EscapeClassName(rv.ref.AncestorName)
	}
	anc += rv.def.Fragment

	if family == "peer" {
		return anc + " ~ "
	}
	return anc + " "
}

// EscapeClassName escapes a utility class literal for use in a CSS class
// selector. Every ASCII byte outside [A-Za-z0-9_-] is backslash-escaped;
// multi-byte runes pass through unchanged.
func EscapeClassName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 8)
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c >= 0x80:
			b.WriteByte(c)
		default:
			b.WriteByte('\\')
			b.WriteByte(c)
		}
	}
	return b.String()
}
