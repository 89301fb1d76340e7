package windc

import (
	"fmt"
	"strings"
)

// ParseClassName parses one raw utility class token into its parts:
// importance marker, variant chain, base utility, and optional arbitrary
// value. The scan is a single left-to-right pass with bracket-depth
// tracking; colons inside brackets are never split points.
//
// Malformed input degrades rather than fails where possible: empty variant
// segments are skipped, a trailing colon leaves the last non-empty segment
// as the utility, and an unterminated bracket treats the remainder of the
// token as a partial arbitrary value. Only empty or whitespace-only input
// (or a token that is nothing but colons) returns ErrInvalidClassName.
func ParseClassName(raw string) (ParsedClassName, error) {
	var parsed ParsedClassName

	if strings.TrimSpace(raw) == "" {
		return parsed, fmt.Errorf("%w: empty token", ErrInvalidClassName)
	}

	s := raw
	if s[0] == '!' {
		parsed.Important = true
		s = s[1:]
	}

	// Trailing bangs collapse into a single importance flag. A bang inside
	// an unterminated bracket belongs to the arbitrary value, so only strip
	// when the bracket nesting is balanced at that point.
	for strings.HasSuffix(s, "!") && bracketDepthBefore(s, len(s)-1) == 0 {
		parsed.Important = true
		s = s[:len(s)-1]
	}

	// Bare "!" is a degenerate success: importance with no utility.
	if s == "" {
		return parsed, nil
	}

	segments := splitTopLevel(s)

	// Drop empty segments (consecutive or leading/trailing colons).
	nonEmpty := segments[:0]
	for _, seg := range segments {
		if seg != "" {
			nonEmpty = append(nonEmpty, seg)
		}
	}
	if len(nonEmpty) == 0 {
		return ParsedClassName{}, fmt.Errorf("%w: %q has no utility segment", ErrInvalidClassName, raw)
	}

	for _, seg := range nonEmpty[:len(nonEmpty)-1] {
		parsed.Variants = append(parsed.Variants, parseVariantRef(seg))
	}

	body := nonEmpty[len(nonEmpty)-1]
	parsed.Utility = body

	if open := strings.IndexByte(body, '['); open >= 0 {
		value, _ := extractBracketValue(body, open)
		parsed.IsArbitrary = true
		parsed.ArbitraryValue = substituteUnderscores(value)
	}

	return parsed, nil
}

// splitTopLevel splits s at colons that occur outside brackets. Bracket
// depth is clamped at zero so malformed input with stray closing brackets
// still splits sensibly.
func splitTopLevel(s string) []string {
	var segments []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				segments = append(segments, s[start:i])
				start = i + 1
			}
		}
	}
	return append(segments, s[start:])
}

// bracketDepthBefore returns the clamped bracket depth after scanning s[:i].
func bracketDepthBefore(s string, i int) int {
	depth := 0
	for j := 0; j < i && j < len(s); j++ {
		switch s[j] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		}
	}
	return depth
}

// parseVariantRef interprets a single variant segment. A bracketed segment
// is an arbitrary selector kept verbatim. A segment containing "/" is a
// named ancestor variant: "group/sidebar-hover" rejoins to registry name
// "group-hover" with ancestor "sidebar". Unknown names are preserved as-is
// and resolved lazily at composition time.
func parseVariantRef(seg string) VariantReference {
	if strings.HasPrefix(seg, "[") && strings.HasSuffix(seg, "]") {
		return VariantReference{RawName: seg, Arbitrary: true}
	}
	if idx := strings.IndexByte(seg, '/'); idx >= 0 {
		name := seg[:idx]
		rem := seg[idx+1:]
		if dash := strings.LastIndexByte(rem, '-'); dash >= 0 {
			return VariantReference{
				RawName:      name + "-" + rem[dash+1:],
				AncestorName: rem[:dash],
			}
		}
		// No state suffix: "group/sidebar" names the bare ancestor variant.
		return VariantReference{RawName: name, AncestorName: rem}
	}
	return VariantReference{RawName: seg}
}

// extractBracketValue returns the contents of the bracket pair opening at
// index open in body, tracking nested pairs and quoted spans. Brackets
// inside single-, double-, or backtick-quoted spans do not affect nesting,
// and a backslash escapes the following character. When no matching close
// exists the remainder of the string is returned with terminated=false.
func extractBracketValue(body string, open int) (value string, terminated bool) {
	depth := 1
	var quote byte
	for i := open + 1; i < len(body); i++ {
		c := body[i]
		if c == '\\' && i+1 < len(body) {
			i++
			continue
		}
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return body[open+1 : i], true
			}
		}
	}
	return body[open+1:], false
}

// substituteUnderscores replaces underscores in an arbitrary value with
// literal spaces. Escaped underscores and underscores inside quoted spans
// pass through unchanged.
func substituteUnderscores(value string) string {
	if !strings.Contains(value, "_") {
		return value
	}
	var b strings.Builder
	b.Grow(len(value))
	var quote byte
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '\\' && i+1 < len(value) {
			b.WriteByte(c)
			b.WriteByte(value[i+1])
			i++
			continue
		}
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			b.WriteByte(c)
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
			b.WriteByte(c)
		case '_':
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
