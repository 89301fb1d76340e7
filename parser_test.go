package windc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassName(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		check func(*testing.T, ParsedClassName)
	}{
		{
			name: "plain utility",
			raw:  "bg-blue-500",
			check: func(t *testing.T, p ParsedClassName) {
				assert.False(t, p.Important)
				assert.Empty(t, p.Variants)
				assert.Equal(t, "bg-blue-500", p.Utility)
				assert.False(t, p.IsArbitrary)
			},
		},
		{
			name: "single variant",
			raw:  "hover:bg-red-500",
			check: func(t *testing.T, p ParsedClassName) {
				require.Len(t, p.Variants, 1)
				assert.Equal(t, "hover", p.Variants[0].RawName)
				assert.Equal(t, "bg-red-500", p.Utility)
			},
		},
		{
			name: "variant chain keeps syntactic order",
			raw:  "md:hover:focus:text-white",
			check: func(t *testing.T, p ParsedClassName) {
				require.Len(t, p.Variants, 3)
				assert.Equal(t, "md", p.Variants[0].RawName)
				assert.Equal(t, "hover", p.Variants[1].RawName)
				assert.Equal(t, "focus", p.Variants[2].RawName)
				assert.Equal(t, "text-white", p.Utility)
			},
		},
		{
			name: "trailing importance",
			raw:  "bg-blue-500!",
			check: func(t *testing.T, p ParsedClassName) {
				assert.True(t, p.Important)
				assert.Equal(t, "bg-blue-500", p.Utility)
			},
		},
		{
			name: "leading importance",
			raw:  "!bg-blue-500",
			check: func(t *testing.T, p ParsedClassName) {
				assert.True(t, p.Important)
				assert.Equal(t, "bg-blue-500", p.Utility)
			},
		},
		{
			name: "repeated trailing bangs collapse",
			raw:  "bg-blue-500!!!",
			check: func(t *testing.T, p ParsedClassName) {
				assert.True(t, p.Important)
				assert.Equal(t, "bg-blue-500", p.Utility)
			},
		},
		{
			name: "arbitrary value",
			raw:  "w-[200px]",
			check: func(t *testing.T, p ParsedClassName) {
				assert.True(t, p.IsArbitrary)
				assert.Equal(t, "200px", p.ArbitraryValue)
				assert.Equal(t, "w-[200px]", p.Utility)
			},
		},
		{
			name: "arbitrary value after trailing bang",
			raw:  "w-[200px]!",
			check: func(t *testing.T, p ParsedClassName) {
				assert.True(t, p.Important)
				assert.True(t, p.IsArbitrary)
				assert.Equal(t, "200px", p.ArbitraryValue)
				assert.Equal(t, "w-[200px]", p.Utility)
			},
		},
		{
			name: "underscores become spaces",
			raw:  "grid-cols-[repeat(2,_1fr)]",
			check: func(t *testing.T, p ParsedClassName) {
				assert.Equal(t, "repeat(2, 1fr)", p.ArbitraryValue)
			},
		},
		{
			name: "underscores inside quotes survive",
			raw:  "bg-[url('image_a.png')]",
			check: func(t *testing.T, p ParsedClassName) {
				assert.Equal(t, "url('image_a.png')", p.ArbitraryValue)
			},
		},
		{
			name: "escaped underscore survives",
			raw:  `w-[a\_b]`,
			check: func(t *testing.T, p ParsedClassName) {
				assert.Equal(t, `a\_b`, p.ArbitraryValue)
			},
		},
		{
			name: "nested brackets",
			raw:  "grid-[foo[bar]baz]",
			check: func(t *testing.T, p ParsedClassName) {
				assert.Equal(t, "foo[bar]baz", p.ArbitraryValue)
				assert.Equal(t, "grid-[foo[bar]baz]", p.Utility)
			},
		},
		{
			name: "bracket inside quoted span does not close",
			raw:  `content-['a]b']`,
			check: func(t *testing.T, p ParsedClassName) {
				assert.Equal(t, "'a]b'", p.ArbitraryValue)
			},
		},
		{
			name: "unterminated bracket recovers",
			raw:  "w-[200px",
			check: func(t *testing.T, p ParsedClassName) {
				assert.True(t, p.IsArbitrary)
				assert.Equal(t, "200px", p.ArbitraryValue)
				assert.Equal(t, "w-[200px", p.Utility)
			},
		},
		{
			name: "bang inside unterminated bracket is not importance",
			raw:  "w-[red!",
			check: func(t *testing.T, p ParsedClassName) {
				assert.False(t, p.Important)
				assert.Equal(t, "red!", p.ArbitraryValue)
			},
		},
		{
			name: "colon inside arbitrary value is not a split point",
			raw:  "bg-[url(http://example.com/a.png)]",
			check: func(t *testing.T, p ParsedClassName) {
				assert.Empty(t, p.Variants)
				assert.Equal(t, "url(http://example.com/a.png)", p.ArbitraryValue)
			},
		},
		{
			name: "consecutive colons are skipped",
			raw:  "hover::bg-red-500",
			check: func(t *testing.T, p ParsedClassName) {
				require.Len(t, p.Variants, 1)
				assert.Equal(t, "hover", p.Variants[0].RawName)
				assert.Equal(t, "bg-red-500", p.Utility)
			},
		},
		{
			name: "leading colon is skipped",
			raw:  ":hover:flex",
			check: func(t *testing.T, p ParsedClassName) {
				require.Len(t, p.Variants, 1)
				assert.Equal(t, "hover", p.Variants[0].RawName)
				assert.Equal(t, "flex", p.Utility)
			},
		},
		{
			name: "trailing colon degrades to utility",
			raw:  "hover:",
			check: func(t *testing.T, p ParsedClassName) {
				assert.Empty(t, p.Variants)
				assert.Equal(t, "hover", p.Utility)
			},
		},
		{
			name: "bare bang is a degenerate success",
			raw:  "!",
			check: func(t *testing.T, p ParsedClassName) {
				assert.True(t, p.Important)
				assert.Equal(t, "", p.Utility)
			},
		},
		{
			name: "named ancestor variant",
			raw:  "group/sidebar-hover:bg-red-500",
			check: func(t *testing.T, p ParsedClassName) {
				require.Len(t, p.Variants, 1)
				assert.Equal(t, "group-hover", p.Variants[0].RawName)
				assert.Equal(t, "sidebar", p.Variants[0].AncestorName)
				assert.Equal(t, "bg-red-500", p.Utility)
			},
		},
		{
			name: "named ancestor without state suffix",
			raw:  "group/nav:flex",
			check: func(t *testing.T, p ParsedClassName) {
				require.Len(t, p.Variants, 1)
				assert.Equal(t, "group", p.Variants[0].RawName)
				assert.Equal(t, "nav", p.Variants[0].AncestorName)
			},
		},
		{
			name: "arbitrary selector variant",
			raw:  "[&:nth-child(3)]:underline",
			check: func(t *testing.T, p ParsedClassName) {
				require.Len(t, p.Variants, 1)
				assert.True(t, p.Variants[0].Arbitrary)
				assert.Equal(t, "[&:nth-child(3)]", p.Variants[0].RawName)
				assert.Equal(t, "underline", p.Utility)
			},
		},
		{
			name: "negative utility keeps its sign",
			raw:  "-translate-x-[50px]",
			check: func(t *testing.T, p ParsedClassName) {
				assert.Equal(t, "-translate-x-[50px]", p.Utility)
				assert.Equal(t, "50px", p.ArbitraryValue)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseClassName(tt.raw)
			require.NoError(t, err)
			tt.check(t, parsed)
		})
	}
}

func TestParseClassName_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t", ":", "::"} {
		t.Run("invalid "+raw, func(t *testing.T) {
			_, err := ParseClassName(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidClassName)
		})
	}
}

func TestParseClassName_NonEmptyUtilityInvariant(t *testing.T) {
	// Every successful parse of a token that is not a bare importance
	// marker yields a non-empty utility.
	tokens := []string{
		"a", "hover:a", "a:", "md:hover:[&>p]:a-[1_2]", "-a-[x]", "!a!", "a!!",
	}
	for _, raw := range tokens {
		parsed, err := ParseClassName(raw)
		require.NoError(t, err, "token %q", raw)
		assert.NotEmpty(t, parsed.Utility, "token %q", raw)
	}
}
