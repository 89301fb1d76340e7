package windc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupVariant(t *testing.T) {
	tests := []struct {
		name     string
		category VariantCategory
		fragment string
	}{
		{"hover", CategoryPseudoClass, ":hover"},
		{"before", CategoryPseudoElement, "::before"},
		{"group-hover", CategoryState, ":hover"},
		{"peer-checked", CategoryState, ":checked"},
		{"dark", CategoryMediaQuery, "@media (prefers-color-scheme: dark)"},
		{"print", CategoryPrint, "@media print"},
		{"supports-grid", CategorySupportsQuery, "@supports (display: grid)"},
		{"aria-expanded", CategoryAriaAttribute, `[aria-expanded="true"]`},
		{"data-open", CategoryDataAttribute, "[data-open]"},
		{"rtl", CategoryDirectional, ":dir(rtl)"},
		{"md", CategoryResponsive, "@media (min-width: 768px)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, ok := LookupVariant(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.category, def.Category)
			assert.Equal(t, tt.fragment, def.Fragment)
		})
	}
}

func TestLookupVariant_Unknown(t *testing.T) {
	_, ok := LookupVariant("bogus")
	assert.False(t, ok)
}

func TestVariantTable_PrecedencesUniqueAndInBand(t *testing.T) {
	seenName := make(map[string]bool)
	seenPrec := make(map[uint]string)

	for _, def := range Variants() {
		assert.False(t, seenName[def.Name], "duplicate name %q", def.Name)
		seenName[def.Name] = true

		if prev, dup := seenPrec[def.Precedence]; dup {
			t.Errorf("precedence %d shared by %q and %q", def.Precedence, prev, def.Name)
		}
		seenPrec[def.Precedence] = def.Name

		lo, hi := PrecedenceBand(def.Category)
		assert.GreaterOrEqual(t, def.Precedence, lo, "%q below its band", def.Name)
		assert.LessOrEqual(t, def.Precedence, hi, "%q above its band", def.Name)
	}
}

func TestPrecedenceBands_TotallyOrdered(t *testing.T) {
	order := []VariantCategory{
		CategoryPseudoClass,
		CategoryPseudoElement,
		CategoryState,
		CategoryMediaQuery,
		CategoryPrint,
		CategorySupportsQuery,
		CategoryAriaAttribute,
		CategoryDataAttribute,
		CategoryDirectional,
		CategoryResponsive,
	}
	var prevHi uint
	for i, c := range order {
		lo, hi := PrecedenceBand(c)
		require.LessOrEqual(t, lo, hi, "band of %v inverted", c)
		if i > 0 {
			assert.Greater(t, lo, prevHi, "band of %v overlaps its predecessor", c)
		}
		prevHi = hi
	}
}

func TestPrecedenceBand_ArbitrarySitsAtPseudoClassMax(t *testing.T) {
	_, pcMax := PrecedenceBand(CategoryPseudoClass)
	lo, hi := PrecedenceBand(CategoryArbitrary)
	assert.Equal(t, pcMax, lo)
	assert.Equal(t, pcMax, hi)
}
