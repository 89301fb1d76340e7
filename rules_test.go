package windc

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func displayBlock(prop, val string) Rule {
	return Rule{
		Selector:     ".block",
		Declarations: []Declaration{{Property: prop, Value: val}},
	}
}

func TestRuleStore_AddDeduplicates(t *testing.T) {
	store := NewRuleStore()
	rule := displayBlock("display", "block")

	assert.True(t, store.Add(rule))
	for i := 0; i < 100; i++ {
		assert.False(t, store.Add(rule))
	}
	assert.Equal(t, 1, store.Len())
}

func TestRuleStore_IdentityIsComposite(t *testing.T) {
	base := Rule{
		Selector:     ".flex",
		Declarations: []Declaration{{Property: "display", Value: "flex"}},
	}

	variants := []Rule{
		base,
		{Selector: ".flex", AtRules: []string{"@media print"}, Declarations: base.Declarations},
		{Selector: ".flex\\!", Declarations: base.Declarations},
		{Selector: ".flex", Declarations: []Declaration{{Property: "display", Value: "inline-flex"}}},
		{Selector: ".flex", Declarations: base.Declarations, Important: true},
	}

	store := NewRuleStore()
	for _, r := range variants {
		assert.True(t, store.Add(r), "rule %+v should be distinct", r)
	}
	assert.Equal(t, len(variants), store.Len())
}

func TestRuleStore_InsertionOrderPreserved(t *testing.T) {
	store := NewRuleStore()
	var want []string
	for i := 0; i < 20; i++ {
		sel := fmt.Sprintf(".u%d", i)
		store.Add(Rule{Selector: sel, Declarations: []Declaration{{Property: "order", Value: "0"}}})
		want = append(want, sel)
	}

	var got []string
	for _, r := range store.Rules() {
		got = append(got, r.Selector)
	}
	assert.Equal(t, want, got)
}

func TestRuleStore_ConcurrentAdd(t *testing.T) {
	store := NewRuleStore()
	rule := displayBlock("display", "block")

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				store.Add(rule)
				store.Add(Rule{
					Selector:     fmt.Sprintf(".w%d-%d", w, i),
					Declarations: []Declaration{{Property: "order", Value: "0"}},
				})
			}
		}(w)
	}
	wg.Wait()

	// 1 shared rule plus 8*50 unique ones.
	assert.Equal(t, 1+8*50, store.Len())
}

func TestRuleStore_MergeKeepsOrderAndDedups(t *testing.T) {
	a := NewRuleStore()
	a.Add(displayBlock("display", "block"))
	a.Add(Rule{Selector: ".flex", Declarations: []Declaration{{Property: "display", Value: "flex"}}})

	b := NewRuleStore()
	b.Add(Rule{Selector: ".flex", Declarations: []Declaration{{Property: "display", Value: "flex"}}})
	b.Add(Rule{Selector: ".grid", Declarations: []Declaration{{Property: "display", Value: "grid"}}})

	a.Merge(b)

	var got []string
	for _, r := range a.Rules() {
		got = append(got, r.Selector)
	}
	assert.Equal(t, []string{".block", ".flex", ".grid"}, got)
}

func TestRuleStore_Reset(t *testing.T) {
	store := NewRuleStore()
	rule := displayBlock("display", "block")
	store.Add(rule)
	store.Reset()
	assert.Equal(t, 0, store.Len())
	assert.True(t, store.Add(rule), "reset store must accept previously seen rules")
}

func TestRuleStore_EmitPlainRule(t *testing.T) {
	store := NewRuleStore()
	store.Add(Rule{
		Selector: ".p-4",
		Declarations: []Declaration{
			{Property: "padding", Value: "1rem"},
		},
	})

	want := ".p-4 {\n  padding: 1rem;\n}\n"
	assert.Equal(t, want, store.Emit())
}

func TestRuleStore_EmitImportant(t *testing.T) {
	store := NewRuleStore()
	store.Add(Rule{
		Selector: `.px-4\!`,
		Declarations: []Declaration{
			{Property: "padding-left", Value: "1rem"},
			{Property: "padding-right", Value: "1rem"},
		},
		Important: true,
	})

	want := `.px-4\! {
  padding-left: 1rem !important;
  padding-right: 1rem !important;
}
`
	assert.Equal(t, want, store.Emit())
}

func TestRuleStore_EmitNestedAtRules(t *testing.T) {
	store := NewRuleStore()
	store.Add(Rule{
		Selector: ".text-white",
		AtRules: []string{
			"@media (min-width: 768px)",
			"@media (prefers-color-scheme: dark)",
		},
		Declarations: []Declaration{{Property: "color", Value: "#ffffff"}},
	})

	want := `@media (min-width: 768px) {
  @media (prefers-color-scheme: dark) {
    .text-white {
      color: #ffffff;
    }
  }
}
`
	assert.Equal(t, want, store.Emit())
}

func TestRuleStore_EmitGroupsConsecutiveContexts(t *testing.T) {
	store := NewRuleStore()
	md := []string{"@media (min-width: 768px)"}
	store.Add(Rule{Selector: ".flex", Declarations: []Declaration{{Property: "display", Value: "flex"}}})
	store.Add(Rule{Selector: ".md-a", AtRules: md, Declarations: []Declaration{{Property: "order", Value: "1"}}})
	store.Add(Rule{Selector: ".md-b", AtRules: md, Declarations: []Declaration{{Property: "order", Value: "2"}}})

	want := `.flex {
  display: flex;
}

@media (min-width: 768px) {
  .md-a {
    order: 1;
  }

  .md-b {
    order: 2;
  }
}
`
	assert.Equal(t, want, store.Emit())
}

func TestRuleStore_EmitDoesNotReorderSplitContexts(t *testing.T) {
	// A context that reappears after a different one opens again rather than
	// merging backwards; insertion order rules.
	store := NewRuleStore()
	md := []string{"@media (min-width: 768px)"}
	store.Add(Rule{Selector: ".md-a", AtRules: md, Declarations: []Declaration{{Property: "order", Value: "1"}}})
	store.Add(Rule{Selector: ".plain", Declarations: []Declaration{{Property: "order", Value: "2"}}})
	store.Add(Rule{Selector: ".md-b", AtRules: md, Declarations: []Declaration{{Property: "order", Value: "3"}}})

	out := store.Emit()
	require.Equal(t, 2, strings.Count(out, "@media (min-width: 768px) {"))
	first := strings.Index(out, ".md-a")
	mid := strings.Index(out, ".plain")
	last := strings.Index(out, ".md-b")
	assert.True(t, first < mid && mid < last)
}

func TestRuleStore_EmitEmpty(t *testing.T) {
	assert.Equal(t, "", NewRuleStore().Emit())
}
