package windc

import (
	"strings"
	"sync"
)

// RuleStore accumulates composed rules across tokens and files, collapsing
// exact duplicates and preserving first-insertion order. Add is safe for
// concurrent use; alternatively each worker can fill a private store and the
// stores can be merged in worker-index order, which keeps emission
// deterministic regardless of completion order.
type RuleStore struct {
	mu    sync.Mutex
	index map[string]struct{}
	rules []Rule
}

// NewRuleStore returns an empty rule store.
func NewRuleStore() *RuleStore {
	return &RuleStore{index: make(map[string]struct{})}
}

// ruleKey builds the composite dedup identity: at-rule stack, selector,
// declarations, and importance.
func ruleKey(r Rule) string {
	var b strings.Builder
	for _, at := range r.AtRules {
		b.WriteString(at)
		b.WriteByte('\x00')
	}
	b.WriteByte('\x01')
	b.WriteString(r.Selector)
	b.WriteByte('\x01')
	for _, d := range r.Declarations {
		b.WriteString(d.Property)
		b.WriteByte('\x00')
		b.WriteString(d.Value)
		b.WriteByte('\x00')
	}
	if r.Important {
		b.WriteByte('!')
	}
	return b.String()
}

// Add inserts a rule unless an identical rule is already present. It
// reports whether the rule was inserted (first writer wins).
func (s *RuleStore) Add(rule Rule) bool {
	key := ruleKey(rule)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.index[key]; dup {
		return false
	}
	s.index[key] = struct{}{}
	s.rules = append(s.rules, rule)
	return true
}

// Merge appends other's rules in their insertion order, dropping rules this
// store already holds.
func (s *RuleStore) Merge(other *RuleStore) {
	other.mu.Lock()
	incoming := append([]Rule(nil), other.rules...)
	other.mu.Unlock()
	for _, r := range incoming {
		s.Add(r)
	}
}

// Len returns the number of distinct rules stored.
func (s *RuleStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rules)
}

// Rules returns a copy of the stored rules in insertion order.
func (s *RuleStore) Rules() []Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Rule(nil), s.rules...)
}

// Reset discards all rules so the store can serve a fresh build.
func (s *RuleStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = make(map[string]struct{})
	s.rules = nil
}

// Emit renders the stylesheet in insertion order. Consecutive rules sharing
// an identical at-rule stack are grouped under one nested block so the same
// context is not reopened repeatedly. Importance is applied per declaration.
func (s *RuleStore) Emit() string {
	rules := s.Rules()

	var b strings.Builder
	for i := 0; i < len(rules); {
		j := i
		for j < len(rules) && equalAtRules(rules[j].AtRules, rules[i].AtRules) {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		emitGroup(&b, rules[i].AtRules, rules[i:j])
		i = j
	}
	return b.String()
}

func equalAtRules(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// emitGroup writes one block of rules wrapped in their shared at-rule stack,
// outermost context first.
func emitGroup(b *strings.Builder, atRules []string, rules []Rule) {
	indent := ""
	for _, at := range atRules {
		b.WriteString(indent)
		b.WriteString(at)
		b.WriteString(" {\n")
		indent += "  "
	}

	for ri, r := range rules {
		if ri > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteString(r.Selector)
		b.WriteString(" {\n")
		for _, d := range r.Declarations {
			b.WriteString(indent)
			b.WriteString("  ")
			b.WriteString(d.Property)
			b.WriteString(": ")
			b.WriteString(d.Value)
			if r.Important {
				b.WriteString(" !important")
			}
			b.WriteString(";\n")
		}
		b.WriteString(indent)
		b.WriteString("}\n")
	}

	for i := len(atRules) - 1; i >= 0; i-- {
		indent = indent[:2*i]
		b.WriteString(indent)
		b.WriteString("}\n")
	}
}
