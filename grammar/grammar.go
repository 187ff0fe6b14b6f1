// Package grammar represents a grammar as an indexed collection of rules,
// each a tiny state machine over either character ranges (Symbol) or nested
// rule references (Automaton).
package grammar

// RuleIndex identifies a rule within a Grammar. Rule identity is index
// equality within a fixed Grammar.
type RuleIndex int

// RootRule is the document root rule, always at index 0.
const RootRule RuleIndex = 0

// Grammar is a fixed-size indexed collection of rules, created before any
// parse and never mutated afterwards.
type Grammar struct {
	rules []*Rule
}

// New constructs a grammar from rules in index order. rules[0] becomes
// RootRule.
func New(rules ...*Rule) *Grammar {
	g := &Grammar{rules: rules}
	return g
}

// Rule returns the rule at idx.
func (g *Grammar) Rule(idx RuleIndex) *Rule {
	return g.rules[idx]
}

// NumRules returns the number of rules in the grammar.
func (g *Grammar) NumRules() int {
	return len(g.rules)
}
