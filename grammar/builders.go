package grammar

// Builder sugar for the common step-table shapes used by the grammars in
// the languages package. These are authoring convenience over the literal
// Step/Edge representation in rule.go and do not change the first-match
// DFA semantics a Rule's step table implements.

// Chars returns an inclusive character range edge label.
func Chars(lo, hi rune) CharRange {
	return CharRange{Lo: lo, Hi: hi}
}

// Only returns a single-character range edge label.
func Only(r rune) CharRange {
	return CharRange{Lo: r, Hi: r}
}

// RepeatChars builds the single-step, self-looping shape used by rules like
// whitespace or punctuation: any of the given ranges may repeat any number
// of times (including zero), and the rule is accepting at every point.
func RepeatChars(ranges ...CharRange) []Step[CharRange] {
	edges := make([]Edge[CharRange], len(ranges))
	for i, r := range ranges {
		edges[i] = Edge[CharRange]{Label: r, Next: 0}
	}
	return []Step[CharRange]{{Edges: edges, Accepting: true}}
}

// StartThenLoopChars builds a two-step rule: the first character must match
// one of start, then any number of characters (possibly zero) matching cont
// may follow. This is the shape used by an identifier rule whose first
// character excludes digits but whose continuation characters allow them.
func StartThenLoopChars(start, cont []CharRange) []Step[CharRange] {
	startEdges := make([]Edge[CharRange], len(start))
	for i, r := range start {
		startEdges[i] = Edge[CharRange]{Label: r, Next: 1}
	}
	contEdges := make([]Edge[CharRange], len(cont))
	for i, r := range cont {
		contEdges[i] = Edge[CharRange]{Label: r, Next: 1}
	}
	return []Step[CharRange]{
		{Edges: startEdges, Accepting: false},
		{Edges: contEdges, Accepting: true},
	}
}

// Literal builds a two-step rule that consumes exactly one occurrence of r
// and nothing else, the shape used by single-character punctuation such as
// an '=' separator.
func Literal(r rune) []Step[CharRange] {
	return []Step[CharRange]{
		{Edges: []Edge[CharRange]{{Label: Only(r), Next: 1}}, Accepting: false},
		{Accepting: true},
	}
}

// RepeatRules builds the single-step, self-looping shape used by an
// Automaton rule that matches any number of occurrences (including zero)
// of the given child rules, tried in the order given.
func RepeatRules(children ...RuleIndex) []Step[RuleIndex] {
	edges := make([]Edge[RuleIndex], len(children))
	for i, idx := range children {
		edges[i] = Edge[RuleIndex]{Label: idx, Next: 0}
	}
	return []Step[RuleIndex]{{Edges: edges, Accepting: true}}
}

// Seq builds a linear chain of required rule references: rule[0] then
// rule[1] then ... then rule[n-1], accepting only once every rule in the
// sequence has matched.
func Seq(children ...RuleIndex) []Step[RuleIndex] {
	steps := make([]Step[RuleIndex], len(children)+1)
	for i, idx := range children {
		steps[i] = Step[RuleIndex]{
			Edges:     []Edge[RuleIndex]{{Label: idx, Next: i + 1}},
			Accepting: false,
		}
	}
	steps[len(children)] = Step[RuleIndex]{Accepting: true}
	return steps
}

// SeqSkipping builds a chain like Seq, but tries skip ahead of each required
// rule at every step, so any run of skip matches occurring before a required
// rule is consumed rather than rejected. This is the shape used by a
// key/value entry rule whose separator may have surrounding whitespace.
func SeqSkipping(skip RuleIndex, children ...RuleIndex) []Step[RuleIndex] {
	steps := make([]Step[RuleIndex], len(children)+1)
	for i, idx := range children {
		steps[i] = Step[RuleIndex]{
			Edges: []Edge[RuleIndex]{
				{Label: skip, Next: i},
				{Label: idx, Next: i + 1},
			},
			Accepting: false,
		}
	}
	steps[len(children)] = Step[RuleIndex]{Accepting: true}
	return steps
}
