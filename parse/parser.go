package parse

import (
	"unicode/utf8"

	"github.com/aretext/parsedoc/grammar"
	"github.com/aretext/parsedoc/text"
)

// Parser is the reentrant parse driver. It reads the text buffer by
// offset and consults a memo cursor over the previous tree by pre-order
// position. The cursor only moves forward, so it visits each previous
// node at most once per reparse; the text offset is restored whenever a
// rule fails, so text around a failed rule may be read more than once.
type Parser struct {
	buf      *text.Buffer
	gram     *grammar.Grammar
	editSpan text.Span
	cursor   *Cursor
	offset   uint64
}

// NewParser returns a parser over buf using gram, consulting prevRoot (may
// be nil) as a memo source for the region outside editSpan.
func NewParser(buf *text.Buffer, gram *grammar.Grammar, prevRoot *Node, editSpan text.Span) *Parser {
	return &Parser{
		buf:      buf,
		gram:     gram,
		editSpan: editSpan,
		cursor:   NewCursor(prevRoot),
	}
}

// Parse runs rule idx starting at the parser's current offset: a memo
// lookup first, then — on a miss — the rule's own step table, consuming
// from the text buffer for a Symbol rule or recursing for an Automaton
// rule. A rule that reaches an accepting step without advancing the
// offset fails (the non-advancing parse guard), preventing infinite
// recursion on a nullable rule.
func (p *Parser) Parse(idx grammar.RuleIndex) (*Node, bool) {
	start := p.offset

	if n, ok := p.lookupMemo(idx, start); ok {
		p.offset = n.Span.Hi
		return n, true
	}

	rule := p.gram.Rule(idx)

	var subs []*Node
	var accepted bool
	switch rule.Kind {
	case grammar.KindSymbol:
		accepted = p.runSymbol(rule)
	case grammar.KindAutomaton:
		subs, accepted = p.runAutomaton(rule)
	}

	if !accepted {
		p.offset = start
		return nil, false
	}
	if p.offset == start {
		// Non-advancing parse guard.
		return nil, false
	}

	return &Node{
		Span: text.Span{Lo: start, Hi: p.offset},
		Rule: idx,
		Subs: subs,
	}, true
}

// lookupMemo advances the cursor past any previously-visited node whose
// span starts before start, then checks whether the node now at the front
// of the walk can stand in for a fresh parse of idx at start: its span
// must begin exactly at start, its rule must match, and its span must lie
// strictly outside the edit.
func (p *Parser) lookupMemo(idx grammar.RuleIndex, start uint64) (*Node, bool) {
	var n *Node
	for {
		n = p.cursor.Peek()
		if n == nil {
			return nil, false
		}
		if n.Span.Lo < start {
			p.cursor.Advance()
			continue
		}
		break
	}
	if n.Span.Lo != start || n.Rule != idx {
		return nil, false
	}
	if !(n.Span.Hi < p.editSpan.Lo || n.Span.Lo > p.editSpan.Hi) {
		return nil, false
	}
	return n, true
}

// runSymbol drives a Symbol rule's character DFA from the parser's current
// offset, consuming matching runes from the buffer and following the
// first edge whose range contains the next rune. It reports whether the
// DFA stopped on an accepting step.
func (p *Parser) runSymbol(rule *grammar.Rule) bool {
	step := 0
	for {
		r, ok := p.buf.ReadAt(p.offset)
		next, matched := -1, false
		if ok {
			for _, e := range rule.SymbolSteps[step].Edges {
				if e.Label.Contains(r) {
					next, matched = e.Next, true
					break
				}
			}
		}
		if !matched {
			break
		}
		p.offset += uint64(utf8.RuneLen(r))
		step = next
	}
	return rule.SymbolSteps[step].Accepting
}

// runAutomaton drives an Automaton rule's rule-reference DFA, recursively
// parsing the first child rule (in edge order) that succeeds at the
// current offset. It reports the matched children and whether the DFA
// stopped on an accepting step.
func (p *Parser) runAutomaton(rule *grammar.Rule) ([]*Node, bool) {
	var subs []*Node
	step := 0
	for {
		matched := false
		for _, e := range rule.AutomatonSteps[step].Edges {
			if child, ok := p.Parse(e.Label); ok {
				subs = append(subs, child)
				step = e.Next
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	return subs, rule.AutomatonSteps[step].Accepting
}

// Parse is the top-level entry point: it parses the root rule starting at
// offset 0 and returns a best-effort prefix tree (the returned node's
// span may fall short of the buffer's full length if no rule matches
// past some point), or nil if the root rule fails to match anything at
// all.
func Parse(buf *text.Buffer, gram *grammar.Grammar, prevRoot *Node, editSpan text.Span) *Node {
	p := NewParser(buf, gram, prevRoot, editSpan)
	n, ok := p.Parse(grammar.RootRule)
	if !ok {
		return nil
	}
	return n
}
