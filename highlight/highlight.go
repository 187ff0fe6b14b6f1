// Package highlight walks a document's node tree in pre-order and emits
// styled spans for nodes whose rule carries a display attribute. It is a
// rendering consumer, kept deliberately separate from the core parser and
// document packages.
package highlight

import (
	"unicode/utf8"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/aretext/parsedoc/grammar"
	"github.com/aretext/parsedoc/parse"
	"github.com/aretext/parsedoc/text"
)

// Span is a styled region of text: a byte range, its display role, and the
// terminal column width of the text it covers.
type Span struct {
	ByteSpan    text.Span
	Role        grammar.TokenRole
	ColumnWidth uint64
}

// Walk returns the styled spans for every node in root (in pre-order)
// whose rule's role is not RoleNone. Internal nodes without their own role
// (for example an Automaton grouping rule) are skipped; their children are
// still visited.
func Walk(root *parse.Node, gram *grammar.Grammar, buf *text.Buffer) []Span {
	var spans []Span
	it := parse.NewIterator(root)
	for n := it.Peek(); n != nil; n = it.Peek() {
		it.Advance()
		role := gram.Rule(n.Rule).Role
		if role == grammar.RoleNone {
			continue
		}
		spans = append(spans, Span{
			ByteSpan:    n.Span,
			Role:        role,
			ColumnWidth: columnWidth(buf, n.Span),
		})
	}
	return spans
}

// columnWidth returns the terminal column width of the text covered by
// span, summing each rune's width as reported by go-runewidth. Tabs,
// newlines and other control characters count as width 0; no tab-stop
// layout is applied.
func columnWidth(buf *text.Buffer, span text.Span) uint64 {
	var width uint64
	for offset := span.Lo; offset < span.Hi; {
		r, ok := buf.ReadAt(offset)
		if !ok {
			break
		}
		w := runewidth.RuneWidth(r)
		if w < 0 {
			w = 0
		}
		width += uint64(w)
		offset += uint64(utf8.RuneLen(r))
	}
	return width
}
