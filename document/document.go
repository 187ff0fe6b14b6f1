// Package document orchestrates a text buffer and its parse tree across a
// sequence of edits: edit the text, shift the previous tree's spans to
// account for the edit, then reparse using the shifted tree as a memo
// source.
package document

import (
	"github.com/pkg/errors"

	"github.com/aretext/parsedoc/grammar"
	"github.com/aretext/parsedoc/parse"
	"github.com/aretext/parsedoc/text"
)

// Document owns a text buffer and the current root node. It is created
// empty with a grammar and mutated only through Edit.
type Document struct {
	buf  *text.Buffer
	gram *grammar.Grammar
	root *parse.Node
}

// New returns an empty document: an empty buffer and a placeholder root
// node referencing the grammar's root rule.
func New(gram *grammar.Grammar) *Document {
	return &Document{
		buf:  text.NewBuffer(),
		gram: gram,
		root: parse.EmptyRoot(),
	}
}

// Text returns the document's current text buffer.
func (d *Document) Text() *text.Buffer {
	return d.buf
}

// Root returns the document's current root node.
func (d *Document) Root() *parse.Node {
	return d.root
}

// Grammar returns the grammar the document was created with.
func (d *Document) Grammar() *grammar.Grammar {
	return d.gram
}

// Edit replaces the half-open byte range [span.Lo, span.Hi) with
// replacement, then shifts and reparses the tree around the edit.
//
// If the root rule fails to match anything against the edited text, the
// previous root is left in place: a grammar that cannot match its own
// input is a grammar defect, not something this document silently papers
// over with a degenerate empty root.
func (d *Document) Edit(span text.Span, replacement string) error {
	if err := d.buf.Edit(span, replacement); err != nil {
		return errors.Wrap(err, "document: edit text")
	}

	removed := span.Hi - span.Lo
	added := uint64(len(replacement))
	delta := int64(added) - int64(removed)
	start := span.Lo
	shiftNode(d.root, start, delta)

	if d.buf.ByteLen() == 0 {
		d.root = parse.EmptyRoot()
		return nil
	}

	editSpan := text.Span{Lo: span.Lo, Hi: span.Lo + added}
	if root := parse.Parse(d.buf, d.gram, d.root, editSpan); root != nil {
		d.root = root
	}
	return nil
}

// shiftNode adjusts every node's span in place to account for an edit at
// [start, start+removed) replaced by added bytes. It requires the tree to
// be uniquely owned by the caller, which Document guarantees by never
// publishing intermediate trees.
func shiftNode(n *parse.Node, start uint64, delta int64) {
	switch {
	case n.Span.Lo > start:
		n.Span.Lo = uint64(int64(n.Span.Lo) + delta)
		n.Span.Hi = uint64(int64(n.Span.Hi) + delta)
	case n.Span.Lo == start:
		n.Span.Hi = uint64(int64(n.Span.Hi) + delta)
	default: // n.Span.Lo < start
		if n.Span.Hi >= start {
			n.Span.Hi = uint64(int64(n.Span.Hi) + delta)
		}
	}
	for _, c := range n.Subs {
		shiftNode(c, start, delta)
	}
}
