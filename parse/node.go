// Package parse implements the node tree, the pre-order memo cursor over a
// previous tree, and the reentrant parse driver.
package parse

import (
	"github.com/aretext/parsedoc/grammar"
	"github.com/aretext/parsedoc/text"
)

// Node is an immutable parse-tree record: a span, the rule that produced
// it, and its ordered children. Symbol-produced nodes have no children;
// Automaton-produced nodes have one child per matched edge.
//
// A Node may be shared between the previous and next trees across an
// edit: once a parse returns, its nodes are treated as shared-immutable
// and must not be mutated except by the document's shift pass, which
// requires unique ownership at the moment it runs.
type Node struct {
	Span text.Span
	Rule grammar.RuleIndex
	Subs []*Node
}

// IsLeaf reports whether the node has no children (a Symbol-produced node).
func (n *Node) IsLeaf() bool {
	return len(n.Subs) == 0
}

// EmptyRoot returns the placeholder root node for a document with no
// text: an empty span referencing the root rule.
func EmptyRoot() *Node {
	return &Node{Rule: grammar.RootRule}
}
