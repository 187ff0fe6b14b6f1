package parse

// Iterator is a pre-order walker over a node tree, exposed for external
// consumers such as rendering. Unlike Cursor, which is an internal memo
// source that starts at a root's first child, Iterator yields the root
// itself before descending into its children.
type Iterator struct {
	stack []*Node
}

// NewIterator returns an iterator over root and its descendants in
// pre-order. A nil root yields an exhausted iterator.
func NewIterator(root *Node) *Iterator {
	it := &Iterator{}
	if root != nil {
		it.stack = append(it.stack, root)
	}
	return it
}

// Peek returns the next unvisited node without consuming it, or nil if the
// walk is exhausted.
func (it *Iterator) Peek() *Node {
	if len(it.stack) == 0 {
		return nil
	}
	return it.stack[len(it.stack)-1]
}

// Advance moves past the node last returned by Peek, queuing its children
// (left to right) to be visited next.
func (it *Iterator) Advance() {
	if len(it.stack) == 0 {
		return
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	for i := len(n.Subs) - 1; i >= 0; i-- {
		it.stack = append(it.stack, n.Subs[i])
	}
}
