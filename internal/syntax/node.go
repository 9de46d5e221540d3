// Package syntax supplies the source trees the hint engine walks.
package syntax

import "loglens/internal/hint"

// Node is an immutable tree node backed by a slice of the file content.
type Node struct {
	Kind  string
	Start int
	End   int
	Kids  []*Node
	src   string
}

var _ hint.Node = (*Node)(nil)

// NewNode builds a node over src[start:end]. It is mostly useful in tests.
func NewNode(src, kind string, start, end int, kids ...*Node) *Node {
	return &Node{Kind: kind, Start: start, End: end, Kids: kids, src: src}
}

// Text returns the source spanned by the node.
func (n *Node) Text() string {
	if n == nil || n.Start < 0 || n.End > len(n.src) || n.Start > n.End {
		return ""
	}
	return n.src[n.Start:n.End]
}

// Offset returns the byte offset of the node start.
func (n *Node) Offset() int {
	if n == nil {
		return 0
	}
	return n.Start
}

// Children returns the direct children.
func (n *Node) Children() []hint.Node {
	if n == nil || len(n.Kids) == 0 {
		return nil
	}
	out := make([]hint.Node, len(n.Kids))
	for i, k := range n.Kids {
		out[i] = k
	}
	return out
}

// LastChild returns the rightmost child or nil.
func (n *Node) LastChild() hint.Node {
	if n == nil || len(n.Kids) == 0 {
		return nil
	}
	return n.Kids[len(n.Kids)-1]
}

// Walk calls fn for n and its descendants in pre-order until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, k := range n.Kids {
		k.Walk(fn)
	}
}
