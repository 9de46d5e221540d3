// Package hint finds logging calls in a source tree and plans the inline
// dashboard annotations rendered next to them.
package hint

// Node is a read-only view of a parsed source node.
type Node interface {
	// Text is the exact source the node spans.
	Text() string
	// Offset is the byte offset of the node start.
	Offset() int
	// Children are the direct children in source order.
	Children() []Node
	// LastChild is the rightmost direct child, or nil for leaves.
	LastChild() Node
}

// Candidate is the detector verdict for one node.
type Candidate struct {
	Node     Node
	Accepted bool
}
