package hint

// fakeNode is a minimal Node for tests that do not need real source.
type fakeNode struct {
	text   string
	offset int
	kids   []*fakeNode
}

func leaf(text string, offset int) *fakeNode {
	return &fakeNode{text: text, offset: offset}
}

func branch(text string, offset int, kids ...*fakeNode) *fakeNode {
	return &fakeNode{text: text, offset: offset, kids: kids}
}

func (n *fakeNode) Text() string { return n.text }
func (n *fakeNode) Offset() int  { return n.offset }

func (n *fakeNode) Children() []Node {
	out := make([]Node, 0, len(n.kids))
	for _, k := range n.kids {
		out = append(out, k)
	}
	return out
}

func (n *fakeNode) LastChild() Node {
	if len(n.kids) == 0 {
		return nil
	}
	return n.kids[len(n.kids)-1]
}

// callNode mimics a parsed call: receiver/method, then the argument list.
func callNode(text string, offset int) *fakeNode {
	open := offset
	for i, r := range text {
		if r == '(' {
			open = offset + i
			break
		}
	}
	return branch(text, offset,
		leaf(text[:open-offset], offset),
		leaf(text[open-offset:], open),
	)
}

type recordingSink struct {
	offsets []int
	got     []Descriptor
}

func (s *recordingSink) AddInlineAnnotation(offset int, d Descriptor) {
	s.offsets = append(s.offsets, offset)
	s.got = append(s.got, d)
}
