package spantree

import "github.com/five82/prism/span"

const none = -1

// Tree is an arena of nodes mirroring one span tree.
type Tree struct {
	nodes []node
	root  int
}

type node struct {
	payload  span.Span
	parent   int
	children []int
	// slot is this node's slot name within a Slotted parent, ""
	// otherwise or when inserted without a slot.
	slot string
}

// Node addresses one node in a Tree. The zero Node is invalid.
type Node struct {
	t  *Tree
	id int
}

// FromSpan mirrors an immutable span tree into a fresh arena and
// returns the root node. Buildable spans are kept as payloads, not
// resolved, so transformers can match them by type.
func FromSpan(s span.Span) Node {
	t := &Tree{}
	t.root = t.add(s, none, "")
	return Node{t: t, id: t.root}
}

// FromSpanInto mirrors s into n's tree as a detached subtree, ready to
// be attached with Append or one of the insert operations.
func FromSpanInto(n Node, s span.Span) Node {
	return Node{t: n.t, id: n.t.add(s, none, "")}
}

// add appends a node for s and recursively mirrors its children.
func (t *Tree) add(s span.Span, parent int, slot string) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{payload: s, parent: parent, slot: slot})
	t.addChildren(id, s)
	return id
}

func (t *Tree) addChildren(id int, s span.Span) {
	switch v := s.(type) {
	case span.SingleChild:
		if c := v.Child(); c != nil {
			t.link(id, t.add(c, id, ""))
		}
	case span.MultiChild:
		for _, c := range v.Children() {
			if c != nil {
				t.link(id, t.add(c, id, ""))
			}
		}
	case span.Slotted:
		for _, name := range v.SlotNames() {
			if c := v.Slot(name); c != nil {
				t.link(id, t.add(c, id, name))
			}
		}
	}
}

func (t *Tree) link(parent, child int) {
	t.nodes[parent].children = append(t.nodes[parent].children, child)
}

// Span returns the node's current payload.
func (n Node) Span() span.Span { return n.t.nodes[n.id].payload }

// Root returns the root of the node's tree.
func (n Node) Root() Node { return Node{t: n.t, id: n.t.root} }

// Parent returns the parent node; ok is false at the root or on a
// detached node.
func (n Node) Parent() (Node, bool) {
	p := n.t.nodes[n.id].parent
	if p == none {
		return Node{}, false
	}
	return Node{t: n.t, id: p}, true
}

// Children returns the node's attached children in order.
func (n Node) Children() []Node {
	ids := n.t.nodes[n.id].children
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = Node{t: n.t, id: id}
	}
	return out
}

// Walk visits n and its descendants pre-order until fn returns false.
func (n Node) Walk(fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, id := range n.t.nodes[n.id].children {
		if !(Node{t: n.t, id: id}).Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node in pre-order whose payload satisfies
// pred. Absence is reported by ok, not an error.
func (n Node) Find(pred func(span.Span) bool) (Node, bool) {
	var found Node
	ok := false
	n.Walk(func(c Node) bool {
		if pred(c.Span()) {
			found, ok = c, true
			return false
		}
		return true
	})
	return found, ok
}

// FindFirst returns the first node in pre-order whose payload has
// type T.
func FindFirst[T span.Span](n Node) (Node, bool) {
	return n.Find(func(s span.Span) bool {
		_, ok := s.(T)
		return ok
	})
}

// FindAll returns every node in pre-order whose payload has type T.
func FindAll[T span.Span](n Node) []Node {
	var out []Node
	n.Walk(func(c Node) bool {
		if _, ok := c.Span().(T); ok {
			out = append(out, c)
		}
		return true
	})
	return out
}

func (n Node) sameTree(other Node) {
	if n.t != other.t {
		panic("spantree: node from a different tree")
	}
}
