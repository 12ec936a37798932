package spantree

import "github.com/five82/prism/span"

// Remove detaches n from its parent's child list. It reports whether
// the node was actually attached; removing twice is a no-op.
func (n Node) Remove() bool {
	nd := &n.t.nodes[n.id]
	if nd.parent == none {
		return false
	}
	p := &n.t.nodes[nd.parent]
	for i, id := range p.children {
		if id == n.id {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	nd.parent = none
	nd.slot = ""
	return true
}

// Append attaches child as n's last child, detaching it from any
// current parent first so a node never appears twice in the tree.
func (n Node) Append(child Node) {
	n.sameTree(child)
	n.noCycle(child)
	child.Remove()
	n.t.nodes[child.id].parent = n.id
	n.t.link(n.id, child.id)
}

// Prepend attaches child as n's first child.
func (n Node) Prepend(child Node) {
	n.insertAt(child, 0)
}

// InsertBefore inserts other as a sibling immediately before n. It is
// a no-op when n has no parent.
func (n Node) InsertBefore(other Node) {
	n.insertAsSibling(other, 0)
}

// InsertAfter inserts other as a sibling immediately after n. It is a
// no-op when n has no parent.
func (n Node) InsertAfter(other Node) {
	n.insertAsSibling(other, 1)
}

func (n Node) insertAsSibling(other Node, offset int) {
	n.sameTree(other)
	parent, ok := n.Parent()
	if !ok || other.id == n.id {
		return
	}
	parent.noCycle(other)
	other.Remove()
	ids := n.t.nodes[parent.id].children
	pos := len(ids)
	for i, id := range ids {
		if id == n.id {
			pos = i + offset
			break
		}
	}
	parent.insertAt(other, pos)
}

func (n Node) insertAt(child Node, pos int) {
	n.sameTree(child)
	n.noCycle(child)
	child.Remove()
	ids := n.t.nodes[n.id].children
	if pos < 0 {
		pos = 0
	}
	if pos > len(ids) {
		pos = len(ids)
	}
	ids = append(ids, 0)
	copy(ids[pos+1:], ids[pos:])
	ids[pos] = child.id
	n.t.nodes[n.id].children = ids
	n.t.nodes[child.id].parent = n.id
}

// noCycle panics when child is n or one of n's ancestors. Attaching
// such a node would make the arena cyclic and hang every walk.
func (n Node) noCycle(child Node) {
	for id := n.id; id != none; id = n.t.nodes[id].parent {
		if id == child.id {
			panic("spantree: attaching a node under its own descendant")
		}
	}
}

// ReplaceWith swaps n for other at the same tree position, inheriting
// n's slot label. n is left detached.
func (n Node) ReplaceWith(other Node) {
	n.sameTree(other)
	if other.id == n.id {
		return
	}
	parent := n.t.nodes[n.id].parent
	slot := n.t.nodes[n.id].slot
	if parent == none {
		return
	}
	(Node{t: n.t, id: parent}).noCycle(other)
	other.Remove()
	p := &n.t.nodes[parent]
	for i, id := range p.children {
		if id == n.id {
			p.children[i] = other.id
			break
		}
	}
	n.t.nodes[other.id].parent = parent
	n.t.nodes[other.id].slot = slot
	n.t.nodes[n.id].parent = none
	n.t.nodes[n.id].slot = ""
}

// ReplaceSpan keeps n's tree position but swaps its payload. The old
// children are discarded and a fresh child list is built to match the
// new payload's declared structure.
func (n Node) ReplaceSpan(newSpan span.Span) {
	nd := &n.t.nodes[n.id]
	for _, id := range nd.children {
		n.t.nodes[id].parent = none
		n.t.nodes[id].slot = ""
	}
	nd.children = nil
	nd.payload = newSpan
	n.t.addChildren(n.id, newSpan)
}

// Wrap replaces n's payload with f(old), where old becomes the single
// child of whatever f returns. It reports false, changing nothing,
// when f's result is not a single-child wrapper. Edits already applied
// to n's subtree are preserved inside the wrapper.
func (n Node) Wrap(f func(span.Span) span.Span) bool {
	old := n.ToSpan()
	wrapper, ok := f(old).(span.SingleChild)
	if !ok {
		return false
	}
	n.ReplaceSpan(wrapper.WithChild(old))
	return true
}

// Unwrap collapses one tree level by replacing n's payload with its
// only child's payload. It reports false when n does not have exactly
// one child.
func (n Node) Unwrap() bool {
	ids := n.t.nodes[n.id].children
	if len(ids) != 1 {
		return false
	}
	child := Node{t: n.t, id: ids[0]}
	n.ReplaceSpan(child.ToSpan())
	return true
}
