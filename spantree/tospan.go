package spantree

import "github.com/five82/prism/span"

// ToSpan reconstructs an immutable span tree rooted at n, reflecting
// every structural edit applied since FromSpan. Each variant rebuilds
// itself from the node's current child list; leaf and buildable
// payloads pass through unchanged.
func (n Node) ToSpan() span.Span {
	payload := n.t.nodes[n.id].payload
	children := n.Children()

	switch v := payload.(type) {
	case span.SingleChild:
		var child span.Span
		if len(children) > 0 {
			child = children[0].ToSpan()
		}
		return v.WithChild(child)
	case span.MultiChild:
		rebuilt := make([]span.Span, len(children))
		for i, c := range children {
			rebuilt[i] = c.ToSpan()
		}
		return v.WithChildren(rebuilt)
	case span.Slotted:
		return n.rebuildSlotted(v, children)
	default:
		return payload
	}
}

// rebuildSlotted clears every slot and reassigns children: labeled
// children return to their own slot, unlabeled ones (inserted by
// structural edits) fill empty slots in declared order, and any that
// cannot be placed are dropped.
func (n Node) rebuildSlotted(v span.Slotted, children []Node) span.Span {
	names := v.SlotNames()
	out := span.Span(v)
	for _, name := range names {
		out = out.(span.Slotted).WithSlot(name, nil)
	}

	var unlabeled []Node
	for _, c := range children {
		slot := n.t.nodes[c.id].slot
		if slot == "" {
			unlabeled = append(unlabeled, c)
			continue
		}
		out = out.(span.Slotted).WithSlot(slot, c.ToSpan())
	}
	for _, c := range unlabeled {
		for _, name := range names {
			if out.(span.Slotted).Slot(name) == nil {
				out = out.(span.Slotted).WithSlot(name, c.ToSpan())
				break
			}
		}
	}
	return out
}
