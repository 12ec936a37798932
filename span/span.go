package span

import "github.com/five82/prism/termcolor"

// Span describes one piece of formatted output. Concrete spans satisfy
// one of the variant interfaces below, or Builder for spans that
// resolve into other spans.
type Span interface{}

// Leaf is a span that renders its own content directly.
type Leaf interface {
	RenderInto(b *Buffer)
}

// SingleChild wraps zero or one child span in an enter/exit context.
// Enter and Exit bracket the child's rendering; a nil child still gets
// the bracket so implementations stay balanced.
type SingleChild interface {
	Child() Span
	// WithChild returns a copy of the span carrying the given child.
	WithChild(child Span) Span
	Enter(b *Buffer)
	Exit(b *Buffer)
}

// MultiChild renders an ordered sequence of children with nothing
// inserted between them.
type MultiChild interface {
	Children() []Span
	// WithChildren returns a copy of the span carrying the given
	// children.
	WithChildren(children []Span) Span
}

// Slotted holds a fixed, type-specific set of named optional children.
// Slot identity is addressable by name rather than position. The span
// renders as empty when the primary slot is nil.
type Slotted interface {
	// SlotNames returns the declared slot names in rendering order.
	SlotNames() []string
	Slot(name string) Span
	// WithSlot returns a copy with the named slot set (nil clears it).
	// Unknown names are ignored.
	WithSlot(name string, s Span) Span
	PrimarySlot() string
}

// Builder is a span that resolves itself into another span instead of
// rendering. The build step must be a pure function of the span's
// fields and its chain must reach a renderable span in a bounded
// number of steps.
type Builder interface {
	BuildSpan() Span
}

// maxBuildSteps caps build-chain resolution. A chain this deep is a
// defective span; Render treats it as empty rather than failing.
const maxBuildSteps = 64

// Render writes s into b, resolving buildable spans and recursing into
// children by variant. Rendering is total: nil spans and absent
// optional children yield no output.
func Render(s Span, b *Buffer) {
	switch v := resolve(s).(type) {
	case nil:
	case Leaf:
		v.RenderInto(b)
	case SingleChild:
		v.Enter(b)
		if child := v.Child(); child != nil {
			Render(child, b)
		}
		v.Exit(b)
	case MultiChild:
		for _, child := range v.Children() {
			Render(child, b)
		}
	case Slotted:
		if v.Slot(v.PrimarySlot()) == nil {
			return
		}
		for _, name := range v.SlotNames() {
			if child := v.Slot(name); child != nil {
				Render(child, b)
			}
		}
	}
}

// RenderString renders a span tree at the given capability and returns
// the accumulated output.
func RenderString(s Span, cap termcolor.Capability) string {
	b := NewBuffer(cap)
	Render(s, b)
	return b.String()
}

// resolve follows Build chains until a renderable variant appears.
func resolve(s Span) Span {
	for i := 0; i < maxBuildSteps; i++ {
		switch s.(type) {
		case nil, Leaf, SingleChild, MultiChild, Slotted:
			return s
		}
		bld, ok := s.(Builder)
		if !ok {
			return nil
		}
		s = bld.BuildSpan()
	}
	return nil
}
