package span

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/prism/termcolor"
)

// Buffer accumulates rendered text and tracks the stack of active
// colors. One buffer serves one render call; buffers are not shared
// across goroutines.
type Buffer struct {
	cap    termcolor.Capability
	parent *Buffer
	sb     strings.Builder
	stack  []colorPair
}

type colorPair struct {
	fg, bg termcolor.Color
}

// NewBuffer returns an empty buffer targeting the given capability.
func NewBuffer(cap termcolor.Capability) *Buffer {
	return &Buffer{cap: cap}
}

// Capability reports the color depth this buffer encodes for.
func (b *Buffer) Capability() termcolor.Capability { return b.cap }

// WriteString appends text under the current color context.
func (b *Buffer) WriteString(s string) {
	b.sb.WriteString(s)
}

// Write appends text wrapped in a temporary color context. A nil
// foreground or background inherits the surrounding context.
func (b *Buffer) Write(text string, fg, bg termcolor.Color) {
	b.PushColor(fg, bg)
	b.sb.WriteString(text)
	b.PopColor()
}

// PushColor activates a color context. Nil layers inherit from the
// context in effect at the push.
func (b *Buffer) PushColor(fg, bg termcolor.Color) {
	top := b.current()
	next := top
	if fg != nil {
		next.fg = fg
		b.sb.WriteString(termcolor.Foreground(fg, b.cap))
	}
	if bg != nil {
		next.bg = bg
		b.sb.WriteString(termcolor.Background(bg, b.cap))
	}
	b.stack = append(b.stack, next)
}

// PopColor restores the color context in effect before the matching
// PushColor. Popping an empty stack is tolerated: it restores the
// terminal defaults.
func (b *Buffer) PopColor() {
	if len(b.stack) == 0 {
		b.sb.WriteString(termcolor.ResetForeground(b.cap))
		b.sb.WriteString(termcolor.ResetBackground(b.cap))
		return
	}
	popped := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	prev := b.current()
	if popped.fg != prev.fg {
		if prev.fg != nil {
			b.sb.WriteString(termcolor.Foreground(prev.fg, b.cap))
		} else {
			b.sb.WriteString(termcolor.ResetForeground(b.cap))
		}
	}
	if popped.bg != prev.bg {
		if prev.bg != nil {
			b.sb.WriteString(termcolor.Background(prev.bg, b.cap))
		} else {
			b.sb.WriteString(termcolor.ResetBackground(b.cap))
		}
	}
}

func (b *Buffer) current() colorPair {
	if len(b.stack) == 0 {
		return colorPair{}
	}
	return b.stack[len(b.stack)-1]
}

// Child returns an empty buffer with the same capability. Content
// written to the child stays out of the parent until composed with
// Adopt, so it can be measured or boxed in isolation first.
func (b *Buffer) Child() *Buffer {
	return &Buffer{cap: b.cap, parent: b}
}

// Adopt appends a child buffer's accumulated content verbatim.
func (b *Buffer) Adopt(child *Buffer) {
	b.sb.WriteString(child.String())
}

// String returns the accumulated output, escapes included.
func (b *Buffer) String() string { return b.sb.String() }

// Plain returns the accumulated output with escape sequences stripped.
func (b *Buffer) Plain() string { return ansi.Strip(b.sb.String()) }

// VisibleWidth returns the displayed width of s, ignoring embedded
// escape sequences. Layout code must use this rather than len: the
// encoded length grows with every nested color while the visible
// width does not.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}
