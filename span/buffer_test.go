package span

import (
	"strings"
	"testing"

	"github.com/five82/prism/termcolor"
)

func TestColorStackBalance(t *testing.T) {
	b := NewBuffer(termcolor.CapTrueColor)
	b.PushColor(termcolor.Indexed(2), nil)
	before := b.current()

	// Balanced nesting of varying depth must restore the outer color.
	b.PushColor(termcolor.RGB{R: 10, G: 20, B: 30}, nil)
	b.PushColor(nil, termcolor.Indexed(237))
	b.PushColor(termcolor.Indexed(5), termcolor.Indexed(17))
	b.PopColor()
	b.PopColor()
	b.PopColor()

	if got := b.current(); got != before {
		t.Fatalf("active color after balanced push/pop = %+v, want %+v", got, before)
	}
}

func TestPopRestoresOuterColor(t *testing.T) {
	b := NewBuffer(termcolor.CapANSI16)
	b.PushColor(termcolor.Indexed(2), nil) // green
	b.WriteString("g")
	b.PushColor(termcolor.Indexed(4), nil) // blue
	b.WriteString("b")
	b.PopColor() // back to green, not default
	b.WriteString("g")
	b.PopColor()

	want := "\x1b[32mg\x1b[34mb\x1b[32mg\x1b[39m"
	if got := b.String(); got != want {
		t.Fatalf("nested output = %q, want %q", got, want)
	}
}

func TestPopEmptyStackTolerated(t *testing.T) {
	b := NewBuffer(termcolor.CapANSI16)
	b.PopColor()
	if got := b.String(); got != "\x1b[39m\x1b[49m" {
		t.Fatalf("pop on empty stack = %q, want full reset pair", got)
	}

	plain := NewBuffer(termcolor.CapNone)
	plain.PopColor()
	if plain.String() != "" {
		t.Fatalf("pop on no-color buffer wrote %q", plain.String())
	}
}

func TestInheritedLayers(t *testing.T) {
	b := NewBuffer(termcolor.CapANSI16)
	b.PushColor(termcolor.Indexed(2), termcolor.Indexed(0))
	b.PushColor(termcolor.Indexed(4), nil) // bg inherited
	b.PopColor()
	b.PopColor()
	// Inner pop only touches the foreground it changed.
	want := "\x1b[32m\x1b[40m\x1b[34m\x1b[32m\x1b[39m\x1b[49m"
	if got := b.String(); got != want {
		t.Fatalf("inherit output = %q, want %q", got, want)
	}
}

func TestChildBufferIsolation(t *testing.T) {
	b := NewBuffer(termcolor.CapANSI256)
	b.WriteString("outer")
	child := b.Child()
	child.Write("inner", termcolor.Indexed(33), nil)
	if strings.Contains(b.String(), "inner") {
		t.Fatalf("child content leaked into parent before Adopt")
	}
	if child.Capability() != b.Capability() {
		t.Fatalf("child capability %v != parent %v", child.Capability(), b.Capability())
	}
	b.Adopt(child)
	if b.Plain() != "outerinner" {
		t.Fatalf("composed plain = %q, want outerinner", b.Plain())
	}
}

func TestVisibleWidth(t *testing.T) {
	base := "hello"
	wrapped := base
	for i := 0; i < 8; i++ {
		wrapped = "\x1b[38;5;120m" + wrapped + "\x1b[39m"
	}
	if got := VisibleWidth(wrapped); got != len(base) {
		t.Fatalf("VisibleWidth(nested) = %d, want %d", got, len(base))
	}
	if got := VisibleWidth(""); got != 0 {
		t.Fatalf("VisibleWidth(empty) = %d, want 0", got)
	}
}
