package logfmt

import (
	"github.com/five82/prism/span"
	"github.com/five82/prism/termcolor"
)

// Message is the record's message span. It renders like a styled
// wrapper but keeps its own type so transformers can address the
// message without pattern-matching on colors or text.
type Message struct {
	Color   termcolor.Color
	Content span.Span
}

func (m Message) Child() span.Span { return m.Content }

func (m Message) WithChild(child span.Span) span.Span {
	m.Content = child
	return m
}

func (m Message) Enter(b *span.Buffer) { b.PushColor(m.Color, nil) }
func (m Message) Exit(b *span.Buffer)  { b.PopColor() }
