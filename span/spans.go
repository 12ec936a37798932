package span

import (
	"strings"
	"time"

	"github.com/five82/prism/termcolor"
)

// Text is a leaf holding literal text in an optional color.
type Text struct {
	Content string
	Fg, Bg  termcolor.Color
}

func (t Text) RenderInto(b *Buffer) {
	if t.Fg == nil && t.Bg == nil {
		b.WriteString(t.Content)
		return
	}
	b.Write(t.Content, t.Fg, t.Bg)
}

// Styled pushes a color context around a single child.
type Styled struct {
	Fg, Bg  termcolor.Color
	Content Span
}

func (s Styled) Child() Span { return s.Content }

func (s Styled) WithChild(child Span) Span {
	s.Content = child
	return s
}

func (s Styled) Enter(b *Buffer) { b.PushColor(s.Fg, s.Bg) }
func (s Styled) Exit(b *Buffer)  { b.PopColor() }

// Group renders its items in order.
type Group struct {
	Items []Span
}

func (g Group) Children() []Span { return g.Items }

func (g Group) WithChildren(children []Span) Span {
	g.Items = children
	return g
}

// Decorated brackets an optional content span with a prefix and
// suffix. When the content is absent the whole span renders as empty,
// prefix and suffix included.
type Decorated struct {
	Prefix  Span
	Content Span
	Suffix  Span
}

func (d Decorated) SlotNames() []string { return []string{"prefix", "content", "suffix"} }

func (d Decorated) Slot(name string) Span {
	switch name {
	case "prefix":
		return d.Prefix
	case "content":
		return d.Content
	case "suffix":
		return d.Suffix
	}
	return nil
}

func (d Decorated) WithSlot(name string, s Span) Span {
	switch name {
	case "prefix":
		d.Prefix = s
	case "content":
		d.Content = s
	case "suffix":
		d.Suffix = s
	}
	return d
}

func (d Decorated) PrimarySlot() string { return "content" }

// Timestamp resolves to the formatted time in an optional color.
type Timestamp struct {
	Time   time.Time
	Layout string
	Color  termcolor.Color
}

// DefaultTimeLayout matches the daemon log line format.
const DefaultTimeLayout = "2006-01-02 15:04:05"

func (t Timestamp) BuildSpan() Span {
	layout := t.Layout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return Text{Content: t.Time.Format(layout), Fg: t.Color}
}

// LevelTag resolves to a bracketed, padded severity tag. An empty
// name defaults to INFO.
type LevelTag struct {
	Name  string
	Color termcolor.Color
}

func (l LevelTag) BuildSpan() Span {
	name := strings.ToUpper(strings.TrimSpace(l.Name))
	if name == "" {
		name = "INFO"
	}
	return Text{Content: "[" + padRight(name, 5) + "]", Fg: l.Color}
}

// Field is one key-value pair of structured log data.
type Field struct {
	Key, Value string
}

// Fields resolves structured data into an indented detail block, one
// pair per line under the message. Empty keys and values are skipped.
type Fields struct {
	Items    []Field
	KeyColor termcolor.Color
}

func (f Fields) BuildSpan() Span {
	items := make([]Span, 0, len(f.Items))
	for _, fld := range f.Items {
		key := strings.TrimSpace(fld.Key)
		value := strings.TrimSpace(fld.Value)
		if key == "" || value == "" {
			continue
		}
		items = append(items,
			Text{Content: "\n    - "},
			Text{Content: key, Fg: f.KeyColor},
			Text{Content: ": " + value},
		)
	}
	return Group{Items: items}
}

// Box draws a rounded border around its content, sized to the widest
// visible line. The content is rendered into a child buffer first so
// the border width reflects displayed text, not escape-laden text.
type Box struct {
	Content Span
	Color   termcolor.Color
}

func (bx Box) RenderInto(b *Buffer) {
	if bx.Content == nil {
		return
	}
	child := b.Child()
	Render(bx.Content, child)
	lines := strings.Split(child.String(), "\n")

	width := 0
	for _, line := range lines {
		if w := VisibleWidth(line); w > width {
			width = w
		}
	}

	b.Write("╭"+strings.Repeat("─", width+2)+"╮\n", bx.Color, nil)
	for _, line := range lines {
		b.Write("│ ", bx.Color, nil)
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", width-VisibleWidth(line)))
		b.Write(" │\n", bx.Color, nil)
	}
	b.Write("╰"+strings.Repeat("─", width+2)+"╯", bx.Color, nil)
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}
