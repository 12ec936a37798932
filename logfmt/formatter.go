package logfmt

import (
	"strings"

	"github.com/five82/prism/colorhash"
	"github.com/five82/prism/span"
	"github.com/five82/prism/spantree"
	"github.com/five82/prism/termcolor"
)

// Transformer edits a mutable span tree in place before rendering. It
// receives the tree root and the record the tree was built from.
type Transformer func(root spantree.Node, rec Record)

// Formatter renders records as styled console lines.
type Formatter struct {
	Theme      Theme
	Capability termcolor.Capability

	// TimeLayout overrides the timestamp layout; empty means
	// span.DefaultTimeLayout.
	TimeLayout string

	// Transformers run in order between tree construction and
	// rendering.
	Transformers []Transformer
}

// NewFormatter returns a formatter with the given theme and
// capability.
func NewFormatter(theme Theme, cap termcolor.Capability) *Formatter {
	return &Formatter{Theme: theme, Capability: cap}
}

// Format renders one record. The output carries escape sequences
// matching the formatter's capability; CapNone yields plain text.
func (f *Formatter) Format(rec Record) string {
	tree := f.Build(rec)
	if len(f.Transformers) > 0 {
		root := spantree.FromSpan(tree)
		for _, tr := range f.Transformers {
			tr(root, rec)
		}
		tree = root.ToSpan()
	}
	return span.RenderString(tree, f.Capability)
}

// Build composes the immutable span tree for one record. The tree is
// safe to share and cheap to construct per call.
func (f *Formatter) Build(rec Record) span.Span {
	items := make([]span.Span, 0, 8)

	if !rec.Time.IsZero() {
		items = append(items, span.Decorated{
			Content: span.Timestamp{
				Time:   rec.Time,
				Layout: f.TimeLayout,
				Color:  f.Theme.TimestampColor(),
			},
			Suffix: span.Text{Content: " "},
		})
	}

	items = append(items, span.LevelTag{
		Name:  rec.Level.Name,
		Color: f.Theme.LevelColor(rec.Level.Name),
	})

	if logger := strings.TrimSpace(rec.Logger); logger != "" {
		items = append(items, span.Group{Items: []span.Span{
			span.Text{Content: " "},
			span.Styled{
				Fg:      f.loggerColor(logger),
				Content: span.Text{Content: "[" + truncate(logger, maxLoggerWidth) + "]"},
			},
		}})
	}

	if msg := strings.TrimSpace(rec.Message); msg != "" {
		items = append(items, span.Decorated{
			Prefix: span.Text{Content: " "},
			Content: Message{
				Color:   f.Theme.MessageColor(),
				Content: span.Text{Content: msg},
			},
		})
	}

	if rec.Err != nil {
		items = append(items, span.Decorated{
			Prefix: span.Text{Content: "\n    error: "},
			Content: span.Styled{
				Fg:      f.Theme.LevelColor(LevelError.Name),
				Content: span.Text{Content: rec.Err.Error()},
			},
		})
	}

	if len(rec.Fields) > 0 {
		items = append(items, span.Fields{
			Items:    rec.Fields,
			KeyColor: f.Theme.FieldKeyColor(),
		})
	}

	if stack := strings.TrimRight(rec.Stack, "\n"); stack != "" {
		items = append(items,
			span.Text{Content: "\n"},
			span.Box{
				Content: span.Text{Content: stack},
				Color:   f.Theme.BorderColor(),
			},
		)
	}

	return span.Group{Items: items}
}

// loggerColor assigns the deterministic identity color for a logger
// name. The assignment is a pure function of the name and capability,
// so concurrent callers need no coordination.
func (f *Formatter) loggerColor(logger string) termcolor.Color {
	return colorhash.ForHash(colorhash.HashString(logger), colorhash.SatMid, f.Capability)
}
