package logfmt

import (
	"github.com/five82/prism/span"
	"github.com/five82/prism/spantree"
	"github.com/five82/prism/termcolor"
)

// StripTimestamps removes every timestamp from the tree. The
// surrounding decoration (the trailing separator) disappears with it,
// which keeps golden-file comparisons byte-stable across runs.
func StripTimestamps(root spantree.Node, _ Record) {
	for _, n := range spantree.FindAll[span.Timestamp](root) {
		n.Remove()
	}
}

// HighlightErrors returns a transformer that wraps the message of
// error-ranked records in the given background color.
func HighlightErrors(bg termcolor.Color) Transformer {
	return func(root spantree.Node, rec Record) {
		if rec.Level.Rank < LevelError.Rank {
			return
		}
		msg, ok := spantree.FindFirst[Message](root)
		if !ok {
			return
		}
		msg.Wrap(func(span.Span) span.Span {
			return span.Styled{Bg: bg}
		})
	}
}
