// Package spantree provides a mutable, parent-linked mirror of a span
// tree for use by transformers.
//
// FromSpan copies an immutable span tree into an arena of nodes that
// supports find, remove, insert, replace, wrap, and unwrap operations.
// After editing, ToSpan reconstructs an immutable tree reflecting the
// edits. A tree serves exactly one render pass; nothing is cached
// across calls.
//
// # Arena Storage
//
// Nodes live in a flat slice owned by the Tree; parents and children
// are indices into that slice rather than pointers, so the parent
// back-links cannot form ownership cycles and navigation stays O(1).
// A Node handle pairs the tree with an index and is cheap to copy.
//
// # Failure Policy
//
// Operations whose preconditions can fail (Remove on a detached node,
// Unwrap on a node without exactly one child, Wrap with a non-wrapper
// span) report failure with a boolean instead of an error. Mixing
// nodes from different trees is a programming error and panics.
package spantree
