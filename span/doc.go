// Package span is an immutable document model for formatted console
// output.
//
// # Architecture Overview
//
// A log formatter describes one rendered log line as a tree of spans,
// the way a retained-mode UI describes a widget tree. The tree is
// immutable and cheap to build per log call; rendering walks it once
// and writes text plus color escapes into a Buffer.
//
// # Span Variants
//
// A concrete span satisfies exactly one of the closed variant
// interfaces:
//
//   - Leaf: renders its own content directly.
//   - SingleChild: wraps zero or one child in an enter/exit context,
//     typically a pushed color.
//   - MultiChild: renders an ordered child sequence, no separators.
//   - Slotted: holds a fixed set of named optional children and
//     renders only when its primary slot is occupied.
//
// A span may instead implement Builder: it resolves into another span
// rather than rendering. Build chains must terminate; Render stops
// following a chain after a bounded number of steps.
//
// # Buffer
//
// Buffer accumulates rendered text and keeps a LIFO stack of active
// colors so that closing an inner color restores the outer one instead
// of resetting. Child buffers let content be rendered and measured in
// isolation (Box uses this to size its border) before being composed
// into the parent.
//
// # Core Spans
//
// Text, Styled, Group, Decorated, Timestamp, LevelTag, Fields, and Box
// cover the needs of the logfmt formatter. Third-party code can add
// semantic spans by implementing Builder in terms of these.
package span
