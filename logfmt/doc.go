// Package logfmt turns structured log records into styled console
// lines using the span document model.
//
// # Pipeline
//
// Formatter.Format runs one record through four stages:
//
//  1. Build: compose an immutable span tree for the record
//     (timestamp, level tag, colored logger name, message, error,
//     fields, stack trace).
//  2. Mirror: copy the tree into a mutable spantree when transformers
//     are registered.
//  3. Transform: apply caller-supplied transformers in order; each may
//     rewrite the tree in place.
//  4. Render: convert the (possibly rewritten) tree back to spans and
//     render it at the formatter's capability.
//
// Rendering is synchronous and allocation-light; one render call uses
// one buffer and nothing is shared across calls.
//
// # Themes
//
// Themes name the colors used for timestamps, messages, field keys,
// borders, and each severity level. Two built-in themes ship
// (Nightfox and Slate); config files can select one by name. Logger
// identities are colored deterministically through colorhash rather
// than through the theme, so the same logger always gets the same
// color on every run.
package logfmt
