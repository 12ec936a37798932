// Package termcolor models terminal colors and their escape encodings.
//
// # Color Variants
//
// Three closed variants implement the Color interface:
//
//   - Indexed: one of the 256 palette slots. Slots 0-15 are the
//     standard colors, 16-231 form a 6x6x6 cube, and 232-255 are a
//     24-step grayscale ramp.
//   - RGB: a 24-bit truecolor value.
//   - Default: the terminal's own default, encoded as a reset.
//
// Every variant resolves to RGB deterministically; resolution never
// consults the environment.
//
// # Capability Tiers
//
// Capability expresses how much color a terminal accepts: CapNone,
// CapANSI16, CapANSI256, or CapTrueColor. Sequence generation
// downconverts richer colors to whatever the tier supports, so a
// truecolor value still renders sensibly on a 16-color terminal.
//
// Callers supply the capability explicitly. FromProfile bridges from
// charmbracelet/colorprofile for programs that want auto-detection.
package termcolor
