// Package colorhash assigns deterministic, legible terminal colors to
// arbitrary identities.
//
// ForHash maps a hash to a color that is readable on both light and
// dark backgrounds and stays clear of the red and yellow hues reserved
// for errors and warnings. Equal inputs always produce equal colors,
// within a process and across processes, so callers can color a logger
// name or an instance identity without coordinating any shared state.
//
// # Selection by Capability
//
//   - CapNone: always termcolor.Default.
//   - CapANSI16: one of eight curated standard slots.
//   - CapANSI256: a slot from one of three curated palettes (low,
//     mid, high saturation), picked by hash.
//   - CapTrueColor: a curated base color perturbed in HSL space by
//     hash bits, re-checked for readability, with up to four retries
//     before falling back to the clamped base.
//
// # Readability
//
// A truecolor candidate is accepted only when its CIEDE2000 distance
// to the reserved red (128,0,0) and yellow (128,128,0) both exceed 30
// and its WCAG contrast ratio is at least 2.12 against white and 3.1
// against black. The curated palettes satisfy the same criteria by
// construction.
package colorhash
