package colorhash

import (
	"hash/fnv"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/five82/prism/termcolor"
)

const (
	minSaturation = 0.10
	maxSaturation = 0.95
	minLightness  = 0.42
	maxLightness  = 0.62

	// maxAttempts bounds the truecolor readability retry loop.
	maxAttempts = 4
)

// ForHash returns a deterministic color for hash at the given
// capability. Equal arguments always yield equal colors.
func ForHash(hash uint64, sat Saturation, cap termcolor.Capability) termcolor.Color {
	switch cap {
	case termcolor.CapNone:
		return termcolor.Default
	case termcolor.CapANSI16:
		return pick(ansi16Palette, hash)
	case termcolor.CapANSI256:
		return pick(paletteFor(sat), hash)
	default:
		return trueColorFor(hash, sat)
	}
}

// HashString hashes a string identity for use with ForHash (FNV-1a).
func HashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// pick indexes a palette by hash. An empty palette is a programming
// error, not a runtime condition.
func pick(palette []termcolor.Indexed, hash uint64) termcolor.Indexed {
	if len(palette) == 0 {
		panic("colorhash: empty candidate palette")
	}
	return palette[hash%uint64(len(palette))]
}

// trueColorFor perturbs a curated base color in HSL space using bit
// slices of the hash, retrying with a rederived hash while the result
// fails a readability check. After maxAttempts the clamped unperturbed
// base is returned even though it may sit slightly outside the
// thresholds; availability wins over strictness there.
func trueColorFor(hash uint64, sat Saturation) termcolor.Color {
	base := pick(paletteFor(sat), hash)
	h, s, l := srgb(base.RGB()).Hsl()

	cur := hash
	for attempt := 0; attempt < maxAttempts; attempt++ {
		ps := clamp(s+perturbation(cur>>8), minSaturation, maxSaturation)
		pl := clamp(l+perturbation(cur>>16), minLightness, maxLightness)
		cr, cg, cb := colorful.Hsl(h, ps, pl).Clamped().RGB255()
		if readable(cr, cg, cb) {
			return termcolor.RGB{R: cr, G: cg, B: cb}
		}
		cur = (cur + 1) * 31
	}

	fs := clamp(s, minSaturation, maxSaturation)
	fl := clamp(l, minLightness, maxLightness)
	r, g, b := colorful.Hsl(h, fs, fl).Clamped().RGB255()
	return termcolor.RGB{R: r, G: g, B: b}
}

// perturbation maps the low byte of bits onto [-0.10, +0.10].
func perturbation(bits uint64) float64 {
	return float64(bits&0xff)/255*0.2 - 0.1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
