package colorhash

import (
	"testing"

	"github.com/five82/prism/termcolor"
)

func TestForHash_Deterministic(t *testing.T) {
	for _, cap := range []termcolor.Capability{
		termcolor.CapNone, termcolor.CapANSI16, termcolor.CapANSI256, termcolor.CapTrueColor,
	} {
		a := ForHash(12345, SatMid, cap)
		b := ForHash(12345, SatMid, cap)
		if a != b {
			t.Fatalf("ForHash not deterministic at %v: %v vs %v", cap, a, b)
		}
	}
}

func TestForHash_NoColorTerminal(t *testing.T) {
	if got := ForHash(99, SatHigh, termcolor.CapNone); got != termcolor.Default {
		t.Fatalf("ForHash on CapNone = %v, want Default", got)
	}
}

func TestForHash_ANSI16Subset(t *testing.T) {
	allowed := map[termcolor.Indexed]bool{}
	for _, idx := range ansi16Palette {
		allowed[idx] = true
	}
	for hash := uint64(0); hash < 64; hash++ {
		c := ForHash(hash, SatMid, termcolor.CapANSI16)
		idx, ok := c.(termcolor.Indexed)
		if !ok {
			t.Fatalf("ForHash ansi16 returned %T, want Indexed", c)
		}
		if !allowed[idx] {
			t.Fatalf("ForHash ansi16 returned slot %d outside curated subset", idx)
		}
	}
}

func TestForHash_StringIdentityStable(t *testing.T) {
	// The documented contract: a string identity maps to one indexed
	// color, stable across calls (and across processes, since both the
	// hash and the curated palettes are deterministic).
	first := ForHash(HashString("user-42"), SatMid, termcolor.CapANSI256)
	for i := 0; i < 10; i++ {
		if got := ForHash(HashString("user-42"), SatMid, termcolor.CapANSI256); got != first {
			t.Fatalf("color for user-42 drifted: %v vs %v", got, first)
		}
	}
	if _, ok := first.(termcolor.Indexed); !ok {
		t.Fatalf("ansi256 color = %T, want Indexed", first)
	}
}

func TestCuratedPalettes(t *testing.T) {
	for band := SatLow; band <= SatHigh; band++ {
		palette := paletteFor(band)
		if len(palette) == 0 {
			t.Fatalf("saturation band %d curated to empty palette", band)
		}
		for _, idx := range palette {
			r, g, b := idx.RGB()
			if !readable(r, g, b) {
				t.Fatalf("curated slot %d (%d,%d,%d) fails readability", idx, r, g, b)
			}
			if _, s, _ := srgb(r, g, b).Hsl(); s < minChroma {
				t.Fatalf("curated slot %d is near-gray (s=%.2f)", idx, s)
			}
		}
	}
}

func TestTrueColorReadability(t *testing.T) {
	// Property check across synthetic hashes. The retry loop should
	// keep failures to the rare fallback path; the observed rate is
	// reported rather than assumed to be zero.
	const n = 10000
	failures := 0
	for hash := uint64(0); hash < n; hash++ {
		c := ForHash(hash*2654435761, SatMid, termcolor.CapTrueColor)
		r, g, b := c.RGB()
		if !readable(r, g, b) {
			failures++
		}
	}
	rate := float64(failures) / n
	t.Logf("fallback readability misses: %d/%d (%.4f%%)", failures, n, rate*100)
	if rate > 0.01 {
		t.Fatalf("readability failure rate %.4f exceeds 1%%", rate)
	}
}

func TestReadableDistanceScale(t *testing.T) {
	// DistanceCIEDE2000 returns a normalized Delta E (roughly [0, 1.2]).
	// The red/yellow exclusion thresholds must sit on that same scale,
	// or the filter rejects the entire cube and curation collapses.
	d := srgb(95, 135, 255).DistanceCIEDE2000(refRed)
	if d > 1.5 {
		t.Fatalf("CIEDE2000 distance %.3f is not on the normalized scale", d)
	}
	if d <= minRedDistance {
		t.Fatalf("blue measures %.3f from the reserved red, inside threshold %.2f", d, minRedDistance)
	}
	if !readable(95, 135, 255) {
		t.Fatalf("mid blue rejected by the readability filter")
	}
	if readable(135, 0, 0) {
		t.Fatalf("dark red slipped past the reserved-red exclusion")
	}
}

func TestContrastRatio(t *testing.T) {
	if got := ContrastRatio(255, 255, 255, 0, 0, 0); got < 20.9 || got > 21.1 {
		t.Fatalf("white/black contrast = %.2f, want 21", got)
	}
	if got := ContrastRatio(0, 0, 0, 255, 255, 255); got < 20.9 || got > 21.1 {
		t.Fatalf("contrast should be symmetric, got %.2f", got)
	}
	if got := ContrastRatio(128, 128, 128, 128, 128, 128); got != 1 {
		t.Fatalf("equal colors contrast = %.2f, want 1", got)
	}
}

func TestPickEmptyPalettePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("pick with empty palette did not panic")
		}
	}()
	pick(nil, 1)
}
