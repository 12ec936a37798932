package colorhash

import (
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/five82/prism/termcolor"
)

// Saturation selects which curated palette band ForHash draws from.
type Saturation int

const (
	SatLow Saturation = iota
	SatMid
	SatHigh
)

// ansi16Palette is the fixed subset used on 16-color terminals. Black,
// white, and the red/yellow region are excluded.
var ansi16Palette = []termcolor.Indexed{2, 4, 5, 6, 10, 12, 13, 14}

var (
	refRed    = colorful.Color{R: 128.0 / 255, G: 0, B: 0}
	refYellow = colorful.Color{R: 128.0 / 255, G: 128.0 / 255, B: 0}
)

const (
	// go-colorful's DistanceCIEDE2000 returns the standard Delta E
	// scaled into [0, ~1.2], so these correspond to a Delta E of 30.
	minRedDistance    = 0.30
	minYellowDistance = 0.30
	minWhiteContrast  = 2.12
	minBlackContrast  = 3.1

	// HSL saturation below this reads as gray.
	minChroma = 0.16
)

// paletteBands holds the curated low/mid/high saturation palettes.
// Curation runs once at init and is fully deterministic, so slot
// selection is stable across processes.
var paletteBands = curatePalettes()

func paletteFor(sat Saturation) []termcolor.Indexed {
	switch sat {
	case SatLow:
		return paletteBands[0]
	case SatHigh:
		return paletteBands[2]
	default:
		return paletteBands[1]
	}
}

// curatePalettes filters the 6x6x6 cube against the readability
// criteria and buckets survivors into saturation bands sorted by hue.
func curatePalettes() [3][]termcolor.Indexed {
	type entry struct {
		idx termcolor.Indexed
		hue float64
		sat float64
	}
	var entries []entry
	for i := 16; i <= 231; i++ {
		idx := termcolor.Indexed(i)
		r, g, b := idx.RGB()
		if !readable(r, g, b) {
			continue
		}
		h, s, _ := srgb(r, g, b).Hsl()
		if s < minChroma {
			continue
		}
		entries = append(entries, entry{idx: idx, hue: h, sat: s})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].hue < entries[j].hue })

	var bands [3][]termcolor.Indexed
	for _, e := range entries {
		band := 0
		switch {
		case e.sat >= 0.75:
			band = 2
		case e.sat >= 0.4:
			band = 1
		}
		bands[band] = append(bands[band], e.idx)
	}
	return bands
}

// readable reports whether a color meets every readability threshold:
// far enough from the reserved red and yellow, and enough contrast
// against both white and black backgrounds.
func readable(r, g, b uint8) bool {
	c := srgb(r, g, b)
	if c.DistanceCIEDE2000(refRed) <= minRedDistance {
		return false
	}
	if c.DistanceCIEDE2000(refYellow) <= minYellowDistance {
		return false
	}
	if ContrastRatio(r, g, b, 255, 255, 255) < minWhiteContrast {
		return false
	}
	if ContrastRatio(r, g, b, 0, 0, 0) < minBlackContrast {
		return false
	}
	return true
}

func srgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
