package termcolor

// Color is a terminal color: an indexed palette slot, a 24-bit value,
// or the terminal default. The set of variants is closed.
type Color interface {
	// RGB resolves the color to 8-bit channels. Default resolves to
	// black; callers that care should test for Default first.
	RGB() (r, g, b uint8)

	sequence(cap Capability, background bool) string
}

// Indexed is a slot in the 256-color palette.
type Indexed uint8

// RGB is a 24-bit truecolor value.
type RGB struct {
	R, G, B uint8
}

type defaultColor struct{}

// Default is the terminal's own default color. Selecting it emits a
// reset for the relevant layer rather than an explicit color.
var Default Color = defaultColor{}

// standard16 holds the xterm RGB values for palette slots 0-15.
var standard16 = [16]RGB{
	{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
	{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
	{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// cubeLevels are the channel values used by the 6x6x6 cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// RGB resolves the slot through the standard table, the color cube, or
// the grayscale ramp.
func (c Indexed) RGB() (uint8, uint8, uint8) {
	switch {
	case c < 16:
		s := standard16[c]
		return s.R, s.G, s.B
	case c < 232:
		i := int(c) - 16
		return cubeLevels[i/36], cubeLevels[(i/6)%6], cubeLevels[i%6]
	default:
		v := 8 + 10*(uint8(c)-232)
		return v, v, v
	}
}

func (c RGB) RGB() (uint8, uint8, uint8) { return c.R, c.G, c.B }

func (defaultColor) RGB() (uint8, uint8, uint8) { return 0, 0, 0 }

// nearest16 returns the standard-palette slot closest to the given
// channels by squared RGB distance.
func nearest16(r, g, b uint8) Indexed {
	best, bestDist := 0, int(^uint(0)>>1)
	for i, s := range standard16 {
		dr, dg, db := int(r)-int(s.R), int(g)-int(s.G), int(b)-int(s.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return Indexed(best)
}

// nearest256 quantizes channels into the cube or, for near-gray values,
// the grayscale ramp.
func nearest256(r, g, b uint8) Indexed {
	maxc, minc := r, r
	for _, v := range []uint8{g, b} {
		if v > maxc {
			maxc = v
		}
		if v < minc {
			minc = v
		}
	}
	if maxc-minc < 10 {
		avg := (int(r) + int(g) + int(b)) / 3
		step := (avg - 8 + 5) / 10
		if step < 0 {
			step = 0
		}
		if step > 23 {
			step = 23
		}
		return Indexed(232 + step)
	}
	return Indexed(16 + 36*cubeIndex(r) + 6*cubeIndex(g) + cubeIndex(b))
}

func cubeIndex(v uint8) int {
	best, bestDist := 0, 256
	for i, level := range cubeLevels {
		d := int(v) - int(level)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
