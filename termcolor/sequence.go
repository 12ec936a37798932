package termcolor

import "fmt"

// ResetAll clears every color and attribute.
const ResetAll = "\x1b[0m"

const (
	resetFg = "\x1b[39m"
	resetBg = "\x1b[49m"
)

// Foreground returns the escape sequence selecting c as the foreground
// color at the given capability. CapNone always yields "".
func Foreground(c Color, cap Capability) string {
	if c == nil {
		return ""
	}
	return c.sequence(cap, false)
}

// Background returns the escape sequence selecting c as the background
// color at the given capability. CapNone always yields "".
func Background(c Color, cap Capability) string {
	if c == nil {
		return ""
	}
	return c.sequence(cap, true)
}

// ResetForeground restores the default foreground color.
func ResetForeground(cap Capability) string {
	if cap == CapNone {
		return ""
	}
	return resetFg
}

// ResetBackground restores the default background color.
func ResetBackground(cap Capability) string {
	if cap == CapNone {
		return ""
	}
	return resetBg
}

func (c Indexed) sequence(cap Capability, background bool) string {
	switch cap {
	case CapNone:
		return ""
	case CapANSI16:
		idx := c
		if idx >= 16 {
			idx = nearest16(c.RGB())
		}
		return ansi16Sequence(idx, background)
	default:
		if background {
			return fmt.Sprintf("\x1b[48;5;%dm", uint8(c))
		}
		return fmt.Sprintf("\x1b[38;5;%dm", uint8(c))
	}
}

func (c RGB) sequence(cap Capability, background bool) string {
	switch cap {
	case CapNone:
		return ""
	case CapANSI16:
		return ansi16Sequence(nearest16(c.R, c.G, c.B), background)
	case CapANSI256:
		return nearest256(c.R, c.G, c.B).sequence(cap, background)
	default:
		if background {
			return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
		}
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
	}
}

func (defaultColor) sequence(cap Capability, background bool) string {
	if cap == CapNone {
		return ""
	}
	if background {
		return resetBg
	}
	return resetFg
}

// ansi16Sequence encodes slots 0-7 as the normal-intensity SGR range
// and 8-15 as the bright range.
func ansi16Sequence(idx Indexed, background bool) string {
	base := 30
	if background {
		base = 40
	}
	if idx >= 8 {
		base += 60
		idx -= 8
	}
	return fmt.Sprintf("\x1b[%dm", base+int(idx))
}
