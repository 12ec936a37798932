package termcolor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/colorprofile"
)

// Capability is the color depth a terminal accepts.
type Capability int

const (
	CapNone Capability = iota
	CapANSI16
	CapANSI256
	CapTrueColor
)

func (c Capability) String() string {
	switch c {
	case CapNone:
		return "none"
	case CapANSI16:
		return "ansi16"
	case CapANSI256:
		return "ansi256"
	case CapTrueColor:
		return "truecolor"
	default:
		return fmt.Sprintf("Capability(%d)", int(c))
	}
}

// ParseCapability reads a capability name as used in config files and
// command-line flags.
func ParseCapability(s string) (Capability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off":
		return CapNone, nil
	case "ansi16", "16", "ansi":
		return CapANSI16, nil
	case "ansi256", "256":
		return CapANSI256, nil
	case "truecolor", "24bit":
		return CapTrueColor, nil
	default:
		return CapNone, fmt.Errorf("unknown capability %q", s)
	}
}

// FromProfile maps a detected colorprofile.Profile onto a Capability.
// The core itself never detects the environment; this is a convenience
// for callers that do.
func FromProfile(p colorprofile.Profile) Capability {
	switch p {
	case colorprofile.TrueColor:
		return CapTrueColor
	case colorprofile.ANSI256:
		return CapANSI256
	case colorprofile.ANSI:
		return CapANSI16
	default:
		return CapNone
	}
}
