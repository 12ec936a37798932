package termcolor

import "testing"

func TestIndexedRGB_StandardTable(t *testing.T) {
	r, g, b := Indexed(1).RGB()
	if r != 128 || g != 0 || b != 0 {
		t.Fatalf("Indexed(1).RGB() = %d,%d,%d, want 128,0,0", r, g, b)
	}
	r, g, b = Indexed(15).RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("Indexed(15).RGB() = %d,%d,%d, want 255,255,255", r, g, b)
	}
}

func TestIndexedRGB_Cube(t *testing.T) {
	// 16 is cube origin, 231 is cube max.
	r, g, b := Indexed(16).RGB()
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("Indexed(16).RGB() = %d,%d,%d, want 0,0,0", r, g, b)
	}
	r, g, b = Indexed(231).RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("Indexed(231).RGB() = %d,%d,%d, want 255,255,255", r, g, b)
	}
	// 16 + 36*1 + 6*2 + 3 = 67 -> levels 95,135,175.
	r, g, b = Indexed(67).RGB()
	if r != 95 || g != 135 || b != 175 {
		t.Fatalf("Indexed(67).RGB() = %d,%d,%d, want 95,135,175", r, g, b)
	}
}

func TestIndexedRGB_Grayscale(t *testing.T) {
	r, g, b := Indexed(232).RGB()
	if r != 8 || g != 8 || b != 8 {
		t.Fatalf("Indexed(232).RGB() = %d,%d,%d, want 8,8,8", r, g, b)
	}
	r, g, b = Indexed(255).RGB()
	if r != 238 || g != 238 || b != 238 {
		t.Fatalf("Indexed(255).RGB() = %d,%d,%d, want 238,238,238", r, g, b)
	}
}

func TestForeground_Tiers(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 50}

	if got := Foreground(c, CapNone); got != "" {
		t.Fatalf("CapNone sequence = %q, want empty", got)
	}
	if got := Foreground(c, CapTrueColor); got != "\x1b[38;2;200;100;50m" {
		t.Fatalf("truecolor sequence = %q", got)
	}
	if got := Foreground(Indexed(196), CapANSI256); got != "\x1b[38;5;196m" {
		t.Fatalf("ansi256 sequence = %q", got)
	}
	// Bright red (9) encodes in the bright range.
	if got := Foreground(Indexed(9), CapANSI16); got != "\x1b[91m" {
		t.Fatalf("ansi16 bright sequence = %q", got)
	}
	if got := Background(Indexed(4), CapANSI16); got != "\x1b[44m" {
		t.Fatalf("ansi16 background sequence = %q", got)
	}
}

func TestForeground_Downconversion(t *testing.T) {
	// Pure red downconverts to bright red on 16-color terminals.
	if got := Foreground(RGB{R: 255}, CapANSI16); got != "\x1b[91m" {
		t.Fatalf("red on ansi16 = %q, want bright red", got)
	}
	// Near-gray RGB lands on the grayscale ramp in 256-color mode.
	got := Foreground(RGB{R: 120, G: 120, B: 122}, CapANSI256)
	want := Foreground(nearest256(120, 120, 122), CapANSI256)
	if got != want {
		t.Fatalf("gray downconversion = %q, want %q", got, want)
	}
	if idx := nearest256(120, 120, 122); idx < 232 {
		t.Fatalf("nearest256 near-gray = %d, want grayscale ramp slot", idx)
	}
}

func TestDefaultEmitsReset(t *testing.T) {
	if got := Foreground(Default, CapTrueColor); got != "\x1b[39m" {
		t.Fatalf("Default foreground = %q, want reset", got)
	}
	if got := Background(Default, CapANSI16); got != "\x1b[49m" {
		t.Fatalf("Default background = %q, want reset", got)
	}
	if got := Foreground(Default, CapNone); got != "" {
		t.Fatalf("Default on CapNone = %q, want empty", got)
	}
}

func TestParseCapability(t *testing.T) {
	cases := []struct {
		in   string
		want Capability
	}{
		{"none", CapNone},
		{"ansi16", CapANSI16},
		{"256", CapANSI256},
		{" TrueColor ", CapTrueColor},
	}
	for _, tc := range cases {
		got, err := ParseCapability(tc.in)
		if err != nil {
			t.Fatalf("ParseCapability(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCapability(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseCapability("bogus"); err == nil {
		t.Fatalf("ParseCapability(bogus) succeeded, want error")
	}
}
