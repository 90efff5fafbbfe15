package color

import (
	"math"
	"testing"

	perrors "paper/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", White},
		{"#000000", Black},
		{"#6200EE", RGB(0x62, 0x00, 0xee)},
		{"  #6200ee  ", RGB(0x62, 0x00, 0xee)},
		{"#0008", RGBA(0, 0, 0, float64(0x88)/255)},
		{"#ffffff80", RGBA(255, 255, 255, float64(0x80)/255)},
		{"rgb(103, 80, 164)", RGB(103, 80, 164)},
		{"rgba(50, 47, 55, 0.4)", RGBA(50, 47, 55, 0.4)},
		{"RGBA(28,27,31,1)", RGB(28, 27, 31)},
		{"transparent", Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "blue", "#12", "#12345", "rgb(1,2)", "rgb(256, 0, 0)", "rgba(0,0,0,2)", "#gggggg", "rgb(nan, 0, 0)", "rgba(0, 0, 0, nan)", "rgb(0, inf, 0)"} {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) expected error", in)
			continue
		}
		if !perrors.IsCode(err, perrors.CodeInvalidColor) {
			t.Errorf("Parse(%q) error code = %q", in, perrors.CodeOf(err))
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, in := range []string{"#6750a4", "rgba(50, 47, 55, 0.4)", "rgba(0, 0, 0, 0.12)"} {
		c := MustParse(in)
		if got := c.String(); got != in {
			t.Errorf("String() = %q, want %q", got, in)
		}
	}
}

func TestIsDark(t *testing.T) {
	if !Black.IsDark() {
		t.Fatalf("black should be dark")
	}
	if White.IsDark() {
		t.Fatalf("white should not be dark")
	}
	if !Hex(0x6200ee).IsDark() {
		t.Fatalf("MD2 primary purple should be dark")
	}
	if Hex(0x03dac4).IsDark() {
		t.Fatalf("MD2 accent teal should be light")
	}
	if White.IsLight() == White.IsDark() {
		t.Fatalf("IsLight must be the complement of IsDark")
	}
}

func TestMixEqualAlpha(t *testing.T) {
	surface := Hex(0x121212)
	got := surface.Mix(White, 0.05)
	// 0x12 = 18; 18*0.95 + 255*0.05 = 29.85
	want := RGB(30, 30, 30)
	if got != want {
		t.Fatalf("Mix = %v, want %v", got, want)
	}
	if surface.Mix(White, 0) != surface {
		t.Fatalf("zero weight must keep the base color")
	}
	if surface.Mix(White, 1) != White {
		t.Fatalf("full weight must return the mixin")
	}
}

func TestFadeAndAlpha(t *testing.T) {
	c := Hex(0x6750a4).Fade(0.32)
	if math.Abs(c.A-0.68) > 1e-9 {
		t.Fatalf("Fade(0.32) alpha = %v", c.A)
	}
	if Black.Alpha(2).A != 1 || Black.Alpha(-1).A != 0 {
		t.Fatalf("Alpha should clamp")
	}
}

func TestLightenDarken(t *testing.T) {
	base := Hex(0x383838)
	light := base.Lighten(0.4)
	dark := base.Darken(0.2)
	if light.Luminance() <= base.Luminance() {
		t.Fatalf("Lighten should increase luminance: %v -> %v", base, light)
	}
	if dark.Luminance() >= base.Luminance() {
		t.Fatalf("Darken should decrease luminance: %v -> %v", base, dark)
	}
	if White.Lighten(0.5) != White {
		t.Fatalf("white cannot get lighter")
	}
}

func TestOver(t *testing.T) {
	got := Black.Alpha(0.5).Over(White)
	if got.A != 1 {
		t.Fatalf("Over must be opaque")
	}
	if got.R < 127 || got.R > 128 {
		t.Fatalf("half black over white = %v", got)
	}
}

func TestContrast(t *testing.T) {
	if got := Contrast(Black, White); math.Abs(got-21) > 0.01 {
		t.Fatalf("Contrast(black, white) = %v, want 21", got)
	}
	if got := Contrast(White, White); math.Abs(got-1) > 1e-9 {
		t.Fatalf("Contrast(white, white) = %v, want 1", got)
	}
}

func TestTextRoundTripKeepsAlpha(t *testing.T) {
	for _, in := range []string{"#ff000080", "#6750a4", "rgba(0, 0, 0, 0.12)", "transparent", "#0000001f"} {
		c := MustParse(in)
		text, err := c.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Color
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if got != c {
			t.Errorf("%s: decoded %+v, want %+v", in, got, c)
		}
	}
	var c Color
	if err := c.UnmarshalText([]byte("rgb(nan, 0, 0)")); !perrors.IsCode(err, perrors.CodeInvalidColor) {
		t.Fatalf("expected invalid_color, got %v", err)
	}
}
