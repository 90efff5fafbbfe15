package overlay

import (
	"math"
	"testing"

	"paper/internal/color"
)

var darkSurface = color.Hex(0x121212)

func distance(a, b color.Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func TestZeroElevationIsIdentity(t *testing.T) {
	for _, s := range []color.Color{darkSurface, color.White, color.MustParse("rgba(10, 20, 30, 0.5)")} {
		if got := Overlay(0, s); got != s {
			t.Fatalf("Overlay(0, %v) = %v", s, got)
		}
	}
}

func TestOpacityTableMonotonic(t *testing.T) {
	prev := -1.0
	for e := 0; e <= MaxElevation; e++ {
		o := Opacity(e)
		if o < prev {
			t.Fatalf("opacity decreased at elevation %d: %v < %v", e, o, prev)
		}
		prev = o
	}
	if Opacity(1) != 0.05 || Opacity(24) != 0.16 {
		t.Fatalf("table endpoints wrong: 1=%v 24=%v", Opacity(1), Opacity(24))
	}
}

func TestOverlayMoreTintedWithElevation(t *testing.T) {
	low := Overlay(1, darkSurface)
	high := Overlay(8, darkSurface)
	if distance(high, color.White) >= distance(low, color.White) {
		t.Fatalf("elevation 8 (%v) should be closer to the tint than elevation 1 (%v)", high, low)
	}
}

func TestOverlayClampsElevation(t *testing.T) {
	if Overlay(-3, darkSurface) != darkSurface {
		t.Fatalf("negative elevation should clamp to 0")
	}
	if Overlay(100, darkSurface) != Overlay(MaxElevation, darkSurface) {
		t.Fatalf("large elevation should clamp to %d", MaxElevation)
	}
}

func TestOverlayKnownValue(t *testing.T) {
	// 18 + (255-18)*0.05 = 29.85
	if got, want := Overlay(1, darkSurface), color.RGB(30, 30, 30); got != want {
		t.Fatalf("Overlay(1) = %v, want %v", got, want)
	}
}

func TestOverlayWithTint(t *testing.T) {
	tint := color.Hex(0xbb86fc)
	got := OverlayWith(24, darkSurface, tint)
	if distance(got, tint) >= distance(darkSurface, tint) {
		t.Fatalf("overlay should move surface toward tint")
	}
}

func TestOverlayDeterministic(t *testing.T) {
	for e := 0; e <= MaxElevation; e++ {
		if Overlay(e, darkSurface) != Overlay(e, darkSurface) {
			t.Fatalf("overlay not deterministic at %d", e)
		}
	}
}

func TestLevels(t *testing.T) {
	surface := color.Hex(0xfffbfe)
	primary := color.Hex(0x6750a4)
	levels := Levels(surface, primary)
	if !levels[0].IsTransparent() {
		t.Fatalf("level0 should be transparent")
	}
	for i := 2; i <= MaxLevel; i++ {
		if distance(levels[i], primary) > distance(levels[i-1], primary) {
			t.Fatalf("level%d should be at least as tinted as level%d", i, i-1)
		}
	}
	// Published MD3 light level1 is rgb(247, 243, 249); allow rounding slack.
	if d := distance(levels[1], color.RGB(247, 243, 249)); d > 2 {
		t.Fatalf("level1 = %v, too far from reference (%v)", levels[1], d)
	}
	if Level(9) != MaxLevel || Level(-1) != 0 {
		t.Fatalf("Level should clamp")
	}
}
