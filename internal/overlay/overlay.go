// Package overlay computes elevation tints: the lighter surface colors used
// to suggest height in dark themes, and the Material 3 tonal elevation levels.
package overlay

import "paper/internal/color"

// MaxElevation is the highest elevation with a distinct overlay opacity.
const MaxElevation = 24

// MaxLevel is the highest Material 3 elevation level.
const MaxLevel = 5

// opacity maps elevation to overlay opacity in percent.
var opacity = [MaxElevation + 1]float64{
	0: 0,
	1: 5, 2: 7, 3: 8, 4: 9, 5: 10,
	6: 11, 7: 11.5, 8: 12, 9: 12.5, 10: 13,
	11: 13.5, 12: 14, 13: 14.25, 14: 14.5, 15: 14.75,
	16: 15, 17: 15.12, 18: 15.24, 19: 15.36, 20: 15.48,
	21: 15.6, 22: 15.72, 23: 15.84, 24: 16,
}

// levelOpacity maps Material 3 elevation levels 1..5 to tint opacity in percent.
var levelOpacity = [MaxLevel + 1]float64{0, 5, 8, 11, 12, 14}

// ClampElevation limits elevation to [0, MaxElevation].
func ClampElevation(elevation int) int {
	switch {
	case elevation < 0:
		return 0
	case elevation > MaxElevation:
		return MaxElevation
	}
	return elevation
}

// Opacity returns the overlay opacity for elevation as a fraction in [0, 0.16].
func Opacity(elevation int) float64 {
	return opacity[ClampElevation(elevation)] / 100
}

// Overlay tints surface with white according to elevation.
func Overlay(elevation int, surface color.Color) color.Color {
	return OverlayWith(elevation, surface, color.White)
}

// OverlayWith blends tint over surface at the opacity for elevation.
// Elevation 0 returns surface unchanged.
func OverlayWith(elevation int, surface, tint color.Color) color.Color {
	a := Opacity(elevation)
	if a == 0 {
		return surface
	}
	return surface.Mix(tint.Alpha(surface.A), a)
}

// Level limits a Material 3 elevation level to [0, MaxLevel].
func Level(level int) int {
	switch {
	case level < 0:
		return 0
	case level > MaxLevel:
		return MaxLevel
	}
	return level
}

// Levels derives the Material 3 elevation surfaces: level0 is transparent,
// levels 1 through 5 tint surface with primary.
func Levels(surface, primary color.Color) [MaxLevel + 1]color.Color {
	var out [MaxLevel + 1]color.Color
	out[0] = color.Transparent
	for i := 1; i <= MaxLevel; i++ {
		out[i] = surface.Mix(primary.Alpha(surface.A), levelOpacity[i]/100)
	}
	return out
}
