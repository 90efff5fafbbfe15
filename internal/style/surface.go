package style

import (
	"paper/internal/color"
	"paper/internal/overlay"
	"paper/internal/theme"
)

// SurfaceColors is the paint of a raised container.
type SurfaceColors struct {
	Background color.Color
	Shadow     color.Color
}

func (c SurfaceColors) Swatches() []Swatch {
	return []Swatch{{"background", c.Background}, {"shadow", c.Shadow}}
}

// SurfaceBackground is the surface color at an elevation. Material 3 uses the
// tonal elevation levels; Material 2 dark adaptive themes overlay white.
func SurfaceBackground(th *theme.Theme, elevation int) color.Color {
	if th.IsV3() {
		return th.Level(elevation)
	}
	if th.Dark && th.IsAdaptive() {
		return overlay.Overlay(elevation, th.Color(theme.Surface))
	}
	return th.Color(theme.Surface)
}

// Surface resolves a Surface. A custom "background" wins.
func Surface(th *theme.Theme, p Props) SurfaceColors {
	bg, ok := p.custom("background")
	if !ok {
		bg = SurfaceBackground(th, p.elevationOr(0))
	}
	shadow := color.Black
	if th.IsV3() {
		shadow = th.Color(theme.Shadow)
	}
	return SurfaceColors{Background: bg, Shadow: shadow}
}

func init() {
	register("surface", func(th *theme.Theme, p Props) Result { return Surface(th, p) })
}
