package style

import (
	"paper/internal/color"
	"paper/internal/theme"
)

// FABColors is the paint of a floating action button.
type FABColors struct {
	Background color.Color
	Foreground color.Color
	Ripple     color.Color
}

func (c FABColors) Swatches() []Swatch {
	return []Swatch{{"background", c.Background}, {"foreground", c.Foreground}, {"ripple", c.Ripple}}
}

var fabDefaultForeground = color.Black.Alpha(0.54)

// FAB resolves a floating action button. p.Variant selects the Material 3
// container (primary by default). Custom roles: background, color.
func FAB(th *theme.Theme, p Props) FABColors {
	if p.Variant == "" {
		p.Variant = VariantPrimary
	}
	bg := fabBackground(th, p)
	fg := fabForeground(th, p, bg)
	return FABColors{Background: bg, Foreground: fg, Ripple: fg.Alpha(0.12)}
}

func fabBackground(th *theme.Theme, p Props) color.Color {
	if c, ok := p.custom("background"); ok && !p.Disabled {
		return c
	}
	if th.IsV3() {
		if p.Disabled {
			return th.Color(theme.SurfaceDisabled)
		}
		switch p.Variant {
		case VariantSecondary:
			return th.Color(theme.SecondaryContainer)
		case VariantTertiary:
			return th.Color(theme.TertiaryContainer)
		case VariantSurface:
			return th.Level(3)
		}
		return th.Color(theme.PrimaryContainer)
	}
	if p.Disabled {
		return onThemeBase(th).Alpha(0.12)
	}
	return th.Color(theme.Accent)
}

func fabForeground(th *theme.Theme, p Props, bg color.Color) color.Color {
	if c, ok := p.custom("color"); ok && !p.Disabled {
		return c
	}
	if th.IsV3() {
		if p.Disabled {
			return th.Color(theme.OnSurfaceDisabled)
		}
		switch p.Variant {
		case VariantSecondary:
			return th.Color(theme.OnSecondaryContainer)
		case VariantTertiary:
			return th.Color(theme.OnTertiaryContainer)
		case VariantSurface:
			return th.Color(theme.Primary)
		}
		return th.Color(theme.OnPrimaryContainer)
	}
	if p.Disabled {
		return onThemeBase(th).Alpha(0.32)
	}
	if !bg.IsTransparent() && bg.IsDark() {
		return color.White
	}
	return fabDefaultForeground
}

func init() {
	register("fab", func(th *theme.Theme, p Props) Result { return FAB(th, p) })
}
