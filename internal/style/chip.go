package style

import (
	"paper/internal/color"
	"paper/internal/theme"
)

// ChipColors is the paint of a Chip.
type ChipColors struct {
	Background         color.Color
	SelectedBackground color.Color
	Border             color.Color
	Text               color.Color
	Icon               color.Color
	Ripple             color.Color
}

func (c ChipColors) Swatches() []Swatch {
	return []Swatch{
		{"background", c.Background},
		{"selectedBackground", c.SelectedBackground},
		{"border", c.Border},
		{"text", c.Text},
		{"icon", c.Icon},
		{"ripple", c.Ripple},
	}
}

// Chip resolves a flat (default) or outlined chip. Custom roles: background,
// selected (the selected content color), ripple. p.Elevated shows the
// selected overlay on Material 3 chips.
func Chip(th *theme.Theme, p Props) ChipColors {
	outlined := p.isMode(ModeOutlined)
	selected, hasSelected := p.custom("selected")

	bg := chipBackground(th, p, outlined)
	text := chipContent(th, p, outlined, selected, hasSelected, 0.87)
	icon := chipContent(th, p, outlined, selected, hasSelected, 0.54)

	out := ChipColors{
		Background:         bg,
		SelectedBackground: chipSelectedBackground(th, p, outlined, bg),
		Border:             chipBorder(th, p, outlined, selected, hasSelected, bg),
		Text:               text,
		Icon:               icon,
	}
	switch ripple, ok := p.custom("ripple"); {
	case ok:
		out.Ripple = ripple
	case th.IsV3():
		out.Ripple = text.Alpha(0.12)
	default:
		out.Ripple = text.Alpha(0.32)
	}
	return out
}

func chipDefaultBackground(th *theme.Theme, outlined bool) color.Color {
	if th.IsV3() {
		if outlined {
			return th.Color(theme.Surface)
		}
		return th.Color(theme.SecondaryContainer)
	}
	if outlined {
		return th.Color(theme.Surface)
	}
	if th.Dark {
		return color.Hex(0x383838)
	}
	return color.Hex(0xebebeb)
}

func chipBackground(th *theme.Theme, p Props, outlined bool) color.Color {
	if c, ok := p.custom("background"); ok {
		return c
	}
	if th.IsV3() && p.Disabled {
		if outlined {
			return color.Transparent
		}
		return th.Color(theme.OnSurfaceVariant).Alpha(0.12)
	}
	return chipDefaultBackground(th, outlined)
}

func chipSelectedBackground(th *theme.Theme, p Props, outlined bool, bg color.Color) color.Color {
	if th.IsV3() {
		mixin := th.Color(theme.OnSecondaryContainer)
		if outlined {
			mixin = th.Color(theme.OnSurfaceVariant)
		}
		weight := 0.0
		if p.Elevated {
			weight = 0.12
		}
		return bg.Mix(mixin, weight)
	}
	switch {
	case th.Dark && outlined:
		return bg.Lighten(0.2)
	case th.Dark:
		return bg.Lighten(0.4)
	case outlined:
		return bg.Darken(0.08)
	}
	return bg.Darken(0.2)
}

func chipBorder(th *theme.Theme, p Props, outlined bool, selected color.Color, hasSelected bool, bg color.Color) color.Color {
	if th.IsV3() {
		switch {
		case !outlined:
			return color.Transparent
		case p.Disabled:
			return th.Color(theme.OnSurfaceVariant).Alpha(0.12)
		case hasSelected:
			return selected.Alpha(0.29)
		}
		return th.Color(theme.Outline)
	}
	if !outlined {
		return bg
	}
	if hasSelected {
		return selected.Alpha(0.29)
	}
	return onThemeBase(th).Alpha(0.29)
}

// chipContent resolves text (alpha 0.87) or icon (alpha 0.54) colors; the
// alpha only applies to Material 2.
func chipContent(th *theme.Theme, p Props, outlined bool, selected color.Color, hasSelected bool, alpha float64) color.Color {
	if th.IsV3() {
		switch {
		case p.Disabled:
			return th.Color(theme.OnSurfaceDisabled)
		case hasSelected:
			return selected
		case outlined:
			return th.Color(theme.OnSurfaceVariant)
		}
		return th.Color(theme.OnSecondaryContainer)
	}
	switch {
	case p.Disabled:
		return th.Color(theme.Disabled)
	case hasSelected:
		return selected.Alpha(alpha)
	}
	return th.Color(theme.Text).Alpha(alpha)
}

func init() {
	register("chip", func(th *theme.Theme, p Props) Result { return Chip(th, p) })
}
