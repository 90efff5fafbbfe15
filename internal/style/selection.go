package style

import (
	"paper/internal/color"
	"paper/internal/theme"
)

// SelectionColors is the paint of a checkbox or radio button.
type SelectionColors struct {
	Checked   color.Color
	Unchecked color.Color
	// Control is the color drawn for the current checked/disabled state.
	Control color.Color
	Ripple  color.Color
}

func (c SelectionColors) Swatches() []Swatch {
	return []Swatch{
		{"checked", c.Checked},
		{"unchecked", c.Unchecked},
		{"control", c.Control},
		{"ripple", c.Ripple},
	}
}

// SelectionControl resolves a checkbox or radio button. p.Variant is android
// (default) or ios; iOS controls have no unchecked glyph. Custom roles:
// checked, unchecked.
func SelectionControl(th *theme.Theme, p Props) SelectionColors {
	if p.Variant == VariantIOS {
		return iosSelection(th, p)
	}

	checked, ok := p.custom("checked")
	if !ok {
		checked = accentFor(th)
	}
	unchecked, ok := p.custom("unchecked")
	if !ok {
		switch {
		case th.IsV3():
			unchecked = th.Color(theme.OnSurfaceVariant)
		case th.Dark:
			unchecked = th.Color(theme.Text).Alpha(0.7)
		default:
			unchecked = th.Color(theme.Text).Alpha(0.54)
		}
	}

	out := SelectionColors{Checked: checked, Unchecked: unchecked}
	switch {
	case p.Disabled:
		out.Control = disabledFor(th)
		if th.IsV3() {
			out.Ripple = th.Color(theme.OnSurface).Alpha(0.16)
		} else {
			out.Ripple = th.Color(theme.Text).Alpha(0.16)
		}
		return out
	case p.Checked:
		out.Control = checked
	default:
		out.Control = unchecked
	}
	out.Ripple = checked.Fade(0.32)
	return out
}

func iosSelection(th *theme.Theme, p Props) SelectionColors {
	checked, ok := p.custom("checked")
	if !ok {
		checked = accentFor(th)
	}
	if p.Disabled {
		checked = disabledFor(th)
	}
	control := color.Transparent
	if p.Checked {
		control = checked
	}
	return SelectionColors{
		Checked:   checked,
		Unchecked: color.Transparent,
		Control:   control,
		Ripple:    checked.Fade(0.32),
	}
}

func accentFor(th *theme.Theme) color.Color {
	if th.IsV3() {
		return th.Color(theme.Primary)
	}
	return th.Color(theme.Accent)
}

func disabledFor(th *theme.Theme) color.Color {
	if th.IsV3() {
		return th.Color(theme.OnSurfaceDisabled)
	}
	return th.Color(theme.Disabled)
}

// Switch material greys.
var (
	grey50  = color.Hex(0xfafafa)
	grey400 = color.Hex(0xbdbdbd)
	grey700 = color.Hex(0x616161)
	grey800 = color.Hex(0x424242)
)

// SwitchColors is the paint of a toggle switch.
type SwitchColors struct {
	Checked color.Color
	Thumb   color.Color
	Track   color.Color
}

func (c SwitchColors) Swatches() []Swatch {
	return []Swatch{{"checked", c.Checked}, {"thumb", c.Thumb}, {"track", c.Track}}
}

// Switch resolves a switch; p.Checked is its value. p.Variant ios tints the
// track with the checked color and leaves the thumb to the platform. Custom
// role: checked.
func Switch(th *theme.Theme, p Props) SwitchColors {
	checked, ok := p.custom("checked")
	if !ok {
		checked = accentFor(th)
	}
	if p.Variant == VariantIOS {
		return SwitchColors{Checked: checked, Thumb: color.White, Track: checked}
	}

	out := SwitchColors{Checked: checked}
	switch {
	case p.Disabled && th.Dark:
		out.Thumb = grey800
	case p.Disabled:
		out.Thumb = grey400
	case p.Checked:
		out.Thumb = checked
	case th.Dark:
		out.Thumb = grey400
	default:
		out.Thumb = grey50
	}

	switch {
	case p.Disabled && th.Dark && th.IsV3():
		out.Track = color.White.Alpha(0.06)
	case p.Disabled && th.Dark:
		out.Track = color.White.Alpha(0.1)
	case p.Disabled:
		out.Track = color.Black.Alpha(0.12)
	case p.Checked:
		out.Track = checked.Alpha(0.5)
	case th.Dark:
		out.Track = grey700
	default:
		out.Track = color.RGB(178, 175, 177)
	}
	return out
}

func init() {
	register("checkbox", func(th *theme.Theme, p Props) Result { return SelectionControl(th, p) })
	register("radio-button", func(th *theme.Theme, p Props) Result { return SelectionControl(th, p) })
	register("switch", func(th *theme.Theme, p Props) Result { return Switch(th, p) })
}
