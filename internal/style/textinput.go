package style

import (
	"paper/internal/color"
	"paper/internal/theme"
)

// TextInputColors is the paint of a flat or outlined text field.
type TextInputColors struct {
	Text        color.Color
	Active      color.Color
	Placeholder color.Color
	Selection   color.Color
	// Outline is the underline (flat) or outline (outlined) at rest.
	Outline color.Color
	// Indicator is the underline/outline as currently drawn: Active while
	// focused or in error, Outline otherwise.
	Indicator  color.Color
	Error      color.Color
	Background color.Color
}

func (c TextInputColors) Swatches() []Swatch {
	return []Swatch{
		{"text", c.Text},
		{"active", c.Active},
		{"placeholder", c.Placeholder},
		{"selection", c.Selection},
		{"outline", c.Outline},
		{"indicator", c.Indicator},
		{"error", c.Error},
		{"background", c.Background},
	}
}

// TextInput resolves a text field in p.Mode: flat (default) or outlined.
// Custom roles: text, active, outline, selection.
func TextInput(th *theme.Theme, p Props) TextInputColors {
	flat := !p.isMode(ModeOutlined)
	active := inputActive(th, p)
	out := TextInputColors{
		Text:        inputText(th, p),
		Active:      active,
		Placeholder: inputPlaceholder(th, p),
		Selection:   active,
		Error:       th.Color(theme.Error),
	}
	if c, ok := p.custom("selection"); ok {
		out.Selection = c
	}
	if flat {
		out.Outline = flatUnderline(th, p)
		out.Background = flatBackground(th, p)
	} else {
		out.Outline = outlinedOutline(th, p)
		out.Background = th.Color(theme.Background)
	}
	out.Indicator = out.Outline
	if (p.Focused || p.Error) && !p.Disabled {
		out.Indicator = active
	}
	return out
}

func inputText(th *theme.Theme, p Props) color.Color {
	if c, ok := p.custom("text"); ok {
		return c
	}
	if th.IsV3() {
		if p.Disabled {
			return th.Color(theme.OnSurfaceDisabled)
		}
		return th.Color(theme.OnSurface)
	}
	if p.Disabled {
		return th.Color(theme.Text).Alpha(0.54)
	}
	return th.Color(theme.Text)
}

func inputActive(th *theme.Theme, p Props) color.Color {
	if p.Error {
		return th.Color(theme.Error)
	}
	if c, ok := p.custom("active"); ok {
		return c
	}
	if p.Disabled {
		if th.IsV3() {
			return th.Color(theme.OnSurfaceDisabled)
		}
		return th.Color(theme.Text).Alpha(0.54)
	}
	return th.Color(theme.Primary)
}

func inputPlaceholder(th *theme.Theme, p Props) color.Color {
	if th.IsV3() {
		if p.Disabled {
			return th.Color(theme.OnSurfaceDisabled)
		}
		return th.Color(theme.OnSurfaceVariant)
	}
	if p.Disabled {
		return th.Color(theme.Disabled)
	}
	return th.Color(theme.Placeholder)
}

func flatBackground(th *theme.Theme, p Props) color.Color {
	if th.IsV3() {
		if p.Disabled {
			return th.Color(theme.OnSurface).Alpha(0.04)
		}
		return th.Color(theme.SurfaceVariant)
	}
	if p.Disabled {
		return color.Transparent
	}
	if th.Dark {
		return th.Color(theme.Background).Lighten(0.24)
	}
	return th.Color(theme.Background).Darken(0.06)
}

func flatUnderline(th *theme.Theme, p Props) color.Color {
	if c, ok := p.custom("outline"); ok && !p.Disabled {
		return c
	}
	if th.IsV3() {
		if p.Disabled {
			return th.Color(theme.OnSurfaceDisabled)
		}
		return th.Color(theme.OnSurfaceVariant)
	}
	if p.Disabled {
		return color.Transparent
	}
	return th.Color(theme.Disabled)
}

func outlinedOutline(th *theme.Theme, p Props) color.Color {
	custom, hasCustom := p.custom("outline")
	if hasCustom && !p.Disabled {
		return custom
	}
	if th.IsV3() {
		if p.Disabled {
			if th.Dark {
				return color.Transparent
			}
			return th.Color(theme.SurfaceDisabled)
		}
		return th.Color(theme.Outline)
	}
	if p.Disabled {
		if hasCustom && custom.IsTransparent() {
			return custom
		}
		return th.Color(theme.Disabled)
	}
	return th.Color(theme.Placeholder)
}

func init() {
	register("text-input", func(th *theme.Theme, p Props) Result { return TextInput(th, p) })
}
