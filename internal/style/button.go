package style

import (
	"paper/internal/color"
	"paper/internal/theme"
)

// HairlineWidth is the thinnest drawable border, used by Material 2 outlines.
const HairlineWidth = 0.5

// ButtonColors is the paint of a Button.
type ButtonColors struct {
	Background  color.Color
	Text        color.Color
	Border      color.Color
	BorderWidth float64
	Ripple      color.Color
}

func (c ButtonColors) Swatches() []Swatch {
	return []Swatch{
		{"background", c.Background},
		{"text", c.Text},
		{"border", c.Border},
		{"ripple", c.Ripple},
	}
}

// Button resolves a button in p.Mode (text when empty). Custom roles:
// background, text. Custom colors are ignored while disabled.
func Button(th *theme.Theme, p Props) ButtonColors {
	if p.Mode == "" {
		p.Mode = ModeText
	}
	bg := buttonBackground(th, p)
	text := buttonText(th, p, bg)
	return ButtonColors{
		Background:  bg,
		Text:        text,
		Border:      buttonBorder(th, p),
		BorderWidth: buttonBorderWidth(th, p),
		Ripple:      text.Alpha(0.12),
	}
}

func buttonBackground(th *theme.Theme, p Props) color.Color {
	if c, ok := p.custom("background"); ok && !p.Disabled {
		return c
	}
	if th.IsV3() {
		if p.Disabled {
			if p.isMode(ModeOutlined) || p.isMode(ModeText) {
				return color.Transparent
			}
			return th.Color(theme.SurfaceDisabled)
		}
		switch p.Mode {
		case ModeElevated:
			return th.Level(1)
		case ModeContained:
			return th.Color(theme.Primary)
		case ModeContainedTonal:
			return th.Color(theme.SecondaryContainer)
		}
	}
	if p.isMode(ModeContained) {
		if p.Disabled {
			return onThemeBase(th).Alpha(0.12)
		}
		return th.Color(theme.Primary)
	}
	return color.Transparent
}

func buttonText(th *theme.Theme, p Props, bg color.Color) color.Color {
	if c, ok := p.custom("text"); ok && !p.Disabled {
		return c
	}
	filled := p.isMode(ModeContained) || p.isMode(ModeContainedTonal) || p.isMode(ModeElevated)
	if th.IsV3() {
		if p.Disabled {
			return th.Color(theme.OnSurfaceDisabled)
		}
		if p.Dark != nil && filled {
			return ContentColor(bg, p.Dark)
		}
		switch p.Mode {
		case ModeOutlined, ModeText, ModeElevated:
			return th.Color(theme.Primary)
		case ModeContained:
			return th.Color(theme.OnPrimary)
		case ModeContainedTonal:
			return th.Color(theme.OnSecondaryContainer)
		}
	}
	if p.Disabled {
		return onThemeBase(th).Alpha(0.32)
	}
	if p.isMode(ModeContained) {
		return ContentColor(bg, p.Dark)
	}
	return th.Color(theme.Primary)
}

func buttonBorder(th *theme.Theme, p Props) color.Color {
	if !p.isMode(ModeOutlined) {
		return color.Transparent
	}
	if th.IsV3() {
		if p.Disabled {
			return th.Color(theme.SurfaceDisabled)
		}
		return th.Color(theme.Outline)
	}
	return onThemeBase(th).Alpha(0.29)
}

func buttonBorderWidth(th *theme.Theme, p Props) float64 {
	if !p.isMode(ModeOutlined) {
		return 0
	}
	if th.IsV3() {
		return 1
	}
	return HairlineWidth
}

func init() {
	register("button", func(th *theme.Theme, p Props) Result { return Button(th, p) })
}
