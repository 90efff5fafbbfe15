package style

import (
	"paper/internal/color"
	"paper/internal/theme"
)

// SnackbarColors is the paint of a Snackbar.
type SnackbarColors struct {
	Background color.Color
	Text       color.Color
	Action     color.Color
}

func (c SnackbarColors) Swatches() []Swatch {
	return []Swatch{{"background", c.Background}, {"text", c.Text}, {"action", c.Action}}
}

// Snackbar resolves the inverse-surface message bar.
func Snackbar(th *theme.Theme, p Props) SnackbarColors {
	var out SnackbarColors
	if th.IsV3() {
		out = SnackbarColors{
			Background: th.Color(theme.InverseSurface),
			Text:       th.Color(theme.InverseOnSurface),
			Action:     th.Color(theme.InversePrimary),
		}
	} else {
		out = SnackbarColors{
			Background: th.Color(theme.OnSurface),
			Text:       th.Color(theme.Surface),
			Action:     th.Color(theme.Accent),
		}
	}
	if c, ok := p.custom("action"); ok {
		out.Action = c
	}
	return out
}

// BadgeColors is the paint of a notification badge.
type BadgeColors struct {
	Background color.Color
	Text       color.Color
}

func (c BadgeColors) Swatches() []Swatch {
	return []Swatch{{"background", c.Background}, {"text", c.Text}}
}

// Badge resolves a badge. Custom role: background.
func Badge(th *theme.Theme, p Props) BadgeColors {
	bg, custom := p.custom("background")
	if !custom {
		bg = th.Color(theme.Notification)
		if th.IsV3() {
			bg = th.Color(theme.Error)
		}
	}
	text := ContentColor(bg, nil)
	if th.IsV3() && !custom {
		text = th.Color(theme.OnError)
	}
	return BadgeColors{Background: bg, Text: text}
}

// DividerColors is the paint of a hairline divider.
type DividerColors struct {
	Line color.Color
}

func (c DividerColors) Swatches() []Swatch {
	return []Swatch{{"line", c.Line}}
}

// Divider resolves a divider line.
func Divider(th *theme.Theme, _ Props) DividerColors {
	if th.IsV3() {
		return DividerColors{Line: th.Color(theme.OutlineVariant)}
	}
	return DividerColors{Line: onThemeBase(th).Alpha(0.12)}
}

// ProgressBarColors is the paint of a linear progress indicator.
type ProgressBarColors struct {
	Tint  color.Color
	Track color.Color
}

func (c ProgressBarColors) Swatches() []Swatch {
	return []Swatch{{"tint", c.Tint}, {"track", c.Track}}
}

// ProgressBar resolves the bar and its track. Custom role: tint.
func ProgressBar(th *theme.Theme, p Props) ProgressBarColors {
	tint, ok := p.custom("tint")
	if !ok {
		tint = th.Color(theme.Primary)
	}
	if th.IsV3() {
		return ProgressBarColors{Tint: tint, Track: th.Color(theme.SurfaceVariant)}
	}
	return ProgressBarColors{Tint: tint, Track: tint.Alpha(0.38)}
}

// MenuColors is the paint of a popup menu.
type MenuColors struct {
	Background color.Color
	Item       color.Color
	Disabled   color.Color
}

func (c MenuColors) Swatches() []Swatch {
	return []Swatch{{"background", c.Background}, {"item", c.Item}, {"disabled", c.Disabled}}
}

// Menu resolves a menu surface raised to level 2 (Material 3) or elevation 8.
func Menu(th *theme.Theme, _ Props) MenuColors {
	if th.IsV3() {
		return MenuColors{
			Background: th.Level(2),
			Item:       th.Color(theme.OnSurface),
			Disabled:   th.Color(theme.OnSurfaceDisabled),
		}
	}
	return MenuColors{
		Background: SurfaceBackground(th, 8),
		Item:       th.Color(theme.Text),
		Disabled:   th.Color(theme.Disabled),
	}
}

// TooltipColors is the paint of a tooltip.
type TooltipColors struct {
	Background color.Color
	Text       color.Color
}

func (c TooltipColors) Swatches() []Swatch {
	return []Swatch{{"background", c.Background}, {"text", c.Text}}
}

// Tooltip resolves a tooltip.
func Tooltip(th *theme.Theme, _ Props) TooltipColors {
	if th.IsV3() {
		return TooltipColors{Background: th.Color(theme.OnSurface), Text: th.Color(theme.Surface)}
	}
	bg := th.Color(theme.Tooltip)
	return TooltipColors{Background: bg, Text: ContentColor(bg, nil)}
}

func init() {
	register("snackbar", func(th *theme.Theme, p Props) Result { return Snackbar(th, p) })
	register("badge", func(th *theme.Theme, p Props) Result { return Badge(th, p) })
	register("divider", func(th *theme.Theme, p Props) Result { return Divider(th, p) })
	register("progress-bar", func(th *theme.Theme, p Props) Result { return ProgressBar(th, p) })
	register("menu", func(th *theme.Theme, p Props) Result { return Menu(th, p) })
	register("tooltip", func(th *theme.Theme, p Props) Result { return Tooltip(th, p) })
}
