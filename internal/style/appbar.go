package style

import (
	"paper/internal/color"
	"paper/internal/overlay"
	"paper/internal/theme"
)

// DefaultAppbarElevation applies to Material 2 app bars when Props.Elevation is unset.
const DefaultAppbarElevation = 4

// AppbarColors is the paint of a top app bar and its content.
type AppbarColors struct {
	Background color.Color
	Title      color.Color
	Subtitle   color.Color
	Action     color.Color
}

func (c AppbarColors) Swatches() []Swatch {
	return []Swatch{
		{"background", c.Background},
		{"title", c.Title},
		{"subtitle", c.Subtitle},
		{"action", c.Action},
	}
}

// AppbarBackground picks the bar color: a custom color wins; Material 2 uses
// primary, or the elevation overlay on dark adaptive themes; Material 3 uses
// surface, or level2 when elevated.
func AppbarBackground(th *theme.Theme, elevation int, custom *color.Color, elevated bool) color.Color {
	if custom != nil {
		return *custom
	}
	if !th.IsV3() {
		if th.Dark && th.IsAdaptive() {
			return overlay.Overlay(elevation, th.Color(theme.Surface))
		}
		return th.Color(theme.Primary)
	}
	if elevated {
		return th.Level(2)
	}
	return th.Color(theme.Surface)
}

// Appbar resolves the bar and its content colors. Custom roles: background,
// title.
func Appbar(th *theme.Theme, p Props) AppbarColors {
	def := 0
	if !th.IsV3() {
		def = DefaultAppbarElevation
	}
	elevation := p.elevationOr(def)
	var custom *color.Color
	if c, ok := p.custom("background"); ok {
		custom = &c
	}
	bg := AppbarBackground(th, elevation, custom, p.Elevated)

	out := AppbarColors{Background: bg}
	if th.IsV3() {
		out.Title = th.Color(theme.OnSurface)
		out.Subtitle = th.Color(theme.OnSurfaceVariant)
		out.Action = th.Color(theme.OnSurfaceVariant)
	} else {
		content := ContentColor(bg, p.Dark)
		out.Title = content
		out.Subtitle = content.Alpha(0.7)
		out.Action = content
	}
	if c, ok := p.custom("title"); ok {
		out.Title = c
	}
	return out
}

func init() {
	register("appbar", func(th *theme.Theme, p Props) Result { return Appbar(th, p) })
}
