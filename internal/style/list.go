package style

import (
	"paper/internal/color"
	"paper/internal/theme"
)

// List variants.
const (
	ListItem      = "item"
	ListAccordion = "accordion"
	ListSubheader = "subheader"
)

// ListColors is the paint of a list row.
type ListColors struct {
	Title       color.Color
	Description color.Color
	Icon        color.Color
	Ripple      color.Color
}

func (c ListColors) Swatches() []Swatch {
	return []Swatch{
		{"title", c.Title},
		{"description", c.Description},
		{"icon", c.Icon},
		{"ripple", c.Ripple},
	}
}

// List resolves an item (default), accordion or subheader. An expanded
// accordion title uses primary. Custom roles: title, description, ripple.
func List(th *theme.Theme, p Props) ListColors {
	var out ListColors
	if th.IsV3() {
		out.Title = th.Color(theme.OnSurface)
		out.Description = th.Color(theme.OnSurfaceVariant)
		out.Icon = th.Color(theme.OnSurfaceVariant)
	} else {
		text := th.Color(theme.Text)
		out.Title = text.Alpha(0.87)
		out.Description = text.Alpha(0.54)
		out.Icon = text.Alpha(0.54)
	}

	switch p.Variant {
	case ListSubheader:
		out.Title = out.Description
	case ListAccordion:
		if p.Expanded {
			out.Title = th.Color(theme.Primary)
			out.Icon = out.Title
		}
	}
	if c, ok := p.custom("title"); ok {
		out.Title = c
	}
	if c, ok := p.custom("description"); ok {
		out.Description = c
	}
	out.Ripple = out.Title.Alpha(0.12)
	if c, ok := p.custom("ripple"); ok {
		out.Ripple = c
	}
	if p.Disabled {
		disabled := th.Color(theme.Disabled)
		if th.IsV3() {
			disabled = th.Color(theme.OnSurfaceDisabled)
		}
		out.Title, out.Description, out.Icon = disabled, disabled, disabled
	}
	return out
}

func init() {
	register("list", func(th *theme.Theme, p Props) Result { return List(th, p) })
}
