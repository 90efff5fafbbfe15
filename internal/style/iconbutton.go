package style

import (
	"paper/internal/color"
	"paper/internal/theme"
)

// IconButtonColors is the paint of an IconButton.
type IconButtonColors struct {
	Container color.Color
	Icon      color.Color
	Border    color.Color
	Ripple    color.Color
}

func (c IconButtonColors) Swatches() []Swatch {
	return []Swatch{
		{"container", c.Container},
		{"icon", c.Icon},
		{"border", c.Border},
		{"ripple", c.Ripple},
	}
}

// IconButton resolves an icon button. p.Mode is empty (standard), contained,
// contained-tonal or outlined. Custom roles: container, icon, ripple.
func IconButton(th *theme.Theme, p Props) IconButtonColors {
	icon := iconButtonIcon(th, p)
	out := IconButtonColors{
		Container: iconButtonContainer(th, p),
		Icon:      icon,
		Border:    color.Transparent,
	}
	if th.IsV3() && p.isMode(ModeOutlined) && !p.Selected {
		out.Border = th.Color(theme.Outline)
		if p.Disabled {
			out.Border = th.Color(theme.SurfaceDisabled)
		}
	}
	switch ripple, ok := p.custom("ripple"); {
	case ok:
		out.Ripple = ripple
	case th.IsV3():
		out.Ripple = icon.Alpha(0.12)
	default:
		out.Ripple = icon.Alpha(0.32)
	}
	return out
}

func iconButtonContainer(th *theme.Theme, p Props) color.Color {
	custom, hasCustom := p.custom("container")
	if th.IsV3() {
		if p.Disabled && (p.isMode(ModeContained) || p.isMode(ModeContainedTonal)) {
			return th.Color(theme.SurfaceDisabled)
		}
		if hasCustom {
			return custom
		}
		switch p.Mode {
		case ModeContained:
			if p.Selected {
				return th.Color(theme.Primary)
			}
			return th.Color(theme.SurfaceVariant)
		case ModeContainedTonal:
			if p.Selected {
				return th.Color(theme.SecondaryContainer)
			}
			return th.Color(theme.SurfaceVariant)
		case ModeOutlined:
			if p.Selected {
				return th.Color(theme.InverseSurface)
			}
		}
		return color.Transparent
	}
	if hasCustom {
		return custom
	}
	return color.Transparent
}

func iconButtonIcon(th *theme.Theme, p Props) color.Color {
	custom, hasCustom := p.custom("icon")
	if !th.IsV3() {
		if hasCustom {
			return custom
		}
		return th.Color(theme.Text)
	}
	if p.Disabled {
		return th.Color(theme.OnSurfaceDisabled)
	}
	if hasCustom {
		return custom
	}
	switch p.Mode {
	case ModeContained:
		if p.Selected {
			return th.Color(theme.OnPrimary)
		}
		return th.Color(theme.Primary)
	case ModeContainedTonal:
		if p.Selected {
			return th.Color(theme.OnSecondaryContainer)
		}
		return th.Color(theme.OnSurfaceVariant)
	case ModeOutlined:
		if p.Selected {
			return th.Color(theme.InverseOnSurface)
		}
		return th.Color(theme.OnSurfaceVariant)
	}
	if p.Selected {
		return th.Color(theme.Primary)
	}
	return th.Color(theme.OnSurfaceVariant)
}

func init() {
	register("icon-button", func(th *theme.Theme, p Props) Result { return IconButton(th, p) })
}
