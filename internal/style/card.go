package style

import (
	"paper/internal/color"
	"paper/internal/theme"
)

// CardColors is the paint of a Card.
type CardColors struct {
	Background  color.Color
	Border      color.Color
	BorderWidth float64
}

func (c CardColors) Swatches() []Swatch {
	return []Swatch{{"background", c.Background}, {"border", c.Border}}
}

// Card resolves a card in p.Mode: elevated (default), outlined or contained.
// Material 2 cards sit on a Surface at p.Elevation, or 1 when unset.
func Card(th *theme.Theme, p Props) CardColors {
	if p.Mode == "" {
		p.Mode = ModeElevated
	}
	out := CardColors{Border: color.Transparent}
	if p.isMode(ModeOutlined) {
		out.Border = cardBorder(th)
		out.BorderWidth = 1
	}

	if c, ok := p.custom("background"); ok {
		out.Background = c
		return out
	}
	if th.IsV3() {
		switch p.Mode {
		case ModeContained:
			out.Background = th.Color(theme.SurfaceVariant)
		case ModeOutlined:
			out.Background = th.Color(theme.Surface)
		default:
			out.Background = th.Level(1)
		}
		return out
	}
	def := 1
	if p.isMode(ModeOutlined) {
		def = 0
	}
	out.Background = SurfaceBackground(th, p.elevationOr(def))
	return out
}

func cardBorder(th *theme.Theme) color.Color {
	if th.IsV3() {
		return th.Color(theme.Outline)
	}
	return onThemeBase(th).Alpha(0.12)
}

func init() {
	register("card", func(th *theme.Theme, p Props) Result { return Card(th, p) })
}
