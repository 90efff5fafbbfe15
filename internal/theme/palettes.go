package theme

import "paper/internal/color"

// Seeds are the handful of colors a community palette provides. FromSeeds
// expands them into a full Material 3 theme.
type Seeds struct {
	Primary        string
	Secondary      string
	Tertiary       string
	Error          string
	Background     string
	SurfaceVariant string
	Text           string
	TextMuted      string
	Outline        string
	OutlineVariant string
}

// FromSeeds builds a Material 3 theme named name from seed colors. Container
// roles are the background tinted 30% toward their accent, and "on" roles
// pick black or white by contrast.
func FromSeeds(name string, dark bool, s Seeds) (*Theme, error) {
	parsed := map[Token]string{
		Primary:          s.Primary,
		Secondary:        s.Secondary,
		Tertiary:         s.Tertiary,
		Error:            s.Error,
		Background:       s.Background,
		SurfaceVariant:   s.SurfaceVariant,
		OnSurface:        s.Text,
		OnSurfaceVariant: s.TextMuted,
		Outline:          s.Outline,
		OutlineVariant:   s.OutlineVariant,
	}
	colors := make(Palette, len(parsed)+16)
	for tok, raw := range parsed {
		c, err := color.Parse(raw)
		if err != nil {
			return nil, err
		}
		colors[tok] = c
	}

	bg := colors[Background]
	text := colors[OnSurface]
	colors[Surface] = bg
	colors[OnBackground] = text
	colors[InverseSurface] = text
	colors[InverseOnSurface] = bg
	colors[InversePrimary] = colors[Primary].Mix(bg, 0.4)

	for accent, pair := range map[Token][2]Token{
		Primary:   {PrimaryContainer, OnPrimary},
		Secondary: {SecondaryContainer, OnSecondary},
		Tertiary:  {TertiaryContainer, OnTertiary},
		Error:     {ErrorContainer, OnError},
	} {
		colors[pair[0]] = bg.Mix(colors[accent], 0.3)
		colors[pair[1]] = contentOn(colors[accent])
	}
	colors[OnPrimaryContainer] = text
	colors[OnSecondaryContainer] = text
	colors[OnTertiaryContainer] = text
	colors[OnErrorContainer] = text

	base := Default(V3, dark)
	return base.With(Override{
		Name:   name,
		Colors: colors,
	}), nil
}

func contentOn(bg color.Color) color.Color {
	if bg.IsDark() {
		return color.White
	}
	return color.Black
}

type community struct {
	name  string
	dark  bool
	seeds Seeds
}

var communityPalettes = []community{
	{"material-dark", true, Seeds{
		Primary: "#82aaff", Secondary: "#c792ea", Tertiary: "#89ddff", Error: "#f07178",
		Background: "#263238", SurfaceVariant: "#37474f", Text: "#eeffff", TextMuted: "#546e7a",
		Outline: "#37474f", OutlineVariant: "#1e272c",
	}},
	{"material-light", false, Seeds{
		Primary: "#6182b8", Secondary: "#7c4dff", Tertiary: "#39adb5", Error: "#e53935",
		Background: "#fafafa", SurfaceVariant: "#f5f5f5", Text: "#263238", TextMuted: "#90a4ae",
		Outline: "#e0e0e0", OutlineVariant: "#eeeeee",
	}},
	{"dracula", true, Seeds{
		Primary: "#bd93f9", Secondary: "#ff79c6", Tertiary: "#8be9fd", Error: "#ff5555",
		Background: "#282a36", SurfaceVariant: "#44475a", Text: "#f8f8f2", TextMuted: "#6272a4",
		Outline: "#6272a4", OutlineVariant: "#44475a",
	}},
	{"nord-dark", true, Seeds{
		Primary: "#88c0d0", Secondary: "#81a1c1", Tertiary: "#8fbcbb", Error: "#bf616a",
		Background: "#2e3440", SurfaceVariant: "#3b4252", Text: "#eceff4", TextMuted: "#8b95a7",
		Outline: "#434c5e", OutlineVariant: "#434c5e",
	}},
	{"nord-light", false, Seeds{
		Primary: "#5e81ac", Secondary: "#81a1c1", Tertiary: "#8fbcbb", Error: "#bf616a",
		Background: "#eceff4", SurfaceVariant: "#e5e9f0", Text: "#2e3440", TextMuted: "#3b4252",
		Outline: "#4c566a", OutlineVariant: "#4c566a",
	}},
	{"gruvbox-dark", true, Seeds{
		Primary: "#83a598", Secondary: "#d3869b", Tertiary: "#fabd2f", Error: "#fb4934",
		Background: "#282828", SurfaceVariant: "#504945", Text: "#ebdbb2", TextMuted: "#a89984",
		Outline: "#504945", OutlineVariant: "#3c3836",
	}},
	{"gruvbox-light", false, Seeds{
		Primary: "#076678", Secondary: "#8f3f71", Tertiary: "#b57614", Error: "#9d0006",
		Background: "#fbf1c7", SurfaceVariant: "#ebdbb2", Text: "#3c3836", TextMuted: "#7c6f64",
		Outline: "#bdae93", OutlineVariant: "#d5c4a1",
	}},
	{"solarized-dark", true, Seeds{
		Primary: "#268bd2", Secondary: "#6c71c4", Tertiary: "#2aa198", Error: "#dc322f",
		Background: "#002b36", SurfaceVariant: "#073642", Text: "#839496", TextMuted: "#586e75",
		Outline: "#073642", OutlineVariant: "#073642",
	}},
	{"solarized-light", false, Seeds{
		Primary: "#268bd2", Secondary: "#6c71c4", Tertiary: "#2aa198", Error: "#dc322f",
		Background: "#fdf6e3", SurfaceVariant: "#eee8d5", Text: "#657b83", TextMuted: "#93a1a1",
		Outline: "#eee8d5", OutlineVariant: "#eee8d5",
	}},
	{"tokyonight-dark", true, Seeds{
		Primary: "#82aaff", Secondary: "#c099ff", Tertiary: "#ff966c", Error: "#ff757f",
		Background: "#222436", SurfaceVariant: "#2f334d", Text: "#c8d3f5", TextMuted: "#636da6",
		Outline: "#3b4261", OutlineVariant: "#292e42",
	}},
	{"tokyonight-light", false, Seeds{
		Primary: "#2e7de9", Secondary: "#9854f1", Tertiary: "#b15c00", Error: "#f52a65",
		Background: "#e1e2e7", SurfaceVariant: "#c8c9ce", Text: "#3760bf", TextMuted: "#848cb5",
		Outline: "#a8aecb", OutlineVariant: "#c8c9ce",
	}},
}
