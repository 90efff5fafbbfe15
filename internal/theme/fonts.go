package theme

import (
	"fmt"
	"strings"

	perrors "paper/internal/errors"
)

// Platform selects the stock font families.
type Platform string

const (
	Android Platform = "android"
	IOS     Platform = "ios"
	Web     Platform = "web"
)

// ParsePlatform accepts android, ios or web (empty means android).
func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case "", Android:
		return Android, nil
	case IOS:
		return IOS, nil
	case Web:
		return Web, nil
	}
	return "", perrors.New(perrors.CodeConfigurationError, fmt.Sprintf("unknown platform %q", s), nil)
}

// Font describes one text style. Zero fields mean "inherit" when merging.
type Font struct {
	Family        string  `json:"family,omitempty" mapstructure:"family"`
	Weight        string  `json:"weight,omitempty" mapstructure:"weight"`
	Size          float64 `json:"size,omitempty" mapstructure:"size"`
	LineHeight    float64 `json:"lineHeight,omitempty" mapstructure:"lineHeight"`
	LetterSpacing float64 `json:"letterSpacing,omitempty" mapstructure:"letterSpacing"`
}

func (f Font) merge(o Font) Font {
	if o.Family != "" {
		f.Family = o.Family
	}
	if o.Weight != "" {
		f.Weight = o.Weight
	}
	if o.Size != 0 {
		f.Size = o.Size
	}
	if o.LineHeight != 0 {
		f.LineHeight = o.LineHeight
	}
	if o.LetterSpacing != 0 {
		f.LetterSpacing = o.LetterSpacing
	}
	return f
}

// Variant names a Material 3 typescale entry.
type Variant string

const (
	DisplayLarge   Variant = "displayLarge"
	DisplayMedium  Variant = "displayMedium"
	DisplaySmall   Variant = "displaySmall"
	HeadlineLarge  Variant = "headlineLarge"
	HeadlineMedium Variant = "headlineMedium"
	HeadlineSmall  Variant = "headlineSmall"
	TitleLarge     Variant = "titleLarge"
	TitleMedium    Variant = "titleMedium"
	TitleSmall     Variant = "titleSmall"
	LabelLarge     Variant = "labelLarge"
	LabelMedium    Variant = "labelMedium"
	LabelSmall     Variant = "labelSmall"
	BodyLarge      Variant = "bodyLarge"
	BodyMedium     Variant = "bodyMedium"
	BodySmall      Variant = "bodySmall"
)

// Variants lists the typescale in display order.
var Variants = []Variant{
	DisplayLarge, DisplayMedium, DisplaySmall,
	HeadlineLarge, HeadlineMedium, HeadlineSmall,
	TitleLarge, TitleMedium, TitleSmall,
	LabelLarge, LabelMedium, LabelSmall,
	BodyLarge, BodyMedium, BodySmall,
}

// Fonts holds the Material 2 weights and the Material 3 typescale. Only the
// half matching the theme's version is populated.
type Fonts struct {
	Regular Font `json:"regular,omitempty"`
	Medium  Font `json:"medium,omitempty"`
	Light   Font `json:"light,omitempty"`
	Thin    Font `json:"thin,omitempty"`

	Default   Font             `json:"default,omitempty"`
	Typescale map[Variant]Font `json:"typescale,omitempty"`
}

func (f Fonts) clone() Fonts {
	if f.Typescale == nil {
		return f
	}
	ts := make(map[Variant]Font, len(f.Typescale))
	for k, v := range f.Typescale {
		ts[k] = v
	}
	f.Typescale = ts
	return f
}

// Style returns the typescale entry for v, falling back to Default.
func (f Fonts) Style(v Variant) Font {
	if s, ok := f.Typescale[v]; ok {
		return s
	}
	return f.Default
}

// FontConfig customizes ConfigureFonts.
type FontConfig struct {
	Version  Version
	Platform Platform
	// All is merged into every font (every weight for V2, every variant for V3).
	All Font
	// Variants is merged per typescale entry (V3 only).
	Variants map[Variant]Font
	// Weights is merged per named weight: regular, medium, light, thin (V2 only).
	Weights map[string]Font
}

const webFamily = `Roboto, "Helvetica Neue", Helvetica, Arial, sans-serif`

func md2Weights(p Platform) (regular, medium, light, thin Font) {
	switch p {
	case IOS:
		return Font{Family: "System", Weight: "400"}, Font{Family: "System", Weight: "500"},
			Font{Family: "System", Weight: "300"}, Font{Family: "System", Weight: "100"}
	case Web:
		return Font{Family: webFamily, Weight: "400"}, Font{Family: webFamily, Weight: "500"},
			Font{Family: webFamily, Weight: "300"}, Font{Family: webFamily, Weight: "100"}
	}
	return Font{Family: "sans-serif", Weight: "normal"}, Font{Family: "sans-serif-medium", Weight: "normal"},
		Font{Family: "sans-serif-light", Weight: "normal"}, Font{Family: "sans-serif-thin", Weight: "normal"}
}

func brandFamily(p Platform) string {
	switch p {
	case IOS:
		return "System"
	case Web:
		return webFamily
	}
	return "sans-serif"
}

type scale struct {
	size, lineHeight, letterSpacing float64
	weight                          string
}

var typescale = map[Variant]scale{
	DisplayLarge:   {57, 64, 0, "400"},
	DisplayMedium:  {45, 52, 0, "400"},
	DisplaySmall:   {36, 44, 0, "400"},
	HeadlineLarge:  {32, 40, 0, "400"},
	HeadlineMedium: {28, 36, 0, "400"},
	HeadlineSmall:  {24, 32, 0, "400"},
	TitleLarge:     {22, 28, 0, "400"},
	TitleMedium:    {16, 24, 0.15, "500"},
	TitleSmall:     {14, 20, 0.1, "500"},
	LabelLarge:     {14, 20, 0.1, "500"},
	LabelMedium:    {12, 16, 0.5, "500"},
	LabelSmall:     {11, 16, 0.5, "500"},
	BodyLarge:      {16, 24, 0.15, "400"},
	BodyMedium:     {14, 20, 0.25, "400"},
	BodySmall:      {12, 16, 0.4, "400"},
}

// ConfigureFonts builds the stock fonts for a version and platform and merges
// any overrides on top.
func ConfigureFonts(cfg FontConfig) Fonts {
	if cfg.Version == V2 {
		r, m, l, th := md2Weights(cfg.Platform)
		f := Fonts{
			Regular: r.merge(cfg.All).merge(cfg.Weights["regular"]),
			Medium:  m.merge(cfg.All).merge(cfg.Weights["medium"]),
			Light:   l.merge(cfg.All).merge(cfg.Weights["light"]),
			Thin:    th.merge(cfg.All).merge(cfg.Weights["thin"]),
		}
		return f
	}

	family := brandFamily(cfg.Platform)
	f := Fonts{
		Default:   Font{Family: family, Weight: "400"}.merge(cfg.All),
		Typescale: make(map[Variant]Font, len(typescale)),
	}
	for _, v := range Variants {
		s := typescale[v]
		base := Font{
			Family:        family,
			Weight:        s.weight,
			Size:          s.size,
			LineHeight:    s.lineHeight,
			LetterSpacing: s.letterSpacing,
		}
		f.Typescale[v] = base.merge(cfg.All).merge(cfg.Variants[v])
	}
	return f
}
