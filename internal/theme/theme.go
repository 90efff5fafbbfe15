// Package theme provides the immutable theme descriptor consumed by the style
// resolvers: color tokens, fonts, and the dark/mode/version flags.
//
// A *Theme is never modified after construction. Derive variants with With
// and pass the result explicitly to whatever needs it.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"paper/internal/color"
	perrors "paper/internal/errors"
	"paper/internal/overlay"
)

// Mode controls how dark themes treat elevated surfaces.
type Mode string

const (
	// ModeExact uses surface colors as given.
	ModeExact Mode = "exact"
	// ModeAdaptive tints elevated surfaces in dark themes.
	ModeAdaptive Mode = "adaptive"
)

// ParseMode accepts "adaptive" or "exact" (empty means exact).
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeExact:
		return ModeExact, nil
	case ModeAdaptive:
		return ModeAdaptive, nil
	}
	return "", perrors.New(perrors.CodeInvalidTheme, fmt.Sprintf("invalid mode %q (want adaptive or exact)", s), nil)
}

// Version is the Material Design schema a theme follows.
type Version int

const (
	V2 Version = 2
	V3 Version = 3
)

// Token names a color role in a Palette.
type Token string

// Material 2 tokens.
const (
	Accent       Token = "accent"
	Text         Token = "text"
	Disabled     Token = "disabled"
	Placeholder  Token = "placeholder"
	Notification Token = "notification"
	Tooltip      Token = "tooltip"
)

// Tokens shared by both versions.
const (
	Primary    Token = "primary"
	Background Token = "background"
	Surface    Token = "surface"
	Error      Token = "error"
	OnSurface  Token = "onSurface"
	Backdrop   Token = "backdrop"
)

// Material 3 tokens.
const (
	PrimaryContainer     Token = "primaryContainer"
	Secondary            Token = "secondary"
	SecondaryContainer   Token = "secondaryContainer"
	Tertiary             Token = "tertiary"
	TertiaryContainer    Token = "tertiaryContainer"
	SurfaceVariant       Token = "surfaceVariant"
	SurfaceDisabled      Token = "surfaceDisabled"
	ErrorContainer       Token = "errorContainer"
	OnPrimary            Token = "onPrimary"
	OnPrimaryContainer   Token = "onPrimaryContainer"
	OnSecondary          Token = "onSecondary"
	OnSecondaryContainer Token = "onSecondaryContainer"
	OnTertiary           Token = "onTertiary"
	OnTertiaryContainer  Token = "onTertiaryContainer"
	OnSurfaceVariant     Token = "onSurfaceVariant"
	OnSurfaceDisabled    Token = "onSurfaceDisabled"
	OnError              Token = "onError"
	OnErrorContainer     Token = "onErrorContainer"
	OnBackground         Token = "onBackground"
	Outline              Token = "outline"
	OutlineVariant       Token = "outlineVariant"
	InverseSurface       Token = "inverseSurface"
	InverseOnSurface     Token = "inverseOnSurface"
	InversePrimary       Token = "inversePrimary"
	Shadow               Token = "shadow"
	Scrim                Token = "scrim"
)

// V2Tokens lists the tokens every Material 2 theme defines.
var V2Tokens = []Token{
	Primary, Accent, Background, Surface, Error, Text, OnSurface,
	Disabled, Placeholder, Backdrop, Notification, Tooltip,
}

// V3Tokens lists the tokens every Material 3 theme defines.
var V3Tokens = []Token{
	Primary, PrimaryContainer, Secondary, SecondaryContainer, Tertiary,
	TertiaryContainer, Surface, SurfaceVariant, SurfaceDisabled, Background,
	Error, ErrorContainer, OnPrimary, OnPrimaryContainer, OnSecondary,
	OnSecondaryContainer, OnTertiary, OnTertiaryContainer, OnSurface,
	OnSurfaceVariant, OnSurfaceDisabled, OnError, OnErrorContainer,
	OnBackground, Outline, OutlineVariant, InverseSurface, InverseOnSurface,
	InversePrimary, Shadow, Scrim, Backdrop,
}

// Palette maps tokens to colors.
type Palette map[Token]color.Color

func (p Palette) clone() Palette {
	out := make(Palette, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Tokens returns the palette's tokens in sorted order.
func (p Palette) Tokens() []Token {
	out := make([]Token, 0, len(p))
	for k := range p {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Theme is the immutable descriptor every resolver reads.
type Theme struct {
	Name           string
	Dark           bool
	Mode           Mode
	Version        Version
	Roundness      int
	Colors         Palette
	Elevation      [overlay.MaxLevel + 1]color.Color
	Fonts          Fonts
	AnimationScale float64
}

// IsV3 reports whether t follows the Material 3 schema.
func (t *Theme) IsV3() bool {
	return t.Version == V3
}

// IsAdaptive reports whether elevated surfaces get an overlay tint.
func (t *Theme) IsAdaptive() bool {
	return t.Mode == ModeAdaptive
}

// Color returns the color for tok, or transparent when the theme lacks it.
func (t *Theme) Color(tok Token) color.Color {
	c, _ := t.Lookup(tok)
	return c
}

// Lookup returns the color for tok and whether the theme defines it.
func (t *Theme) Lookup(tok Token) (color.Color, bool) {
	if t == nil {
		return color.Transparent, false
	}
	c, ok := t.Colors[tok]
	if !ok {
		return color.Transparent, false
	}
	return c, true
}

// Level returns the Material 3 elevation surface for level, clamped to 0..5.
func (t *Theme) Level(level int) color.Color {
	return t.Elevation[overlay.Level(level)]
}

// RequiredTokens returns the tokens a theme of this version must define.
func (t *Theme) RequiredTokens() []Token {
	if t.IsV3() {
		return V3Tokens
	}
	return V2Tokens
}

// Validate reports missing tokens and unsupported flags.
func (t *Theme) Validate() error {
	if t.Version != V2 && t.Version != V3 {
		return perrors.New(perrors.CodeInvalidTheme, fmt.Sprintf("theme %q: unsupported version %d", t.Name, t.Version), nil)
	}
	if t.Mode != ModeExact && t.Mode != ModeAdaptive {
		return perrors.New(perrors.CodeInvalidTheme, fmt.Sprintf("theme %q: invalid mode %q", t.Name, t.Mode), nil)
	}
	var missing []string
	for _, tok := range t.RequiredTokens() {
		if _, ok := t.Colors[tok]; !ok {
			missing = append(missing, string(tok))
		}
	}
	if len(missing) > 0 {
		return perrors.New(perrors.CodeUnknownToken,
			fmt.Sprintf("theme %q: missing tokens %s", t.Name, strings.Join(missing, ", ")), nil)
	}
	return nil
}

func (t *Theme) clone() *Theme {
	out := *t
	out.Colors = t.Colors.clone()
	out.Fonts = t.Fonts.clone()
	return &out
}

// deriveElevation recomputes the Material 3 levels from surface and primary.
func (t *Theme) deriveElevation() {
	if !t.IsV3() {
		return
	}
	t.Elevation = overlay.Levels(t.Color(Surface), t.Color(Primary))
}

// Default returns the stock theme for a version and brightness.
func Default(version Version, dark bool) *Theme {
	switch {
	case version == V2 && dark:
		return MD2Dark()
	case version == V2:
		return MD2Light()
	case dark:
		return MD3Dark()
	}
	return MD3Light()
}
