// Package color implements the small amount of color math the theme and
// style resolvers need: parsing CSS-like color strings, alpha handling,
// mixing, HSL lightness adjustments, and the light/dark decision.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	perrors "paper/internal/errors"
)

// Color is an sRGB color with straight (non-premultiplied) alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 0xff, G: 0xff, B: 0xff, A: 1}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with the given alpha, clamped to [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: clamp01(a)}
}

// Hex builds an opaque color from a 0xRRGGBB literal.
func Hex(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// MustParse is Parse for package-level presets. It panics on bad input.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse reads #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(r, g, b), rgba(r, g, b, a)
// and the keyword "transparent".
func Parse(s string) (Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	switch {
	case in == "":
		return Color{}, invalid(s, "empty")
	case in == "transparent":
		return Transparent, nil
	case strings.HasPrefix(in, "#"):
		return parseHex(s, in[1:])
	case strings.HasPrefix(in, "rgba(") && strings.HasSuffix(in, ")"):
		return parseFunc(s, in[len("rgba("):len(in)-1], true)
	case strings.HasPrefix(in, "rgb(") && strings.HasSuffix(in, ")"):
		return parseFunc(s, in[len("rgb("):len(in)-1], false)
	}
	return Color{}, invalid(s, "unrecognized format")
}

func parseHex(orig, digits string) (Color, error) {
	switch len(digits) {
	case 3, 6:
		c, err := colorful.Hex("#" + digits)
		if err != nil {
			return Color{}, invalid(orig, err.Error())
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	case 4, 8:
		n := len(digits) / 4
		rgb, err := parseHex(orig, digits[:3*n])
		if err != nil {
			return Color{}, err
		}
		aDigits := digits[3*n:]
		if n == 1 {
			aDigits += aDigits
		}
		a, err := strconv.ParseUint(aDigits, 16, 8)
		if err != nil {
			return Color{}, invalid(orig, "bad alpha")
		}
		rgb.A = float64(a) / 255
		return rgb, nil
	}
	return Color{}, invalid(orig, "hex must have 3, 4, 6 or 8 digits")
}

func parseFunc(orig, body string, withAlpha bool) (Color, error) {
	parts := strings.Split(body, ",")
	want := 3
	if withAlpha {
		want = 4
	}
	if len(parts) != want {
		return Color{}, invalid(orig, fmt.Sprintf("expected %d components", want))
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || math.IsNaN(v) || v < 0 || v > 255 {
			return Color{}, invalid(orig, "channel out of range")
		}
		ch[i] = uint8(math.Round(v))
	}
	a := 1.0
	if withAlpha {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || math.IsNaN(v) || v < 0 || v > 1 {
			return Color{}, invalid(orig, "alpha out of range")
		}
		a = v
	}
	return RGBA(ch[0], ch[1], ch[2], a), nil
}

func invalid(s, reason string) error {
	return perrors.New(perrors.CodeInvalidColor, fmt.Sprintf("invalid color %q: %s", s, reason), nil)
}

// String formats opaque colors as #rrggbb and translucent ones as rgba().
func (c Color) String() string {
	if c.A >= 1 {
		return c.Hex()
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B,
		strconv.FormatFloat(math.Round(c.A*1000)/1000, 'f', -1, 64))
}

// MarshalText encodes c like String but keeps every digit of alpha, so a
// decoded color compares equal to the original.
func (c Color) MarshalText() ([]byte, error) {
	if c.A >= 1 {
		return []byte(c.Hex()), nil
	}
	return []byte(fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B,
		strconv.FormatFloat(c.A, 'g', -1, 64))), nil
}

// UnmarshalText accepts anything Parse does.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Hex formats the color channels as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsTransparent reports whether the color has zero alpha.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// Alpha returns c with its alpha replaced.
func (c Color) Alpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Fade reduces alpha by the given ratio: fade(0.32) keeps 68% of it.
func (c Color) Fade(ratio float64) Color {
	c.A = clamp01(c.A * (1 - ratio))
	return c
}

// Mix blends mixin into c. weight is the share of mixin in [0, 1]; when both
// colors have the same alpha the result is mixin*weight + c*(1-weight).
func (c Color) Mix(mixin Color, weight float64) Color {
	p := clamp01(weight)
	w := 2*p - 1
	a := mixin.A - c.A
	var w1 float64
	if w*a == -1 {
		w1 = (w + 1) / 2
	} else {
		w1 = ((w+a)/(1+w*a) + 1) / 2
	}
	w2 := 1 - w1
	return Color{
		R: channel(w1*float64(mixin.R) + w2*float64(c.R)),
		G: channel(w1*float64(mixin.G) + w2*float64(c.G)),
		B: channel(w1*float64(mixin.B) + w2*float64(c.B)),
		A: clamp01(mixin.A*p + c.A*(1-p)),
	}
}

// Over composites c on top of an opaque backdrop and returns an opaque color.
func (c Color) Over(backdrop Color) Color {
	return backdrop.Alpha(1).Mix(c.Alpha(1), c.A)
}

// Lighten scales HSL lightness up by ratio (0.2 means 20% lighter).
func (c Color) Lighten(ratio float64) Color {
	return c.scaleLightness(1 + ratio)
}

// Darken scales HSL lightness down by ratio.
func (c Color) Darken(ratio float64) Color {
	return c.scaleLightness(1 - ratio)
}

func (c Color) scaleLightness(factor float64) Color {
	h, s, l := c.colorful().Hsl()
	out := colorful.Hsl(h, s, clamp01(l*factor)).Clamped()
	r, g, b := out.RGB255()
	return Color{R: r, G: g, B: b, A: c.A}
}

// Luminance is the YIQ-weighted perceived brightness in [0, 255].
func (c Color) Luminance() float64 {
	return (float64(c.R)*2126 + float64(c.G)*7152 + float64(c.B)*722) / 10000
}

// IsDark reports whether light content should be drawn on top of c.
func (c Color) IsDark() bool {
	return c.Luminance() < 128
}

// IsLight is the complement of IsDark.
func (c Color) IsLight() bool {
	return !c.IsDark()
}

// RelativeLuminance is the WCAG relative luminance of the opaque channels.
func (c Color) RelativeLuminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG contrast ratio between two colors, in [1, 21].
func Contrast(a, b Color) float64 {
	la, lb := a.RelativeLuminance(), b.RelativeLuminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Lipgloss converts the opaque channels into a terminal color. Translucent
// colors should be flattened with Over first.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
