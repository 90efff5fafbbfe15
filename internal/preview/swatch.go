// Package preview renders themes, overlays and resolved component colors for
// the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"paper/internal/color"
	"paper/internal/overlay"
	"paper/internal/style"
	"paper/internal/theme"
)

// Output formats.
const (
	FormatRich  = "rich"
	FormatLight = "light"
	FormatPlain = "plain"
)

const (
	labelWidth  = 24
	blockWidth  = 4
	mockupWidth = 36
)

// Printer formats colors for one output format. Translucent colors are
// flattened onto Backdrop before display since terminals have no alpha.
type Printer struct {
	Format   string
	Width    int
	Backdrop color.Color
}

// NewPrinter returns a printer for format; unknown formats render rich.
// width <= 0 disables truncation.
func NewPrinter(format string, width int, backdrop color.Color) *Printer {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case FormatRich, FormatLight, FormatPlain:
	default:
		f = FormatRich
	}
	return &Printer{Format: f, Width: width, Backdrop: backdrop}
}

// ForTheme returns a printer whose backdrop is the theme background.
func ForTheme(format string, width int, th *theme.Theme) *Printer {
	return NewPrinter(format, width, th.Color(theme.Background))
}

// Plain reports whether output carries no escape sequences.
func (p *Printer) Plain() bool {
	return p.Format == FormatPlain
}

// Flatten composites c onto the printer backdrop.
func (p *Printer) Flatten(c color.Color) color.Color {
	backdrop := p.Backdrop
	if backdrop.A < 1 {
		backdrop = backdrop.Over(color.White)
	}
	return c.Over(backdrop)
}

// Swatch renders one labelled color on a single line.
func (p *Printer) Swatch(label string, c color.Color) string {
	value := c.String()
	if c.A < 1 {
		value = fmt.Sprintf("%s  (%s on %s)", value, p.Flatten(c).Hex(), p.Backdrop.Hex())
	}
	if p.Plain() {
		return p.fit(fmt.Sprintf("%-*s %s", labelWidth, label, value))
	}
	block := lipgloss.NewStyle().
		Background(p.Flatten(c).Lipgloss()).
		Width(blockWidth).
		Render("")
	name := lipgloss.NewStyle().Width(labelWidth).Render(label)
	return p.fit(block + " " + name + " " + value)
}

func (p *Printer) fit(line string) string {
	if p.Width <= 0 {
		return line
	}
	return ansi.Truncate(line, p.Width, "…")
}

func (p *Printer) heading(text string) string {
	if p.Plain() {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}

// Describe is the one-line summary of a theme.
func Describe(th *theme.Theme) string {
	version := "Material 2"
	if th.IsV3() {
		version = "Material 3"
	}
	tone := "light"
	if th.Dark {
		tone = "dark"
	}
	return fmt.Sprintf("%s (%s, %s, %s)", th.Name, version, tone, th.Mode)
}

// Theme renders every color token, then the elevation levels on Material 3.
func (p *Printer) Theme(th *theme.Theme) string {
	var b strings.Builder
	b.WriteString(p.heading(Describe(th)))
	b.WriteString("\n")
	for _, tok := range th.Colors.Tokens() {
		b.WriteString(p.Swatch(string(tok), th.Color(tok)))
		b.WriteString("\n")
	}
	if th.IsV3() {
		b.WriteString("\n")
		b.WriteString(p.heading("elevation"))
		b.WriteString("\n")
		for level := 0; level <= overlay.MaxLevel; level++ {
			b.WriteString(p.Swatch(fmt.Sprintf("level%d", level), th.Level(level)))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Ramp renders the overlay of tint on surface at every elevation.
func (p *Printer) Ramp(surface, tint color.Color) string {
	lines := make([]string, 0, overlay.MaxElevation+1)
	for e := 0; e <= overlay.MaxElevation; e++ {
		label := fmt.Sprintf("%2d  %6.2f%%", e, overlay.Opacity(e)*100)
		lines = append(lines, p.Swatch(label, overlay.OverlayWith(e, surface, tint)))
	}
	return strings.Join(lines, "\n")
}

// Resolved renders a component's resolved swatches, followed by a mockup in
// the rich formats.
func (p *Printer) Resolved(th *theme.Theme, component string, res style.Result) string {
	var b strings.Builder
	b.WriteString(p.heading(fmt.Sprintf("%s on %s", component, th.Name)))
	b.WriteString("\n")
	for _, sw := range res.Swatches() {
		b.WriteString(p.Swatch(sw.Role, sw.Color))
		b.WriteString("\n")
	}
	if !p.Plain() {
		b.WriteString("\n")
		b.WriteString(p.Mockup(th, component, res))
	}
	return strings.TrimRight(b.String(), "\n")
}

var (
	containerRoles = []string{"background", "container", "line", "track", "checked"}
	contentRoles   = []string{"text", "title", "foreground", "icon", "item", "label", "control", "thumb", "tint"}
)

// Mockup draws the component as a filled box on the theme background with its
// name in the content color.
func (p *Printer) Mockup(th *theme.Theme, component string, res style.Result) string {
	roles := make(map[string]color.Color)
	for _, sw := range res.Swatches() {
		roles[sw.Role] = sw.Color
	}
	bg := th.Color(theme.Background)
	container := pickRole(roles, containerRoles, th.Color(theme.Surface))
	content := pickRole(roles, contentRoles, style.ContentColor(container.Over(bg), nil))

	flatBg := bg.Over(color.White)
	flatContainer := container.Over(flatBg)
	flatContent := content.Over(flatContainer)

	canvas := NewCanvas(mockupWidth, 5)
	canvas.Fill(flatBg.Lipgloss())
	canvas.FillRect(2, 1, mockupWidth-4, 3, flatContainer.Lipgloss())
	if border, ok := roles["border"]; ok && !border.IsTransparent() {
		edge := lipgloss.NewStyle().
			Foreground(border.Over(flatBg).Lipgloss()).
			Background(flatBg.Lipgloss()).
			Render(strings.Repeat("▔", mockupWidth-4))
		canvas.DrawStringAt(2, 4, edge)
	}
	label := lipgloss.NewStyle().
		Foreground(flatContent.Lipgloss()).
		Background(flatContainer.Lipgloss()).
		Bold(true).
		Render(component)
	canvas.DrawCentered(2, label)
	return canvas.Render()
}

func pickRole(roles map[string]color.Color, order []string, fallback color.Color) color.Color {
	for _, role := range order {
		if c, ok := roles[role]; ok && !c.IsTransparent() {
			return c
		}
	}
	return fallback
}
