package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"paper/internal/overlay"
	"paper/internal/style"
	"paper/internal/theme"
)

// MarkdownRenderer returns a glamour renderer for format, falling back to
// plain word wrapping when the format is plain or glamour fails.
func MarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	standard := strings.ToLower(strings.TrimSpace(format))
	if standard == "" || standard == FormatRich || standard == "dark" {
		standard = "dark"
	}
	if standard == FormatPlain {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(standard),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}

// TokenReference builds the markdown reference for a theme: its tokens, the
// elevation overlay table and the resolvable components.
func TokenReference(th *theme.Theme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", Describe(th))
	fmt.Fprintf(&b, "Roundness %d, animation scale %g.\n\n", th.Roundness, th.AnimationScale)

	b.WriteString("## Color tokens\n\n")
	b.WriteString("| Token | Value | Content |\n|---|---|---|\n")
	for _, tok := range th.Colors.Tokens() {
		c := th.Color(tok)
		content := "light"
		if c.IsTransparent() || c.IsLight() {
			content = "dark"
		}
		fmt.Fprintf(&b, "| `%s` | `%s` | %s |\n", tok, c, content)
	}

	if th.IsV3() {
		b.WriteString("\n## Elevation levels\n\n| Level | Value |\n|---|---|\n")
		for level := 0; level <= overlay.MaxLevel; level++ {
			fmt.Fprintf(&b, "| level%d | `%s` |\n", level, th.Level(level))
		}
	} else {
		b.WriteString("\n## Elevation overlay\n\nDark adaptive themes tint elevated surfaces with white:\n\n")
		b.WriteString("| Elevation | Opacity |\n|---|---|\n")
		for e := 0; e <= overlay.MaxElevation; e++ {
			fmt.Fprintf(&b, "| %d | %g%% |\n", e, overlay.Opacity(e)*100)
		}
	}

	b.WriteString("\n## Typography\n\n")
	if th.IsV3() {
		b.WriteString("| Variant | Family | Weight | Size | Line height |\n|---|---|---|---|---|\n")
		for _, v := range theme.Variants {
			f := th.Fonts.Style(v)
			fmt.Fprintf(&b, "| %s | %s | %s | %g | %g |\n", v, f.Family, f.Weight, f.Size, f.LineHeight)
		}
	} else {
		b.WriteString("| Weight | Family | Font weight |\n|---|---|---|\n")
		for _, row := range []struct {
			name string
			font theme.Font
		}{
			{"regular", th.Fonts.Regular},
			{"medium", th.Fonts.Medium},
			{"light", th.Fonts.Light},
			{"thin", th.Fonts.Thin},
		} {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", row.name, row.font.Family, row.font.Weight)
		}
	}

	b.WriteString("\n## Components\n\n")
	for _, name := range style.Components() {
		fmt.Fprintf(&b, "- `%s`\n", name)
	}
	return b.String()
}
