package preview

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// DetectDark reports whether the terminal behind w has a dark background.
// ok is false when w is not a terminal, since pipes and files have no
// background to ask about.
func DetectDark(w io.Writer) (dark, ok bool) {
	f, isFile := w.(*os.File)
	if !isFile || !isatty.IsTerminal(f.Fd()) {
		return false, false
	}
	return termenv.NewOutput(f).HasDarkBackground(), true
}

// ConfigureProfile sets the lipgloss color profile for format: plain output
// drops all color, the rich formats keep what the terminal supports.
func ConfigureProfile(format string) {
	if format == FormatPlain {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).ColorProfile())
}
