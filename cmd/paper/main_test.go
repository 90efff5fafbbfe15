package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"paper/internal/color"
	"paper/internal/config"
	perrors "paper/internal/errors"
	"paper/internal/overlay"
	"paper/internal/preview"
	"paper/internal/style"
	"paper/internal/theme"
)

// isolate points config and the catalog at temp dirs and pins terminal
// detection to a light background.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PAPER_CATALOG_PATH", filepath.Join(home, "themes.db"))
	for _, key := range []string{"PAPER_THEME", "PAPER_DARK", "PAPER_OUTPUT_FORMAT", "PAPER_PLATFORM", "PAPER_DEBUG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Cleanup(config.ResetForTesting(t))

	orig := detectDark
	detectDark = func(io.Writer) (bool, bool) { return false, true }
	t.Cleanup(func() { detectDark = orig })
	return home
}

func runPaper(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runPaper(t, args...)
	if err != nil {
		t.Fatalf("paper %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func currentLine(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "*") {
			return line
		}
	}
	t.Fatalf("no current theme marked in:\n%s", out)
	return ""
}

func TestThemesMarksCurrent(t *testing.T) {
	isolate(t)
	out := mustRun(t, "themes")
	if !strings.Contains(currentLine(t, out), theme.NameMD3Light) {
		t.Fatalf("md3-light should be current:\n%s", out)
	}
	for _, name := range []string{theme.NameMD3Dark, theme.NameMD2Light, theme.NameMD2Dark, "dracula"} {
		if !strings.Contains(out, name) {
			t.Errorf("themes output missing %s", name)
		}
	}
}

func TestDarkFlagSelectsCounterpart(t *testing.T) {
	isolate(t)
	out := mustRun(t, "--dark", "themes")
	if !strings.Contains(currentLine(t, out), theme.NameMD3Dark) {
		t.Fatalf("md3-dark should be current:\n%s", out)
	}
}

func TestTerminalBackgroundPicksDefaultVariant(t *testing.T) {
	isolate(t)
	detectDark = func(io.Writer) (bool, bool) { return true, true }

	out := mustRun(t, "themes")
	if !strings.Contains(currentLine(t, out), theme.NameMD3Dark) {
		t.Fatalf("dark terminal should select md3-dark:\n%s", out)
	}

	// Piped output has no background; the default stays as it is.
	detectDark = func(io.Writer) (bool, bool) { return false, false }
	out = mustRun(t, "themes")
	if !strings.Contains(currentLine(t, out), theme.NameMD3Light) {
		t.Fatalf("undetectable background should keep md3-light:\n%s", out)
	}

	// The real detector sees a buffer, which is not a terminal.
	detectDark = preview.DetectDark
	out = mustRun(t, "themes")
	if !strings.Contains(currentLine(t, out), theme.NameMD3Light) {
		t.Fatalf("non-terminal output should keep md3-light:\n%s", out)
	}
}

func TestTerminalBackgroundLeavesChosenThemeAlone(t *testing.T) {
	isolate(t)
	detectDark = func(io.Writer) (bool, bool) { return true, true }

	out := mustRun(t, "--theme", theme.NameMD2Light, "themes")
	if !strings.Contains(currentLine(t, out), theme.NameMD2Light) {
		t.Fatalf("explicit theme should stay selected:\n%s", out)
	}
}

func TestThemeFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("PAPER_THEME", "dracula")
	t.Cleanup(config.ResetForTesting(t))

	out := mustRun(t, "--format", "plain", "show")
	if !strings.Contains(out, "dracula") {
		t.Fatalf("show should describe dracula:\n%s", out)
	}
}

func TestUnknownThemeFails(t *testing.T) {
	isolate(t)
	_, err := runPaper(t, "--theme", "nope", "show")
	if !perrors.IsCode(err, perrors.CodeUnknownTheme) {
		t.Fatalf("expected unknown_theme, got %v", err)
	}
	if exitCode(err) != 2 {
		t.Fatalf("exit code = %d, want 2", exitCode(err))
	}
}

func TestMissingConfiguredThemeFallsBack(t *testing.T) {
	home := isolate(t)
	t.Setenv("PAPER_THEME", "deleted-brand")
	t.Cleanup(config.ResetForTesting(t))

	out := mustRun(t, "themes")
	if !strings.Contains(currentLine(t, out), theme.NameMD3Light) {
		t.Fatalf("missing configured theme should fall back to %s:\n%s", config.DefaultTheme, out)
	}
	if !strings.Contains(out, "Warning:") || !strings.Contains(out, "deleted-brand") {
		t.Fatalf("fallback should warn:\n%s", out)
	}

	// The same holds when the stale name comes from the user config file.
	cfgDir := filepath.Join(home, ".paper")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("theme: gone\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv("PAPER_THEME")
	t.Cleanup(config.ResetForTesting(t))
	out = mustRun(t, "--format", "plain", "show")
	if !strings.Contains(out, theme.NameMD3Light) {
		t.Fatalf("show should use %s after fallback:\n%s", config.DefaultTheme, out)
	}
}

func TestUnknownPlatformFails(t *testing.T) {
	isolate(t)
	t.Setenv("PAPER_PLATFORM", "amiga")
	t.Cleanup(config.ResetForTesting(t))

	_, err := runPaper(t, "show")
	if !perrors.IsCode(err, perrors.CodeConfigurationError) {
		t.Fatalf("expected configuration_error, got %v", err)
	}
}

func TestShowNamedTheme(t *testing.T) {
	isolate(t)
	out := mustRun(t, "--format", "plain", "show", theme.NameMD2Dark)
	if !strings.Contains(out, "md2-dark (Material 2, dark, adaptive)") {
		t.Fatalf("unexpected show output:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("plain output should carry no escapes:\n%s", out)
	}
}

func TestOverlay(t *testing.T) {
	isolate(t)
	surface := color.Hex(0x121212)
	want := overlay.OverlayWith(overlay.MaxElevation, surface, color.White)

	out := mustRun(t, "--format", "plain", "overlay", "--surface", "#121212", "--elevation", "99")
	if !strings.Contains(out, "elevation 24 (16.00%)") {
		t.Fatalf("elevation should clamp to 24:\n%s", out)
	}
	if !strings.Contains(out, want.String()) {
		t.Fatalf("expected %s in:\n%s", want, out)
	}
}

func TestOverlayRamp(t *testing.T) {
	isolate(t)
	out := mustRun(t, "--format", "plain", "overlay", "--surface", "#121212", "--ramp")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != overlay.MaxElevation+1 {
		t.Fatalf("expected %d lines, got %d:\n%s", overlay.MaxElevation+1, len(lines), out)
	}
}

func TestOverlayRejectsBadColor(t *testing.T) {
	isolate(t)
	_, err := runPaper(t, "overlay", "--surface", "not-a-color")
	if !perrors.IsCode(err, perrors.CodeInvalidColor) {
		t.Fatalf("expected invalid_color, got %v", err)
	}
}

func TestContrast(t *testing.T) {
	isolate(t)
	out := mustRun(t, "--format", "plain", "contrast", "#000000", "#ffffff")
	for _, want := range []string{"luminance 0.0  dark", "luminance 255.0  light", "contrast 21.00:1"} {
		if !strings.Contains(out, want) {
			t.Errorf("contrast output missing %q:\n%s", want, out)
		}
	}
}

func TestContrastArgs(t *testing.T) {
	isolate(t)
	if _, err := runPaper(t, "contrast"); err == nil {
		t.Fatal("expected an argument error")
	}
	_, err := runPaper(t, "contrast", "#12")
	if !perrors.IsCode(err, perrors.CodeInvalidColor) {
		t.Fatalf("expected invalid_color, got %v", err)
	}
}

func TestResolveMatchesResolver(t *testing.T) {
	isolate(t)
	th := theme.MD3Light()
	res, err := style.Resolve(th, "button", style.Props{Mode: style.ModeContained, Disabled: true})
	if err != nil {
		t.Fatal(err)
	}
	want := preview.ForTheme(preview.FormatPlain, 0, th).Resolved(th, "button", res)

	out := mustRun(t, "--format", "plain", "resolve", "button", "--mode", "Contained", "--disabled")
	if strings.TrimSpace(out) != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestResolveCustomColor(t *testing.T) {
	isolate(t)
	out := mustRun(t, "--format", "plain", "resolve", "appbar", "--custom", "background=#ff0000")
	if !strings.Contains(out, "#ff0000") {
		t.Fatalf("custom background missing:\n%s", out)
	}
}

func TestResolveErrors(t *testing.T) {
	isolate(t)
	_, err := runPaper(t, "resolve", "slider")
	if !perrors.IsCode(err, perrors.CodeUnknownComponent) {
		t.Fatalf("expected unknown_component, got %v", err)
	}
	_, err = runPaper(t, "resolve", "appbar", "--custom", "background=bogus")
	if !perrors.IsCode(err, perrors.CodeInvalidColor) {
		t.Fatalf("expected invalid_color, got %v", err)
	}
	_, err = runPaper(t, "resolve", "appbar", "--content", "grey")
	if !perrors.IsCode(err, perrors.CodeInvalidArgument) {
		t.Fatalf("expected invalid_argument for --content, got %v", err)
	}
	if exitCode(err) != 2 {
		t.Fatalf("exit code = %d, want 2", exitCode(err))
	}
}

func TestResolveExplicitZeroElevation(t *testing.T) {
	isolate(t)
	th := theme.MD2Dark()
	res, err := style.Resolve(th, "appbar", style.Props{Elevation: style.Elevation(0)})
	if err != nil {
		t.Fatal(err)
	}
	want := preview.ForTheme(preview.FormatPlain, 0, th).Resolved(th, "appbar", res)

	out := mustRun(t, "--theme", theme.NameMD2Dark, "--format", "plain", "resolve", "appbar", "--elevation", "0")
	if strings.TrimSpace(out) != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
	if !strings.Contains(out, th.Color(theme.Surface).String()) {
		t.Fatalf("elevation 0 should paint the bare surface:\n%s", out)
	}

	out = mustRun(t, "--theme", theme.NameMD2Dark, "--format", "plain", "resolve", "appbar")
	if strings.TrimSpace(out) == want {
		t.Fatal("without --elevation the app bar should keep its default overlay")
	}
}

func TestResolveFlagsProps(t *testing.T) {
	f := resolveFlags{mode: " Outlined ", variant: "IOS", checked: true, elevation: 3, elevationSet: true, content: "light"}
	p, err := f.props()
	if err != nil {
		t.Fatal(err)
	}
	if p.Mode != style.ModeOutlined || p.Variant != style.VariantIOS || !p.Checked {
		t.Fatalf("unexpected props %+v", p)
	}
	if p.Elevation == nil || *p.Elevation != 3 {
		t.Fatalf("elevation = %v, want 3", p.Elevation)
	}

	p, err = resolveFlags{}.props()
	if err != nil {
		t.Fatal(err)
	}
	if p.Elevation != nil {
		t.Fatalf("unset --elevation should leave the default, got %d", *p.Elevation)
	}
	if p.Dark == nil || !*p.Dark {
		t.Fatal("--content light should force light content")
	}
}

func writeDefinition(t *testing.T, dir string) string {
	t.Helper()
	return writeDefinitionBody(t, dir, "name: draft\nbase: md3-light\ncolors:\n  primary: \"#ff0000\"\n")
}

func writeDefinitionBody(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "brand.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSaveListShowDelete(t *testing.T) {
	home := isolate(t)
	def := writeDefinition(t, home)

	out := mustRun(t, "save", "brand", "--from", def)
	if !strings.Contains(out, "Saved brand") {
		t.Fatalf("unexpected save output:\n%s", out)
	}

	out = mustRun(t, "themes")
	var found bool
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "brand") && strings.Contains(line, "saved") {
			found = true
		}
	}
	if !found {
		t.Fatalf("saved theme not listed:\n%s", out)
	}

	out = mustRun(t, "--format", "plain", "show", "brand")
	if !strings.Contains(out, "#ff0000") {
		t.Fatalf("saved primary missing:\n%s", out)
	}

	out = mustRun(t, "delete", "brand")
	if !strings.Contains(out, "Deleted brand") {
		t.Fatalf("unexpected delete output:\n%s", out)
	}
	_, err := runPaper(t, "delete", "brand")
	if !perrors.IsCode(err, perrors.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	_, err = runPaper(t, "show", "brand")
	if !perrors.IsCode(err, perrors.CodeUnknownTheme) {
		t.Fatalf("deleted theme should be gone, got %v", err)
	}
}

func TestSaveRequiresFrom(t *testing.T) {
	isolate(t)
	_, err := runPaper(t, "save", "brand")
	if !perrors.IsCode(err, perrors.CodeInvalidArgument) {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
	if exitCode(err) != 2 {
		t.Fatalf("exit code = %d, want 2", exitCode(err))
	}
}

func TestSaveTakesNameFromArgument(t *testing.T) {
	home := isolate(t)
	def := writeDefinitionBody(t, home, "base: md3-light\ncolors:\n  primary: \"#00ff00\"\n")

	out := mustRun(t, "save", "mine", "--from", def)
	if !strings.Contains(out, "Saved mine") {
		t.Fatalf("unexpected save output:\n%s", out)
	}
	out = mustRun(t, "--format", "plain", "show", "mine")
	if !strings.Contains(out, "#00ff00") {
		t.Fatalf("saved primary missing:\n%s", out)
	}
}

func TestReadOnlyCommandsDoNotCreateCatalog(t *testing.T) {
	home := isolate(t)
	db := filepath.Join(home, "themes.db")

	mustRun(t, "--format", "plain", "overlay", "--surface", "#121212")
	mustRun(t, "themes")
	mustRun(t, "--format", "plain", "show")
	if _, err := os.Stat(db); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("catalog should not exist yet, stat err = %v", err)
	}

	mustRun(t, "save", "brand", "--from", writeDefinition(t, home))
	if _, err := os.Stat(db); err != nil {
		t.Fatalf("save should create the catalog: %v", err)
	}
}

func TestBrokenCatalogDoesNotBlockStockThemes(t *testing.T) {
	home := isolate(t)
	// A directory where the database file should be cannot be opened.
	blocked := filepath.Join(home, "blocked.db")
	if err := os.MkdirAll(blocked, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PAPER_CATALOG_PATH", blocked)
	t.Cleanup(config.ResetForTesting(t))

	out := mustRun(t, "--format", "plain", "show", theme.NameMD2Light)
	if !strings.Contains(out, "md2-light") {
		t.Fatalf("stock theme should still render:\n%s", out)
	}
}

func TestDocs(t *testing.T) {
	isolate(t)
	out := mustRun(t, "--format", "plain", "docs", theme.NameMD2Light)
	for _, want := range []string{"## Color tokens", "## Elevation overlay"} {
		if !strings.Contains(out, want) {
			t.Errorf("docs missing %q", want)
		}
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New("boom"), 1},
		{perrors.New(perrors.CodeInvalidArgument, "flag", nil), 2},
		{perrors.New(perrors.CodeInvalidColor, "bad", nil), 2},
		{perrors.New(perrors.CodeNotFound, "gone", nil), 2},
		{perrors.New(perrors.CodeCatalogFailed, "db", nil), 3},
		{perrors.New(perrors.CodeConfigurationError, "cfg", nil), 3},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
