package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	perrors "paper/internal/errors"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != DefaultTheme {
		t.Fatalf("expected default %s to be %s, got %q", KeyTheme, DefaultTheme, got)
	}
	if got := OutputFormat(); got != "rich" {
		t.Fatalf("expected default %s to be rich, got %q", KeyOutputFormat, got)
	}
	if got := GetString(KeyPlatform); got != "android" {
		t.Fatalf("expected default %s to be android, got %q", KeyPlatform, got)
	}
	if GetBool(KeyDebug) {
		t.Fatalf("expected default %s to be false", KeyDebug)
	}
	if _, ok := Dark(); ok {
		t.Fatalf("expected %s to be unset by default", KeyDark)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	nested := filepath.Join(projectDir, "app", "screens")
	mustMkdir(t, nested)
	writeFile(t, filepath.Join(projectDir, ".paper", "config.yaml"), `
theme: nord-dark
output:
  format: plain
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
theme: dracula
dark: false
catalog:
  path: /user/themes.db
`)

	if err := Initialize(WithWorkingDir(nested), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "nord-dark" {
		t.Fatalf("expected project config to win for %s, got %q", KeyTheme, got)
	}
	if got := OutputFormat(); got != "plain" {
		t.Fatalf("expected project output format, got %q", got)
	}
	if got := GetString(KeyCatalogPath); got != "/user/themes.db" {
		t.Fatalf("expected user catalog path to survive merge, got %q", got)
	}
	if dark, ok := Dark(); !ok || dark {
		t.Fatalf("expected dark=false from user config, got %v (set=%v)", dark, ok)
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	projectCfg := filepath.Join(projectDir, ".paper", "config.yaml")
	writeFile(t, projectCfg, `
theme: md2-light
catalog:
  path: /project/themes.db
`)

	t.Setenv("PAPER_THEME", "md3-dark")
	t.Setenv("PAPER_CATALOG_PATH", "/env/themes.db")
	t.Setenv("PAPER_DARK", "true")

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithProjectConfig(projectCfg),
		WithUserConfig(filepath.Join(tmp, "user.yaml")),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "md3-dark" {
		t.Fatalf("expected environment variable to override %s, got %q", KeyTheme, got)
	}
	if got, err := CatalogPath(); err != nil || got != "/env/themes.db" {
		t.Fatalf("expected env override for %s, got %q (%v)", KeyCatalogPath, got, err)
	}
	if dark, ok := Dark(); !ok || !dark {
		t.Fatalf("expected PAPER_DARK to set dark, got %v (set=%v)", dark, ok)
	}

	overrides := map[string]any{
		KeyTheme:        "gruvbox-dark",
		KeyDebug:        true,
		"preview.width": 60,
	}
	if err := ApplyOverrides(overrides); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "gruvbox-dark" {
		t.Fatalf("expected CLI override for %s, got %q", KeyTheme, got)
	}
	if !GetBool(KeyDebug) {
		t.Fatalf("expected CLI override to set %s", KeyDebug)
	}
	if got := GetInt("preview.width"); got != 60 {
		t.Fatalf("expected override for preview.width = 60, got %d", got)
	}
}

func TestOutputFormatFallsBack(t *testing.T) {
	reset()
	t.Cleanup(reset)
	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml"))); err != nil {
		t.Fatal(err)
	}
	if err := Set(KeyOutputFormat, "neon"); err != nil {
		t.Fatal(err)
	}
	if got := OutputFormat(); got != DefaultOutputFormat {
		t.Fatalf("expected fallback to %s, got %q", DefaultOutputFormat, got)
	}
}

func TestCatalogPathDefault(t *testing.T) {
	reset()
	t.Cleanup(reset)
	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml"))); err != nil {
		t.Fatal(err)
	}
	path, err := CatalogPath()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, filepath.Join(".paper", "themes.db")) {
		t.Fatalf("unexpected default catalog path %q", path)
	}
}

func TestInvalidConfigIsConfigurationError(t *testing.T) {
	reset()
	t.Cleanup(reset)
	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "theme: [unterminated\n")

	err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg))
	if !perrors.IsCode(err, perrors.CodeConfigurationError) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestSaveThemeWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "home", ".paper", "config.yaml")
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatal(err)
	}

	if err := SaveTheme("tokyonight-dark"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}
	data, err := os.ReadFile(userCfg)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if !strings.Contains(string(data), "theme: tokyonight-dark") {
		t.Fatalf("saved config missing theme:\n%s", data)
	}
	if got := GetString(KeyTheme); got != "tokyonight-dark" {
		t.Fatalf("running config not updated, got %q", got)
	}
}

func TestSaveThemePrefersProjectConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	projectCfg := filepath.Join(projectDir, ".paper", "config.yaml")
	writeFile(t, projectCfg, "output:\n  format: plain\n")
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(projectDir), WithUserConfig(userCfg)); err != nil {
		t.Fatal(err)
	}
	if err := SaveTheme("md2-dark"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}

	data, err := os.ReadFile(projectCfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "theme: md2-dark") || !strings.Contains(string(data), "format: plain") {
		t.Fatalf("project config should keep other settings and gain theme:\n%s", data)
	}
	if _, err := os.Stat(userCfg); !os.IsNotExist(err) {
		t.Fatalf("user config should not be written, stat err = %v", err)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
