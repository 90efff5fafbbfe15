package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"paper/internal/config"
	"paper/internal/debug"
	"paper/internal/preview"
	"paper/internal/store"
	"paper/internal/theme"
)

// detectDark is swapped out in tests; real terminals are asked for their
// background color. ok is false when the output is not a terminal.
var detectDark = preview.DetectDark

type rootFlags struct {
	debug      bool
	theme      string
	configPath string
	format     string
	dark       bool
	width      int
}

// app is the state shared by every subcommand once the root has set it up.
type app struct {
	flags  rootFlags
	reg    *theme.Registry
	format string
	width  int
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "paper",
		Short: "Inspect Material themes and resolve component colors",
		Long: "paper works with Material Design 2 and 3 themes: it lists and previews themes,\n" +
			"computes elevation overlays, and resolves the paint colors of individual\n" +
			"components for a given theme and set of props.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			debug.Close()
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&a.flags.debug, "debug", false, "Write a debug log to ~/.paper/debug.log")
	flags.StringVar(&a.flags.theme, "theme", config.DefaultTheme, "Active theme name")
	flags.StringVar(&a.flags.configPath, "config", "", "Project config file (default: nearest .paper/config.yaml)")
	flags.StringVar(&a.flags.format, "format", config.DefaultOutputFormat, "Output format (rich, light, plain)")
	flags.BoolVar(&a.flags.dark, "dark", false, "Prefer the dark variant of the theme (default: follow the terminal)")
	flags.IntVar(&a.flags.width, "width", 0, "Truncate output lines to this many columns (0 disables)")

	cmd.AddCommand(
		newThemesCmd(a),
		newShowCmd(a),
		newOverlayCmd(a),
		newContrastCmd(a),
		newResolveCmd(a),
		newSaveCmd(a),
		newDeleteCmd(a),
		newBrowseCmd(a),
		newDocsCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// setup loads configuration, applies flag overrides and builds the theme
// registry: stock themes, then saved catalog themes, then the configured
// selection.
func (a *app) setup(cmd *cobra.Command) error {
	var opts []config.Option
	if a.flags.configPath != "" {
		opts = append(opts, config.WithProjectConfig(a.flags.configPath))
	}
	if err := config.Initialize(opts...); err != nil {
		return err
	}

	// Only flags the user actually passed override lower layers.
	overrides := map[string]any{}
	fl := cmd.Flags()
	if fl.Changed("theme") {
		overrides[config.KeyTheme] = a.flags.theme
	}
	if fl.Changed("format") {
		overrides[config.KeyOutputFormat] = a.flags.format
	}
	if fl.Changed("dark") {
		overrides[config.KeyDark] = a.flags.dark
	}
	if fl.Changed("debug") {
		overrides[config.KeyDebug] = a.flags.debug
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return err
	}

	if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
		cmd.PrintErrf("Warning: debug log disabled: %v\n", err)
	}
	a.logger = debug.Logger()

	a.format = config.OutputFormat()
	a.width = max(a.flags.width, 0)
	preview.ConfigureProfile(a.format)

	a.reg = theme.NewRegistry()
	a.loadCatalog(cmd.Context())

	name := strings.TrimSpace(config.GetString(config.KeyTheme))
	if err := a.reg.Set(name); err != nil {
		// An explicit --theme must exist. A configured one may have been
		// deleted from the catalog since, so fall back rather than lock
		// every command out.
		if fl.Changed("theme") {
			return err
		}
		a.logger.Warn().Err(err).Str("theme", name).Msg("configured theme unavailable")
		cmd.PrintErrf("Warning: %v; using %s\n", err, config.DefaultTheme)
		name = config.DefaultTheme
		if err := a.reg.Set(name); err != nil {
			return err
		}
	}
	a.applyDark(cmd.OutOrStdout(), name == config.DefaultTheme)
	if err := a.applyPlatform(); err != nil {
		return err
	}
	a.logger.Debug().
		Str("theme", a.reg.CurrentName()).
		Str("format", a.format).
		Str("command", cmd.Name()).
		Msg("setup complete")
	return nil
}

// loadCatalog registers saved themes. A missing or broken catalog never
// stops the stock themes from working, and a catalog that does not exist yet
// is not created just to be read.
func (a *app) loadCatalog(ctx context.Context) {
	catalog, err := a.existingCatalog(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("theme catalog unavailable")
		return
	}
	if catalog == nil {
		return
	}
	n, err := catalog.LoadInto(ctx, a.reg)
	if err != nil {
		a.logger.Warn().Err(err).Str("path", catalog.Path()).Msg("load saved themes")
		return
	}
	a.logger.Debug().Int("count", n).Str("path", catalog.Path()).Msg("loaded saved themes")
}

// existingCatalog opens the catalog only if its database file is already
// there. It returns nil, nil when nothing has been saved yet.
func (a *app) existingCatalog(ctx context.Context) (*store.Catalog, error) {
	path, err := config.CatalogPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		a.logger.Debug().Str("path", path).Msg("no saved themes yet")
		return nil, nil
	}
	return a.openCatalog(ctx)
}

func (a *app) openCatalog(ctx context.Context) (*store.Catalog, error) {
	path, err := config.CatalogPath()
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return store.Open(ctx, path)
}

// applyDark switches to the light or dark counterpart of the active theme.
// An explicit dark setting always applies; otherwise the terminal background
// decides, and only while the theme is left at its default.
func (a *app) applyDark(out io.Writer, defaultTheme bool) {
	want, ok := config.Dark()
	if !ok {
		if !defaultTheme {
			return
		}
		detected, known := detectDark(out)
		if !known {
			return
		}
		want = detected
	}
	if current := a.reg.Current(); current != nil && current.Dark != want {
		a.reg.ToggleDark()
	}
}

// applyPlatform re-registers the active theme with the configured
// platform's font families. Android is the stock configuration.
func (a *app) applyPlatform() error {
	p, err := theme.ParsePlatform(config.GetString(config.KeyPlatform))
	if err != nil {
		return err
	}
	if p == theme.Android {
		return nil
	}
	current := a.reg.Current()
	return a.reg.Register(current.With(theme.Override{Fonts: &theme.FontConfig{Platform: p}}))
}

// current returns the named theme, or the active one when name is empty.
func (a *app) current(name string) (*theme.Theme, error) {
	if name == "" {
		return a.reg.Current(), nil
	}
	return a.reg.Get(name)
}

func (a *app) printer(th *theme.Theme) *preview.Printer {
	return preview.ForTheme(a.format, a.width, th)
}
