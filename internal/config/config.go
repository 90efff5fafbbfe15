package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	perrors "paper/internal/errors"
)

const (
	KeyTheme        = "theme"
	KeyDark         = "dark"
	KeyOutputFormat = "output.format"
	KeyCatalogPath  = "catalog.path"
	KeyPlatform     = "platform"
	KeyDebug        = "debug"
)

const (
	// DefaultTheme is the theme used when nothing is configured.
	DefaultTheme = "md3-light"
	// DefaultOutputFormat renders colored swatches.
	DefaultOutputFormat = "rich"

	configDirName  = ".paper"
	configFileName = "config.yaml"
	catalogName    = "themes.db"
	envPrefix      = "PAPER"
)

// Output formats accepted for KeyOutputFormat.
var OutputFormats = []string{"rich", "light", "plain"}

type initSettings struct {
	workingDir        string
	projectConfigPath string
	userConfigPath    string
}

// Option configures Initialize behaviour. Useful for tests to override paths.
type Option func(*initSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.workingDir = dir
	}
}

// WithProjectConfig explicitly sets the project config path instead of discovery.
func WithProjectConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.projectConfigPath = path
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.userConfigPath = path
	}
}

var (
	configOnce sync.Once
	configMu   sync.RWMutex
	configInst *viper.Viper
	initErr    error

	// workingDir is the directory Initialize used for project discovery;
	// SaveTheme searches from the same place.
	workingDir string

	// userConfigPathOverride is used by tests to override the user config path.
	userConfigPathOverride string
)

// Initialize loads configuration using the precedence:
// defaults < user config < project config < environment variables < overrides.
func Initialize(opts ...Option) error {
	configOnce.Do(func() {
		settings := initSettings{}
		for _, opt := range opts {
			opt(&settings)
		}
		initErr = configure(&settings)
	})
	return initErr
}

// ApplyOverrides injects values typically coming from CLI flags.
func ApplyOverrides(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return perrors.New(perrors.CodeConfigurationError, "configuration not initialized", nil)
	}
	for k, v := range overrides {
		configInst.Set(k, v)
	}
	return nil
}

// GetString fetches a string configuration value, initializing on demand.
func GetString(key string) string {
	v, err := getViper()
	if err != nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool fetches a bool configuration value, initializing on demand.
func GetBool(key string) bool {
	v, err := getViper()
	if err != nil {
		return false
	}
	return v.GetBool(key)
}

// GetInt fetches an integer configuration value, initializing on demand.
func GetInt(key string) int {
	v, err := getViper()
	if err != nil {
		return 0
	}
	return v.GetInt(key)
}

// IsSet reports whether key has a value from any source, defaults included.
func IsSet(key string) bool {
	v, err := getViper()
	if err != nil {
		return false
	}
	return v.IsSet(key)
}

// Dark returns the configured dark preference and whether one was set. When
// unset, callers decide from the terminal background.
func Dark() (dark bool, ok bool) {
	if !IsSet(KeyDark) {
		return false, false
	}
	return GetBool(KeyDark), true
}

// OutputFormat returns the configured output format, falling back to rich
// for unknown values.
func OutputFormat() string {
	format := strings.ToLower(strings.TrimSpace(GetString(KeyOutputFormat)))
	for _, known := range OutputFormats {
		if format == known {
			return format
		}
	}
	return DefaultOutputFormat
}

// CatalogPath returns the theme catalog database location. An empty setting
// means ~/.paper/themes.db.
func CatalogPath() (string, error) {
	if path := strings.TrimSpace(GetString(KeyCatalogPath)); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", perrors.New(perrors.CodeConfigurationError, fmt.Sprintf("determine user home: %v", err), err)
	}
	return filepath.Join(home, configDirName, catalogName), nil
}

// Set updates a configuration key at runtime, initializing on demand.
func Set(key string, value any) error {
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return perrors.New(perrors.CodeConfigurationError, "configuration not initialized", nil)
	}
	configInst.Set(key, value)
	return nil
}

func configure(settings *initSettings) error {
	wd := strings.TrimSpace(settings.workingDir)
	if wd == "" {
		dir, err := os.Getwd()
		if err != nil {
			return configErr("determine working directory", err)
		}
		wd = dir
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return err
		}
		userConfigPath = path
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		path, err := findProjectConfig(wd)
		if err != nil {
			return err
		}
		projectConfigPath = path
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows; dark has no default.
	_ = v.BindEnv(KeyDark)

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return configErr("load user config", err)
	}
	if err := mergeConfigFile(v, projectConfigPath); err != nil {
		return configErr("load project config", err)
	}

	configMu.Lock()
	defer configMu.Unlock()
	configInst = v
	workingDir = wd
	if settings.userConfigPath != "" && userConfigPathOverride == "" {
		userConfigPathOverride = settings.userConfigPath
	}
	return nil
}

func configErr(action string, err error) error {
	return perrors.New(perrors.CodeConfigurationError, fmt.Sprintf("%s: %v", action, err), err)
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	//nolint:gosec // G304: Config loader intentionally reads user and project config files
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", configErr("determine user home", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

func findProjectConfig(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", nil
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, configDirName, configFileName)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", configErr("find project config", fmt.Errorf("config path %s is a directory", candidate))
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", configErr("find project config", err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTheme, DefaultTheme)
	v.SetDefault(KeyOutputFormat, DefaultOutputFormat)
	v.SetDefault(KeyCatalogPath, "")
	v.SetDefault(KeyPlatform, "android")
	v.SetDefault(KeyDebug, false)
}

func getViper() (*viper.Viper, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if configInst == nil {
		return nil, perrors.New(perrors.CodeConfigurationError, "configuration not initialized", nil)
	}
	return configInst, nil
}

// reset clears package state for tests.
func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	configInst = nil
	initErr = nil
	configOnce = sync.Once{}
	workingDir = ""
	userConfigPathOverride = ""
}

// ResetForTesting clears package state for tests in other packages and
// initializes against an empty temp directory. Returns a cleanup function
// that should be deferred.
func ResetForTesting(t interface{ TempDir() string }) func() {
	reset()
	tmp := t.TempDir()
	_ = Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, configFileName)))
	return reset
}

// SaveTheme persists the theme name to the appropriate config file.
// If a project config (.paper/config.yaml) exists, it updates that file.
// Otherwise, it updates the user config (~/.paper/config.yaml).
// The user config directory is auto-created if needed, but project config
// directories are never auto-created. The running configuration is updated
// too.
func SaveTheme(themeName string) error {
	targetPath, err := findWritableConfigPath()
	if err != nil {
		return configErr("find config path", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(targetPath)

	// Read existing config (if any) to preserve other settings
	_ = v.ReadInConfig()

	v.Set(KeyTheme, themeName)

	dir := filepath.Dir(targetPath)
	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(dir, 0755); err != nil {
		return configErr("create config directory", err)
	}
	if err := v.WriteConfigAs(targetPath); err != nil {
		return configErr("write config", err)
	}

	configMu.Lock()
	if configInst != nil {
		configInst.Set(KeyTheme, themeName)
	}
	configMu.Unlock()
	return nil
}

// findWritableConfigPath determines which config file to write to.
// Returns project config path if it exists, otherwise user config path.
func findWritableConfigPath() (string, error) {
	configMu.RLock()
	start := workingDir
	override := userConfigPathOverride
	configMu.RUnlock()

	if start == "" {
		if wd, err := os.Getwd(); err == nil {
			start = wd
		}
	}
	if projectPath, err := findProjectConfig(start); err == nil && projectPath != "" {
		return projectPath, nil
	}
	if override != "" {
		return override, nil
	}
	return defaultUserConfigPath()
}
