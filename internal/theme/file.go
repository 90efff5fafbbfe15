package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"paper/internal/color"
	perrors "paper/internal/errors"
	"paper/internal/overlay"
)

// Definition is the on-disk form of a custom theme: a base theme plus
// overrides. Keys are matched case-insensitively because viper folds them.
type Definition struct {
	Name      string            `mapstructure:"name" json:"name"`
	Base      string            `mapstructure:"base" json:"base,omitempty"`
	Dark      *bool             `mapstructure:"dark" json:"dark,omitempty"`
	Mode      string            `mapstructure:"mode" json:"mode,omitempty"`
	Roundness *int              `mapstructure:"roundness" json:"roundness,omitempty"`
	Platform  string            `mapstructure:"platform" json:"platform,omitempty"`
	Colors    map[string]string `mapstructure:"colors" json:"colors,omitempty"`
	Elevation map[string]string `mapstructure:"elevation" json:"elevation,omitempty"`
}

// LoadFile reads a YAML, JSON or TOML theme definition.
func LoadFile(path string) (Definition, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return Definition{}, perrors.New(perrors.CodeInvalidTheme, fmt.Sprintf("read theme file %s: %v", path, err), err)
	}
	return decodeDefinition(v, path)
}

// ParseDefinition reads a definition from memory. format is any viper config
// type (yaml, json, toml).
func ParseDefinition(data []byte, format string) (Definition, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return Definition{}, perrors.New(perrors.CodeInvalidTheme, fmt.Sprintf("parse theme definition: %v", err), err)
	}
	return decodeDefinition(v, "definition")
}

func decodeDefinition(v *viper.Viper, source string) (Definition, error) {
	var def Definition
	if err := v.Unmarshal(&def); err != nil {
		return Definition{}, perrors.New(perrors.CodeInvalidTheme, fmt.Sprintf("decode %s: %v", source, err), err)
	}
	return def, nil
}

// Build resolves the definition against themes in reg. An empty base means
// md3-light. The name may come from the file or be set by the caller before
// building, but it must be set by then.
func (d Definition) Build(reg *Registry) (*Theme, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, perrors.New(perrors.CodeInvalidTheme, "theme name is required", nil)
	}
	baseName := strings.TrimSpace(d.Base)
	if baseName == "" {
		baseName = NameMD3Light
	}
	base, err := reg.Get(baseName)
	if err != nil {
		return nil, err
	}

	o := Override{Name: d.Name, Dark: d.Dark, Roundness: d.Roundness}
	if d.Mode != "" {
		mode, err := ParseMode(d.Mode)
		if err != nil {
			return nil, err
		}
		o.Mode = mode
	}
	if d.Platform != "" {
		p, err := ParsePlatform(d.Platform)
		if err != nil {
			return nil, err
		}
		o.Fonts = &FontConfig{Platform: p}
	}
	if len(d.Colors) > 0 {
		o.Colors = make(Palette, len(d.Colors))
		for key, raw := range d.Colors {
			tok, ok := LookupToken(key)
			if !ok {
				return nil, perrors.New(perrors.CodeUnknownToken, fmt.Sprintf("theme %q: unknown color token %q", d.Name, key), nil)
			}
			c, err := color.Parse(raw)
			if err != nil {
				return nil, err
			}
			o.Colors[tok] = c
		}
	}
	if len(d.Elevation) > 0 {
		o.Elevation = make(map[int]color.Color, len(d.Elevation))
		for key, raw := range d.Elevation {
			var level int
			if _, err := fmt.Sscanf(strings.ToLower(key), "level%d", &level); err != nil || level < 0 || level > overlay.MaxLevel {
				return nil, perrors.New(perrors.CodeUnknownToken, fmt.Sprintf("theme %q: unknown elevation key %q", d.Name, key), nil)
			}
			c, err := color.Parse(raw)
			if err != nil {
				return nil, err
			}
			o.Elevation[level] = c
		}
	}

	t := base.With(o)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

var tokenIndex = func() map[string]Token {
	idx := make(map[string]Token, len(V2Tokens)+len(V3Tokens))
	for _, list := range [][]Token{V2Tokens, V3Tokens} {
		for _, tok := range list {
			idx[strings.ToLower(string(tok))] = tok
		}
	}
	return idx
}()

// LookupToken finds a known token by case-insensitive name.
func LookupToken(name string) (Token, bool) {
	tok, ok := tokenIndex[strings.ToLower(strings.TrimSpace(name))]
	return tok, ok
}

type document struct {
	Name           string                 `json:"name"`
	Dark           bool                   `json:"dark"`
	Mode           Mode                   `json:"mode"`
	Version        Version                `json:"version"`
	Roundness      int                    `json:"roundness"`
	AnimationScale float64                `json:"animationScale"`
	Colors         map[string]color.Color `json:"colors"`
	Elevation      []color.Color          `json:"elevation,omitempty"`
	Fonts          Fonts                  `json:"fonts"`
}

// MarshalJSON encodes the full theme with colors as CSS strings that decode
// back to identical values.
func (t *Theme) MarshalJSON() ([]byte, error) {
	doc := document{
		Name:           t.Name,
		Dark:           t.Dark,
		Mode:           t.Mode,
		Version:        t.Version,
		Roundness:      t.Roundness,
		AnimationScale: t.AnimationScale,
		Colors:         make(map[string]color.Color, len(t.Colors)),
		Fonts:          t.Fonts,
	}
	for tok, c := range t.Colors {
		doc.Colors[string(tok)] = c
	}
	if t.IsV3() {
		doc.Elevation = t.Elevation[:]
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes what MarshalJSON produces.
func (t *Theme) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		if perrors.IsCode(err, perrors.CodeInvalidColor) {
			return err
		}
		return perrors.New(perrors.CodeInvalidTheme, fmt.Sprintf("decode theme: %v", err), err)
	}
	out := Theme{
		Name:           doc.Name,
		Dark:           doc.Dark,
		Mode:           doc.Mode,
		Version:        doc.Version,
		Roundness:      doc.Roundness,
		AnimationScale: doc.AnimationScale,
		Colors:         make(Palette, len(doc.Colors)),
		Fonts:          doc.Fonts,
	}
	for key, c := range doc.Colors {
		tok, ok := LookupToken(key)
		if !ok {
			tok = Token(key)
		}
		out.Colors[tok] = c
	}
	if len(doc.Elevation) > len(out.Elevation) {
		return perrors.New(perrors.CodeInvalidTheme, fmt.Sprintf("theme %q: too many elevation levels", doc.Name), nil)
	}
	copy(out.Elevation[:], doc.Elevation)
	*t = out
	return nil
}
