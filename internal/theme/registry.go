package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	perrors "paper/internal/errors"
)

// Registry holds named themes and tracks the active one. It is safe for
// concurrent use; the themes it hands out are immutable.
type Registry struct {
	mu          sync.RWMutex
	themes      map[string]*Theme
	currentName string
}

// NewRegistry returns a registry preloaded with the stock Material themes and
// the community palettes. md3-light is active.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for _, t := range []*Theme{MD3Light(), MD3Dark(), MD2Light(), MD2Dark()} {
		_ = r.Register(t)
	}
	for _, p := range communityPalettes {
		t, err := FromSeeds(p.name, p.dark, p.seeds)
		if err != nil {
			panic(fmt.Sprintf("community palette %s: %v", p.name, err))
		}
		_ = r.Register(t)
	}
	_ = r.Set(NameMD3Light)
	return r
}

// NewEmptyRegistry returns a registry with no themes.
func NewEmptyRegistry() *Registry {
	return &Registry{themes: make(map[string]*Theme)}
}

// Register validates t and adds it under t.Name, replacing any theme with
// the same name. The first registered theme becomes current.
func (r *Registry) Register(t *Theme) error {
	if t == nil || strings.TrimSpace(t.Name) == "" {
		return perrors.New(perrors.CodeInvalidTheme, "theme must have a name", nil)
	}
	if err := t.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[t.Name] = t
	if r.currentName == "" {
		r.currentName = t.Name
	}
	return nil
}

// Get returns the named theme.
func (r *Registry) Get(name string) (*Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.themes[name]
	if !ok {
		return nil, perrors.New(perrors.CodeUnknownTheme, fmt.Sprintf("unknown theme %q", name), nil)
	}
	return t, nil
}

// Set switches the active theme.
func (r *Registry) Set(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.themes[name]; !ok {
		return perrors.New(perrors.CodeUnknownTheme, fmt.Sprintf("unknown theme %q", name), nil)
	}
	r.currentName = name
	return nil
}

// Current returns the active theme, or nil for an empty registry.
func (r *Registry) Current() *Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.themes[r.currentName]
}

// CurrentName returns the name of the active theme.
func (r *Registry) CurrentName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentName
}

// Names returns all registered theme names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames()
}

func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cycle switches to the next theme in sorted order, wrapping around, and
// returns its name.
func (r *Registry) Cycle() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := r.sortedNames()
	if len(names) == 0 {
		return ""
	}
	next := 0
	for i, name := range names {
		if name == r.currentName {
			next = (i + 1) % len(names)
			break
		}
	}
	r.currentName = names[next]
	return r.currentName
}

// ToggleDark switches to the light/dark counterpart of the active theme
// (foo-light <-> foo-dark) when one is registered. It reports whether the
// active theme changed.
func (r *Registry) ToggleDark() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	other, ok := counterpart(r.currentName)
	if !ok {
		return false
	}
	if _, ok := r.themes[other]; !ok {
		return false
	}
	r.currentName = other
	return true
}

func counterpart(name string) (string, bool) {
	switch {
	case strings.HasSuffix(name, "-dark"):
		return strings.TrimSuffix(name, "-dark") + "-light", true
	case strings.HasSuffix(name, "-light"):
		return strings.TrimSuffix(name, "-light") + "-dark", true
	}
	return "", false
}
