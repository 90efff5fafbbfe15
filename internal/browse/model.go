// Package browse is the interactive terminal theme browser.
package browse

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"paper/internal/color"
	"paper/internal/config"
	"paper/internal/overlay"
	"paper/internal/preview"
	"paper/internal/style"
	"paper/internal/theme"
)

const (
	toastDuration = 2 * time.Second
	chromeHeight  = 3
)

type toastTickMsg struct{}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

type row struct {
	label string
	color color.Color
}

// Option configures a Model.
type Option func(*Model)

// WithFormat sets the preview output format.
func WithFormat(format string) Option {
	return func(m *Model) { m.format = format }
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) { m.copy = write }
}

// WithSaver replaces the function that persists the chosen theme name.
func WithSaver(save func(string) error) Option {
	return func(m *Model) { m.save = save }
}

// WithLogger sets the logger for browser events.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// Model browses the themes of a registry. The registry's current theme is
// the one on screen; switching themes updates the registry.
type Model struct {
	reg      *theme.Registry
	keys     KeyMap
	viewport viewport.Model
	format   string

	// component indexes components; -1 shows the theme's own tokens.
	components []string
	component  int
	rows       []row
	cursor     int

	width  int
	height int

	toast      string
	toastStart time.Time

	copy   func(string) error
	save   func(string) error
	logger zerolog.Logger
}

// New returns a browser over reg.
func New(reg *theme.Registry, opts ...Option) *Model {
	m := &Model{
		reg:        reg,
		keys:       DefaultKeyMap(),
		viewport:   viewport.New(0, 0),
		format:     preview.FormatRich,
		components: style.Components(),
		component:  -1,
		copy:       clipboard.WriteAll,
		save:       config.SaveTheme,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.rebuild()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.render()
		return m, nil
	case toastTickMsg:
		if m.toast == "" {
			return m, nil
		}
		if time.Since(m.toastStart) >= toastDuration {
			m.toast = ""
			return m, nil
		}
		return m, scheduleToastTick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-max(m.viewport.Height, 1))
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(max(m.viewport.Height, 1))
	case key.Matches(msg, m.keys.Theme):
		name := m.reg.Cycle()
		m.logger.Debug().Str("theme", name).Msg("cycled theme")
		m.rebuild()
	case key.Matches(msg, m.keys.Dark):
		if !m.reg.ToggleDark() {
			return m, m.showToast(fmt.Sprintf("%s has no light/dark counterpart", m.reg.CurrentName()))
		}
		m.logger.Debug().Str("theme", m.reg.CurrentName()).Msg("toggled dark")
		m.rebuild()
	case key.Matches(msg, m.keys.Component):
		m.component++
		if m.component >= len(m.components) {
			m.component = -1
		}
		m.cursor = 0
		m.rebuild()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelected()
	case key.Matches(msg, m.keys.Save):
		name := m.reg.CurrentName()
		if err := m.save(name); err != nil {
			m.logger.Warn().Err(err).Str("theme", name).Msg("save theme failed")
			return m, m.showToast(fmt.Sprintf("Save failed: %v", err))
		}
		return m, m.showToast(fmt.Sprintf("Saved %s as the default theme.", name))
	}
	return m, nil
}

func (m *Model) copySelected() tea.Cmd {
	if len(m.rows) == 0 {
		return nil
	}
	value := m.rows[m.cursor].color.String()
	if err := m.copy(value); err != nil {
		m.logger.Warn().Err(err).Msg("clipboard write failed")
		return m.showToast(fmt.Sprintf("Copy failed: %v", err))
	}
	return m.showToast(fmt.Sprintf("Copied '%s' to clipboard.", value))
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toast = text
	m.toastStart = time.Now()
	return scheduleToastTick()
}

func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.rows)-1)
	m.render()
}

// rebuild recomputes the rows for the current theme and view.
func (m *Model) rebuild() {
	th := m.reg.Current()
	m.rows = m.rows[:0]
	if th != nil {
		if m.component < 0 {
			for _, tok := range th.Colors.Tokens() {
				m.rows = append(m.rows, row{label: string(tok), color: th.Color(tok)})
			}
			if th.IsV3() {
				for level := 1; level <= overlay.MaxLevel; level++ {
					m.rows = append(m.rows, row{label: fmt.Sprintf("elevation.level%d", level), color: th.Level(level)})
				}
			}
		} else if res, err := style.Resolve(th, m.components[m.component], style.Props{}); err == nil {
			for _, sw := range res.Swatches() {
				m.rows = append(m.rows, row{label: sw.Role, color: sw.Color})
			}
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
	m.render()
}

func (m *Model) render() {
	th := m.reg.Current()
	if th == nil {
		m.viewport.SetContent("No themes registered.")
		return
	}
	printer := preview.ForTheme(m.format, m.width-2, th)
	lines := make([]string, len(m.rows))
	for i, r := range m.rows {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		lines[i] = marker + printer.Swatch(r.label, r.color)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	if m.viewport.Height > 0 {
		if m.cursor < m.viewport.YOffset {
			m.viewport.SetYOffset(m.cursor)
		} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
		}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	th := m.reg.Current()
	header := "paper"
	if th != nil {
		view := "tokens"
		if m.component >= 0 {
			view = m.components[m.component]
		}
		header = fmt.Sprintf("%s  ·  %s", preview.Describe(th), view)
	}
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if th != nil && m.format != preview.FormatPlain {
		primary := th.Color(theme.Primary)
		headerStyle = headerStyle.
			Background(primary.Lipgloss()).
			Foreground(style.ContentColor(primary, nil).Lipgloss())
	}

	footer := m.toast
	if footer == "" {
		parts := make([]string, 0, len(m.keys.ShortHelp()))
		for _, b := range m.keys.ShortHelp() {
			h := b.Help()
			parts = append(parts, h.Key+" "+h.Desc)
		}
		footer = strings.Join(parts, " · ")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(header),
		m.viewport.View(),
		lipgloss.NewStyle().Faint(true).Render(footer),
	)
}

// Selected returns the label and color under the cursor.
func (m *Model) Selected() (string, color.Color, bool) {
	if len(m.rows) == 0 {
		return "", color.Color{}, false
	}
	r := m.rows[m.cursor]
	return r.label, r.color, true
}

// Run starts the browser on the terminal and blocks until it exits.
func Run(reg *theme.Registry, opts ...Option) error {
	p := tea.NewProgram(New(reg, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
