package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/phrasegen/internal/generator"
	"github.com/muurk/phrasegen/internal/presets"
)

// pickerKeyMap defines key bindings for the preset picker
type pickerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Generate key.Binding
	Filter   key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Generate, k.Filter, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Generate, k.Filter, k.Clear, k.Quit},
	}
}

// PickerModel is the bubbletea model for interactive preset selection
type PickerModel struct {
	registry  *presets.Registry
	generator *generator.Generator

	names  []string
	cursor int

	filter    textinput.Model
	filtering bool

	generated string
	genErr    error

	width  int
	height int

	keys pickerKeyMap
	help help.Model
}

// NewPickerModel creates a picker over the given registry
func NewPickerModel(registry *presets.Registry) PickerModel {
	filter := textinput.New()
	filter.Placeholder = "filter presets"
	filter.CharLimit = 64

	keys := pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Generate: key.NewBinding(
			key.WithKeys("enter", "g"),
			key.WithHelp("enter/g", "generate"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	return PickerModel{
		registry:  registry,
		generator: generator.New(),
		names:     registry.List(),
		filter:    filter,
		width:     GetTerminalWidth(),
		keys:      keys,
		help:      help.New(),
	}
}

// Init initializes the picker
func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all picker messages
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width > MaxContentWidth {
			m.width = MaxContentWidth
		}
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.filtering {
			return m.updateFiltering(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.visibleNames())-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Generate):
			m.generate()
			return m, nil

		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Clear):
			m.filter.SetValue("")
			m.cursor = 0
			return m, nil
		}
	}

	return m, nil
}

// updateFiltering routes key presses to the filter input
func (m PickerModel) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filter.Blur()
		m.cursor = 0
		return m, nil
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.cursor >= len(m.visibleNames()) {
		m.cursor = 0
	}
	return m, cmd
}

// visibleNames returns the preset names matching the current filter
func (m PickerModel) visibleNames() []string {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return m.names
	}
	var matched []string
	for _, name := range m.names {
		if strings.Contains(name, query) {
			matched = append(matched, name)
		}
	}
	return matched
}

// generate produces a passphrase preview for the selected preset
func (m *PickerModel) generate() {
	visible := m.visibleNames()
	if len(visible) == 0 || m.cursor >= len(visible) {
		return
	}

	cfg, ok := m.registry.Get(visible[m.cursor])
	if !ok {
		m.genErr = fmt.Errorf("preset %q not found", visible[m.cursor])
		m.generated = ""
		return
	}

	phrase, err := m.generator.Generate(cfg)
	if err != nil {
		m.genErr = err
		m.generated = ""
		return
	}
	m.generated = phrase
	m.genErr = nil
}

// View renders the picker
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(TitleStyle.Render("PHRASEGEN PRESETS"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Pick a preset and press enter to generate"))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString("  " + m.filter.View())
		b.WriteString("\n\n")
	}

	visible := m.visibleNames()
	if len(visible) == 0 {
		b.WriteString(ItemDescStyle.Render("  No presets match the filter"))
		b.WriteString("\n")
	}

	builtin := make(map[string]struct{}, len(presets.BuiltinNames))
	for _, name := range presets.BuiltinNames {
		builtin[name] = struct{}{}
	}

	for i, name := range visible {
		marker := BlankMarker
		nameStyle := ItemStyle
		if i == m.cursor {
			marker = CursorMarker
			nameStyle = SelectedItemStyle
		}

		line := fmt.Sprintf("  %s %s", marker, nameStyle.Render(name))
		if _, ok := builtin[name]; !ok {
			line += " " + CustomTagStyle.Render("(custom)")
		}
		b.WriteString(line)

		if cfg, ok := m.registry.Get(name); ok && cfg.Meta.Description != "" {
			b.WriteString("\n      " + ItemDescStyle.Render(cfg.Meta.Description))
		}
		b.WriteString("\n")
	}

	if m.generated != "" {
		b.WriteString("\n")
		b.WriteString(GeneratedBoxStyle(m.width).Render(GeneratedStyle.Render(m.generated)))
		b.WriteString("\n")
	}
	if m.genErr != nil {
		b.WriteString("\n  " + ErrorStyle.Render(m.genErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}
