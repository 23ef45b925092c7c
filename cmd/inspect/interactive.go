package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ffikit/cmem/ctypes"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	paddingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectType modelState = iota
	stateBrowseType
	stateEditField
)

type interactiveModel struct {
	err      error
	view     *ctypes.StructView
	byName   map[string]*ctypes.Type
	filename string
	order    []string
	paths    []string
	input    textinput.Model
	selected int
	field    int
	state    modelState
}

func newInteractiveModel(filename string) *interactiveModel {
	return &interactiveModel{filename: filename, state: stateSelectType}
}

type loadedMsg struct {
	err    error
	byName map[string]*ctypes.Type
	order  []string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadDefs
}

func (m *interactiveModel) loadDefs() tea.Msg {
	order, byName, err := loadDefs(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{order: order, byName: byName}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateEditField {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectType && m.selected > 0 {
				m.selected--
			}
			if m.state == stateBrowseType && m.field > 0 {
				m.field--
			}

		case "down", "j":
			if m.state == stateSelectType && m.selected < len(m.order)-1 {
				m.selected++
			}
			if m.state == stateBrowseType && m.field < len(m.paths)-1 {
				m.field++
			}

		case "enter":
			switch m.state {
			case stateSelectType:
				if err := m.openType(); err != nil {
					m.err = err
					return m, nil
				}
				m.state = stateBrowseType

			case stateBrowseType:
				if len(m.paths) > 0 {
					m.input = textinput.New()
					m.input.Prompt = m.paths[m.field] + " = "
					m.input.Width = 40
					m.input.Focus()
					m.state = stateEditField
				}

			case stateEditField:
				if err := m.applyEdit(); err != nil {
					m.err = err
				} else {
					m.err = nil
				}
				m.state = stateBrowseType
			}

		case "esc":
			switch m.state {
			case stateBrowseType:
				m.state = stateSelectType
				m.view = nil
				m.err = nil
			case stateEditField:
				m.state = stateBrowseType
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.order = msg.order
		m.byName = msg.byName
	}

	if m.state == stateEditField {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// openType allocates a zeroed instance of the selected type and collects
// its editable member paths.
func (m *interactiveModel) openType() error {
	typ := m.byName[m.order[m.selected]]
	view, err := ctypes.NewStructView(typ, nil)
	if err != nil {
		return err
	}
	m.view = view
	m.paths = memberPaths(typ, "")
	m.field = 0
	return nil
}

// memberPaths lists scalar member paths depth-first, so nested members are
// editable directly.
func memberPaths(t *ctypes.Type, prefix string) []string {
	var paths []string
	for i := range t.Fields {
		f := &t.Fields[i]
		if f.Name == "" {
			continue
		}
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}
		switch f.Type.Kind {
		case ctypes.KindStruct, ctypes.KindUnion:
			paths = append(paths, memberPaths(f.Type, path)...)
		default:
			paths = append(paths, path)
		}
	}
	return paths
}

func (m *interactiveModel) applyEdit() error {
	path := m.paths[m.field]
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return nil
	}

	var value any
	if i, err := strconv.ParseInt(raw, 0, 64); err == nil {
		value = i
	} else if u, err := strconv.ParseUint(raw, 0, 64); err == nil {
		value = u
	} else if f, err := strconv.ParseFloat(raw, 64); err == nil {
		value = f
	} else if raw == "true" || raw == "false" {
		value = raw == "true"
	} else {
		value = raw
	}
	return m.view.Set(path, value)
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state == stateSelectType {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if len(m.order) == 0 {
		return "Loading definitions..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Layout Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectType:
		b.WriteString("Select a type:\n\n")
		for i, name := range m.order {
			typ := m.byName[name]
			line := fmt.Sprintf("%s  (size=%d align=%d)", typeStyle.Render(name), typ.Size, typ.Align)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • q quit"))

	case stateBrowseType, stateEditField:
		typ := m.byName[m.order[m.selected]]
		b.WriteString(formatLayoutStyled(typ))
		b.WriteString("\n")

		b.WriteString("Members:\n")
		for i, path := range m.paths {
			val, err := m.view.Get(path)
			line := fmt.Sprintf("%-24s = %v", path, val)
			if err != nil {
				line = fmt.Sprintf("%-24s = <%v>", path, err)
			}
			if i == m.field && m.state == stateBrowseType {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(hexdump(m.view.Bytes()))
		b.WriteString("\n")

		if m.state == stateEditField {
			b.WriteString(m.input.View())
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("enter apply • esc cancel"))
		} else {
			if m.err != nil {
				b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
				b.WriteString("\n")
			}
			b.WriteString(helpStyle.Render("↑/↓ select • enter edit • esc back • q quit"))
		}
	}

	return b.String()
}

// formatLayoutStyled is formatLayout with padding rows dimmed.
func formatLayoutStyled(t *ctypes.Type) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(formatLayout(t), "\n"), "\n") {
		if strings.Contains(line, "padding>") {
			b.WriteString(paddingStyle.Render(line))
		} else if strings.HasPrefix(line, "  ") {
			b.WriteString(offsetStyle.Render(line[:6]) + line[6:])
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func hexdump(data []byte) string {
	var b strings.Builder
	for i := 0; i < len(data); i += 16 {
		fmt.Fprintf(&b, "%04x  ", i)
		for j := range 16 {
			if i+j < len(data) {
				fmt.Fprintf(&b, "%02x ", data[i+j])
			} else {
				b.WriteString("   ")
			}
			if j == 7 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
