// Package tui is the interactive guided form. It walks the seven sections,
// edits fields in place, applies suggestions, previews the rendered document,
// and autosaves every change.
package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jerops/prd-generator/internal/form"
	"github.com/jerops/prd-generator/internal/project"
	"github.com/jerops/prd-generator/internal/render"
	"github.com/jerops/prd-generator/internal/store"
	"github.com/jerops/prd-generator/internal/suggest"
)

type Model struct {
	state       form.State
	st          *store.Store
	root        string
	sections    []form.Section
	section     int
	field       int
	optIdx      int
	editing     bool
	input       textinput.Model
	preview     bool
	previewText string
	status      string
	err         string
	width       int
	height      int
}

func NewModel(root string) Model {
	st := store.New(project.StatePath(root))
	state, err := st.Load()
	m := Model{
		state:    state,
		st:       st,
		root:     root,
		sections: form.Sections(),
		width:    100,
		height:   32,
	}
	if err != nil && !errors.Is(err, store.ErrNoState) {
		m.status = "saved state unreadable, starting fresh"
	}
	ti := textinput.New()
	ti.CharLimit = 500
	ti.Width = 60
	m.input = ti
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		if m.preview {
			switch msg.String() {
			case "esc", "q", "ctrl+p":
				m.preview = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := sectionFields(m.sections[m.section])
	cur := fields[m.field]
	m.status = ""

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "]", "tab":
		m.section = (m.section + 1) % len(m.sections)
		m.field, m.optIdx = 0, 0
	case "[", "shift+tab":
		m.section = (m.section + len(m.sections) - 1) % len(m.sections)
		m.field, m.optIdx = 0, 0
	case "down", "j":
		if m.field < len(fields)-1 {
			m.field++
			m.optIdx = 0
		}
	case "up", "k":
		if m.field > 0 {
			m.field--
			m.optIdx = 0
		}
	case "left", "h":
		if (cur.kind == kindSelect || cur.kind == kindMulti) && m.optIdx > 0 {
			m.optIdx--
		}
	case "right", "l":
		if (cur.kind == kindSelect || cur.kind == kindMulti) && m.optIdx < len(cur.options)-1 {
			m.optIdx++
		}
	case "enter":
		switch cur.kind {
		case kindText:
			value, _ := form.Scalar(m.state, cur.name)
			m.input.SetValue(value)
			m.input.Placeholder = cur.hint
			m.input.Focus()
			m.editing = true
			return m, textinput.Blink
		case kindList, kindMetrics:
			m.input.SetValue("")
			m.input.Placeholder = cur.hint
			m.input.Focus()
			m.editing = true
			return m, textinput.Blink
		case kindSelect:
			m.apply(m.setSelect(cur))
		case kindMulti:
			m.apply(m.toggleOption(cur))
		}
	case " ":
		if cur.kind == kindMulti {
			m.apply(m.toggleOption(cur))
		} else if cur.kind == kindSelect {
			m.apply(m.setSelect(cur))
		}
	case "backspace", "d":
		switch cur.kind {
		case kindList, kindMetrics:
			items, _ := form.Items(m.state, cur.name)
			if len(items) > 0 {
				m.apply(func() (form.State, error) {
					return form.RemoveItemAt(m.state, cur.name, len(items)-1)
				})
			}
		case kindText:
			m.apply(func() (form.State, error) {
				return form.SetField(m.state, cur.name, "")
			})
		case kindSelect:
			m.apply(func() (form.State, error) {
				return form.SetField(m.state, cur.name, "")
			})
		}
	case "ctrl+s":
		if err := m.st.Save(m.state); err != nil {
			m.err = err.Error()
		} else {
			m.status = "saved"
		}
	case "ctrl+g":
		m.applySuggestions()
	case "ctrl+p":
		m.openPreview()
	case "ctrl+e":
		m.export()
	}
	return m, nil
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := sectionFields(m.sections[m.section])
	cur := fields[m.field]

	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		return *m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.editing = false
		m.input.Blur()
		switch cur.kind {
		case kindText:
			m.apply(func() (form.State, error) {
				return form.SetField(m.state, cur.name, value)
			})
		case kindList, kindMetrics:
			if value == "" {
				return *m, nil
			}
			m.apply(func() (form.State, error) {
				return form.AddItem(m.state, cur.name, value)
			})
		}
		return *m, nil
	case "ctrl+c":
		return *m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return *m, cmd
}

// setSelect sets the enum under the option cursor, or clears it when already
// selected.
func (m *Model) setSelect(cur fieldSpec) func() (form.State, error) {
	return func() (form.State, error) {
		picked := cur.options[m.optIdx]
		current, _ := form.Scalar(m.state, cur.name)
		if current == picked {
			picked = ""
		}
		return form.SetField(m.state, cur.name, picked)
	}
}

func (m *Model) toggleOption(cur fieldSpec) func() (form.State, error) {
	return func() (form.State, error) {
		picked := cur.options[m.optIdx]
		items, _ := form.Items(m.state, cur.name)
		for i, item := range items {
			if item == picked {
				return form.RemoveItemAt(m.state, cur.name, i)
			}
		}
		return form.AddItem(m.state, cur.name, picked)
	}
}

// apply runs a mutation, replaces the snapshot, and autosaves.
func (m *Model) apply(mutate func() (form.State, error)) {
	next, err := mutate()
	if err != nil {
		m.err = err.Error()
		return
	}
	m.err = ""
	m.state = next
	if err := m.st.Save(m.state); err != nil {
		m.status = "save failed: " + err.Error()
	}
}

func (m *Model) applySuggestions() {
	switch m.sections[m.section] {
	case form.SectionOverview:
		if _, ok := suggest.ProjectType(m.state); !ok {
			m.status = "pick target users first"
			return
		}
		m.apply(func() (form.State, error) { return suggest.ApplyProjectType(m.state), nil })
		m.status = "project type suggested"
	case form.SectionSolution:
		m.apply(func() (form.State, error) {
			return suggest.ApplyTechStack(suggest.ApplyPlatform(m.state)), nil
		})
		m.status = "platform and tech stack suggested"
	case form.SectionTechnical:
		m.apply(func() (form.State, error) { return suggest.Technical(m.state), nil })
		m.status = "technical defaults suggested"
	default:
		m.status = "no suggestions for this section"
	}
}

func (m *Model) openPreview() {
	doc := render.Document(m.state)
	width := m.width - 4
	rendered, err := renderMarkdown(doc, width)
	if err != nil {
		m.err = err.Error()
		return
	}
	m.previewText = rendered
	m.preview = true
}

func (m *Model) export() {
	dir := project.ExportsDir(m.root)
	if err := os.MkdirAll(dir, 0755); err != nil {
		m.err = err.Error()
		return
	}
	dest := filepath.Join(dir, render.Filename(m.state.ProjectName))
	if err := os.WriteFile(dest, []byte(render.Document(m.state)), 0644); err != nil {
		m.err = err.Error()
		return
	}
	m.status = fmt.Sprintf("exported %s", dest)
}

// Run starts the interactive form in the given workspace.
func Run(root string) error {
	if err := project.EnsureInitialized(root); err != nil {
		return err
	}
	_, err := tea.NewProgram(NewModel(root), tea.WithAltScreen()).Run()
	return err
}
