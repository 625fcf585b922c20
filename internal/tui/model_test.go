package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jerops/prd-generator/internal/form"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("update returned %T", next)
		}
	}
	return m
}

func TestSectionNavigationWraps(t *testing.T) {
	m := NewModel(t.TempDir())
	if m.section != 0 {
		t.Fatalf("start section = %d", m.section)
	}
	m = press(t, m, "]")
	if m.sections[m.section] != form.SectionProblem {
		t.Errorf("after ]: section = %s", m.sections[m.section])
	}
	m = press(t, m, "[", "[")
	if m.sections[m.section] != form.SectionResources {
		t.Errorf("wrap backwards: section = %s", m.sections[m.section])
	}
}

func TestTextFieldEdit(t *testing.T) {
	m := NewModel(t.TempDir())
	m = press(t, m, "enter") // open projectName editor
	if !m.editing {
		t.Fatal("expected editing mode")
	}
	m = press(t, m, "F", "o", "o", "enter")
	if m.editing {
		t.Fatal("expected editing committed")
	}
	if m.state.ProjectName != "Foo" {
		t.Errorf("projectName = %q", m.state.ProjectName)
	}
}

func TestMultiSelectToggle(t *testing.T) {
	m := NewModel(t.TempDir())
	// Overview field 3 is target users; first option is "yourself".
	m = press(t, m, "j", "j", "j", " ")
	if len(m.state.TargetUsers) != 1 || m.state.TargetUsers[0] != form.UserYourself {
		t.Fatalf("targetUsers = %v", m.state.TargetUsers)
	}
	m = press(t, m, " ")
	if len(m.state.TargetUsers) != 0 {
		t.Errorf("toggle off failed: %v", m.state.TargetUsers)
	}
}

func TestSelectClearOnRepeat(t *testing.T) {
	m := NewModel(t.TempDir())
	m = press(t, m, "j", " ") // projectType, pick first option
	if m.state.ProjectType != form.ProjectBrowser {
		t.Fatalf("projectType = %q", m.state.ProjectType)
	}
	m = press(t, m, " ")
	if m.state.ProjectType != "" {
		t.Errorf("repeat select should clear, got %q", m.state.ProjectType)
	}
}

func TestSuggestionsFromOverview(t *testing.T) {
	m := NewModel(t.TempDir())
	m = press(t, m, "ctrl+g")
	if m.state.ProjectType != "" {
		t.Fatal("suggestion must not fire without target users")
	}
	m = press(t, m, "j", "j", "j", " ", "ctrl+g")
	if m.state.ProjectType != form.ProjectBrowser {
		t.Errorf("suggested type = %q", m.state.ProjectType)
	}
}

func TestListAppendAndRemove(t *testing.T) {
	m := NewModel(t.TempDir())
	m = press(t, m, "]", "]", "]") // features section
	if m.sections[m.section] != form.SectionFeatures {
		t.Fatalf("section = %s", m.sections[m.section])
	}
	m = press(t, m, "enter", "O", "n", "e", "enter")
	if len(m.state.CoreFeatures) != 1 || m.state.CoreFeatures[0] != "One" {
		t.Fatalf("coreFeatures = %v", m.state.CoreFeatures)
	}
	m = press(t, m, "d")
	if len(m.state.CoreFeatures) != 0 {
		t.Errorf("remove last failed: %v", m.state.CoreFeatures)
	}
}

func TestViewShowsSectionTitle(t *testing.T) {
	m := NewModel(t.TempDir())
	out := m.View()
	if !strings.Contains(out, "Project Overview") {
		t.Error("view missing active section tab")
	}
	if !strings.Contains(out, "Project Name") {
		t.Error("view missing field label")
	}
}

func TestAutosavePersists(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(dir)
	m = press(t, m, "enter", "X", "enter")

	reloaded := NewModel(dir)
	if reloaded.state.ProjectName != "X" {
		t.Errorf("reloaded projectName = %q", reloaded.state.ProjectName)
	}
}
