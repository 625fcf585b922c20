package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/jerops/prd-generator/internal/form"
)

func (m Model) View() string {
	if m.preview {
		return m.previewView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")
	b.WriteString(m.fieldsView())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	progress := form.Evaluate(m.state)
	bar := progressBar(progress.Percent, 30)
	title := titleStyle.Render("PRD Generator")
	return headerStyle.Render(fmt.Sprintf("%s  %s %3d%%", title, bar, progress.Percent))
}

func progressBar(percent, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}

func (m Model) tabsView() string {
	progress := form.Evaluate(m.state)
	parts := make([]string, len(m.sections))
	for i, sec := range m.sections {
		label := fmt.Sprintf("%d.%s", i+1, sectionTitle(sec))
		if progress.Completed[sec] {
			label += badgeDoneStyle.Render(" ✓")
		}
		if i == m.section {
			parts[i] = tabActiveStyle.Render(label)
		} else {
			parts[i] = tabStyle.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) fieldsView() string {
	fields := sectionFields(m.sections[m.section])
	var b strings.Builder
	for i, f := range fields {
		focused := i == m.field
		label := labelStyle.Render(f.label)
		if focused {
			label = labelFocusStyle.Render("› " + f.label)
		} else {
			label = "  " + label
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(m.fieldValueView(f, focused))
		b.WriteString("\n")
	}
	return panelStyle.Width(m.width - 2).Render(b.String())
}

func (m Model) fieldValueView(f fieldSpec, focused bool) string {
	const indent = "    "
	if focused && m.editing && (f.kind == kindText || f.kind == kindList || f.kind == kindMetrics) {
		return indent + m.input.View()
	}
	switch f.kind {
	case kindText:
		value, _ := form.Scalar(m.state, f.name)
		if value == "" {
			return indent + placeholderStyle.Render("(empty)")
		}
		wrapped := wordwrap.String(value, m.width-10)
		return indent + strings.ReplaceAll(valueStyle.Render(wrapped), "\n", "\n"+indent)
	case kindSelect:
		current, _ := form.Scalar(m.state, f.name)
		return indent + m.optionsView(f, func(opt string) bool { return opt == current }, focused)
	case kindMulti:
		items, _ := form.Items(m.state, f.name)
		selected := make(map[string]bool, len(items))
		for _, item := range items {
			selected[item] = true
		}
		return indent + m.optionsView(f, func(opt string) bool { return selected[opt] }, focused)
	case kindList, kindMetrics:
		items, _ := form.Items(m.state, f.name)
		if len(items) == 0 {
			return indent + placeholderStyle.Render("(none)")
		}
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = indent + valueStyle.Render("• "+item)
		}
		return strings.Join(lines, "\n")
	}
	return ""
}

func (m Model) optionsView(f fieldSpec, on func(string) bool, focused bool) string {
	parts := make([]string, len(f.options))
	for i, opt := range f.options {
		mark := "○"
		style := optionStyle
		if on(opt) {
			mark = "●"
			style = optionOnStyle
		}
		text := mark + " " + opt
		if focused && i == m.optIdx {
			parts[i] = optionCursorStyle.Render("[" + text + "]")
		} else {
			parts[i] = style.Render(" " + text + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) footerView() string {
	if m.err != "" {
		return errorStyle.Render("  " + m.err)
	}
	hints := "[/] section · ↑↓ field · enter edit · space toggle · ctrl+g suggest · ctrl+p preview · ctrl+e export · q quit"
	if m.editing {
		hints = "enter commit · esc cancel"
	}
	line := footerStyle.Render(hints)
	if m.status != "" {
		line += "\n" + statusStyle.Render("  "+m.status)
	}
	return line
}

func (m Model) previewView() string {
	footer := footerStyle.Render("esc close")
	return m.previewText + "\n" + footer
}
