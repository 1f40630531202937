package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/systeroid-tui/internal/buildinfo"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minDocsHeight = 5
)

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m *Model) docsHeight() int {
	if !m.showDocs() {
		return 0
	}
	_, h := m.size()
	return max(h/3, minDocsHeight)
}

// listHeight is what remains after the header, search line, status bar and
// docs pane.
func (m *Model) listHeight() int {
	_, h := m.size()
	return max(h-3-m.docsHeight(), 1)
}

func (m *Model) View() string {
	width, _ := m.size()
	var sections []string

	sections = append(sections, m.viewHeader(width))
	sections = append(sections, m.viewList(width))
	if m.showDocs() {
		sections = append(sections, m.viewDocs(width))
	}
	sections = append(sections, m.viewSearch(width))
	sections = append(sections, m.viewStatus(width))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) viewHeader(width int) string {
	header := titleStyle.Render(title(buildinfo.Current()))
	if s := m.cfg.Section; s != nil {
		header += headerStyle.Render(" · section " + s.String())
	}
	return ansi.Truncate(header, width, "…")
}

func (m *Model) viewList(width int) string {
	rows := m.listHeight()
	lines := make([]string, 0, rows)

	nameWidth := 0
	start, end := m.window()
	for _, p := range m.visible[start:end] {
		nameWidth = max(nameWidth, len(p.Name))
	}
	nameWidth = min(nameWidth, width/2)

	for i := start; i < end; i++ {
		p := m.visible[i]
		name := ansi.Truncate(p.Name, nameWidth, "…")
		if i == m.cursor {
			row := ansi.Truncate(fmt.Sprintf("%-*s = %s", nameWidth, name, p.Value), width, "…")
			lines = append(lines, selectedStyle.Width(width).Render(row))
			continue
		}
		pad := strings.Repeat(" ", max(nameWidth-ansi.StringWidth(name), 0))
		value := ansi.Truncate(p.Value, max(width-nameWidth-3, 0), "…")
		lines = append(lines, nameStyle.Render(name)+pad+" = "+valueStyle.Render(value))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewDocs(width int) string {
	text := "no documentation available"
	if p, ok := m.Selected(); ok {
		if doc := m.docs.Lookup(p); doc != "" {
			text = doc
		}
	}
	inner := max(m.docsHeight()-2, 1)
	innerWidth := max(width-4, 1)

	var lines []string
	for _, l := range strings.Split(ansi.Wordwrap(text, innerWidth, ""), "\n") {
		lines = append(lines, ansi.Truncate(l, innerWidth, "…"))
		if len(lines) == inner {
			break
		}
	}
	return docsStyle.Width(max(width-2, 1)).Height(inner).Render(strings.Join(lines, "\n"))
}

func (m *Model) viewSearch(width int) string {
	if !m.searching && m.search.Value() == "" {
		return headerStyle.Render(ansi.Truncate(m.keyHints(), width, "…"))
	}
	return m.search.View()
}

func (m *Model) viewStatus(width int) string {
	style := statusStyle
	switch {
	case m.err != nil:
		style = errorStyle
	case m.loaded && len(m.visible) == 0:
		style = warnStyle
	}
	return style.Render(ansi.Truncate(m.status, width, "…"))
}

func (m *Model) keyHints() string {
	hints := make([]string, 0, 4)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	return strings.Join(hints, " · ")
}
