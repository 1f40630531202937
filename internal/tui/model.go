package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/systeroid-tui/internal/buildinfo"
	"github.com/jask/systeroid-tui/internal/config"
	"github.com/jask/systeroid-tui/internal/docs"
	"github.com/jask/systeroid-tui/internal/sysctl"
)

// Model is the bubbletea model of the parameter browser.
type Model struct {
	ctx  context.Context
	cfg  config.Config
	tree *sysctl.Tree
	docs docs.Index

	all     []sysctl.Parameter
	visible []sysctl.Parameter
	cursor  int
	offset  int
	loaded  bool

	search    textinput.Model
	searching bool
	keys      keyMap

	width  int
	height int
	status string
	err    error
}

type paramsMsg struct {
	params []sysctl.Parameter
	err    error
}

type refreshMsg struct {
	params []sysctl.Parameter
}

type tickMsg time.Time

// New builds the model. index may be nil; documentation is never shown when
// cfg.NoDocs is set.
func New(ctx context.Context, cfg config.Config, tree *sysctl.Tree, index docs.Index) *Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search"
	if cfg.SearchQuery != nil {
		search.SetValue(*cfg.SearchQuery)
	}
	if cfg.NoDocs {
		index = nil
	}
	return &Model{
		ctx:    ctx,
		cfg:    cfg,
		tree:   tree,
		docs:   index,
		search: search,
		keys:   newKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick())
}

func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		params, err := m.tree.Parameters(m.ctx)
		return paramsMsg{params: params, err: err}
	}
}

// tick schedules the next refresh. A zero tick rate disables refreshing.
func (m *Model) tick() tea.Cmd {
	interval := m.cfg.TickInterval()
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// refresh re-reads the values of the rows currently on screen.
func (m *Model) refresh() tea.Cmd {
	start, end := m.window()
	if start >= end {
		return nil
	}
	rows := append([]sysctl.Parameter(nil), m.visible[start:end]...)
	return func() tea.Msg {
		params, err := m.tree.Refresh(m.ctx, rows)
		if err != nil {
			slog.Debug("refresh aborted", "err", err)
			return nil
		}
		return refreshMsg{params: params}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case paramsMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("read error: %v", msg.err)
			return m, nil
		}
		m.all = msg.params
		m.loaded = true
		m.applyFilter()
		return m, nil
	case refreshMsg:
		m.mergeValues(msg.params)
		return m, nil
	case tickMsg:
		return m, tea.Batch(m.refresh(), m.tick())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width-4, 0)
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Leave) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(m.visible)-1, 0)
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	}
	m.clampCursor()
	return m, nil
}

// applyFilter recomputes the visible rows from the section filter and the
// search box, keeping the selection on the same parameter when possible.
func (m *Model) applyFilter() {
	var selected string
	if p, ok := m.Selected(); ok {
		selected = p.Name
	}

	m.visible = sysctl.Filter(m.all, m.cfg.Section, m.search.Value())
	m.cursor = 0
	for i, p := range m.visible {
		if p.Name == selected {
			m.cursor = i
			break
		}
	}
	m.clampCursor()
	m.status = m.describeFilter()
}

func (m *Model) describeFilter() string {
	if len(m.visible) > 0 || !m.loaded {
		return fmt.Sprintf("%d parameters", len(m.visible))
	}
	if len(m.all) == 0 {
		return fmt.Sprintf("no parameters under %s", m.tree.Root())
	}
	if s := m.cfg.Section; s != nil && !s.IsKnown() {
		if hint := s.Suggest(); hint != "" {
			return fmt.Sprintf("no parameters in section %q (did you mean %q?)", s.Name, hint)
		}
		return fmt.Sprintf("no parameters in section %q", s.Name)
	}
	return "no matching parameters"
}

func (m *Model) mergeValues(updated []sysctl.Parameter) {
	values := make(map[string]string, len(updated))
	for _, p := range updated {
		values[p.Name] = p.Value
	}
	for i := range m.all {
		if v, ok := values[m.all[i].Name]; ok {
			m.all[i].Value = v
		}
	}
	for i := range m.visible {
		if v, ok := values[m.visible[i].Name]; ok {
			m.visible[i].Value = v
		}
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	rows := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if rows > 0 && m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// window returns the [start, end) range of visible rows on screen.
func (m *Model) window() (int, int) {
	rows := m.listHeight()
	start := m.offset
	end := min(start+rows, len(m.visible))
	if start > end {
		start = end
	}
	return start, end
}

// Selected returns the parameter under the cursor.
func (m *Model) Selected() (sysctl.Parameter, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return sysctl.Parameter{}, false
	}
	return m.visible[m.cursor], true
}

// Visible returns the rows matching the current filters.
func (m *Model) Visible() []sysctl.Parameter {
	return append([]sysctl.Parameter(nil), m.visible...)
}

// Status is the text shown in the status bar.
func (m *Model) Status() string {
	return m.status
}

func (m *Model) showDocs() bool {
	return m.docs != nil
}

// title is the header text; the commit is appended when the build has one.
func title(info buildinfo.Info) string {
	if info.Commit == "" || info.Commit == "unknown" {
		return info.String()
	}
	return fmt.Sprintf("%s (%s)", info, info.Commit)
}
