// Package tui provides the terminal item browser.
package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/todo/internal/domain"
)

const (
	appPadding    = 4
	minHeight     = 3
	defaultHeight = 10
	chromeLines   = 8 // Header, help line and padding around the table
)

// Columns returns the table columns.
func Columns() []table.Column {
	return []table.Column{
		{Title: "Description", Width: 28},
		{Title: "Kind", Width: 5},
		{Title: "Status", Width: 10},
		{Title: "Priority", Width: 8},
		{Title: "Due", Width: 19},
		{Title: "Reminder", Width: 19},
	}
}

// Rows converts items into table rows, one per item in order.
func Rows(items []domain.Item) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, it := range items {
		priority := ""
		if p := it.Priority(); p != 0 {
			priority = strconv.Itoa(p)
		}
		rows = append(rows, table.Row{
			it.Description(),
			string(it.Kind()),
			it.Status().Display(),
			priority,
			formatOptional(it.DueDate()),
			formatOptional(it.Reminder()),
		})
	}
	return rows
}

// Model is the item browser model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// State
	items []domain.Item
	title string

	// Components
	keys   KeyMap
	styles Styles
	table  table.Model
	help   help.Model

	// Numeric state
	width  int
	height int

	// Boolean state
	showDetail bool
	quitting   bool
}

// New creates a browser over items.
func New(title string, items []domain.Item) *Model {
	styles := DefaultStyles()
	t := table.New(
		table.WithColumns(Columns()),
		table.WithRows(Rows(items)),
		table.WithFocused(true),
		table.WithHeight(min(max(len(items), minHeight), defaultHeight)),
		table.WithStyles(styles.Table),
	)
	return &Model{
		items:  items,
		title:  title,
		keys:   DefaultKeyMap(),
		styles: styles,
		table:  t,
		help:   help.New(),
	}
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
		m.help.Width = msg.Width - appPadding
		m.table.SetHeight(max(minHeight, min(len(m.items), msg.Height-chromeLines)))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Detail):
			m.showDetail = !m.showDetail
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	header := m.styles.Header.Render(m.title) + " " +
		m.styles.Count.Render("("+strconv.Itoa(len(m.items))+")")
	b.WriteString(header)
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(m.styles.Empty.Render(domain.FilterAll.EmptyMessage()))
	} else {
		b.WriteString(m.table.View())
	}

	if m.showDetail {
		if it, ok := m.Selected(); ok {
			b.WriteString("\n")
			b.WriteString(m.detailView(it))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return m.styles.App.Render(b.String())
}

// Selected returns the item under the cursor.
func (m *Model) Selected() (domain.Item, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.items) {
		return nil, false
	}
	return m.items[i], true
}

func (m *Model) detailView(it domain.Item) string {
	lines := []string{m.styles.DetailTitle.Render(it.Description())}
	field := func(label, value string) {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.DetailLabel.Render(label),
			m.styles.DetailValue.Render(value)))
	}

	field("ID", it.ID())
	field("Status", m.styles.StatusStyle(it.Status()).Render(it.Status().Display()))
	switch v := it.(type) {
	case *domain.Task:
		if len(v.Tags) > 0 {
			field("Tags", strings.Join(v.Tags, ", "))
		}
	case *domain.Note:
		field("Content", v.Content)
	}
	field("Summary", it.Display())
	return strings.Join(lines, "\n")
}

func formatOptional(t time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return domain.FormatTimestamp(t)
}
