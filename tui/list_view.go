// tui/list_view.go
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yackko/astro-tools/internal/catalog"
)

// ListModel browses one reference catalog. Pressing enter records the
// highlighted entry's id in Selected and quits.
type ListModel struct {
	Kind     catalog.Kind
	Selected string
	table    table.Model
	help     help.Model
	keys     listKeyMap
}

// NewListModel creates a browser for the given catalog.
func NewListModel(kind catalog.Kind) ListModel {
	headers, rows := catalog.Tabulate(kind)

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		for i, cell := range r {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
		tableRows = append(tableRows, table.Row(r))
	}
	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		cols[i] = table.Column{Title: h, Width: widths[i] + 2}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(len(tableRows)+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("69"))
	t.SetStyles(s)

	return ListModel{
		Kind:  kind,
		table: t,
		help:  help.New(),
		keys:  listKeys,
	}
}

// Init is a required method for tea.Model.
func (m ListModel) Init() tea.Cmd {
	return nil
}

// Update is a required method for tea.Model.
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if row := m.table.SelectedRow(); row != nil {
				m.Selected = row[0]
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View is a required method for tea.Model.
func (m ListModel) View() string {
	return docStyle.Render(TitleStyle.Render(string(m.Kind)) + "\n\n" + m.table.View() + "\n" + m.help.View(m.keys))
}
