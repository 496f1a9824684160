// tui/form.go
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// option is one catalog entry offered for autofill, with the field values
// it sets keyed by field key.
type option struct {
	label  string
	values map[string]float64
}

type autofill struct {
	source  string
	options []option
	index   int // -1 until the user picks an entry
}

type field struct {
	key      string
	label    string
	input    textinput.Model
	autofill *autofill
}

// ResultRow is one computed line shown below the inputs.
type ResultRow struct {
	Label  string
	Value  string
	Detail string
	Style  lipgloss.Style
}

// FormModel is a calculator screen: a column of numeric inputs and the
// results recomputed from them after every update.
type FormModel struct {
	Title   string
	fields  []field
	focus   int
	compute func(v map[string]float64) []ResultRow
	help    help.Model
	keys    formKeyMap
}

func newFormModel(title string, fields []field, compute func(map[string]float64) []ResultRow) FormModel {
	m := FormModel{
		Title:   title,
		fields:  fields,
		compute: compute,
		help:    help.New(),
		keys:    formKeys,
	}
	if len(m.fields) > 0 {
		m.fields[0].input.Focus()
	}
	return m
}

func newField(name, label string) field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "0"
	ti.CharLimit = 16
	ti.Width = 16
	return field{key: name, label: label, input: ti}
}

func (f field) withAutofill(source string, options []option) field {
	f.autofill = &autofill{source: source, options: options, index: -1}
	return f
}

// SetValue fills the field identified by name. Unknown names are ignored.
func (m *FormModel) SetValue(name string, v float64) {
	for i := range m.fields {
		if m.fields[i].key == name {
			m.fields[i].input.SetValue(strconv.FormatFloat(v, 'f', -1, 64))
			return
		}
	}
}

// Values parses every field. Empty or unparsable fields read as 0, which the
// calculators treat as missing input.
func (m FormModel) Values() map[string]float64 {
	out := make(map[string]float64, len(m.fields))
	for _, f := range m.fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.input.Value()), 64)
		if err != nil {
			v = 0
		}
		out[f.key] = v
	}
	return out
}

// Results recomputes the output rows from the current field values.
func (m FormModel) Results() []ResultRow {
	return m.compute(m.Values())
}

// Focused returns the key of the field with focus.
func (m FormModel) Focused() string {
	if len(m.fields) == 0 {
		return ""
	}
	return m.fields[m.focus].key
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.focus - 1)
		case key.Matches(msg, m.keys.Autofill):
			m.cycleAutofill(1)
			return m, nil
		case key.Matches(msg, m.keys.AutofillPrev):
			m.cycleAutofill(-1)
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.fields[m.focus].input.SetValue("")
			return m, nil
		}
	}

	if len(m.fields) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m *FormModel) setFocus(i int) tea.Cmd {
	n := len(m.fields)
	if n == 0 {
		return nil
	}
	i = (i%n + n) % n
	m.fields[m.focus].input.Blur()
	m.focus = i
	return m.fields[m.focus].input.Focus()
}

// cycleAutofill steps the focused field's catalog selection and copies the
// selected entry's values into the form.
func (m *FormModel) cycleAutofill(step int) {
	af := m.fields[m.focus].autofill
	if af == nil || len(af.options) == 0 {
		return
	}
	n := len(af.options)
	if af.index < 0 && step < 0 {
		af.index = n - 1
	} else {
		af.index = ((af.index+step)%n + n) % n
	}
	for k, v := range af.options[af.index].values {
		m.SetValue(k, v)
	}
}

func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.Title))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		style := BlurredStyle
		if i == m.focus {
			style = FocusedStyle
		}
		if v := strings.TrimSpace(f.input.Value()); v != "" {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				style = ErrorStyle
			}
		}
		label := style.Render(f.label + ":")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), f.input.View()))
		if f.autofill != nil {
			hint := f.autofill.source + ": ctrl+n"
			if f.autofill.index >= 0 {
				hint = f.autofill.source + ": " + f.autofill.options[f.autofill.index].label
			}
			b.WriteString("  " + SecondaryStyle.Render(hint))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, r := range m.Results() {
		line := LabelStyle.Render(r.Label+":") + r.Style.Render(r.Value)
		if r.Detail != "" {
			line += "  " + SecondaryStyle.Render(r.Detail)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return docStyle.Render(b.String())
}
