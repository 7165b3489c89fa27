// Package eventform is the modal used to add an event to the selected day.
package eventform

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/gyoji/pkg/app"
	"tableflip.dev/gyoji/pkg/category"
	"tableflip.dev/gyoji/pkg/locale"
	"tableflip.dev/gyoji/pkg/timeutil"
	"tableflip.dev/gyoji/pkg/tui/theme"
)

// SubmitMsg carries the draft when the user confirms the form.
type SubmitMsg struct {
	Draft app.Draft
}

// CancelMsg is sent when the user dismisses the form.
type CancelMsg struct{}

type field int

const (
	fieldTitle field = iota
	fieldCategory
	fieldLocation
	fieldDescription
	fieldCount
)

const inputWidth = 32

// Model holds the form state.
type Model struct {
	labels locale.Locale
	theme  theme.Theme

	day         timeutil.Date
	title       textinput.Model
	location    textinput.Model
	description textinput.Model
	categoryIdx int
	focus       field
}

// New returns an empty form.
func New(l locale.Locale, th theme.Theme) Model {
	return Model{
		labels:      l,
		theme:       th,
		title:       newInput(l.Name, "遠足", "Excursion", 80),
		location:    newInput(l.Name, "高尾山", "Mt. Takao", 80),
		description: newInput(l.Name, "", "", 256),
		categoryIdx: category.Default.Index(),
	}
}

func newInput(lang, ja, en string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = limit
	ti.SetWidth(inputWidth)
	if lang == "ja" {
		ti.Placeholder = ja
	} else {
		ti.Placeholder = en
	}
	return ti
}

// Open clears the form for day and focuses the title.
func (m *Model) Open(day timeutil.Date) tea.Cmd {
	m.day = day
	m.title.SetValue("")
	m.location.SetValue("")
	m.description.SetValue("")
	m.categoryIdx = category.Default.Index()
	return m.setFocus(fieldTitle)
}

// SetDraft fills the fields from d.
func (m *Model) SetDraft(d app.Draft) {
	m.title.SetValue(d.Title)
	m.location.SetValue(d.Location)
	m.description.SetValue(d.Description)
	if i := d.Category.Index(); i >= 0 {
		m.categoryIdx = i
	}
}

// Draft returns the current field values.
func (m Model) Draft() app.Draft {
	return app.Draft{
		Title:       m.title.Value(),
		Category:    category.All()[m.categoryIdx],
		Location:    m.location.Value(),
		Description: m.description.Value(),
	}
}

// Update handles form keys; anything else goes to the focused input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m.updateInput(msg)
	}

	switch key.String() {
	case "esc":
		return m, func() tea.Msg { return CancelMsg{} }
	case "enter":
		d := m.Draft()
		return m, func() tea.Msg { return SubmitMsg{Draft: d} }
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	}

	if m.focus == fieldCategory {
		n := len(category.All())
		switch key.String() {
		case "left", "h":
			m.categoryIdx = (m.categoryIdx + n - 1) % n
		case "right", "l", "space":
			m.categoryIdx = (m.categoryIdx + 1) % n
		}
		return m, nil
	}
	return m.updateInput(msg)
}

func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldLocation:
		m.location, cmd = m.location.Update(msg)
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.location.Blur()
	m.description.Blur()
	switch f {
	case fieldTitle:
		return m.title.Focus()
	case fieldLocation:
		return m.location.Focus()
	case fieldDescription:
		return m.description.Focus()
	}
	return nil
}

// View renders the form.
func (m Model) View() string {
	t := m.theme.Modal
	var b strings.Builder

	b.WriteString(t.Title.Render(m.labels.AddEventTitle))
	b.WriteString("\n")
	b.WriteString(t.Label.Render(m.labels.DayLong(m.day)))
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldTitle, m.labels.TitleField))
	b.WriteString(m.title.View())
	b.WriteString("\n")

	b.WriteString(m.label(fieldCategory, m.labels.CategoryField))
	b.WriteString(m.categoryPicker())
	b.WriteString("\n")

	b.WriteString(m.label(fieldLocation, m.labels.LocationField))
	b.WriteString(m.location.View())
	b.WriteString("\n")

	b.WriteString(m.label(fieldDescription, m.labels.DescriptionField))
	b.WriteString(m.description.View())
	b.WriteString("\n\n")

	b.WriteString(t.Button.Render(m.labels.SaveLabel))
	b.WriteString(t.Label.Render("  enter ⏎  esc ✕  tab ⇥"))

	return t.Frame.Render(b.String())
}

func (m Model) label(f field, text string) string {
	style := m.theme.Modal.Label
	marker := "  "
	if m.focus == f {
		style = m.theme.Modal.Focused
		marker = "› "
	}
	return style.Render(marker + lipgloss.NewStyle().Width(8).Render(text))
}

func (m Model) categoryPicker() string {
	c := category.All()[m.categoryIdx]
	text := "‹ " + m.labels.Category(c) + " ›"
	return m.theme.Category(c).Render(text)
}
