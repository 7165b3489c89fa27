// Package app is the Bubble Tea front end: month grid, day sidebar and the
// add-event form.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	core "tableflip.dev/gyoji/pkg/app"
	"tableflip.dev/gyoji/pkg/ics"
	"tableflip.dev/gyoji/pkg/locale"
	"tableflip.dev/gyoji/pkg/timeutil"
	"tableflip.dev/gyoji/pkg/tui/components/calendar"
	"tableflip.dev/gyoji/pkg/tui/components/eventform"
	"tableflip.dev/gyoji/pkg/tui/components/help"
	"tableflip.dev/gyoji/pkg/tui/theme"
)

const helpText = "←↓↑→/hjkl move · [/] month · t today · a add · ? help · q quit"

// dayChangedMsg is sent at midnight so "today" is redrawn.
type dayChangedMsg struct{}

// sourceChangedMsg is sent when the watched calendar file changes.
type sourceChangedMsg struct{}

// Options wires the model to the calendar core.
type Options struct {
	Calendar *core.Calendar
	Events   core.EventAdder
	Labels   locale.Locale
	// Location decides when midnight is; nil means time.Local.
	Location *time.Location
	// Creation overrides the workflow built from Calendar and Events.
	Creation *core.Creation
	// WatchPath is a calendar file watched for changes; Reload is called
	// after every change and returns how many events were added.
	WatchPath string
	Reload    func() (int, error)
}

// Model contains UI state.
type Model struct {
	cal      *core.Calendar
	creation *core.Creation
	labels   locale.Locale
	theme    theme.Theme
	gridOpts calendar.Options
	form     eventform.Model
	help     *help.Model
	showHelp bool
	reload   func() (int, error)

	status    string
	statusErr bool

	termWidth  int
	termHeight int
}

// New creates a model positioned on the calendar's current selection.
func New(opts Options) *Model {
	th := theme.Default()
	creation := opts.Creation
	if creation == nil {
		creation = core.NewCreation(opts.Calendar, opts.Events)
	}
	return &Model{
		cal:      opts.Calendar,
		creation: creation,
		labels:   opts.Labels,
		theme:    th,
		gridOpts: calendar.DefaultOptions(opts.Labels),
		form:     eventform.New(opts.Labels, th),
		help:     help.New(sidebarWidth+20, 20),
		reload:   opts.Reload,
	}
}

// Init has nothing to load; the calendar is already seeded.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
		return m, nil
	case dayChangedMsg:
		log.Debug().Str("today", m.cal.Today().String()).Msg("day changed")
		return m, nil
	case sourceChangedMsg:
		m.reloadSource()
		return m, nil
	case eventform.SubmitMsg:
		m.submit(msg.Draft)
		return m, nil
	case eventform.CancelMsg:
		m.creation.Cancel()
		m.setStatus("")
		return m, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.creation.Phase() == core.PhaseOpen {
			return m, m.updateForm(msg)
		}
		if m.showHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.showHelp = false
				return m, nil
			}
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	if m.creation.Phase() == core.PhaseOpen {
		return m, m.updateForm(msg)
	}
	return m, nil
}

// updateForm feeds msg to the form and mirrors the edited fields into the
// workflow's draft.
func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	m.creation.SetDraft(m.form.Draft())
	return cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.moveSelection(-1)
	case "right", "l":
		m.moveSelection(1)
	case "up", "k":
		m.moveSelection(-7)
	case "down", "j":
		m.moveSelection(7)
	case "[", "p":
		m.cal.AdvanceMonth(-1)
	case "]", "n":
		m.cal.AdvanceMonth(1)
	case "t":
		m.cal.GoToday()
	case "?":
		m.showHelp = true
	case "a", "+":
		m.creation.Open()
		m.setStatus("")
		cmd := m.form.Open(m.cal.SelectedDay())
		m.form.SetDraft(m.creation.Draft())
		return m, cmd
	}
	return m, nil
}

// moveSelection shifts the selected day by delta days. The view follows
// only when the new day is no longer on the visible grid.
func (m *Model) moveSelection(delta int) {
	next := m.cal.SelectedDay().AddDays(delta)
	m.cal.SelectDay(next)
	if !visible(m.cal.RenderModel(), next) {
		m.cal.ShowMonth(timeutil.MonthOf(next))
	}
}

func (m *Model) submit(d core.Draft) {
	id, err := m.creation.Submit(d)
	switch {
	case err == nil:
		m.setStatus(fmt.Sprintf("+ %s (%s)", strings.TrimSpace(d.Title), m.labels.DayLong(m.cal.SelectedDay())))
		log.Debug().Str("id", id).Msg("event added from ui")
	case errors.Is(err, core.ErrValidation):
		m.setStatus("")
	default:
		m.setError(err)
	}
}

func (m *Model) reloadSource() {
	if m.reload == nil {
		return
	}
	n, err := m.reload()
	if err != nil {
		m.setError(err)
		return
	}
	if n > 0 {
		m.setStatus(fmt.Sprintf("+%d", n))
	}
	log.Info().Int("added", n).Msg("calendar file reloaded")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = "ERR: " + err.Error()
	m.statusErr = true
}

// applySizes picks a cell width that fits the terminal next to the sidebar.
func (m *Model) applySizes() {
	if m.termWidth == 0 {
		return
	}
	w := (m.termWidth - sidebarWidth - 4) / 7
	if w < 6 {
		w = 6
	}
	if w > 16 {
		w = 16
	}
	m.gridOpts.CellWidth = w
	// The overlay takes the space right of the grid, as tall as the grid.
	m.help.SetSize(
		max(m.termWidth-calendar.Width(m.gridOpts)-2, sidebarWidth),
		min(calendar.Height(m.cal.RenderModel(), m.gridOpts), m.termHeight-4),
	)
}

// View renders the grid, the sidebar (or the form) and the footer.
func (m *Model) View() string {
	rm := m.cal.RenderModel()

	left := calendar.Render(rm, m.gridOpts)

	var right string
	switch {
	case m.creation.Phase() == core.PhaseOpen:
		right = m.form.View()
	case m.showHelp:
		right = m.help.View()
	default:
		right = m.sidebar(rm)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.footer())
}

// Run launches the interactive TUI program and redraws at every midnight.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.WatchPath != "" && opts.Reload != nil {
		changes, err := ics.Watch(ctx, opts.WatchPath, 0)
		if err != nil {
			return err
		}
		go func() {
			for range changes {
				p.Send(sourceChangedMsg{})
			}
		}()
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc("@midnight", func() { p.Send(dayChangedMsg{}) }); err != nil {
		return err
	}
	c.Start()
	defer c.Stop()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
