package eventform

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/gyoji/pkg/app"
	"tableflip.dev/gyoji/pkg/category"
	"tableflip.dev/gyoji/pkg/locale"
	"tableflip.dev/gyoji/pkg/timeutil"
	"tableflip.dev/gyoji/pkg/tui/theme"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func openForm(t *testing.T) Model {
	t.Helper()
	m := New(locale.Japanese, theme.Default())
	m.Open(timeutil.NewDate(2026, time.May, 10))
	return m
}

func TestOpenResetsToDefaults(t *testing.T) {
	m := openForm(t)
	m.SetDraft(app.Draft{Title: "old", Category: category.Exam})
	m.Open(timeutil.NewDate(2026, time.May, 11))

	d := m.Draft()
	if d.Title != "" || d.Category != category.Default {
		t.Fatalf("expected a blank draft, got %+v", d)
	}
	if m.focus != fieldTitle {
		t.Fatalf("expected title focus, got %d", m.focus)
	}
}

func TestTabCyclesFields(t *testing.T) {
	m := openForm(t)
	want := []field{fieldCategory, fieldLocation, fieldDescription, fieldTitle}
	for _, f := range want {
		m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
		if m.focus != f {
			t.Fatalf("focus = %d, want %d", m.focus, f)
		}
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if m.focus != fieldDescription {
		t.Fatalf("shift+tab focus = %d, want %d", m.focus, fieldDescription)
	}
}

func TestCategoryArrows(t *testing.T) {
	m := openForm(t)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyTab})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if got := m.Draft().Category; got != category.Sport {
		t.Fatalf("right: category = %s", got)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if got := m.Draft().Category; got != category.Other {
		t.Fatalf("left wraps: category = %s", got)
	}
}

func TestEnterEmitsSubmit(t *testing.T) {
	m := openForm(t)
	m.SetDraft(app.Draft{Title: "遠足", Category: category.Sport, Location: "高尾山"})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatalf("expected SubmitMsg")
	}
	if msg.Draft.Title != "遠足" || msg.Draft.Category != category.Sport || msg.Draft.Location != "高尾山" {
		t.Fatalf("unexpected draft %+v", msg.Draft)
	}
}

func TestEscEmitsCancel(t *testing.T) {
	m := openForm(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	if _, ok := cmd().(CancelMsg); !ok {
		t.Fatalf("expected CancelMsg")
	}
}

func TestViewShowsLabels(t *testing.T) {
	m := openForm(t)
	view := stripANSI(m.View())
	for _, want := range []string{"行事の追加", "5月 10日 (日曜日)", "タイトル", "学考・行事", "保存する"} {
		if !strings.Contains(view, want) {
			t.Fatalf("missing %q; view=%q", want, view)
		}
	}
}
