package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zaptest"

	"github.com/lululau/daycal/internal/calendar"
	"github.com/lululau/daycal/internal/coordinator"
	"github.com/lululau/daycal/internal/locale"
	"github.com/lululau/daycal/internal/render"
	"github.com/lululau/daycal/internal/status"
)

func newTestModel(t *testing.T, start calendar.YearMonth) (model, *coordinator.Coordinator) {
	t.Helper()
	SetNoColor(true)
	render.SetNoColor(true)
	t.Cleanup(func() {
		SetNoColor(false)
		render.SetNoColor(false)
	})
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local)
	c := coordinator.New(start, coordinator.WithServiceOptions(calendar.WithNow(func() time.Time { return now })))
	return newModel(c, locale.Default(), zaptest.NewLogger(t)), c
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m model, keys ...tea.KeyMsg) model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(model)
	}
	return m
}

func TestSelectMarkBusyAndBack(t *testing.T) {
	m, c := newTestModel(t, calendar.YearMonth{Year: 2024, Month: time.March})
	if m.cursor != calendar.NewDay(2024, time.March, 10) {
		t.Fatalf("cursor should start on today, got %v", m.cursor)
	}

	m = press(m, runes("l"), runes("l"), runes("l"), runes("l"), runes("l"))
	if m.cursor != calendar.NewDay(2024, time.March, 15) {
		t.Fatalf("cursor=%v want 2024-03-15", m.cursor)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	view := c.CurrentView()
	if view.Kind != coordinator.KindDay || view.Day != calendar.NewDay(2024, time.March, 15) {
		t.Fatalf("expected day view of the 15th, got %+v", view)
	}
	if out := m.View(); !strings.Contains(out, "15 марта 2024") {
		t.Fatalf("day view should show the long date, got:\n%s", out)
	}

	m = press(m, runes("b"))
	if got := c.GetStatus(calendar.NewDay(2024, time.March, 15)); got != status.Busy {
		t.Fatalf("status=%v want busy", got)
	}
	m = press(m, runes(" "))
	if got := c.GetStatus(calendar.NewDay(2024, time.March, 15)); got != status.Free {
		t.Fatalf("toggle should free the day, got %v", got)
	}
	m = press(m, runes("b"), tea.KeyMsg{Type: tea.KeyEsc})
	view = c.CurrentView()
	if view.Kind != coordinator.KindMonth || view.Month != (calendar.YearMonth{Year: 2024, Month: time.March}) {
		t.Fatalf("expected month view of March 2024, got %+v", view)
	}
	if m.cursor != calendar.NewDay(2024, time.March, 15) {
		t.Fatalf("cursor should stay on the closed day, got %v", m.cursor)
	}
	if out := m.View(); !strings.Contains(out, "Март 2024") || !strings.Contains(out, "Занят") {
		t.Fatalf("month view should show the busy day, got:\n%s", out)
	}
}

func TestCursorIsClampedToMonth(t *testing.T) {
	m, _ := newTestModel(t, calendar.YearMonth{Year: 2024, Month: time.January})
	if m.cursor != calendar.NewDay(2024, time.January, 1) {
		t.Fatalf("cursor should start on the 1st outside the current month, got %v", m.cursor)
	}
	m = press(m, runes("k"), runes("h"))
	if m.cursor.Day != 1 {
		t.Fatalf("cursor must not leave the month, got %v", m.cursor)
	}
	for i := 0; i < 6; i++ {
		m = press(m, runes("j"))
	}
	if m.cursor != calendar.NewDay(2024, time.January, 31) {
		t.Fatalf("cursor=%v want 2024-01-31", m.cursor)
	}
	m = press(m, runes("]"))
	if m.cursor != calendar.NewDay(2024, time.February, 29) {
		t.Fatalf("cursor should clamp to the end of February, got %v", m.cursor)
	}
}

func TestMonthNavigationRollsYear(t *testing.T) {
	m, c := newTestModel(t, calendar.YearMonth{Year: 2024, Month: time.December})
	m = press(m, runes("]"))
	if c.Month() != (calendar.YearMonth{Year: 2025, Month: time.January}) {
		t.Fatalf("expected 2025-01, got %v", c.Month())
	}
	m = press(m, runes("["), runes("["))
	if c.Month() != (calendar.YearMonth{Year: 2024, Month: time.November}) {
		t.Fatalf("expected 2024-11, got %v", c.Month())
	}
	m = press(m, runes("}"))
	if c.Month() != (calendar.YearMonth{Year: 2025, Month: time.November}) {
		t.Fatalf("expected 2025-11, got %v", c.Month())
	}
	press(m, runes("."))
	if c.Month() != (calendar.YearMonth{Year: 2024, Month: time.March}) {
		t.Fatalf("today should jump to 2024-03, got %v", c.Month())
	}
}

func TestDayViewIgnoresMonthNavigation(t *testing.T) {
	m, c := newTestModel(t, calendar.YearMonth{Year: 2024, Month: time.March})
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("]"), runes("}"))
	if c.Month() != (calendar.YearMonth{Year: 2024, Month: time.March}) {
		t.Fatalf("month changed in day view: %v", c.Month())
	}
	if c.CurrentView().Kind != coordinator.KindDay {
		t.Fatalf("expected to stay in day view")
	}
}

func TestInputModes(t *testing.T) {
	m, c := newTestModel(t, calendar.YearMonth{Year: 2024, Month: time.March})

	m = press(m, runes("m"), runes("7"), tea.KeyMsg{Type: tea.KeyEnter})
	if c.Month() != (calendar.YearMonth{Year: 2024, Month: time.July}) {
		t.Fatalf("expected 2024-07, got %v", c.Month())
	}
	if m.inputMode != inputNone {
		t.Fatalf("input should close after a valid month")
	}

	m = press(m, runes("y"), runes("2030 2"), tea.KeyMsg{Type: tea.KeyEnter})
	if c.Month() != (calendar.YearMonth{Year: 2030, Month: time.February}) {
		t.Fatalf("expected 2030-02, got %v", c.Month())
	}

	m = press(m, runes("m"), runes("13"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.inputMode != inputMonth || m.statusMsg == "" {
		t.Fatalf("invalid month should keep the input open with a message")
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.inputMode != inputNone || c.Month() != (calendar.YearMonth{Year: 2030, Month: time.February}) {
		t.Fatalf("esc should cancel without moving, got %v", c.Month())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, calendar.YearMonth{Year: 2024, Month: time.March})
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
