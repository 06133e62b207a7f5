package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/lululau/daycal/internal/calendar"
	"github.com/lululau/daycal/internal/coordinator"
	"github.com/lululau/daycal/internal/locale"
	"github.com/lululau/daycal/internal/render"
	"github.com/lululau/daycal/internal/status"
)

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag
func SetNoColor(disable bool) {
	noColorMode = disable
}

type inputMode int

const (
	inputNone inputMode = iota
	inputYear
	inputMonth
)

// Run starts the interactive Bubble Tea UI. The program's update loop is the
// only goroutine that touches the coordinator while it runs.
func Run(c *coordinator.Coordinator, loc *locale.Locale, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := newModel(c, loc, logger)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	if err != nil {
		logger.Error("ui stopped", zap.Error(err))
	}
	return err
}

type model struct {
	coord     *coordinator.Coordinator
	loc       *locale.Locale
	logger    *zap.Logger
	cursor    calendar.Day
	width     int
	inputMode inputMode
	input     textinput.Model
	keys      keyMap
	help      help.Model
	statusMsg string
}

func newModel(c *coordinator.Coordinator, loc *locale.Locale, logger *zap.Logger) model {
	if loc == nil {
		loc = locale.Default()
	}
	ti := textinput.New()
	ti.Placeholder = "2024"
	ti.CharLimit = 16
	ti.Prompt = "> "

	h := help.New()
	if noColorMode {
		h.Styles = help.Styles{}
	}

	m := model{
		coord:  c,
		loc:    loc,
		logger: logger,
		input:  ti,
		keys:   defaultKeyMap(),
		help:   h,
	}
	m.cursor = m.defaultCursor()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if m.inputMode != inputNone {
			return m.handleInputKey(msg)
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.coord.CurrentView().Kind == coordinator.KindDay {
			return m.handleDayKey(msg)
		}
		return m.handleMonthKey(msg)
	}
	return m, nil
}

func (m model) handleMonthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.coord.PreviousMonth()
		m.followMonth()
	case key.Matches(msg, m.keys.NextMonth):
		m.coord.NextMonth()
		m.followMonth()
	case key.Matches(msg, m.keys.PrevYear):
		m.coord.PreviousYear()
		m.followMonth()
	case key.Matches(msg, m.keys.NextYear):
		m.coord.NextYear()
		m.followMonth()
	case key.Matches(msg, m.keys.Today):
		today := m.coord.Today()
		m.coord.GoTo(today.YearMonth())
		m.cursor = today
		m.statusMsg = ""
	case key.Matches(msg, m.keys.Year):
		m.activateInput(inputYear, strconv.Itoa(m.coord.Month().Year))
	case key.Matches(msg, m.keys.Month):
		m.activateInput(inputMonth, strconv.Itoa(int(m.coord.Month().Month)))
	case key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.Toggle):
		m.coord.SelectDay(m.cursor)
		m.statusMsg = ""
	}
	return m, nil
}

func (m model) handleDayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	switch {
	case key.Matches(msg, m.keys.Busy):
		err = m.coord.SetStatus(status.Busy)
	case key.Matches(msg, m.keys.Free):
		err = m.coord.SetStatus(status.Free)
	case key.Matches(msg, m.keys.Toggle):
		_, err = m.coord.Toggle()
	case key.Matches(msg, m.keys.Back):
		if day, ok := m.coord.Selected(); ok && m.coord.Month().Contains(day) {
			m.cursor = day
		}
		m.coord.Back()
	}
	if err != nil {
		m.logger.Debug("day key rejected", zap.String("key", msg.String()), zap.Error(err))
		m.statusMsg = err.Error()
	}
	return m, nil
}

// moveCursor shifts the cursor by delta days, clamped to the shown month.
func (m *model) moveCursor(delta int) {
	ym := m.coord.Month()
	day := m.cursor.Day + delta
	day = max(1, min(day, calendar.DaysInMonth(ym.Year, ym.Month)))
	m.cursor = calendar.Day{Year: ym.Year, Month: ym.Month, Day: day}
	m.statusMsg = ""
}

// followMonth keeps the cursor's day number after the month changed.
func (m *model) followMonth() {
	m.moveCursor(0)
}

func (m model) defaultCursor() calendar.Day {
	ym := m.coord.Month()
	if today := m.coord.Today(); ym.Contains(today) {
		return today
	}
	return ym.FirstDay()
}

func (m model) View() string {
	if m.inputMode != inputNone {
		return m.inputView()
	}

	var body string
	var keys help.KeyMap
	view := m.coord.CurrentView()
	if view.Kind == coordinator.KindDay {
		body = render.DayBlock(view.Day, view.Status, m.loc)
		keys = dayHelp(m.keys)
	} else {
		block := render.BuildMonthBlock(m.coord.Grid(), render.MonthOptions{
			Locale:    m.loc,
			Cursor:    m.cursor,
			HasCursor: true,
		})
		body = strings.Join(block.Lines, "\n") + "\n" + render.Legend(m.loc)
		keys = monthHelp(m.keys)
	}

	sb := strings.Builder{}
	sb.WriteString(body)
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(keys))
	if m.statusMsg != "" {
		sb.WriteString("\n")
		if noColorMode {
			sb.WriteString(m.statusMsg)
		} else {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")).Render(m.statusMsg))
		}
	}
	return sb.String()
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputMode = inputNone
		m.statusMsg = ""
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.applyInput()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) activateInput(mode inputMode, placeholder string) {
	m.inputMode = mode
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
	m.input.Focus()
	m.statusMsg = ""
}

func (m *model) applyInput() {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.statusMsg = "enter a number"
		return
	}
	target := m.coord.Month()
	switch m.inputMode {
	case inputYear:
		fields := strings.Fields(value)
		if len(fields) == 0 || len(fields) > 2 {
			m.statusMsg = "format: year or year month"
			return
		}
		year, err := strconv.Atoi(fields[0])
		if err != nil {
			m.statusMsg = "invalid year"
			return
		}
		target.Year = year
		if len(fields) == 2 {
			month, err := strconv.Atoi(fields[1])
			if err != nil || month < 1 || month > 12 {
				m.statusMsg = "month must be between 1 and 12"
				return
			}
			target.Month = time.Month(month)
		}
	case inputMonth:
		num, err := strconv.Atoi(value)
		if err != nil {
			m.statusMsg = "invalid month"
			return
		}
		if num < 1 || num > 12 {
			m.statusMsg = "month must be between 1 and 12"
			return
		}
		target.Month = time.Month(num)
	}
	m.coord.GoTo(target)
	m.followMonth()
	m.statusMsg = ""
	m.inputMode = inputNone
	m.input.Blur()
}

func (m model) inputView() string {
	var label string
	switch m.inputMode {
	case inputYear:
		label = "Year, optionally followed by a month (enter to confirm / esc to cancel)"
	case inputMonth:
		label = "Month 1-12 (enter to confirm / esc to cancel)"
	default:
		return ""
	}
	if noColorMode {
		return label + "\n\n" + m.input.View()
	}
	return lipgloss.NewStyle().
		Bold(true).
		Render(label) + "\n\n" + m.input.View()
}
