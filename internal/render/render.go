package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lululau/daycal/internal/calendar"
	"github.com/lululau/daycal/internal/locale"
	"github.com/lululau/daycal/internal/status"
	"github.com/lululau/daycal/internal/textwidth"
)

const (
	cellPadding = 1
	blockGap    = 3
)

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag
func SetNoColor(disable bool) {
	noColorMode = disable
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FEC260"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A5B4FC"))
	cellStyle   = lipgloss.NewStyle().Padding(0, cellPadding).Align(lipgloss.Center)
	freeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	busyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	todayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")).Underline(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#475569"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

// MonthOptions controls how a single month is drawn.
type MonthOptions struct {
	Locale *locale.Locale
	// Cursor is highlighted when HasCursor is set.
	Cursor    calendar.Day
	HasCursor bool
}

// MonthBlock packages rendered lines with their visual width/height.
type MonthBlock struct {
	Lines  []string
	Width  int
	Height int
}

// BuildBlocks converts month views into renderable blocks.
func BuildBlocks(views []calendar.MonthView, loc *locale.Locale) []MonthBlock {
	blocks := make([]MonthBlock, len(views))
	for i, view := range views {
		blocks[i] = BuildMonthBlock(view, MonthOptions{Locale: loc})
	}
	return blocks
}

// Layout places blocks side by side, as many per row as fit into width.
func Layout(blocks []MonthBlock, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	blockWidth := 0
	for _, b := range blocks {
		blockWidth = max(blockWidth, b.Width)
	}
	perRow := max(1, (width+blockGap)/(blockWidth+blockGap))

	var out []string
	for start := 0; start < len(blocks); start += perRow {
		row := blocks[start:min(start+perRow, len(blocks))]
		height := 0
		for _, b := range row {
			height = max(height, b.Height)
		}
		for line := 0; line < height; line++ {
			parts := make([]string, len(row))
			for i, b := range row {
				text := ""
				if line < len(b.Lines) {
					text = b.Lines[line]
				}
				if i != len(row)-1 {
					text = textwidth.PadRight(text, blockWidth+blockGap)
				}
				parts[i] = text
			}
			out = append(out, strings.TrimRight(strings.Join(parts, ""), " "))
		}
		if start+perRow < len(blocks) {
			out = append(out, "")
		}
	}
	return strings.Join(out, "\n")
}

// BuildMonthBlock renders the month grid: a Monday-first header and two rows
// per week, the day number and its status label.
func BuildMonthBlock(view calendar.MonthView, opts MonthOptions) MonthBlock {
	loc := opts.Locale
	if loc == nil {
		loc = locale.Default()
	}
	colWidth := determineColumnWidth(loc) + cellPadding*2

	rows := make([][]string, 0, len(view.Weeks)*2)
	for _, week := range view.Weeks {
		numbers := make([]string, 7)
		labels := make([]string, 7)
		for i, cell := range week {
			numbers[i] = renderDayNumber(cell, opts)
			labels[i] = renderStatusLabel(cell, loc)
		}
		rows = append(rows, numbers, labels)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderColumn(false).
		BorderRow(false).
		Headers(loc.WeekdayHeaders()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := cellStyle.Width(colWidth)
			if row == table.HeaderRow {
				if noColorMode {
					return base
				}
				return base.Inherit(headerStyle)
			}
			cell, ok := cellAt(view, row, col)
			if !ok || noColorMode {
				return base
			}
			return base.Inherit(cellHighlight(cell, row%2 == 0, opts))
		})
	if !noColorMode {
		t = t.BorderStyle(borderStyle)
	}

	title := loc.Title(view.Month)
	summary := monthSummary(view, loc)
	if !noColorMode {
		title = titleStyle.Render(title)
		summary = mutedStyle.Render(summary)
	}
	lines := append([]string{title, ""}, strings.Split(t.String(), "\n")...)
	lines = append(lines, summary)

	width := 0
	for _, line := range lines {
		if w := textwidth.StringWidth(line); w > width {
			width = w
		}
	}

	return MonthBlock{
		Lines:  lines,
		Width:  width,
		Height: len(lines),
	}
}

func cellAt(view calendar.MonthView, row, col int) (calendar.DayCell, bool) {
	week := row / 2
	if row < 0 || week >= len(view.Weeks) || col >= len(view.Weeks[week]) {
		return calendar.DayCell{}, false
	}
	cell := view.Weeks[week][col]
	return cell, !cell.Empty
}

// cellHighlight picks the style of a day: the cursor wins on the number row,
// then busy, then today.
func cellHighlight(cell calendar.DayCell, numberRow bool, opts MonthOptions) lipgloss.Style {
	switch {
	case numberRow && opts.HasCursor && cell.Day == opts.Cursor:
		style := cursorStyle
		if cell.Busy {
			style = style.Inherit(busyStyle)
		}
		return style
	case cell.Busy:
		return busyStyle
	case cell.IsToday:
		return todayStyle
	case !numberRow:
		return freeStyle
	}
	return lipgloss.NewStyle()
}

func determineColumnWidth(loc *locale.Locale) int {
	width := 4
	for _, h := range loc.WeekdayHeaders() {
		width = max(width, textwidth.StringWidth(h))
	}
	for _, st := range []status.Status{status.Free, status.Busy} {
		width = max(width, textwidth.StringWidth(loc.StatusLabel(st)))
	}
	return width
}

func renderDayNumber(cell calendar.DayCell, opts MonthOptions) string {
	if cell.Empty {
		return ""
	}
	text := fmt.Sprintf("%2d", cell.Day.Day)
	// without colors the cursor and today need a textual marker
	if noColorMode {
		switch {
		case opts.HasCursor && cell.Day == opts.Cursor:
			return "[" + text + "]"
		case cell.IsToday:
			return "*" + text
		}
	}
	return text
}

func renderStatusLabel(cell calendar.DayCell, loc *locale.Locale) string {
	if cell.Empty {
		return ""
	}
	if cell.Busy {
		return loc.StatusLabel(status.Busy)
	}
	return loc.StatusLabel(status.Free)
}

func monthSummary(view calendar.MonthView, loc *locale.Locale) string {
	busy, free := 0, 0
	for _, cell := range view.Cells {
		switch {
		case cell.Empty:
		case cell.Busy:
			busy++
		default:
			free++
		}
	}
	return fmt.Sprintf("%s: %d  %s: %d",
		loc.StatusLabel(status.Busy), busy,
		loc.StatusLabel(status.Free), free)
}

// Legend explains the highlight colors.
func Legend(loc *locale.Locale) string {
	if loc == nil {
		loc = locale.Default()
	}
	if noColorMode {
		return fmt.Sprintf("*N = %s", loc.TodayLabel())
	}
	return busyStyle.Render("■ "+loc.StatusLabel(status.Busy)) + "  " +
		todayStyle.Render("■ "+loc.TodayLabel())
}
