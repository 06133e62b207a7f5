package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/daycal/internal/calendar"
	"github.com/lululau/daycal/internal/locale"
	"github.com/lululau/daycal/internal/status"
)

var (
	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A5B4FC")).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#475569"))
	dayNumberStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FEC260"))
	activeOption   = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.ThickBorder())
	inactiveOption = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Padding(0, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#475569"))
	cardStyle = lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#475569"))
)

// DayBlock renders the detail view of a single day: weekday badge, the date,
// both status options with the active one emphasised and a hint.
func DayBlock(day calendar.Day, st status.Status, loc *locale.Locale) string {
	if loc == nil {
		loc = locale.Default()
	}
	back := "← " + loc.Back()
	weekday := loc.WeekdayLong(day.Weekday())
	number := strconv.Itoa(day.Day)
	long := loc.FormatLong(day)

	if noColorMode {
		options := plainOption(loc, status.Free, st) + "  " + plainOption(loc, status.Busy, st)
		return strings.Join([]string{
			back,
			"",
			"[ " + weekday + " ]",
			number,
			long,
			"",
			loc.Heading(),
			options,
			"",
			loc.Hint(st),
		}, "\n")
	}

	options := lipgloss.JoinHorizontal(lipgloss.Top,
		styledOption(loc, status.Free, st),
		"  ",
		styledOption(loc, status.Busy, st),
	)
	header := lipgloss.JoinVertical(lipgloss.Center,
		badgeStyle.Render(weekday),
		dayNumberStyle.Render(number),
		mutedStyle.Render(long),
	)
	card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.NewStyle().Bold(true).Render(loc.Heading()),
		options,
		"",
		mutedStyle.Render("ℹ "+loc.Hint(st)),
	))
	return lipgloss.JoinVertical(lipgloss.Left, mutedStyle.Render(back), "", card)
}

func optionIcon(option status.Status) string {
	if option == status.Busy {
		return "✗"
	}
	return "✓"
}

func plainOption(loc *locale.Locale, option, current status.Status) string {
	label := optionIcon(option) + " " + loc.StatusLabel(option)
	if option == current {
		return "[" + label + "]"
	}
	return " " + label + " "
}

func styledOption(loc *locale.Locale, option, current status.Status) string {
	label := optionIcon(option) + " " + loc.StatusLabel(option)
	if option != current {
		return inactiveOption.Render(label)
	}
	style := activeOption
	if option == status.Busy {
		style = style.Foreground(lipgloss.Color("#EF4444")).BorderForeground(lipgloss.Color("#EF4444"))
	} else {
		style = style.Foreground(lipgloss.Color("#34D399")).BorderForeground(lipgloss.Color("#34D399"))
	}
	return style.Render(label)
}
