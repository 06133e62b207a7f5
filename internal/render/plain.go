package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/lululau/daycal/internal/calendar"
	"github.com/lululau/daycal/internal/locale"
	"github.com/lululau/daycal/internal/status"
)

// PlainOptions controls how the non-interactive renderer behaves.
type PlainOptions struct {
	Writer    io.Writer
	Service   *calendar.Service
	Month     calendar.YearMonth
	WholeYear bool
	Width     int
	Locale    *locale.Locale
	// Store, when set, adds a list of the busy days shown.
	Store *status.Store
}

// RunPlain renders the requested view exactly once.
func RunPlain(opts PlainOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Service == nil {
		opts.Service = calendar.NewService()
	}
	if opts.Locale == nil {
		opts.Locale = locale.Default()
	}

	views := fetchViews(opts.Service, opts.Month.Normalize(), opts.WholeYear)
	blocks := BuildBlocks(views, opts.Locale)
	width := opts.Width
	if width == 0 {
		width = DetectWidth()
	}
	output := Layout(blocks, width)
	if output == "" {
		return nil
	}
	if _, err := fmt.Fprintln(opts.Writer, output); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(opts.Writer, "\n"+Legend(opts.Locale)); err != nil {
		return err
	}
	if opts.Store == nil {
		return nil
	}
	if list := BusyList(busyDays(opts.Store, opts.Month.Normalize(), opts.WholeYear), opts.Locale); list != "" {
		_, err := fmt.Fprintln(opts.Writer, list)
		return err
	}
	return nil
}

// BusyList renders "Занят: 14 февраля 2024, 20 февраля 2024", or "" without days.
func BusyList(days []calendar.Day, loc *locale.Locale) string {
	if len(days) == 0 {
		return ""
	}
	if loc == nil {
		loc = locale.Default()
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = loc.FormatLong(d)
	}
	list := loc.StatusLabel(status.Busy) + ": " + strings.Join(parts, ", ")
	if noColorMode {
		return list
	}
	return busyStyle.Render(list)
}

func busyDays(store *status.Store, ym calendar.YearMonth, wholeYear bool) []calendar.Day {
	if !wholeYear {
		return store.BusyIn(ym)
	}
	var days []calendar.Day
	for _, rec := range store.Records() {
		if rec.Status == status.Busy && rec.Day.Year == ym.Year {
			days = append(days, rec.Day)
		}
	}
	return days
}

// DetectWidth tries to determine the terminal width, falling back to 100 cols.
func DetectWidth() int {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) {
		if w, _, err := term.GetSize(int(fd)); err == nil {
			return w
		}
	}
	return 100
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func fetchViews(svc *calendar.Service, ym calendar.YearMonth, wholeYear bool) []calendar.MonthView {
	if wholeYear {
		return svc.Year(ym.Year)
	}
	return []calendar.MonthView{svc.Month(ym)}
}
