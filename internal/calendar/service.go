package calendar

import (
	"time"
)

// DayCell is a grid cell annotated for display.
type DayCell struct {
	Cell
	IsToday bool
	Busy    bool
}

// MonthView describes a month laid out into Monday-first weeks. The last week
// may hold fewer than seven cells.
type MonthView struct {
	Month YearMonth
	Cells []DayCell
	Weeks [][]DayCell
}

// Service materialises month/year views.
type Service struct {
	now    func() time.Time
	isBusy func(Day) bool
}

// Option configures the Service.
type Option func(*Service)

// WithNow overrides the clock, which is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithBusy sets the lookup used to flag busy days.
func WithBusy(isBusy func(Day) bool) Option {
	return func(s *Service) {
		s.isBusy = isBusy
	}
}

// NewService constructs a Service.
func NewService(opts ...Option) *Service {
	s := &Service{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current date according to the service clock.
func (s *Service) Today() Day {
	return DayOf(s.now())
}

// Month builds a MonthView.
func (s *Service) Month(ym YearMonth) MonthView {
	ym = ym.Normalize()
	today := s.Today()

	grid := BuildMonthGrid(ym.Year, ym.Month)
	cells := make([]DayCell, len(grid))
	for i, c := range grid {
		cells[i] = s.buildCell(c, today)
	}

	weeks := make([][]DayCell, 0, (len(cells)+6)/7)
	for start := 0; start < len(cells); start += 7 {
		end := min(start+7, len(cells))
		weeks = append(weeks, cells[start:end])
	}

	return MonthView{
		Month: ym,
		Cells: cells,
		Weeks: weeks,
	}
}

// Year returns the MonthView list for an entire year.
func (s *Service) Year(year int) []MonthView {
	months := make([]MonthView, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, s.Month(YearMonth{Year: year, Month: m}))
	}
	return months
}

func (s *Service) buildCell(c Cell, today Day) DayCell {
	if c.Empty {
		return DayCell{Cell: c}
	}
	cell := DayCell{
		Cell:    c,
		IsToday: c.Day == today,
	}
	if s.isBusy != nil {
		cell.Busy = s.isBusy(c.Day)
	}
	return cell
}
