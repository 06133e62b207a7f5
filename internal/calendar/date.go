package calendar

import (
	"cmp"
	"fmt"
	"time"
)

// Day is a calendar date without time-of-day. Values built through NewDay or
// DayOf are normalized, so two Days are equal exactly when they name the same date.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDay builds a Day, rolling overflowing components the way time.Date does
// (February 30 becomes March 1 or 2).
func NewDay(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// DayOf extracts the calendar date of t in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay parses a YYYY-MM-DD date.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DayOf(t), nil
}

// Normalize rolls overflowing fields into a valid date, so a hand-written
// January 32 becomes February 1.
func (d Day) Normalize() Day {
	return NewDay(d.Year, d.Month, d.Day)
}

// Weekday reports the day of the week.
func (d Day) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// Key is a collision-free integer for the date. Month and day offsets occupy
// [0, 371], so keys of distinct dates never meet and they sort in calendar
// order. The day is normalized first.
func (d Day) Key() int {
	d = d.Normalize()
	return d.Year*372 + int(d.Month-1)*31 + (d.Day - 1)
}

// Compare returns -1, 0 or +1 as d comes before, on or after other.
func (d Day) Compare(other Day) int {
	return cmp.Compare(d.Key(), other.Key())
}

// YearMonth returns the month containing the day.
func (d Day) YearMonth() YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// YearMonth designates a month. Months are one-indexed (time.January == 1).
type YearMonth struct {
	Year  int
	Month time.Month
}

// Normalize keeps the month within 1..12 by rolling the year value.
func (ym YearMonth) Normalize() YearMonth {
	// floor division so negative offsets borrow from the year
	offset := int(ym.Month) - 1
	years := offset / 12
	if offset%12 < 0 {
		years--
	}
	ym.Year += years
	ym.Month = time.Month(offset-years*12) + 1
	return ym
}

// Next moves to the following month.
func (ym YearMonth) Next() YearMonth {
	ym.Month++
	return ym.Normalize()
}

// Previous moves to the preceding month.
func (ym YearMonth) Previous() YearMonth {
	ym.Month--
	return ym.Normalize()
}

// NextYear moves to the same month of the following year.
func (ym YearMonth) NextYear() YearMonth {
	ym.Year++
	return ym.Normalize()
}

// PreviousYear moves to the same month of the preceding year.
func (ym YearMonth) PreviousYear() YearMonth {
	ym.Year--
	return ym.Normalize()
}

// FirstDay returns the 1st of the month.
func (ym YearMonth) FirstDay() Day {
	ym = ym.Normalize()
	return Day{Year: ym.Year, Month: ym.Month, Day: 1}
}

// Contains reports whether d falls in the month.
func (ym YearMonth) Contains(d Day) bool {
	ym = ym.Normalize()
	return d.Year == ym.Year && d.Month == ym.Month
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}
