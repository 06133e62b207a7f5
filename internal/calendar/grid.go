package calendar

import "time"

// Cell is one slot of a month grid: either a date or an empty placeholder
// that pads the first week up to the 1st of the month.
type Cell struct {
	Day   Day
	Empty bool
}

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of the (normalized) month.
func DaysInMonth(year int, month time.Month) int {
	ym := YearMonth{Year: year, Month: month}.Normalize()
	if ym.Month == time.February && IsLeapYear(ym.Year) {
		return 29
	}
	return daysPerMonth[ym.Month-1]
}

// MondayIndex rotates time.Weekday (Sunday=0) into a Monday-first index
// (Monday=0 .. Sunday=6).
func MondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// LeadingEmpty is the number of placeholders before the 1st in a Monday-first
// week, always within [0, 6].
func LeadingEmpty(year int, month time.Month) int {
	return MondayIndex(YearMonth{Year: year, Month: month}.FirstDay().Weekday())
}

// BuildMonthGrid lays out a month for Monday-first weeks: LeadingEmpty
// placeholders followed by one cell per day. The last row is not padded.
// Out-of-range months are normalized by carrying into the year.
func BuildMonthGrid(year int, month time.Month) []Cell {
	ym := YearMonth{Year: year, Month: month}.Normalize()
	lead := LeadingEmpty(ym.Year, ym.Month)
	days := DaysInMonth(ym.Year, ym.Month)

	cells := make([]Cell, 0, lead+days)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{Empty: true})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: Day{Year: ym.Year, Month: ym.Month, Day: d}})
	}
	return cells
}
