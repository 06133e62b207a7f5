package status

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lululau/daycal/internal/calendar"
)

// Status classifies a day. The zero value is Free.
type Status int

const (
	Free Status = iota
	Busy
)

// ErrUnknownStatus is returned by ParseStatus.
var ErrUnknownStatus = errors.New("status must be busy or free")

func (s Status) String() string {
	if s == Busy {
		return "busy"
	}
	return "free"
}

// Opposite flips busy and free.
func (s Status) Opposite() Status {
	if s == Busy {
		return Free
	}
	return Busy
}

// ParseStatus accepts "busy" or "free" in any case.
func ParseStatus(v string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "busy":
		return Busy, nil
	case "free":
		return Free, nil
	}
	return Free, fmt.Errorf("%w: %q", ErrUnknownStatus, v)
}

// Record pairs a day with the status explicitly set for it.
type Record struct {
	Day    calendar.Day
	Status Status
}

// ParseRecord parses "YYYY-MM-DD" or "YYYY-MM-DD=status". A bare date is busy.
func ParseRecord(v string) (Record, error) {
	date, st, found := strings.Cut(strings.TrimSpace(v), "=")
	day, err := calendar.ParseDay(strings.TrimSpace(date))
	if err != nil {
		return Record{}, err
	}
	rec := Record{Day: day, Status: Busy}
	if found {
		if rec.Status, err = ParseStatus(st); err != nil {
			return Record{}, fmt.Errorf("%s: %w", date, err)
		}
	}
	return rec, nil
}

// Store maps days to their status for the lifetime of a session. Days are
// normalized before use as keys. Days without a record are Free. Records are only ever inserted or overwritten; setting a
// day back to Free keeps a Free record.
//
// Store is not safe for concurrent use; it belongs to the UI update loop.
type Store struct {
	records map[calendar.Day]Record
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{records: make(map[calendar.Day]Record)}
}

// Get returns the stored status for day, or Free.
func (s *Store) Get(day calendar.Day) Status {
	if rec, ok := s.records[day.Normalize()]; ok {
		return rec.Status
	}
	return Free
}

// IsBusy reports whether day is marked busy.
func (s *Store) IsBusy(day calendar.Day) bool {
	return s.Get(day) == Busy
}

// Set inserts or overwrites the record for day.
func (s *Store) Set(day calendar.Day, st Status) {
	day = day.Normalize()
	s.records[day] = Record{Day: day, Status: st}
}

// Toggle flips the status of day and returns the new value.
func (s *Store) Toggle(day calendar.Day) Status {
	next := s.Get(day).Opposite()
	s.Set(day, next)
	return next
}

// Record returns the explicit record for day, if any.
func (s *Store) Record(day calendar.Day) (Record, bool) {
	rec, ok := s.records[day.Normalize()]
	return rec, ok
}

// Len is the number of explicit records, Free ones included.
func (s *Store) Len() int {
	return len(s.records)
}

// Records lists every record in calendar order.
func (s *Store) Records() []Record {
	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b Record) int {
		return a.Day.Compare(b.Day)
	})
	return out
}

// BusyIn lists the busy days of a month in calendar order.
func (s *Store) BusyIn(ym calendar.YearMonth) []calendar.Day {
	var days []calendar.Day
	for day, rec := range s.records {
		if rec.Status == Busy && ym.Contains(day) {
			days = append(days, day)
		}
	}
	slices.SortFunc(days, calendar.Day.Compare)
	return days
}
