package coordinator

import (
	"errors"

	"go.uber.org/zap"

	"github.com/lululau/daycal/internal/calendar"
	"github.com/lululau/daycal/internal/status"
)

// ErrNoSelection is returned when a status write arrives while no day is open.
var ErrNoSelection = errors.New("no day selected")

// Kind tells which screen is active.
type Kind int

const (
	KindMonth Kind = iota
	KindDay
)

func (k Kind) String() string {
	if k == KindDay {
		return "day"
	}
	return "month"
}

// View is a snapshot of what the presentation layer should show. Day and
// Status are only meaningful for KindDay.
type View struct {
	Kind   Kind
	Month  calendar.YearMonth
	Day    calendar.Day
	Status status.Status
}

// Coordinator owns the selection and routes between the month grid and the
// detail view of a single day. Status writes go through it into the store.
type Coordinator struct {
	store    *status.Store
	svc      *calendar.Service
	month    calendar.YearMonth
	selected calendar.Day
	hasDay   bool
	logger   *zap.Logger
	svcOpts  []calendar.Option
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger used for transition traces.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStore shares an existing store instead of starting empty.
func WithStore(store *status.Store) Option {
	return func(c *Coordinator) {
		if store != nil {
			c.store = store
		}
	}
}

// WithServiceOptions forwards options to the calendar service, e.g. a fixed clock.
func WithServiceOptions(opts ...calendar.Option) Option {
	return func(c *Coordinator) {
		c.svcOpts = append(c.svcOpts, opts...)
	}
}

// New starts a coordinator in the month view of start.
func New(start calendar.YearMonth, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:  status.NewStore(),
		month:  start.Normalize(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	svcOpts := append([]calendar.Option{calendar.WithBusy(c.store.IsBusy)}, c.svcOpts...)
	c.svc = calendar.NewService(svcOpts...)
	return c
}

// Service is the calendar service backing the grid; its busy flags read the store.
func (c *Coordinator) Service() *calendar.Service {
	return c.svc
}

// Store exposes the status store.
func (c *Coordinator) Store() *status.Store {
	return c.store
}

// Month is the month shown by the grid (and restored by Back).
func (c *Coordinator) Month() calendar.YearMonth {
	return c.month
}

// Today returns the current date according to the calendar service.
func (c *Coordinator) Today() calendar.Day {
	return c.svc.Today()
}

// Selected returns the open day, if any.
func (c *Coordinator) Selected() (calendar.Day, bool) {
	return c.selected, c.hasDay
}

// CurrentView reports the active screen.
func (c *Coordinator) CurrentView() View {
	if !c.hasDay {
		return View{Kind: KindMonth, Month: c.month}
	}
	return View{
		Kind:   KindDay,
		Month:  c.month,
		Day:    c.selected,
		Status: c.store.Get(c.selected),
	}
}

// Grid builds the annotated grid of the current month.
func (c *Coordinator) Grid() calendar.MonthView {
	return c.svc.Month(c.month)
}

// GetStatus looks up the status of any day.
func (c *Coordinator) GetStatus(day calendar.Day) status.Status {
	return c.store.Get(day)
}

// SetDayStatus writes the status of any day without touching the selection.
func (c *Coordinator) SetDayStatus(day calendar.Day, st status.Status) {
	day = day.Normalize()
	c.store.Set(day, st)
	c.logger.Debug("day status set", zap.Stringer("day", day), zap.Stringer("status", st))
}

// SelectDay opens the detail view of day. Selecting while a day is open
// replaces the selection. The grid month is left alone.
func (c *Coordinator) SelectDay(day calendar.Day) {
	day = day.Normalize()
	c.selected = day
	c.hasDay = true
	c.logger.Debug("day selected",
		zap.Stringer("day", day),
		zap.Stringer("month", c.month))
}

// Back returns to the month grid.
func (c *Coordinator) Back() {
	if !c.hasDay {
		return
	}
	c.logger.Debug("back to month", zap.Stringer("day", c.selected))
	c.selected = calendar.Day{}
	c.hasDay = false
}

// SetStatus writes status for the open day.
func (c *Coordinator) SetStatus(st status.Status) error {
	if !c.hasDay {
		c.logger.Warn("status write without selection", zap.Stringer("status", st))
		return ErrNoSelection
	}
	prev, existed := c.store.Record(c.selected)
	c.store.Set(c.selected, st)
	c.logger.Info("day status set",
		zap.Stringer("day", c.selected),
		zap.Stringer("status", st),
		zap.Bool("changed", !existed || prev.Status != st))
	return nil
}

// Toggle flips the status of the open day.
func (c *Coordinator) Toggle() (status.Status, error) {
	if !c.hasDay {
		return status.Free, ErrNoSelection
	}
	next := c.store.Get(c.selected).Opposite()
	return next, c.SetStatus(next)
}

// NextMonth advances the grid. Month navigation only happens on the month
// screen; the returned flag reports whether it was applied.
func (c *Coordinator) NextMonth() bool {
	return c.navigate(c.month.Next())
}

// PreviousMonth moves the grid back one month.
func (c *Coordinator) PreviousMonth() bool {
	return c.navigate(c.month.Previous())
}

// NextYear moves the grid one year forward.
func (c *Coordinator) NextYear() bool {
	return c.navigate(c.month.NextYear())
}

// PreviousYear moves the grid one year back.
func (c *Coordinator) PreviousYear() bool {
	return c.navigate(c.month.PreviousYear())
}

// GoTo jumps to ym.
func (c *Coordinator) GoTo(ym calendar.YearMonth) bool {
	return c.navigate(ym.Normalize())
}

func (c *Coordinator) navigate(to calendar.YearMonth) bool {
	if c.hasDay {
		return false
	}
	c.logger.Debug("month changed",
		zap.Stringer("from", c.month),
		zap.Stringer("to", to))
	c.month = to
	return true
}
