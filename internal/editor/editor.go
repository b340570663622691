// Package editor holds the state of one cron builder session. Every edit
// re-validates the schedule and reports the result through two callbacks:
// OnValidation after every change, and OnChange with the canonical
// expression whenever the schedule is complete.
package editor

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/holidayguard/cronbuild/internal/constants"
	"github.com/holidayguard/cronbuild/internal/cronexpr"
	"github.com/holidayguard/cronbuild/internal/logger"
)

var (
	ErrWeekdaysDisabled    = errors.New("day of week can only be edited in every-day mode")
	ErrDaysOfMonthDisabled = errors.New("day of month can only be edited in specific-days mode")
	ErrOutOfRange          = errors.New("value out of range")
)

// Operation names used as the metrics "op" label.
const (
	OpSetValue             = "set_value"
	OpToggleMonth          = "toggle_month"
	OpToggleAllMonths      = "toggle_all_months"
	OpSetMode              = "set_mode"
	OpToggleDayOfMonth     = "toggle_day_of_month"
	OpToggleAllDaysOfMonth = "toggle_all_days_of_month"
	OpToggleDayOfWeek      = "toggle_day_of_week"
	OpSetDaysOfWeek        = "set_days_of_week"
)

// Options configures a new Editor. All fields are optional.
type Options struct {
	// Value is the initial expression; empty means the default schedule.
	Value string
	// OnChange receives the canonical expression after each edit that
	// leaves the schedule valid.
	OnChange func(expr string)
	// OnValidation receives the validity after every edit, with the
	// user-facing message when invalid.
	OnValidation func(valid bool, message string)
	// Strict makes SetValue reject expressions with lint errors instead
	// of parsing them leniently.
	Strict  bool
	Logger  *logger.Logger
	Metrics *Metrics
}

// Editor is safe for concurrent use. Callbacks run outside the state
// lock, in edit order; they may read the editor but must not edit it.
type Editor struct {
	mu     sync.Mutex
	notify sync.Mutex
	state  cronexpr.State

	id           string
	strict       bool
	onChange     func(string)
	onValidation func(bool, string)
	log          *logger.Logger
	metrics      *Metrics
}

// New starts a session from opts.Value and reports its initial state.
func New(opts Options) (*Editor, error) {
	e := &Editor{
		id:           uuid.NewString(),
		strict:       opts.Strict,
		onChange:     opts.OnChange,
		onValidation: opts.OnValidation,
		log:          opts.Logger,
		metrics:      opts.Metrics,
		state:        cronexpr.DefaultState(),
	}
	if e.log == nil {
		e.log = logger.Nop()
	}
	e.log = e.log.With(logger.Field{Key: "session", Value: e.id})

	value := opts.Value
	if strings.TrimSpace(value) == "" {
		value = constants.DefaultExpression
	}
	if err := e.SetValue(value); err != nil {
		return nil, err
	}
	return e, nil
}

// ID returns the session identifier used in logs.
func (e *Editor) ID() string {
	return e.id
}

// SetValue replaces the state with the parse of expr, as when the host
// loads an existing schedule. Malformed input yields the default schedule
// unless the editor is strict.
func (e *Editor) SetValue(expr string) error {
	expr = normalizeInput(expr)

	if e.strict {
		if _, err := cronexpr.ParseStrict(expr); err != nil {
			e.log.Warn("expression rejected", logger.Field{Key: "cron", Value: expr})
			return err
		}
	}
	if len(strings.Fields(expr)) != cronexpr.FieldCount {
		e.metrics.recordParseFallback()
		e.log.Warn("malformed expression, using default schedule", logger.Field{Key: "cron", Value: expr})
	}

	parsed := cronexpr.Parse(expr)
	return e.apply(OpSetValue, func(s *cronexpr.State) error {
		*s = parsed
		return nil
	})
}

// ToggleMonth adds or removes month m (1-12). Picking a month while all
// are selected narrows to that month; removing the last one selects all.
func (e *Editor) ToggleMonth(m int) error {
	if err := checkRange("month", m, cronexpr.MinMonth, cronexpr.MaxMonth); err != nil {
		return err
	}
	return e.apply(OpToggleMonth, func(s *cronexpr.State) error {
		months := s.Months.Toggle(m)
		if months.IsEmpty() {
			months = cronexpr.All()
		}
		s.Months = months
		return nil
	})
}

// ToggleAllMonths switches between all months and no months. No months
// is invalid until a month is picked.
func (e *Editor) ToggleAllMonths() error {
	return e.apply(OpToggleAllMonths, func(s *cronexpr.State) error {
		if s.Months.IsAll() {
			s.Months = cronexpr.Explicit()
		} else {
			s.Months = cronexpr.All()
		}
		return nil
	})
}

// SetMode switches the day-of-month mode. Entering SpecificDays starts
// with no days selected; leaving EveryDay drops the weekday filter.
func (e *Editor) SetMode(mode cronexpr.Mode) error {
	return e.apply(OpSetMode, func(s *cronexpr.State) error {
		if s.Mode() == mode {
			return nil
		}
		switch mode {
		case cronexpr.ModeEveryDay:
			s.Day = cronexpr.EveryDay{Weekdays: cronexpr.All()}
		case cronexpr.ModeSpecificDays:
			s.Day = cronexpr.SpecificDays{}
		case cronexpr.ModeLastDayOfMonth:
			s.Day = cronexpr.LastDayOfMonth{}
		default:
			return fmt.Errorf("unknown mode %v", mode)
		}
		return nil
	})
}

// ToggleDayOfMonth adds or removes day d (1-31) in SpecificDays mode.
// Removing the last day leaves the schedule invalid.
func (e *Editor) ToggleDayOfMonth(d int) error {
	if err := checkRange("day of month", d, cronexpr.MinDayOfMonth, cronexpr.MaxDayOfMonth); err != nil {
		return err
	}
	return e.apply(OpToggleDayOfMonth, func(s *cronexpr.State) error {
		days, ok := s.Day.(cronexpr.SpecificDays)
		if !ok {
			return ErrDaysOfMonthDisabled
		}
		s.Day = cronexpr.SpecificDays{Days: cronexpr.Explicit(days.Days...).Toggle(d).Values()}
		return nil
	})
}

// ToggleAllDaysOfMonth selects all 31 days, or clears them when all are
// already selected.
func (e *Editor) ToggleAllDaysOfMonth() error {
	return e.apply(OpToggleAllDaysOfMonth, func(s *cronexpr.State) error {
		days, ok := s.Day.(cronexpr.SpecificDays)
		if !ok {
			return ErrDaysOfMonthDisabled
		}
		if cronexpr.Explicit(days.Days...).Len() == cronexpr.MaxDayOfMonth {
			s.Day = cronexpr.SpecificDays{}
			return nil
		}
		all := make([]int, 0, cronexpr.MaxDayOfMonth)
		for d := cronexpr.MinDayOfMonth; d <= cronexpr.MaxDayOfMonth; d++ {
			all = append(all, d)
		}
		s.Day = cronexpr.SpecificDays{Days: all}
		return nil
	})
}

// ToggleDayOfWeek adds or removes weekday d (0-6, 0 is Sunday) in EveryDay
// mode, following the same narrowing rules as ToggleMonth.
func (e *Editor) ToggleDayOfWeek(d int) error {
	if err := checkRange("day of week", d, cronexpr.MinDayOfWeek, cronexpr.MaxDayOfWeek); err != nil {
		return err
	}
	return e.apply(OpToggleDayOfWeek, func(s *cronexpr.State) error {
		every, ok := s.Day.(cronexpr.EveryDay)
		if !ok {
			return ErrWeekdaysDisabled
		}
		weekdays := every.Weekdays.Toggle(d)
		if weekdays.IsEmpty() {
			weekdays = cronexpr.All()
		}
		s.Day = cronexpr.EveryDay{Weekdays: weekdays}
		return nil
	})
}

// SetDaysOfWeek replaces the weekday selection in EveryDay mode.
func (e *Editor) SetDaysOfWeek(sel cronexpr.Selection) error {
	for _, d := range sel.Values() {
		if err := checkRange("day of week", d, cronexpr.MinDayOfWeek, cronexpr.MaxDayOfWeek); err != nil {
			return err
		}
	}
	return e.apply(OpSetDaysOfWeek, func(s *cronexpr.State) error {
		if _, ok := s.Day.(cronexpr.EveryDay); !ok {
			return ErrWeekdaysDisabled
		}
		s.Day = cronexpr.EveryDay{Weekdays: sel}
		return nil
	})
}

// State returns the current structured state.
func (e *Editor) State() cronexpr.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Expression returns the canonical expression, valid or not.
func (e *Editor) Expression() string {
	return cronexpr.Serialize(e.State())
}

// Summary returns the human-readable description.
func (e *Editor) Summary() string {
	return cronexpr.Describe(e.State())
}

// Validation returns nil when the schedule is complete.
func (e *Editor) Validation() error {
	return cronexpr.Validate(e.State())
}

// apply runs fn on a copy of the state and commits it when fn succeeds,
// then reports the new state. notify is held for the whole edit and mu
// only around the commit, so callbacks always find mu free.
func (e *Editor) apply(op string, fn func(s *cronexpr.State) error) error {
	e.notify.Lock()
	defer e.notify.Unlock()

	e.mu.Lock()
	next := e.state
	if err := fn(&next); err != nil {
		e.mu.Unlock()
		e.log.Debug("edit rejected", logger.Field{Key: "op", Value: op}, logger.Field{Key: "reason", Value: err.Error()})
		return fmt.Errorf("%s: %w", op, err)
	}
	e.state = next
	e.mu.Unlock()

	expr := cronexpr.Serialize(next)
	verr := cronexpr.Validate(next)

	e.metrics.recordEdit(op)
	e.log.Debug("edit applied",
		logger.Field{Key: "op", Value: op},
		logger.Field{Key: "cron", Value: expr},
		logger.Field{Key: "valid", Value: verr == nil},
	)

	if verr != nil {
		e.metrics.recordValidationFailure(cronexpr.ValidationReason(verr))
		if e.onValidation != nil {
			e.onValidation(false, verr.Error())
		}
		return nil
	}

	if e.onValidation != nil {
		e.onValidation(true, "")
	}
	if e.onChange != nil {
		e.onChange(expr)
	}
	return nil
}

func checkRange(name string, v, low, high int) error {
	if v < low || v > high {
		return fmt.Errorf("%s %d not in %d-%d: %w", name, v, low, high, ErrOutOfRange)
	}
	return nil
}

// normalizeInput folds compatibility characters (full-width digits,
// ideographic spaces) so pasted expressions parse.
func normalizeInput(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}
