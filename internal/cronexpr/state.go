// Package cronexpr translates between a structured day-level schedule and
// the six-field cron strings stored as rule configuration.
//
// Only the date part of a cron expression is modelled: seconds, minutes
// and hours are always emitted as "0". Day of month and day of week are
// mutually exclusive (Quartz rule), which State encodes by carrying
// weekdays only in the EveryDay mode.
//
// Example:
//
//	s := cronexpr.Parse("0 0 0 * 1,3,5 1-5")
//	cronexpr.Describe(s)  // "Weekdays in Jan, Mar, May"
//	cronexpr.Serialize(s) // "0 0 0 * 1,3,5 1-5"
package cronexpr

import (
	"fmt"
	"slices"
)

// Field domains.
const (
	MinMonth      = 1
	MaxMonth      = 12
	MinDayOfMonth = 1
	MaxDayOfMonth = 31
	MinDayOfWeek  = 0
	MaxDayOfWeek  = 6
)

// Mode selects how the day-of-month field is interpreted.
type Mode int

const (
	ModeEveryDay Mode = iota
	ModeSpecificDays
	ModeLastDayOfMonth
)

func (m Mode) String() string {
	switch m {
	case ModeEveryDay:
		return "every"
	case ModeSpecificDays:
		return "specific"
	case ModeLastDayOfMonth:
		return "last"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "every":
		return ModeEveryDay, nil
	case "specific":
		return ModeSpecificDays, nil
	case "last":
		return ModeLastDayOfMonth, nil
	default:
		return 0, fmt.Errorf("unknown day-of-month mode %q (expected: every, specific, last)", s)
	}
}

// DaySpec is one of EveryDay, SpecificDays or LastDayOfMonth.
type DaySpec interface {
	Mode() Mode
	daySpec()
}

// EveryDay matches every day of the month, optionally filtered by weekday.
type EveryDay struct {
	Weekdays Selection
}

// SpecificDays matches the listed days of the month.
type SpecificDays struct {
	Days []int
}

// LastDayOfMonth matches the final day of each month.
type LastDayOfMonth struct{}

func (EveryDay) Mode() Mode       { return ModeEveryDay }
func (SpecificDays) Mode() Mode   { return ModeSpecificDays }
func (LastDayOfMonth) Mode() Mode { return ModeLastDayOfMonth }

func (EveryDay) daySpec()       {}
func (SpecificDays) daySpec()   {}
func (LastDayOfMonth) daySpec() {}

// State is the structured form of a builder cron expression.
type State struct {
	Months Selection
	Day    DaySpec
}

// DefaultState matches every day of every month.
func DefaultState() State {
	return State{
		Months: All(),
		Day:    EveryDay{Weekdays: All()},
	}
}

// Mode returns the active day-of-month mode. A nil Day counts as EveryDay.
func (s State) Mode() Mode {
	if s.Day == nil {
		return ModeEveryDay
	}
	return s.Day.Mode()
}

// Weekdays returns the weekday selection, which is All outside EveryDay.
func (s State) Weekdays() Selection {
	if d, ok := s.Day.(EveryDay); ok {
		return d.Weekdays
	}
	return All()
}

// DaysOfMonth returns the sorted days of a SpecificDays state, nil otherwise.
func (s State) DaysOfMonth() []int {
	if d, ok := s.Day.(SpecificDays); ok {
		return normalize(d.Days)
	}
	return nil
}

// Equal reports whether two states serialize identically and carry the
// same selections.
func (s State) Equal(o State) bool {
	if !s.Months.Equal(o.Months) || s.Mode() != o.Mode() {
		return false
	}
	switch s.Mode() {
	case ModeEveryDay:
		return s.Weekdays().Equal(o.Weekdays())
	case ModeSpecificDays:
		return slices.Equal(s.DaysOfMonth(), o.DaysOfMonth())
	}
	return true
}

// String returns the canonical cron expression for s.
func (s State) String() string {
	return Serialize(s)
}
