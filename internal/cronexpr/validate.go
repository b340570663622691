package cronexpr

import "errors"

// Validation errors. Their messages are shown to the user as-is.
var (
	ErrNoMonths      = errors.New("At least one month must be selected")
	ErrNoDaysOfMonth = errors.New("At least one day of month must be selected")
	ErrNoDaysOfWeek  = errors.New("At least one day of week must be selected")
)

// Validate reports the first reason s cannot be saved, or nil.
func Validate(s State) error {
	if s.Months.IsEmpty() {
		return ErrNoMonths
	}

	switch d := s.Day.(type) {
	case SpecificDays:
		if len(d.Days) == 0 {
			return ErrNoDaysOfMonth
		}
	case EveryDay:
		if d.Weekdays.IsEmpty() {
			return ErrNoDaysOfWeek
		}
	}

	return nil
}

// ValidationReason returns a short label for a validation error, for
// metrics and logs.
func ValidationReason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNoMonths):
		return "no_months"
	case errors.Is(err, ErrNoDaysOfMonth):
		return "no_days_of_month"
	case errors.Is(err, ErrNoDaysOfWeek):
		return "no_days_of_week"
	default:
		return "other"
	}
}
