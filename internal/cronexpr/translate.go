package cronexpr

import (
	"strings"
)

// FieldCount is the number of fields in a builder cron expression.
const FieldCount = 6

// timePrefix fixes seconds, minutes and hours to midnight.
const timePrefix = "0 0 0"

// Field positions within an expression.
const (
	fieldSecond = iota
	fieldMinute
	fieldHour
	fieldDayOfMonth
	fieldMonth
	fieldDayOfWeek
)

// Parse converts a cron expression into a State. It never fails: empty
// input or input without exactly six fields yields DefaultState. The
// time-of-day fields are ignored.
func Parse(expr string) State {
	fields := strings.Fields(expr)
	if len(fields) != FieldCount {
		return DefaultState()
	}

	state := State{Months: ParseMonths(fields[fieldMonth])}

	switch dom := fields[fieldDayOfMonth]; dom {
	case LastDay:
		state.Day = LastDayOfMonth{}
	case Wildcard, NoSpecific:
		state.Day = EveryDay{Weekdays: ParseWeekdays(fields[fieldDayOfWeek])}
	default:
		state.Day = SpecificDays{Days: Expand(dom, MinDayOfMonth, MaxDayOfMonth)}
	}

	return state
}

// ParseMonths reads a month field: "*" is All, anything else is expanded
// within 1-12.
func ParseMonths(field string) Selection {
	if field == Wildcard {
		return All()
	}
	return Explicit(Expand(field, MinMonth, MaxMonth)...)
}

// ParseWeekdays reads a day-of-week field: "*" and "?" are All, anything
// else is expanded within 0-7 with 7 folded onto Sunday.
func ParseWeekdays(field string) Selection {
	if field == Wildcard || field == NoSpecific {
		return All()
	}
	days := Expand(field, MinDayOfWeek, MaxDayOfWeek+1)
	for i, d := range days {
		if d == MaxDayOfWeek+1 {
			days[i] = 0
		}
	}
	return Explicit(days...)
}

// Serialize renders the canonical cron expression for s:
//
//	"0 0 0 <day-of-month> <month> <day-of-week>"
func Serialize(s State) string {
	month := Wildcard
	if !s.Months.IsAll() {
		month = Compress(s.Months.Values())
	}

	var dom, dow string
	switch d := s.Day.(type) {
	case LastDayOfMonth:
		dom, dow = LastDay, NoSpecific
	case SpecificDays:
		dom, dow = Compress(d.Days), NoSpecific
	case EveryDay:
		dom, dow = Wildcard, Wildcard
		if !d.Weekdays.IsAll() {
			dow = Compress(d.Weekdays.Values())
		}
	default:
		dom, dow = Wildcard, Wildcard
	}

	return strings.Join([]string{timePrefix, dom, month, dow}, " ")
}
