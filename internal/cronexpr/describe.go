package cronexpr

import (
	"slices"
	"strconv"
	"strings"
)

var (
	monthNames   = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	weekdayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

const everyDay = "Every day"

// MonthName returns the three-letter abbreviation of month m (1-12).
func MonthName(m int) string {
	if m < MinMonth || m > MaxMonth {
		return strconv.Itoa(m)
	}
	return monthNames[m-1]
}

// WeekdayName returns the three-letter abbreviation of weekday d (0-6, 0 is Sunday).
func WeekdayName(d int) string {
	if d < MinDayOfWeek || d > MaxDayOfWeek {
		return strconv.Itoa(d)
	}
	return weekdayNames[d]
}

// Describe renders a short English summary of s, such as
// "Weekdays in Jan, Mar" or "Last day of month".
func Describe(s State) string {
	var days string
	switch d := s.Day.(type) {
	case LastDayOfMonth:
		days = "Last day of month"
	case SpecificDays:
		days = describeDaysOfMonth(normalize(d.Days))
	case EveryDay:
		days = describeWeekdays(d.Weekdays)
	}

	parts := make([]string, 0, 2)
	if days != "" {
		parts = append(parts, days)
	}
	if !s.Months.IsAll() {
		if q := describeMonths(s.Months.Values()); q != "" {
			parts = append(parts, q)
		}
	}

	if len(parts) == 0 {
		return everyDay
	}
	return strings.Join(parts, " ")
}

func describeDaysOfMonth(days []int) string {
	switch len(days) {
	case MaxDayOfMonth:
		return everyDay
	case 1:
		return "Day " + strconv.Itoa(days[0])
	default:
		return "Days " + Compress(days)
	}
}

var (
	weekdaysOnly = []int{1, 2, 3, 4, 5}
	weekendsOnly = []int{0, 6}
)

func describeWeekdays(sel Selection) string {
	if sel.IsAll() {
		return everyDay
	}
	days := sel.Values()
	switch {
	case len(days) == MaxDayOfWeek+1:
		return everyDay
	case slices.Equal(days, weekdaysOnly):
		return "Weekdays"
	case slices.Equal(days, weekendsOnly):
		return "Weekends"
	case len(days) == 0:
		return ""
	}
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = WeekdayName(d)
	}
	return strings.Join(names, ", ")
}

// describeMonths returns "" when every month is listed.
func describeMonths(months []int) string {
	if len(months) == 0 || len(months) == MaxMonth {
		return ""
	}
	names := make([]string, len(months))
	for i, m := range months {
		names[i] = MonthName(m)
	}
	return "in " + strings.Join(names, ", ")
}
