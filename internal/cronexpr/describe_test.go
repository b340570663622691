package cronexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeFromExpression(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{expr: "0 0 0 * * *", want: "Every day"},
		{expr: "0 0 0 * * 1-5", want: "Weekdays"},
		{expr: "0 0 0 * * 0,6", want: "Weekends"},
		{expr: "0 0 0 * * 0-6", want: "Every day"},
		{expr: "0 0 0 * * 1,3,5", want: "Mon, Wed, Fri"},
		{expr: "0 0 0 * * 6,0,3", want: "Sun, Wed, Sat"},
		{expr: "0 0 0 L * ?", want: "Last day of month"},
		{expr: "0 0 0 15 * ?", want: "Day 15"},
		{expr: "0 0 0 1,15 * ?", want: "Days 1,15"},
		{expr: "0 0 0 1-5,20 * ?", want: "Days 1-5,20"},
		{expr: "0 0 0 1-31 * ?", want: "Every day"},
		{expr: "0 0 0 * 1,3,5 1-5", want: "Weekdays in Jan, Mar, May"},
		{expr: "0 0 0 L 12 ?", want: "Last day of month in Dec"},
		{expr: "0 0 0 * 1-12 *", want: "Every day"},
		{expr: "0 0 0 * 6-8 *", want: "Every day in Jun, Jul, Aug"},
		{expr: "nonsense", want: "Every day"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(Parse(tt.expr)))
		})
	}
}

func TestDescribeContains(t *testing.T) {
	assert.Contains(t, Describe(Parse("0 0 0 * * 1-5")), "Weekdays")
	assert.Contains(t, Describe(Parse("0 0 0 * 1,3,5 1-5")), "Jan, Mar, May")
}

func TestDescribeIncompleteStates(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{name: "no weekdays", state: State{Months: All(), Day: EveryDay{Weekdays: Explicit()}}, want: "Every day"},
		{name: "no days of month", state: State{Months: All(), Day: SpecificDays{}}, want: "Days *"},
		{name: "no days of month in June", state: State{Months: Explicit(6), Day: SpecificDays{}}, want: "Days * in Jun"},
		{name: "no months", state: State{Months: Explicit(), Day: LastDayOfMonth{}}, want: "Last day of month"},
		{name: "no weekdays in March", state: State{Months: Explicit(3), Day: EveryDay{Weekdays: Explicit()}}, want: "in Mar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.state))
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Jan", MonthName(1))
	assert.Equal(t, "Dec", MonthName(12))
	assert.Equal(t, "13", MonthName(13))
	assert.Equal(t, "Sun", WeekdayName(0))
	assert.Equal(t, "Sat", WeekdayName(6))
	assert.Equal(t, "7", WeekdayName(7))
}
