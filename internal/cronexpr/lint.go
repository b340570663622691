package cronexpr

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/wasilibs/go-re2"
)

// Severity of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic describes something Parse would silently drop or rewrite.
type Diagnostic struct {
	Field    string   `json:"field" yaml:"field"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Field, d.Message)
}

// HasErrors reports whether any diagnostic is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

var (
	listTokenPattern = re2.MustCompile(`^\d+(-\d+)?$`)

	// standardParser checks expressions against plain six-field cron syntax.
	standardParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
)

type fieldRule struct {
	name      string
	low, high int
	allowed   []string // special tokens accepted as the whole field
}

var fieldRules = [FieldCount]fieldRule{
	fieldSecond:     {name: "second"},
	fieldMinute:     {name: "minute"},
	fieldHour:       {name: "hour"},
	fieldDayOfMonth: {name: "day-of-month", low: MinDayOfMonth, high: MaxDayOfMonth, allowed: []string{Wildcard, NoSpecific, LastDay}},
	fieldMonth:      {name: "month", low: MinMonth, high: MaxMonth, allowed: []string{Wildcard}},
	fieldDayOfWeek:  {name: "day-of-week", low: MinDayOfWeek, high: MaxDayOfWeek + 1, allowed: []string{Wildcard, NoSpecific}},
}

// Lint reports the parts of expr that Parse ignores, drops or respells.
// Canonical expressions produce no diagnostics.
func Lint(expr string) []Diagnostic {
	fields := strings.Fields(expr)
	if len(fields) != FieldCount {
		return []Diagnostic{{
			Field:    "expression",
			Severity: SeverityError,
			Message:  fmt.Sprintf("expected %d fields, got %d; the default schedule is used instead", FieldCount, len(fields)),
		}}
	}

	var diags []Diagnostic
	for i := fieldSecond; i <= fieldHour; i++ {
		if fields[i] != "0" {
			diags = append(diags, Diagnostic{
				Field:    fieldRules[i].name,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("%q is ignored; schedules always run at 0", fields[i]),
			})
		}
	}
	for i := fieldDayOfMonth; i <= fieldDayOfWeek; i++ {
		diags = append(diags, lintField(fieldRules[i], fields[i])...)
	}

	dom, dow := fields[fieldDayOfMonth], fields[fieldDayOfWeek]
	if !isUnrestricted(dom) && !isUnrestricted(dow) {
		diags = append(diags, Diagnostic{
			Field:    fieldRules[fieldDayOfWeek].name,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("%q is ignored because day-of-month is restricted", dow),
		})
	}

	if dom != LastDay {
		if _, err := standardParser.Parse(strings.Join(fields, " ")); err != nil {
			diags = append(diags, Diagnostic{
				Field:    "expression",
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("rejected by standard cron parsers: %v", err),
			})
		}
	}

	if canonical := Serialize(Parse(expr)); canonical != strings.Join(fields, " ") {
		diags = append(diags, Diagnostic{
			Field:    "expression",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("will be saved as %q", canonical),
		})
	}

	return diags
}

func lintField(rule fieldRule, field string) []Diagnostic {
	for _, tok := range rule.allowed {
		if field == tok {
			return nil
		}
	}

	var diags []Diagnostic
	report := func(sev Severity, format string, args ...any) {
		diags = append(diags, Diagnostic{Field: rule.name, Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	kept := 0
	for _, token := range strings.Split(field, listSeparator) {
		if !listTokenPattern.MatchString(token) {
			report(SeverityError, "unsupported token %q is dropped", token)
			continue
		}
		lo, hi, _ := parseToken(token)
		switch {
		case lo > hi:
			report(SeverityError, "range %q is reversed and matches nothing", token)
			continue
		case lo < rule.low || hi > rule.high:
			report(SeverityWarning, "%q falls outside %d-%d; values outside are dropped", token, rule.low, rule.high)
		}
		if max(lo, rule.low) <= min(hi, rule.high) {
			kept++
		}
	}

	if kept == 0 && len(diags) > 0 {
		report(SeverityError, "no usable values remain")
	}
	return diags
}

func isUnrestricted(field string) bool {
	return field == Wildcard || field == NoSpecific
}

// ParseStrict parses expr like Parse but fails when Lint reports errors.
func ParseStrict(expr string) (State, error) {
	diags := Lint(expr)
	for _, d := range diags {
		if d.Severity == SeverityError {
			return State{}, fmt.Errorf("invalid cron expression %q: %s", expr, d)
		}
	}
	return Parse(expr), nil
}
