package cronexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diagnosticsFor(diags []Diagnostic, field string) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Field == field {
			out = append(out, d)
		}
	}
	return out
}

func TestLintCanonicalExpressions(t *testing.T) {
	exprs := []string{
		"0 0 0 * * *",
		"0 0 0 * * 1-5",
		"0 0 0 1,15 * ?",
		"0 0 0 L * ?",
		"0 0 0 * 1,3,5 1-5",
		"0 0 0 L 2,3 ?",
	}

	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			assert.Empty(t, Lint(expr))
		})
	}
}

func TestLintFieldCount(t *testing.T) {
	diags := Lint("0 0 *")
	require.Len(t, diags, 1)
	assert.Equal(t, "expression", diags[0].Field)
	assert.Equal(t, SeverityError, diags[0].Severity)
	assert.True(t, HasErrors(diags))
}

func TestLintIgnoredTimeFields(t *testing.T) {
	diags := Lint("30 0 12 * * *")

	assert.Len(t, diagnosticsFor(diags, "second"), 1)
	assert.Empty(t, diagnosticsFor(diags, "minute"))
	assert.Len(t, diagnosticsFor(diags, "hour"), 1)
	assert.False(t, HasErrors(diags))

	respelled := diagnosticsFor(diags, "expression")
	require.Len(t, respelled, 1)
	assert.Contains(t, respelled[0].Message, `"0 0 0 * * *"`)
}

func TestLintUnsupportedToken(t *testing.T) {
	diags := Lint("0 0 0 * * 1,x")

	dow := diagnosticsFor(diags, "day-of-week")
	require.NotEmpty(t, dow)
	assert.Equal(t, SeverityError, dow[0].Severity)
	assert.Contains(t, dow[0].Message, `"x"`)
	assert.True(t, HasErrors(diags))
}

func TestLintMalformedRanges(t *testing.T) {
	for _, field := range []string{"-5", "1-3-5"} {
		t.Run(field, func(t *testing.T) {
			dom := diagnosticsFor(Lint("0 0 0 "+field+" * ?"), "day-of-month")
			require.NotEmpty(t, dom)
			assert.Equal(t, SeverityError, dom[0].Severity)
			assert.Contains(t, dom[0].Message, "unsupported token")
		})
	}
}

func TestLintReversedRange(t *testing.T) {
	diags := Lint("0 0 0 5-1 * ?")

	dom := diagnosticsFor(diags, "day-of-month")
	require.Len(t, dom, 2)
	assert.Contains(t, dom[0].Message, "reversed")
	assert.Contains(t, dom[1].Message, "no usable values")
}

func TestLintOutOfDomain(t *testing.T) {
	diags := Lint("0 0 0 * 0-3 *")

	month := diagnosticsFor(diags, "month")
	require.Len(t, month, 1)
	assert.Equal(t, SeverityWarning, month[0].Severity)
	assert.False(t, HasErrors(diags))
}

func TestLintQuestionMarkMonth(t *testing.T) {
	diags := Lint("0 0 0 * ? *")

	month := diagnosticsFor(diags, "month")
	require.NotEmpty(t, month)
	assert.Equal(t, SeverityError, month[0].Severity)
}

func TestLintBothDayFieldsRestricted(t *testing.T) {
	diags := Lint("0 0 0 15 * 1-5")

	dow := diagnosticsFor(diags, "day-of-week")
	require.Len(t, dow, 1)
	assert.Equal(t, SeverityWarning, dow[0].Severity)
	assert.Contains(t, dow[0].Message, "ignored")
}

func TestLintSundayAsSeven(t *testing.T) {
	diags := Lint("0 0 0 * * 7")

	assert.Empty(t, diagnosticsFor(diags, "day-of-week"))
	assert.False(t, HasErrors(diags))
	assert.NotEmpty(t, diagnosticsFor(diags, "expression"))
}

func TestLintTwoElementRange(t *testing.T) {
	diags := Lint("0 0 0 * * 1-2")

	require.Len(t, diags, 1)
	assert.Equal(t, "expression", diags[0].Field)
	assert.Contains(t, diags[0].Message, `"0 0 0 * * 1,2"`)
}

func TestParseStrict(t *testing.T) {
	s, err := ParseStrict("0 0 0 * * 1-5")
	require.NoError(t, err)
	assert.Equal(t, "0 0 0 * * 1-5", Serialize(s))

	_, err = ParseStrict("0 0 0 * * mon")
	assert.Error(t, err)

	_, err = ParseStrict("0 0 0")
	assert.Error(t, err)

	s, err = ParseStrict("0 0 0 * * 1-2")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, s.Weekdays().Values())
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Field: "month", Severity: SeverityError, Message: "bad"}
	assert.Equal(t, "error: month: bad", d.String())
}
