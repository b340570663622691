package constants

// Messages printed by the cronbuild CLI.

// Edit session messages
const (
	// MsgEditHelp lists the commands of the edit session.
	MsgEditHelp = `Commands:
  month <1-12>              toggle a month
  all-months                select all months, or clear the selection
  mode <every|specific|last> switch the day-of-month mode
  day <1-31>                toggle a day of month (specific mode)
  all-days                  select all days of month, or clear them (specific mode)
  dow <0-6>                 toggle a day of week, 0 is Sunday (every mode)
  preset <weekdays|weekends|all>  replace the day-of-week selection (every mode)
  set <cron expression>     load an expression
  show                      print the current expression and summary
  quit                      end the session
`

	// MsgEditChanged is printed when the editor reports a new expression.
	MsgEditChanged = "cron: %s\n"

	// MsgEditInvalid is printed when the editor reports an invalid state.
	MsgEditInvalid = "invalid: %s\n"

	// MsgEditShow prints the expression, its summary and validity.
	MsgEditShow = "%s  (%s)  valid=%t\n"

	// MsgEditUnknownCommand is printed for unrecognised input.
	MsgEditUnknownCommand = "unknown command %q, type help\n"

	// MsgEditError is printed when an edit is rejected.
	MsgEditError = "error: %v\n"
)

// Lint messages
const (
	// MsgLintClean is printed when an expression has no diagnostics.
	MsgLintClean = "%s: no issues\n"

	// MsgLintDiagnostic formats one diagnostic line.
	MsgLintDiagnostic = "%s: %s\n"
)

// Validation messages
const (
	// MsgValid is printed when an expression describes a complete schedule.
	MsgValid = "valid: %s\n"

	// MsgInvalid is the error for an incomplete schedule.
	MsgInvalid = "invalid schedule: %s"
)
