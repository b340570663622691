package constants

// Cron constants shared by the editor, the CLI and the config defaults.

// DefaultExpression is the schedule a new editor session starts with:
// every day of every month.
const DefaultExpression = "0 0 0 * * *"

// Weekday presets accepted by the editor and the build command.
const (
	PresetWeekdays = "weekdays"
	PresetWeekends = "weekends"
	PresetAll      = "all"
)

// Output formats of the parse command.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)
