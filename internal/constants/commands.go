package constants

// Commands understood by the interactive edit session.
const (
	CommandMonth     = "month"
	CommandAllMonths = "all-months"
	CommandMode      = "mode"
	CommandDay       = "day"
	CommandAllDays   = "all-days"
	CommandDow       = "dow"
	CommandPreset    = "preset"
	CommandSet       = "set"
	CommandShow      = "show"
	CommandHelp      = "help"
	CommandQuit      = "quit"
)
