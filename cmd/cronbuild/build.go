package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/holidayguard/cronbuild/internal/constants"
	"github.com/holidayguard/cronbuild/internal/cronexpr"
	"github.com/holidayguard/cronbuild/internal/editor"
	"github.com/holidayguard/cronbuild/internal/logger"
)

var (
	buildMonths   string
	buildDays     string
	buildWeekdays string
	buildFile     string
	buildOutput   string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a cron expression from a schedule description",
	Long: `Build the canonical cron expression for a schedule.

Months and days take cron list notation ("1,3,5", "6-8"). --days accepts
"every" (the default), "L" for the last day of the month, or a list of
days. --weekdays narrows an every-day schedule and accepts a list (0 is
Sunday) or one of the presets weekdays, weekends, all.

With --file the schedule is read from a YAML or JSON state document, as
printed by "cronbuild parse", and the other flags are ignored.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildMonths, "months", "", "months to run in (default all)")
	buildCmd.Flags().StringVar(&buildDays, "days", "every", `"every", "L" or a list of days of month`)
	buildCmd.Flags().StringVar(&buildWeekdays, "weekdays", "", "weekday list or preset (every-day schedules only)")
	buildCmd.Flags().StringVarP(&buildFile, "file", "f", "", "read the schedule from a state document")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "print the full state as yaml or json instead of the expression")
}

func runBuild(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	var state cronexpr.State
	if buildFile != "" {
		state, err = stateFromFile(buildFile)
	} else {
		state, err = buildState(buildMonths, buildDays, buildWeekdays)
	}
	if err != nil {
		return err
	}

	if buildOutput != "" {
		return writeView(cmd.OutOrStdout(), cronexpr.NewView(state), buildOutput)
	}

	if err := cronexpr.Validate(state); err != nil {
		a.log.Debug("built schedule is incomplete", logger.Field{Key: "reason", Value: cronexpr.ValidationReason(err)})
		return fmt.Errorf(constants.MsgInvalid, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cronexpr.Serialize(state))
	return nil
}

func stateFromFile(path string) (cronexpr.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return cronexpr.State{}, fmt.Errorf("failed to open state file: %w", err)
	}
	defer f.Close()

	view, err := readView(f)
	if err != nil {
		return cronexpr.State{}, err
	}
	return view.State()
}

// buildState assembles a State from the build flags.
func buildState(months, days, weekdays string) (cronexpr.State, error) {
	state := cronexpr.State{Months: cronexpr.All()}

	months = strings.TrimSpace(months)
	if months != "" && months != cronexpr.Wildcard {
		state.Months = cronexpr.ParseMonths(months)
		if state.Months.IsEmpty() {
			return cronexpr.State{}, fmt.Errorf("no valid months in %q", months)
		}
	}

	switch d := strings.TrimSpace(days); strings.ToLower(d) {
	case "", "every", cronexpr.Wildcard:
		sel, err := weekdaySelection(weekdays)
		if err != nil {
			return cronexpr.State{}, err
		}
		state.Day = cronexpr.EveryDay{Weekdays: sel}
		return state, nil
	case "l", "last":
		state.Day = cronexpr.LastDayOfMonth{}
	default:
		values := cronexpr.Expand(d, cronexpr.MinDayOfMonth, cronexpr.MaxDayOfMonth)
		if len(values) == 0 {
			return cronexpr.State{}, fmt.Errorf("no valid days of month in %q", d)
		}
		state.Day = cronexpr.SpecificDays{Days: values}
	}

	if strings.TrimSpace(weekdays) != "" {
		return cronexpr.State{}, editor.ErrWeekdaysDisabled
	}
	return state, nil
}

func weekdaySelection(weekdays string) (cronexpr.Selection, error) {
	weekdays = strings.TrimSpace(weekdays)
	if weekdays == "" {
		return cronexpr.All(), nil
	}

	sel, err := editor.WeekdayPreset(weekdays)
	if err == nil {
		return sel, nil
	}

	sel = cronexpr.ParseWeekdays(weekdays)
	if sel.IsEmpty() {
		return cronexpr.Selection{}, errors.Join(fmt.Errorf("no valid weekdays in %q", weekdays), err)
	}
	return sel, nil
}
