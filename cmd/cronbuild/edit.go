package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/holidayguard/cronbuild/internal/constants"
	"github.com/holidayguard/cronbuild/internal/cronexpr"
	"github.com/holidayguard/cronbuild/internal/editor"
	"github.com/holidayguard/cronbuild/internal/logger"
)

var (
	editStrict  bool
	editMetrics bool
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [expression]",
	Short: "Edit a cron expression interactively",
	Long: `Start an editor session on the given expression, or on
editor.default_expression from the config. Commands are read one per line
from standard input; every edit prints the new expression, or the reason
the schedule is incomplete. Type help for the command list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().BoolVar(&editStrict, "strict", false, "reject expressions with lint errors")
	editCmd.Flags().BoolVar(&editMetrics, "metrics", false, "print editor metrics when the session ends")
}

func runEdit(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var reg *prometheus.Registry
	var metrics *editor.Metrics
	if editMetrics || a.cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		metrics = editor.NewMetrics(a.cfg.Metrics.Namespace, reg)
	}

	value := a.cfg.Editor.DefaultExpression
	if len(args) > 0 {
		value = args[0]
	}

	ed, err := editor.New(editor.Options{
		Value: value,
		OnChange: func(expr string) {
			fmt.Fprintf(out, constants.MsgEditChanged, expr)
		},
		OnValidation: func(valid bool, message string) {
			if !valid {
				fmt.Fprintf(out, constants.MsgEditInvalid, message)
			}
		},
		Strict:  editStrict || a.cfg.Editor.StrictLint,
		Logger:  a.log,
		Metrics: metrics,
	})
	if err != nil {
		return err
	}

	a.log.Info("edit session started", logger.Field{Key: "session", Value: ed.ID()})

	if err := runSession(ed, cmd.InOrStdin(), out); err != nil {
		return err
	}

	a.log.Info("edit session finished",
		logger.Field{Key: "session", Value: ed.ID()},
		logger.Field{Key: "cron", Value: ed.Expression()},
	)

	if reg != nil {
		return writeMetrics(out, reg)
	}
	return nil
}

// runSession reads commands from in until quit or end of input. Rejected
// edits are reported and the session continues.
func runSession(ed *editor.Editor, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, arg, _ := strings.Cut(line, " ")
		quit, err := execCommand(ed, strings.ToLower(name), strings.TrimSpace(arg), out)
		if err != nil {
			fmt.Fprintf(out, constants.MsgEditError, err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

func execCommand(ed *editor.Editor, name, arg string, out io.Writer) (bool, error) {
	switch name {
	case constants.CommandMonth:
		m, err := strconv.Atoi(arg)
		if err != nil {
			return false, fmt.Errorf("month: %w", err)
		}
		return false, ed.ToggleMonth(m)
	case constants.CommandAllMonths:
		return false, ed.ToggleAllMonths()
	case constants.CommandMode:
		mode, err := cronexpr.ParseMode(strings.ToLower(arg))
		if err != nil {
			return false, err
		}
		return false, ed.SetMode(mode)
	case constants.CommandDay:
		d, err := strconv.Atoi(arg)
		if err != nil {
			return false, fmt.Errorf("day: %w", err)
		}
		return false, ed.ToggleDayOfMonth(d)
	case constants.CommandAllDays:
		return false, ed.ToggleAllDaysOfMonth()
	case constants.CommandDow:
		d, err := strconv.Atoi(arg)
		if err != nil {
			return false, fmt.Errorf("dow: %w", err)
		}
		return false, ed.ToggleDayOfWeek(d)
	case constants.CommandPreset:
		sel, err := editor.WeekdayPreset(arg)
		if err != nil {
			return false, err
		}
		return false, ed.SetDaysOfWeek(sel)
	case constants.CommandSet:
		return false, ed.SetValue(arg)
	case constants.CommandShow:
		fmt.Fprintf(out, constants.MsgEditShow, ed.Expression(), ed.Summary(), ed.Validation() == nil)
		return false, nil
	case constants.CommandHelp:
		fmt.Fprint(out, constants.MsgEditHelp)
		return false, nil
	case constants.CommandQuit:
		return true, nil
	default:
		fmt.Fprintf(out, constants.MsgEditUnknownCommand, name)
		return false, nil
	}
}
