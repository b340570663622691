package main

import (
	"github.com/spf13/cobra"

	"github.com/holidayguard/cronbuild/internal/constants"
	"github.com/holidayguard/cronbuild/internal/cronexpr"
	"github.com/holidayguard/cronbuild/internal/logger"
)

var (
	parseOutput string
	parseStrict bool
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Print the structured form of a cron expression",
	Long: `Parse a six-field cron expression and print the builder state it
describes: mode, months, days, weekdays, summary and validity.

Malformed input is read leniently (unusable values are dropped, a wrong
field count yields the default schedule) unless --strict is given or
editor.strict_lint is set in the config.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", constants.OutputYAML, "output format: yaml or json")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "reject expressions with lint errors")
}

func runParse(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	state, err := readExpression(a, args[0], parseStrict)
	if err != nil {
		return err
	}

	return writeView(cmd.OutOrStdout(), cronexpr.NewView(state), parseOutput)
}

// readExpression parses expr strictly when asked to by the flag or the
// config, leniently otherwise.
func readExpression(a *app, expr string, strict bool) (cronexpr.State, error) {
	if strict || a.cfg.Editor.StrictLint {
		state, err := cronexpr.ParseStrict(expr)
		if err != nil {
			a.log.Debug("strict parse failed", logger.Field{Key: "cron", Value: expr})
			return cronexpr.State{}, err
		}
		return state, nil
	}

	state := cronexpr.Parse(expr)
	a.log.Debug("expression parsed",
		logger.Field{Key: "cron", Value: expr},
		logger.Field{Key: "canonical", Value: cronexpr.Serialize(state)},
	)
	return state, nil
}
