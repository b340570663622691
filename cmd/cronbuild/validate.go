package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holidayguard/cronbuild/internal/constants"
	"github.com/holidayguard/cronbuild/internal/cronexpr"
	"github.com/holidayguard/cronbuild/internal/logger"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <expression>",
	Short: "Check that a cron expression describes a complete schedule",
	Long: `Check that the schedule selects at least one month and, in
specific-days mode, at least one day. Exits non-zero when it does not.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		state, err := readExpression(a, args[0], false)
		if err != nil {
			return err
		}

		if err := cronexpr.Validate(state); err != nil {
			a.log.Debug("schedule rejected",
				logger.Field{Key: "cron", Value: args[0]},
				logger.Field{Key: "reason", Value: cronexpr.ValidationReason(err)},
			)
			return fmt.Errorf(constants.MsgInvalid, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), constants.MsgValid, cronexpr.Describe(state))
		return nil
	},
}
