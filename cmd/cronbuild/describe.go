package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holidayguard/cronbuild/internal/cronexpr"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe <expression>",
	Short: "Print a human-readable summary of a cron expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		state, err := readExpression(a, args[0], false)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), cronexpr.Describe(state))
		return nil
	},
}
