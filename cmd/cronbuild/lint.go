package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holidayguard/cronbuild/internal/constants"
	"github.com/holidayguard/cronbuild/internal/cronexpr"
)

// lintCmd represents the lint command
var lintCmd = &cobra.Command{
	Use:   "lint <expression>",
	Short: "Report problems the lenient parser would silently drop",
	Long: `Check a cron expression token by token. Errors mark tokens the
builder cannot represent, warnings mark values it will drop or respell.
Exits non-zero when any error is found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadApp(); err != nil {
			return err
		}

		expr := args[0]
		diags := cronexpr.Lint(expr)
		out := cmd.OutOrStdout()
		if len(diags) == 0 {
			fmt.Fprintf(out, constants.MsgLintClean, expr)
			return nil
		}

		for _, d := range diags {
			fmt.Fprintf(out, constants.MsgLintDiagnostic, expr, d)
		}
		if cronexpr.HasErrors(diags) {
			return fmt.Errorf("%q has lint errors", expr)
		}
		return nil
	},
}
