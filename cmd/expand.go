package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/timex/internal/output"
	"github.com/manav03panchal/timex/internal/parser"
)

// expandCmd represents the expand command.
var expandCmd = &cobra.Command{
	Use:   "expand EXPR",
	Short: "Show the start and end of a range expression",
	Long: `Expand a range into its start and end. Time ranges such as TEV or
(T14,T18,PT4H) expand to clock times; date ranges such as 2017-W39, 2017-09
or XXXX-SU expand to dates.

Examples:
  timex expand 2017-W39
  timex expand TEV
  timex expand '(2017-09-27,2017-09-29,P2D)'`,
	Args:              cobra.ExactArgs(1),
	RunE:              runExpand,
	ValidArgsFunction: completeExpressions,
}

func init() {
	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	if _, err := parser.ParseExpression(args[0]); err != nil {
		return err
	}
	e := output.NewExpandOutput(args[0])

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintExpansion(e)
	}
	ctx.CLIFormatter().PrintExpansion(e)
	return nil
}
