package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/timex/internal/errors"
	"github.com/manav03panchal/timex/internal/logging"
	"github.com/manav03panchal/timex/internal/model"
	"github.com/manav03panchal/timex/internal/output"
	"github.com/manav03panchal/timex/internal/parser"
	"github.com/manav03panchal/timex/timex"
)

var (
	flagCandidates  []string
	flagConstraints []string
	flagEvalNoHist  bool
)

// evaluateCmd represents the evaluate command.
var evaluateCmd = &cobra.Command{
	Use:     "evaluate",
	Aliases: []string{"eval"},
	Short:   "Keep the candidate values that fall inside constraint ranges",
	Long: `Intersect candidate expressions with constraint ranges. Candidates that
leave the date open are expanded to every matching day in the constraints.
Constraints may be date ranges, time ranges or single dates and times.

Examples:
  timex evaluate --candidate T16 --constraint '(T14,T18,PT4H)'
  timex evaluate --candidate XXXX-WXX-3 --constraint '(2017-09-01,2017-10-01,P30D)'
  timex evaluate -c XXXX-WXX-3T04 -c XXXX-WXX-3T16 -k 2017-10-04 -k '(T12,T20,PT8H)'`,
	Args: cobra.NoArgs,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringArrayVarP(&flagCandidates, "candidate", "c", nil, "Candidate expression (repeatable)")
	evaluateCmd.Flags().StringArrayVarP(&flagConstraints, "constraint", "k", nil, "Constraint expression (repeatable)")
	evaluateCmd.Flags().BoolVar(&flagEvalNoHist, "no-history", false, "Do not record this invocation")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	if len(flagCandidates) == 0 {
		ue := errors.NewUserError("at least one --candidate is required",
			"timex evaluate --candidate T16 --constraint '(T14,T18,PT4H)'")
		ue.Cause = errors.ErrMissingArgument
		return ue
	}
	if _, err := parser.ParseExpressions(flagCandidates); err != nil {
		return err
	}
	if _, err := parser.ParseExpressions(flagConstraints); err != nil {
		return err
	}

	start := time.Now()
	results := timex.Evaluate(flagCandidates, flagConstraints)
	logging.LogOperation(ctx.Ctx, "evaluate", start, logging.KeyCount, len(results))

	resp := output.NewEvaluateResponse(flagCandidates, flagConstraints, results)
	if !flagEvalNoHist {
		entry := model.NewHistoryEntry(model.CommandEvaluate, flagCandidates, flagConstraints, "", resp.Results)
		if err := ctx.Record(entry); err != nil {
			return err
		}
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintEvaluate(resp)
	}
	ctx.CLIFormatter().PrintEvaluate(resp)
	return nil
}
