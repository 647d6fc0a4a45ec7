package cmd

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/timex/internal/errors"
	"github.com/manav03panchal/timex/internal/output"
	"github.com/manav03panchal/timex/internal/parser"
	"github.com/manav03panchal/timex/internal/scheduler"
	"github.com/manav03panchal/timex/timex"
)

var (
	flagNextRef   string
	flagNextCount int
)

// nextCmd represents the next command.
var nextCmd = &cobra.Command{
	Use:   "next EXPR",
	Short: "List the coming occurrences of a recurrence",
	Long: `Read an expression as a recurrence and list when it next occurs after
the reference. Weekdays, clock times, parts of the day, month-days and
fixed-length durations repeat; definite dates, ranges and months or years
as intervals do not.

Examples:
  timex next XXXX-WXX-3T10 --ref 2017-09-26T15:30:00
  timex next T17 --count 3
  timex next P2D --format json`,
	Args:              cobra.ExactArgs(1),
	RunE:              runNext,
	ValidArgsFunction: completeExpressions,
}

func init() {
	nextCmd.Flags().StringVarP(&flagNextRef, "ref", "r", "", "Reference instant")
	nextCmd.Flags().IntVarP(&flagNextCount, "count", "n", 5, "Number of occurrences")
	_ = nextCmd.RegisterFlagCompletionFunc("ref", completeReferences)
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	t, err := parser.ParseExpression(args[0])
	if err != nil {
		return err
	}
	if flagNextCount <= 0 {
		return errors.NewUserErrorWithField("count", cmd.Flag("count").Value.String(),
			"count must be positive", "Use --count 5")
	}
	ref, err := ctx.Reference(flagNextRef)
	if err != nil {
		return err
	}

	set := timex.ParseSet(t.String())
	sched, err := scheduler.New(set)
	if err != nil {
		if stderrors.Is(err, scheduler.ErrNoCronForm) {
			ue := errors.NewUserError(err.Error(), "Try a weekday, a clock time or a duration: XXXX-WXX-3T10, T17, P2D")
			ue.Cause = err
			return ue
		}
		return err
	}

	n := &output.NextOutput{
		Input:     args[0],
		Every:     timex.ConvertSet(set),
		Cron:      sched.Spec,
		Reference: ref.String(),
	}
	for _, at := range sched.Occurrences(ref, flagNextCount) {
		n.Occurrences = append(n.Occurrences, output.Occurrence{
			At:   at.String(),
			Text: timex.ConvertRelative(timex.FromDateTime(at), ref.Date),
		})
	}
	ctx.Debugf("%s fires on %q", set, sched.Spec)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintNext(n)
	}
	ctx.CLIFormatter().PrintNext(n)
	return nil
}
