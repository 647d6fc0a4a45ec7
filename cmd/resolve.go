package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/timex/internal/logging"
	"github.com/manav03panchal/timex/internal/model"
	"github.com/manav03panchal/timex/internal/parser"
	"github.com/manav03panchal/timex/timex"
)

var (
	flagResolveRef       string
	flagResolveNoHistory bool
)

// resolveCmd represents the resolve command.
var resolveCmd = &cobra.Command{
	Use:   "resolve EXPR...",
	Short: "Resolve TIMEX expressions against a reference instant",
	Long: `Resolve each expression to concrete values. Expressions that leave
parts unspecified, like a weekday without a date, resolve to the nearest
match before and after the reference.

The reference defaults to TIMEX_DEFAULT_REF, or to the current time.
Each invocation is recorded in history unless --no-history is set.

Examples:
  timex resolve XXXX-WXX-3 --ref 2017-09-26T15:30:00
  timex resolve T17 2017-09-28 --ref 'next friday 9am'
  timex resolve XXXX-WXX-1TEV --format json`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runResolve,
	ValidArgsFunction: completeExpressions,
}

func init() {
	resolveCmd.Flags().StringVarP(&flagResolveRef, "ref", "r", "", "Reference instant")
	resolveCmd.Flags().BoolVar(&flagResolveNoHistory, "no-history", false, "Do not record this invocation")
	_ = resolveCmd.RegisterFlagCompletionFunc("ref", completeReferences)
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if _, err := parser.ParseExpressions(args); err != nil {
		return err
	}
	ref, err := ctx.Reference(flagResolveRef)
	if err != nil {
		return err
	}

	start := time.Now()
	res := timex.Resolve(args, ref)
	logging.LogOperation(ctx.Ctx, "resolve", start,
		logging.KeyReference, ref.String(),
		logging.KeyCount, len(res.Values))

	if !flagResolveNoHistory {
		entry := model.NewHistoryEntry(model.CommandResolve, args, nil, ref.String(), resolutionStrings(res))
		if err := ctx.Record(entry); err != nil {
			return err
		}
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintResolution(ref.String(), res)
	}
	ctx.CLIFormatter().PrintResolution(ref.String(), res)
	return nil
}

// resolutionStrings flattens values for history: the value itself, or the
// range as start/end.
func resolutionStrings(res timex.Resolution) []string {
	out := make([]string, 0, len(res.Values))
	for _, v := range res.Values {
		switch {
		case v.Value != "":
			out = append(out, v.Value)
		case v.Start != "":
			out = append(out, v.Start+"/"+v.End)
		}
	}
	return out
}
