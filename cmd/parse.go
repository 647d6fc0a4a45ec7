package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/timex/internal/logging"
	"github.com/manav03panchal/timex/internal/output"
	"github.com/manav03panchal/timex/internal/parser"
)

// parseCmd represents the parse command.
var parseCmd = &cobra.Command{
	Use:   "parse EXPR...",
	Short: "Show the type and parts of TIMEX expressions",
	Long: `Parse one or more TIMEX expressions and print the types each one
carries, its canonical form and the fields it populates.

Examples:
  timex parse 2017-09-27T19:30
  timex parse XXXX-WXX-3 P2D '(T14,T18,PT4H)'
  timex parse 2017-W39 --format json`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runParse,
	ValidArgsFunction: completeExpressions,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	start := time.Now()

	timexes, err := parser.ParseExpressions(args)
	if err != nil {
		return err
	}
	items := make([]*output.ParseOutput, len(timexes))
	for i, t := range timexes {
		items[i] = output.NewParseOutput(args[i], t)
	}
	logging.LogOperation(ctx.Ctx, "parse", start, logging.KeyCount, len(items))

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintParse(items)
	}
	ctx.CLIFormatter().PrintParse(items)
	return nil
}
