package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/timex/internal/output"
	"github.com/manav03panchal/timex/internal/parser"
)

// formatCmd represents the format command.
var formatCmd = &cobra.Command{
	Use:     "format EXPR...",
	Aliases: []string{"fmt"},
	Short:   "Print the canonical form of TIMEX expressions",
	Long: `Parse each expression and write it back in canonical form. Inputs that
change are shown with an arrow.

Examples:
  timex format T08:00:00
  timex format 2017-09-27T19:30:00 XXXX-WXX-3`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runFormat,
	ValidArgsFunction: completeExpressions,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	if _, err := parser.ParseExpressions(args); err != nil {
		return err
	}
	items := make([]output.FormatOutput, len(args))
	for i, a := range args {
		items[i] = output.NewFormatOutput(a)
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintFormat(items)
	}
	ctx.CLIFormatter().PrintFormat(items)
	return nil
}
