package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/timex/internal/output"
	"github.com/manav03panchal/timex/internal/parser"
	"github.com/manav03panchal/timex/timex"
)

var (
	flagSayRef      string
	flagSayAbsolute bool
	flagSayEvery    bool
)

// sayCmd represents the say command.
var sayCmd = &cobra.Command{
	Use:   "say EXPR...",
	Short: "Describe TIMEX expressions in English",
	Long: `Render expressions as English. Dates near the reference are described
relative to it ("tomorrow", "next Wednesday"); use --absolute for the
calendar form and --every to read an expression as a recurrence.

Examples:
  timex say 2017-09-27 --ref 2017-09-26
  timex say XXXX-WXX-3T10 --absolute
  timex say P2D --every`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runSay,
	ValidArgsFunction: completeExpressions,
}

func init() {
	sayCmd.Flags().StringVarP(&flagSayRef, "ref", "r", "", "Reference instant for relative phrases")
	sayCmd.Flags().BoolVarP(&flagSayAbsolute, "absolute", "a", false, "Do not describe dates relative to the reference")
	sayCmd.Flags().BoolVar(&flagSayEvery, "every", false, "Read expressions as recurrences")
	_ = sayCmd.RegisterFlagCompletionFunc("ref", completeReferences)
	rootCmd.AddCommand(sayCmd)
}

func runSay(cmd *cobra.Command, args []string) error {
	timexes, err := parser.ParseExpressions(args)
	if err != nil {
		return err
	}

	resp := output.SayResponse{Phrases: make([]output.SayOutput, len(timexes))}
	switch {
	case flagSayEvery:
		for i, t := range timexes {
			resp.Phrases[i] = output.SayOutput{Input: args[i], Text: timex.ConvertSet(timex.ParseSet(t.String()))}
		}
	case flagSayAbsolute:
		for i, t := range timexes {
			resp.Phrases[i] = output.SayOutput{Input: args[i], Text: timex.Convert(t)}
		}
	default:
		ref, err := ctx.Reference(flagSayRef)
		if err != nil {
			return err
		}
		resp.Reference = ref.String()
		for i, t := range timexes {
			resp.Phrases[i] = output.SayOutput{Input: args[i], Text: timex.ConvertRelative(t, ref.Date)}
		}
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSay(resp)
	}
	ctx.CLIFormatter().PrintSay(resp)
	return nil
}
