package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/timex/internal/model"
	"github.com/manav03panchal/timex/internal/tui"
)

var flagExploreRef string

// exploreCmd represents the explore command.
var exploreCmd = &cobra.Command{
	Use:   "explore [EXPR]",
	Short: "Interactively parse and resolve expressions",
	Long: `Open an interactive explorer. Each keystroke re-parses the input and
shows its types, its English rendering and its resolution against the
reference. Press enter to keep an expression in history, up and down to
recall earlier ones, tab to switch between relative and absolute phrasing.

Examples:
  timex explore
  timex explore XXXX-WXX-3 --ref 2017-09-26`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runExplore,
	ValidArgsFunction: completeExpressions,
}

func init() {
	exploreCmd.Flags().StringVarP(&flagExploreRef, "ref", "r", "", "Reference instant")
	_ = exploreCmd.RegisterFlagCompletionFunc("ref", completeReferences)
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	ref, err := ctx.Reference(flagExploreRef)
	if err != nil {
		return err
	}

	cfg := tui.ExplorerConfig{
		Reference: ref,
		Recent:    recentInputs(),
		OnKeep: func(a tui.Analysis) error {
			entry := model.NewHistoryEntry(model.CommandResolve,
				[]string{a.Parsed.Canonical}, nil, ref.String(), resolutionStrings(a.Resolution))
			return ctx.Record(entry)
		},
	}
	if len(args) == 1 {
		cfg.Initial = args[0]
	}
	return tui.Run(cfg)
}

// recentInputs returns resolved expressions from history, newest first.
// History errors only cost the recall list.
func recentInputs() []string {
	if ctx.Config.History.Disabled {
		return nil
	}
	repo, err := ctx.OpenHistory()
	if err != nil {
		ctx.Debugf("history unavailable: %v", err)
		return nil
	}
	entries, err := repo.List(ctx.Config.History.Limit)
	if err != nil {
		ctx.Debugf("history unavailable: %v", err)
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		if e.Command != model.CommandResolve {
			continue
		}
		for _, in := range e.Inputs {
			if !seen[in] {
				seen[in] = true
				out = append(out, in)
			}
		}
	}
	return out
}
