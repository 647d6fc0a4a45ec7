package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/timex/internal/errors"
	"github.com/manav03panchal/timex/internal/model"
	"github.com/manav03panchal/timex/internal/output"
	"github.com/manav03panchal/timex/internal/runtime"
	"github.com/manav03panchal/timex/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
	flagHistoryShow  string
)

// historyCmd represents the history command.
var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"hist"},
	Short:   "List recorded resolve and evaluate invocations",
	Long: `Show the most recent resolve and evaluate invocations, newest first.
Only the last TIMEX_HISTORY_LIMIT entries are kept.

Examples:
  timex history
  timex history --limit 5
  timex history --show history:0190f3c2-...
  timex history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 0, "Number of entries to show (default: the history limit)")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Remove all entries")
	historyCmd.Flags().StringVar(&flagHistoryShow, "show", "", "Show the entry stored under KEY")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	repo, err := ctx.OpenHistory()
	if err != nil {
		return runtime.WrapStorageError(err, "open history")
	}

	if flagHistoryClear {
		removed, err := repo.Clear()
		if err != nil {
			return runtime.WrapStorageError(err, "clear history")
		}
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintCleared(removed)
		}
		return ctx.PrintOK(pluralEntries(removed) + " removed")
	}

	if flagHistoryShow != "" {
		return showHistoryEntry(repo, flagHistoryShow)
	}

	limit := flagHistoryLimit
	if limit <= 0 {
		limit = ctx.Config.History.Limit
	}
	entries, err := repo.List(limit)
	if err != nil {
		return runtime.WrapStorageError(err, "list history")
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintHistory(entries)
	}
	if ctx.Config.History.Disabled && ctx.IsCLI() {
		ctx.CLIFormatter().Warning("History recording is disabled (TIMEX_HISTORY_DISABLED).")
	}
	ctx.CLIFormatter().PrintHistory(entries)

	if ctx.IsCLI() {
		total, err := repo.Count()
		if err != nil {
			return runtime.WrapStorageError(err, "count history")
		}
		if total > len(entries) {
			ctx.CLIFormatter().Muted(fmt.Sprintf("showing %d of %s", len(entries), pluralEntries(total)))
		}
	}
	return nil
}

func showHistoryEntry(repo *storage.HistoryRepo, key string) error {
	entry, err := repo.Get(key)
	if storage.IsErrKeyNotFound(err) {
		ue := errors.NewUserErrorWithField("show", key, "no history entry under that key",
			"Run 'timex history -f json' to list the stored keys.")
		ue.Cause = err
		return ue
	}
	if err != nil {
		return runtime.WrapStorageError(err, "read history")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewHistoryOutput(entry))
	}
	ctx.CLIFormatter().PrintHistory([]*model.HistoryEntry{entry})
	return nil
}

func pluralEntries(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}
