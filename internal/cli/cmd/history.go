package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/berrythewa/cliplate/internal/storage"
	"github.com/berrythewa/cliplate/pkg/format"
)

// newHistoryCmd creates the history command with all subcommands
func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage translation history",
		Long: `Manage translation history:
  • List recent translations
  • Show history statistics
  • Clear old entries`,
	}

	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryStatsCmd())
	cmd.AddCommand(newHistoryClearCmd())
	return cmd
}

// withHistory opens the history database for the duration of fn
func withHistory(fn func(store *storage.BoltStorage) error) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("history is disabled (storage.enabled is false)")
	}
	defer store.Close()
	return fn(store)
}

func newHistoryListCmd() *cobra.Command {
	var (
		limit    int
		compact  bool
		noColors bool
		asJSON   bool
		maxLines int
		maxWidth int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent translations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistory(func(store *storage.BoltStorage) error {
				records, err := store.GetHistory(limit)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if asJSON {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return enc.Encode(records)
				}

				opts := format.DefaultOptions()
				if compact {
					opts = format.CompactOptions()
				}
				if noColors {
					opts.UseColors = false
				}
				if cmd.Flags().Changed("max-lines") {
					opts.MaxLines = maxLines
				}
				if cmd.Flags().Changed("max-width") {
					opts.MaxWidth = maxWidth
				}
				fmt.Fprintln(out, format.FormatRecordList(records, opts))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of items to display (0 for all)")
	cmd.Flags().BoolVar(&compact, "compact", false, "One line per entry")
	cmd.Flags().BoolVar(&noColors, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output history as JSON")
	cmd.Flags().IntVar(&maxLines, "max-lines", 10, "Maximum lines of text per entry (0 = no limit)")
	cmd.Flags().IntVar(&maxWidth, "max-width", 80, "Maximum width of text per line (0 = no limit)")
	return cmd
}

func newHistoryStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show history statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistory(func(store *storage.BoltStorage) error {
				records, err := store.GetHistory(0)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), format.FormatStats(records, format.DefaultOptions()))
				return nil
			})
		},
	}
}

func newHistoryClearCmd() *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete old translations",
		Long:  `Delete translation history, keeping the --keep most recently used entries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistory(func(store *storage.BoltStorage) error {
				deleted, err := store.Flush(keep)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries\n", deleted)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&keep, "keep", 0, "Number of recent entries to keep")
	return cmd
}
