package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage search history",
	Long: `List or clear recorded searches.

Searches are recorded after they complete successfully. Set
history.enabled = false to stop recording.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent searches",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every recorded search",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries (0 = all)")
	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "output entries as JSON")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	entries, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		if errors.Is(err, domain.ErrNotImplemented) {
			return errors.New("search history is disabled")
		}
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		cmd.Println("No searches recorded.")
		return nil
	}

	for _, e := range entries {
		cmd.Printf("  %s  %-6s  %s  (%d/%d, %s)\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Kind, e.Keyword, e.Returned, e.Requested, e.Backend)
	}

	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Clear(cmd.Context()); err != nil {
		if errors.Is(err, domain.ErrNotImplemented) {
			return errors.New("search history is disabled")
		}
		return fmt.Errorf("failed to clear history: %w", err)
	}

	cmd.Println("Search history cleared.")
	return nil
}
