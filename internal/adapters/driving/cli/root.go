// Package cli provides the cobra command tree for gsearch.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gsearch/internal/core/ports/driving"
	"github.com/custodia-labs/gsearch/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services injected by main before Execute.
var (
	searchService       driving.SearchService
	historyService      driving.HistoryService
	settingsService     driving.SettingsService
	resultActionService driving.ResultActionService

	// watchConfig applies configuration changes until its context is
	// done. Long-running commands start it; one-shot commands never do.
	watchConfig func(ctx context.Context) error
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gsearch",
	Short: "Search Google from the terminal",
	Long: `gsearch queries Google's book, news, video, web, image, local and patent
search services and prints the results.

Use a search subcommand for one-off queries, 'gsearch tui' for the
interactive interface, or 'gsearch mcp serve' to expose search to AI
assistants.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print paging and backend requests to stderr")
}

// Services bundles the services the commands run against.
// Any of them may be nil; commands report a missing service.
type Services struct {
	Search       driving.SearchService
	History      driving.HistoryService
	Settings     driving.SettingsService
	ResultAction driving.ResultActionService

	// WatchConfig, when set, blocks applying configuration changes to the
	// services above until ctx is done.
	WatchConfig func(ctx context.Context) error
}

// SetServices injects the services used by commands.
func SetServices(s Services) {
	searchService = s.Search
	historyService = s.History
	settingsService = s.Settings
	resultActionService = s.ResultAction
	watchConfig = s.WatchConfig
}

// startConfigWatch runs watchConfig in the background for the lifetime
// of ctx.
func startConfigWatch(ctx context.Context) {
	if watchConfig == nil {
		return
	}
	go func() {
		if err := watchConfig(ctx); err != nil {
			logger.Warn("config watch: %v", err)
		}
	}()
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. Commands observe ctx for cancellation.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
