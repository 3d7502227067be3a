package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui"
	"github.com/custodia-labs/gsearch/internal/core/ports/driving"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	SearchService       driving.SearchService
	HistoryService      driving.HistoryService
	ResultActionService driving.ResultActionService

	// Count is the number of results per search. Zero uses the TUI default.
	Count int
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for gsearch.

The TUI searches any of Google's search services, lets you browse the
results with the keyboard and open or copy their links.

Controls:
  Tab/Shift+Tab - Cycle search kind
  Enter         - Search / Open result
  ↑/k, ↓/j      - Navigate results
  n             - New search
  y             - Copy link
  Esc           - Back / Cancel
  ?             - Toggle help
  q             - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runApp runs the TUI program until it exits.
var runApp = func(app *tui.App) error {
	return app.Run()
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Report a panic with its stack and fail the command.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	var ports *tui.Ports
	count := 0

	if tuiConfig != nil {
		ports = tui.NewPorts(tuiConfig.SearchService, tuiConfig.HistoryService, tuiConfig.ResultActionService)
		count = tuiConfig.Count
	} else {
		ports = tui.NewPorts(nil, nil, nil)
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	startConfigWatch(ctx)

	app.WithContext(ctx)
	if count > 0 {
		app.WithCount(count)
	}

	if err := runApp(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
