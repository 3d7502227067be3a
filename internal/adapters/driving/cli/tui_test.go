package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/tui"
)

func TestTUICmd_Exists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_ShortDescription(t *testing.T) {
	assert.Equal(t, "Launch the interactive terminal UI", tuiCmd.Short)
}

func TestTUICmd_LongDescription(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "interactive terminal user interface")
	assert.Contains(t, tuiCmd.Long, "Controls:")
	assert.Contains(t, tuiCmd.Long, "Cycle search kind")
}

func TestSetTUIConfig(t *testing.T) {
	config := &TUIConfig{
		SearchService:  &mockSearchService{},
		HistoryService: &mockHistoryService{},
		Count:          16,
	}

	SetTUIConfig(config)
	defer func() { tuiConfig = nil }()

	assert.Equal(t, config, tuiConfig)
}

func TestTUICmd_HelpOutput(t *testing.T) {
	defer func() {
		if flag := tuiCmd.Flags().Lookup("help"); flag != nil {
			_ = flag.Value.Set("false")
		}
	}()

	out, err := execute(t, "tui", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "interactive terminal user interface")
	assert.Contains(t, out, "Controls:")
}

func TestTUICmd_MissingSearchService(t *testing.T) {
	SetTUIConfig(&TUIConfig{})
	defer func() { tuiConfig = nil }()

	_, err := execute(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create TUI")
}

func stubRunApp(t *testing.T, fn func(app *tui.App) error) {
	t.Helper()

	old := runApp
	runApp = fn
	t.Cleanup(func() { runApp = old })
}

func TestTUICmd_PanicFailsCommand(t *testing.T) {
	SetTUIConfig(&TUIConfig{SearchService: &mockSearchService{}})
	defer func() { tuiConfig = nil }()
	stubRunApp(t, func(*tui.App) error {
		panic("render exploded")
	})

	_, err := execute(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TUI panic: render exploded")
}

func TestTUICmd_RunError(t *testing.T) {
	SetTUIConfig(&TUIConfig{SearchService: &mockSearchService{}})
	defer func() { tuiConfig = nil }()
	stubRunApp(t, func(*tui.App) error {
		return errors.New("no tty")
	})

	_, err := execute(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TUI error: no tty")
}

func TestTUICmd_WatchesConfigWhileRunning(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	watching := make(chan struct{})
	stopped := make(chan struct{})
	watchConfig = func(ctx context.Context) error {
		close(watching)
		<-ctx.Done()
		close(stopped)
		return nil
	}

	SetTUIConfig(&TUIConfig{SearchService: &mockSearchService{}, Count: 4})
	defer func() { tuiConfig = nil }()
	stubRunApp(t, func(*tui.App) error {
		select {
		case <-watching:
			return nil
		case <-time.After(5 * time.Second):
			return errors.New("config watch not started")
		}
	})

	_, err := execute(t, "tui")
	require.NoError(t, err)

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("config watch outlived the TUI")
	}
}
