package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

func resetHistoryFlags() {
	historyLimit = 20
	historyJSON = false
}

func TestHistoryCmd_Use(t *testing.T) {
	assert.Equal(t, "history", historyCmd.Use)
	assert.Equal(t, "list", historyListCmd.Use)
	assert.Equal(t, "clear", historyClearCmd.Use)
}

func TestHistoryListCmd_HasLimitFlag(t *testing.T) {
	flag := historyListCmd.Flags().Lookup("limit")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "20", flag.DefValue)
}

func TestHistoryListCmd_PrintsEntries(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	defer resetHistoryFlags()

	out, err := execute(t, "history", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "news")
	assert.Contains(t, out, "barack obama")
	assert.Contains(t, out, "(8/8, ajax)")
}

func TestHistoryListCmd_Empty(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	defer resetHistoryFlags()
	ts.history.entries = nil

	out, err := execute(t, "history", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No searches recorded.")
}

func TestHistoryListCmd_JSON(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	defer resetHistoryFlags()

	out, err := execute(t, "history", "list", "--json")

	require.NoError(t, err)
	var entries []domain.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "h-1", entries[0].ID)
	assert.Equal(t, domain.KindNews, entries[0].Kind)
}

func TestHistoryListCmd_Disabled(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	defer resetHistoryFlags()
	ts.history.err = domain.ErrNotImplemented

	_, err := execute(t, "history", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search history is disabled")
}

func TestHistoryListCmd_StoreError(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	defer resetHistoryFlags()
	ts.history.err = errors.New("disk full")

	_, err := execute(t, "history", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list history")
}

func TestHistoryClearCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "history", "clear")

	require.NoError(t, err)
	assert.True(t, ts.history.cleared)
	assert.Contains(t, out, "Search history cleared.")
}

func TestHistoryCmd_ServiceNotConfigured(t *testing.T) {
	oldService := historyService
	historyService = nil
	defer func() {
		historyService = oldService
	}()

	_, err := execute(t, "history", "clear")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "history service not configured")
}
