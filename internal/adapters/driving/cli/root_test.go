package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driving"
	"github.com/custodia-labs/gsearch/internal/logger"
)

// mockSearchService implements driving.SearchService and records the last call.
type mockSearchService struct {
	err         error
	lastKeyword string
	lastCount   int
	lastOpts    any
}

var _ driving.SearchService = (*mockSearchService)(nil)

func (m *mockSearchService) record(keyword string, count int, opts any) {
	m.lastKeyword = keyword
	m.lastCount = count
	m.lastOpts = opts
}

func (m *mockSearchService) Books(
	_ context.Context, keyword string, count int, opts domain.BookOptions,
) ([]*domain.Book, error) {
	m.record(keyword, count, opts)
	if m.err != nil {
		return nil, m.err
	}
	return []*domain.Book{domain.NewBook(domain.BookFields{
		BookID:        "ISBN0316769487",
		Title:         "The Catcher in the Rye",
		Authors:       "J. D. Salinger",
		PublishedYear: 1951,
		URL:           "https://books.google.com/books?id=abc",
	})}, nil
}

func (m *mockSearchService) News(
	_ context.Context, keyword string, count int, opts domain.NewsOptions,
) ([]*domain.News, error) {
	m.record(keyword, count, opts)
	return nil, m.err
}

func (m *mockSearchService) Videos(
	_ context.Context, keyword string, count int, opts domain.VideoOptions,
) ([]*domain.Video, error) {
	m.record(keyword, count, opts)
	return nil, m.err
}

func (m *mockSearchService) Web(
	_ context.Context, keyword string, count int, opts domain.WebOptions,
) ([]*domain.Web, error) {
	m.record(keyword, count, opts)
	if m.err != nil {
		return nil, m.err
	}
	var w domain.Web
	if err := json.Unmarshal([]byte(`{
		"GsearchResultClass": "GwebSearch",
		"title": "The <b>Go</b> Programming Language",
		"titleNoFormatting": "The Go Programming Language",
		"content": "Go is an open source programming language.",
		"unescapedUrl": "https://go.dev/",
		"url": "https://go.dev/",
		"visibleUrl": "go.dev"
	}`), &w); err != nil {
		return nil, err
	}
	return []*domain.Web{&w}, nil
}

func (m *mockSearchService) Images(
	_ context.Context, keyword string, count int, opts domain.ImageOptions,
) ([]*domain.Image, error) {
	m.record(keyword, count, opts)
	return nil, m.err
}

func (m *mockSearchService) Local(
	_ context.Context, keyword string, count int, opts domain.LocalOptions,
) ([]*domain.Local, error) {
	m.record(keyword, count, opts)
	return nil, m.err
}

func (m *mockSearchService) Patents(
	_ context.Context, keyword string, count int, opts domain.PatentOptions,
) ([]*domain.Patent, error) {
	m.record(keyword, count, opts)
	return nil, m.err
}

func (m *mockSearchService) Search(
	ctx context.Context, kind domain.Kind, keyword string, count int,
) ([]domain.Item, error) {
	results, err := m.Web(ctx, keyword, count, domain.WebOptions{})
	if err != nil {
		return nil, err
	}
	return domain.ItemsOf(results), nil
}

// mockHistoryService implements driving.HistoryService.
type mockHistoryService struct {
	entries []domain.HistoryEntry
	err     error
	cleared bool
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && limit < len(m.entries) {
		return m.entries[:limit], nil
	}
	return m.entries, nil
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.cleared = true
	m.entries = nil
	return nil
}

// mockSettingsService implements driving.SettingsService over a map.
type mockSettingsService struct {
	values map[string]string
	getErr error
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{values: map[string]string{}}
}

func (m *mockSettingsService) Get() (domain.Settings, error) {
	return domain.DefaultSettings(), m.getErr
}

func (m *mockSettingsService) Keys() []string {
	return []string{"api.key", "api.language", "paging.small"}
}

func (m *mockSettingsService) Value(key string) (string, bool, error) {
	if !m.known(key) {
		return "", false, domain.ErrInvalidArgument
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockSettingsService) Set(key, raw string) error {
	if !m.known(key) {
		return domain.ErrInvalidArgument
	}
	m.values[key] = raw
	return nil
}

func (m *mockSettingsService) SetAPIKey(apiKey string) error {
	m.values["api.key"] = apiKey
	return nil
}

func (m *mockSettingsService) Path() string {
	return "/home/test/.gsearch/config.toml"
}

func (m *mockSettingsService) known(key string) bool {
	for _, k := range m.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

type testServices struct {
	search   *mockSearchService
	history  *mockHistoryService
	settings *mockSettingsService
}

// setupTestServices installs mock services and returns a cleanup function.
func setupTestServices() (*testServices, func()) {
	oldSearch, oldHistory, oldSettings, oldAction, oldWatch :=
		searchService, historyService, settingsService, resultActionService, watchConfig

	ts := &testServices{
		search: &mockSearchService{},
		history: &mockHistoryService{entries: []domain.HistoryEntry{{
			ID:        "h-1",
			Kind:      domain.KindNews,
			Keyword:   "barack obama",
			Requested: 8,
			Returned:  8,
			Backend:   "ajax",
			CreatedAt: time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC),
		}}},
		settings: newMockSettingsService(),
	}
	SetServices(Services{
		Search:   ts.search,
		History:  ts.history,
		Settings: ts.settings,
	})

	return ts, func() {
		searchService, historyService, settingsService, resultActionService, watchConfig =
			oldSearch, oldHistory, oldSettings, oldAction, oldWatch
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "gsearch", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, kind := range domain.AllKinds() {
		assert.True(t, names[kind.String()], "missing %s command", kind)
	}
	for _, name := range []string{"history", "config", "mcp", "tui", "version"} {
		assert.True(t, names[name], "missing %s command", name)
	}
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	defer func() {
		verbose = false
		logger.SetVerbose(false)
	}()

	_, err := execute(t, "--verbose", "version")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestSetServices(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	assert.Equal(t, driving.SearchService(ts.search), searchService)
	assert.Equal(t, driving.HistoryService(ts.history), historyService)
	assert.Equal(t, driving.SettingsService(ts.settings), settingsService)
	assert.Nil(t, resultActionService)
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	_, err := execute(t, "frobnicate")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
