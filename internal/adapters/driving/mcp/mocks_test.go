package mcp

import (
	"context"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
// Only Search is exercised by the MCP server.
type mockSearchService struct {
	items []domain.Item
	err   error

	gotKind    domain.Kind
	gotKeyword string
	gotCount   int
}

func (m *mockSearchService) Search(
	_ context.Context,
	kind domain.Kind,
	keyword string,
	count int,
) ([]domain.Item, error) {
	m.gotKind = kind
	m.gotKeyword = keyword
	m.gotCount = count
	return m.items, m.err
}

func (m *mockSearchService) Books(
	_ context.Context, _ string, _ int, _ domain.BookOptions,
) ([]*domain.Book, error) {
	return nil, m.err
}

func (m *mockSearchService) News(
	_ context.Context, _ string, _ int, _ domain.NewsOptions,
) ([]*domain.News, error) {
	return nil, m.err
}

func (m *mockSearchService) Videos(
	_ context.Context, _ string, _ int, _ domain.VideoOptions,
) ([]*domain.Video, error) {
	return nil, m.err
}

func (m *mockSearchService) Web(
	_ context.Context, _ string, _ int, _ domain.WebOptions,
) ([]*domain.Web, error) {
	return nil, m.err
}

func (m *mockSearchService) Images(
	_ context.Context, _ string, _ int, _ domain.ImageOptions,
) ([]*domain.Image, error) {
	return nil, m.err
}

func (m *mockSearchService) Local(
	_ context.Context, _ string, _ int, _ domain.LocalOptions,
) ([]*domain.Local, error) {
	return nil, m.err
}

func (m *mockSearchService) Patents(
	_ context.Context, _ string, _ int, _ domain.PatentOptions,
) ([]*domain.Patent, error) {
	return nil, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	entries  []domain.HistoryEntry
	err      error
	gotLimit int
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	m.gotLimit = limit
	return m.entries, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}
