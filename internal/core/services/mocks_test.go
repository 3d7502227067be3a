package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
)

// mockFetcher implements every driven fetcher over a fixed result pool.
// Items are decoded from a title-only payload so they behave like wire results.
type mockFetcher struct {
	mu       sync.Mutex
	name     string
	total    int
	caps     domain.PageCaps
	err      error
	requests []domain.PageRequest
	options  []any
}

var (
	_ driven.BookFetcher   = (*mockFetcher)(nil)
	_ driven.NewsFetcher   = (*mockFetcher)(nil)
	_ driven.VideoFetcher  = (*mockFetcher)(nil)
	_ driven.WebFetcher    = (*mockFetcher)(nil)
	_ driven.ImageFetcher  = (*mockFetcher)(nil)
	_ driven.LocalFetcher  = (*mockFetcher)(nil)
	_ driven.PatentFetcher = (*mockFetcher)(nil)
)

func newMockFetcher(total int) *mockFetcher {
	return &mockFetcher{name: "mock", total: total, caps: domain.DefaultPageCaps()}
}

func (m *mockFetcher) Name() string { return m.name }

func (m *mockFetcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// page records the call and returns the titles for the requested page.
func (m *mockFetcher) page(req domain.PageRequest, opts any) ([][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)
	m.options = append(m.options, opts)
	if m.err != nil {
		return nil, m.err
	}

	n := min(m.caps.Cap(req.Size), max(m.total-req.Offset, 0))
	payloads := make([][]byte, n)
	for i := range payloads {
		idx := req.Offset + i
		payloads[i] = fmt.Appendf(nil,
			`{"title":"%s &amp; %d","url":"http://r/%d","patentNumber":"P%d","bookId":"B%d"}`,
			req.Keyword, idx, idx, idx, idx)
	}
	return payloads, nil
}

func fetchAs[T any](m *mockFetcher, req domain.PageRequest, opts any) (domain.Envelope[*T], error) {
	payloads, err := m.page(req, opts)
	if err != nil {
		return domain.Envelope[*T]{}, err
	}

	items := make([]*T, len(payloads))
	for i, p := range payloads {
		item := new(T)
		if err := json.Unmarshal(p, item); err != nil {
			return domain.Envelope[*T]{}, err
		}
		items[i] = item
	}
	return domain.Envelope[*T]{Items: items, Offset: req.Offset, EstimatedTotal: m.total}, nil
}

func (m *mockFetcher) FetchBooks(_ context.Context, req domain.PageRequest, opts domain.BookOptions) (domain.Envelope[*domain.Book], error) {
	return fetchAs[domain.Book](m, req, opts)
}

func (m *mockFetcher) FetchNews(_ context.Context, req domain.PageRequest, opts domain.NewsOptions) (domain.Envelope[*domain.News], error) {
	return fetchAs[domain.News](m, req, opts)
}

func (m *mockFetcher) FetchVideos(_ context.Context, req domain.PageRequest, opts domain.VideoOptions) (domain.Envelope[*domain.Video], error) {
	return fetchAs[domain.Video](m, req, opts)
}

func (m *mockFetcher) FetchWeb(_ context.Context, req domain.PageRequest, opts domain.WebOptions) (domain.Envelope[*domain.Web], error) {
	return fetchAs[domain.Web](m, req, opts)
}

func (m *mockFetcher) FetchImages(_ context.Context, req domain.PageRequest, opts domain.ImageOptions) (domain.Envelope[*domain.Image], error) {
	return fetchAs[domain.Image](m, req, opts)
}

func (m *mockFetcher) FetchLocal(_ context.Context, req domain.PageRequest, opts domain.LocalOptions) (domain.Envelope[*domain.Local], error) {
	return fetchAs[domain.Local](m, req, opts)
}

func (m *mockFetcher) FetchPatents(_ context.Context, req domain.PageRequest, opts domain.PatentOptions) (domain.Envelope[*domain.Patent], error) {
	return fetchAs[domain.Patent](m, req, opts)
}

// allFetchers serves every kind from one mock.
func allFetchers(m *mockFetcher) driven.Fetchers {
	return driven.Fetchers{
		Book:   m,
		News:   m,
		Video:  m,
		Web:    m,
		Image:  m,
		Local:  m,
		Patent: m,
	}
}

// mockHistoryStore implements driven.HistoryStore for testing.
type mockHistoryStore struct {
	mu      sync.Mutex
	entries []domain.HistoryEntry
	saveErr error
}

func (m *mockHistoryStore) Save(_ context.Context, entry domain.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockHistoryStore) List(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.HistoryEntry, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		out = append(out, m.entries[i])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockHistoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

func (m *mockHistoryStore) Close() error { return nil }
