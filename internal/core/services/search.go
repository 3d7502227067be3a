package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gsearch/internal/core/ports/driving"
	"github.com/custodia-labs/gsearch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs searches of every kind and records them in history.
// Its backends can be swapped with Reconfigure while searches run.
type SearchService struct {
	mu           sync.RWMutex
	set          *searchers
	historyStore driven.HistoryStore
	now          func() time.Time
}

// searchers is one immutable generation of backends and page caps.
type searchers struct {
	fetchers driven.Fetchers
	books    *BookSearcher
	news     *NewsSearcher
	videos   *VideoSearcher
	web      *WebSearcher
	images   *ImageSearcher
	local    *LocalSearcher
	patents  *PatentSearcher
}

// NewSearchService creates a search service over the given fetchers.
// Kinds without a fetcher return domain.ErrNotImplemented.
func NewSearchService(fetchers driven.Fetchers, caps domain.PageCaps) *SearchService {
	return &SearchService{
		set: newSearchers(fetchers, caps),
		now: time.Now,
	}
}

func newSearchers(fetchers driven.Fetchers, caps domain.PageCaps) *searchers {
	set := &searchers{fetchers: fetchers}
	if fetchers.Book != nil {
		set.books = NewBookSearcher(fetchers.Book, caps)
	}
	if fetchers.News != nil {
		set.news = NewNewsSearcher(fetchers.News, caps)
	}
	if fetchers.Video != nil {
		set.videos = NewVideoSearcher(fetchers.Video, caps)
	}
	if fetchers.Web != nil {
		set.web = NewWebSearcher(fetchers.Web, caps)
	}
	if fetchers.Image != nil {
		set.images = NewImageSearcher(fetchers.Image, caps)
	}
	if fetchers.Local != nil {
		set.local = NewLocalSearcher(fetchers.Local, caps)
	}
	if fetchers.Patent != nil {
		set.patents = NewPatentSearcher(fetchers.Patent, caps)
	}
	return set
}

// Reconfigure replaces the backends and page caps. Searches already in
// flight finish on the previous backends.
func (s *SearchService) Reconfigure(fetchers driven.Fetchers, caps domain.PageCaps) {
	set := newSearchers(fetchers, caps)
	s.mu.Lock()
	s.set = set
	s.mu.Unlock()
}

func (s *SearchService) current() *searchers {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set
}

// SetHistoryStore enables recording of successful searches.
func (s *SearchService) SetHistoryStore(store driven.HistoryStore) {
	s.historyStore = store
}

// Books searches Book Search.
func (s *SearchService) Books(
	ctx context.Context, keyword string, count int, opts domain.BookOptions,
) ([]*domain.Book, error) {
	set := s.current()
	if set.books == nil {
		return nil, notConfigured(domain.KindBook)
	}
	results, err := set.books.Search(ctx, keyword, count, opts)
	if err != nil {
		return nil, err
	}
	s.record(ctx, domain.KindBook, set.fetchers.Book, keyword, count, len(results))
	return results, nil
}

// News searches News Search.
func (s *SearchService) News(
	ctx context.Context, keyword string, count int, opts domain.NewsOptions,
) ([]*domain.News, error) {
	set := s.current()
	if set.news == nil {
		return nil, notConfigured(domain.KindNews)
	}
	results, err := set.news.Search(ctx, keyword, count, opts)
	if err != nil {
		return nil, err
	}
	s.record(ctx, domain.KindNews, set.fetchers.News, keyword, count, len(results))
	return results, nil
}

// Videos searches Video Search.
func (s *SearchService) Videos(
	ctx context.Context, keyword string, count int, opts domain.VideoOptions,
) ([]*domain.Video, error) {
	set := s.current()
	if set.videos == nil {
		return nil, notConfigured(domain.KindVideo)
	}
	results, err := set.videos.Search(ctx, keyword, count, opts)
	if err != nil {
		return nil, err
	}
	s.record(ctx, domain.KindVideo, set.fetchers.Video, keyword, count, len(results))
	return results, nil
}

// Web searches Web Search.
func (s *SearchService) Web(
	ctx context.Context, keyword string, count int, opts domain.WebOptions,
) ([]*domain.Web, error) {
	set := s.current()
	if set.web == nil {
		return nil, notConfigured(domain.KindWeb)
	}
	results, err := set.web.Search(ctx, keyword, count, opts)
	if err != nil {
		return nil, err
	}
	s.record(ctx, domain.KindWeb, set.fetchers.Web, keyword, count, len(results))
	return results, nil
}

// Images searches Image Search.
func (s *SearchService) Images(
	ctx context.Context, keyword string, count int, opts domain.ImageOptions,
) ([]*domain.Image, error) {
	set := s.current()
	if set.images == nil {
		return nil, notConfigured(domain.KindImage)
	}
	results, err := set.images.Search(ctx, keyword, count, opts)
	if err != nil {
		return nil, err
	}
	s.record(ctx, domain.KindImage, set.fetchers.Image, keyword, count, len(results))
	return results, nil
}

// Local searches Local Search.
func (s *SearchService) Local(
	ctx context.Context, keyword string, count int, opts domain.LocalOptions,
) ([]*domain.Local, error) {
	set := s.current()
	if set.local == nil {
		return nil, notConfigured(domain.KindLocal)
	}
	results, err := set.local.Search(ctx, keyword, count, opts)
	if err != nil {
		return nil, err
	}
	s.record(ctx, domain.KindLocal, set.fetchers.Local, keyword, count, len(results))
	return results, nil
}

// Patents searches Patent Search.
func (s *SearchService) Patents(
	ctx context.Context, keyword string, count int, opts domain.PatentOptions,
) ([]*domain.Patent, error) {
	set := s.current()
	if set.patents == nil {
		return nil, notConfigured(domain.KindPatent)
	}
	results, err := set.patents.Search(ctx, keyword, count, opts)
	if err != nil {
		return nil, err
	}
	s.record(ctx, domain.KindPatent, set.fetchers.Patent, keyword, count, len(results))
	return results, nil
}

// Search runs an unfiltered search of the given kind.
func (s *SearchService) Search(ctx context.Context, kind domain.Kind, keyword string, count int) ([]domain.Item, error) {
	switch kind {
	case domain.KindBook:
		return items(s.Books(ctx, keyword, count, domain.BookOptions{}))
	case domain.KindNews:
		return items(s.News(ctx, keyword, count, domain.NewsOptions{}))
	case domain.KindVideo:
		return items(s.Videos(ctx, keyword, count, domain.VideoOptions{}))
	case domain.KindWeb:
		return items(s.Web(ctx, keyword, count, domain.WebOptions{}))
	case domain.KindImage:
		return items(s.Images(ctx, keyword, count, domain.ImageOptions{}))
	case domain.KindLocal:
		return items(s.Local(ctx, keyword, count, domain.LocalOptions{}))
	case domain.KindPatent:
		return items(s.Patents(ctx, keyword, count, domain.PatentOptions{}))
	default:
		return nil, fmt.Errorf("%w: kind %q", domain.ErrInvalidArgument, kind)
	}
}

// record saves a completed search. History is best effort: a failure is
// logged and never affects the search result.
func (s *SearchService) record(ctx context.Context, kind domain.Kind, fetcher any, keyword string, requested, returned int) {
	if s.historyStore == nil {
		return
	}

	entry := domain.HistoryEntry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Keyword:   strings.TrimSpace(keyword),
		Requested: requested,
		Returned:  returned,
		Backend:   backendName(fetcher),
		CreatedAt: s.now(),
	}
	if err := s.historyStore.Save(ctx, entry); err != nil {
		logger.Warn("Failed to record search history: %v", err)
	}
}

// backendName returns the name a fetcher reports, if any.
func backendName(fetcher any) string {
	if named, ok := fetcher.(interface{ Name() string }); ok {
		return named.Name()
	}
	return ""
}

func items[T domain.Item](results []T, err error) ([]domain.Item, error) {
	if err != nil {
		return nil, err
	}
	return domain.ItemsOf(results), nil
}

func notConfigured(kind domain.Kind) error {
	return fmt.Errorf("%w: no backend configured for %s search", domain.ErrNotImplemented, kind)
}
