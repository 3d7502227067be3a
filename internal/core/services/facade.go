package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gsearch/internal/logger"
)

// search validates the keyword and runs the pagination engine over fetch.
func search[T any](
	ctx context.Context, kind domain.Kind, keyword string, count int, caps domain.PageCaps,
	fetch func(ctx context.Context, req domain.PageRequest) (domain.Envelope[T], error),
) ([]T, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword is required", domain.ErrInvalidArgument)
	}

	logger.Section(kind.Description())
	logger.Debug("Keyword: %q, count: %d", keyword, count)

	results, err := FetchAll(ctx, count, caps, func(ctx context.Context, offset int, size domain.ResultSize) (domain.Envelope[T], error) {
		return fetch(ctx, domain.PageRequest{Keyword: keyword, Offset: offset, Size: size})
	})
	if err != nil {
		return nil, fmt.Errorf("%s search: %w", kind, err)
	}

	logger.Debug("Collected %d %s results", len(results), kind)
	return results, nil
}

// BookSearcher searches books.
type BookSearcher struct {
	fetcher driven.BookFetcher
	caps    domain.PageCaps
}

// NewBookSearcher creates a book searcher over fetcher.
func NewBookSearcher(fetcher driven.BookFetcher, caps domain.PageCaps) *BookSearcher {
	return &BookSearcher{fetcher: fetcher, caps: caps}
}

// Search returns up to count books matching keyword.
func (s *BookSearcher) Search(ctx context.Context, keyword string, count int, opts domain.BookOptions) ([]*domain.Book, error) {
	return search(ctx, domain.KindBook, keyword, count, s.caps,
		func(ctx context.Context, req domain.PageRequest) (domain.Envelope[*domain.Book], error) {
			return s.fetcher.FetchBooks(ctx, req, opts)
		})
}

// NewsSearcher searches news stories.
type NewsSearcher struct {
	fetcher driven.NewsFetcher
	caps    domain.PageCaps
}

// NewNewsSearcher creates a news searcher over fetcher.
func NewNewsSearcher(fetcher driven.NewsFetcher, caps domain.PageCaps) *NewsSearcher {
	return &NewsSearcher{fetcher: fetcher, caps: caps}
}

// Search returns up to count stories matching keyword.
func (s *NewsSearcher) Search(ctx context.Context, keyword string, count int, opts domain.NewsOptions) ([]*domain.News, error) {
	return search(ctx, domain.KindNews, keyword, count, s.caps,
		func(ctx context.Context, req domain.PageRequest) (domain.Envelope[*domain.News], error) {
			return s.fetcher.FetchNews(ctx, req, opts)
		})
}

// VideoSearcher searches videos.
type VideoSearcher struct {
	fetcher driven.VideoFetcher
	caps    domain.PageCaps
}

// NewVideoSearcher creates a video searcher over fetcher.
func NewVideoSearcher(fetcher driven.VideoFetcher, caps domain.PageCaps) *VideoSearcher {
	return &VideoSearcher{fetcher: fetcher, caps: caps}
}

// Search returns up to count videos matching keyword.
func (s *VideoSearcher) Search(ctx context.Context, keyword string, count int, opts domain.VideoOptions) ([]*domain.Video, error) {
	return search(ctx, domain.KindVideo, keyword, count, s.caps,
		func(ctx context.Context, req domain.PageRequest) (domain.Envelope[*domain.Video], error) {
			return s.fetcher.FetchVideos(ctx, req, opts)
		})
}

// WebSearcher searches web pages.
type WebSearcher struct {
	fetcher driven.WebFetcher
	caps    domain.PageCaps
}

// NewWebSearcher creates a web searcher over fetcher.
func NewWebSearcher(fetcher driven.WebFetcher, caps domain.PageCaps) *WebSearcher {
	return &WebSearcher{fetcher: fetcher, caps: caps}
}

// Search returns up to count pages matching keyword.
func (s *WebSearcher) Search(ctx context.Context, keyword string, count int, opts domain.WebOptions) ([]*domain.Web, error) {
	return search(ctx, domain.KindWeb, keyword, count, s.caps,
		func(ctx context.Context, req domain.PageRequest) (domain.Envelope[*domain.Web], error) {
			return s.fetcher.FetchWeb(ctx, req, opts)
		})
}

// ImageSearcher searches images.
type ImageSearcher struct {
	fetcher driven.ImageFetcher
	caps    domain.PageCaps
}

// NewImageSearcher creates an image searcher over fetcher.
func NewImageSearcher(fetcher driven.ImageFetcher, caps domain.PageCaps) *ImageSearcher {
	return &ImageSearcher{fetcher: fetcher, caps: caps}
}

// Search returns up to count images matching keyword.
func (s *ImageSearcher) Search(ctx context.Context, keyword string, count int, opts domain.ImageOptions) ([]*domain.Image, error) {
	return search(ctx, domain.KindImage, keyword, count, s.caps,
		func(ctx context.Context, req domain.PageRequest) (domain.Envelope[*domain.Image], error) {
			return s.fetcher.FetchImages(ctx, req, opts)
		})
}

// LocalSearcher searches local businesses and places.
type LocalSearcher struct {
	fetcher driven.LocalFetcher
	caps    domain.PageCaps
}

// NewLocalSearcher creates a local searcher over fetcher.
func NewLocalSearcher(fetcher driven.LocalFetcher, caps domain.PageCaps) *LocalSearcher {
	return &LocalSearcher{fetcher: fetcher, caps: caps}
}

// Search returns up to count places matching keyword.
func (s *LocalSearcher) Search(ctx context.Context, keyword string, count int, opts domain.LocalOptions) ([]*domain.Local, error) {
	return search(ctx, domain.KindLocal, keyword, count, s.caps,
		func(ctx context.Context, req domain.PageRequest) (domain.Envelope[*domain.Local], error) {
			return s.fetcher.FetchLocal(ctx, req, opts)
		})
}

// PatentSearcher searches patents.
type PatentSearcher struct {
	fetcher driven.PatentFetcher
	caps    domain.PageCaps
}

// NewPatentSearcher creates a patent searcher over fetcher.
func NewPatentSearcher(fetcher driven.PatentFetcher, caps domain.PageCaps) *PatentSearcher {
	return &PatentSearcher{fetcher: fetcher, caps: caps}
}

// Search returns up to count patents matching keyword.
func (s *PatentSearcher) Search(ctx context.Context, keyword string, count int, opts domain.PatentOptions) ([]*domain.Patent, error) {
	return search(ctx, domain.KindPatent, keyword, count, s.caps,
		func(ctx context.Context, req domain.PageRequest) (domain.Envelope[*domain.Patent], error) {
			return s.fetcher.FetchPatents(ctx, req, opts)
		})
}
