package driven

import (
	"context"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// BookFetcher fetches one page of Book Search results.
type BookFetcher interface {
	FetchBooks(ctx context.Context, req domain.PageRequest, opts domain.BookOptions) (domain.Envelope[*domain.Book], error)
}

// NewsFetcher fetches one page of News Search results.
type NewsFetcher interface {
	FetchNews(ctx context.Context, req domain.PageRequest, opts domain.NewsOptions) (domain.Envelope[*domain.News], error)
}

// VideoFetcher fetches one page of Video Search results.
type VideoFetcher interface {
	FetchVideos(ctx context.Context, req domain.PageRequest, opts domain.VideoOptions) (domain.Envelope[*domain.Video], error)
}

// WebFetcher fetches one page of Web Search results.
type WebFetcher interface {
	FetchWeb(ctx context.Context, req domain.PageRequest, opts domain.WebOptions) (domain.Envelope[*domain.Web], error)
}

// ImageFetcher fetches one page of Image Search results.
type ImageFetcher interface {
	FetchImages(ctx context.Context, req domain.PageRequest, opts domain.ImageOptions) (domain.Envelope[*domain.Image], error)
}

// LocalFetcher fetches one page of Local Search results.
type LocalFetcher interface {
	FetchLocal(ctx context.Context, req domain.PageRequest, opts domain.LocalOptions) (domain.Envelope[*domain.Local], error)
}

// PatentFetcher fetches one page of Patent Search results.
type PatentFetcher interface {
	FetchPatents(ctx context.Context, req domain.PageRequest, opts domain.PatentOptions) (domain.Envelope[*domain.Patent], error)
}

// Fetchers bundles one fetcher per search kind. Backends are free to
// serve several kinds; a nil fetcher disables its kind.
type Fetchers struct {
	Book   BookFetcher
	News   NewsFetcher
	Video  VideoFetcher
	Web    WebFetcher
	Image  ImageFetcher
	Local  LocalFetcher
	Patent PatentFetcher
}
