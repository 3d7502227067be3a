package books

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	booksapi "google.golang.org/api/books/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/custodia-labs/gsearch/internal/connectors/google"
	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gsearch/internal/logger"
)

// BackendName identifies this backend in errors and history.
const BackendName = "books"

// MaxPageSize is the largest maxResults the Books API accepts.
const MaxPageSize = 40

// Ensure Fetcher implements the interface.
var _ driven.BookFetcher = (*Fetcher)(nil)

// Fetcher fetches book pages from the Books API.
type Fetcher struct {
	svc         *booksapi.Service
	caps        domain.PageCaps
	key         string
	language    string
	rateLimiter *google.RateLimiter
}

// New creates a Fetcher from application settings. Extra client options
// (endpoint overrides in tests) are passed to the API client.
func New(ctx context.Context, s domain.Settings, opts ...option.ClientOption) (*Fetcher, error) {
	svc, err := google.NewBooksService(ctx, google.NewHTTPClient(s.API.TimeoutSeconds), opts...)
	if err != nil {
		return nil, err
	}

	f := NewFetcher(svc, s.Paging)
	f.key = s.API.Key
	f.language = s.API.Language
	f.rateLimiter = google.NewRateLimiterWithConfig(google.ServiceBooks, google.RateLimitFromSettings(google.ServiceBooks, s.RateLimit))
	return f, nil
}

// NewFetcher creates a Fetcher over an existing service with default
// rate limits and no API key.
func NewFetcher(svc *booksapi.Service, caps domain.PageCaps) *Fetcher {
	return &Fetcher{
		svc:         svc,
		caps:        caps,
		rateLimiter: google.NewRateLimiter(google.ServiceBooks),
	}
}

// Name returns the backend name.
func (f *Fetcher) Name() string { return BackendName }

// FetchBooks fetches one page of volumes. Library restriction is not
// offered by the Books API and is ignored.
func (f *Fetcher) FetchBooks(
	ctx context.Context, req domain.PageRequest, opts domain.BookOptions,
) (domain.Envelope[*domain.Book], error) {
	size := min(f.caps.Cap(req.Size), MaxPageSize)
	if size < 1 {
		size = domain.DefaultSmallCap
	}

	call := f.svc.Volumes.List(req.Keyword).
		StartIndex(int64(req.Offset)).
		MaxResults(int64(size)).
		Context(ctx)
	if opts.FullViewOnly {
		call = call.Filter("full")
	}
	if f.language != "" {
		call = call.LangRestrict(f.language)
	}
	if opts.Library != "" {
		logger.Debug("Books API has no library filter, ignoring %q", opts.Library)
	}

	if !f.rateLimiter.Allow() {
		logger.Debug("%s: throttled, waiting for the rate limiter", f.rateLimiter.Service())
		if err := f.rateLimiter.Wait(ctx); err != nil {
			return domain.Envelope[*domain.Book]{}, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	logger.Debug("Books API volumes.list q=%q startIndex=%d maxResults=%d", req.Keyword, req.Offset, size)
	var callOpts []googleapi.CallOption
	if f.key != "" {
		callOpts = append(callOpts, googleapi.QueryParameter("key", f.key))
	}
	volumes, err := call.Do(callOpts...)
	if err != nil {
		if google.IsRateLimited(err) {
			f.rateLimiter.RecordRateLimitError(0)
		}
		return domain.Envelope[*domain.Book]{}, google.WrapError(BackendName, err)
	}

	env := domain.Envelope[*domain.Book]{
		Items:          make([]*domain.Book, 0, len(volumes.Items)),
		Offset:         req.Offset,
		EstimatedTotal: int(volumes.TotalItems),
	}
	// Volumes without metadata still occupy a slot in the result window.
	for _, v := range volumes.Items {
		if v == nil {
			v = &booksapi.Volume{}
		}
		env.Items = append(env.Items, VolumeToBook(v))
	}
	return env, nil
}

// VolumeToBook converts a Books API volume to a Book.
func VolumeToBook(v *booksapi.Volume) *domain.Book {
	info := v.VolumeInfo
	if info == nil {
		info = &booksapi.VolumeVolumeInfo{}
	}

	title := info.Title
	if info.Subtitle != "" {
		title += ": " + info.Subtitle
	}

	thumbnail := ""
	if info.ImageLinks != nil {
		thumbnail = info.ImageLinks.Thumbnail
		if thumbnail == "" {
			thumbnail = info.ImageLinks.SmallThumbnail
		}
	}

	return domain.NewBook(domain.BookFields{
		BookID:        bookID(v.Id, info),
		Title:         title,
		Authors:       strings.Join(info.Authors, ", "),
		Publisher:     info.Publisher,
		PublishedYear: publishedYear(info.PublishedDate),
		PageCount:     int(info.PageCount),
		URL:           info.InfoLink,
		ThumbnailURL:  thumbnail,
	})
}

// bookID prefers ISBN-13, then ISBN-10, then the volume id.
func bookID(volumeID string, info *booksapi.VolumeVolumeInfo) string {
	var isbn10 string
	for _, id := range info.IndustryIdentifiers {
		if id == nil {
			continue
		}
		switch id.Type {
		case "ISBN_13":
			return "ISBN" + id.Identifier
		case "ISBN_10":
			isbn10 = "ISBN" + id.Identifier
		}
	}
	if isbn10 != "" {
		return isbn10
	}
	return volumeID
}

// publishedYear reads the year of a "2006", "2006-01" or "2006-01-02" date.
func publishedYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
