package books

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	booksapi "google.golang.org/api/books/v1"
	"google.golang.org/api/option"

	"github.com/custodia-labs/gsearch/internal/connectors/google"
	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/services"
)

const volumesPage = `{
	"kind": "books#volumes",
	"totalItems": 2,
	"items": [
		{
			"kind": "books#volume",
			"id": "SJHvCgAAQBAJ",
			"volumeInfo": {
				"title": "The Go Programming Language",
				"authors": ["Alan A. A. Donovan", "Brian W. Kernighan"],
				"publisher": "Addison-Wesley Professional",
				"publishedDate": "2015-10-26",
				"industryIdentifiers": [
					{"type": "ISBN_10", "identifier": "0134190440"},
					{"type": "ISBN_13", "identifier": "9780134190440"}
				],
				"pageCount": 380,
				"imageLinks": {"smallThumbnail": "http://books.google.com/small", "thumbnail": "http://books.google.com/thumb"},
				"infoLink": "http://books.google.com/books?id=SJHvCgAAQBAJ"
			}
		},
		{
			"kind": "books#volume",
			"id": "xyz",
			"volumeInfo": {
				"title": "Concurrency in Go",
				"subtitle": "Tools and Techniques for Developers",
				"publishedDate": "2017"
			}
		}
	]
}`

type capture struct {
	mu    sync.Mutex
	paths []string
	query []url.Values
}

func (c *capture) last() (string, url.Values) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paths[len(c.paths)-1], c.query[len(c.query)-1]
}

func newTestFetcher(t *testing.T, s domain.Settings, handler http.HandlerFunc) (*Fetcher, *capture) {
	t.Helper()
	c := &capture{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		c.paths = append(c.paths, r.URL.Path)
		c.query = append(c.query, r.URL.Query())
		c.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	f, err := New(context.Background(), s, option.WithEndpoint(server.URL+"/"))
	require.NoError(t, err)
	return f, c
}

func TestFetcher_FetchBooks(t *testing.T) {
	s := domain.DefaultSettings()
	s.API.Key = "secret"
	s.API.Language = "en"

	f, c := newTestFetcher(t, s, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, volumesPage)
	})

	env, err := f.FetchBooks(context.Background(),
		domain.PageRequest{Keyword: "golang", Offset: 8, Size: domain.ResultSizeLarge},
		domain.BookOptions{FullViewOnly: true, Library: "ignored"})

	require.NoError(t, err)
	assert.Equal(t, 2, env.EstimatedTotal)
	assert.Equal(t, 8, env.Offset)
	require.Len(t, env.Items, 2)

	book := env.Items[0]
	assert.Equal(t, "ISBN9780134190440", book.ID())
	assert.Equal(t, "The Go Programming Language", book.Title())
	assert.Equal(t, "Alan A. A. Donovan, Brian W. Kernighan", book.Authors())
	assert.Equal(t, "Addison-Wesley Professional", book.Publisher())
	assert.Equal(t, 2015, book.PublishedYear())
	assert.Equal(t, 380, book.PageCount())
	assert.Equal(t, "http://books.google.com/books?id=SJHvCgAAQBAJ", book.URL())
	assert.Equal(t, "http://books.google.com/thumb", book.ThumbnailURL())

	second := env.Items[1]
	assert.Equal(t, "xyz", second.ID())
	assert.Equal(t, "Concurrency in Go: Tools and Techniques for Developers", second.Title())
	assert.Equal(t, 2017, second.PublishedYear())

	path, q := c.last()
	assert.True(t, strings.HasSuffix(path, "/volumes"), path)
	assert.Equal(t, "golang", q.Get("q"))
	assert.Equal(t, "8", q.Get("startIndex"))
	assert.Equal(t, "8", q.Get("maxResults"))
	assert.Equal(t, "full", q.Get("filter"))
	assert.Equal(t, "en", q.Get("langRestrict"))
	assert.Equal(t, "secret", q.Get("key"))
}

func TestFetcher_SmallTier(t *testing.T) {
	f, c := newTestFetcher(t, domain.DefaultSettings(), func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"kind": "books#volumes", "totalItems": 0}`)
	})

	env, err := f.FetchBooks(context.Background(),
		domain.PageRequest{Keyword: "x", Size: domain.ResultSizeSmall}, domain.BookOptions{})

	require.NoError(t, err)
	assert.Empty(t, env.Items)
	assert.Equal(t, 0, env.EstimatedTotal)

	_, q := c.last()
	assert.Equal(t, "4", q.Get("maxResults"))
	assert.False(t, q.Has("filter"))
	assert.False(t, q.Has("key"))
}

func TestFetcher_APIErrors(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			f, _ := newTestFetcher(t, domain.DefaultSettings(), func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = fmt.Fprintf(w, `{"error": {"code": %d, "message": "Daily Limit Exceeded"}}`, tt.status)
			})

			_, err := f.FetchBooks(context.Background(), domain.PageRequest{Keyword: "x"}, domain.BookOptions{})

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrTransport))
			var te *domain.TransportError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, "books", te.Backend)
			assert.Equal(t, tt.status, te.StatusCode)
			assert.Equal(t, "Daily Limit Exceeded", te.Details)
			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel))
			}
		})
	}
}

func TestFetcher_WithBookSearcher(t *testing.T) {
	const total = 10
	f, _ := newTestFetcher(t, domain.DefaultSettings(), func(w http.ResponseWriter, r *http.Request) {
		var start, size int
		_, _ = fmt.Sscan(r.URL.Query().Get("startIndex"), &start)
		_, _ = fmt.Sscan(r.URL.Query().Get("maxResults"), &size)

		items := make([]string, 0, size)
		for i := start; i < start+size && i < total; i++ {
			items = append(items, fmt.Sprintf(`{"id": "v%d", "volumeInfo": {"title": "Volume %d"}}`, i, i))
		}
		_, _ = fmt.Fprintf(w, `{"totalItems": %d, "items": [%s]}`, total, strings.Join(items, ","))
	})

	results, err := services.NewBookSearcher(f, domain.DefaultPageCaps()).
		Search(context.Background(), "go", 25, domain.BookOptions{})

	require.NoError(t, err)
	require.Len(t, results, total)
	assert.Equal(t, "v0", results[0].ID())
	assert.Equal(t, "Volume 9", results[9].Title())
}

func TestFetcher_KeepsVolumesWithoutInfo(t *testing.T) {
	f, _ := newTestFetcher(t, domain.DefaultSettings(), func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"totalItems": 3, "items": [
			{"id": "a", "volumeInfo": {"title": "A"}},
			{"id": "bare"},
			{"id": "c", "volumeInfo": {"title": "C"}}
		]}`)
	})

	env, err := f.FetchBooks(context.Background(),
		domain.PageRequest{Keyword: "go", Size: domain.ResultSizeSmall}, domain.BookOptions{})

	require.NoError(t, err)
	require.Len(t, env.Items, 3)
	assert.Equal(t, "bare", env.Items[1].ID())
	assert.Equal(t, "", env.Items[1].Title())
	assert.Equal(t, "c", env.Items[2].ID())
}

func TestFetcher_WithBookSearcher_InfolessVolumeKeepsOffsets(t *testing.T) {
	const total = 12
	f, _ := newTestFetcher(t, domain.DefaultSettings(), func(w http.ResponseWriter, r *http.Request) {
		var start, size int
		_, _ = fmt.Sscan(r.URL.Query().Get("startIndex"), &start)
		_, _ = fmt.Sscan(r.URL.Query().Get("maxResults"), &size)

		items := make([]string, 0, size)
		for i := start; i < start+size && i < total; i++ {
			if i == 2 {
				items = append(items, `{"id": "v2"}`)
				continue
			}
			items = append(items, fmt.Sprintf(`{"id": "v%d", "volumeInfo": {"title": "Volume %d"}}`, i, i))
		}
		_, _ = fmt.Fprintf(w, `{"totalItems": %d, "items": [%s]}`, total, strings.Join(items, ","))
	})

	results, err := services.NewBookSearcher(f, domain.DefaultPageCaps()).
		Search(context.Background(), "go", total, domain.BookOptions{})

	require.NoError(t, err)
	require.Len(t, results, total)
	seen := make(map[string]bool)
	for i, b := range results {
		assert.Equal(t, fmt.Sprintf("v%d", i), b.ID())
		assert.False(t, seen[b.ID()], "duplicate %s", b.ID())
		seen[b.ID()] = true
	}
}

func TestVolumeToBook_Minimal(t *testing.T) {
	book := VolumeToBook(&booksapi.Volume{Id: "only-id"})

	assert.Equal(t, "only-id", book.ID())
	assert.Equal(t, "", book.Title())
	assert.Equal(t, 0, book.PublishedYear())

	assert.Equal(t, "", VolumeToBook(&booksapi.Volume{}).ID())
}

func TestBookID_PrefersISBN10OverVolumeID(t *testing.T) {
	v := &booksapi.Volume{
		Id: "vol",
		VolumeInfo: &booksapi.VolumeVolumeInfo{
			IndustryIdentifiers: []*booksapi.VolumeVolumeInfoIndustryIdentifiers{
				{Type: "OTHER", Identifier: "OCLC:1"},
				{Type: "ISBN_10", Identifier: "0134190440"},
			},
		},
	}

	assert.Equal(t, "ISBN0134190440", VolumeToBook(v).ID())
}

func TestPublishedYear(t *testing.T) {
	assert.Equal(t, 2006, publishedYear("2006-01-02"))
	assert.Equal(t, 2006, publishedYear("2006"))
	assert.Equal(t, 0, publishedYear("06"))
	assert.Equal(t, 0, publishedYear("circa 1900"))
}

func TestFetcher_Name(t *testing.T) {
	f := NewFetcher(nil, domain.DefaultPageCaps())
	assert.Equal(t, "books", f.Name())
	assert.Equal(t, google.ServiceBooks, f.rateLimiter.Service())
}
