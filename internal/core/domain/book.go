package domain

import "encoding/json"

// BookFields carries the raw values of a book result. Backends that do
// not speak the AJAX wire format build books from it with NewBook.
type BookFields struct {
	BookID        string
	Title         string
	Authors       string
	Publisher     string
	PublishedYear int
	PageCount     int
	URL           string
	ThumbnailURL  string
}

// Book is a Book Search result.
type Book struct {
	id        string
	htmlTitle string
	title     FormattedText
	authors   FormattedText
	publisher FormattedText
	year      int
	pages     int
	url       string
	thumbnail string
}

// NewBook builds a Book from raw field values.
func NewBook(f BookFields) *Book {
	return &Book{
		id:        f.BookID,
		htmlTitle: f.Title,
		title:     NewFormattedText(f.Title),
		authors:   NewFormattedText(f.Authors),
		publisher: NewFormattedText(f.Publisher),
		year:      f.PublishedYear,
		pages:     f.PageCount,
		url:       f.URL,
		thumbnail: f.ThumbnailURL,
	}
}

type bookWire struct {
	Title             string  `json:"title"`
	TitleNoFormatting string  `json:"titleNoFormatting"`
	UnescapedURL      string  `json:"unescapedUrl"`
	URL               string  `json:"url"`
	Authors           string  `json:"authors"`
	Publisher         string  `json:"publisher"`
	BookID            string  `json:"bookId"`
	PublishedYear     wireInt `json:"publishedYear"`
	PageCount         wireInt `json:"pageCount"`
	ThumbnailURL      string  `json:"tbUrl"`
}

// UnmarshalJSON decodes a GbookSearch result.
func (b *Book) UnmarshalJSON(data []byte) error {
	var w bookWire
	if err := decodeWire(KindBook, data, &w); err != nil {
		return err
	}

	url := w.UnescapedURL
	if url == "" {
		url = w.URL
	}

	*b = Book{
		id:        w.BookID,
		htmlTitle: w.Title,
		title:     preferNoFormatting(w.Title, w.TitleNoFormatting),
		authors:   NewFormattedText(w.Authors),
		publisher: NewFormattedText(w.Publisher),
		year:      int(w.PublishedYear),
		pages:     int(w.PageCount),
		url:       url,
		thumbnail: w.ThumbnailURL,
	}
	return nil
}

// MarshalJSON renders the plain-text view.
func (b *Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind          Kind   `json:"kind"`
		ID            string `json:"id"`
		Title         string `json:"title"`
		Authors       string `json:"authors,omitempty"`
		Publisher     string `json:"publisher,omitempty"`
		PublishedYear int    `json:"published_year,omitempty"`
		PageCount     int    `json:"page_count,omitempty"`
		URL           string `json:"url"`
		Thumbnail     string `json:"thumbnail,omitempty"`
	}{KindBook, b.id, b.Title(), b.Authors(), b.Publisher(), b.year, b.pages, b.url, b.thumbnail})
}

// Kind implements Item.
func (b *Book) Kind() Kind { return KindBook }

// ID returns the book id (typically an ISBN).
func (b *Book) ID() string { return b.id }

// BookID is an alias of ID.
func (b *Book) BookID() string { return b.id }

// Title returns the plain-text title.
func (b *Book) Title() string { return b.title.Plain() }

// HTMLTitle returns the title with markup, as received.
func (b *Book) HTMLTitle() string { return b.htmlTitle }

// Authors returns the plain-text author list.
func (b *Book) Authors() string { return b.authors.Plain() }

// Publisher returns the plain-text publisher.
func (b *Book) Publisher() string { return b.publisher.Plain() }

// PublishedYear returns the year of publication, 0 if unknown.
func (b *Book) PublishedYear() int { return b.year }

// PageCount returns the page count, 0 if unknown.
func (b *Book) PageCount() int { return b.pages }

// URL implements Item.
func (b *Book) URL() string { return b.url }

// ThumbnailURL returns the cover thumbnail URL.
func (b *Book) ThumbnailURL() string { return b.thumbnail }
