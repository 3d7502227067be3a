package domain

import "encoding/json"

// Web is a Web Search result.
type Web struct {
	htmlTitle  string
	title      FormattedText
	content    FormattedText
	url        string
	visibleURL string
	cacheURL   string
}

type webWire struct {
	Title             string `json:"title"`
	TitleNoFormatting string `json:"titleNoFormatting"`
	Content           string `json:"content"`
	UnescapedURL      string `json:"unescapedUrl"`
	URL               string `json:"url"`
	VisibleURL        string `json:"visibleUrl"`
	CacheURL          string `json:"cacheUrl"`
}

// UnmarshalJSON decodes a GwebSearch result.
func (w *Web) UnmarshalJSON(data []byte) error {
	var wire webWire
	if err := decodeWire(KindWeb, data, &wire); err != nil {
		return err
	}

	url := wire.UnescapedURL
	if url == "" {
		url = wire.URL
	}

	*w = Web{
		htmlTitle:  wire.Title,
		title:      preferNoFormatting(wire.Title, wire.TitleNoFormatting),
		content:    NewFormattedText(wire.Content),
		url:        url,
		visibleURL: wire.VisibleURL,
		cacheURL:   wire.CacheURL,
	}
	return nil
}

// MarshalJSON renders the plain-text view.
func (w *Web) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind       Kind   `json:"kind"`
		Title      string `json:"title"`
		Content    string `json:"content,omitempty"`
		URL        string `json:"url"`
		VisibleURL string `json:"visible_url,omitempty"`
		CacheURL   string `json:"cache_url,omitempty"`
	}{KindWeb, w.Title(), w.Content(), w.url, w.visibleURL, w.cacheURL})
}

// Kind implements Item.
func (w *Web) Kind() Kind { return KindWeb }

// ID returns the page URL.
func (w *Web) ID() string { return w.url }

// Title returns the plain-text title.
func (w *Web) Title() string { return w.title.Plain() }

// HTMLTitle returns the title with markup, as received.
func (w *Web) HTMLTitle() string { return w.htmlTitle }

// Content returns the plain-text snippet.
func (w *Web) Content() string { return w.content.Plain() }

// URL implements Item.
func (w *Web) URL() string { return w.url }

// VisibleURL returns the shortened display URL (host only).
func (w *Web) VisibleURL() string { return w.visibleURL }

// CacheURL returns the cached copy URL, if any.
func (w *Web) CacheURL() string { return w.cacheURL }
