package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// News is a News Search result.
type News struct {
	htmlTitle  string
	title      FormattedText
	content    FormattedText
	publisher  FormattedText
	location   FormattedText
	url        string
	clusterURL string
	language   string
	published  time.Time
}

type newsWire struct {
	Title             string `json:"title"`
	TitleNoFormatting string `json:"titleNoFormatting"`
	UnescapedURL      string `json:"unescapedUrl"`
	URL               string `json:"url"`
	ClusterURL        string `json:"clusterUrl"`
	Content           string `json:"content"`
	Publisher         string `json:"publisher"`
	Location          string `json:"location"`
	PublishedDate     string `json:"publishedDate"`
	Language          string `json:"language"`
}

// UnmarshalJSON decodes a GnewsSearch result.
func (n *News) UnmarshalJSON(data []byte) error {
	var w newsWire
	if err := decodeWire(KindNews, data, &w); err != nil {
		return err
	}

	published, err := ParseDate("news.publishedDate", w.PublishedDate)
	if err != nil {
		return err
	}

	url := w.UnescapedURL
	if url == "" {
		url = w.URL
	}

	*n = News{
		htmlTitle:  w.Title,
		title:      preferNoFormatting(w.Title, w.TitleNoFormatting),
		content:    NewFormattedText(w.Content),
		publisher:  NewFormattedText(w.Publisher),
		location:   NewFormattedText(w.Location),
		url:        url,
		clusterURL: w.ClusterURL,
		language:   w.Language,
		published:  published,
	}
	return nil
}

// MarshalJSON renders the plain-text view.
func (n *News) MarshalJSON() ([]byte, error) {
	var published *time.Time
	if !n.published.IsZero() {
		published = &n.published
	}
	return json.Marshal(struct {
		Kind          Kind       `json:"kind"`
		Title         string     `json:"title"`
		Publisher     string     `json:"publisher,omitempty"`
		Location      string     `json:"location,omitempty"`
		PublishedDate *time.Time `json:"published_date,omitempty"`
		Content       string     `json:"content,omitempty"`
		URL           string     `json:"url"`
		ClusterURL    string     `json:"cluster_url,omitempty"`
		Language      string     `json:"language,omitempty"`
	}{KindNews, n.Title(), n.Publisher(), n.Location(), published, n.Content(), n.url, n.clusterURL, n.language})
}

// String formats the story as "[publisher, location - date]title".
func (n *News) String() string {
	return fmt.Sprintf("[%s, %s - %s]%s",
		n.Publisher(), n.Location(), n.published.Format(time.DateOnly), n.Title())
}

// Kind implements Item.
func (n *News) Kind() Kind { return KindNews }

// ID returns the story URL, the only stable key the service provides.
func (n *News) ID() string { return n.url }

// Title returns the plain-text title.
func (n *News) Title() string { return n.title.Plain() }

// HTMLTitle returns the title with markup, as received.
func (n *News) HTMLTitle() string { return n.htmlTitle }

// Content returns the plain-text story snippet.
func (n *News) Content() string { return n.content.Plain() }

// Publisher returns the plain-text publisher name.
func (n *News) Publisher() string { return n.publisher.Plain() }

// Location returns the plain-text location, most specific first
// ("Edinburgh,Scotland,UK").
func (n *News) Location() string { return n.location.Plain() }

// PublishedDate returns the publication time; zero if absent.
func (n *News) PublishedDate() time.Time { return n.published }

// URL implements Item.
func (n *News) URL() string { return n.url }

// ClusterURL links to related stories.
func (n *News) ClusterURL() string { return n.clusterURL }

// Language returns the story language code.
func (n *News) Language() string { return n.language }
