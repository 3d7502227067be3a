package domain

import "encoding/json"

// Image is an Image Search result.
type Image struct {
	id         string
	htmlTitle  string
	title      FormattedText
	content    FormattedText
	url        string
	contextURL string
	visibleURL string
	thumbnail  string
	width      int
	height     int
}

type imageWire struct {
	ImageID             string  `json:"imageId"`
	Title               string  `json:"title"`
	TitleNoFormatting   string  `json:"titleNoFormatting"`
	Content             string  `json:"content"`
	ContentNoFormatting string  `json:"contentNoFormatting"`
	UnescapedURL        string  `json:"unescapedUrl"`
	URL                 string  `json:"url"`
	OriginalContextURL  string  `json:"originalContextUrl"`
	VisibleURL          string  `json:"visibleUrl"`
	ThumbnailURL        string  `json:"tbUrl"`
	Width               wireInt `json:"width"`
	Height              wireInt `json:"height"`
}

// UnmarshalJSON decodes a GimageSearch result.
func (i *Image) UnmarshalJSON(data []byte) error {
	var w imageWire
	if err := decodeWire(KindImage, data, &w); err != nil {
		return err
	}

	url := w.UnescapedURL
	if url == "" {
		url = w.URL
	}

	id := w.ImageID
	if id == "" {
		id = url
	}

	*i = Image{
		id:         id,
		htmlTitle:  w.Title,
		title:      preferNoFormatting(w.Title, w.TitleNoFormatting),
		content:    preferNoFormatting(w.Content, w.ContentNoFormatting),
		url:        url,
		contextURL: w.OriginalContextURL,
		visibleURL: w.VisibleURL,
		thumbnail:  w.ThumbnailURL,
		width:      int(w.Width),
		height:     int(w.Height),
	}
	return nil
}

// MarshalJSON renders the plain-text view.
func (i *Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind       Kind   `json:"kind"`
		ID         string `json:"id"`
		Title      string `json:"title"`
		Content    string `json:"content,omitempty"`
		URL        string `json:"url"`
		ContextURL string `json:"context_url,omitempty"`
		Width      int    `json:"width,omitempty"`
		Height     int    `json:"height,omitempty"`
		Thumbnail  string `json:"thumbnail,omitempty"`
	}{KindImage, i.id, i.Title(), i.Content(), i.url, i.contextURL, i.width, i.height, i.thumbnail})
}

// Kind implements Item.
func (i *Image) Kind() Kind { return KindImage }

// ID returns the image id, or the image URL when none was sent.
func (i *Image) ID() string { return i.id }

// Title returns the plain-text title.
func (i *Image) Title() string { return i.title.Plain() }

// HTMLTitle returns the title with markup, as received.
func (i *Image) HTMLTitle() string { return i.htmlTitle }

// Content returns the plain-text caption.
func (i *Image) Content() string { return i.content.Plain() }

// URL implements Item.
func (i *Image) URL() string { return i.url }

// ContextURL returns the page the image appears on.
func (i *Image) ContextURL() string { return i.contextURL }

// VisibleURL returns the shortened host of the context page.
func (i *Image) VisibleURL() string { return i.visibleURL }

// ThumbnailURL returns the thumbnail URL.
func (i *Image) ThumbnailURL() string { return i.thumbnail }

// Width returns the image width in pixels.
func (i *Image) Width() int { return i.width }

// Height returns the image height in pixels.
func (i *Image) Height() int { return i.height }
