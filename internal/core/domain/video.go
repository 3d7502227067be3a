package domain

import (
	"encoding/json"
	"time"
)

// Video is a Video Search result.
type Video struct {
	htmlTitle string
	title     FormattedText
	content   FormattedText
	url       string
	playURL   string
	thumbnail string
	publisher string
	author    string
	videoType string
	published time.Time
	duration  time.Duration
	views     int
	rating    float64
}

type videoWire struct {
	Title             string    `json:"title"`
	TitleNoFormatting string    `json:"titleNoFormatting"`
	Content           string    `json:"content"`
	URL               string    `json:"url"`
	PlayURL           string    `json:"playUrl"`
	ThumbnailURL      string    `json:"tbUrl"`
	Published         string    `json:"published"`
	Publisher         string    `json:"publisher"`
	Author            string    `json:"author"`
	Duration          wireInt   `json:"duration"`
	ViewCount         wireInt   `json:"viewCount"`
	Rating            wireFloat `json:"rating"`
	VideoType         string    `json:"videoType"`
}

// UnmarshalJSON decodes a GvideoSearch result.
func (v *Video) UnmarshalJSON(data []byte) error {
	var w videoWire
	if err := decodeWire(KindVideo, data, &w); err != nil {
		return err
	}

	published, err := ParseDate("video.published", w.Published)
	if err != nil {
		return err
	}

	*v = Video{
		htmlTitle: w.Title,
		title:     preferNoFormatting(w.Title, w.TitleNoFormatting),
		content:   NewFormattedText(w.Content),
		url:       w.URL,
		playURL:   w.PlayURL,
		thumbnail: w.ThumbnailURL,
		publisher: w.Publisher,
		author:    w.Author,
		videoType: w.VideoType,
		published: published,
		duration:  time.Duration(w.Duration) * time.Second,
		views:     int(w.ViewCount),
		rating:    float64(w.Rating),
	}
	return nil
}

// MarshalJSON renders the plain-text view.
func (v *Video) MarshalJSON() ([]byte, error) {
	var published *time.Time
	if !v.published.IsZero() {
		published = &v.published
	}
	return json.Marshal(struct {
		Kind      Kind       `json:"kind"`
		Title     string     `json:"title"`
		Content   string     `json:"content,omitempty"`
		URL       string     `json:"url"`
		PlayURL   string     `json:"play_url,omitempty"`
		Publisher string     `json:"publisher,omitempty"`
		Author    string     `json:"author,omitempty"`
		Published *time.Time `json:"published,omitempty"`
		DurationS int        `json:"duration_seconds,omitempty"`
		ViewCount int        `json:"view_count,omitempty"`
		Rating    float64    `json:"rating,omitempty"`
		VideoType string     `json:"video_type,omitempty"`
		Thumbnail string     `json:"thumbnail,omitempty"`
	}{
		KindVideo, v.Title(), v.Content(), v.url, v.playURL, v.publisher, v.author,
		published, int(v.duration / time.Second), v.views, v.rating, v.videoType, v.thumbnail,
	})
}

// Kind implements Item.
func (v *Video) Kind() Kind { return KindVideo }

// ID returns the video URL.
func (v *Video) ID() string { return v.url }

// Title returns the plain-text title.
func (v *Video) Title() string { return v.title.Plain() }

// HTMLTitle returns the title with markup, as received.
func (v *Video) HTMLTitle() string { return v.htmlTitle }

// Content returns the plain-text description snippet.
func (v *Video) Content() string { return v.content.Plain() }

// URL implements Item.
func (v *Video) URL() string { return v.url }

// PlayURL returns the embeddable player URL.
func (v *Video) PlayURL() string { return v.playURL }

// ThumbnailURL returns the still image URL.
func (v *Video) ThumbnailURL() string { return v.thumbnail }

// Publisher returns the hosting site.
func (v *Video) Publisher() string { return v.publisher }

// Author returns the uploader.
func (v *Video) Author() string { return v.author }

// VideoType returns the provider type (e.g. "YouTube").
func (v *Video) VideoType() string { return v.videoType }

// Published returns the upload time; zero if absent.
func (v *Video) Published() time.Time { return v.published }

// Duration returns the running time.
func (v *Video) Duration() time.Duration { return v.duration }

// ViewCount returns the number of views.
func (v *Video) ViewCount() int { return v.views }

// Rating returns the average rating.
func (v *Video) Rating() float64 { return v.rating }
