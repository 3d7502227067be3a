package domain

import (
	"encoding/json"
	"time"
)

// PatentStatus filters and describes patent results.
type PatentStatus string

// Patent statuses.
const (
	// PatentStatusAny does not filter.
	PatentStatusAny PatentStatus = ""

	// PatentStatusIssued matches granted patents.
	PatentStatusIssued PatentStatus = "issued"

	// PatentStatusFiled matches filed applications.
	PatentStatusFiled PatentStatus = "filed"
)

// IsValid returns true if the status is recognised.
func (s PatentStatus) IsValid() bool {
	switch s {
	case PatentStatusAny, PatentStatusIssued, PatentStatusFiled:
		return true
	default:
		return false
	}
}

// Patent is a Patent Search result.
type Patent struct {
	number    string
	htmlTitle string
	title     FormattedText
	content   FormattedText
	assignee  FormattedText
	status    PatentStatus
	url       string
	thumbnail string
	applied   time.Time
}

type patentWire struct {
	Title             string `json:"title"`
	TitleNoFormatting string `json:"titleNoFormatting"`
	Content           string `json:"content"`
	UnescapedURL      string `json:"unescapedUrl"`
	URL               string `json:"url"`
	ApplicationDate   string `json:"applicationDate"`
	PatentNumber      string `json:"patentNumber"`
	PatentStatus      string `json:"patentStatus"`
	Assignee          string `json:"assignee"`
	ThumbnailURL      string `json:"tbUrl"`
}

// UnmarshalJSON decodes a GpatentSearch result.
func (p *Patent) UnmarshalJSON(data []byte) error {
	var w patentWire
	if err := decodeWire(KindPatent, data, &w); err != nil {
		return err
	}

	applied, err := ParseDate("patent.applicationDate", w.ApplicationDate)
	if err != nil {
		return err
	}

	url := w.UnescapedURL
	if url == "" {
		url = w.URL
	}

	*p = Patent{
		number:    w.PatentNumber,
		htmlTitle: w.Title,
		title:     preferNoFormatting(w.Title, w.TitleNoFormatting),
		content:   NewFormattedText(w.Content),
		assignee:  NewFormattedText(w.Assignee),
		status:    PatentStatus(w.PatentStatus),
		url:       url,
		thumbnail: w.ThumbnailURL,
		applied:   applied,
	}
	return nil
}

// MarshalJSON renders the plain-text view.
func (p *Patent) MarshalJSON() ([]byte, error) {
	var applied *time.Time
	if !p.applied.IsZero() {
		applied = &p.applied
	}
	return json.Marshal(struct {
		Kind            Kind         `json:"kind"`
		PatentNumber    string       `json:"patent_number"`
		Title           string       `json:"title"`
		Content         string       `json:"content,omitempty"`
		Assignee        string       `json:"assignee,omitempty"`
		Status          PatentStatus `json:"status,omitempty"`
		ApplicationDate *time.Time   `json:"application_date,omitempty"`
		URL             string       `json:"url"`
	}{KindPatent, p.number, p.Title(), p.Content(), p.Assignee(), p.status, applied, p.url})
}

// Kind implements Item.
func (p *Patent) Kind() Kind { return KindPatent }

// ID returns the patent number, or the URL when none was sent.
func (p *Patent) ID() string {
	if p.number != "" {
		return p.number
	}
	return p.url
}

// PatentNumber returns the patent or application number.
func (p *Patent) PatentNumber() string { return p.number }

// Title returns the plain-text title.
func (p *Patent) Title() string { return p.title.Plain() }

// HTMLTitle returns the title with markup, as received.
func (p *Patent) HTMLTitle() string { return p.htmlTitle }

// Content returns the plain-text abstract snippet.
func (p *Patent) Content() string { return p.content.Plain() }

// Assignee returns the plain-text assignee.
func (p *Patent) Assignee() string { return p.assignee.Plain() }

// Status returns issued or filed.
func (p *Patent) Status() PatentStatus { return p.status }

// ApplicationDate returns the filing date; zero if absent.
func (p *Patent) ApplicationDate() time.Time { return p.applied }

// URL implements Item.
func (p *Patent) URL() string { return p.url }

// ThumbnailURL returns the drawing thumbnail URL.
func (p *Patent) ThumbnailURL() string { return p.thumbnail }
