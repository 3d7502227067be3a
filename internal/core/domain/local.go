package domain

import (
	"encoding/json"
	"strings"
)

// PhoneNumber is one listed number of a local result.
type PhoneNumber struct {
	Type   string `json:"type,omitempty"`
	Number string `json:"number"`
}

// Local is a Local Search result.
type Local struct {
	htmlTitle     string
	title         FormattedText
	content       FormattedText
	url           string
	streetAddress string
	city          string
	region        string
	country       string
	addressLines  []string
	phones        []PhoneNumber
	lat           float64
	lng           float64
}

type localWire struct {
	Title             string        `json:"title"`
	TitleNoFormatting string        `json:"titleNoFormatting"`
	Content           string        `json:"content"`
	URL               string        `json:"url"`
	StreetAddress     string        `json:"streetAddress"`
	City              string        `json:"city"`
	Region            string        `json:"region"`
	Country           string        `json:"country"`
	AddressLines      []string      `json:"addressLines"`
	PhoneNumbers      []PhoneNumber `json:"phoneNumbers"`
	Lat               wireFloat     `json:"lat"`
	Lng               wireFloat     `json:"lng"`
}

// UnmarshalJSON decodes a GlocalSearch result.
func (l *Local) UnmarshalJSON(data []byte) error {
	var w localWire
	if err := decodeWire(KindLocal, data, &w); err != nil {
		return err
	}

	*l = Local{
		htmlTitle:     w.Title,
		title:         preferNoFormatting(w.Title, w.TitleNoFormatting),
		content:       NewFormattedText(w.Content),
		url:           w.URL,
		streetAddress: w.StreetAddress,
		city:          w.City,
		region:        w.Region,
		country:       w.Country,
		addressLines:  w.AddressLines,
		phones:        w.PhoneNumbers,
		lat:           float64(w.Lat),
		lng:           float64(w.Lng),
	}
	return nil
}

// MarshalJSON renders the plain-text view.
func (l *Local) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    Kind          `json:"kind"`
		Title   string        `json:"title"`
		Address string        `json:"address,omitempty"`
		City    string        `json:"city,omitempty"`
		Region  string        `json:"region,omitempty"`
		Country string        `json:"country,omitempty"`
		Lat     float64       `json:"lat"`
		Lng     float64       `json:"lng"`
		Phones  []PhoneNumber `json:"phone_numbers,omitempty"`
		URL     string        `json:"url"`
	}{KindLocal, l.Title(), l.Address(), l.city, l.region, l.country, l.lat, l.lng, l.phones, l.url})
}

// Kind implements Item.
func (l *Local) Kind() Kind { return KindLocal }

// ID returns the listing URL.
func (l *Local) ID() string { return l.url }

// Title returns the plain-text business or place name.
func (l *Local) Title() string { return l.title.Plain() }

// HTMLTitle returns the title with markup, as received.
func (l *Local) HTMLTitle() string { return l.htmlTitle }

// Content returns the plain-text description.
func (l *Local) Content() string { return l.content.Plain() }

// URL implements Item.
func (l *Local) URL() string { return l.url }

// StreetAddress returns the street part of the address.
func (l *Local) StreetAddress() string { return l.streetAddress }

// City returns the city.
func (l *Local) City() string { return l.city }

// Region returns the state or region.
func (l *Local) Region() string { return l.region }

// Country returns the country.
func (l *Local) Country() string { return l.country }

// Address returns the full postal address on one line.
func (l *Local) Address() string {
	if len(l.addressLines) > 0 {
		return strings.Join(l.addressLines, ", ")
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{l.streetAddress, l.city, l.region, l.country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// PhoneNumbers returns a copy of the listed numbers.
func (l *Local) PhoneNumbers() []PhoneNumber {
	return append([]PhoneNumber(nil), l.phones...)
}

// Coordinates returns latitude and longitude.
func (l *Local) Coordinates() (lat, lng float64) { return l.lat, l.lng }
