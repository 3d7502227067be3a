package logger

import "net/url"

// redacted replaces secret values in logged URLs.
const redacted = "REDACTED"

// RedactURL returns rawURL with the values of the named query parameters
// replaced, so credentials never reach the log. Unparseable URLs are
// returned without their query.
func RedactURL(rawURL string, params ...string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}

	q := u.Query()
	changed := false
	for _, p := range params {
		if q.Has(p) {
			q.Set(p, redacted)
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
