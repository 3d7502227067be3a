package domain

import (
	"bytes"
	"strconv"
	"strings"
	"time"
)

// wireInt decodes integers the endpoint sends either as JSON numbers
// or as quoted strings ("256"). Empty and null decode to zero.
type wireInt int

func (n *wireInt) UnmarshalJSON(data []byte) error {
	s := wireScalar(data)
	if s == "" {
		*n = 0
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return &DecodeError{Value: s, Err: err}
		}
		v = int(f)
	}

	*n = wireInt(v)
	return nil
}

// wireFloat is the float counterpart of wireInt.
type wireFloat float64

func (f *wireFloat) UnmarshalJSON(data []byte) error {
	s := wireScalar(data)
	if s == "" {
		*f = 0
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &DecodeError{Value: s, Err: err}
	}

	*f = wireFloat(v)
	return nil
}

// wireScalar strips quotes and maps null to the empty string.
func wireScalar(data []byte) string {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return ""
	}
	return strings.TrimSpace(strings.Trim(string(data), `"`))
}

// dateLayouts are the RFC-822 style layouts the endpoint uses.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// ParseDate parses a wire date. An empty value is absent and yields the
// zero time; a malformed value is a *DecodeError naming field.
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	return time.Time{}, &DecodeError{Field: field, Value: value, Err: firstErr}
}

// fieldError attaches a field name to a *DecodeError from a nested decoder.
func fieldError(field string, err error) error {
	if de, ok := err.(*DecodeError); ok && de.Field == "" {
		return &DecodeError{Field: field, Value: de.Value, Err: de.Err}
	}
	return err
}
