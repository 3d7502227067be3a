package ajax

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// response is the status envelope around every page.
type response[E any] struct {
	ResponseData    *responseData[E] `json:"responseData"`
	ResponseDetails *string          `json:"responseDetails"`
	ResponseStatus  json.RawMessage  `json:"responseStatus"`
}

type responseData[E any] struct {
	Results []*E    `json:"results"`
	Cursor  *cursor `json:"cursor"`
}

// cursor carries the paging metadata of a page.
type cursor struct {
	EstimatedResultCount json.RawMessage `json:"estimatedResultCount"`
	CurrentPageIndex     int             `json:"currentPageIndex"`
	MoreResultsURL       string          `json:"moreResultsUrl"`
}

// decodePage turns a response body into an envelope. A non-200
// responseStatus is a *domain.TransportError; anything undecodable is a
// *domain.DecodeError.
func decodePage[E any](body []byte, offset int) (domain.Envelope[*E], error) {
	var resp response[E]
	if err := json.Unmarshal(body, &resp); err != nil {
		var de *domain.DecodeError
		if errors.As(err, &de) {
			return domain.Envelope[*E]{}, err
		}
		return domain.Envelope[*E]{}, &domain.DecodeError{Field: "response", Value: snippet(body), Err: err}
	}

	status, err := parseCount(resp.ResponseStatus)
	if err == nil && status == domain.UnknownTotal {
		err = errors.New("missing")
	}
	if err != nil {
		return domain.Envelope[*E]{}, &domain.DecodeError{Field: "responseStatus", Value: string(resp.ResponseStatus), Err: err}
	}
	if status != 200 {
		details := ""
		if resp.ResponseDetails != nil {
			details = *resp.ResponseDetails
		}
		return domain.Envelope[*E]{}, statusError(status, details)
	}
	if resp.ResponseData == nil {
		return domain.Envelope[*E]{}, &domain.DecodeError{Field: "responseData", Err: errors.New("missing")}
	}

	env := domain.Envelope[*E]{
		Items:          make([]*E, 0, len(resp.ResponseData.Results)),
		Offset:         offset,
		EstimatedTotal: domain.UnknownTotal,
	}
	for _, item := range resp.ResponseData.Results {
		if item != nil {
			env.Items = append(env.Items, item)
		}
	}

	if c := resp.ResponseData.Cursor; c != nil {
		env.MoreResultsURL = c.MoreResultsURL
		if len(c.EstimatedResultCount) > 0 {
			total, err := parseCount(c.EstimatedResultCount)
			if err != nil {
				return domain.Envelope[*E]{}, &domain.DecodeError{
					Field: "cursor.estimatedResultCount", Value: string(c.EstimatedResultCount), Err: err,
				}
			}
			if total >= 0 {
				env.EstimatedTotal = total
			}
		}
	}

	return env, nil
}

// parseCount reads an integer sent as a JSON number or a quoted string.
// Absent and null values are UnknownTotal.
func parseCount(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return domain.UnknownTotal, nil
	}
	s := strings.TrimSpace(strings.Trim(string(raw), `"`))
	if s == "" {
		return domain.UnknownTotal, nil
	}
	return strconv.Atoi(s)
}

// snippet shortens a body for error messages.
func snippet(body []byte) string {
	const limit = 120
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
