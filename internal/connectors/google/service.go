package google

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/books/v1"
	"google.golang.org/api/option"
)

// NewBooksService creates a Books API service on httpClient. API keys are
// sent per call, so the service itself carries no credentials.
func NewBooksService(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*books.Service, error) {
	all := make([]option.ClientOption, 0, len(opts)+1)
	if httpClient != nil {
		all = append(all, option.WithHTTPClient(httpClient))
	} else {
		all = append(all, option.WithoutAuthentication())
	}
	all = append(all, opts...)

	svc, err := books.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("create books service: %w", err)
	}
	return svc, nil
}

// NewHTTPClient returns the HTTP client shared by the search backends.
func NewHTTPClient(timeoutSeconds int) *http.Client {
	client := &http.Client{}
	if timeoutSeconds > 0 {
		client.Timeout = time.Duration(timeoutSeconds) * time.Second
	}
	return client
}
