package ajax

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/custodia-labs/gsearch/internal/connectors/google"
	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gsearch/internal/logger"
)

// BackendName identifies this backend in errors and history.
const BackendName = "ajax"

// protocolVersion is the only version the endpoint speaks.
const protocolVersion = "1.0"

// maxBodySize bounds a page response.
const maxBodySize = 4 << 20

// Service paths below the base URL.
const (
	pathBook   = "/books"
	pathNews   = "/news"
	pathVideo  = "/video"
	pathWeb    = "/web"
	pathImage  = "/images"
	pathLocal  = "/local"
	pathPatent = "/patent"
)

// Ensure Client implements every fetcher.
var (
	_ driven.BookFetcher   = (*Client)(nil)
	_ driven.NewsFetcher   = (*Client)(nil)
	_ driven.VideoFetcher  = (*Client)(nil)
	_ driven.WebFetcher    = (*Client)(nil)
	_ driven.ImageFetcher  = (*Client)(nil)
	_ driven.LocalFetcher  = (*Client)(nil)
	_ driven.PatentFetcher = (*Client)(nil)
)

// Config configures a Client.
type Config struct {
	// BaseURL is the service root, e.g. https://ajax.googleapis.com/ajax/services/search.
	BaseURL string

	// Key is the optional API key.
	Key string

	// Referer is sent with every request.
	Referer string

	// Language is the host language (hl), also sent as Accept-Language.
	Language string

	// UserIP is the end user's IP address.
	UserIP string

	// HTTPClient defaults to a client with the default timeout.
	HTTPClient *http.Client

	// RateLimiter defaults to the AJAX service limits.
	RateLimiter *google.RateLimiter
}

// ConfigFromSettings builds a Config from application settings.
func ConfigFromSettings(s domain.Settings) Config {
	return Config{
		BaseURL:     s.API.BaseURL,
		Key:         s.API.Key,
		Referer:     s.API.Referer,
		Language:    s.API.Language,
		UserIP:      s.API.UserIP,
		HTTPClient:  google.NewHTTPClient(s.API.TimeoutSeconds),
		RateLimiter: google.NewRateLimiterWithConfig(google.ServiceAJAX, google.RateLimitFromSettings(google.ServiceAJAX, s.RateLimit)),
	}
}

// Client fetches result pages from the AJAX Search endpoint.
// It is safe for concurrent use.
type Client struct {
	base        string
	key         string
	referer     string
	language    string
	userIP      string
	http        *http.Client
	rateLimiter *google.RateLimiter
}

// NewClient creates a new AJAX Search client.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = domain.DefaultBaseURL
	}
	referer := cfg.Referer
	if referer == "" {
		referer = domain.DefaultReferer
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = google.NewHTTPClient(domain.DefaultTimeoutSeconds)
	}
	limiter := cfg.RateLimiter
	if limiter == nil {
		limiter = google.NewRateLimiter(google.ServiceAJAX)
	}

	return &Client{
		base:        strings.TrimRight(base, "/"),
		key:         cfg.Key,
		referer:     referer,
		language:    cfg.Language,
		userIP:      cfg.UserIP,
		http:        httpClient,
		rateLimiter: limiter,
	}
}

// Name returns the backend name.
func (c *Client) Name() string { return BackendName }

// FetchBooks fetches one page of Book Search results.
func (c *Client) FetchBooks(
	ctx context.Context, req domain.PageRequest, opts domain.BookOptions,
) (domain.Envelope[*domain.Book], error) {
	params := url.Values{}
	if opts.FullViewOnly {
		params.Set("as_brr", "1")
	}
	setIf(params, "as_list", opts.Library)
	return fetchPage[domain.Book](ctx, c, pathBook, req, params)
}

// FetchNews fetches one page of News Search results.
func (c *Client) FetchNews(
	ctx context.Context, req domain.PageRequest, opts domain.NewsOptions,
) (domain.Envelope[*domain.News], error) {
	params := url.Values{}
	setSort(params, opts.SortBy)
	setIf(params, "ned", opts.Edition)
	setIf(params, "topic", opts.Topic)
	setIf(params, "geo", opts.Location)
	return fetchPage[domain.News](ctx, c, pathNews, req, params)
}

// FetchVideos fetches one page of Video Search results.
func (c *Client) FetchVideos(
	ctx context.Context, req domain.PageRequest, opts domain.VideoOptions,
) (domain.Envelope[*domain.Video], error) {
	params := url.Values{}
	setSort(params, opts.SortBy)
	return fetchPage[domain.Video](ctx, c, pathVideo, req, params)
}

// FetchWeb fetches one page of Web Search results.
func (c *Client) FetchWeb(
	ctx context.Context, req domain.PageRequest, opts domain.WebOptions,
) (domain.Envelope[*domain.Web], error) {
	params := url.Values{}
	setIf(params, "safe", string(opts.SafeSearch))
	setIf(params, "lr", opts.Language)
	setIf(params, "as_sitesearch", opts.Site)
	return fetchPage[domain.Web](ctx, c, pathWeb, req, params)
}

// FetchImages fetches one page of Image Search results.
func (c *Client) FetchImages(
	ctx context.Context, req domain.PageRequest, opts domain.ImageOptions,
) (domain.Envelope[*domain.Image], error) {
	params := url.Values{}
	setIf(params, "safe", string(opts.SafeSearch))
	setIf(params, "imgsz", opts.Size)
	setIf(params, "imgc", opts.Color)
	setIf(params, "imgtype", opts.Type)
	setIf(params, "as_filetype", opts.FileType)
	setIf(params, "as_sitesearch", opts.Site)
	return fetchPage[domain.Image](ctx, c, pathImage, req, params)
}

// FetchLocal fetches one page of Local Search results.
func (c *Client) FetchLocal(
	ctx context.Context, req domain.PageRequest, opts domain.LocalOptions,
) (domain.Envelope[*domain.Local], error) {
	params := url.Values{}
	setIf(params, "sll", opts.Center)
	setIf(params, "mrt", opts.ResultType)
	return fetchPage[domain.Local](ctx, c, pathLocal, req, params)
}

// FetchPatents fetches one page of Patent Search results.
func (c *Client) FetchPatents(
	ctx context.Context, req domain.PageRequest, opts domain.PatentOptions,
) (domain.Envelope[*domain.Patent], error) {
	params := url.Values{}
	setSort(params, opts.SortBy)
	switch opts.Status {
	case domain.PatentStatusIssued:
		params.Set("as_psrg", "1")
	case domain.PatentStatusFiled:
		params.Set("as_psra", "1")
	}
	return fetchPage[domain.Patent](ctx, c, pathPatent, req, params)
}

// fetchPage requests one page from path and decodes it.
func fetchPage[E any](
	ctx context.Context, c *Client, path string, req domain.PageRequest, params url.Values,
) (domain.Envelope[*E], error) {
	body, err := c.get(ctx, path, req, params)
	if err != nil {
		return domain.Envelope[*E]{}, err
	}
	return decodePage[E](body, req.Offset)
}

// get performs the HTTP round trip and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, path string, req domain.PageRequest, params url.Values) ([]byte, error) {
	params.Set("v", protocolVersion)
	params.Set("q", req.Keyword)
	if req.Size.IsValid() {
		params.Set("rsz", req.Size.String())
	}
	params.Set("start", strconv.Itoa(req.Offset))
	setIf(params, "key", c.key)
	setIf(params, "hl", c.language)
	setIf(params, "userip", c.userIP)

	endpoint := c.base + path + "?" + params.Encode()
	logger.Debug("GET %s", logger.RedactURL(endpoint, "key", "userip"))

	if !c.rateLimiter.Allow() {
		logger.Debug("%s: throttled, waiting for the rate limiter", c.rateLimiter.Service())
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Referer", c.referer)
	httpReq.Header.Set("Accept", "application/json")
	if c.language != "" {
		httpReq.Header.Set("Accept-Language", c.language)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &domain.TransportError{Backend: BackendName, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &domain.TransportError{Backend: BackendName, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
			c.rateLimiter.RecordRateLimitError(retryAfter)
		}
		details := http.StatusText(resp.StatusCode)
		if s := snippet(body); s != "" {
			details = s
		}
		return nil, statusError(resp.StatusCode, details)
	}

	return body, nil
}

// statusError builds the transport error for a failed HTTP or envelope status.
func statusError(code int, details string) error {
	return &domain.TransportError{
		Backend:    BackendName,
		StatusCode: code,
		Details:    details,
		Err:        google.StatusError(code),
	}
}

func setIf(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func setSort(params url.Values, order domain.SortOrder) {
	if order == domain.SortByDate {
		params.Set("scoring", "d")
	}
}
