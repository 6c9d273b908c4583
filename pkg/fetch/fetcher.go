package fetch

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
)

// Fetcher retrieves remote resources by absolute URL.
type Fetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
	FetchText(ctx context.Context, url string) (string, error)
}

var _ Fetcher = (*HTTPFetcher)(nil)

const (
	// DefaultTimeout applies per request
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBodySize caps a single response body (16 MiB)
	DefaultMaxBodySize int64 = 16 << 20

	// DefaultUserAgent is sent with every request
	DefaultUserAgent = "aiassisted"
)

// HTTPFetcher fetches over HTTP(S). Redirects follow the client's policy,
// which for the default client is up to 10 hops.
type HTTPFetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
	logger      zerolog.Logger
}

// Option configures HTTPFetcher.
type Option func(*HTTPFetcher)

// WithHTTPClient sets the HTTP client. If c is nil, the default client is left unchanged.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPFetcher) {
		if c != nil {
			h.client = c
		}
	}
}

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPFetcher) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header. Empty values are ignored.
func WithUserAgent(ua string) Option {
	return func(h *HTTPFetcher) {
		if ua != "" {
			h.userAgent = ua
		}
	}
}

// WithMaxBodySize caps response bodies. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(h *HTTPFetcher) {
		if n > 0 {
			h.maxBodySize = n
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(l zerolog.Logger) Option {
	return func(h *HTTPFetcher) {
		h.logger = l
	}
}

// NewHTTPFetcher creates an HTTPFetcher with a 30s timeout and a 16 MiB body cap.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	h := &HTTPFetcher{
		client:      &http.Client{},
		timeout:     DefaultTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	// copy so a caller supplied client is never mutated
	c := *h.client
	c.Timeout = h.timeout
	h.client = &c
	return h
}

// FetchText fetches url and returns the body as text
func (h *HTTPFetcher) FetchText(ctx context.Context, url string) (string, error) {
	data, err := h.FetchBytes(ctx, url)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FetchBytes fetches url. Any non-2xx status is a FETCH error; a cancelled
// context is a CANCELLED error.
func (h *HTTPFetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFetch, "invalid request for %s", url).
			WithDetail("url", url)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req) // #nosec G107 -- URL is built from the configured source
	if err != nil {
		return nil, h.transportError(ctx, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Newf(errors.ErrFetch, "GET %s: %s", url, resp.Status).
			WithDetail("url", url).
			WithDetail("status", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, h.maxBodySize))
	if err != nil {
		return nil, h.transportError(ctx, url, err)
	}
	// Detect truncation: if more data is available, body exceeded maxBodySize.
	extra := make([]byte, 1)
	if n, _ := resp.Body.Read(extra); n > 0 {
		return nil, errors.Newf(errors.ErrFetch, "response from %s exceeds %d bytes", url, h.maxBodySize).
			WithDetail("url", url).
			WithDetail("limit", h.maxBodySize)
	}

	h.logger.Debug().
		Str("url", url).
		Int("bytes", len(data)).
		Dur("duration", time.Since(start)).
		Msg("Fetched")
	return data, nil
}

func (h *HTTPFetcher) transportError(ctx context.Context, url string, err error) error {
	if stderrors.Is(ctx.Err(), context.Canceled) {
		return errors.Wrapf(ctx.Err(), errors.ErrCancelled, "fetch of %s cancelled", url).
			WithDetail("url", url)
	}
	return errors.Wrapf(err, errors.ErrFetch, "GET %s failed", url).
		WithDetail("url", url)
}
