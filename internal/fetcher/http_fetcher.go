package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	_maxImageSize   = 10 << 20
	_userAgent      = "radiod/1.0"
	_defaultTimeout = 10 * time.Second
)

var (
	// ErrTooLarge is returned when a body exceeds the size cap
	ErrTooLarge = errors.New("response body too large")

	// ErrNotImage is returned by FetchImage for non image/* responses
	ErrNotImage = errors.New("response is not an image")
)

// StatusError reports a response other than 200 OK
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// HTTPFetcher downloads catalogs and artwork over HTTP(S)
type HTTPFetcher struct {
	logger *zap.Logger
	client *http.Client
}

// NewHTTPFetcher creates a fetcher whose requests give up after timeout.
// A non-positive timeout falls back to 10s.
func NewHTTPFetcher(logger *zap.Logger, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = _defaultTimeout
	}
	return &HTTPFetcher{
		logger: logger,
		client: &http.Client{Timeout: timeout},
	}
}

// FetchImage downloads at most 10 MiB of image data
func (f *HTTPFetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	return f.fetch(ctx, url, _maxImageSize, func(resp *http.Response) error {
		if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
			return fmt.Errorf("%w: %q", ErrNotImage, ct)
		}
		return nil
	})
}

// FetchDocument downloads a document of any content type
func (f *HTTPFetcher) FetchDocument(ctx context.Context, url string, maxBytes int64) ([]byte, error) {
	return f.fetch(ctx, url, maxBytes, nil)
}

// fetch GETs url, lets accept vet the response headers and reads at most
// limit bytes of body
func (f *HTTPFetcher) fetch(ctx context.Context, url string, limit int64, accept func(*http.Response) error) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", _userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}
	if accept != nil {
		if err := accept(resp); err != nil {
			return nil, err
		}
	}

	// One extra byte tells a body of exactly limit bytes from a longer one
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}

	f.logger.Debug("Fetched",
		zap.String("url", url),
		zap.String("content_type", resp.Header.Get("Content-Type")),
		zap.Int("bytes", len(data)))
	return data, nil
}
