package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	// DefaultTimeout bounds a single attempt, body included.
	DefaultTimeout = 30 * time.Second

	// DefaultRetries is how many times a failed request is retried.
	DefaultRetries = 3

	defaultRetryInterval = 500 * time.Millisecond
)

// maxCatalogSize caps how much of a response body is read.
const maxCatalogSize = 4 << 20

// Client fetches remote catalog documents.
//
// Example usage:
//
//	client := NewClient()
//	data, err := client.Get(ctx, "https://example.com/scales/jazz.yaml")
type Client struct {
	httpClient    *http.Client
	userAgent     string
	retries       int
	retryInterval time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithRetries sets how many times a failed request is retried and the
// first wait between attempts; later waits grow exponentially.
func WithRetries(retries int, initial time.Duration) Option {
	return func(c *Client) {
		c.retries = max(retries, 0)
		c.retryInterval = initial
	}
}

// NewClient creates a new HTTP client with DefaultTimeout, DefaultRetries
// and the "musicscales" User-Agent.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		userAgent:     "musicscales",
		retries:       DefaultRetries,
		retryInterval: defaultRetryInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var errTooLarge = errors.New("response body too large")

// statusError is a non-200 response.
type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.code, e.status)
}

// retryable reports whether another attempt may succeed: transport
// failures and 5xx responses are retried, other statuses are not.
func retryable(err error) bool {
	if errors.Is(err, errTooLarge) {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError
	}
	return true
}

// Get performs a GET request and returns the response body, retrying
// transport failures and 5xx responses with exponential backoff.
//
// Returns an error if:
//   - Every attempt fails
//   - The response status is a non-retryable status other than 200 OK
//   - The body is larger than 4 MiB
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryInterval

	for tries := 0; ; tries++ {
		body, err := c.get(ctx, rawURL)
		if err == nil || tries >= c.retries || !retryable(err) || ctx.Err() != nil {
			return body, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(bo.NextBackOff()):
		}
	}
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxCatalogSize {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", rawURL, errTooLarge, maxCatalogSize)
	}
	return body, nil
}

// IsURL reports whether s is an http or https URL rather than a file path.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// URLPath returns the path component of rawURL, dropping any query or
// fragment, so the document format can be taken from its extension.
func URLPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Path
}
