package dim

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. The supplied client is
// shared across all calls, so it must be safe for concurrent use if the
// caller issues requests from multiple goroutines.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithStrictErrors makes transport and HTTP failures surface as errors
// instead of silently collapsing into empty results. Invalid arguments and
// malformed response bodies error in either mode.
func WithStrictErrors() Option {
	return func(c *Client) {
		c.strict = true
	}
}
