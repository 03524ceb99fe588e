package dim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultUserAgent = "dimctl"

// Client talks to a Dim media server's v1 HTTP API.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	strict     bool
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a client and logs in with the given credentials. Construction
// fails if authentication does not succeed; there is no unauthenticated mode.
func New(baseURL, username, password string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingURL
	}
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	// The server mounts everything under /api/v1. Strip at most one
	// trailing slash before appending so double slashes never appear.
	baseURL = strings.TrimSuffix(baseURL, "/")

	client := &Client{
		baseURL:   baseURL + "/api/v1",
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	if err := client.authenticate(context.Background(), username, password); err != nil {
		return nil, fmt.Errorf("failed to connect to Dim: %w", err)
	}

	return client, nil
}

// response is the raw outcome of a single API round trip.
type response struct {
	status int
	body   []byte
}

// ok reports whether the server signalled success (any 2xx status).
func (r *response) ok() bool {
	return r != nil && r.status >= 200 && r.status < 300
}

// do performs one HTTP request against baseURL + "/" + command. The stored
// token rides along as an Authorization header once authentication has run;
// the header carries the raw token with no scheme prefix.
func (c *Client) do(ctx context.Context, method, command string, params url.Values, body any) (*response, error) {
	endpoint := c.baseURL + "/" + command
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("command", command).
		Int("status", resp.StatusCode).
		Msg("Dim API request")

	return &response{status: resp.StatusCode, body: data}, nil
}

func (c *Client) get(ctx context.Context, command string, params url.Values) (*response, error) {
	return c.do(ctx, http.MethodGet, command, params, nil)
}

func (c *Client) post(ctx context.Context, command string, params url.Values, body any) (*response, error) {
	return c.do(ctx, http.MethodPost, command, params, body)
}

func (c *Client) patch(ctx context.Context, command string, params url.Values, body any) (*response, error) {
	return c.do(ctx, http.MethodPatch, command, params, body)
}

func (c *Client) delete(ctx context.Context, command string, params url.Values) (*response, error) {
	return c.do(ctx, http.MethodDelete, command, params, nil)
}

func (c *Client) getJSON(ctx context.Context, command string, params url.Values) (json.RawMessage, error) {
	return c.asJSON(c.get(ctx, command, params))
}

func (c *Client) postJSON(ctx context.Context, command string, params url.Values, body any) (json.RawMessage, error) {
	return c.asJSON(c.post(ctx, command, params, body))
}

func (c *Client) patchJSON(ctx context.Context, command string, params url.Values, body any) (json.RawMessage, error) {
	return c.asJSON(c.patch(ctx, command, params, body))
}

func (c *Client) deleteJSON(ctx context.Context, command string, params url.Values) (json.RawMessage, error) {
	return c.asJSON(c.delete(ctx, command, params))
}

// asJSON applies the compatible failure mode: network errors and non-2xx
// statuses collapse to an empty document. WithStrictErrors surfaces them
// instead.
func (c *Client) asJSON(resp *response, err error) (json.RawMessage, error) {
	if err != nil {
		c.logger.Debug().Err(err).Msg("Dim API request failed")
		if c.strict {
			return nil, err
		}
		return nil, nil
	}
	if !resp.ok() {
		c.logger.Debug().Int("status", resp.status).Msg("Dim API returned non-success status")
		if c.strict {
			return nil, &APIError{StatusCode: resp.status, Body: string(resp.body)}
		}
		return nil, nil
	}
	return json.RawMessage(resp.body), nil
}

// asBool reduces a write response to the truthiness of its status.
func (c *Client) asBool(resp *response, err error) (bool, error) {
	if err != nil {
		c.logger.Debug().Err(err).Msg("Dim API request failed")
		if c.strict {
			return false, err
		}
		return false, nil
	}
	if !resp.ok() {
		c.logger.Debug().Int("status", resp.status).Msg("Dim API returned non-success status")
		if c.strict {
			return false, &APIError{StatusCode: resp.status, Body: string(resp.body)}
		}
		return false, nil
	}
	return true, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// authenticate logs in and stores the session token. The token is set once
// here and never changes for the lifetime of the client. Unlike the regular
// endpoints this always fails loudly: the client is unusable without a token.
func (c *Client) authenticate(ctx context.Context, username, password string) error {
	resp, err := c.post(ctx, "auth/login", nil, loginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}
	if !resp.ok() {
		return fmt.Errorf("%w: status %d", ErrAuthFailed, resp.status)
	}

	var login loginResponse
	if err := json.Unmarshal(resp.body, &login); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}
	if login.Token == "" {
		return ErrAuthFailed
	}

	c.token = login.Token
	return nil
}
