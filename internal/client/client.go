// Package client implements the RL experience export client: request
// construction, the single bounded fetch against the /rl/export
// endpoint, and JSON output helpers for the CLI.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	// userAgent is the User-Agent header value sent with all API requests.
	userAgent = "rlexport-client/1.0"

	// contentTypeJSON is the Accept header value for export requests.
	contentTypeJSON = "application/json"

	// pathExport is the export endpoint path under the API root.
	pathExport = "/rl/export"
)

// Default export parameters.
const (
	// DefaultLimit is the default maximum number of records per fetch.
	DefaultLimit = 1000

	// DefaultOffset is the default pagination offset.
	DefaultOffset = 0
)

// ExportParams identifies one bounded page of experience records.
type ExportParams struct {
	// SessionID scopes which experiences to export. Expected to be a
	// UUID but passed through opaquely; the server owns validation.
	SessionID string

	// Limit is the maximum number of records requested. Must be positive.
	Limit int

	// Offset is the number of records to skip. Must not be negative.
	Offset int
}

// Validate validates the export parameters.
func (p ExportParams) Validate() error {
	if p.SessionID == "" {
		return errors.New("invalid parameters: session ID cannot be empty")
	}
	if p.Limit <= 0 {
		return fmt.Errorf("invalid parameters: limit must be positive, got %d", p.Limit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("invalid parameters: offset cannot be negative, got %d", p.Offset)
	}
	return nil
}

// Client performs export fetches against the RL feedback API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new export client with the given configuration.
// Returns an error if the configuration is nil or invalid.
func NewClient(config *Config) (*Client, error) {
	return NewClientWithHTTPClient(config, nil)
}

// NewClientWithHTTPClient creates a new export client with the given
// configuration and HTTP client. If httpClient is nil, a default HTTP
// client with the configured timeout is used (a zero timeout leaves the
// request bounded only by the platform).
// Returns an error if the configuration is nil or invalid.
func NewClientWithHTTPClient(config *Config, httpClient *http.Client) (*Client, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		baseURL:    config.BaseURL,
		httpClient: httpClient,
	}, nil
}

// ExportURL returns the fully built request URL for the given
// parameters. Trailing slashes on the base URL are stripped, and the
// query parameters appear in the fixed order sessionId, limit, offset
// with the session ID percent-encoded.
func (c *Client) ExportURL(params ExportParams) string {
	base := strings.TrimRight(c.baseURL, "/")

	// url.Values sorts keys alphabetically on Encode, so the query is
	// assembled by hand to keep the parameter order stable.
	query := "sessionId=" + url.QueryEscape(params.SessionID) +
		"&limit=" + strconv.Itoa(params.Limit) +
		"&offset=" + strconv.Itoa(params.Offset)

	return base + pathExport + "?" + query
}

// FetchExport performs a single GET against the export endpoint and
// returns the decoded JSON response value, whatever shape the service
// returns.
//
// Failures are typed: a *TransportError when the request could not be
// completed or the server answered with a non-2xx status, and a
// *DecodeError when the body is not valid JSON. There are no retries;
// exactly one outbound call is made per invocation.
func (c *Client) FetchExport(ctx context.Context, params ExportParams) (any, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ExportURL(params), nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", contentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return doc, nil
}
