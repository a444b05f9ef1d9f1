package backend

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
)

// Client talks to the inventory backend's REST API. It holds no state
// beyond the base URL and HTTP client; the bearer token is passed per call
// so one Client serves every session.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a backend client for the given base URL. A zero timeout
// leaves the HTTP client's default in place.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do performs one backend call: builds the request, attaches the bearer
// token when present, decodes the JSON response into out (if non-nil), and
// maps every failure to an *Error describing op.
func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body, out any, op string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindInternal, Op: op, err: fmt.Errorf("encoding request: %w", err)}
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return &Error{Kind: KindInternal, Op: op, err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The body is drained but not parsed: the backend's error
		// payload is not part of the contract.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &Error{
			Kind:   kindForStatus(resp.StatusCode),
			Op:     op,
			Status: resp.StatusCode,
			err:    fmt.Errorf("backend returned %s", resp.Status),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindInternal, Op: op, err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
