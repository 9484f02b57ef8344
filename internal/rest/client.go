package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Error is a non-2xx response from a collaborator. The server's payload is
// kept verbatim so callers can surface it to the user instead of
// swallowing it.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Body)
}

// Client wraps http.Client with the base URL and bearer token shared by
// all collaborator clients.
type Client struct {
	hc      *http.Client
	baseURL string
	token   string
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		hc:      &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

// DoJSON issues one request. A nil in sends no body; a nil out discards
// the response. Non-2xx statuses come back as *Error.
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out any) error {
	return c.DoJSONHeaders(ctx, method, path, nil, in, out)
}

// DoJSONHeaders is DoJSON with extra request headers.
func (c *Client) DoJSONHeaders(ctx context.Context, method, path string, headers map[string]string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Body: string(raw)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// UnmarshalList decodes either a bare JSON array or a DRF-style page
// ({"results": [...]}) into out. The backend serves both shapes depending
// on pagination settings.
func UnmarshalList(raw json.RawMessage, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var page struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return err
		}
		if page.Results == nil {
			return fmt.Errorf("expected a list or a paginated result, got an object")
		}
		trimmed = page.Results
	}
	return json.Unmarshal(trimmed, out)
}
