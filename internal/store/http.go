package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/contaflow/contaflow/internal/jsonapi"
)

const apiPrefix = "/api/v1"

// Client talks JSON:API to the ERP backend and satisfies Repository.
// Reads go through the injected cache keyed by request signature;
// mutations invalidate the affected keys after the round-trip. There
// are no optimistic updates: callers see server state only.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache
}

// NewClient creates a backend client. The cache is injected rather than
// ambient so tests and callers control sharing.
func NewClient(baseURL string, timeout time.Duration, cache *Cache) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if cache == nil {
		cache = NewCache()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cache:   cache,
	}
}

// Cache exposes the injected cache, mainly for tests and diagnostics.
func (c *Client) Cache() *Cache {
	return c.cache
}

// cachedGet serves a read from cache when possible, otherwise fetches
// and stores the body under key.
func (c *Client) cachedGet(ctx context.Context, key, path, query string) ([]byte, error) {
	if body, ok := c.cache.Get(key); ok {
		return body, nil
	}

	body, err := c.do(ctx, http.MethodGet, path, query, nil, nil)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, body)
	return body, nil
}

// do performs one HTTP round-trip. Non-2xx statuses map to sentinel
// errors or *APIError; transport errors propagate wrapped.
func (c *Client) do(ctx context.Context, method, path, query string, payload any, headers map[string]string) ([]byte, error) {
	url := c.baseURL + apiPrefix + path
	if query != "" {
		url += "?" + query
	}

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.api+json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/vnd.api+json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	return nil, c.mapError(resp.StatusCode, body)
}

func (c *Client) mapError(status int, body []byte) error {
	detail, title, pointer := firstErrorDetail(body)

	switch status {
	case http.StatusNotFound:
		if detail != "" {
			return fmt.Errorf("%s: %w", detail, ErrNotFound)
		}
		return ErrNotFound
	case http.StatusConflict:
		if detail != "" {
			return fmt.Errorf("%s: %w", detail, ErrConflict)
		}
		return ErrConflict
	default:
		return &APIError{
			StatusCode: status,
			Title:      title,
			Detail:     detail,
			Pointer:    pointer,
		}
	}
}

func firstErrorDetail(body []byte) (detail, title, pointer string) {
	var doc jsonapi.ErrorDocument
	if err := json.Unmarshal(body, &doc); err != nil || len(doc.Errors) == 0 {
		return "", "", ""
	}
	first := doc.Errors[0]
	return first.Detail, first.Title, first.Source.Pointer
}
