package everhour

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// do issues a single request and returns the raw response body. Non-nil
// payloads are serialized as the JSON request body. A status outside
// [200, 300) yields an *APIError carrying the status and the raw body text.
// Exactly one round trip per call: no retries, no caching.
func (c *Client) do(ctx context.Context, method, url string, payload any) ([]byte, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("everhour: marshal request payload: %w", err)
		}
	}

	resp, err := c.http.Do(ctx, method, url, c.headers, body)
	if err != nil {
		return nil, fmt.Errorf("everhour: %s %s: %w", method, url, err)
	}

	if status := resp.StatusCode(); status < 200 || status >= 300 {
		return nil, &APIError{
			StatusCode: status,
			Body:       strings.TrimSpace(string(resp.Body())),
		}
	}

	return resp.Body(), nil
}

// call dispatches a request and decodes the JSON response body into T. The
// declared type is trusted, not verified at runtime.
func call[T any](ctx context.Context, c *Client, method, url string, payload any) (T, error) {
	var out T

	body, err := c.do(ctx, method, url, payload)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("everhour: decode response body: %w", err)
	}
	return out, nil
}

// callNoContent dispatches a request whose response body is irrelevant.
func callNoContent(ctx context.Context, c *Client, method, url string, payload any) error {
	_, err := c.do(ctx, method, url, payload)
	return err
}
