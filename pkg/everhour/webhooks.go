package everhour

import (
	"context"
	"net/http"
)

// Webhook delivers event notifications to an external URL.
type Webhook struct {
	ID           string   `json:"id"`
	TargetURL    string   `json:"targetUrl"`
	Events       []string `json:"events,omitempty"`
	Project      string   `json:"project,omitempty"`
	SecretKey    string   `json:"secretKey,omitempty"`
	Status       string   `json:"status,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
	LastCalledAt string   `json:"lastCalledAt,omitempty"`
}

// WebhookRequest is the mutable subset of a webhook.
type WebhookRequest struct {
	TargetURL string   `json:"targetUrl,omitempty"`
	Events    []string `json:"events,omitempty"`
	Project   string   `json:"project,omitempty"`
}

// ListWebhooks returns the team's webhooks.
func (c *Client) ListWebhooks(ctx context.Context) ([]Webhook, error) {
	u, err := c.buildURL("/hooks", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[[]Webhook](ctx, c, http.MethodGet, u, nil)
}

// CreateWebhook registers a webhook.
func (c *Client) CreateWebhook(ctx context.Context, req *WebhookRequest) (*Webhook, error) {
	u, err := c.buildURL("/hooks", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[*Webhook](ctx, c, http.MethodPost, u, req)
}

// GetWebhook returns a webhook by id.
func (c *Client) GetWebhook(ctx context.Context, hookID string) (*Webhook, error) {
	u, err := c.buildURL("/hooks/{hookId}", PathParams{"hookId": hookID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Webhook](ctx, c, http.MethodGet, u, nil)
}

// UpdateWebhook applies changes to a webhook.
func (c *Client) UpdateWebhook(ctx context.Context, hookID string, req *WebhookRequest) (*Webhook, error) {
	u, err := c.buildURL("/hooks/{hookId}", PathParams{"hookId": hookID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Webhook](ctx, c, http.MethodPut, u, req)
}

// DeleteWebhook removes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, hookID string) error {
	u, err := c.buildURL("/hooks/{hookId}", PathParams{"hookId": hookID}, nil)
	if err != nil {
		return err
	}
	return callNoContent(ctx, c, http.MethodDelete, u, nil)
}
