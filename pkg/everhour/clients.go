package everhour

import (
	"context"
	"net/http"
)

// BillingClient is a customer that projects and invoices are billed to.
// Named to avoid clashing with the API client type itself.
type BillingClient struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	BusinessName string   `json:"businessName,omitempty"`
	Address      string   `json:"address,omitempty"`
	Projects     []string `json:"projects,omitempty"`
	PaymentDueDays int    `json:"paymentDueDays,omitempty"`
	Status       string   `json:"status,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
}

// ClientRequest is the mutable subset of a billing client.
type ClientRequest struct {
	Name           string   `json:"name,omitempty"`
	BusinessName   string   `json:"businessName,omitempty"`
	Address        string   `json:"address,omitempty"`
	Projects       []string `json:"projects,omitempty"`
	PaymentDueDays *int     `json:"paymentDueDays,omitempty"`
}

// ListClients returns all billing clients.
func (c *Client) ListClients(ctx context.Context) ([]BillingClient, error) {
	u, err := c.buildURL("/clients", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[[]BillingClient](ctx, c, http.MethodGet, u, nil)
}

// CreateClient registers a new billing client.
func (c *Client) CreateClient(ctx context.Context, req *ClientRequest) (*BillingClient, error) {
	u, err := c.buildURL("/clients", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[*BillingClient](ctx, c, http.MethodPost, u, req)
}

// GetClient returns a billing client by id.
func (c *Client) GetClient(ctx context.Context, clientID int) (*BillingClient, error) {
	u, err := c.buildURL("/clients/{clientId}", PathParams{"clientId": clientID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*BillingClient](ctx, c, http.MethodGet, u, nil)
}

// UpdateClient applies changes to a billing client.
func (c *Client) UpdateClient(ctx context.Context, clientID int, req *ClientRequest) (*BillingClient, error) {
	u, err := c.buildURL("/clients/{clientId}", PathParams{"clientId": clientID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*BillingClient](ctx, c, http.MethodPut, u, req)
}

// DeleteClient removes a billing client.
func (c *Client) DeleteClient(ctx context.Context, clientID int) error {
	u, err := c.buildURL("/clients/{clientId}", PathParams{"clientId": clientID}, nil)
	if err != nil {
		return err
	}
	return callNoContent(ctx, c, http.MethodDelete, u, nil)
}
