package everhour

import (
	"context"
	"net/http"
)

// Invoice is a bill issued to a client for reported time and expenses.
type Invoice struct {
	ID          int           `json:"id"`
	Number      string        `json:"number,omitempty"`
	Reference   string        `json:"reference,omitempty"`
	Client      int           `json:"client"`
	Status      string        `json:"status,omitempty"`
	Currency    string        `json:"currency,omitempty"`
	Discount    int           `json:"discount,omitempty"`
	Tax         int           `json:"tax,omitempty"`
	Total       int           `json:"total,omitempty"`
	Date        string        `json:"date,omitempty"`
	DueDate     string        `json:"dueDate,omitempty"`
	IssuedAt    string        `json:"issuedAt,omitempty"`
	PaidAt      string        `json:"paidAt,omitempty"`
	CreatedAt   string        `json:"createdAt,omitempty"`
	PublicNotes string        `json:"publicNotes,omitempty"`
	Lines       []InvoiceLine `json:"lines,omitempty"`
}

// Invoice statuses reported by the API.
const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusSent  = "sent"
	InvoiceStatusPaid  = "paid"
)

// InvoiceLine is a single billed item on an invoice.
type InvoiceLine struct {
	ID          int     `json:"id,omitempty"`
	Type        string  `json:"type,omitempty"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity,omitempty"`
	Rate        int     `json:"rate,omitempty"`
	Amount      int     `json:"amount,omitempty"`
	Project     string  `json:"project,omitempty"`
}

// InvoiceRequest is the mutable subset of an invoice.
type InvoiceRequest struct {
	Client      int      `json:"client,omitempty"`
	Reference   string   `json:"reference,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	Discount    *int     `json:"discount,omitempty"`
	Tax         *int     `json:"tax,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
	PublicNotes string   `json:"publicNotes,omitempty"`
	Projects    []string `json:"projects,omitempty"`
	From        string   `json:"from,omitempty"`
	To          string   `json:"to,omitempty"`
}

// ListInvoicesOptions pages and filters invoice listings.
type ListInvoicesOptions struct {
	Query string
	Limit int
	Page  int
}

// ListInvoices returns invoices, newest first.
func (c *Client) ListInvoices(ctx context.Context, opts *ListInvoicesOptions) ([]Invoice, error) {
	q := QueryParams{}
	if opts != nil {
		if opts.Query != "" {
			q["query"] = opts.Query
		}
		if opts.Limit > 0 {
			q["limit"] = opts.Limit
		}
		if opts.Page > 0 {
			q["page"] = opts.Page
		}
	}

	u, err := c.buildURL("/invoices", nil, q)
	if err != nil {
		return nil, err
	}
	return call[[]Invoice](ctx, c, http.MethodGet, u, nil)
}

// CreateInvoice drafts an invoice from the reported time of the named
// projects within the request's date range.
func (c *Client) CreateInvoice(ctx context.Context, req *InvoiceRequest) (*Invoice, error) {
	u, err := c.buildURL("/invoices", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[*Invoice](ctx, c, http.MethodPost, u, req)
}

// GetInvoice returns an invoice by id.
func (c *Client) GetInvoice(ctx context.Context, invoiceID int) (*Invoice, error) {
	u, err := c.buildURL("/invoices/{invoiceId}", PathParams{"invoiceId": invoiceID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Invoice](ctx, c, http.MethodGet, u, nil)
}

// UpdateInvoice applies changes to a draft invoice.
func (c *Client) UpdateInvoice(ctx context.Context, invoiceID int, req *InvoiceRequest) (*Invoice, error) {
	u, err := c.buildURL("/invoices/{invoiceId}", PathParams{"invoiceId": invoiceID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Invoice](ctx, c, http.MethodPut, u, req)
}

// DeleteInvoice removes an invoice.
func (c *Client) DeleteInvoice(ctx context.Context, invoiceID int) error {
	u, err := c.buildURL("/invoices/{invoiceId}", PathParams{"invoiceId": invoiceID}, nil)
	if err != nil {
		return err
	}
	return callNoContent(ctx, c, http.MethodDelete, u, nil)
}

// MarkInvoiceSent transitions an invoice to the sent status.
func (c *Client) MarkInvoiceSent(ctx context.Context, invoiceID int) (*Invoice, error) {
	return c.markInvoice(ctx, invoiceID, "markAsSent")
}

// MarkInvoicePaid transitions an invoice to the paid status.
func (c *Client) MarkInvoicePaid(ctx context.Context, invoiceID int) (*Invoice, error) {
	return c.markInvoice(ctx, invoiceID, "markAsPaid")
}

// MarkInvoiceDraft transitions an invoice back to the draft status.
func (c *Client) MarkInvoiceDraft(ctx context.Context, invoiceID int) (*Invoice, error) {
	return c.markInvoice(ctx, invoiceID, "markAsDraft")
}

func (c *Client) markInvoice(ctx context.Context, invoiceID int, action string) (*Invoice, error) {
	u, err := c.buildURL("/invoices/{invoiceId}/{action}", PathParams{
		"invoiceId": invoiceID,
		"action":    action,
	}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Invoice](ctx, c, http.MethodPut, u, nil)
}
