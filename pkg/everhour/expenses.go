package everhour

import (
	"context"
	"net/http"
)

// Expense is a non-time cost attributed to a project.
type Expense struct {
	ID          int                 `json:"id"`
	Date        string              `json:"date"`
	User        int                 `json:"user"`
	Project     string              `json:"project,omitempty"`
	Category    int                 `json:"category,omitempty"`
	Amount      int                 `json:"amount"`
	Details     string              `json:"details,omitempty"`
	Billable    bool                `json:"billable,omitempty"`
	Invoiced    bool                `json:"invoiced,omitempty"`
	Attachments []ExpenseAttachment `json:"attachments,omitempty"`
	CreatedAt   string              `json:"createdAt,omitempty"`
}

// ExpenseAttachment is a receipt attached to an expense.
type ExpenseAttachment struct {
	ID       int    `json:"id"`
	FileName string `json:"filename,omitempty"`
	URL      string `json:"url,omitempty"`
}

// ExpenseCategory classifies expenses.
type ExpenseCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ExpenseRequest is the mutable subset of an expense. Amount is in the team
// currency's minor units.
type ExpenseRequest struct {
	Date     string `json:"date,omitempty"`
	User     int    `json:"user,omitempty"`
	Project  string `json:"project,omitempty"`
	Category *int   `json:"category,omitempty"`
	Amount   int    `json:"amount,omitempty"`
	Details  string `json:"details,omitempty"`
	Billable *bool  `json:"billable,omitempty"`
}

// ListExpenses returns expenses, optionally bounded by date.
func (c *Client) ListExpenses(ctx context.Context, timerange *Timerange) ([]Expense, error) {
	q := QueryParams{}
	if timerange != nil {
		if timerange.From != "" {
			q["from"] = timerange.From
		}
		if timerange.To != "" {
			q["to"] = timerange.To
		}
	}

	u, err := c.buildURL("/expenses", nil, q)
	if err != nil {
		return nil, err
	}
	return call[[]Expense](ctx, c, http.MethodGet, u, nil)
}

// CreateExpense records an expense.
func (c *Client) CreateExpense(ctx context.Context, req *ExpenseRequest) (*Expense, error) {
	u, err := c.buildURL("/expenses", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[*Expense](ctx, c, http.MethodPost, u, req)
}

// UpdateExpense applies changes to an expense.
func (c *Client) UpdateExpense(ctx context.Context, expenseID int, req *ExpenseRequest) (*Expense, error) {
	u, err := c.buildURL("/expenses/{expenseId}", PathParams{"expenseId": expenseID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Expense](ctx, c, http.MethodPut, u, req)
}

// DeleteExpense removes an expense.
func (c *Client) DeleteExpense(ctx context.Context, expenseID int) error {
	u, err := c.buildURL("/expenses/{expenseId}", PathParams{"expenseId": expenseID}, nil)
	if err != nil {
		return err
	}
	return callNoContent(ctx, c, http.MethodDelete, u, nil)
}

// ListExpenseCategories returns the team's expense categories.
func (c *Client) ListExpenseCategories(ctx context.Context) ([]ExpenseCategory, error) {
	u, err := c.buildURL("/expenses/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[[]ExpenseCategory](ctx, c, http.MethodGet, u, nil)
}
