package everhour

import (
	"context"
	"net/http"
)

// Project is a tracked body of work, usually synced from an external platform
// (Asana, Basecamp, GitHub, etc.) or native to Everhour ("ev" platform).
type Project struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Platform  string           `json:"platform,omitempty"`
	Type      string           `json:"type,omitempty"`
	Favorite  bool             `json:"favorite,omitempty"`
	Users     []int            `json:"users,omitempty"`
	Client    int              `json:"client,omitempty"`
	Status    string           `json:"status,omitempty"`
	CreatedAt string           `json:"createdAt,omitempty"`
	Budget    *Budget          `json:"budget,omitempty"`
	Billing   *ProjectBilling  `json:"billing,omitempty"`
	Rate      *ProjectRate     `json:"rate,omitempty"`
	Estimate  *ProjectEstimate `json:"estimate,omitempty"`
	Workflow  string           `json:"workflow,omitempty"`
}

// Budget is a money or time cap applied to a project.
type Budget struct {
	Type                       string `json:"type,omitempty"`
	Budget                     int    `json:"budget,omitempty"`
	Period                     string `json:"period,omitempty"`
	AppliedFrom                string `json:"appliedFrom,omitempty"`
	Progress                   int    `json:"progress,omitempty"`
	TimeProgress               int    `json:"timeProgress,omitempty"`
	ExpenseProgress            int    `json:"expenseProgress,omitempty"`
	ExcludedNonBillable        bool   `json:"excludedNonBillable,omitempty"`
	ThresholdNotificationUsers []int  `json:"thresholdNotificationUsers,omitempty"`
}

// ProjectBilling describes how project work is invoiced.
type ProjectBilling struct {
	Type string `json:"type,omitempty"`
	Fee  int    `json:"fee,omitempty"`
}

// ProjectRate describes the billable rate model for a project.
type ProjectRate struct {
	Type      string      `json:"type,omitempty"`
	Rate      int         `json:"rate,omitempty"`
	UserRates map[int]int `json:"userRate,omitempty"`
}

// ProjectEstimate aggregates estimates across project tasks, in seconds.
type ProjectEstimate struct {
	Type  string `json:"type,omitempty"`
	Total int    `json:"total,omitempty"`
}

// ProjectRequest is the mutable subset of a project.
type ProjectRequest struct {
	Name    string          `json:"name,omitempty"`
	Type    string          `json:"type,omitempty"`
	Users   []int           `json:"users,omitempty"`
	Client  *int            `json:"client,omitempty"`
	Budget  *Budget         `json:"budget,omitempty"`
	Billing *ProjectBilling `json:"billing,omitempty"`
	Rate    *ProjectRate    `json:"rate,omitempty"`
}

// ListProjectsOptions filters project listings. Zero values are omitted from
// the query string.
type ListProjectsOptions struct {
	Query    string
	Platform string
	Limit    int
}

// ListProjects returns projects visible to the API key, optionally filtered.
func (c *Client) ListProjects(ctx context.Context, opts *ListProjectsOptions) ([]Project, error) {
	q := QueryParams{}
	if opts != nil {
		if opts.Query != "" {
			q["query"] = opts.Query
		}
		if opts.Platform != "" {
			q["platform"] = opts.Platform
		}
		if opts.Limit > 0 {
			q["limit"] = opts.Limit
		}
	}

	u, err := c.buildURL("/projects", nil, q)
	if err != nil {
		return nil, err
	}
	return call[[]Project](ctx, c, http.MethodGet, u, nil)
}

// CreateProject creates a native project.
func (c *Client) CreateProject(ctx context.Context, req *ProjectRequest) (*Project, error) {
	u, err := c.buildURL("/projects", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[*Project](ctx, c, http.MethodPost, u, req)
}

// GetProject returns a project by id.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	u, err := c.buildURL("/projects/{projectId}", PathParams{"projectId": projectID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Project](ctx, c, http.MethodGet, u, nil)
}

// UpdateProject applies changes to a project.
func (c *Client) UpdateProject(ctx context.Context, projectID string, req *ProjectRequest) (*Project, error) {
	u, err := c.buildURL("/projects/{projectId}", PathParams{"projectId": projectID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Project](ctx, c, http.MethodPut, u, req)
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	u, err := c.buildURL("/projects/{projectId}", PathParams{"projectId": projectID}, nil)
	if err != nil {
		return err
	}
	return callNoContent(ctx, c, http.MethodDelete, u, nil)
}

// GetProjectBudget returns the budget configured for a project.
func (c *Client) GetProjectBudget(ctx context.Context, projectID string) (*Budget, error) {
	u, err := c.buildURL("/projects/{projectId}/budget", PathParams{"projectId": projectID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Budget](ctx, c, http.MethodGet, u, nil)
}

// UpdateProjectBudget replaces the budget configured for a project.
func (c *Client) UpdateProjectBudget(ctx context.Context, projectID string, budget *Budget) (*Budget, error) {
	u, err := c.buildURL("/projects/{projectId}/budget", PathParams{"projectId": projectID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Budget](ctx, c, http.MethodPut, u, budget)
}
