package everhour

import (
	"context"
	"net/http"
)

// Assignment reserves a user's time for a project over a date span.
type Assignment struct {
	ID        int    `json:"id"`
	User      int    `json:"user"`
	Project   string `json:"project,omitempty"`
	Type      string `json:"type,omitempty"`
	From      string `json:"from"`
	To        string `json:"to"`
	Time      int    `json:"time,omitempty"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// AssignmentRequest is the mutable subset of an assignment. Time is seconds
// per working day within the span.
type AssignmentRequest struct {
	User    int    `json:"user,omitempty"`
	Project string `json:"project,omitempty"`
	Type    string `json:"type,omitempty"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Time    int    `json:"time,omitempty"`
	Note    string `json:"note,omitempty"`
}

// ListAssignments returns schedule assignments overlapping the date span.
func (c *Client) ListAssignments(ctx context.Context, timerange *Timerange) ([]Assignment, error) {
	q := QueryParams{}
	if timerange != nil {
		if timerange.From != "" {
			q["from"] = timerange.From
		}
		if timerange.To != "" {
			q["to"] = timerange.To
		}
	}

	u, err := c.buildURL("/resource-planning/assignments", nil, q)
	if err != nil {
		return nil, err
	}
	return call[[]Assignment](ctx, c, http.MethodGet, u, nil)
}

// CreateAssignment schedules a user on a project.
func (c *Client) CreateAssignment(ctx context.Context, req *AssignmentRequest) (*Assignment, error) {
	u, err := c.buildURL("/resource-planning/assignments", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[*Assignment](ctx, c, http.MethodPost, u, req)
}

// UpdateAssignment applies changes to a schedule assignment.
func (c *Client) UpdateAssignment(ctx context.Context, assignmentID int, req *AssignmentRequest) (*Assignment, error) {
	u, err := c.buildURL("/resource-planning/assignments/{assignmentId}", PathParams{"assignmentId": assignmentID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Assignment](ctx, c, http.MethodPut, u, req)
}

// DeleteAssignment removes a schedule assignment.
func (c *Client) DeleteAssignment(ctx context.Context, assignmentID int) error {
	u, err := c.buildURL("/resource-planning/assignments/{assignmentId}", PathParams{"assignmentId": assignmentID}, nil)
	if err != nil {
		return err
	}
	return callNoContent(ctx, c, http.MethodDelete, u, nil)
}
