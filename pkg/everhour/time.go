package everhour

import (
	"context"
	"net/http"
)

// TimeRecord is a chunk of reported time, in seconds, attributed to a user
// and optionally a task.
type TimeRecord struct {
	ID          int         `json:"id"`
	Date        string      `json:"date"`
	User        int         `json:"user"`
	Time        int         `json:"time"`
	Comment     string      `json:"comment,omitempty"`
	Task        *TaskRef    `json:"task,omitempty"`
	History     []TimeEntry `json:"history,omitempty"`
	LockReasons []string    `json:"lockReasons,omitempty"`
	IsLocked    bool        `json:"isLocked,omitempty"`
	CreatedAt   string      `json:"createdAt,omitempty"`
}

// TaskRef is a task embedded in a time record response.
type TaskRef struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Projects []string `json:"projects,omitempty"`
}

// TimeEntry is a single increment within a time record's history.
type TimeEntry struct {
	ID        int    `json:"id"`
	Action    string `json:"action,omitempty"`
	Time      int    `json:"time,omitempty"`
	Source    string `json:"source,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	CreatedBy int    `json:"createdBy,omitempty"`
}

// TimeRecordRequest identifies and populates a time record. DeleteTimeRecord
// only consults Task, User, and Date.
type TimeRecordRequest struct {
	Time    int    `json:"time,omitempty"`
	Date    string `json:"date,omitempty"`
	User    int    `json:"user,omitempty"`
	Task    string `json:"task,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// ListTimeOptions bounds and pages time record listings. Zero values are
// omitted from the query string.
type ListTimeOptions struct {
	From  string
	To    string
	Limit int
	Page  int
}

func (o *ListTimeOptions) query() QueryParams {
	q := QueryParams{}
	if o == nil {
		return q
	}
	if o.From != "" {
		q["from"] = o.From
	}
	if o.To != "" {
		q["to"] = o.To
	}
	if o.Limit > 0 {
		q["limit"] = o.Limit
	}
	if o.Page > 0 {
		q["page"] = o.Page
	}
	return q
}

// ListTeamTime returns time records across the whole team.
func (c *Client) ListTeamTime(ctx context.Context, opts *ListTimeOptions) ([]TimeRecord, error) {
	u, err := c.buildURL("/team/time", nil, opts.query())
	if err != nil {
		return nil, err
	}
	return call[[]TimeRecord](ctx, c, http.MethodGet, u, nil)
}

// ListUserTime returns time records reported by one team member.
func (c *Client) ListUserTime(ctx context.Context, userID int, opts *ListTimeOptions) ([]TimeRecord, error) {
	u, err := c.buildURL("/users/{userId}/time", PathParams{"userId": userID}, opts.query())
	if err != nil {
		return nil, err
	}
	return call[[]TimeRecord](ctx, c, http.MethodGet, u, nil)
}

// ListProjectTime returns time records reported against one project.
func (c *Client) ListProjectTime(ctx context.Context, projectID string, opts *ListTimeOptions) ([]TimeRecord, error) {
	u, err := c.buildURL("/projects/{projectId}/time", PathParams{"projectId": projectID}, opts.query())
	if err != nil {
		return nil, err
	}
	return call[[]TimeRecord](ctx, c, http.MethodGet, u, nil)
}

// AddTime reports time against the task named in the request.
func (c *Client) AddTime(ctx context.Context, req *TimeRecordRequest) (*TimeRecord, error) {
	u, err := c.buildURL("/time", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[*TimeRecord](ctx, c, http.MethodPost, u, req)
}

// UpdateTime replaces the reported time identified by task, user, and date.
func (c *Client) UpdateTime(ctx context.Context, req *TimeRecordRequest) (*TimeRecord, error) {
	u, err := c.buildURL("/time", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[*TimeRecord](ctx, c, http.MethodPut, u, req)
}

// DeleteTime removes the time record identified by task, user, and date.
// The identifying fields travel in the request body.
func (c *Client) DeleteTime(ctx context.Context, req *TimeRecordRequest) error {
	u, err := c.buildURL("/time", nil, nil)
	if err != nil {
		return err
	}
	return callNoContent(ctx, c, http.MethodDelete, u, req)
}
