package everhour

import (
	"context"
	"net/http"
)

// Task is a unit of work inside a project.
type Task struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type,omitempty"`
	Status      string         `json:"status,omitempty"`
	URL         string         `json:"url,omitempty"`
	Iteration   string         `json:"iteration,omitempty"`
	Projects    []string       `json:"projects,omitempty"`
	Section     int            `json:"section,omitempty"`
	Labels      []string       `json:"labels,omitempty"`
	Position    int            `json:"position,omitempty"`
	Description string         `json:"description,omitempty"`
	DueOn       string         `json:"dueOn,omitempty"`
	Assignees   []TaskAssignee `json:"assignees,omitempty"`
	Estimate    *TaskEstimate  `json:"estimate,omitempty"`
	Time        *TaskTime      `json:"time,omitempty"`
	CreatedAt   string         `json:"createdAt,omitempty"`
	CompletedAt string         `json:"completedAt,omitempty"`
}

// TaskAssignee links a team member to a task.
type TaskAssignee struct {
	AccountID   int    `json:"accountId,omitempty"`
	AccountName string `json:"accountName,omitempty"`
}

// TaskEstimate is the planned effort for a task, in seconds.
type TaskEstimate struct {
	Type  string      `json:"type,omitempty"`
	Total int         `json:"total,omitempty"`
	Users map[int]int `json:"users,omitempty"`
}

// TaskTime aggregates reported time on a task, in seconds.
type TaskTime struct {
	Total     int         `json:"total"`
	Users     map[int]int `json:"users,omitempty"`
	Timerange *Timerange  `json:"timerange,omitempty"`
}

// Timerange bounds reported time by date (YYYY-MM-DD).
type Timerange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// TaskRequest is the mutable subset of a task.
type TaskRequest struct {
	Name        string   `json:"name,omitempty"`
	Section     *int     `json:"section,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Position    *int     `json:"position,omitempty"`
	Description string   `json:"description,omitempty"`
	DueOn       string   `json:"dueOn,omitempty"`
	Status      string   `json:"status,omitempty"`
	Assignees   []int    `json:"assignees,omitempty"`
}

// EstimateRequest sets the planned effort for a task, in seconds.
type EstimateRequest struct {
	Type  string      `json:"type"`
	Total int         `json:"total,omitempty"`
	Users map[int]int `json:"users,omitempty"`
}

// ListProjectTasks returns the tasks of a project. Set excludeClosed to skip
// completed and cancelled tasks.
func (c *Client) ListProjectTasks(ctx context.Context, projectID string, excludeClosed bool) ([]Task, error) {
	q := QueryParams{}
	if excludeClosed {
		q["excludeClosed"] = true
	}

	u, err := c.buildURL("/projects/{projectId}/tasks", PathParams{"projectId": projectID}, q)
	if err != nil {
		return nil, err
	}
	return call[[]Task](ctx, c, http.MethodGet, u, nil)
}

// CreateTask adds a task to a project.
func (c *Client) CreateTask(ctx context.Context, projectID string, req *TaskRequest) (*Task, error) {
	u, err := c.buildURL("/projects/{projectId}/tasks", PathParams{"projectId": projectID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Task](ctx, c, http.MethodPost, u, req)
}

// GetTask returns a task by id.
func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	u, err := c.buildURL("/tasks/{taskId}", PathParams{"taskId": taskID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Task](ctx, c, http.MethodGet, u, nil)
}

// UpdateTask applies changes to a task.
func (c *Client) UpdateTask(ctx context.Context, taskID string, req *TaskRequest) (*Task, error) {
	u, err := c.buildURL("/tasks/{taskId}", PathParams{"taskId": taskID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Task](ctx, c, http.MethodPut, u, req)
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	u, err := c.buildURL("/tasks/{taskId}", PathParams{"taskId": taskID}, nil)
	if err != nil {
		return err
	}
	return callNoContent(ctx, c, http.MethodDelete, u, nil)
}

// GetTaskTime returns reported time on a task, optionally bounded by date.
func (c *Client) GetTaskTime(ctx context.Context, taskID string, timerange *Timerange) (*TaskTime, error) {
	q := QueryParams{}
	if timerange != nil {
		if timerange.From != "" {
			q["from"] = timerange.From
		}
		if timerange.To != "" {
			q["to"] = timerange.To
		}
	}

	u, err := c.buildURL("/tasks/{taskId}/time", PathParams{"taskId": taskID}, q)
	if err != nil {
		return nil, err
	}
	return call[*TaskTime](ctx, c, http.MethodGet, u, nil)
}

// SetTaskEstimate sets or replaces the estimate on a task.
func (c *Client) SetTaskEstimate(ctx context.Context, taskID string, req *EstimateRequest) (*TaskEstimate, error) {
	u, err := c.buildURL("/tasks/{taskId}/estimate", PathParams{"taskId": taskID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*TaskEstimate](ctx, c, http.MethodPut, u, req)
}

// DeleteTaskEstimate clears the estimate on a task.
func (c *Client) DeleteTaskEstimate(ctx context.Context, taskID string) error {
	u, err := c.buildURL("/tasks/{taskId}/estimate", PathParams{"taskId": taskID}, nil)
	if err != nil {
		return err
	}
	return callNoContent(ctx, c, http.MethodDelete, u, nil)
}
