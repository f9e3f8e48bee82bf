package everhour

import (
	"context"
	"net/http"
)

// Timer is the running (or last stopped) stopwatch of the current user.
type Timer struct {
	Status    string `json:"status"`
	Duration  int    `json:"duration,omitempty"`
	Today     int    `json:"today,omitempty"`
	StartedAt string `json:"startedAt,omitempty"`
	Comment   string `json:"comment,omitempty"`
	User      *User  `json:"user,omitempty"`
	Task      *Task  `json:"task,omitempty"`
}

// Timer statuses reported by the API.
const (
	TimerStatusActive  = "active"
	TimerStatusStopped = "stopped"
)

// StartTimerRequest starts a stopwatch against a task.
type StartTimerRequest struct {
	Task     string `json:"task"`
	Comment  string `json:"comment,omitempty"`
	UserDate string `json:"userDate,omitempty"`
}

// CurrentTimer returns the state of the current user's stopwatch.
func (c *Client) CurrentTimer(ctx context.Context) (*Timer, error) {
	u, err := c.buildURL("/timers/current", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[*Timer](ctx, c, http.MethodGet, u, nil)
}

// StartTimer starts the stopwatch against the task named in the request.
// Any already running timer is stopped first by the service.
func (c *Client) StartTimer(ctx context.Context, req *StartTimerRequest) (*Timer, error) {
	u, err := c.buildURL("/timers", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[*Timer](ctx, c, http.MethodPost, u, req)
}

// StopTimer stops the running stopwatch and returns its final state.
func (c *Client) StopTimer(ctx context.Context) (*Timer, error) {
	u, err := c.buildURL("/timers/current", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[*Timer](ctx, c, http.MethodDelete, u, nil)
}
