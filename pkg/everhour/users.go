package everhour

import (
	"context"
	"net/http"
)

// User is a team member account.
type User struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Headline  string          `json:"headline,omitempty"`
	Email     string          `json:"email,omitempty"`
	Role      string          `json:"role,omitempty"`
	Status    string          `json:"status,omitempty"`
	Type      string          `json:"type,omitempty"`
	AvatarURL string          `json:"avatarUrl,omitempty"`
	CreatedAt string          `json:"createdAt,omitempty"`
	Rate      *UserRate       `json:"rate,omitempty"`
	Cost      *UserRate       `json:"cost,omitempty"`
	TimeTrack *UserTimeTrack  `json:"timeTrack,omitempty"`
	Groups    []UserGroup     `json:"groups,omitempty"`
	Budget    *UserTimeBudget `json:"budget,omitempty"`
}

// UserRate is a billable or cost rate in the team currency's minor units.
type UserRate struct {
	Rate  int    `json:"rate"`
	Since string `json:"since,omitempty"`
}

// UserTimeTrack holds per-user time tracking policy flags.
type UserTimeTrack struct {
	AllowTimeWithoutTask bool `json:"allowTimeWithoutTask,omitempty"`
	AllowManualTimeInput bool `json:"allowManualTimeInput,omitempty"`
	AllowFutureTime      bool `json:"allowFutureTime,omitempty"`
}

// UserGroup is a named grouping of team members.
type UserGroup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserTimeBudget caps a user's reported time per period, in seconds.
type UserTimeBudget struct {
	Period string `json:"period,omitempty"`
	Time   int    `json:"time,omitempty"`
}

// Me returns the account associated with the client's API key.
func (c *Client) Me(ctx context.Context) (*User, error) {
	u, err := c.buildURL("/me", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[*User](ctx, c, http.MethodGet, u, nil)
}

// ListUsers returns all members of the team.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	u, err := c.buildURL("/team/users", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[[]User](ctx, c, http.MethodGet, u, nil)
}

// GetUser returns a single team member by id.
func (c *Client) GetUser(ctx context.Context, userID int) (*User, error) {
	u, err := c.buildURL("/team/users/{userId}", PathParams{"userId": userID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*User](ctx, c, http.MethodGet, u, nil)
}
