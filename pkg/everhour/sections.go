package everhour

import (
	"context"
	"net/http"
)

// Section groups tasks inside a project.
type Section struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Project  string `json:"project,omitempty"`
	Status   string `json:"status,omitempty"`
	Position int    `json:"position,omitempty"`
}

// SectionRequest is the mutable subset of a section.
type SectionRequest struct {
	Name     string `json:"name,omitempty"`
	Project  string `json:"project,omitempty"`
	Position *int   `json:"position,omitempty"`
}

// ListSections returns the sections of a project.
func (c *Client) ListSections(ctx context.Context, projectID string) ([]Section, error) {
	u, err := c.buildURL("/projects/{projectId}/sections", PathParams{"projectId": projectID}, nil)
	if err != nil {
		return nil, err
	}
	return call[[]Section](ctx, c, http.MethodGet, u, nil)
}

// CreateSection adds a section to the project named in the request.
func (c *Client) CreateSection(ctx context.Context, req *SectionRequest) (*Section, error) {
	u, err := c.buildURL("/sections", nil, nil)
	if err != nil {
		return nil, err
	}
	return call[*Section](ctx, c, http.MethodPost, u, req)
}

// GetSection returns a section by id.
func (c *Client) GetSection(ctx context.Context, sectionID int) (*Section, error) {
	u, err := c.buildURL("/sections/{sectionId}", PathParams{"sectionId": sectionID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Section](ctx, c, http.MethodGet, u, nil)
}

// UpdateSection applies changes to a section.
func (c *Client) UpdateSection(ctx context.Context, sectionID int, req *SectionRequest) (*Section, error) {
	u, err := c.buildURL("/sections/{sectionId}", PathParams{"sectionId": sectionID}, nil)
	if err != nil {
		return nil, err
	}
	return call[*Section](ctx, c, http.MethodPut, u, req)
}

// DeleteSection removes a section.
func (c *Client) DeleteSection(ctx context.Context, sectionID int) error {
	u, err := c.buildURL("/sections/{sectionId}", PathParams{"sectionId": sectionID}, nil)
	if err != nil {
		return err
	}
	return callNoContent(ctx, c, http.MethodDelete, u, nil)
}
