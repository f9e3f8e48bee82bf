package everhour

import "fmt"

// MissingParameterError reports a path placeholder with no usable value.
// It is returned by the URL builder before any network activity happens.
type MissingParameterError struct {
	Name  string
	Value any
}

func (e *MissingParameterError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("everhour: missing required path parameter %q (absent)", e.Name)
	}
	return fmt.Sprintf("everhour: missing required path parameter %q (got %T)", e.Name, e.Value)
}

// APIError reports a non-2xx response. Body carries the raw response text
// verbatim so callers can inspect validation messages from the service.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("everhour: request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsClientError reports whether the failure is a 4xx response.
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError reports whether the failure is a 5xx response.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}
