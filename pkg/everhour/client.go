package everhour

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tempora-hq/everhour-go/pkg/httpclient"
)

// Package everhour implements a typed client for the Everhour REST API
// (https://api.everhour.com). Every endpoint wrapper composes a URL from a
// path template and dispatches the request through a swappable transport.

const (
	// DefaultBaseURL is the production Everhour API root.
	DefaultBaseURL = "https://api.everhour.com"

	// acceptVersion pins the API contract revision expected by this client.
	acceptVersion = "1.2"

	defaultTimeout = 30 * time.Second
)

// placeholderPattern extracts {name} tokens from path templates.
var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// Client is an Everhour API client. It is safe for concurrent use: the base
// URL and header map are set at construction and never mutated afterwards.
type Client struct {
	baseURL string
	headers map[string]string
	http    httpclient.Client
}

// Option customizes a Client during construction.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests against local servers.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	}
}

// WithHTTPClient injects a custom transport.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout replaces the default transport with a resty client using the
// given timeout. Ignored when combined with WithHTTPClient applied later.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http = httpclient.NewRestyClient(timeout)
	}
}

// NewClient builds a client that authenticates every request with apiKey.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("everhour: api key must not be empty")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		headers: map[string]string{
			"Content-Type":     "application/json",
			"X-Accept-Version": acceptVersion,
			"X-Api-Key":        apiKey,
		},
		http: httpclient.NewRestyClient(defaultTimeout),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c, nil
}

// BaseURL returns the API root all built URLs resolve against.
func (c *Client) BaseURL() string { return c.baseURL }
