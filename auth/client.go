package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/go-oauth-client/oauthmodel"
	"github.com/pkg/errors"
)

const defaultRequestTimeout = 10 * time.Second

// Client performs OAuth2 authorization and token requests against a single
// authorization server. A Client is immutable after construction and safe
// for concurrent use.
type Client struct {
	config        oauthmodel.ClientConfig
	httpClient    *http.Client
	serviceGrants map[string]oauthmodel.GrantBuilder
}

// ClientOption defines a function type to modify the Client instance.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client used for token and
// resource requests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per request timeout on the HTTP client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if c.httpClient != nil {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithServiceGrant registers a builder for a named service grant. Requests
// carrying that service name route through the builder instead of the
// standard grant types.
func WithServiceGrant(service string, builder oauthmodel.GrantBuilder) ClientOption {
	return func(c *Client) {
		c.serviceGrants[service] = builder
	}
}

// WithDebugHTTP logs every outgoing request through zerolog.
func WithDebugHTTP() ClientOption {
	return func(c *Client) {
		if c.httpClient == nil {
			return
		}
		c.httpClient.Transport = newLoggingTransport(c.httpClient.Transport)
	}
}

// NewClient initializes a Client for the configured authorization server.
// Optional configuration can be provided via options (e.g. WithTimeout,
// WithServiceGrant).
func NewClient(config oauthmodel.ClientConfig, options ...ClientOption) (*Client, error) {
	client := &Client{
		config:        config,
		httpClient:    &http.Client{Timeout: defaultRequestTimeout},
		serviceGrants: map[string]oauthmodel.GrantBuilder{},
	}

	// Apply optional configuration
	for _, opt := range options {
		opt(client)
	}

	// Validate the applied configuration
	if client.httpClient == nil {
		return nil, errors.New("[NewClient] http client is required")
	}
	for service, builder := range client.serviceGrants {
		if strings.TrimSpace(service) == "" {
			return nil, errors.New("[NewClient] service grant name is required")
		}
		if builder == nil {
			return nil, errors.Errorf("[NewClient] service grant %q requires a builder", service)
		}
	}

	return client, nil
}

// Config returns the client configuration the Client was built with.
func (c *Client) Config() oauthmodel.ClientConfig {
	return c.config
}
