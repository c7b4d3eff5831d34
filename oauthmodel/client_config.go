package oauthmodel

import "github.com/jrsteele09/go-oauth-client/oauth2"

// ClientConfig holds the static registration details of an OAuth2 client.
// One value configures an auth.Client for every grant type; individual
// requests may override any field through their parameters.
type ClientConfig struct {
	// ClientID identifies the OAuth2 client making the request.
	// Required: Yes (for all grant types)
	// Example: "web-app-client"
	ClientID string

	// ClientSecret is the secret credential for confidential clients.
	// Required: Yes for confidential clients, No for public clients
	// Example: "super-secret-value"
	// Security: Never log or expose this value
	ClientSecret string

	// AuthorizationURL is the authorization server's authorization endpoint.
	// Flow: Authorization Code Flow (user agent is redirected here)
	// Example: "https://auth.example.com/oauth/authorize"
	AuthorizationURL string

	// TokenURL is the authorization server's token endpoint.
	// Flow: All grant types (token requests are POSTed here)
	// Example: "https://auth.example.com/oauth/token"
	TokenURL string
}

// Params projects the client credentials onto request parameters. Endpoint
// URLs are not request parameters and stay out of the projection.
func (c ClientConfig) Params() oauth2.Params {
	params := oauth2.Params{}
	if c.ClientID != "" {
		params[oauth2.KeyClientID] = c.ClientID
	}
	if c.ClientSecret != "" {
		params[oauth2.KeyClientSecret] = c.ClientSecret
	}
	return params
}
