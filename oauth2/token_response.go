package oauth2

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// TokenResponse represents the response from an OAuth2 token request.
// This is the standard OAuth2 token endpoint response format as defined in RFC 6749.
// Returned from the /token endpoint for all grant types.
type TokenResponse struct {
	// AccessToken is the token used to access protected resources.
	// Example: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."
	// Usage: Include in Authorization header: "Bearer <access_token>"
	// Lifespan: Short-lived (typically 15 minutes - 1 hour)
	AccessToken *string `json:"access_token,omitempty"`

	// IdToken is the OpenID Connect ID token, decoded but never verified here.
	// Example: "eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9..."
	// Only present: When the authorization server issued one
	IdToken *string `json:"id_token,omitempty"`

	// TokenType indicates how to use the access token (usually "bearer").
	// Example: "bearer"
	// Standard: OAuth2 spec requires this field
	// Usage: Tells the client to send "Authorization: Bearer <token>"
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the lifetime in seconds of the access token.
	// Example: 900 (for 15 minutes)
	// Note: This is a hint - a JWT access token carries the real "exp" claim
	ExpiresIn int `json:"expires_in,omitempty"`

	// RefreshToken is an opaque token used to obtain new access tokens.
	// Example: "tGzv3JOkF0XG5Qx2TlKWIA"
	// Usage: Send to the token endpoint with grant_type=refresh_token
	// Security: Store securely, expect it to rotate on each use
	RefreshToken *string `json:"refresh_token,omitempty"`

	// Scope indicates the access token's granted permissions.
	// Example: "openid profile email api.read"
	// Usage: Space-separated list of scopes
	// Note: May be less than requested if some scopes were denied
	Scope string `json:"scope,omitempty"`

	raw map[string]any
}

// DecodeTokenResponse decodes a token-endpoint body. The registered RFC 6749
// fields land in the typed struct; the full decoded object is preserved for
// Extra so provider-specific members are never dropped. A body that is not a
// JSON object fails with ErrMalformedResponse.
func DecodeTokenResponse(body []byte) (*TokenResponse, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrapf(ErrMalformedResponse, "[DecodeTokenResponse] %v", err)
	}

	var response TokenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(ErrMalformedResponse, "[DecodeTokenResponse] %v", err)
	}
	response.raw = raw
	return &response, nil
}

// Extra returns a non-standard response member by key, or nil when absent.
// Nested objects come back as decoded map[string]any values.
func (t *TokenResponse) Extra(key string) any {
	if t.raw == nil {
		return nil
	}
	return t.raw[key]
}

// Raw returns the full decoded response object.
func (t *TokenResponse) Raw() map[string]any {
	return t.raw
}
