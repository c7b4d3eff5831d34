package oauth2

// ResponseType represents the OAuth 2.0 response type.
// Determines what the authorization endpoint returns to the redirect URI.
type ResponseType string

const (
	// CodeResponseType indicates the authorization code flow.
	// Used in: Authorization Code Flow (most secure, requires server-side client)
	// Returns an authorization code that must be exchanged for tokens at the token endpoint.
	// Example: /oauth/authorize?response_type=code&client_id=...
	CodeResponseType ResponseType = "code"
)

// GrantType represents the OAuth 2.0 grant type sent to the token endpoint.
// Determines which credentials the token request must carry.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	// Used in: Standard Authorization Code Flow
	// Token request includes: code, redirect_uri, scope
	// Returns: access_token, refresh_token (if issued)
	AuthorizationCodeGrant GrantType = "authorization_code"

	// ClientCredentialsGrant allows machine-to-machine authentication.
	// Used in: Backend service authentication (no user context)
	// Token request includes: scope
	// Example: Microservice calling another microservice
	ClientCredentialsGrant GrantType = "client_credentials"

	// PasswordGrant exchanges resource-owner credentials for tokens.
	// Used in: Trusted first-party clients only (RFC 6749 §4.3)
	// Token request includes: username, password, scope
	// The credentials are forwarded once and never stored by this library.
	PasswordGrant GrantType = "password"

	// RefreshTokenGrant exchanges a refresh token for new tokens.
	// Used in: Token refresh flow (get a new access token without re-authenticating)
	// Token request includes: refresh_token, scope
	RefreshTokenGrant GrantType = "refresh_token"

	// ServiceGrant marks a provider-specific token flow.
	// The form body for this variant is not defined here - the caller registers
	// a builder for it (auth.WithServiceGrant), keyed on the "service" parameter.
	ServiceGrant GrantType = "service"
)

// Media types exchanged with token and resource endpoints.
const (
	// FormMediaType is the token-request body encoding. The UTF-8 charset
	// parameter travels inside the media type rather than as its own header.
	FormMediaType = "application/x-www-form-urlencoded;charset=UTF-8"

	// JSONMediaType is the accepted response encoding for both pipelines.
	JSONMediaType = "application/json"
)
