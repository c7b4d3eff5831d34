package oauthmodel

import (
	"net/url"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/pkg/errors"
)

// ResponseFormat selects how a successful token endpoint response body is
// decoded.
type ResponseFormat string

// JSONResponseFormat decodes response bodies as JSON objects (RFC 6749 §5.1).
const JSONResponseFormat ResponseFormat = "json"

// BasicAuth is the credential pair for the HTTP Authorization header.
type BasicAuth struct {
	Username string
	Password string
}

// TokenRequest describes a single POST to the token endpoint.
// Built by NewTokenRequest for the standard grant types, or by a
// GrantBuilder for service grants, and executed by the auth package.
type TokenRequest struct {
	// Accept is the media type requested from the token endpoint.
	// Example: "application/json"
	Accept string

	// ResponseFormat selects the decoder for a successful response body.
	// Example: JSONResponseFormat
	ResponseFormat ResponseFormat

	// Form holds the request body fields, form encoded on send.
	// Always contains the grant_type literal for the selected grant.
	// Security: carries user credentials for the password grant
	Form url.Values

	// BasicAuth carries the client credentials for the Authorization header.
	// The same credentials are also sent in the request body.
	BasicAuth BasicAuth
}

// GrantBuilder assembles a TokenRequest from request parameters. Registered
// on an auth.Client to handle service grants that fall outside the standard
// grant types.
type GrantBuilder func(params oauth2.Params) TokenRequest

// NewTokenRequest builds the token endpoint request for the grant type
// selected by the parameters. Each grant type admits a fixed set of form
// fields; parameters outside that set never reach the request body.
func NewTokenRequest(params oauth2.Params) (TokenRequest, error) {
	grantType := oauth2.GrantTypeOf(params)

	form := url.Values{}
	switch grantType {
	case oauth2.AuthorizationCodeGrant:
		setFormFields(form, params, oauth2.KeyCode, oauth2.KeyScope, oauth2.KeyRedirectURI)
	case oauth2.ClientCredentialsGrant:
		setFormFields(form, params, oauth2.KeyScope)
	case oauth2.PasswordGrant:
		setFormFields(form, params, oauth2.KeyUsername, oauth2.KeyPassword, oauth2.KeyScope)
	case oauth2.RefreshTokenGrant:
		setFormFields(form, params, oauth2.KeyScope, oauth2.KeyRefreshToken)
	default:
		return TokenRequest{}, errors.Wrapf(ErrUnsupportedGrantType, "[NewTokenRequest] %q", grantType)
	}
	form.Set(oauth2.KeyGrantType, string(grantType))

	return TokenRequest{
		Accept:         oauth2.JSONMediaType,
		ResponseFormat: JSONResponseFormat,
		Form:           form,
		BasicAuth: BasicAuth{
			Username: params.String(oauth2.KeyClientID),
			Password: params.String(oauth2.KeyClientSecret),
		},
	}, nil
}

// setFormFields copies the named parameters into the form, skipping any
// that are absent or render empty. Multi valued parameters join with a
// single space (RFC 6749 §3.3 scope syntax).
func setFormFields(form url.Values, params oauth2.Params, keys ...string) {
	for _, key := range keys {
		if !params.Has(key) {
			continue
		}
		form.Set(key, params.String(key))
	}
}
