package auth

import (
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/pkg/errors"
)

// AuthorizationURL builds the URL that starts the authorization code flow.
// The canonical parameters {client_id, response_type, redirect_uri, scope,
// state} merge with extra, response_type defaulting to "code". Keys whose
// values render empty are omitted, and a multi valued scope joins with a
// single space (RFC 6749 §3.3). Query and fragment already present on
// authorizationURL survive untouched.
func AuthorizationURL(authorizationURL, clientID, redirectURI string, extra oauth2.Params) (string, error) {
	params := extra.WithDefaults(oauth2.Params{
		oauth2.KeyClientID:     clientID,
		oauth2.KeyResponseType: string(oauth2.CodeResponseType),
		oauth2.KeyRedirectURI:  redirectURI,
	})

	query := oauth2.Params{}
	for key, value := range params {
		if !params.Has(key) {
			continue
		}
		if key == oauth2.KeyScope {
			query[key] = params.String(key)
			continue
		}
		query[key] = value
	}

	composed, err := oauth2.ComposeURL(authorizationURL, query)
	if err != nil {
		return "", errors.Wrap(err, "[AuthorizationURL] failed to compose url")
	}
	return composed, nil
}

// AuthorizationURL builds the authorization redirect URL from the
// configured client. The redirect URI and any additional parameters
// (scope, state) travel in extra.
func (c *Client) AuthorizationURL(extra oauth2.Params) (string, error) {
	return AuthorizationURL(c.config.AuthorizationURL, c.config.ClientID, "", extra)
}
