package auth

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/oauthmodel"
	"github.com/pkg/errors"
)

// Exchange requests a token from the configured token endpoint. The grant
// type is selected from the parameters, with the client credentials from
// the configuration filling any the caller did not supply. The returned
// channel delivers exactly one ExchangeResult and is never closed; the
// call site never blocks.
//
// Errors returned here are synchronous failures (no token URL, no builder
// for the grant) and mean no request was started.
func (c *Client) Exchange(params oauth2.Params) (<-chan ExchangeResult, error) {
	merged := params.WithDefaults(c.config.Params())

	tokenRequest, err := c.buildTokenRequest(merged)
	if err != nil {
		return nil, err
	}

	return c.ExchangeRequest(c.config.TokenURL, tokenRequest)
}

// ExchangeRequest performs a prepared token request against an explicit
// token endpoint. Same delivery contract as Exchange.
func (c *Client) ExchangeRequest(tokenURL string, tokenRequest oauthmodel.TokenRequest) (<-chan ExchangeResult, error) {
	if strings.TrimSpace(tokenURL) == "" {
		return nil, errors.Wrap(ErrNoTokenURL, "[ExchangeRequest] cannot request a token")
	}

	results := make(chan ExchangeResult, 1)
	go func() {
		results <- c.exchange(tokenURL, tokenRequest)
	}()
	return results, nil
}

// ExchangeAuthorizationCode swaps an authorization code for tokens. The
// redirect URI must match the one sent on the authorization request.
func (c *Client) ExchangeAuthorizationCode(code, redirectURI string) (<-chan ExchangeResult, error) {
	return c.Exchange(oauth2.Params{
		oauth2.KeyCode:        code,
		oauth2.KeyRedirectURI: redirectURI,
	})
}

// ClientCredentialsToken requests a token for the client itself.
func (c *Client) ClientCredentialsToken(scope ...string) (<-chan ExchangeResult, error) {
	return c.Exchange(oauth2.Params{
		oauth2.KeyScope: scope,
	})
}

// PasswordCredentialsToken requests a token with resource owner credentials.
func (c *Client) PasswordCredentialsToken(username, password string, scope ...string) (<-chan ExchangeResult, error) {
	return c.Exchange(oauth2.Params{
		oauth2.KeyUsername: username,
		oauth2.KeyPassword: password,
		oauth2.KeyScope:    scope,
	})
}

// RefreshAccessToken exchanges a refresh token for a new access token.
func (c *Client) RefreshAccessToken(refreshToken string, scope ...string) (<-chan ExchangeResult, error) {
	return c.Exchange(oauth2.Params{
		oauth2.KeyRefreshToken: refreshToken,
		oauth2.KeyScope:        scope,
	})
}

// ServiceToken routes the exchange through the named service grant builder
// registered with WithServiceGrant.
func (c *Client) ServiceToken(service string, params oauth2.Params) (<-chan ExchangeResult, error) {
	return c.Exchange(oauth2.Params{oauth2.KeyService: service}.WithDefaults(params))
}

// buildTokenRequest routes service grants through their registered builder
// and everything else through the standard grant builder.
func (c *Client) buildTokenRequest(params oauth2.Params) (oauthmodel.TokenRequest, error) {
	if oauth2.GrantTypeOf(params) == oauth2.ServiceGrant {
		service := params.String(oauth2.KeyService)
		builder, ok := c.serviceGrants[service]
		if !ok {
			return oauthmodel.TokenRequest{}, errors.Wrapf(ErrUnknownServiceGrant, "[Exchange] %q", service)
		}
		return builder(params), nil
	}

	tokenRequest, err := oauthmodel.NewTokenRequest(params)
	if err != nil {
		return oauthmodel.TokenRequest{}, errors.Wrap(err, "[Exchange] failed to build token request")
	}
	return tokenRequest, nil
}

// exchange performs the POST and shapes the outcome into an ExchangeResult.
// Runs on the per call goroutine.
func (c *Client) exchange(tokenURL string, tokenRequest oauthmodel.TokenRequest) ExchangeResult {
	// The client credentials travel in the body as well as in the
	// Authorization header
	form := url.Values{}
	for key, values := range tokenRequest.Form {
		form[key] = append([]string(nil), values...)
	}
	if tokenRequest.BasicAuth.Username != "" {
		form.Set(oauth2.KeyClientID, tokenRequest.BasicAuth.Username)
	}
	if tokenRequest.BasicAuth.Password != "" {
		form.Set(oauth2.KeyClientSecret, tokenRequest.BasicAuth.Password)
	}

	request, err := http.NewRequest(http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return ExchangeResult{Err: errors.Wrap(err, "[exchange] failed to create request")}
	}
	request.Header.Set("Content-Type", oauth2.FormMediaType)
	request.Header.Set("Cache-Control", "no-cache")
	if tokenRequest.Accept != "" {
		request.Header.Set("Accept", tokenRequest.Accept)
	}
	request.SetBasicAuth(tokenRequest.BasicAuth.Username, tokenRequest.BasicAuth.Password)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return ExchangeResult{Err: errors.Wrap(err, "[exchange] token request failed")}
	}
	defer response.Body.Close()

	// A non-200 status is the result. The body is discarded unread.
	if response.StatusCode != http.StatusOK {
		return ExchangeResult{StatusCode: response.StatusCode}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return ExchangeResult{StatusCode: response.StatusCode, Err: errors.Wrap(err, "[exchange] failed to read response body")}
	}

	token, err := oauth2.DecodeTokenResponse(body)
	if err != nil {
		return ExchangeResult{StatusCode: response.StatusCode, Err: errors.Wrap(err, "[exchange] failed to decode token response")}
	}

	return ExchangeResult{Token: token, StatusCode: response.StatusCode}
}
