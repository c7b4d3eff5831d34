package auth

import "github.com/jrsteele09/go-oauth-client/oauth2"

// ExchangeResult is the single value delivered for one token exchange.
// Exactly one shape holds:
//   - success: Token is set and StatusCode is 200
//   - remote failure: StatusCode holds the non-200 status, Token and Err are nil
//   - local error: Err is set (transport failure or undecodable 200 body)
type ExchangeResult struct {
	Token      *oauth2.TokenResponse
	StatusCode int
	Err        error
}

// Succeeded reports whether the exchange produced a token.
func (r ExchangeResult) Succeeded() bool {
	return r.Err == nil && r.Token != nil
}

// ResourceResult is the single value delivered for one resource fetch.
// The shapes mirror ExchangeResult with the decoded JSON payload in place
// of the token.
type ResourceResult struct {
	Payload    map[string]any
	StatusCode int
	Err        error
}

// Succeeded reports whether the fetch produced a payload.
func (r ResourceResult) Succeeded() bool {
	return r.Err == nil && r.Payload != nil
}
