package token

import (
	"time"

	"github.com/jrsteele09/go-oauth-client/auth"
	"github.com/jrsteele09/go-oauth-client/internal/errors"
	"github.com/jrsteele09/go-oauth-client/internal/utils"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	xoauth2 "golang.org/x/oauth2"
)

// Source adapts an auth.Client and a fixed parameter set to the
// golang.org/x/oauth2 TokenSource interface. Every Token call performs a
// fresh exchange; nothing is cached. Callers wanting reuse can wrap a
// Source in oauth2.ReuseTokenSource.
type Source struct {
	client  *auth.Client
	params  oauth2.Params
	nowTime func() time.Time // nowTime function (injectable for testing)
}

var _ xoauth2.TokenSource = &Source{}

// SourceOption defines a function type to modify the Source instance.
type SourceOption func(*Source)

// WithSourceNowTime sets the now time function (primarily for testing)
func WithSourceNowTime(nowFunc func() time.Time) SourceOption {
	return func(s *Source) {
		s.nowTime = nowFunc
	}
}

// NewSource creates a TokenSource for the given client and parameters.
func NewSource(client *auth.Client, params oauth2.Params, options ...SourceOption) *Source {
	source := &Source{
		client:  client,
		params:  params,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(source)
	}
	return source
}

// Token performs one exchange and adapts its result.
func (s *Source) Token() (*xoauth2.Token, error) {
	if s.client == nil {
		return nil, errors.Wrapf(errors.ErrTokenExchangeFailed, "no auth client")
	}

	results, err := s.client.Exchange(s.params)
	if err != nil {
		return nil, errors.Wrapf(err, "token source exchange")
	}

	result := <-results
	if result.Err != nil {
		return nil, errors.Wrapf(result.Err, "token source exchange")
	}
	if !result.Succeeded() {
		return nil, errors.Wrapf(errors.ErrTokenExchangeFailed, "status %d", result.StatusCode)
	}

	token := &xoauth2.Token{
		AccessToken:  utils.Value(result.Token.AccessToken),
		TokenType:    result.Token.TokenType,
		RefreshToken: utils.Value(result.Token.RefreshToken),
	}
	if result.Token.ExpiresIn > 0 {
		token.Expiry = s.nowTime().Add(time.Duration(result.Token.ExpiresIn) * time.Second)
	}
	return token, nil
}
