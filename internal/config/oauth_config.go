package config

import "time"

type OAuthConfig interface {
	GetClientID() string
	GetClientSecret() string
	GetAuthorizationURL() string
	GetTokenURL() string
	GetUserInfoURL() string
	GetScopes() []string
	GetRequestTimeout() time.Duration
}

type OAuth struct {
	ClientID         string        `env:"OAUTH_CLIENT_ID"`
	ClientSecret     string        `env:"OAUTH_CLIENT_SECRET"`
	AuthorizationURL string        `env:"OAUTH_AUTHORIZATION_URL"`
	TokenURL         string        `env:"OAUTH_TOKEN_URL"`
	UserInfoURL      string        `env:"OAUTH_USERINFO_URL"`
	Scopes           []string      `env:"OAUTH_SCOPES" env-default:"openid,profile"`
	RequestTimeout   time.Duration `env:"OAUTH_REQUEST_TIMEOUT" env-default:"10s"`
}

var _ OAuthConfig = OAuth{}

func (o OAuth) GetClientID() string {
	return o.ClientID
}

func (o OAuth) GetClientSecret() string {
	return o.ClientSecret
}

func (o OAuth) GetAuthorizationURL() string {
	return o.AuthorizationURL
}

func (o OAuth) GetTokenURL() string {
	return o.TokenURL
}

func (o OAuth) GetUserInfoURL() string {
	return o.UserInfoURL
}

func (o OAuth) GetScopes() []string {
	return o.Scopes
}

func (o OAuth) GetRequestTimeout() time.Duration {
	return o.RequestTimeout
}
