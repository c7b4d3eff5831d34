package token

import (
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-oauth-client/internal/errors"
	"github.com/jrsteele09/go-oauth-client/internal/utils"
)

// TokenIntrospection represents the metadata information of an OAuth 2.0 token.
// The 'active' field indicates the state of the token - if it's false, other fields may not be populated.
type TokenIntrospection struct {
	Active bool     `json:"active"`          // True or false - Is the token currently usable
	Aud    *string  `json:"aud,omitempty"`   // Audience - the client ID the token was issued to
	Exp    *int64   `json:"exp,omitempty"`   // Expiration
	Iat    *int64   `json:"iat,omitempty"`   // Issued at time
	Iss    *string  `json:"iss,omitempty"`   // Issuer of the token
	Roles  []string `json:"roles,omitempty"` // Roles assigned to the user
	Sub    *string  `json:"sub,omitempty"`   // Users unique ID
	Scope  string   `json:"scope,omitempty"` // Scopes granted to the token
}

// Inspector reads claims out of tokens the client holds. Tokens are parsed
// without signature verification: the holder of a bearer token has no
// verification keys, validation belongs to the resource server.
type Inspector struct {
	nowTime func() time.Time // nowTime function (injectable for testing)
}

// InspectorOption defines a function type to modify the Inspector instance.
type InspectorOption func(*Inspector)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) InspectorOption {
	return func(i *Inspector) {
		i.nowTime = nowFunc
	}
}

// NewInspector creates a new token inspector
func NewInspector(options ...InspectorOption) *Inspector {
	inspector := &Inspector{nowTime: time.Now}
	for _, opt := range options {
		opt(inspector)
	}
	return inspector
}

// Introspect extracts information from a JWT access token without
// verifying it. An empty token introspects as inactive; an unparseable
// token is inactive with an error.
func (i *Inspector) Introspect(rawToken string) (*TokenIntrospection, error) {
	if strings.TrimSpace(rawToken) == "" {
		return &TokenIntrospection{Active: false}, nil
	}

	unverifiedToken, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return &TokenIntrospection{Active: false}, errors.Wrapf(errors.ErrInvalidToken, "parse: %v", err)
	}

	claims, ok := unverifiedToken.Claims.(jwtlib.MapClaims)
	if !ok {
		return &TokenIntrospection{Active: false}, errors.Wrapf(errors.ErrInvalidToken, "error extracting claims")
	}

	iss, _ := claims["iss"].(string)
	sub, _ := claims["sub"].(string)
	aud, _ := claims["aud"].(string)
	scope, _ := claims["scope"].(string)
	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)

	iatInt := int64(iat)
	expInt := int64(exp)

	var roles []string
	if claimRoles, ok := claims["roles"].([]any); ok {
		roles = utils.ToStringSlice(claimRoles)
	}

	// A token without an exp claim does not expire
	active := true
	if expInt > 0 && i.nowTime().Unix() > expInt {
		active = false
	}

	return &TokenIntrospection{
		Active: active,
		Aud:    utils.Ptr(aud),
		Exp:    utils.Ptr(expInt),
		Iat:    utils.Ptr(iatInt),
		Iss:    utils.Ptr(iss),
		Roles:  roles,
		Sub:    utils.Ptr(sub),
		Scope:  scope,
	}, nil
}

// ExpiresWithin reports whether the token's expiry falls inside the given
// window. Callers scheduling their own refreshes decide the margin; tokens
// without an exp claim never expire.
func (i *Inspector) ExpiresWithin(introspection *TokenIntrospection, window time.Duration) bool {
	if introspection == nil || introspection.Exp == nil || *introspection.Exp == 0 {
		return false
	}
	expiry := time.Unix(*introspection.Exp, 0)
	return i.nowTime().Add(window).After(expiry)
}
