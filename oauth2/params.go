package oauth2

import (
	"fmt"
	"strings"

	"github.com/jrsteele09/go-oauth-client/internal/utils"
)

// Reserved parameter names. These keys steer grant selection and request
// construction; everything else in a Params map passes through to the
// outgoing form or query unchanged.
const (
	KeyGrantType    = "grant_type"
	KeyClientID     = "client_id"
	KeyClientSecret = "client_secret"
	KeyResponseType = "response_type"
	KeyRedirectURI  = "redirect_uri"
	KeyScope        = "scope"
	KeyState        = "state"
	KeyCode         = "code"
	KeyUsername     = "username"
	KeyPassword     = "password"
	KeyRefreshToken = "refresh_token"
	KeyService      = "service"
)

// Params is an unordered mapping from parameter name to value. A value is a
// string, a []string (multi-valued parameters such as scopes), a []any
// rendered element-wise, or any scalar rendered with %v. Params are
// read-only once handed to this library and may be reused across
// concurrent calls.
type Params map[string]any

// Has reports whether key is present with a non-empty rendered value.
// An empty string (or a sequence that renders empty) counts as absent.
func (p Params) Has(key string) bool {
	return strings.TrimSpace(p.String(key)) != ""
}

// String renders the value for key as a single string. Sequences join with
// a single space, the RFC 6749 scope separator. Absent keys render "".
func (p Params) String(key string) string {
	return strings.Join(p.Strings(key), " ")
}

// Strings renders the value for key as a list of strings: one element per
// sequence member, a single element for scalars, nil when absent.
func (p Params) Strings(key string) []string {
	value, ok := p[key]
	if !ok || value == nil {
		return nil
	}
	switch v := value.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		return utils.ToStringSlice(v)
	default:
		return []string{fmt.Sprintf("%v", v)}
	}
}

// WithDefaults returns a copy of p with every absent key filled from
// defaults. Keys already present in p always win.
func (p Params) WithDefaults(defaults Params) Params {
	merged := make(Params, len(p)+len(defaults))
	for key, value := range p {
		merged[key] = value
	}
	for key, value := range defaults {
		if !merged.Has(key) && defaults.Has(key) {
			merged[key] = value
		}
	}
	return merged
}

// GrantTypeOf computes the grant discriminant for a parameter set.
// First match wins: an explicit service parameter, an explicit grant_type,
// the presence of code, refresh_token, then username. A parameter set that
// carries none of these is a client_credentials request.
func GrantTypeOf(p Params) GrantType {
	switch {
	case p.Has(KeyService):
		return ServiceGrant
	case p.Has(KeyGrantType):
		return GrantType(p.String(KeyGrantType))
	case p.Has(KeyCode):
		return AuthorizationCodeGrant
	case p.Has(KeyRefreshToken):
		return RefreshTokenGrant
	case p.Has(KeyUsername):
		return PasswordGrant
	default:
		return ClientCredentialsGrant
	}
}
