package providers

import (
	"strings"

	"github.com/jrsteele09/go-oauth-client/internal/errors"
	"github.com/jrsteele09/go-oauth-client/oauthmodel"
)

// Provider describes one authorization server an application can request
// tokens from.
type Provider struct {
	Name             string   `json:"name"`
	AuthorizationURL string   `json:"authorizationURL"`
	TokenURL         string   `json:"tokenURL"`
	UserInfoURL      string   `json:"userInfoURL"`
	Scopes           []string `json:"scopes"` // Scopes the provider accepts

	// GrantBuilder handles this provider's service grant, when it has one
	GrantBuilder oauthmodel.GrantBuilder `json:"-"`
}

// ClientConfig pairs the provider endpoints with one client registration.
func (p *Provider) ClientConfig(clientID, clientSecret string) oauthmodel.ClientConfig {
	return oauthmodel.ClientConfig{
		ClientID:         clientID,
		ClientSecret:     clientSecret,
		AuthorizationURL: p.AuthorizationURL,
		TokenURL:         p.TokenURL,
	}
}

// HasScope checks if the provider accepts a specific scope
func (p *Provider) HasScope(scope string) bool {
	for _, s := range p.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// ValidateScopes checks if all requested scopes are accepted by this provider
func (p *Provider) ValidateScopes(requestedScopes string) error {
	if requestedScopes == "" {
		return nil
	}
	for _, scope := range strings.Fields(requestedScopes) {
		if !p.HasScope(scope) {
			return errors.Wrapf(errors.ErrInvalidScope, "scope %q", scope)
		}
	}
	return nil
}

func (p *Provider) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.Wrapf(errors.ErrInvalidProvider, "provider name is required")
	}
	if strings.TrimSpace(p.AuthorizationURL) == "" && strings.TrimSpace(p.TokenURL) == "" {
		return errors.Wrapf(errors.ErrInvalidProvider, "provider %q needs at least one endpoint", p.Name)
	}
	return nil
}
