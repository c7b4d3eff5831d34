package providers_test

import (
	"net/url"
	"testing"

	"github.com/jrsteele09/go-oauth-client/internal/errors"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/oauthmodel"
	"github.com/jrsteele09/go-oauth-client/providers"
	"github.com/stretchr/testify/require"
)

func defaultTestProvider() providers.Provider {
	return providers.Provider{
		Name:             "example",
		AuthorizationURL: "https://auth.example.com/oauth/authorize",
		TokenURL:         "https://auth.example.com/oauth/token",
		UserInfoURL:      "https://auth.example.com/userinfo",
		Scopes:           []string{"openid", "profile", "email"},
	}
}

// TestRegistry_Roundtrip tests upsert, get, list and delete
func TestRegistry_Roundtrip(t *testing.T) {
	registry, err := providers.NewRegistry()
	require.NoError(t, err)

	provider := defaultTestProvider()
	require.NoError(t, registry.Upsert(provider))

	got, err := registry.Get("example")
	require.NoError(t, err)
	require.Equal(t, provider.TokenURL, got.TokenURL)

	// Upsert replaces an existing provider
	provider.TokenURL = "https://auth.example.com/v2/token"
	require.NoError(t, registry.Upsert(provider))
	got, err = registry.Get("example")
	require.NoError(t, err)
	require.Equal(t, "https://auth.example.com/v2/token", got.TokenURL)

	require.Len(t, registry.List(), 1)

	require.NoError(t, registry.Delete("example"))
	require.Empty(t, registry.List())
}

// TestRegistry_NotFound tests lookups and deletes for unknown providers
func TestRegistry_NotFound(t *testing.T) {
	registry, err := providers.NewRegistry()
	require.NoError(t, err)

	_, err = registry.Get("missing")
	require.ErrorIs(t, err, errors.ErrProviderNotFound)

	err = registry.Delete("missing")
	require.ErrorIs(t, err, errors.ErrProviderNotFound)
}

// TestRegistry_Preload tests construction with initial providers
func TestRegistry_Preload(t *testing.T) {
	second := defaultTestProvider()
	second.Name = "another"

	registry, err := providers.NewRegistry(defaultTestProvider(), second)
	require.NoError(t, err)

	list := registry.List()
	require.Len(t, list, 2)
	require.Equal(t, "another", list[0].Name)
	require.Equal(t, "example", list[1].Name)
}

// TestRegistry_InvalidProviders tests upsert validation
func TestRegistry_InvalidProviders(t *testing.T) {
	tests := []struct {
		name     string
		provider providers.Provider
	}{
		{
			name:     "blank name",
			provider: providers.Provider{Name: " ", TokenURL: "https://auth.example.com/token"},
		},
		{
			name:     "no endpoints",
			provider: providers.Provider{Name: "endpointless"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := providers.NewRegistry()
			require.NoError(t, err)

			err = registry.Upsert(tt.provider)
			require.ErrorIs(t, err, errors.ErrInvalidProvider)
		})
	}
}

// TestProvider_ClientConfig tests the endpoint projection
func TestProvider_ClientConfig(t *testing.T) {
	provider := defaultTestProvider()

	config := provider.ClientConfig("client-1", "secret-1")
	require.Equal(t, "client-1", config.ClientID)
	require.Equal(t, "secret-1", config.ClientSecret)
	require.Equal(t, provider.AuthorizationURL, config.AuthorizationURL)
	require.Equal(t, provider.TokenURL, config.TokenURL)
}

// TestProvider_GrantBuilder tests that a provider's service grant builder survives the registry
func TestProvider_GrantBuilder(t *testing.T) {
	provider := defaultTestProvider()
	provider.GrantBuilder = func(params oauth2.Params) oauthmodel.TokenRequest {
		form := url.Values{}
		form.Set("grant_type", "urn:example:token")
		form.Set("assertion", params.String("assertion"))
		return oauthmodel.TokenRequest{
			Accept:         oauth2.JSONMediaType,
			ResponseFormat: oauthmodel.JSONResponseFormat,
			Form:           form,
		}
	}

	registry, err := providers.NewRegistry(provider)
	require.NoError(t, err)

	got, err := registry.Get("example")
	require.NoError(t, err)
	require.NotNil(t, got.GrantBuilder)

	tokenRequest := got.GrantBuilder(oauth2.Params{"assertion": "signed"})
	require.Equal(t, "urn:example:token", tokenRequest.Form.Get("grant_type"))
	require.Equal(t, "signed", tokenRequest.Form.Get("assertion"))
}

// TestProvider_Scopes tests the scope allow list
func TestProvider_Scopes(t *testing.T) {
	provider := defaultTestProvider()

	require.True(t, provider.HasScope("openid"))
	require.False(t, provider.HasScope("admin"))

	require.NoError(t, provider.ValidateScopes(""))
	require.NoError(t, provider.ValidateScopes("openid profile"))

	err := provider.ValidateScopes("openid admin")
	require.ErrorIs(t, err, errors.ErrInvalidScope)
	require.Contains(t, err.Error(), "admin")
}
