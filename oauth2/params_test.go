package oauth2_test

import (
	"testing"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/stretchr/testify/require"
)

// TestGrantTypeOf_Precedence tests that grant selection is first-match-wins
func TestGrantTypeOf_Precedence(t *testing.T) {
	tests := []struct {
		name   string
		params oauth2.Params
		want   oauth2.GrantType
	}{
		{
			name:   "empty params default to client credentials",
			params: oauth2.Params{},
			want:   oauth2.ClientCredentialsGrant,
		},
		{
			name:   "nil params default to client credentials",
			params: nil,
			want:   oauth2.ClientCredentialsGrant,
		},
		{
			name:   "code selects authorization code",
			params: oauth2.Params{oauth2.KeyCode: "abc"},
			want:   oauth2.AuthorizationCodeGrant,
		},
		{
			name: "code beats refresh token",
			params: oauth2.Params{
				oauth2.KeyCode:         "abc",
				oauth2.KeyRefreshToken: "rt",
			},
			want: oauth2.AuthorizationCodeGrant,
		},
		{
			name:   "refresh token selects refresh grant",
			params: oauth2.Params{oauth2.KeyRefreshToken: "rt"},
			want:   oauth2.RefreshTokenGrant,
		},
		{
			name:   "username selects password grant",
			params: oauth2.Params{oauth2.KeyUsername: "alice"},
			want:   oauth2.PasswordGrant,
		},
		{
			name: "explicit grant type beats field presence",
			params: oauth2.Params{
				oauth2.KeyGrantType: string(oauth2.ClientCredentialsGrant),
				oauth2.KeyCode:      "abc",
			},
			want: oauth2.ClientCredentialsGrant,
		},
		{
			name: "service beats everything",
			params: oauth2.Params{
				oauth2.KeyService:   "firebase",
				oauth2.KeyGrantType: string(oauth2.PasswordGrant),
				oauth2.KeyCode:      "abc",
			},
			want: oauth2.ServiceGrant,
		},
		{
			name: "empty reserved values count as absent",
			params: oauth2.Params{
				oauth2.KeyCode:         "",
				oauth2.KeyRefreshToken: "rt",
			},
			want: oauth2.RefreshTokenGrant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, oauth2.GrantTypeOf(tt.params))
		})
	}
}

// TestParams_Strings tests value rendering for scalars and sequences
func TestParams_Strings(t *testing.T) {
	params := oauth2.Params{
		"plain":    "value",
		"scopes":   []string{"read", "write"},
		"anyslice": []any{"a", "b"},
		"number":   2,
	}

	require.Equal(t, []string{"value"}, params.Strings("plain"))
	require.Equal(t, []string{"read", "write"}, params.Strings("scopes"))
	require.Equal(t, []string{"a", "b"}, params.Strings("anyslice"))
	require.Equal(t, []string{"2"}, params.Strings("number"))
	require.Nil(t, params.Strings("missing"))

	require.Equal(t, "read write", params.String("scopes"))
	require.Equal(t, "2", params.String("number"))
}

// TestParams_Has tests that empty rendered values count as absent
func TestParams_Has(t *testing.T) {
	params := oauth2.Params{
		"present": "x",
		"empty":   "",
		"blanks":  []string{"", ""},
		"mixed":   []string{"", "x"},
	}

	require.True(t, params.Has("present"))
	require.False(t, params.Has("empty"))
	require.False(t, params.Has("blanks"))
	require.True(t, params.Has("mixed"))
	require.False(t, params.Has("missing"))
}

// TestParams_WithDefaults tests that explicit params win over defaults
func TestParams_WithDefaults(t *testing.T) {
	params := oauth2.Params{
		oauth2.KeyClientID: "explicit-client",
		oauth2.KeyScope:    "",
	}

	merged := params.WithDefaults(oauth2.Params{
		oauth2.KeyClientID:     "config-client",
		oauth2.KeyClientSecret: "config-secret",
		oauth2.KeyScope:        "openid",
	})

	require.Equal(t, "explicit-client", merged.String(oauth2.KeyClientID))
	require.Equal(t, "config-secret", merged.String(oauth2.KeyClientSecret))
	require.Equal(t, "openid", merged.String(oauth2.KeyScope), "empty value should be filled from defaults")

	// The receiver is never mutated
	require.False(t, params.Has(oauth2.KeyClientSecret))
}
