package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"session": map[string]any{
			"ttl":             "24h",
			"slidingInterval": "12h",
			"cookie": map[string]any{
				"sameSite": "lax",
			},
		},
		"passwordStrength": map[string]any{
			"minLength": 6,
		},
		"auth": map[string]any{
			"bcryptCost": 12,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SESSION_TTL", want: "session.ttl"},
		{envKey: "SESSION_SLIDINGINTERVAL", want: "session.slidingInterval"},
		{envKey: "SESSION_COOKIE_SAMESITE", want: "session.cookie.sameSite"},
		{envKey: "PASSWORDSTRENGTH_MINLENGTH", want: "passwordStrength.minLength"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
