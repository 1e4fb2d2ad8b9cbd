package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.HTTP.Port != defaultPort {
		t.Fatalf("port = %d, want %d", cfg.HTTP.Port, defaultPort)
	}
	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Fatalf("token ttl = %s, want 168h", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Fatalf("bcrypt cost = %d, want 10", cfg.Auth.BcryptCost)
	}
	if cfg.RateLimit.Requests != 100 || cfg.RateLimit.Window != 15*time.Minute {
		t.Fatalf("rate limit = %d/%s, want 100/15m", cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}
	if cfg.Search.NearbyDefaultRadius != 5 || cfg.Search.FavoritesDefaultRadius != 50 {
		t.Fatalf("search radii = %v/%v, want 5/50", cfg.Search.NearbyDefaultRadius, cfg.Search.FavoritesDefaultRadius)
	}
	if cfg.Search.TopDefaultLimit != 10 {
		t.Fatalf("top limit = %d, want 10", cfg.Search.TopDefaultLimit)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:      &AuthConfig{BcryptCost: 4, TokenTTL: time.Hour},
		RateLimit: &RateLimitConfig{Enabled: false, Requests: 5, Window: time.Minute},
	}
	applyDefaults(cfg)

	if cfg.Auth.BcryptCost != 4 || cfg.Auth.TokenTTL != time.Hour {
		t.Fatalf("auth overridden: %+v", cfg.Auth)
	}
	if cfg.RateLimit.Enabled || cfg.RateLimit.Requests != 5 {
		t.Fatalf("rate limit overridden: %+v", cfg.RateLimit)
	}
}
