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
		"generator": map[string]any{
			"apiKey":    "",
			"maxTokens": 8192,
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
		{envKey: "GENERATOR_APIKEY", want: "generator.apiKey"},
		{envKey: "GENERATOR_MAXTOKENS", want: "generator.maxTokens"},
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

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Auth == nil || cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("Auth.AccessTokenTTL not defaulted: %+v", cfg.Auth)
	}
	if cfg.Generator == nil {
		t.Fatal("Generator not defaulted")
	}
	if cfg.Generator.Model != defaultGeneratorModel {
		t.Fatalf("Generator.Model = %q, want %q", cfg.Generator.Model, defaultGeneratorModel)
	}
	if cfg.Generator.MaxTokens != defaultGeneratorMaxTokens {
		t.Fatalf("Generator.MaxTokens = %d, want %d", cfg.Generator.MaxTokens, defaultGeneratorMaxTokens)
	}
	if cfg.Generator.Timeout != defaultGeneratorTimeout {
		t.Fatalf("Generator.Timeout = %s, want %s", cfg.Generator.Timeout, defaultGeneratorTimeout)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:      &AuthConfig{AccessTokenTTL: time.Hour},
		Generator: &GeneratorConfig{Model: "custom-model", MaxTokens: 100, Timeout: time.Second},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != "1MB" {
		t.Fatalf("MaxRequestBodySize overwritten: %q", cfg.HTTP.MaxRequestBodySize)
	}
	if cfg.Auth.AccessTokenTTL != time.Hour {
		t.Fatalf("AccessTokenTTL overwritten: %s", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Generator.Model != "custom-model" || cfg.Generator.MaxTokens != 100 || cfg.Generator.Timeout != time.Second {
		t.Fatalf("Generator overwritten: %+v", cfg.Generator)
	}
}
