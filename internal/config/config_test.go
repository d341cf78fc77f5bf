package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SERPAPI_KEY", "serp-test")
	// Pin everything optional so ambient env doesn't leak into assertions.
	for _, key := range []string{"HOST", "PORT", "OPENAI_MODEL", "OPENAI_BASE_URL", "FETCH_TIMEOUT", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 8000 {
		t.Errorf("unexpected server defaults: %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("unexpected default model: %s", cfg.OpenAI.Model)
	}
	if cfg.Fetch.Timeout != 5*time.Second {
		t.Errorf("unexpected fetch timeout: %v", cfg.Fetch.Timeout)
	}
}

func TestLoad_MissingOpenAIKey(t *testing.T) {
	setRequired(t)
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("expected OPENAI_API_KEY error, got %v", err)
	}
}

func TestLoad_MissingSerpAPIKey(t *testing.T) {
	setRequired(t)
	t.Setenv("SERPAPI_KEY", "")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "SERPAPI_KEY") {
		t.Errorf("expected SERPAPI_KEY error, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("FETCH_TIMEOUT", "2s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("expected model override, got %s", cfg.OpenAI.Model)
	}
	if cfg.Fetch.Timeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %v", cfg.Fetch.Timeout)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 3 {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid PORT")
	}
}
