package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.LLM.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", cfg.LLM.Provider)
	}
	if cfg.Catalog.JobCount != 100 || cfg.Catalog.TalentCount != 50 {
		t.Errorf("catalog counts = %d/%d, want 100/50", cfg.Catalog.JobCount, cfg.Catalog.TalentCount)
	}
	if cfg.Search.JobResultLimit != 5 || cfg.Search.TalentResultLimit != 4 || cfg.Search.CompanyResultLimit != 4 {
		t.Error("search limits should default to 5/4/4")
	}
	if cfg.Sessions.TTL != time.Hour {
		t.Errorf("session TTL = %v, want 1h", cfg.Sessions.TTL)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
catalog:
  job_count: 10
  talent_count: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Catalog.JobCount != 10 || cfg.Catalog.TalentCount != 5 {
		t.Errorf("catalog counts = %d/%d, want 10/5", cfg.Catalog.JobCount, cfg.Catalog.TalentCount)
	}
	// Unset sections keep their defaults.
	if cfg.Search.JobResultLimit != 5 {
		t.Errorf("job result limit = %d, want 5", cfg.Search.JobResultLimit)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("CATALOG_JOB_COUNT", "20")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.LLM.APIKey != "test-key" {
		t.Errorf("api key = %q", cfg.LLM.APIKey)
	}
	if cfg.Catalog.JobCount != 20 {
		t.Errorf("job count = %d, want 20", cfg.Catalog.JobCount)
	}
}

func TestLoadConfigUnexpandedPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
llm:
  api_key: "${DOES_NOT_EXIST_API_KEY}"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.LLM.APIKey != "" {
		t.Errorf("unexpanded placeholder should read as absent, got %q", cfg.LLM.APIKey)
	}
}
