package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Mode != "chapter" {
		t.Errorf("Mode = %q, want chapter", cfg.Mode)
	}
	if cfg.Palette != "Default" {
		t.Errorf("Palette = %q, want Default", cfg.Palette)
	}
	if cfg.TopN != 50 {
		t.Errorf("TopN = %d, want 50", cfg.TopN)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("Cache.Backend = %q, want file", cfg.Cache.Backend)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
db_path = "/data/kjv.sqlite"
mode = "verse"
dark = true
top_n = 25

[cache]
backend = "redis"

[cache.redis]
addr = "cache.local:6379"
db = 2
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.DBPath != "/data/kjv.sqlite" || cfg.Mode != "verse" || !cfg.Dark {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.TopN != 25 {
		t.Errorf("TopN = %d, want 25", cfg.TopN)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.Redis.Addr != "cache.local:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("cache cfg = %+v", cfg.Cache)
	}
	// Unset fields keep their defaults.
	if cfg.Palette != "Default" || cfg.Treemap != "squarified" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigRejectsBadTopN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("top_n = 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig should reject non-positive top_n")
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}
