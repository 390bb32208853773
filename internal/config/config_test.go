package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BaseURL != "https://nanobanana.fans" {
		t.Errorf("expected default base_url, got %q", cfg.BaseURL)
	}
	if cfg.Revalidate != 86400 {
		t.Errorf("expected default revalidate 86400, got %d", cfg.Revalidate)
	}
	if cfg.Clipboard.ResetDelayMS != 2000 {
		t.Errorf("expected reset delay 2000, got %d", cfg.Clipboard.ResetDelayMS)
	}
	if cfg.Toast.CopyPrompt.DurationMS != 4000 {
		t.Errorf("expected promotion duration 4000, got %d", cfg.Toast.CopyPrompt.DurationMS)
	}
	if !cfg.Toast.CopyPrompt.OpenInNewTab {
		t.Error("expected promotion toast to open in a new tab")
	}
	if cfg.Ads.ClientID != DefaultAdSenseClient {
		t.Errorf("expected default adsense client, got %q", cfg.Ads.ClientID)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nanobanana.yml")

	original := DefaultConfig()
	original.SiteName = "Banana Test"
	original.BaseURL = "https://example.org"
	original.Port = 9090
	original.Revalidate = 60
	original.Ads.Slots = map[string]string{"tutorial-top": "1234567890"}
	original.Toast.ProVersionAffiliateLink = "https://example.org/pro"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.SiteName != original.SiteName {
		t.Errorf("site_name: got %q, want %q", loaded.SiteName, original.SiteName)
	}
	if loaded.BaseURL != original.BaseURL {
		t.Errorf("base_url: got %q, want %q", loaded.BaseURL, original.BaseURL)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.Revalidate != original.Revalidate {
		t.Errorf("revalidate: got %d, want %d", loaded.Revalidate, original.Revalidate)
	}
	if loaded.Ads.Slots["tutorial-top"] != "1234567890" {
		t.Errorf("ads.slots: got %v", loaded.Ads.Slots)
	}
	if loaded.Toast.ProVersionAffiliateLink != original.Toast.ProVersionAffiliateLink {
		t.Errorf("affiliate link: got %q", loaded.Toast.ProVersionAffiliateLink)
	}
	if loaded.Toast.CopyPrompt.Title != original.Toast.CopyPrompt.Title {
		t.Errorf("toast title: got %q, want %q", loaded.Toast.CopyPrompt.Title, original.Toast.CopyPrompt.Title)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.SiteName != "Nano Banana" {
		t.Errorf("expected default site name, got %q", cfg.SiteName)
	}
}

func TestLoadTrimsBaseURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nanobanana.yml")
	if err := os.WriteFile(path, []byte("base_url: https://example.org/\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseURL != "https://example.org" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.BaseURL)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nanobanana.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("NANOBANANA_SITE_NAME", "From Env")
	t.Setenv("NANOBANANA_ANALYTICS__GA_MEASUREMENT_ID", "G-TEST123")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.SiteName != "From Env" {
		t.Errorf("env override failed: got %q", loaded.SiteName)
	}
	if loaded.Analytics.GAMeasurementID != "G-TEST123" {
		t.Errorf("nested env override failed: got %q", loaded.Analytics.GAMeasurementID)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NANOBANANA_PORT", "port"},
		{"NANOBANANA_ADS__CLIENT_ID", "ads.client_id"},
		{"NANOBANANA_TOAST__COPY_PROMPT__TITLE", "toast.copy_prompt.title"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty site name", func(c *Config) { c.SiteName = "" }},
		{"empty base url", func(c *Config) { c.BaseURL = "" }},
		{"relative base url", func(c *Config) { c.BaseURL = "/banana" }},
		{"bad scheme", func(c *Config) { c.BaseURL = "ftp://nanobanana.fans" }},
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"huge port", func(c *Config) { c.Port = 70000 }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"negative revalidate", func(c *Config) { c.Revalidate = -1 }},
		{"negative reset delay", func(c *Config) { c.Clipboard.ResetDelayMS = -1 }},
		{"zero reset delay", func(c *Config) { c.Clipboard.ResetDelayMS = 0 }},
		{"zero success duration", func(c *Config) { c.Toast.CopySuccess.DurationMS = 0 }},
		{"relative affiliate link", func(c *Config) { c.Toast.ProVersionAffiliateLink = "pro?ref=x" }},
		{"bad adsense client", func(c *Config) { c.Ads.ClientID = "pub-123" }},
		{"secret without id", func(c *Config) { c.Analytics.GAAPISecret = "s3cret" }},
		{"negative toast duration", func(c *Config) { c.Toast.CopyPrompt.DurationMS = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateAdsDisabledIgnoresClient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ads.Enabled = false
	cfg.Ads.ClientID = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled ads should not require a client id: %v", err)
	}
}

func TestAbsoluteURL(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		path string
		want string
	}{
		{"", "https://nanobanana.fans"},
		{"/", "https://nanobanana.fans"},
		{"/prompts", "https://nanobanana.fans/prompts"},
		{"tutorials/getting-started", "https://nanobanana.fans/tutorials/getting-started"},
	}
	for _, tt := range tests {
		if got := cfg.AbsoluteURL(tt.path); got != tt.want {
			t.Errorf("AbsoluteURL(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLoadDotEnvMissing(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("NANOBANANA_DOTENV_PROBE=loaded\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NANOBANANA_DOTENV_PROBE", "")
	os.Unsetenv("NANOBANANA_DOTENV_PROBE")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("NANOBANANA_DOTENV_PROBE"); got != "loaded" {
		t.Errorf("expected value from .env, got %q", got)
	}
}
