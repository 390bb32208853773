package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "NANOBANANA_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (NANOBANANA_*). A double underscore
// descends into a nested section: NANOBANANA_ADS__ENABLED -> ads.enabled.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.SiteName == "" {
		return fmt.Errorf("site_name is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid base_url %q: must be an absolute http(s) URL", c.BaseURL)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Revalidate < 0 {
		return fmt.Errorf("revalidate must be non-negative")
	}
	if c.Clipboard.ResetDelayMS <= 0 {
		return fmt.Errorf("clipboard.reset_delay_ms must be positive")
	}
	if c.Ads.Enabled && !strings.HasPrefix(c.Ads.ClientID, "ca-pub-") {
		return fmt.Errorf("invalid ads.client_id %q: must start with ca-pub-", c.Ads.ClientID)
	}
	if c.Analytics.GAAPISecret != "" && c.Analytics.GAMeasurementID == "" {
		return fmt.Errorf("analytics.ga_api_secret requires analytics.ga_measurement_id")
	}
	if c.Toast.CopyPrompt.DurationMS <= 0 || c.Toast.CopySuccess.DurationMS <= 0 {
		return fmt.Errorf("toast durations must be positive")
	}
	if link := c.Toast.ProVersionAffiliateLink; link != "" {
		if u, err := url.Parse(link); err != nil || u.Host == "" {
			return fmt.Errorf("invalid toast.pro_version_affiliate_link %q", link)
		}
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AbsoluteURL joins a site path onto BaseURL.
func (c *Config) AbsoluteURL(path string) string {
	if path == "" || path == "/" {
		return c.BaseURL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path
}
