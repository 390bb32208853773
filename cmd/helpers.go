package cmd

import (
	"fmt"
	"time"

	"github.com/nanobanana-fans/nanobanana/internal/config"
	"github.com/nanobanana-fans/nanobanana/internal/content"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `nanobanana init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadCatalog reads the content catalog from --content, then the config's
// content_dir, then the embedded copy.
func loadCatalog(cfg *config.Config) (*content.Catalog, error) {
	dir := contentDir
	if dir == "" && cfg != nil {
		dir = cfg.ContentDir
	}
	if dir == "" {
		return content.LoadDefault()
	}
	catalog, err := content.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("loading content from %s: %w", dir, err)
	}
	return catalog, nil
}

func resetDelayOf(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
