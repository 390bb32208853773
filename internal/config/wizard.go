package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to nanobanana! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site identity.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.SiteName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = strings.TrimSpace(name)

	baseURLPrompt := promptui.Prompt{
		Label:   "Public base URL",
		Default: cfg.BaseURL,
		Validate: func(s string) error {
			if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
				return fmt.Errorf("must start with http:// or https://")
			}
			return nil
		},
	}
	baseURL, err := baseURLPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("invalid port")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Ads.
	adsPrompt := promptui.Select{
		Label: "Show Google AdSense units",
		Items: []string{"yes", "no"},
	}
	adsIdx, _, err := adsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("ads selection: %w", err)
	}
	cfg.Ads.Enabled = adsIdx == 0
	if cfg.Ads.Enabled {
		clientPrompt := promptui.Prompt{
			Label:   "AdSense publisher id",
			Default: cfg.Ads.ClientID,
		}
		client, err := clientPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("adsense client: %w", err)
		}
		cfg.Ads.ClientID = strings.TrimSpace(client)
	}

	// 4. Analytics.
	gaPrompt := promptui.Prompt{
		Label:   "Google Analytics measurement id (leave blank to disable)",
		Default: "",
	}
	ga, err := gaPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("analytics id: %w", err)
	}
	cfg.Analytics.GAMeasurementID = strings.TrimSpace(ga)

	// 5. Affiliate link for the Pro promotion toast.
	affPrompt := promptui.Prompt{
		Label:   "Pro version affiliate link",
		Default: cfg.Toast.ProVersionAffiliateLink,
	}
	aff, err := affPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("affiliate link: %w", err)
	}
	cfg.Toast.ProVersionAffiliateLink = strings.TrimSpace(aff)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Analytics.GAMeasurementID != "" {
		fmt.Printf("\nNote: Set %sANALYTICS__GA_API_SECRET to forward web vitals server-side.\n", EnvPrefix)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
