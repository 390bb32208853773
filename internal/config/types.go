package config

// Config is the top-level nanobanana configuration, corresponding to nanobanana.yml.
type Config struct {
	SiteName    string          `yaml:"site_name" koanf:"site_name"`
	TitleSuffix string          `yaml:"title_suffix" koanf:"title_suffix"`
	BaseURL     string          `yaml:"base_url" koanf:"base_url"`
	Locale      string          `yaml:"locale" koanf:"locale"`
	Port        int             `yaml:"port" koanf:"port"`
	ContentDir  string          `yaml:"content_dir" koanf:"content_dir"`
	PublicDir   string          `yaml:"public_dir" koanf:"public_dir"` // images and other files served as-is
	OutputDir   string          `yaml:"output_dir" koanf:"output_dir"`
	DBPath      string          `yaml:"db_path" koanf:"db_path"`
	Revalidate  int             `yaml:"revalidate" koanf:"revalidate"` // seconds a rendered page stays cached
	AllowAll    bool            `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Ads         AdsConfig       `yaml:"ads" koanf:"ads"`
	Analytics   AnalyticsConfig `yaml:"analytics" koanf:"analytics"`
	Clipboard   ClipboardConfig `yaml:"clipboard" koanf:"clipboard"`
	Toast       ToastConfig     `yaml:"toast" koanf:"toast"`
}

// AdsConfig controls Google AdSense injection.
type AdsConfig struct {
	Enabled  bool   `yaml:"enabled" koanf:"enabled"`
	ClientID string `yaml:"client_id" koanf:"client_id"`
	// Slots maps a placement name (e.g. "tutorial-top") to an AdSense slot id.
	Slots map[string]string `yaml:"slots" koanf:"slots"`
}

// AnalyticsConfig controls the analytics snippets and web-vitals forwarding.
type AnalyticsConfig struct {
	GAMeasurementID string `yaml:"ga_measurement_id" koanf:"ga_measurement_id"`
	GAAPISecret     string `yaml:"ga_api_secret" koanf:"ga_api_secret"`
	VercelAnalytics bool   `yaml:"vercel_analytics" koanf:"vercel_analytics"`
	CollectVitals   bool   `yaml:"collect_vitals" koanf:"collect_vitals"`
}

// ClipboardConfig holds the copy-to-clipboard behaviour.
type ClipboardConfig struct {
	ResetDelayMS int `yaml:"reset_delay_ms" koanf:"reset_delay_ms"`
}

// ToastConfig is the copy shown in toast notifications, including the
// affiliate link used by the Pro version promotion.
type ToastConfig struct {
	ProVersionAffiliateLink string           `yaml:"pro_version_affiliate_link" koanf:"pro_version_affiliate_link"`
	CopyPrompt              PromotionToast   `yaml:"copy_prompt" koanf:"copy_prompt"`
	CopySuccess             NotificationText `yaml:"copy_success" koanf:"copy_success"`
	CopyError               NotificationText `yaml:"copy_error" koanf:"copy_error"`
	LinkCopied              NotificationText `yaml:"link_copied" koanf:"link_copied"`
}

// PromotionToast is the toast shown after a successful prompt copy.
type PromotionToast struct {
	Title            string `yaml:"title" koanf:"title"`
	Message          string `yaml:"message" koanf:"message"`
	ActionButtonText string `yaml:"action_button_text" koanf:"action_button_text"`
	DurationMS       int    `yaml:"duration_ms" koanf:"duration_ms"`
	OpenInNewTab     bool   `yaml:"open_in_new_tab" koanf:"open_in_new_tab"`
}

// NotificationText is a plain title/message toast.
type NotificationText struct {
	Title      string `yaml:"title" koanf:"title"`
	Message    string `yaml:"message" koanf:"message"`
	DurationMS int    `yaml:"duration_ms" koanf:"duration_ms"`
}
