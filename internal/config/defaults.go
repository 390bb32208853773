package config

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = "nanobanana.yml"

// DefaultAdSenseClient is the publisher id the site ships with.
const DefaultAdSenseClient = "ca-pub-8886185433147735"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:    "Nano Banana",
		TitleSuffix: "Nano Banana Fans",
		BaseURL:     "https://nanobanana.fans",
		Locale:      "en_US",
		Port:        8080,
		PublicDir:   "public",
		OutputDir:   "dist",
		DBPath:      "data/nanobanana.db",
		Revalidate:  86400,
		Ads: AdsConfig{
			Enabled:  true,
			ClientID: DefaultAdSenseClient,
			Slots:    map[string]string{},
		},
		Analytics: AnalyticsConfig{
			CollectVitals: true,
		},
		Clipboard: ClipboardConfig{
			ResetDelayMS: 2000,
		},
		Toast: DefaultToastConfig(),
	}
}

// DefaultToastConfig returns the stock toast copy.
func DefaultToastConfig() ToastConfig {
	return ToastConfig{
		ProVersionAffiliateLink: "https://example.com/pro?ref=your-affiliate-code",
		CopyPrompt: PromotionToast{
			Title:            "✨ Pro 版推荐",
			Message:          "想生成更好的效果？试试 Pro 版工具",
			ActionButtonText: "立即体验 →",
			DurationMS:       4000,
			OpenInNewTab:     true,
		},
		CopySuccess: NotificationText{
			Title:      "复制成功！",
			Message:    "Prompt 已复制到剪贴板",
			DurationMS: 2000,
		},
		CopyError: NotificationText{
			Title:   "复制失败",
			Message: "请重试或手动复制",
		},
		LinkCopied: NotificationText{
			Title:   "Link copied!",
			Message: "The page link has been copied to your clipboard.",
		},
	}
}
