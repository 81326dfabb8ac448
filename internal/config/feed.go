package config

// FeedConfig controls how we talk to the upstream schedule feed.
type FeedConfig struct {
	BaseURL  string
	APIKey   string
	MaxPages int
}

func loadFeed() FeedConfig {
	return FeedConfig{
		BaseURL:  envOrDefault(envFeedBaseURL, defaultFeedBaseURL),
		APIKey:   envOrDefault(envFeedAPIKey, ""),
		MaxPages: intEnvOrDefault(envFeedMaxPages, defaultFeedMaxPages),
	}
}
