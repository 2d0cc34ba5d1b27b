package config

const (
	envSportsBaseURL = "SPORTS_API_BASE_URL"
	envSportsAPIKey  = "SPORTS_API_KEY"

	defaultSportsBaseURL = "http://localhost:8000"
)

// SportsDataConfig controls how we talk to the upstream sports-data API.
type SportsDataConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

func loadSportsData() SportsDataConfig {
	return SportsDataConfig{
		BaseURL: envOrDefault(envSportsBaseURL, defaultSportsBaseURL),
		APIKey:  envOrDefault(envSportsAPIKey, ""),
	}
}
