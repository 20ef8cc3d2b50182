package config

import "os"

// Config holds every credential and setting the service reads from the
// environment. It is built once at startup and passed into the components
// that need it; nothing does ambient os.Getenv lookups after that.
//
// A missing source credential is not an error here: it degrades only the
// connectors that need it, which report a placeholder instead.
type Config struct {
	Port string

	NewsAPIKey   string
	SerperAPIKey string

	RedditClientID     string
	RedditClientSecret string
	RedditUserAgent    string

	LLMProvider     string
	OpenAIAPIKey    string
	AnthropicAPIKey string
}

func Load() *Config {
	return &Config{
		Port:               getenv("PORT", "8000"),
		NewsAPIKey:         os.Getenv("NEWS_API_KEY"),
		SerperAPIKey:       os.Getenv("SERPER_API_KEY"),
		RedditClientID:     os.Getenv("REDDIT_CLIENT_ID"),
		RedditClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
		RedditUserAgent:    os.Getenv("REDDIT_USER_AGENT"),
		LLMProvider:        getenv("LLM_PROVIDER", "openai"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:    os.Getenv("ANTHROPIC_API_KEY"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
