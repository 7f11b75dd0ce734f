package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if err := c.Coaching.validate(); err != nil {
		return fmt.Errorf("coaching: %w", err)
	}

	if c.RateLimit.GenerationPerMinute <= 0 {
		return fmt.Errorf("rate_limit.generation_per_minute must be > 0 (got %d)", c.RateLimit.GenerationPerMinute)
	}

	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (g *GenerationConfig) validate() error {
	g.Provider = strings.ToLower(strings.TrimSpace(g.Provider))
	if !g.IsKnownProvider() {
		return fmt.Errorf("unknown provider %q (want one of %s)", g.Provider, strings.Join(KnownProviders(), ", "))
	}
	if g.Provider == ProviderAnthropic && g.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %q", g.Provider)
	}
	if g.Provider == ProviderHuggingFace && g.BaseURL == "" {
		return fmt.Errorf("base_url is required for provider %q", g.Provider)
	}
	if g.Temperature < 0 || g.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", g.Temperature)
	}
	if g.MaxLength <= 0 {
		return fmt.Errorf("max_length must be > 0 (got %d)", g.MaxLength)
	}
	if g.MinResponseLength < 0 {
		return fmt.Errorf("min_response_length must be >= 0 (got %d)", g.MinResponseLength)
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", g.Timeout)
	}
	return nil
}

func (c *CoachingConfig) validate() error {
	if c.RecentWindow <= 0 {
		return fmt.Errorf("recent_window must be > 0 (got %d)", c.RecentWindow)
	}
	if c.ReminderWindow <= 0 {
		return fmt.Errorf("reminder_window must be > 0 (got %d)", c.ReminderWindow)
	}
	if c.SentimentWindow <= 0 {
		return fmt.Errorf("sentiment_window must be > 0 (got %d)", c.SentimentWindow)
	}
	if c.BatchConcurrency <= 0 {
		return fmt.Errorf("batch_concurrency must be > 0 (got %d)", c.BatchConcurrency)
	}
	return nil
}
