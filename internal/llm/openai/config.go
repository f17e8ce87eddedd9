package openai

import "time"

// Config holds OpenAI client settings.
type Config struct {
	Model       string
	APIKey      string
	BaseURL     string // defaults to the public API
	Temperature float32
	Timeout     time.Duration

	// Lenient re-validates after sanitizing near-miss output instead of
	// failing the job on the first schema mismatch.
	Lenient bool
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.Timeout <= 0 {
		c.Timeout = 45 * time.Second
	}
}
