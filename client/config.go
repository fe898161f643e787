package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups the settings New needs. Values are taken from environment
// variables with the prefix "TWITCH_". Example: TWITCH_CLIENT_ID=abc
// TWITCH_HTTP_TIMEOUT=10s .
type Config struct {
	ClientID     string `envconfig:"CLIENT_ID"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`

	BaseURL  string `envconfig:"BASE_URL"  default:"https://api.twitch.tv/kraken/"`
	APIURL   string `envconfig:"API_URL"   default:"http://api.twitch.tv/api/"`
	UsherURL string `envconfig:"USHER_URL" default:"http://usher.twitch.tv/api/channel/hls/"`

	// HTTPTimeout of zero leaves requests bounded only by their context.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`
	Debug       bool          `envconfig:"DEBUG"`
}

// LoadConfig populates Config from environment variables (prefix TWITCH_).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("TWITCH", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return cfg, nil
}

// NewFromConfig constructs a Client from cfg. opts are applied after the
// options derived from cfg and may override them.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	var base []Option
	if cfg.BaseURL != "" {
		base = append(base, WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIURL != "" {
		base = append(base, WithAPIURL(cfg.APIURL))
	}
	if cfg.UsherURL != "" {
		base = append(base, WithUsherURL(cfg.UsherURL))
	}
	if cfg.HTTPTimeout > 0 {
		base = append(base, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	if cfg.Debug {
		base = append(base, WithDebugLogging(true))
	}
	return New(cfg.ClientID, cfg.ClientSecret, append(base, opts...)...)
}
