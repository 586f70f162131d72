package config

import "time"

// Config holds runtime settings for the learnly client.
//
// Fields:
//   - APIBaseURL: root of the platform REST API.
//   - CDNBaseURL: root of the content-delivery host videos are fetched from.
//   - StorePath: path of the local SQLite state file. Empty disables the
//     persistent session store; the client then starts unauthenticated on
//     every run.
//   - RequestTimeout: per-request timeout on the HTTP client.
type Config struct {
	APIBaseURL     string
	CDNBaseURL     string
	StorePath      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with local-development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.CDNBaseURL = "http://localhost:8080/cdn"
	c.StorePath = "learnly.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config by applying defaults, then overlaying
// environment variables, an optional JSON file, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
