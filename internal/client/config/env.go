package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig is the DTO for the environment layer. StorePath is a pointer so
// an explicitly empty STORE_PATH (disable the store) is distinguishable
// from an unset one.
type envConfig struct {
	APIBaseURL     string        `env:"API_URL"`
	CDNBaseURL     string        `env:"CDN_URL"`
	StorePath      *string       `env:"STORE_PATH"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// parseEnv overlays Config with values from the process environment,
// loading a .env file first when one is present in the working directory.
// Unset variables leave the existing values untouched.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.CDNBaseURL != "" {
		cfg.CDNBaseURL = ec.CDNBaseURL
	}
	if ec.StorePath != nil {
		cfg.StorePath = *ec.StorePath
	}
	if ec.RequestTimeout > 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
}
