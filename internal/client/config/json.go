package config

import (
	"encoding/json"
	"os"

	"github.com/amelnikov/learnly/internal/flagx"
	"github.com/amelnikov/learnly/internal/timex"
)

// jsonConfig is the DTO for the optional JSON file. timex.Duration lets the
// timeout be written either as "10s" or as integer nanoseconds.
type jsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	CDNBaseURL     string         `json:"cdn_base_url"`
	StorePath      *string        `json:"store_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJSON overlays Config with values from the JSON file named by the
// -c/-config flags. No flag means no JSON layer. Read or unmarshal errors
// panic: a config file that exists but cannot be used is a startup defect.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.CDNBaseURL != "" {
		cfg.CDNBaseURL = jc.CDNBaseURL
	}
	if jc.StorePath != nil {
		cfg.StorePath = *jc.StorePath
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
