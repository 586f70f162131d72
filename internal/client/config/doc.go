// Package config loads runtime configuration for the learnly client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables (API_URL, CDN_URL, STORE_PATH,
//     REQUEST_TIMEOUT), with an optional .env file in the working
//     directory.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags (-a, -cdn, -s, -t), which override everything.
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "cdn_base_url": "http://localhost:8080/cdn",
//	  "store_path": "learnly.db",
//	  "request_timeout": "10s"
//	}
package config
