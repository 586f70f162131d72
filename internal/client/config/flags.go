package config

import (
	"flag"
	"os"
	"time"

	"github.com/amelnikov/learnly/internal/flagx"
)

// parseFlags overlays Config with command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the platform API
//	-cdn string base URL of the content-delivery host
//	-s string   path of the local state file ("" disables the store)
//	-t int      request timeout in seconds
//
// Arguments are filtered to the flags handled here so the loader does not
// trip over flags owned by other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-cdn", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the platform API")
	fs.StringVar(&cfg.CDNBaseURL, "cdn", cfg.CDNBaseURL, "base URL of the content-delivery host")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the local state file (empty disables it)")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
