package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/dmitrijs2005/kitchenkeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   base URL of the kitchen API (e.g. http://127.0.0.1:8080/api)
//	-d string   path of the local SQLite session database
//	-l string   log level: debug, info, warn, error
//	-f string   render format: text or html
//	-t int      request timeout in seconds (0 = transport default)
//
// Unknown arguments are filtered out first so -c/-config and test-runner flags
// do not interfere. Invalid values panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-l", "-f", "-t"})

	fs := flag.NewFlagSet("kitchenkeeper", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the kitchen API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local session database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.RenderFormat, "f", cfg.RenderFormat, "render format (text|html)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if cfg.RenderFormat != RenderText && cfg.RenderFormat != RenderHTML {
		panic(fmt.Sprintf("unknown render format %q", cfg.RenderFormat))
	}
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
