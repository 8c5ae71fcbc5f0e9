package config

import (
	"os"
	"time"
)

// Render formats accepted by RenderFormat.
const (
	RenderText = "text"
	RenderHTML = "html"
)

// Config holds runtime settings for the kitchenkeeper CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the kitchen REST API, including the /api prefix.
//   - DatabasePath: SQLite file holding the local session.
//   - LogLevel, LogFormat: slog level name and handler ("text" or "json").
//   - RenderFormat: how views are printed, RenderText or RenderHTML.
//   - RequestTimeout: per-request timeout; zero leaves the transport default.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	LogLevel       string
	LogFormat      string
	RenderFormat   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080/api"
	c.DatabasePath = "kitchen.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.RenderFormat = RenderText
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config from os.Args. See LoadConfigFrom.
func LoadConfig() *Config {
	return LoadConfigFrom(os.Args[1:])
}

// LoadConfigFrom applies defaults, then overlays values from the JSON file
// named by -c/-config (if any) and finally command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfigFrom(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
