// Package config handles configuration for the fake kitchen API server,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the fake kitchen API.
//
// Fields:
//   - ListenAddr: bind address of the HTTP endpoint.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Test-only default.
//   - TokenValidity: lifetime of issued bearer tokens.
//   - LogLevel, LogFormat: slog level name and handler ("text" or "json").
//   - Seed: create a demo user with sample recipes and pantry items.
type Config struct {
	ListenAddr    string
	SecretKey     string
	TokenValidity time.Duration
	LogLevel      string
	LogFormat     string
	Seed          bool
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.SecretKey = "secretKey"
	c.TokenValidity = 60 * time.Minute
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.Seed = false
}

// LoadConfig builds a Config from os.Args. See LoadConfigFrom.
func LoadConfig() *Config {
	return LoadConfigFrom(os.Args[1:])
}

// LoadConfigFrom applies defaults, then overlays values from an optional
// JSON file and finally from command-line flags.
func LoadConfigFrom(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
