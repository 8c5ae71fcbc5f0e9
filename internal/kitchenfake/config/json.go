package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/kitchenkeeper/internal/flagx"
	"github.com/dmitrijs2005/kitchenkeeper/internal/timex"
)

// JsonConfig is the intermediate shape used to read the JSON config file.
// token_validity accepts "90m" style strings or integer nanoseconds.
type JsonConfig struct {
	ListenAddr    string          `json:"listen_addr"`
	SecretKey     string          `json:"secret_key"`
	TokenValidity *timex.Duration `json:"token_validity"`
	LogLevel      string          `json:"log_level"`
	LogFormat     string          `json:"log_format"`
	Seed          *bool           `json:"seed"`
}

// parseJson loads values from the file named by -c/-config into config.
// Missing keys keep their current value. Read or decode errors panic.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ListenAddr != "" {
		config.ListenAddr = c.ListenAddr
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidity != nil {
		config.TokenValidity = c.TokenValidity.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.LogFormat != "" {
		config.LogFormat = c.LogFormat
	}
	if c.Seed != nil {
		config.Seed = *c.Seed
	}
}
