package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/kitchenkeeper/internal/flagx"
	"github.com/dmitrijs2005/kitchenkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Empty fields leave the
// current value untouched.
type JsonConfig struct {
	ServerBaseURL  string          `json:"server_base_url"`
	DatabasePath   string          `json:"database_path"`
	LogLevel       string          `json:"log_level"`
	LogFormat      string          `json:"log_format"`
	RenderFormat   string          `json:"render_format"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config in args. It is a no-op when no file is given and panics on read or
// decode errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIfNotEmpty(&cfg.ServerBaseURL, jc.ServerBaseURL)
	setIfNotEmpty(&cfg.DatabasePath, jc.DatabasePath)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotEmpty(&cfg.LogFormat, jc.LogFormat)
	setIfNotEmpty(&cfg.RenderFormat, jc.RenderFormat)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
