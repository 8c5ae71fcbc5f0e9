package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/api", c.ServerBaseURL)
	assert.Equal(t, "kitchen.db", c.DatabasePath)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, RenderText, c.RenderFormat)
	assert.Zero(t, c.RequestTimeout)
}

func TestLoadConfigFrom_NoArgsUsesDefaults(t *testing.T) {
	cfg := LoadConfigFrom(nil)

	require.NotNil(t, cfg)
	assert.Equal(t, "http://127.0.0.1:8080/api", cfg.ServerBaseURL)
	assert.Equal(t, "kitchen.db", cfg.DatabasePath)
}

func TestLoadConfigFrom_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_base_url": "http://json:9000/api",
		"database_path":   "json.db",
		"request_timeout": "15s",
	})

	cfg := LoadConfigFrom([]string{"-c", path, "-a", "http://flag:9100/api"})

	assert.Equal(t, "http://flag:9100/api", cfg.ServerBaseURL)
	assert.Equal(t, "json.db", cfg.DatabasePath)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
