// Package config loads runtime configuration for the kitchenkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the kitchen API
//	-d string   local session database path
//	-l string   log level
//	-f string   render format (text|html)
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so "30s" and integer nanoseconds both work:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080/api",
//	  "database_path": "kitchen.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "render_format": "text",
//	  "request_timeout": "30s"
//	}
package config
