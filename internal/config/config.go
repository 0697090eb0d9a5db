// Package config assembles runtime settings for the FrameCheck client from
// layered sources: defaults, then a .env / environment overlay, then a JSON
// file, then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the FrameCheck client.
//
// Fields:
//   - ServerAddr: base URL of the analysis service.
//   - RequestTimeout: transport-level timeout for one upload request. Zero
//     disables the client-side timeout.
type Config struct {
	ServerAddr     string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with the local development defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://localhost:8000"
	c.RequestTimeout = 60 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present), and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
