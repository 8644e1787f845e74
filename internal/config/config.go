// Package config holds the tool's process configuration: upstream endpoint
// bases, network policy knobs, and the serve address.
package config

import (
	"errors"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains process configuration.
type Config struct {
	// SearchURL is the bulk search CSV export endpoint.
	SearchURL string `koanf:"search_url"`

	// FeedURL is the per-game pitch feed endpoint.
	FeedURL string `koanf:"feed_url"`

	// HTTPTimeoutSec bounds each upstream request.
	HTTPTimeoutSec int `koanf:"http_timeout_sec"`

	// EnrichDelayMS is the fixed pause between requests in the bulk
	// enrichment loop, to stay under undocumented upstream rate limits.
	EnrichDelayMS int `koanf:"enrich_delay_ms"`

	// ServeAddr is the HTTP listen address for the serve command.
	ServeAddr string `koanf:"serve_addr"`

	// CacheTTLSec is the serve command's response cache lifetime.
	CacheTTLSec int `koanf:"cache_ttl_sec"`
}

// Defaults returns a Config with working defaults for every field.
func Defaults() *Config {
	return &Config{
		SearchURL:      "https://baseballsavant.mlb.com/statcast_search/csv",
		FeedURL:        "https://baseballsavant.mlb.com/gf",
		HTTPTimeoutSec: 60,
		EnrichDelayMS:  750,
		ServeAddr:      ":8790",
		CacheTTLSec:    180,
	}
}

// Load layers defaults, an optional YAML file, and PITCHMETRICS_* env vars,
// lowest to highest precedence. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// PITCHMETRICS_SERVE_ADDR -> serve_addr, etc.
	envProvider := env.Provider("PITCHMETRICS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PITCHMETRICS_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *Defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.SearchURL == "" || cfg.FeedURL == "" {
		return nil, errors.New("config: upstream URLs must not be empty")
	}
	return &cfg, nil
}
