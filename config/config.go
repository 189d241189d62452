package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Amadeus AmadeusConfig `yaml:"amadeus"`
	Search  SearchConfig  `yaml:"search"`
	Cache   CacheConfig   `yaml:"cache"`
}

type ServerConfig struct {
	Port string `yaml:"port" env:"PORT" env-default:"8000"`
}

type AmadeusConfig struct {
	ClientID     string `yaml:"client_id" env:"AMADEUS_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"AMADEUS_CLIENT_SECRET"`
	BaseURL      string `yaml:"base_url" env:"AMADEUS_BASE_URL" env-default:"https://api.amadeus.com"`
}

// Configured reports whether provider credentials are present. Absence
// is a valid state that narrows the service to synthetic-only results.
func (a AmadeusConfig) Configured() bool {
	return a.ClientID != "" && a.ClientSecret != ""
}

type SearchConfig struct {
	// UseLiveAPI enables the Amadeus provider attempt. Without
	// credentials the flag is effectively ignored.
	UseLiveAPI bool `yaml:"use_live_api" env:"USE_REAL_API" env-default:"false"`

	// FallbackToSynthetic enables generated offers when the provider
	// is disabled, unconfigured, or fails.
	FallbackToSynthetic bool `yaml:"fallback_to_synthetic" env:"FALLBACK_TO_SYNTHETIC" env-default:"true"`

	// BaseFareRatio estimates the base fare when the provider omits
	// it: base = ratio * total.
	BaseFareRatio float64 `yaml:"base_fare_ratio" env:"BASE_FARE_RATIO" env-default:"0.85"`

	// ScanRatePerSecond throttles successive provider calls during
	// multi-date scans. Zero disables pacing.
	ScanRatePerSecond float64 `yaml:"scan_rate_per_second" env:"SCAN_RATE_PER_SECOND" env-default:"10"`
}

type CacheConfig struct {
	Path string `yaml:"path" env:"CACHE_DB_PATH" env-default:"flight_cache.db"`
}

// Load reads configuration from config.yaml and environment variables.
// Priority: Env Vars > Config File > Defaults.
func Load() (*Config, error) {
	var cfg Config

	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		// No config file; fall back to env vars alone.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
