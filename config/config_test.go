package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		// Save original env vars
		origUseReal := os.Getenv("USE_REAL_API")
		origAmadeusID := os.Getenv("AMADEUS_CLIENT_ID")
		origAmadeusSecret := os.Getenv("AMADEUS_CLIENT_SECRET")

		// Clear env vars for this test
		os.Unsetenv("USE_REAL_API")
		os.Unsetenv("AMADEUS_CLIENT_ID")
		os.Unsetenv("AMADEUS_CLIENT_SECRET")

		defer func() {
			// Restore original env vars
			if origUseReal != "" {
				os.Setenv("USE_REAL_API", origUseReal)
			}
			if origAmadeusID != "" {
				os.Setenv("AMADEUS_CLIENT_ID", origAmadeusID)
			}
			if origAmadeusSecret != "" {
				os.Setenv("AMADEUS_CLIENT_SECRET", origAmadeusSecret)
			}
		}()

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		// Test default values
		assert.False(t, cfg.Search.UseLiveAPI)
		assert.True(t, cfg.Search.FallbackToSynthetic)
		assert.Equal(t, 0.85, cfg.Search.BaseFareRatio)
		assert.Equal(t, "flight_cache.db", cfg.Cache.Path)
		assert.Equal(t, "https://api.amadeus.com", cfg.Amadeus.BaseURL)
		assert.False(t, cfg.Amadeus.Configured())
	})

	t.Run("EnvironmentVariables", func(t *testing.T) {
		origUseReal := os.Getenv("USE_REAL_API")
		origAmadeusID := os.Getenv("AMADEUS_CLIENT_ID")
		origAmadeusSecret := os.Getenv("AMADEUS_CLIENT_SECRET")

		os.Setenv("USE_REAL_API", "true")
		os.Setenv("AMADEUS_CLIENT_ID", "test-id")
		os.Setenv("AMADEUS_CLIENT_SECRET", "test-secret")

		defer func() {
			if origUseReal != "" {
				os.Setenv("USE_REAL_API", origUseReal)
			} else {
				os.Unsetenv("USE_REAL_API")
			}
			if origAmadeusID != "" {
				os.Setenv("AMADEUS_CLIENT_ID", origAmadeusID)
			} else {
				os.Unsetenv("AMADEUS_CLIENT_ID")
			}
			if origAmadeusSecret != "" {
				os.Setenv("AMADEUS_CLIENT_SECRET", origAmadeusSecret)
			} else {
				os.Unsetenv("AMADEUS_CLIENT_SECRET")
			}
		}()

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.True(t, cfg.Search.UseLiveAPI)
		assert.Equal(t, "test-id", cfg.Amadeus.ClientID)
		assert.True(t, cfg.Amadeus.Configured())
	})
}
