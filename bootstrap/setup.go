package bootstrap

import (
	"context"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mpetrov/flightdesk/amadeus"
	"github.com/mpetrov/flightdesk/config"
	"github.com/mpetrov/flightdesk/log"
	"github.com/mpetrov/flightdesk/search"
	"github.com/mpetrov/flightdesk/store"
	"github.com/mpetrov/flightdesk/tools"
)

// App holds the initialized components of the service.
type App struct {
	DB       *gorm.DB
	Amadeus  *amadeus.Client
	Search   *search.Service
	Registry *tools.Registry
}

// Setup wires the application from configuration. Storage failures are
// logged and tolerated: the service runs cache-less rather than not at
// all.
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	db := openStore(ctx, cfg.Cache.Path)

	var client *amadeus.Client
	if cfg.Amadeus.Configured() {
		client = amadeus.NewClient(cfg.Amadeus.ClientID, cfg.Amadeus.ClientSecret, cfg.Amadeus.BaseURL)
	} else {
		log.Infof(ctx, "Amadeus credentials not configured, synthetic-only mode")
	}

	svc := search.NewService(db, client, cfg.Search)

	registry := tools.NewRegistry()
	registry.Register(&tools.SearchFlightsTool{Service: svc})
	registry.Register(&tools.AirportInfoTool{})
	registry.Register(&tools.ComparePricesTool{Service: svc})
	registry.Register(&tools.BestPriceTool{Service: svc})
	registry.Register(&tools.PriceHistoryTool{Service: svc})

	if cfg.Search.UseLiveAPI && client != nil {
		go probeProvider(ctx, client)
	}

	return &App{
		DB:       db,
		Amadeus:  client,
		Search:   svc,
		Registry: registry,
	}, nil
}

func openStore(ctx context.Context, path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Warnf(ctx, "cache store unavailable, running without cache: %v", err)
		return nil
	}
	if err := store.Migrate(db); err != nil {
		log.Warnf(ctx, "cache store migration failed, running without cache: %v", err)
		return nil
	}
	log.Infof(ctx, "cache store ready at %s", path)
	return db
}

// probeProvider checks provider connectivity at startup. Outcome is
// logged only; searches fall back on their own.
func probeProvider(ctx context.Context, client *amadeus.Client) {
	if _, err := client.Token(ctx); err != nil {
		log.Warnf(ctx, "Amadeus connectivity probe failed: %v", err)
		return
	}
	log.Infof(ctx, "Amadeus connectivity probe succeeded")
}
