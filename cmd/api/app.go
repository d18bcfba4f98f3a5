package main

import (
	"fmt"
	"log/slog"

	"haulplan/internal/cache"
	"haulplan/internal/config"
	"haulplan/internal/country"
	"haulplan/internal/location"
	"haulplan/internal/observability"
	"haulplan/internal/providers/ipgeo"
	"haulplan/internal/providers/nominatim"
	"haulplan/internal/providers/tripapi"
	"haulplan/internal/store"
	"haulplan/internal/timezone"
	"haulplan/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	cfg             *config.Config
	store           *store.Store
	metrics         *observability.Metrics
	countryService  country.Service
	locationService location.Service
	tripClient      *tripapi.Client
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	metrics, err := observability.New(prometheus.NewRegistry())
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	// The persistent cache is best effort. A broken database file must not
	// keep the service from starting; every consumer accepts a nil store.
	var st *store.Store
	if cfg.Store.Path != "" {
		st, err = store.Open(cfg.Store.Path, logger)
		if err != nil {
			logger.Warn("persistent cache unavailable, continuing without it", "error", err)
			st = nil
		}
	}

	// Country detection cascade: IP providers first, then the process
	// locale, then the host timezone. GPS correction uses the tzf lookup.
	ipClient := ipgeo.NewClient(cfg.IPGeo.Timeout, logger)
	countrySvc := country.NewService(
		[]country.Strategy{
			country.NewIPStrategy(ipClient),
			country.NewLocaleStrategy(),
			country.NewZoneStrategy(),
		},
		cfg.Cache.DetectionTTL,
		st,
		timezone.NewService(),
		logger,
	)

	gazetteer := nominatim.NewClient(cfg.Gazetteer.BaseURL, cfg.Gazetteer.APIKey, cfg.Gazetteer.Timeout, logger)
	searchCache := cache.New[[]types.LocationCandidate](cfg.Cache.SearchSize, cfg.Cache.SearchTTL)
	locationSvc := location.NewService(gazetteer, searchCache, st, metrics, logger)

	app := &App{
		router:          router,
		logger:          logger,
		cfg:             cfg,
		store:           st,
		metrics:         metrics,
		countryService:  countrySvc,
		locationService: locationSvc,
		tripClient:      tripapi.NewClient(cfg.TripAPI.BaseURL, cfg.TripAPI.Timeout, logger),
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// Close releases the persistent cache handle.
func (app *App) Close() {
	if app.store != nil {
		if err := app.store.Close(); err != nil {
			app.logger.Warn("failed to close store", "error", err)
		}
	}
}
