package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/tavaresm/garimpo/config"
	"github.com/tavaresm/garimpo/internal/api"
	"github.com/tavaresm/garimpo/internal/classify"
	"github.com/tavaresm/garimpo/internal/domain/models"
	"github.com/tavaresm/garimpo/internal/logger"
	"github.com/tavaresm/garimpo/internal/search"
	"github.com/tavaresm/garimpo/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the five provider adapters from configuration.
//   - Creates the process-wide query cache and daily quota guard.
//   - Wires the aggregation engine, service layer and HTTP handlers.
//   - Configures the Gin router with all routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function executed on shutdown.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	providers, err := buildProviders(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build providers: %w", err)
	}

	// Process-wide state: cache and quota live here and only here
	cache := search.NewQueryCache()
	quota := search.NewQuotaGuard(cfg.Quota.DailyMax)

	// Aggregation engine (business logic)
	agg := search.NewAggregator(providers, cache, quota)
	svc := service.NewProductService(agg)

	// Image classification capability (separate endpoint, no engine coupling)
	classifier := classify.NewInferenceClient(cfg.Inference.URL, cfg.Inference.Token, cfg.Inference.Timeout)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc, classifier)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(readiness(cfg))
	healthHandler.Register(router)

	// Report cache counters on shutdown
	cleanup := func() {
		st := cache.Stats()
		logger.L().Info().
			Int("entries", st.Entries).
			Uint64("hits", st.Hits).
			Uint64("misses", st.Misses).
			Msg("query cache at shutdown")
	}

	return router, cleanup, nil
}

// buildProviders assembles the fixed provider set from configuration.
func buildProviders(cfg config.Config) ([]search.Provider, error) {
	if cfg.Search.APIKey == "" || cfg.Search.CX == "" {
		return nil, fmt.Errorf("general search credentials missing")
	}
	if cfg.Actor.Token == "" {
		return nil, fmt.Errorf("actor token missing")
	}

	return []search.Provider{
		search.NewMarketplace(cfg.Market.Site, cfg.Market.Timeout),
		search.NewGeneralSearch(cfg.Search.APIKey, cfg.Search.CX, cfg.Search.Timeout),
		search.NewVendorSearch(models.ProviderShoppingVendorA, cfg.Search.APIKey, cfg.Search.CXVendorA, cfg.Search.Timeout),
		search.NewVendorSearch(models.ProviderShoppingVendorB, cfg.Search.APIKey, cfg.Search.CXVendorB, cfg.Search.Timeout),
		search.NewVisualSearch(cfg.Actor.Token, cfg.Actor.ActorID, cfg.Actor.Timeout),
	}, nil
}

// readiness reports nil when the load-bearing providers have credentials.
func readiness(cfg config.Config) func() error {
	return func() error {
		if cfg.Search.APIKey == "" || cfg.Search.CX == "" {
			return fmt.Errorf("search credentials not configured")
		}
		if cfg.Actor.Token == "" {
			return fmt.Errorf("actor token not configured")
		}
		return nil
	}
}
