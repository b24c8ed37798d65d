// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"stock_visualizer/internal/feature/catalog/adapters/eodhd"
	"stock_visualizer/internal/feature/catalog/adapters/filecache"
	"stock_visualizer/internal/feature/catalog/usecase"
	infrahttp "stock_visualizer/internal/platform/http"
	"stock_visualizer/internal/shared/ratelimiter"
)

// eodhdCallsPerMinute keeps the client under the EODHD request quota.
const eodhdCallsPerMinute = 60

// NewCatalog creates a fully configured Catalog backed by the EODHD API and
// the JSON file cache at cachePath (empty means the default path).
// A missing API token is the one fatal configuration error and is returned
// here, before any network or file access happens.
func NewCatalog(cachePath string) (*usecase.Catalog, error) {
	cfg := eodhd.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(eodhdCallsPerMinute, time.Minute)
	exchange := eodhd.NewExchangeClient(cfg, httpClient, limiter)
	cache := filecache.NewSymbolCache(cachePath)
	return usecase.NewCatalog(cache, exchange), nil
}
