package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-shotchart-service/internal/cache"
	"github.com/preston-bernstein/nba-shotchart-service/internal/config"
	"github.com/preston-bernstein/nba-shotchart-service/internal/metrics"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers/nbastats"
)

// providerFactory assembles the provider with shared wrappers: rate limit, retry, then cache.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	cache   cache.Cache
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder, c cache.Cache) providerFactory {
	return providerFactory{logger: logger, metrics: metrics, cache: c}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	name := normalizeProviderName(cfg.Provider, base)
	if _, upstream := base.(*nbastats.Client); upstream {
		base = providers.NewRateLimitedProvider(base, float64(cfg.NBAStats.RPS), cfg.NBAStats.Burst, f.logger)
	}
	return f.wrap(cfg, base, name)
}

// wrap adds retries and caching. Cache hits never reach the rate limiter.
func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider, name string) providers.DataProvider {
	retrying := providers.NewRetryingProvider(base, f.logger, f.metrics, name, 0, 0)
	ttls := providers.CacheTTLs{
		Players: cfg.Cache.PlayersTTL,
		Data:    cfg.Cache.DataTTL,
	}
	return providers.NewCachingProvider(retrying, f.cache, ttls, f.metrics, f.logger)
}
