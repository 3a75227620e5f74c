package di

import (
	"fmt"

	drepo "TickerGraph/internal/domain/repository"
	"TickerGraph/internal/handler/api"
	"TickerGraph/internal/service/cache"
	"TickerGraph/internal/service/marketdata"
	"TickerGraph/internal/service/provider/yahoo"
	"TickerGraph/internal/service/ratelimit"
	"TickerGraph/internal/usecase"
	"TickerGraph/pkg/config"
	xhttp "TickerGraph/pkg/http"
	applogger "TickerGraph/pkg/logger"
	"TickerGraph/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMarketData creates the Yahoo Finance market data client.
func ProvideMarketData(cfg *config.Config, l *applogger.Logger) drepo.MarketData {
	return yahoo.New(cfg.Provider.BaseURL, cfg.Provider.UserAgent, cfg.Provider.Timeout, l)
}

// ProvideMatrixCache creates the shared benchmark price matrix cache.
func ProvideMatrixCache(cfg *config.Config) *marketdata.MatrixCache {
	return marketdata.NewMatrixCache(cfg.Market.CacheTTL)
}

// ProvideResponseCache creates the response byte cache. With Redis enabled
// it layers the in-process cache over Redis so instances share results.
func ProvideResponseCache(cfg *config.Config) cache.BytesCache {
	mem := cache.NewTTLCache()
	if !cfg.Cache.Redis.Enabled {
		return mem
	}
	rc := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Cache.Redis.Addr,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
	})
	return cache.NewLayered(mem, rc)
}

// ProvideRateLimiter creates the per-client request limiter.
func ProvideRateLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvideStatsFetcher creates the snapshot stats use case.
func ProvideStatsFetcher(cfg *config.Config, md drepo.MarketData, l *applogger.Logger) *usecase.StatsFetcher {
	return usecase.NewStatsFetcher(md, cfg.Market.StatsPeriod, cfg.Market.Interval, l)
}

// ProvideParentSelector creates the correlation selector use case.
func ProvideParentSelector(
	cfg *config.Config,
	md drepo.MarketData,
	mc *marketdata.MatrixCache,
	l *applogger.Logger,
) *usecase.ParentSelector {
	return usecase.NewParentSelector(
		md,
		mc,
		cfg.Market.Benchmarks,
		cfg.Market.PrimarySymbol,
		cfg.Market.HistoryPeriod,
		cfg.Market.Interval,
		cfg.Market.MinCorrelation,
		l,
	)
}

// ProvideIntelAggregator creates the graph aggregation use case.
func ProvideIntelAggregator(
	cfg *config.Config,
	stats *usecase.StatsFetcher,
	parents *usecase.ParentSelector,
	l *applogger.Logger,
) *usecase.IntelAggregator {
	return usecase.NewIntelAggregator(stats, parents, cfg.Market.PrimarySymbol, l)
}

// ProvideIntelHandler creates the HTTP handler.
func ProvideIntelHandler(
	cfg *config.Config,
	agg *usecase.IntelAggregator,
	rc cache.BytesCache,
	rl *ratelimit.Limiter,
	l *applogger.Logger,
) xhttp.Handler {
	return api.NewIntelHandler(agg, rc, rl, cfg.Cache.ResponseTTL, l)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, h xhttp.Handler, l *applogger.Logger) *server.App {
	return server.New(cfg, h, l)
}
