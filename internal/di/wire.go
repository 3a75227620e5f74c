//go:build wireinject
// +build wireinject

package di

import (
	"TickerGraph/pkg/config"
	"TickerGraph/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Infrastructure
		ProvideLogger,
		ProvideMarketData,
		ProvideMatrixCache,
		ProvideResponseCache,
		ProvideRateLimiter,

		// Use cases
		ProvideStatsFetcher,
		ProvideParentSelector,
		ProvideIntelAggregator,

		// HTTP
		ProvideIntelHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
