package repository

import (
	"context"

	"TickerGraph/internal/domain/models"
)

// MarketData is the external time-series provider boundary. Both operations
// may fail or return empty; every call site treats that as recoverable.
type MarketData interface {
	// History returns daily bars for one symbol over the given period
	// (e.g. "1y", "5d") and interval (e.g. "1d"), adjusted closes.
	History(ctx context.Context, symbol, period, interval string) ([]models.Bar, error)

	// Info returns provider-published metadata, notably the long-run
	// average volume when the provider has one.
	Info(ctx context.Context, symbol string) (models.InstrumentInfo, error)
}
