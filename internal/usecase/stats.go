package usecase

import (
	"context"

	"TickerGraph/internal/domain/models"
	drepo "TickerGraph/internal/domain/repository"
	"TickerGraph/internal/service/ticker"
	applogger "TickerGraph/pkg/logger"
	"TickerGraph/pkg/util"
)

// StatsFetcher derives per-instrument snapshot stats from recent history.
type StatsFetcher struct {
	provider drepo.MarketData
	period   string
	interval string
	l        *applogger.Logger
}

func NewStatsFetcher(provider drepo.MarketData, period, interval string, l *applogger.Logger) *StatsFetcher {
	return &StatsFetcher{provider: provider, period: period, interval: interval, l: l}
}

// Fetch builds a stats snapshot for symbol. It reports ok=false when the
// provider has no data or errors; data-availability problems never
// propagate as errors from here.
func (f *StatsFetcher) Fetch(ctx context.Context, symbol string) (models.StockStats, bool) {
	hist, err := f.provider.History(ctx, symbol, f.period, f.interval)
	if err != nil {
		if f.l != nil {
			f.l.Debug("stats history unavailable", applogger.String("symbol", symbol), applogger.Error(err))
		}
		return models.StockStats{}, false
	}
	if len(hist) == 0 {
		return models.StockStats{}, false
	}

	curr := hist[len(hist)-1].Close
	prev := curr
	if len(hist) > 1 {
		prev = hist[len(hist)-2].Close
	}
	if prev == 0 {
		prev = curr
	}

	currVol := hist[len(hist)-1].Volume
	var volSum float64
	for _, b := range hist {
		volSum += b.Volume
	}
	avgVol := volSum / float64(len(hist))

	// the provider's published long-run average wins over the windowed mean
	if info, err := f.provider.Info(ctx, symbol); err == nil && info.AverageVolume > 0 {
		avgVol = info.AverageVolume
	}

	var change float64
	if prev != 0 {
		change = (curr - prev) / prev * 100
	}
	change = util.SafeFloat(change)

	return models.StockStats{
		Symbol:    symbol,
		Label:     ticker.Label(symbol),
		Price:     util.FormatPrice(util.SafeFloat(curr)),
		Change:    change,
		IsUp:      change > 0,
		Volume:    util.SafeFloat(currVol),
		AvgVolume: util.SafeFloat(avgVol),
	}, true
}
