package usecase

import (
	"context"
	"errors"
	"time"

	"TickerGraph/internal/domain/models"
)

// fakeProvider serves canned history/info responses and counts History
// calls per symbol.
type fakeProvider struct {
	histories map[string][]models.Bar
	infos     map[string]models.InstrumentInfo
	calls     map[string]int
	maxCalls  map[string]int // per-symbol history budget, 0 means unlimited
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		histories: make(map[string][]models.Bar),
		infos:     make(map[string]models.InstrumentInfo),
		calls:     make(map[string]int),
		maxCalls:  make(map[string]int),
	}
}

func (f *fakeProvider) History(_ context.Context, symbol, _, _ string) ([]models.Bar, error) {
	f.calls[symbol]++
	if max, ok := f.maxCalls[symbol]; ok && f.calls[symbol] > max {
		return nil, errors.New("budget exhausted for " + symbol)
	}
	bars, ok := f.histories[symbol]
	if !ok {
		return nil, errors.New("no data for " + symbol)
	}
	return bars, nil
}

func (f *fakeProvider) Info(_ context.Context, symbol string) (models.InstrumentInfo, error) {
	info, ok := f.infos[symbol]
	if !ok {
		return models.InstrumentInfo{}, errors.New("no info for " + symbol)
	}
	return info, nil
}

var testEpoch = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

// barsFromReturns builds a daily close series starting at start and applying
// each percent return in sequence, one bar per calendar day.
func barsFromReturns(start float64, rets ...float64) []models.Bar {
	bars := []models.Bar{{Date: testEpoch, Close: start, Volume: 1e6}}
	price := start
	for i, r := range rets {
		price *= 1 + r
		bars = append(bars, models.Bar{
			Date:   testEpoch.AddDate(0, 0, i+1),
			Close:  price,
			Volume: 1e6,
		})
	}
	return bars
}

func nearEq(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
