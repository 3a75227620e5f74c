package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"TickerGraph/internal/domain/models"
	drepo "TickerGraph/internal/domain/repository"
	"TickerGraph/internal/service/marketdata"
	"TickerGraph/internal/service/metrics"
	applogger "TickerGraph/pkg/logger"
)

// ParentSelector ranks the benchmark instruments whose historical returns
// are most correlated with a target ("dynamic parents"). Selection never
// errors to its caller: any data failure degrades to the single-link
// default pointing at the primary benchmark.
type ParentSelector struct {
	provider   drepo.MarketData
	cache      *marketdata.MatrixCache
	l          *applogger.Logger
	benchmarks []string
	primary    string
	period     string
	interval   string
	minCorr    float64
}

func NewParentSelector(
	provider drepo.MarketData,
	cache *marketdata.MatrixCache,
	benchmarks []string,
	primary, period, interval string,
	minCorr float64,
	l *applogger.Logger,
) *ParentSelector {
	return &ParentSelector{
		provider:   provider,
		cache:      cache,
		l:          l,
		benchmarks: benchmarks,
		primary:    primary,
		period:     period,
		interval:   interval,
		minCorr:    minCorr,
	}
}

// DefaultLink is the fallback when correlation data is unavailable.
func (s *ParentSelector) DefaultLink() []models.CorrelationLink {
	return []models.CorrelationLink{{Symbol: s.primary, Score: 1.0}}
}

// Select returns correlation links ordered by descending absolute
// correlation, signed values preserved. An empty (non-nil) result means
// "no meaningful driver found" and is valid.
func (s *ParentSelector) Select(ctx context.Context, symbol string) []models.CorrelationLink {
	frame := s.cache.GetOrRefresh(ctx, s.refreshBenchmarks)
	if frame == nil {
		return s.DefaultLink()
	}

	bars, err := s.provider.History(ctx, symbol, s.period, s.interval)
	if err != nil || len(bars) == 0 {
		if err != nil && s.l != nil {
			s.l.Warn("target history unavailable", applogger.String("symbol", symbol), applogger.Error(err))
		}
		return s.DefaultLink()
	}

	combined := frame.Clone()
	combined.AddSeries(symbol, bars)

	rets := combined.Returns()
	if rets.Rows() < 2 {
		return s.DefaultLink()
	}

	links := rets.CorrelationsAgainst(symbol)
	strong := make([]models.CorrelationLink, 0, len(links))
	for _, l := range links {
		if math.Abs(l.Score) > s.minCorr {
			strong = append(strong, l)
		}
	}
	if len(strong) == 0 {
		return []models.CorrelationLink{}
	}

	sort.SliceStable(strong, func(i, j int) bool {
		return math.Abs(strong[i].Score) > math.Abs(strong[j].Score)
	})
	return strong
}

// refreshBenchmarks downloads 1 year of daily adjusted closes for the whole
// basket. Individual symbols may fail; the refresh only errors when nothing
// was fetched at all, which keeps a prior matrix in place.
func (s *ParentSelector) refreshBenchmarks(ctx context.Context) (*marketdata.Frame, error) {
	f := marketdata.NewFrame()
	fetched := 0
	for _, b := range s.benchmarks {
		bars, err := s.provider.History(ctx, b, s.period, s.interval)
		if err != nil || len(bars) == 0 {
			if err != nil && s.l != nil {
				s.l.Warn("benchmark fetch failed", applogger.String("symbol", b), applogger.Error(err))
			}
			continue
		}
		f.AddSeries(b, bars)
		fetched++
	}
	if fetched == 0 {
		metrics.BenchmarkRefresh.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("benchmark refresh: no data for %d symbols", len(s.benchmarks))
	}
	metrics.BenchmarkRefresh.WithLabelValues("ok").Inc()
	if s.l != nil {
		s.l.Info("benchmark matrix refreshed",
			applogger.Int("symbols", fetched),
			applogger.Int("days", f.Len()),
		)
	}
	return f, nil
}
