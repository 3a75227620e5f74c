package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"TickerGraph/internal/domain/models"
	"TickerGraph/internal/service/ticker"
	applogger "TickerGraph/pkg/logger"
)

// ErrNotFound reports that no market data exists for the resolved symbol,
// even after the crypto suffix retry. It is the only failure surfaced to
// API callers.
var ErrNotFound = errors.New("ticker not found")

const (
	strokePositive = "#4ade80"
	strokeNegative = "#ef4444"
)

// IntelAggregator assembles the full insight graph for one instrument:
// target stats, whale check, dynamic parent selection, and the conviction
// score.
type IntelAggregator struct {
	stats   *StatsFetcher
	parents *ParentSelector
	primary string
	l       *applogger.Logger
}

func NewIntelAggregator(stats *StatsFetcher, parents *ParentSelector, primary string, l *applogger.Logger) *IntelAggregator {
	return &IntelAggregator{stats: stats, parents: parents, primary: primary, l: l}
}

// Resolve maps free-form user input (plain text or a finance-site URL) to a
// candidate symbol. It never fails; unresolvable input falls back to the
// primary benchmark.
func (a *IntelAggregator) Resolve(query string) string {
	return ticker.Normalize(query, a.primary)
}

// Search builds the insight graph for symbol. When the symbol has no data
// it is retried once with a "-USD" suffix so bare crypto names (BTC, SOL)
// resolve to their Yahoo pairs.
func (a *IntelAggregator) Search(ctx context.Context, symbol string) (*models.IntelGraph, error) {
	target, ok := a.stats.Fetch(ctx, symbol)
	if !ok && !strings.Contains(symbol, "-") {
		retry := symbol + "-USD"
		if target, ok = a.stats.Fetch(ctx, retry); ok {
			symbol = retry
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}

	whale := CheckWhale(target)
	links := a.parents.Select(ctx, symbol)

	nodes := []models.GraphNode{{
		ID:   symbol,
		Type: "stock",
		Data: models.NodeData{
			Label:     target.Label,
			Price:     target.Price,
			Change:    fmt.Sprintf("%.2f", target.Change),
			IsUp:      target.IsUp,
			IsFocused: true,
			Whale:     &whale,
		},
	}}
	edges := make([]models.GraphEdge, 0, len(links))
	signals := make([]ParentSignal, 0, len(links))

	for _, link := range links {
		if link.Symbol == symbol {
			continue
		}
		ps, ok := a.stats.Fetch(ctx, link.Symbol)
		if !ok {
			continue
		}
		signals = append(signals, ParentSignal{Stats: ps, Correlation: link.Score})

		nodes = append(nodes, models.GraphNode{
			ID:   link.Symbol,
			Type: "resource",
			Data: models.NodeData{
				Label:    ps.Label,
				NodeType: "mover",
				Price:    ps.Price,
				Change:   fmt.Sprintf("%.2f", ps.Change),
				IsUp:     ps.IsUp,
			},
		})

		style := models.EdgeStyle{Stroke: strokePositive, StrokeWidth: 2}
		if link.Score < 0 {
			style.Stroke = strokeNegative
			style.StrokeDasharray = "5,5"
		}
		edges = append(edges, models.GraphEdge{
			ID:       fmt.Sprintf("e-%s-%s", link.Symbol, symbol),
			Source:   link.Symbol,
			Target:   symbol,
			Style:    style,
			Animated: true,
		})
	}

	insight := ScoreConviction(target, whale, signals)
	if a.l != nil {
		a.l.Info("intel assembled",
			applogger.String("symbol", symbol),
			applogger.Int("parents", len(signals)),
			applogger.Int("score", insight.Score),
		)
	}
	return &models.IntelGraph{Nodes: nodes, Edges: edges, Insight: insight}, nil
}
