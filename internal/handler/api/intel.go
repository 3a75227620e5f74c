package api

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"TickerGraph/internal/domain/models"
	"TickerGraph/internal/service/cache"
	"TickerGraph/internal/service/metrics"
	"TickerGraph/internal/service/ratelimit"
	"TickerGraph/internal/usecase"
	xhttp "TickerGraph/pkg/http"
	applogger "TickerGraph/pkg/logger"
)

const (
	rateCapacity  = 10 // burst per client
	rateRefillSec = 1  // sustained requests per second
)

// IntelHandler serves the intel endpoint: graph search, context lookup from
// a pasted URL, and position sizing.
type IntelHandler struct {
	l     *applogger.Logger
	agg   *usecase.IntelAggregator
	cache cache.BytesCache
	rl    *ratelimit.Limiter
	ttl   time.Duration
}

func NewIntelHandler(
	agg *usecase.IntelAggregator,
	responseCache cache.BytesCache,
	rl *ratelimit.Limiter,
	responseTTL time.Duration,
	l *applogger.Logger,
) *IntelHandler {
	metrics.Register()
	return &IntelHandler{
		l:     l,
		agg:   agg,
		cache: responseCache,
		rl:    rl,
		ttl:   responseTTL,
	}
}

// RegisterRoutes registers HTTP routes.
func (h *IntelHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/intel", h.Intel)
	e.GET("/healthz", h.Health)
}

// Health reports process liveness.
func (h *IntelHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, "ok")
}

// Intel dispatches on the request mode. SEARCH and CONTEXT build the
// insight graph, RISK sizes a position, anything else returns the mode
// banner.
func (h *IntelHandler) Intel(c echo.Context) error {
	req := new(models.IntelRequest)
	if errs := xhttp.ReadAndValidateRequest(c, req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}

	timer := prometheus.NewTimer(metrics.IntelLatency.WithLabelValues(req.Mode))
	defer timer.ObserveDuration()

	switch req.Mode {
	case "SEARCH", "CONTEXT":
		raw := req.Query
		if raw == "" {
			raw = req.URL
		}
		return h.search(c, raw)
	case "RISK":
		return h.risk(c, req)
	default:
		return xhttp.SuccessResponse(c, map[string]string{"mode": "FULL"})
	}
}

func (h *IntelHandler) search(c echo.Context, raw string) error {
	if !h.rl.Allow(c.RealIP(), rateCapacity, rateRefillSec) {
		return xhttp.TooManyRequestsResponse(c)
	}

	symbol := h.agg.Resolve(raw)

	key := "intel:" + symbol
	if b, ok, err := h.cache.GetBytes(key); err == nil && ok {
		metrics.ResponseCacheHits.WithLabelValues("hit").Inc()
		return xhttp.SuccessResponse(c, json.RawMessage(b))
	}
	metrics.ResponseCacheHits.WithLabelValues("miss").Inc()

	graph, err := h.agg.Search(c.Request().Context(), symbol)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			metrics.IntelErrors.WithLabelValues("not_found").Inc()
			return xhttp.AppErrorResponse(c, xhttp.NotFoundError("Ticker not found: "+symbol).WithError(err))
		}
		metrics.IntelErrors.WithLabelValues("internal").Inc()
		h.l.Error("intel search failed", applogger.String("symbol", symbol), applogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("intel lookup failed").WithError(err))
	}

	// the retry may have resolved to a different symbol (crypto pairs)
	resolved, ticker := symbol, symbol
	if len(graph.Nodes) > 0 {
		resolved = graph.Nodes[0].ID
		ticker = graph.Nodes[0].Data.Label
	}
	resp := models.IntelResponse{Status: "ACTIVE", Ticker: ticker, Intel: graph}

	if b, err := json.Marshal(resp); err == nil {
		// store under the queried symbol too so a retried crypto name
		// (SOL resolved to SOL-USD) still hits on repeat lookups
		keys := []string{"intel:" + symbol}
		if resolved != symbol {
			keys = append(keys, "intel:"+resolved)
		}
		for _, k := range keys {
			if err := h.cache.SetBytes(k, b, h.ttl); err != nil {
				h.l.Warn("response cache write failed", applogger.Error(err))
			}
		}
	}
	return xhttp.SuccessResponse(c, resp)
}

func (h *IntelHandler) risk(c echo.Context, req *models.IntelRequest) error {
	plan, ok := usecase.SizePosition(req.Entry, req.Capital, req.RiskPct)
	if !ok {
		// untradable inputs degrade to an empty plan, not an error
		return xhttp.SuccessResponse(c, map[string]any{})
	}
	return xhttp.SuccessResponse(c, plan)
}
