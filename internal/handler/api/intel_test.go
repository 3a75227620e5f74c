package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"TickerGraph/internal/domain/models"
	"TickerGraph/internal/service/cache"
	"TickerGraph/internal/service/marketdata"
	"TickerGraph/internal/service/ratelimit"
	"TickerGraph/internal/usecase"
	applogger "TickerGraph/pkg/logger"
)

type stubProvider struct {
	histories map[string][]models.Bar
	calls     map[string]int
}

func (s *stubProvider) History(_ context.Context, symbol, _, _ string) ([]models.Bar, error) {
	s.calls[symbol]++
	bars, ok := s.histories[symbol]
	if !ok {
		return nil, errors.New("no data")
	}
	return bars, nil
}

func (s *stubProvider) Info(context.Context, string) (models.InstrumentInfo, error) {
	return models.InstrumentInfo{}, errors.New("no info")
}

func dailyBars(start float64, rets ...float64) []models.Bar {
	epoch := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	bars := []models.Bar{{Date: epoch, Close: start, Volume: 1e6}}
	price := start
	for i, r := range rets {
		price *= 1 + r
		bars = append(bars, models.Bar{Date: epoch.AddDate(0, 0, i+1), Close: price, Volume: 1e6})
	}
	return bars
}

func newTestHandler(p *stubProvider) *IntelHandler {
	stats := usecase.NewStatsFetcher(p, "5d", "1d", nil)
	parents := usecase.NewParentSelector(p, marketdata.NewMatrixCache(time.Hour), []string{"SPY"}, "SPY", "1y", "1d", 0.25, nil)
	agg := usecase.NewIntelAggregator(stats, parents, "SPY", nil)
	return NewIntelHandler(agg, cache.NewTTLCache(), ratelimit.New(), time.Minute, applogger.Nop())
}

func doIntel(t *testing.T, h *IntelHandler, body string) map[string]any {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/intel", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Intel(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("http status = %d, want 200 envelope", rec.Code)
	}
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestIntelDefaultMode(t *testing.T) {
	h := newTestHandler(&stubProvider{histories: map[string][]models.Bar{}, calls: map[string]int{}})
	out := doIntel(t, h, `{}`)
	if out["status"].(float64) != 200 {
		t.Fatalf("status = %v", out["status"])
	}
	data := out["data"].(map[string]any)
	if data["mode"] != "FULL" {
		t.Fatalf("data = %v, want mode FULL", data)
	}
}

func TestIntelRiskMode(t *testing.T) {
	h := newTestHandler(&stubProvider{histories: map[string][]models.Bar{}, calls: map[string]int{}})
	out := doIntel(t, h, `{"mode":"RISK","entry":100,"capital":10000,"risk_pct":1}`)
	data := out["data"].(map[string]any)
	if data["stop_loss"].(float64) != 95 {
		t.Fatalf("stop_loss = %v", data["stop_loss"])
	}
	if data["take_profit"].(float64) != 110 {
		t.Fatalf("take_profit = %v", data["take_profit"])
	}
	if data["shares"].(float64) != 20 {
		t.Fatalf("shares = %v", data["shares"])
	}
}

func TestIntelSearchNotFound(t *testing.T) {
	h := newTestHandler(&stubProvider{histories: map[string][]models.Bar{}, calls: map[string]int{}})
	out := doIntel(t, h, `{"mode":"SEARCH","query":"ZZZZ"}`)
	if out["status"].(float64) != 404 {
		t.Fatalf("status = %v, want 404", out["status"])
	}
	errs := out["data"].([]any)
	if len(errs) != 1 {
		t.Fatalf("data = %v, want one error entry", out["data"])
	}
	e := errs[0].(map[string]any)
	if e["code"] != "ERR_NOT_FOUND" {
		t.Fatalf("code = %v, want ERR_NOT_FOUND", e["code"])
	}
	if !strings.Contains(e["message"].(string), "ZZZZ") {
		t.Fatalf("message = %v, want the symbol named", e["message"])
	}
}

func TestIntelSearchSuccess(t *testing.T) {
	p := &stubProvider{
		histories: map[string][]models.Bar{
			"AAPL": dailyBars(100, 0.01, -0.01, 0.01, 0.02),
			"SPY":  dailyBars(100, 0.02, -0.02, 0.02, 0.04),
		},
		calls: map[string]int{},
	}
	h := newTestHandler(p)

	out := doIntel(t, h, `{"mode":"SEARCH","query":"aapl"}`)
	if out["status"].(float64) != 200 {
		t.Fatalf("status = %v", out["status"])
	}
	data := out["data"].(map[string]any)
	if data["ticker"] != "AAPL" {
		t.Fatalf("ticker = %v", data["ticker"])
	}
	intel := data["intel"].(map[string]any)
	if n := len(intel["nodes"].([]any)); n != 2 {
		t.Fatalf("nodes = %d, want target plus SPY", n)
	}
	insight := intel["insight"].(map[string]any)
	if insight["score"].(float64) != 65 {
		t.Fatalf("score = %v, want 65", insight["score"])
	}
}

func TestIntelSearchServedFromCache(t *testing.T) {
	p := &stubProvider{
		histories: map[string][]models.Bar{
			"AAPL": dailyBars(100, 0.01, -0.01, 0.01, 0.02),
			"SPY":  dailyBars(100, 0.02, -0.02, 0.02, 0.04),
		},
		calls: map[string]int{},
	}
	h := newTestHandler(p)

	doIntel(t, h, `{"mode":"SEARCH","query":"AAPL"}`)
	targetCalls := p.calls["AAPL"]

	out := doIntel(t, h, `{"mode":"SEARCH","query":"AAPL"}`)
	if p.calls["AAPL"] != targetCalls {
		t.Fatalf("second request hit the provider %d extra times", p.calls["AAPL"]-targetCalls)
	}
	data := out["data"].(map[string]any)
	if data["ticker"] != "AAPL" {
		t.Fatalf("cached ticker = %v", data["ticker"])
	}
}

func TestIntelSearchCryptoRetryCached(t *testing.T) {
	p := &stubProvider{
		histories: map[string][]models.Bar{
			"SOL-USD": dailyBars(150, 0.01, -0.01, 0.01, 0.02),
			"SPY":     dailyBars(100, 0.02, -0.02, 0.02, 0.04),
		},
		calls: map[string]int{},
	}
	h := newTestHandler(p)

	first := doIntel(t, h, `{"mode":"SEARCH","query":"SOL"}`)
	if first["data"].(map[string]any)["ticker"] != "SOL-USD" {
		t.Fatalf("ticker = %v, want SOL-USD after retry", first["data"].(map[string]any)["ticker"])
	}
	before := p.calls["SOL"] + p.calls["SOL-USD"]

	out := doIntel(t, h, `{"mode":"SEARCH","query":"SOL"}`)
	after := p.calls["SOL"] + p.calls["SOL-USD"]
	if after != before {
		t.Fatalf("repeat query hit the provider %d extra times, want cached response", after-before)
	}
	if out["data"].(map[string]any)["ticker"] != "SOL-USD" {
		t.Fatalf("cached ticker = %v", out["data"].(map[string]any)["ticker"])
	}
}

func TestContextModeResolvesURL(t *testing.T) {
	p := &stubProvider{
		histories: map[string][]models.Bar{
			"NVDA": dailyBars(100, 0.01, -0.01, 0.01, 0.02),
			"SPY":  dailyBars(100, 0.02, -0.02, 0.02, 0.04),
		},
		calls: map[string]int{},
	}
	h := newTestHandler(p)

	out := doIntel(t, h, `{"mode":"CONTEXT","url":"https://finance.yahoo.com/quote/NVDA"}`)
	data := out["data"].(map[string]any)
	if data["ticker"] != "NVIDIA" {
		t.Fatalf("ticker = %v, want the NVDA display label", data["ticker"])
	}
	if data["status"] != "ACTIVE" {
		t.Fatalf("status = %v, want ACTIVE", data["status"])
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&stubProvider{histories: map[string][]models.Bar{}, calls: map[string]int{}})
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	if err := h.Health(e.NewContext(req, rec)); err != nil {
		t.Fatalf("health: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
