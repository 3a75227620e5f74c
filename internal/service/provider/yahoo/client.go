package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"TickerGraph/internal/domain/models"
	drepo "TickerGraph/internal/domain/repository"
	"TickerGraph/internal/service/metrics"
	xhttp "TickerGraph/pkg/http"
	applogger "TickerGraph/pkg/logger"
)

// Client implements the MarketData provider against the Yahoo chart and
// quote HTTP APIs.
type Client struct {
	baseURL string
	client  *xhttp.Client
	l       *applogger.Logger
}

// New creates a new Yahoo-backed MarketData provider.
func New(baseURL, userAgent string, timeout time.Duration, l *applogger.Logger) drepo.MarketData {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client: xhttp.NewClient(
			xhttp.WithTimeout(timeout),
			xhttp.WithDefaultHeader("User-Agent", userAgent),
			xhttp.WithDefaultHeader("Accept", "application/json"),
		),
		l: l,
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
				Adjclose []struct {
					Adjclose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// History fetches daily bars for a symbol. Adjusted closes are preferred
// when the provider publishes them.
func (c *Client) History(ctx context.Context, symbol, period, interval string) ([]models.Bar, error) {
	var cr chartResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(symbol)),
		QueryParams: map[string][]string{
			"range":                {period},
			"interval":             {interval},
			"includeAdjustedClose": {"true"},
			"events":               {"div,splits"},
		},
	}, &cr)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("chart", "error").Inc()
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}
	if cr.Chart.Error != nil {
		metrics.ProviderRequests.WithLabelValues("chart", "error").Inc()
		return nil, fmt.Errorf("chart %s: %s: %s", symbol, cr.Chart.Error.Code, cr.Chart.Error.Description)
	}
	if len(cr.Chart.Result) == 0 || len(cr.Chart.Result[0].Indicators.Quote) == 0 {
		metrics.ProviderRequests.WithLabelValues("chart", "empty").Inc()
		return nil, nil
	}

	res := cr.Chart.Result[0]
	quote := res.Indicators.Quote[0]
	closes := quote.Close
	if len(res.Indicators.Adjclose) > 0 && len(res.Indicators.Adjclose[0].Adjclose) == len(res.Timestamp) {
		closes = res.Indicators.Adjclose[0].Adjclose
	}

	bars := make([]models.Bar, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		var vol float64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			vol = *quote.Volume[i]
		}
		bars = append(bars, models.Bar{
			Date:   time.Unix(ts, 0).UTC(),
			Close:  *closes[i],
			Volume: vol,
		})
	}

	metrics.ProviderRequests.WithLabelValues("chart", "ok").Inc()
	if c.l != nil {
		c.l.Debug("provider chart fetched",
			applogger.String("symbol", symbol),
			applogger.Int("bars", len(bars)),
		)
	}
	return bars, nil
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                   string  `json:"symbol"`
			AverageDailyVolume3Month float64 `json:"averageDailyVolume3Month"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

// Info fetches provider-published metadata for a symbol.
func (c *Client) Info(ctx context.Context, symbol string) (models.InstrumentInfo, error) {
	var qr quoteResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/v7/finance/quote",
		QueryParams: map[string][]string{
			"symbols": {symbol},
		},
	}, &qr)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("quote", "error").Inc()
		return models.InstrumentInfo{}, fmt.Errorf("quote %s: %w", symbol, err)
	}
	if len(qr.QuoteResponse.Result) == 0 {
		metrics.ProviderRequests.WithLabelValues("quote", "empty").Inc()
		return models.InstrumentInfo{}, fmt.Errorf("quote %s: no result", symbol)
	}

	metrics.ProviderRequests.WithLabelValues("quote", "ok").Inc()
	r := qr.QuoteResponse.Result[0]
	return models.InstrumentInfo{
		Symbol:        r.Symbol,
		AverageVolume: r.AverageDailyVolume3Month,
	}, nil
}
