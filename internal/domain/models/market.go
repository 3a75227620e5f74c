package models

import "time"

// Bar is a single daily OHLCV observation, reduced to the fields the
// analysis uses. Close is the adjusted close when the provider supplies one.
type Bar struct {
	Date   time.Time
	Close  float64
	Volume float64
}

// InstrumentInfo carries provider-published metadata for an instrument.
type InstrumentInfo struct {
	Symbol        string
	AverageVolume float64
}

// StockStats is a point-in-time snapshot of an instrument, built fresh per
// request from its recent history and never persisted.
type StockStats struct {
	Symbol    string  `json:"symbol"`
	Label     string  `json:"label"`
	Price     string  `json:"price"`
	Change    float64 `json:"change"`
	IsUp      bool    `json:"isUp"`
	Volume    float64 `json:"volume"`
	AvgVolume float64 `json:"avg_volume"`
}

// CorrelationLink pairs an instrument with its signed Pearson correlation
// against the target's returns. Score stays in [-1, 1]; the sign carries
// meaning for the scorer (positive = co-movement, negative = inverse).
type CorrelationLink struct {
	Symbol string  `json:"symbol"`
	Score  float64 `json:"score"`
}

// WhaleReport classifies current volume against the historical average.
type WhaleReport struct {
	IsWhale   bool   `json:"is_whale"`
	Ratio     string `json:"ratio"`
	VolStr    string `json:"vol_str"`
	AvgStr    string `json:"avg_str"`
	Narrative string `json:"narrative"`
}
