package marketdata

import (
	"math"
	"sort"

	"TickerGraph/internal/domain/models"

	"gonum.org/v1/gonum/stat"
)

// Frame is a date-aligned table of daily closing prices: rows are trading
// days, columns are instrument symbols. Columns are outer-joined on the UTC
// calendar date, so days an instrument did not trade hold a missing value.
type Frame struct {
	cells map[int64]map[string]float64 // day key -> symbol -> close
	cols  []string
}

func NewFrame() *Frame {
	return &Frame{cells: make(map[int64]map[string]float64)}
}

func dayKey(bar models.Bar) int64 {
	return bar.Date.UTC().Unix() / 86400
}

// AddSeries joins a close series into the frame under symbol, replacing any
// existing column of the same name.
func (f *Frame) AddSeries(symbol string, bars []models.Bar) {
	exists := false
	for _, c := range f.cols {
		if c == symbol {
			exists = true
			break
		}
	}
	if exists {
		for _, row := range f.cells {
			delete(row, symbol)
		}
	} else {
		f.cols = append(f.cols, symbol)
	}

	for _, b := range bars {
		if math.IsNaN(b.Close) || math.IsInf(b.Close, 0) {
			continue
		}
		k := dayKey(b)
		row, ok := f.cells[k]
		if !ok {
			row = make(map[string]float64, len(f.cols))
			f.cells[k] = row
		}
		row[symbol] = b.Close
	}
}

// Columns returns the column symbols in insertion order.
func (f *Frame) Columns() []string {
	return f.cols
}

// Len returns the number of distinct trading days.
func (f *Frame) Len() int {
	return len(f.cells)
}

// Clone deep-copies the frame so callers can join request-scoped columns
// without mutating the shared cached value.
func (f *Frame) Clone() *Frame {
	c := &Frame{
		cells: make(map[int64]map[string]float64, len(f.cells)),
		cols:  append([]string(nil), f.cols...),
	}
	for k, row := range f.cells {
		nr := make(map[string]float64, len(row))
		for s, v := range row {
			nr[s] = v
		}
		c.cells[k] = nr
	}
	return c
}

// Returns computes day-over-day percent-change returns for every column and
// drops any row with a missing value, so all correlations later use the
// same complete set of observation dates.
func (f *Frame) Returns() *Returns {
	days := make([]int64, 0, len(f.cells))
	for k := range f.cells {
		days = append(days, k)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	raw := make(map[string][]float64, len(f.cols))
	for _, col := range f.cols {
		series := make([]float64, 0, len(days))
		for i := 1; i < len(days); i++ {
			prev, okPrev := f.cells[days[i-1]][col]
			cur, okCur := f.cells[days[i]][col]
			if !okPrev || !okCur || prev == 0 {
				series = append(series, math.NaN())
				continue
			}
			series = append(series, (cur-prev)/prev)
		}
		raw[col] = series
	}

	// keep complete rows only
	n := 0
	if len(days) > 1 {
		n = len(days) - 1
	}
	keep := make([]int, 0, n)
	for i := 0; i < n; i++ {
		complete := true
		for _, col := range f.cols {
			if math.IsNaN(raw[col][i]) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}

	out := &Returns{cols: append([]string(nil), f.cols...), data: make(map[string][]float64, len(f.cols)), n: len(keep)}
	for _, col := range f.cols {
		series := make([]float64, 0, len(keep))
		for _, i := range keep {
			series = append(series, raw[col][i])
		}
		out.data[col] = series
	}
	return out
}

// Returns is an aligned, complete matrix of percent-change return series.
type Returns struct {
	cols []string
	data map[string][]float64
	n    int
}

// Rows returns the number of complete paired observations.
func (r *Returns) Rows() int {
	return r.n
}

// CorrelationsAgainst computes the Pearson correlation of every other
// column against target, in column order. The target is excluded from its
// own link set; degenerate columns (zero variance) are skipped.
func (r *Returns) CorrelationsAgainst(target string) []models.CorrelationLink {
	ts, ok := r.data[target]
	if !ok || r.n < 2 {
		return nil
	}
	links := make([]models.CorrelationLink, 0, len(r.cols))
	for _, col := range r.cols {
		if col == target {
			continue
		}
		c := stat.Correlation(r.data[col], ts, nil)
		if math.IsNaN(c) {
			continue
		}
		links = append(links, models.CorrelationLink{Symbol: col, Score: c})
	}
	return links
}
