package usecase

import (
	"fmt"

	"TickerGraph/internal/domain/models"
	"TickerGraph/pkg/util"
)

const (
	whaleRatio        = 1.5
	lowLiquidityRatio = 0.5
)

// CheckWhale classifies current volume against the historical average into
// a narrative signal.
func CheckWhale(stats models.StockStats) models.WhaleReport {
	v := stats.Volume
	a := stats.AvgVolume
	if a == 0 {
		a = 1
	}
	ratio := v / a

	volStr := util.FormatVolume(v)
	avgStr := util.FormatVolume(a)

	narrative := "Volume is normal."
	switch {
	case ratio > whaleRatio:
		narrative = fmt.Sprintf("Today's volume (%s) is significantly higher than the average (%s), indicating institutional entry.", volStr, avgStr)
	case ratio < lowLiquidityRatio:
		narrative = fmt.Sprintf("Low liquidity detected (%s). Smart money is inactive.", volStr)
	}

	return models.WhaleReport{
		IsWhale:   ratio > whaleRatio,
		Ratio:     fmt.Sprintf("%.1fx", ratio),
		VolStr:    volStr,
		AvgStr:    avgStr,
		Narrative: narrative,
	}
}
