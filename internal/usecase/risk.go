package usecase

import (
	"TickerGraph/internal/domain/models"
	"TickerGraph/pkg/util"
)

const (
	stopLossFactor   = 0.95
	takeProfitFactor = 1.10
)

// SizePosition computes a fixed-fractional position plan: the stop sits 5%
// under entry, the target 10% above, and share count is how many units the
// risked capital buys at that stop distance. Returns false when the inputs
// produce no tradable plan.
func SizePosition(entry, capital, riskPct float64) (models.RiskPlan, bool) {
	if entry <= 0 {
		return models.RiskPlan{}, false
	}
	stop := entry * stopLossFactor
	riskPerShare := entry - stop
	if riskPerShare <= 0 {
		return models.RiskPlan{}, false
	}
	riskCapital := capital * riskPct / 100
	return models.RiskPlan{
		StopLoss:   util.Round2(stop),
		TakeProfit: util.Round2(entry * takeProfitFactor),
		Shares:     int(riskCapital / riskPerShare),
	}, true
}
