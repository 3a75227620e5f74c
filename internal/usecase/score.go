package usecase

import (
	"strings"

	"TickerGraph/internal/domain/models"
)

const (
	scoreBaseline = 50
	scoreFloor    = 10
	scoreCeiling  = 95
)

// ParentSignal pairs a correlated parent's stats with its signed
// correlation against the target.
type ParentSignal struct {
	Stats       models.StockStats
	Correlation float64
}

// ScoreConviction combines directional alignment between the target and
// each correlated parent, plus the volume signal, into a bounded conviction
// score with a textual explanation.
//
// Parents only adjust the score while the target is up; a down-target move
// leaves parent signals mute. That asymmetry is kept as observed behavior.
func ScoreConviction(target models.StockStats, whale models.WhaleReport, parents []ParentSignal) models.Insight {
	score := scoreBaseline
	var boosts, drags []string

	if whale.IsWhale {
		if target.IsUp {
			score += 20
			boosts = append(boosts, "Institutional Buying (+20)")
		} else {
			score -= 20
			drags = append(drags, "Heavy Selling Volume (-20)")
		}
	}

	for _, p := range parents {
		name := p.Stats.Label
		if p.Correlation > 0 {
			if target.IsUp && p.Stats.IsUp {
				score += 15
				boosts = append(boosts, "Strong "+name+" (+15)")
			} else if target.IsUp && !p.Stats.IsUp {
				score -= 10
				drags = append(drags, "Weak "+name+" (-10)")
			}
		} else {
			if target.IsUp && !p.Stats.IsUp {
				score += 10
				boosts = append(boosts, "Falling "+name+" (+10)")
			} else if target.IsUp && p.Stats.IsUp {
				score -= 15
				drags = append(drags, "Fighting Rising "+name+" (-15)")
			}
		}
	}

	if score > scoreCeiling {
		score = scoreCeiling
	}
	if score < scoreFloor {
		score = scoreFloor
	}

	status := "Neutral Setup"
	if score >= 75 {
		status = "High Conviction Setup"
	} else if score <= 30 {
		status = "Negative Outlook"
	}

	explanation := "No significant drivers."
	var parts []string
	if len(boosts) > 0 {
		parts = append(parts, "Boosted by "+strings.Join(boosts, ", "))
	}
	if len(drags) > 0 {
		parts = append(parts, "Offset by "+strings.Join(drags, ", "))
	}
	if len(parts) > 0 {
		explanation = strings.Join(parts, ". ") + "."
	}

	return models.Insight{Status: status, Message: explanation, Score: score}
}
