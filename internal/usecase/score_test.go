package usecase

import (
	"testing"

	"TickerGraph/internal/domain/models"
)

func up(label string) models.StockStats   { return models.StockStats{Label: label, IsUp: true} }
func down(label string) models.StockStats { return models.StockStats{Label: label, IsUp: false} }

func TestScoreConvictionBaseline(t *testing.T) {
	ins := ScoreConviction(up("APPLE"), models.WhaleReport{}, nil)
	if ins.Score != 50 {
		t.Fatalf("score = %d, want 50", ins.Score)
	}
	if ins.Status != "Neutral Setup" {
		t.Fatalf("status = %q", ins.Status)
	}
	if ins.Message != "No significant drivers." {
		t.Fatalf("message = %q", ins.Message)
	}
}

func TestScoreConvictionWhale(t *testing.T) {
	ins := ScoreConviction(up("APPLE"), models.WhaleReport{IsWhale: true}, nil)
	if ins.Score != 70 {
		t.Fatalf("score = %d, want 70", ins.Score)
	}
	if ins.Message != "Boosted by Institutional Buying (+20)." {
		t.Fatalf("message = %q", ins.Message)
	}

	ins = ScoreConviction(down("APPLE"), models.WhaleReport{IsWhale: true}, nil)
	if ins.Score != 30 {
		t.Fatalf("score = %d, want 30", ins.Score)
	}
	if ins.Status != "Negative Outlook" {
		t.Fatalf("status = %q", ins.Status)
	}
	if ins.Message != "Offset by Heavy Selling Volume (-20)." {
		t.Fatalf("message = %q", ins.Message)
	}
}

func TestScoreConvictionParentRules(t *testing.T) {
	tests := []struct {
		name    string
		target  models.StockStats
		parent  ParentSignal
		score   int
		message string
	}{
		{
			name:    "aligned rally",
			target:  up("APPLE"),
			parent:  ParentSignal{Stats: up("S&P 500"), Correlation: 0.8},
			score:   65,
			message: "Boosted by Strong S&P 500 (+15).",
		},
		{
			name:    "positive parent falling",
			target:  up("APPLE"),
			parent:  ParentSignal{Stats: down("S&P 500"), Correlation: 0.8},
			score:   40,
			message: "Offset by Weak S&P 500 (-10).",
		},
		{
			name:    "inverse parent falling",
			target:  up("APPLE"),
			parent:  ParentSignal{Stats: down("RATES"), Correlation: -0.6},
			score:   60,
			message: "Boosted by Falling RATES (+10).",
		},
		{
			name:    "inverse parent rising",
			target:  up("APPLE"),
			parent:  ParentSignal{Stats: up("RATES"), Correlation: -0.6},
			score:   35,
			message: "Offset by Fighting Rising RATES (-15).",
		},
		{
			name:    "down target ignores parents",
			target:  down("APPLE"),
			parent:  ParentSignal{Stats: up("S&P 500"), Correlation: 0.8},
			score:   50,
			message: "No significant drivers.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := ScoreConviction(tt.target, models.WhaleReport{}, []ParentSignal{tt.parent})
			if ins.Score != tt.score {
				t.Fatalf("score = %d, want %d", ins.Score, tt.score)
			}
			if ins.Message != tt.message {
				t.Fatalf("message = %q, want %q", ins.Message, tt.message)
			}
		})
	}
}

func TestScoreConvictionClamp(t *testing.T) {
	parents := []ParentSignal{
		{Stats: up("S&P 500"), Correlation: 0.9},
		{Stats: up("NASDAQ"), Correlation: 0.9},
		{Stats: up("GOLD"), Correlation: 0.9},
	}
	ins := ScoreConviction(up("APPLE"), models.WhaleReport{IsWhale: true}, parents)
	if ins.Score != 95 {
		t.Fatalf("score = %d, want ceiling 95", ins.Score)
	}
	if ins.Status != "High Conviction Setup" {
		t.Fatalf("status = %q", ins.Status)
	}

	// whale selloff plus fighting parents cannot break the floor
	drag := []ParentSignal{
		{Stats: up("S&P 500"), Correlation: -0.9},
		{Stats: up("NASDAQ"), Correlation: -0.9},
		{Stats: up("GOLD"), Correlation: -0.9},
	}
	ins = ScoreConviction(up("APPLE"), models.WhaleReport{}, append(drag, drag...))
	if ins.Score != 10 {
		t.Fatalf("score = %d, want floor 10", ins.Score)
	}
}

func TestScoreConvictionMixedExplanation(t *testing.T) {
	parents := []ParentSignal{
		{Stats: up("S&P 500"), Correlation: 0.8},
		{Stats: down("NASDAQ"), Correlation: 0.7},
	}
	ins := ScoreConviction(up("APPLE"), models.WhaleReport{}, parents)
	if ins.Score != 55 {
		t.Fatalf("score = %d, want 55", ins.Score)
	}
	want := "Boosted by Strong S&P 500 (+15). Offset by Weak NASDAQ (-10)."
	if ins.Message != want {
		t.Fatalf("message = %q, want %q", ins.Message, want)
	}
}
