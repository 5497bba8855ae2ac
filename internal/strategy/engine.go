// Package strategy combines indicator tails and fundamentals into a bounded
// attractiveness score.
package strategy

import (
	"errors"

	"TickerRank/internal/model"
)

// ErrInsufficientData indicates the indicator series has no usable rows.
var ErrInsufficientData = errors.New("insufficient data: indicator series is empty")

// Evaluate computes every factor contribution for the given lookback horizon
// and returns the full breakdown. Individual factors are never clamped; only
// the final sum is bounded to [0,100].
func Evaluate(s *model.IndicatorSeries, fundamentals map[string]float64, lookbackDays int) (*model.ScoreBreakdown, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrInsufficientData
	}

	factors := []model.FactorScore{
		scoreRSI(s, lookbackDays),
		scoreMACDHistogram(s, lookbackDays),
		scoreBollinger(s, lookbackDays),
		scoreSMA(s, lookbackDays),
		scoreATR(s, lookbackDays),
		scoreADX(s, lookbackDays),
		scoreOBV(s, lookbackDays),
		scoreFundamentals(fundamentals, lookbackDays),
	}

	total := 0.0
	for _, f := range factors {
		if !f.Skipped {
			total += f.Points
		}
	}

	return &model.ScoreBreakdown{
		LookbackDays: lookbackDays,
		Factors:      factors,
		RawTotal:     total,
		Score:        clamp(total, 0, 100),
	}, nil
}

// Score is the plain-number convenience wrapper around Evaluate.
func Score(s *model.IndicatorSeries, fundamentals map[string]float64, lookbackDays int) (float64, error) {
	breakdown, err := Evaluate(s, fundamentals, lookbackDays)
	if err != nil {
		return 0, err
	}
	return breakdown.Score, nil
}
