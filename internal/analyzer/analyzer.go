// Package analyzer orchestrates one full analysis run per ticker and horizon.
package analyzer

import (
	"fmt"
	"time"

	"TickerRank/internal/calculator"
	"TickerRank/internal/collector"
	"TickerRank/internal/fundamentals"
	"TickerRank/internal/model"
	"TickerRank/internal/strategy"
)

// Analyzer drives fetch -> normalize -> indicators -> fundamentals -> score.
// It owns no mutable state of its own; the fundamentals adapter's cache makes
// repeated tickers cheap.
type Analyzer struct {
	Fetcher      collector.Fetcher
	Fundamentals *fundamentals.Adapter
}

// New creates an Analyzer.
func New(fetcher collector.Fetcher, fund *fundamentals.Adapter) *Analyzer {
	return &Analyzer{Fetcher: fetcher, Fundamentals: fund}
}

// Analyze scores one ticker as of the given date and returns the full factor
// breakdown. Failures from data retrieval or scoring propagate unchanged.
func (a *Analyzer) Analyze(ticker string, asOf time.Time, lookbackDays int, params model.IndicatorParams) (*model.ScoreBreakdown, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if lookbackDays < 1 {
		return nil, fmt.Errorf("lookback days must be >= 1, got %d", lookbackDays)
	}

	neededDays := lookbackDays + params.MaxWindow()
	start := asOf.AddDate(0, 0, -neededDays)

	raw, err := a.Fetcher.FetchDailyBars(ticker, start, asOf)
	if err != nil {
		return nil, fmt.Errorf("fetch bars for %s: %w", ticker, err)
	}
	bars, err := collector.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize bars for %s: %w", ticker, err)
	}

	ind, err := calculator.Compute(bars, params)
	if err != nil {
		return nil, err
	}

	var fund map[string]float64
	if a.Fundamentals != nil {
		fund = a.Fundamentals.Snapshot(ticker)
	}

	breakdown, err := strategy.Evaluate(ind, fund, lookbackDays)
	if err != nil {
		return nil, fmt.Errorf("score %s: %w", ticker, err)
	}
	breakdown.Ticker = ticker
	return breakdown, nil
}

// AnalyzeAndScore returns only the final score for one ticker and horizon.
func (a *Analyzer) AnalyzeAndScore(ticker string, asOf time.Time, lookbackDays int, params model.IndicatorParams) (float64, error) {
	breakdown, err := a.Analyze(ticker, asOf, lookbackDays, params)
	if err != nil {
		return 0, err
	}
	return breakdown.Score, nil
}
