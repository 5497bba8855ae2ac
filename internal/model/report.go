package model

import "time"

// TickerScore is one output row of a batch run.
type TickerScore struct {
	Ticker  string
	Score5  float64
	Score20 float64
}

// RunSummary aggregates the outcome of a single batch run.
// Results preserves the ticker input order; failed tickers are omitted
// from Results and listed separately.
type RunSummary struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []TickerScore
	Failed     []string
	Best5      *TickerScore
	Best20     *TickerScore
}
