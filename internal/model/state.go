package model

import "time"

// RunState tracks batch-run bookkeeping between process restarts.
// Watch mode uses LastRunAt to skip duplicate same-day runs.
type RunState struct {
	LastRunAt       time.Time `json:"last_run_at"`
	Best5Ticker     string    `json:"best_5_ticker"`
	Best5Score      float64   `json:"best_5_score"`
	Best20Ticker    string    `json:"best_20_ticker"`
	Best20Score     float64   `json:"best_20_score"`
	TickersScored   int       `json:"tickers_scored"`
	TickersFailed   int       `json:"tickers_failed"`
	ConsecutiveRuns int       `json:"consecutive_runs"`
	UpdatedAt       time.Time `json:"updated_at"`
}
