// Package batch drives scoring runs over a ticker list and writes the report.
package batch

import (
	"fmt"
	"log"
	"time"

	"TickerRank/internal/analyzer"
	"TickerRank/internal/model"
	"TickerRank/internal/recorder"
)

// Runner executes one batch run: score every ticker for the 5-day and 20-day
// horizons, write the CSV report, and persist run bookkeeping. Per-ticker
// failures are logged and omitted from the report; they never abort the run.
type Runner struct {
	Analyzer  *analyzer.Analyzer
	Recorder  recorder.Recorder
	Tickers   string // ticker list file
	OutputCSV string
	StateFile string
}

// NewRunner creates a Runner.
func NewRunner(a *analyzer.Analyzer, rec recorder.Recorder, tickersFile, outputCSV, stateFile string) *Runner {
	return &Runner{
		Analyzer:  a,
		Recorder:  rec,
		Tickers:   tickersFile,
		OutputCSV: outputCSV,
		StateFile: stateFile,
	}
}

// Run scores all tickers as of the given date. Unless force is set, a run is
// skipped (nil summary, nil error) when the state file shows one already
// happened today.
func (r *Runner) Run(asOf time.Time, force bool) (*model.RunSummary, error) {
	state, err := LoadState(r.StateFile)
	if err != nil {
		return nil, fmt.Errorf("load run state: %w", err)
	}
	if !force && sameDay(state.LastRunAt, asOf) {
		log.Printf("[INFO] batch already ran today (%s), skipping", state.LastRunAt.Format("2006-01-02 15:04"))
		return nil, nil
	}

	tickers, err := LoadTickers(r.Tickers)
	if err != nil {
		return nil, err
	}
	if len(tickers) == 0 {
		return nil, fmt.Errorf("ticker list %s is empty", r.Tickers)
	}

	summary := &model.RunSummary{StartedAt: time.Now()}
	for _, ticker := range tickers {
		score5, err := r.Analyzer.AnalyzeAndScore(ticker, asOf, 5, model.Params5)
		if err != nil {
			log.Printf("[ERROR] scoring %s: %v", ticker, err)
			summary.Failed = append(summary.Failed, ticker)
			continue
		}
		score20, err := r.Analyzer.AnalyzeAndScore(ticker, asOf, 20, model.Params20)
		if err != nil {
			log.Printf("[ERROR] scoring %s: %v", ticker, err)
			summary.Failed = append(summary.Failed, ticker)
			continue
		}
		summary.Results = append(summary.Results, model.TickerScore{
			Ticker: ticker, Score5: score5, Score20: score20,
		})
	}
	summary.FinishedAt = time.Now()
	summary.Best5, summary.Best20 = bestPerformers(summary.Results)

	if r.OutputCSV != "" {
		if err := WriteCSV(r.OutputCSV, summary.Results); err != nil {
			return nil, err
		}
		log.Printf("[INFO] report written: %s (%d scored, %d failed)",
			r.OutputCSV, len(summary.Results), len(summary.Failed))
	}

	if r.Recorder != nil {
		if err := r.Recorder.RecordRun(summary); err != nil {
			log.Printf("[ERROR] record run: %v", err)
		}
	}

	r.updateState(state, summary)
	return summary, nil
}

func (r *Runner) updateState(state *model.RunState, summary *model.RunSummary) {
	state.LastRunAt = summary.StartedAt
	state.TickersScored = len(summary.Results)
	state.TickersFailed = len(summary.Failed)
	state.ConsecutiveRuns++
	if summary.Best5 != nil {
		state.Best5Ticker = summary.Best5.Ticker
		state.Best5Score = summary.Best5.Score5
	}
	if summary.Best20 != nil {
		state.Best20Ticker = summary.Best20.Ticker
		state.Best20Score = summary.Best20.Score20
	}
	if err := SaveState(r.StateFile, state); err != nil {
		log.Printf("[ERROR] save run state: %v", err)
	}
}

// bestPerformers returns the top scorer per horizon, or nils when nothing scored.
func bestPerformers(results []model.TickerScore) (best5, best20 *model.TickerScore) {
	for i := range results {
		r := &results[i]
		if best5 == nil || r.Score5 > best5.Score5 {
			best5 = r
		}
		if best20 == nil || r.Score20 > best20.Score20 {
			best20 = r
		}
	}
	return best5, best20
}
