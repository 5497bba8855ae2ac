package recorder

import "TickerRank/internal/model"

// Recorder persists batch run results for later inspection. It is an output
// sink only; the scoring pipeline never reads it back.
type Recorder interface {
	RecordRun(summary *model.RunSummary) error
	Close() error
}
