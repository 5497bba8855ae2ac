package model

// FactorScore represents a single factor's contribution to the final score.
type FactorScore struct {
	Name       string
	Points     float64
	Skipped    bool
	Commentary string
}

// ScoreBreakdown is the full output of the scorer for one ticker and horizon.
type ScoreBreakdown struct {
	Ticker       string
	LookbackDays int
	Factors      []FactorScore
	RawTotal     float64 // sum of factor points before clamping
	Score        float64 // RawTotal clamped to [0,100]
}
