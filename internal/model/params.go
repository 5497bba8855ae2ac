package model

import "fmt"

// IndicatorParams holds the window sizes for one scoring horizon.
type IndicatorParams struct {
	SMAShort   int `yaml:"sma_short"`
	SMALong    int `yaml:"sma_long"`
	BBWindow   int `yaml:"bb_window"`
	RSIWindow  int `yaml:"rsi_window"`
	MACDFast   int `yaml:"macd_fast"`
	MACDSlow   int `yaml:"macd_slow"`
	MACDSignal int `yaml:"macd_signal"`
}

// Params5 is the parameter set for the 5-day horizon.
var Params5 = IndicatorParams{
	SMAShort: 3, SMALong: 5,
	BBWindow: 5, RSIWindow: 5,
	MACDFast: 3, MACDSlow: 8, MACDSignal: 3,
}

// Params20 is the parameter set for the 20-day horizon.
var Params20 = IndicatorParams{
	SMAShort: 10, SMALong: 20,
	BBWindow: 20, RSIWindow: 14,
	MACDFast: 12, MACDSlow: 26, MACDSignal: 9,
}

// Validate checks that all windows are positive and correctly ordered.
func (p IndicatorParams) Validate() error {
	fields := []struct {
		name string
		v    int
	}{
		{"sma_short", p.SMAShort},
		{"sma_long", p.SMALong},
		{"bb_window", p.BBWindow},
		{"rsi_window", p.RSIWindow},
		{"macd_fast", p.MACDFast},
		{"macd_slow", p.MACDSlow},
		{"macd_signal", p.MACDSignal},
	}
	for _, f := range fields {
		if f.v < 1 {
			return fmt.Errorf("indicator params: %s must be >= 1, got %d", f.name, f.v)
		}
	}
	if p.SMAShort >= p.SMALong {
		return fmt.Errorf("indicator params: sma_short (%d) must be < sma_long (%d)", p.SMAShort, p.SMALong)
	}
	if p.MACDFast >= p.MACDSlow {
		return fmt.Errorf("indicator params: macd_fast (%d) must be < macd_slow (%d)", p.MACDFast, p.MACDSlow)
	}
	return nil
}

// MaxWindow returns the longest warm-up window across all indicators.
func (p IndicatorParams) MaxWindow() int {
	max := p.SMALong
	for _, w := range []int{p.BBWindow, p.RSIWindow, p.MACDSlow} {
		if w > max {
			max = w
		}
	}
	return max
}
