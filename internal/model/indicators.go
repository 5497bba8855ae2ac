package model

// Cell holds one value of a derived indicator column. Derived values are
// undefined until their dependent history exists; Defined reports that.
// An undefined cell propagates through every dependent computation instead
// of being treated as zero.
type Cell struct {
	Value   float64
	Defined bool
}

// Def constructs a defined cell.
func Def(v float64) Cell { return Cell{Value: v, Defined: true} }

// IndicatorSeries extends a bar series with the derived indicator columns.
// Every column has the same length as Bars; warm-up positions are undefined.
type IndicatorSeries struct {
	Bars   []Bar
	Params IndicatorParams

	SMAShort   []Cell
	SMALong    []Cell
	BBUpper    []Cell
	BBLower    []Cell
	ATR        []Cell
	ADX        []Cell
	RSI        []Cell
	MACD       []Cell
	MACDSignal []Cell
	OBV        []float64
}

// Len returns the number of rows in the series.
func (s *IndicatorSeries) Len() int { return len(s.Bars) }

// LastClose returns the most recent closing price. Valid only when Len() > 0.
func (s *IndicatorSeries) LastClose() float64 { return s.Bars[len(s.Bars)-1].Close }
