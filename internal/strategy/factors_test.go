package strategy

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TickerRank/internal/model"
)

// blankSeries builds a series of n flat bars with every indicator column
// allocated but undefined, so each test fills only the column it exercises.
func blankSeries(n int, lastClose float64) *model.IndicatorSeries {
	day := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, n)
	for i := range bars {
		bars[i] = model.Bar{Date: day.AddDate(0, 0, i), Close: lastClose, Volume: 100}
	}
	return &model.IndicatorSeries{
		Bars:       bars,
		SMAShort:   make([]model.Cell, n),
		SMALong:    make([]model.Cell, n),
		BBUpper:    make([]model.Cell, n),
		BBLower:    make([]model.Cell, n),
		ATR:        make([]model.Cell, n),
		ADX:        make([]model.Cell, n),
		RSI:        make([]model.Cell, n),
		MACD:       make([]model.Cell, n),
		MACDSignal: make([]model.Cell, n),
		OBV:        make([]float64, n),
	}
}

func fill(col []model.Cell, v float64) {
	for i := range col {
		col[i] = model.Def(v)
	}
}

func TestScoreRSI(t *testing.T) {
	s := blankSeries(10, 100)

	f := scoreRSI(s, 5)
	assert.True(t, f.Skipped, "all undefined RSI skips the factor")

	fill(s.RSI, 50)
	f = scoreRSI(s, 5)
	assert.False(t, f.Skipped)
	assert.InDelta(t, 15.0, f.Points, 1e-12)

	fill(s.RSI, 100)
	assert.InDelta(t, 0.0, scoreRSI(s, 5).Points, 1e-12)

	fill(s.RSI, 0)
	assert.InDelta(t, 0.0, scoreRSI(s, 5).Points, 1e-12)

	fill(s.RSI, 75)
	assert.InDelta(t, 7.5, scoreRSI(s, 5).Points, 1e-12)
}

func TestScoreRSIUsesOnlyTail(t *testing.T) {
	s := blankSeries(10, 100)
	fill(s.RSI, 100)
	for i := 5; i < 10; i++ {
		s.RSI[i] = model.Def(50)
	}
	// Lookback 5 covers only the neutral tail.
	assert.InDelta(t, 15.0, scoreRSI(s, 5).Points, 1e-12)
}

func TestScoreMACDHistogram(t *testing.T) {
	s := blankSeries(10, 100)

	f := scoreMACDHistogram(s, 5)
	assert.True(t, f.Skipped, "undefined histogram skips")

	// Constant positive histogram: latest equals the rolling mean magnitude.
	fill(s.MACD, 1.5)
	fill(s.MACDSignal, 1.0)
	f = scoreMACDHistogram(s, 5)
	require.False(t, f.Skipped)
	assert.InDelta(t, 20.0, f.Points, 1e-12)

	// Negative histogram of the same magnitude flips the sign.
	fill(s.MACD, 0.5)
	f = scoreMACDHistogram(s, 5)
	require.False(t, f.Skipped)
	assert.InDelta(t, -20.0, f.Points, 1e-12)

	// Zero histogram means a zero mean magnitude: skipped, not divided.
	fill(s.MACD, 1.0)
	f = scoreMACDHistogram(s, 5)
	assert.True(t, f.Skipped)
}

func TestScoreMACDHistogramShortHistory(t *testing.T) {
	s := blankSeries(3, 100)
	fill(s.MACD, 1)
	fill(s.MACDSignal, 0.5)
	f := scoreMACDHistogram(s, 5)
	assert.True(t, f.Skipped, "fewer defined points than the lookback skips")
}

func TestScoreBollinger(t *testing.T) {
	s := blankSeries(5, 90)
	fill(s.BBUpper, 110)
	fill(s.BBLower, 90)

	// Close pinned to the lower band.
	f := scoreBollinger(s, 0)
	require.False(t, f.Skipped)
	assert.InDelta(t, 10.0, f.Points, 1e-12)

	s.Bars[4].Close = 110
	assert.InDelta(t, 0.0, scoreBollinger(s, 0).Points, 1e-12)

	s.Bars[4].Close = 100
	assert.InDelta(t, 5.0, scoreBollinger(s, 0).Points, 1e-12)

	// Close outside the bands clamps rather than overshooting.
	s.Bars[4].Close = 80
	assert.InDelta(t, 10.0, scoreBollinger(s, 0).Points, 1e-12)
	s.Bars[4].Close = 130
	assert.InDelta(t, 0.0, scoreBollinger(s, 0).Points, 1e-12)
}

func TestScoreBollingerCollapsedBands(t *testing.T) {
	s := blankSeries(5, 100)
	fill(s.BBUpper, 100)
	fill(s.BBLower, 100)
	assert.True(t, scoreBollinger(s, 0).Skipped)
}

func TestScoreSMA(t *testing.T) {
	s := blankSeries(5, 100)

	assert.True(t, scoreSMA(s, 0).Skipped, "both averages undefined skips")

	// Equality everywhere contributes nothing: the ordering term is strict.
	fill(s.SMAShort, 100)
	fill(s.SMALong, 100)
	f := scoreSMA(s, 0)
	require.False(t, f.Skipped)
	assert.InDelta(t, 0.0, f.Points, 1e-12)

	// Golden cross: close 5% above both averages plus the ordering bonus.
	fill(s.SMAShort, 100)
	fill(s.SMALong, 95)
	s.Bars[4].Close = 100
	f = scoreSMA(s, 0)
	assert.InDelta(t, 5*(100.0/95-1)+5, f.Points, 1e-12)

	// Death cross flips the bonus into a penalty.
	fill(s.SMAShort, 95)
	fill(s.SMALong, 100)
	f = scoreSMA(s, 0)
	assert.InDelta(t, 5*(100.0/95-1)-5, f.Points, 1e-12)
}

func TestScoreSMAZeroAverages(t *testing.T) {
	// A worthless stock closes at zero for the whole window: both averages are
	// defined zeros. The ratio terms would be 0/0, so they must drop out the
	// way a zero denominator does everywhere else.
	s := blankSeries(5, 0)
	fill(s.SMAShort, 0)
	fill(s.SMALong, 0)
	f := scoreSMA(s, 0)
	require.False(t, f.Skipped)
	assert.False(t, math.IsNaN(f.Points))
	assert.InDelta(t, 0.0, f.Points, 1e-12)

	// One zero average alongside a live one: only the live term counts.
	s = blankSeries(5, 105)
	fill(s.SMAShort, 0)
	fill(s.SMALong, 100)
	f = scoreSMA(s, 0)
	require.False(t, f.Skipped)
	assert.False(t, math.IsNaN(f.Points))
	assert.InDelta(t, 5*0.05-5, f.Points, 1e-12)
}

func TestScoreSMAOneSideDefined(t *testing.T) {
	s := blankSeries(5, 105)
	fill(s.SMAShort, 100)
	f := scoreSMA(s, 0)
	require.False(t, f.Skipped)
	assert.InDelta(t, 5*0.05, f.Points, 1e-12)
}

func TestScoreATR(t *testing.T) {
	s := blankSeries(5, 100)

	assert.True(t, scoreATR(s, 0).Skipped)

	fill(s.ATR, 2) // ratio 0.02: calmest tier
	f := scoreATR(s, 0)
	require.False(t, f.Skipped)
	assert.InDelta(t, 5.0, f.Points, 1e-12)

	fill(s.ATR, 3) // ratio 0.03: halfway
	assert.InDelta(t, 2.5, scoreATR(s, 0).Points, 1e-12)

	fill(s.ATR, 6) // ratio 0.06: too volatile
	assert.InDelta(t, 0.0, scoreATR(s, 0).Points, 1e-12)

	fill(s.ATR, 0) // zero range is treated as no signal
	assert.True(t, scoreATR(s, 0).Skipped)
}

func TestScoreADX(t *testing.T) {
	s := blankSeries(5, 100)

	assert.True(t, scoreADX(s, 0).Skipped)

	fill(s.ADX, 25)
	assert.InDelta(t, 2.5, scoreADX(s, 0).Points, 1e-12)

	fill(s.ADX, 50)
	assert.InDelta(t, 5.0, scoreADX(s, 0).Points, 1e-12)

	fill(s.ADX, 80)
	assert.InDelta(t, 5.0, scoreADX(s, 0).Points, 1e-12, "saturates at 50")
}

func TestScoreOBV(t *testing.T) {
	s := blankSeries(5, 100)
	s.OBV = []float64{0, 100, 200, 300, 400}
	assert.InDelta(t, 5.0, scoreOBV(s, 0).Points, 1e-12)

	s.OBV = []float64{0, 100, 200, 300, 300}
	assert.InDelta(t, 0.0, scoreOBV(s, 0).Points, 1e-12)

	s.OBV = []float64{0, 100, 200, 300, 250}
	assert.InDelta(t, 0.0, scoreOBV(s, 0).Points, 1e-12)

	one := blankSeries(1, 100)
	assert.True(t, scoreOBV(one, 0).Skipped)
}

func TestScoreFundamentals(t *testing.T) {
	assert.True(t, scoreFundamentals(nil, 20).Skipped)
	assert.True(t, scoreFundamentals(map[string]float64{}, 20).Skipped)

	full := map[string]float64{
		model.FieldTrailingPE:               10,  // 10 points
		model.FieldEarningsQuarterlyGrowth:  0.2, // 15 points
		model.FieldDebtToEquity:             40,  // 5 points
		model.FieldRevenueQuarterlyGrowth:   0.3, // 10 points
	}
	f := scoreFundamentals(full, 20)
	require.False(t, f.Skipped)
	assert.InDelta(t, 40.0, f.Points, 1e-12, "full decay at the 20-day horizon")

	f = scoreFundamentals(full, 5)
	assert.InDelta(t, 10.0, f.Points, 1e-12, "5-day horizon decays to a quarter")

	// Unknown keys are ignored, present keys still count.
	partial := map[string]float64{
		model.FieldTrailingPE: 10,
		"marketCap":           1e12,
	}
	f = scoreFundamentals(partial, 20)
	assert.InDelta(t, 10.0, f.Points, 1e-12)
}
