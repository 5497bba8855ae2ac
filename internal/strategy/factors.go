package strategy

import (
	"fmt"
	"math"

	"TickerRank/internal/calculator"
	"TickerRank/internal/model"
)

// scoreRSI rewards a neutral RSI: 15 points at a mean of 50, falling linearly
// to 0 at either extreme. The mean covers the defined RSI values within the
// last lookbackDays rows.
func scoreRSI(s *model.IndicatorSeries, lookbackDays int) model.FactorScore {
	f := model.FactorScore{Name: "rsi"}
	start := s.Len() - lookbackDays
	if start < 0 {
		start = 0
	}
	sum, count := 0.0, 0
	for _, c := range s.RSI[start:] {
		if c.Defined {
			sum += c.Value
			count++
		}
	}
	if count == 0 {
		f.Skipped = true
		f.Commentary = "no defined RSI in tail"
		return f
	}
	mean := sum / float64(count)
	f.Points = 15 * (1 - math.Abs(mean-50)/50)
	f.Commentary = fmt.Sprintf("mean RSI=%.1f", mean)
	return f
}

// scoreMACDHistogram scores the latest MACD histogram value relative to the
// rolling mean of its own absolute value over the lookback. The ratio is
// deliberately unbounded; the final clamp is the safety net.
func scoreMACDHistogram(s *model.IndicatorSeries, lookbackDays int) model.FactorScore {
	f := model.FactorScore{Name: "macd_histogram", Skipped: true}
	n := s.Len()
	hist := make([]model.Cell, n)
	definedCount := 0
	for i := 0; i < n; i++ {
		if s.MACD[i].Defined && s.MACDSignal[i].Defined {
			hist[i] = model.Def(s.MACD[i].Value - s.MACDSignal[i].Value)
			definedCount++
		}
	}
	if definedCount < lookbackDays {
		f.Commentary = "histogram history shorter than lookback"
		return f
	}
	absHist := make([]model.Cell, n)
	for i, c := range hist {
		if c.Defined {
			absHist[i] = model.Def(math.Abs(c.Value))
		}
	}
	rollAbs := calculator.RollingMean(absHist, lookbackDays)
	latest, mean := hist[n-1], rollAbs[n-1]
	if !latest.Defined || !mean.Defined || mean.Value == 0 {
		f.Commentary = "no usable histogram tail"
		return f
	}
	f.Skipped = false
	f.Points = 20 * (latest.Value / mean.Value)
	f.Commentary = fmt.Sprintf("hist=%.4f mean|hist|=%.4f", latest.Value, mean.Value)
	return f
}

// scoreBollinger rewards proximity to the lower band: 10 points at the lower
// band, 0 at the upper. Skipped when the bands are undefined or collapsed.
func scoreBollinger(s *model.IndicatorSeries, _ int) model.FactorScore {
	f := model.FactorScore{Name: "bollinger", Skipped: true}
	n := s.Len()
	upper, lower := s.BBUpper[n-1], s.BBLower[n-1]
	if !upper.Defined || !lower.Defined || upper.Value <= lower.Value {
		f.Commentary = "bands undefined or collapsed"
		return f
	}
	frac := clamp((s.LastClose()-lower.Value)/(upper.Value-lower.Value), 0, 1)
	f.Skipped = false
	f.Points = 10 * (1 - frac)
	f.Commentary = fmt.Sprintf("band position=%.2f", frac)
	return f
}

// scoreSMA measures the close relative to both moving averages, plus a 5-point
// term for the averages' ordering. Equality earns neither bonus nor penalty;
// the ordering comparison is strictly greater-than. A zero-valued average is
// treated like an undefined one for the ratio terms, the same division-by-zero
// convention the indicator columns follow.
func scoreSMA(s *model.IndicatorSeries, _ int) model.FactorScore {
	f := model.FactorScore{Name: "sma"}
	n := s.Len()
	short, long := s.SMAShort[n-1], s.SMALong[n-1]
	if !short.Defined && !long.Defined {
		f.Skipped = true
		f.Commentary = "moving averages undefined"
		return f
	}
	close := s.LastClose()
	if short.Defined && short.Value != 0 {
		f.Points += 5 * (close/short.Value - 1)
	}
	if long.Defined && long.Value != 0 {
		f.Points += 5 * (close/long.Value - 1)
	}
	if short.Defined && long.Defined {
		if short.Value > long.Value {
			f.Points += 5
		} else if short.Value < long.Value {
			f.Points -= 5
		}
	}
	f.Commentary = fmt.Sprintf("close=%.2f short=%s long=%s", close, fmtCell(short), fmtCell(long))
	return f
}

// scoreATR rewards low relative volatility: full 5 points at an ATR/close
// ratio of 2% or below, zero at 6% or above.
func scoreATR(s *model.IndicatorSeries, _ int) model.FactorScore {
	f := model.FactorScore{Name: "atr", Skipped: true}
	atr := s.ATR[s.Len()-1]
	if !atr.Defined || atr.Value <= 0 {
		f.Commentary = "ATR undefined or zero"
		return f
	}
	ratio := atr.Value / s.LastClose()
	f.Skipped = false
	f.Points = 5 * clamp((0.04-ratio)/0.02, 0, 1)
	f.Commentary = fmt.Sprintf("ATR/close=%.3f", ratio)
	return f
}

// scoreADX grants up to 5 points for trend strength, saturating at ADX 50.
func scoreADX(s *model.IndicatorSeries, _ int) model.FactorScore {
	f := model.FactorScore{Name: "adx", Skipped: true}
	adx := s.ADX[s.Len()-1]
	if !adx.Defined {
		f.Commentary = "ADX undefined"
		return f
	}
	f.Skipped = false
	f.Points = 5 * math.Min(adx.Value, 50) / 50
	f.Commentary = fmt.Sprintf("ADX=%.1f", adx.Value)
	return f
}

// scoreOBV grants 5 points when the latest On-Balance Volume rose versus the
// previous row.
func scoreOBV(s *model.IndicatorSeries, _ int) model.FactorScore {
	f := model.FactorScore{Name: "obv"}
	n := s.Len()
	if n < 2 {
		f.Skipped = true
		f.Commentary = "fewer than two rows"
		return f
	}
	if s.OBV[n-1] > s.OBV[n-2] {
		f.Points = 5
		f.Commentary = "OBV rising"
	} else {
		f.Commentary = "OBV flat or falling"
	}
	return f
}

var (
	peCurve = []breakpoint{{5, 10}, {15, 10}, {25, 5}, {50, 0}}
	egCurve = []breakpoint{{0, 0}, {0.1, 5}, {0.2, 15}, {1, 15}}
	deCurve = []breakpoint{{0, 5}, {50, 5}, {100, 2.5}, {300, 0}}
	rgCurve = []breakpoint{{0, 0}, {0.1, 10}, {0.5, 10}}
)

// scoreFundamentals interpolates each present ratio against its breakpoint
// curve, sums the contributions, and scales by the horizon decay
// min(lookbackDays/20, 1): fundamentals matter less on short horizons.
func scoreFundamentals(fundamentals map[string]float64, lookbackDays int) model.FactorScore {
	f := model.FactorScore{Name: "fundamentals"}
	if len(fundamentals) == 0 {
		f.Skipped = true
		f.Commentary = "no fundamentals"
		return f
	}
	raw := 0.0
	if v, ok := fundamentals[model.FieldTrailingPE]; ok {
		raw += interpolate(v, peCurve)
	}
	if v, ok := fundamentals[model.FieldEarningsQuarterlyGrowth]; ok {
		raw += interpolate(v, egCurve)
	}
	if v, ok := fundamentals[model.FieldDebtToEquity]; ok {
		raw += interpolate(v, deCurve)
	}
	if v, ok := fundamentals[model.FieldRevenueQuarterlyGrowth]; ok {
		raw += interpolate(v, rgCurve)
	}
	decay := math.Min(float64(lookbackDays)/20, 1)
	f.Points = raw * decay
	f.Commentary = fmt.Sprintf("raw=%.1f decay=%.2f", raw, decay)
	return f
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func fmtCell(c model.Cell) string {
	if !c.Defined {
		return "undef"
	}
	return fmt.Sprintf("%.2f", c.Value)
}
