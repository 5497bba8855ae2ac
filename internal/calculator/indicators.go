// Package calculator computes derived indicator columns from daily bars.
package calculator

import (
	"math"

	"TickerRank/internal/model"
)

// Compute derives the full indicator series from a normalized bar series.
// Every column is computed over the entire series, not just the tail, because
// scoring needs trailing rolling statistics of the derived columns as well.
func Compute(bars []model.Bar, params model.IndicatorParams) (*model.IndicatorSeries, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	n := len(bars)
	closes := make([]float64, n)
	for i, b := range bars {
		closes[i] = b.Close
	}
	closeCells := lift(closes)

	s := &model.IndicatorSeries{Bars: bars, Params: params}

	s.SMAShort = RollingMean(closeCells, params.SMAShort)
	s.SMALong = RollingMean(closeCells, params.SMALong)

	bbMean := RollingMean(closeCells, params.BBWindow)
	bbStd := RollingStd(closeCells, params.BBWindow)
	s.BBUpper = make([]model.Cell, n)
	s.BBLower = make([]model.Cell, n)
	for i := 0; i < n; i++ {
		if bbMean[i].Defined && bbStd[i].Defined {
			s.BBUpper[i] = model.Def(bbMean[i].Value + 2*bbStd[i].Value)
			s.BBLower[i] = model.Def(bbMean[i].Value - 2*bbStd[i].Value)
		}
	}

	s.ATR = RollingMean(trueRange(bars), params.BBWindow)
	s.ADX = adx(bars, s.ATR, params.BBWindow)
	s.RSI = rsi(closes, params.RSIWindow)

	fastEMA := EWM(closeCells, params.MACDFast)
	slowEMA := EWM(closeCells, params.MACDSlow)
	s.MACD = make([]model.Cell, n)
	for i := 0; i < n; i++ {
		s.MACD[i] = sub(fastEMA[i], slowEMA[i])
	}
	s.MACDSignal = EWM(s.MACD, params.MACDSignal)

	s.OBV = obv(bars)

	return s, nil
}

// trueRange computes TR[t] = max(high-low, |high-prevClose|, |low-prevClose|).
// The first bar has no previous close, so its TR is just high-low.
func trueRange(bars []model.Bar) []model.Cell {
	tr := make([]model.Cell, len(bars))
	for i, b := range bars {
		r := b.High - b.Low
		if i > 0 {
			prev := bars[i-1].Close
			r = math.Max(r, math.Max(math.Abs(b.High-prev), math.Abs(b.Low-prev)))
		}
		tr[i] = model.Def(r)
	}
	return tr
}

// adx computes the Average Directional Index: directional movements smoothed
// exponentially, normalized by ATR into +DI/-DI, then DX smoothed again.
// Wherever ATR or the DI sum is zero, the division yields undefined and the
// gap propagates instead of raising.
func adx(bars []model.Bar, atr []model.Cell, span int) []model.Cell {
	n := len(bars)
	plusDM := make([]model.Cell, n)
	minusDM := make([]model.Cell, n)
	for i := 0; i < n; i++ {
		var up, down float64
		if i > 0 {
			up = bars[i].High - bars[i-1].High
			down = bars[i-1].Low - bars[i].Low
		}
		var p, m float64
		if up > down && up > 0 {
			p = up
		}
		if down > up && down > 0 {
			m = down
		}
		plusDM[i] = model.Def(p)
		minusDM[i] = model.Def(m)
	}

	smoothPlus := EWM(plusDM, span)
	smoothMinus := EWM(minusDM, span)

	dx := make([]model.Cell, n)
	for i := 0; i < n; i++ {
		plusDI := div(smoothPlus[i], atr[i])
		minusDI := div(smoothMinus[i], atr[i])
		if !plusDI.Defined || !minusDI.Defined {
			continue
		}
		diSum := plusDI.Value + minusDI.Value
		if diSum == 0 {
			continue
		}
		dx[i] = model.Def(100 * math.Abs(plusDI.Value-minusDI.Value) / diSum)
	}

	return EWM(dx, span)
}

// rsi computes the Relative Strength Index from rolling mean gain/loss.
// The first delta is treated as zero. A zero average loss makes the point
// undefined (division by zero propagates).
func rsi(closes []float64, window int) []model.Cell {
	n := len(closes)
	gains := make([]model.Cell, n)
	losses := make([]model.Cell, n)
	for i := 0; i < n; i++ {
		var delta float64
		if i > 0 {
			delta = closes[i] - closes[i-1]
		}
		var g, l float64
		if delta > 0 {
			g = delta
		} else if delta < 0 {
			l = -delta
		}
		gains[i] = model.Def(g)
		losses[i] = model.Def(l)
	}

	avgGain := RollingMean(gains, window)
	avgLoss := RollingMean(losses, window)

	out := make([]model.Cell, n)
	for i := 0; i < n; i++ {
		rs := div(avgGain[i], avgLoss[i])
		if rs.Defined {
			out[i] = model.Def(100 - 100/(1+rs.Value))
		}
	}
	return out
}

// obv computes On-Balance Volume: the cumulative sum of volume signed by the
// direction of the close-to-close change. The first delta counts as zero.
func obv(bars []model.Bar) []float64 {
	out := make([]float64, len(bars))
	sum := 0.0
	for i, b := range bars {
		if i > 0 {
			switch {
			case b.Close > bars[i-1].Close:
				sum += b.Volume
			case b.Close < bars[i-1].Close:
				sum -= b.Volume
			}
		}
		out[i] = sum
	}
	return out
}
