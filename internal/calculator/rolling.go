package calculator

import (
	"math"

	"TickerRank/internal/model"
)

// lift converts a fully-defined float column into a cell column.
func lift(vals []float64) []model.Cell {
	cells := make([]model.Cell, len(vals))
	for i, v := range vals {
		cells[i] = model.Def(v)
	}
	return cells
}

// RollingMean computes the arithmetic mean over the trailing window ending at
// each position. A position is undefined until the window holds `window`
// defined observations.
func RollingMean(vals []model.Cell, window int) []model.Cell {
	out := make([]model.Cell, len(vals))
	if window < 1 {
		return out
	}
	for i := window - 1; i < len(vals); i++ {
		sum := 0.0
		ok := true
		for j := i - window + 1; j <= i; j++ {
			if !vals[j].Defined {
				ok = false
				break
			}
			sum += vals[j].Value
		}
		if ok {
			out[i] = model.Def(sum / float64(window))
		}
	}
	return out
}

// RollingStd computes the population standard deviation over the trailing
// window ending at each position, with the same definedness rule as
// RollingMean.
func RollingStd(vals []model.Cell, window int) []model.Cell {
	out := make([]model.Cell, len(vals))
	if window < 1 {
		return out
	}
	for i := window - 1; i < len(vals); i++ {
		sum := 0.0
		ok := true
		for j := i - window + 1; j <= i; j++ {
			if !vals[j].Defined {
				ok = false
				break
			}
			sum += vals[j].Value
		}
		if !ok {
			continue
		}
		mean := sum / float64(window)
		variance := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := vals[j].Value - mean
			variance += d * d
		}
		out[i] = model.Def(math.Sqrt(variance / float64(window)))
	}
	return out
}

// EWM computes an exponential moving average with smoothing factor
// alpha = 2/(span+1), seeded by the first defined observation:
//
//	ema[t] = alpha*x[t] + (1-alpha)*ema[t-1]
//
// Positions before the seed, and positions whose input is undefined, are
// undefined; the running state carries across undefined gaps.
func EWM(vals []model.Cell, span int) []model.Cell {
	out := make([]model.Cell, len(vals))
	if span < 1 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	var prev float64
	seeded := false
	for i, v := range vals {
		if !v.Defined {
			continue
		}
		if !seeded {
			prev = v.Value
			seeded = true
		} else {
			prev = alpha*v.Value + (1-alpha)*prev
		}
		out[i] = model.Def(prev)
	}
	return out
}

// div divides two cells; the result is undefined when either operand is
// undefined or the denominator is zero. Division by zero propagates as
// undefined rather than failing.
func div(num, den model.Cell) model.Cell {
	if !num.Defined || !den.Defined || den.Value == 0 {
		return model.Cell{}
	}
	return model.Def(num.Value / den.Value)
}

// sub subtracts two cells, undefined if either operand is.
func sub(a, b model.Cell) model.Cell {
	if !a.Defined || !b.Defined {
		return model.Cell{}
	}
	return model.Def(a.Value - b.Value)
}
