package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TickerRank/internal/model"
)

func cells(vals ...float64) []model.Cell {
	out := make([]model.Cell, len(vals))
	for i, v := range vals {
		out[i] = model.Def(v)
	}
	return out
}

func TestRollingMeanWarmup(t *testing.T) {
	out := RollingMean(cells(1, 2, 3, 4, 5, 6), 3)
	require.Len(t, out, 6)
	assert.False(t, out[0].Defined)
	assert.False(t, out[1].Defined)
	require.True(t, out[2].Defined)
	assert.Equal(t, 2.0, out[2].Value)
	assert.Equal(t, 5.0, out[5].Value)
}

func TestRollingMeanUndefinedGap(t *testing.T) {
	vals := cells(1, 2, 3, 4)
	vals[1] = model.Cell{} // hole in the input
	out := RollingMean(vals, 2)

	assert.False(t, out[0].Defined)
	assert.False(t, out[1].Defined, "window touching the hole must stay undefined")
	assert.False(t, out[2].Defined)
	require.True(t, out[3].Defined)
	assert.Equal(t, 3.5, out[3].Value)
}

func TestRollingStdIsPopulation(t *testing.T) {
	out := RollingStd(cells(1, 2, 3), 3)
	require.True(t, out[2].Defined)
	assert.InDelta(t, math.Sqrt(2.0/3.0), out[2].Value, 1e-12)
}

func TestRollingStdConstant(t *testing.T) {
	out := RollingStd(cells(5, 5, 5, 5), 2)
	for i := 1; i < 4; i++ {
		require.True(t, out[i].Defined)
		assert.Equal(t, 0.0, out[i].Value)
	}
}

func TestEWMSeededByFirstObservation(t *testing.T) {
	// span 3 -> alpha 0.5
	out := EWM(cells(2, 4, 6), 3)
	require.True(t, out[0].Defined)
	assert.Equal(t, 2.0, out[0].Value)
	assert.Equal(t, 3.0, out[1].Value)
	assert.Equal(t, 4.5, out[2].Value)
}

func TestEWMSkipsLeadingUndefined(t *testing.T) {
	vals := []model.Cell{{}, model.Def(2), model.Def(4)}
	out := EWM(vals, 3)
	assert.False(t, out[0].Defined)
	require.True(t, out[1].Defined)
	assert.Equal(t, 2.0, out[1].Value, "seed is the first defined observation")
	assert.Equal(t, 3.0, out[2].Value)
}

func TestEWMCarriesStateAcrossGap(t *testing.T) {
	vals := []model.Cell{model.Def(2), {}, model.Def(4)}
	out := EWM(vals, 3)
	assert.False(t, out[1].Defined, "undefined input stays undefined")
	require.True(t, out[2].Defined)
	assert.Equal(t, 3.0, out[2].Value)
}

func TestDivByZeroUndefined(t *testing.T) {
	assert.False(t, div(model.Def(1), model.Def(0)).Defined)
	assert.False(t, div(model.Cell{}, model.Def(2)).Defined)
	assert.False(t, div(model.Def(1), model.Cell{}).Defined)
	out := div(model.Def(1), model.Def(4))
	require.True(t, out.Defined)
	assert.Equal(t, 0.25, out.Value)
}
