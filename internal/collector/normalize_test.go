package collector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TickerRank/internal/model"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeEmpty(t *testing.T) {
	_, err := Normalize(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)

	_, err = Normalize([]model.Bar{})
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestNormalizeDropsAllZeroBars(t *testing.T) {
	bars := []model.Bar{
		{Date: day(2), Open: 1, High: 2, Low: 1, Close: 1.5, Volume: 10},
		{Date: day(3), Volume: 500}, // holiday placeholder row
	}
	out, err := Normalize(bars)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, day(2), out[0].Day())
}

func TestNormalizeAllZeroOnly(t *testing.T) {
	_, err := Normalize([]model.Bar{{Date: day(2)}})
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestNormalizeSortsAscending(t *testing.T) {
	bars := []model.Bar{
		{Date: day(5), Close: 3},
		{Date: day(2), Close: 1},
		{Date: day(4), Close: 2},
	}
	out, err := Normalize(bars)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, 1.0, out[0].Close)
	assert.Equal(t, 2.0, out[1].Close)
	assert.Equal(t, 3.0, out[2].Close)
}

func TestNormalizeDedupesByDayLaterWins(t *testing.T) {
	// Two rows for the same day at different intraday times: the later row in
	// input order replaces the earlier.
	bars := []model.Bar{
		{Date: day(2).Add(10 * time.Hour), Close: 100},
		{Date: day(2).Add(16 * time.Hour), Close: 105},
		{Date: day(3), Close: 110},
	}
	out, err := Normalize(bars)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 105.0, out[0].Close)
	assert.Equal(t, 110.0, out[1].Close)
}
