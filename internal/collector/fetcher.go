// Package collector retrieves and normalizes raw daily bars.
package collector

import (
	"errors"
	"time"

	"TickerRank/internal/model"
)

// ErrNoData indicates the data source returned zero bars for the request.
var ErrNoData = errors.New("data source returned no bars")

// ErrEmptySeries indicates the normalizer received zero usable rows.
var ErrEmptySeries = errors.New("no usable rows in bar series")

// Fetcher defines the interface for fetching daily bars for a date range.
type Fetcher interface {
	FetchDailyBars(ticker string, start, end time.Time) ([]model.Bar, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.Bar
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, _, _ time.Time) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Bars, nil
}
