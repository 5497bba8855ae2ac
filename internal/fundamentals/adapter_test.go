package fundamentals

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TickerRank/internal/model"
)

type stubSource struct {
	mu    sync.Mutex
	calls int
	data  map[string]interface{}
	err   error
}

func (s *stubSource) Fetch(string) (map[string]interface{}, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.data, s.err
}

func (s *stubSource) Name() string { return "stub" }

func TestSnapshotFiltersAndConverts(t *testing.T) {
	src := &stubSource{data: map[string]interface{}{
		model.FieldTrailingPE:              18.5,
		model.FieldEarningsQuarterlyGrowth: "0.12",
		model.FieldDebtToEquity:            42,
		model.FieldRevenueQuarterlyGrowth:  "not-a-number",
		"marketCap":                        1e12,
		"sector":                           "Technology",
	}}
	snap := NewAdapter(src).Snapshot("AAPL")

	assert.Equal(t, map[string]float64{
		model.FieldTrailingPE:              18.5,
		model.FieldEarningsQuarterlyGrowth: 0.12,
		model.FieldDebtToEquity:            42,
	}, snap)
}

func TestSnapshotMemoizes(t *testing.T) {
	src := &stubSource{data: map[string]interface{}{model.FieldTrailingPE: 10.0}}
	a := NewAdapter(src)

	first := a.Snapshot("MSFT")
	second := a.Snapshot("MSFT")
	assert.Equal(t, 1, src.calls, "source queried once per ticker")
	assert.Equal(t, first, second)

	a.Snapshot("GOOG")
	assert.Equal(t, 2, src.calls, "distinct tickers query separately")
}

func TestSnapshotSwallowsSourceErrors(t *testing.T) {
	src := &stubSource{err: errors.New("upstream down")}
	a := NewAdapter(src)

	snap := a.Snapshot("TSLA")
	assert.Empty(t, snap)
	// The failure is memoized too: no retry storm against a broken source.
	a.Snapshot("TSLA")
	assert.Equal(t, 1, src.calls)
}

func TestSnapshotNilSource(t *testing.T) {
	a := NewAdapter(nil)
	snap := a.Snapshot("NVDA")
	require.NotNil(t, snap)
	assert.Empty(t, snap)
}

func TestSnapshotConcurrent(t *testing.T) {
	src := &stubSource{data: map[string]interface{}{model.FieldTrailingPE: 7.0}}
	a := NewAdapter(src)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap := a.Snapshot("AMZN")
			assert.Equal(t, 7.0, snap[model.FieldTrailingPE])
		}()
	}
	wg.Wait()
}

func TestAsFloat(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
		ok   bool
	}{
		{3.14, 3.14, true},
		{7, 7, true},
		{"2.5", 2.5, true},
		{"", 0, false},
		{"abc", 0, false},
		{true, 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := asFloat(tc.in)
		assert.Equal(t, tc.ok, ok, "%v", tc.in)
		if ok {
			assert.Equal(t, tc.want, got, "%v", tc.in)
		}
	}
}
