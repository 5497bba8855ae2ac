package fundamentals

import (
	"log"
	"strconv"
	"sync"

	"TickerRank/internal/model"
)

// Adapter restricts a raw fundamentals mapping to the canonical ratios and
// memoizes the result per ticker for the process lifetime. Lookup failures
// never propagate: they degrade the snapshot to fewer (or zero) ratios.
//
// The cache is append-only and safe for concurrent use. Concurrent first
// lookups for the same ticker may both query the source; the duplicate write
// is idempotent.
type Adapter struct {
	source Source

	mu    sync.RWMutex
	cache map[string]map[string]float64
}

// NewAdapter creates an adapter around the given source. A nil source yields
// empty snapshots for every ticker.
func NewAdapter(source Source) *Adapter {
	return &Adapter{
		source: source,
		cache:  make(map[string]map[string]float64),
	}
}

// Snapshot returns the canonical fundamentals for a ticker, querying the
// source at most once per ticker. The returned map must not be mutated.
func (a *Adapter) Snapshot(ticker string) map[string]float64 {
	a.mu.RLock()
	snap, ok := a.cache[ticker]
	a.mu.RUnlock()
	if ok {
		return snap
	}

	snap = a.query(ticker)

	a.mu.Lock()
	if prior, ok := a.cache[ticker]; ok {
		snap = prior // lost the race, keep the first write
	} else {
		a.cache[ticker] = snap
	}
	a.mu.Unlock()
	return snap
}

func (a *Adapter) query(ticker string) map[string]float64 {
	snap := make(map[string]float64)
	if a.source == nil {
		return snap
	}
	raw, err := a.source.Fetch(ticker)
	if err != nil {
		log.Printf("[WARN] fundamentals lookup for %s failed: %v, scoring on technicals only", ticker, err)
		return snap
	}
	for _, field := range model.FundamentalFields {
		v, ok := raw[field]
		if !ok {
			continue
		}
		if f, ok := asFloat(v); ok {
			snap[field] = f
		}
	}
	return snap
}

// asFloat converts the loosely-typed JSON values sources emit; ratios arrive
// as numbers or numeric strings.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
