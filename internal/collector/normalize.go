package collector

import (
	"sort"

	"TickerRank/internal/model"
)

// Normalize shapes raw bars into a canonical series: ascending calendar days
// with exactly one bar per day. Completely empty bars (all prices zero, as some
// sources emit for holidays) are dropped; when a source returns more than one
// row for a day the later one wins. Returns ErrEmptySeries when nothing
// usable remains.
func Normalize(raw []model.Bar) ([]model.Bar, error) {
	if len(raw) == 0 {
		return nil, ErrEmptySeries
	}

	byDay := make(map[int64]model.Bar, len(raw))
	for _, b := range raw {
		if b.Open == 0 && b.High == 0 && b.Low == 0 && b.Close == 0 {
			continue
		}
		byDay[b.Day().Unix()] = b
	}
	if len(byDay) == 0 {
		return nil, ErrEmptySeries
	}

	bars := make([]model.Bar, 0, len(byDay))
	for _, b := range byDay {
		bars = append(bars, b)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Day().Before(bars[j].Day()) })
	return bars, nil
}
