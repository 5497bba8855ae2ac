package model

import "time"

// Bar represents a single daily OHLCV bar.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Day returns the bar's calendar day, truncated to midnight UTC.
func (b Bar) Day() time.Time {
	y, m, d := b.Date.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
