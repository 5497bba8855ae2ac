package notifier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"TickerRank/internal/model"
)

func TestFormatRunSummary(t *testing.T) {
	results := []model.TickerScore{
		{Ticker: "AAPL", Score5: 61.5, Score20: 72.3},
		{Ticker: "MSFT", Score5: 48.0, Score20: 55.0},
	}
	summary := &model.RunSummary{
		StartedAt: time.Date(2026, 3, 6, 17, 30, 0, 0, time.UTC),
		Results:   results,
		Failed:    []string{"BAD", "WORSE"},
		Best5:     &results[0],
		Best20:    &results[1],
	}

	msg := FormatRunSummary(summary)
	assert.Contains(t, msg, "2026-03-06")
	assert.Contains(t, msg, "Scored: 2 | Failed: 2")
	assert.Contains(t, msg, "Best 5-day : AAPL → 61.5/100")
	assert.Contains(t, msg, "Best 20-day: MSFT → 55.0/100")
	assert.Contains(t, msg, "Failed: BAD, WORSE")
}

func TestFormatRunSummaryEmpty(t *testing.T) {
	summary := &model.RunSummary{StartedAt: time.Now()}
	msg := FormatRunSummary(summary)
	assert.Contains(t, msg, "No tickers scored successfully.")
	assert.NotContains(t, msg, "Best 5-day")
}

func TestFormatBreakdown(t *testing.T) {
	bd := &model.ScoreBreakdown{
		Ticker:       "AAPL",
		LookbackDays: 5,
		Factors: []model.FactorScore{
			{Name: "rsi", Points: 12.5, Commentary: "mean RSI=45.0"},
			{Name: "atr", Skipped: true, Commentary: "ATR undefined or zero"},
		},
		RawTotal: 12.5,
		Score:    12.5,
	}
	out := FormatBreakdown(bd)
	assert.Contains(t, out, "AAPL | lookback 5d")
	assert.Contains(t, out, "+12.50")
	assert.Contains(t, out, "mean RSI=45.0")
	assert.Contains(t, out, "--")
	assert.Contains(t, out, "score 12.5/100")
}

func TestEnabled(t *testing.T) {
	var nilNotifier *TelegramNotifier
	assert.False(t, nilNotifier.Enabled())
	assert.False(t, NewTelegramNotifier("", "", "").Enabled())
	assert.False(t, NewTelegramNotifier("123:abc", "", "").Enabled())
	assert.True(t, NewTelegramNotifier("123:abc", "-100", "").Enabled())
}

func TestSendDisabledIsNoop(t *testing.T) {
	n := NewTelegramNotifier("", "", "")
	assert.NoError(t, n.Send("anything"))
	assert.NoError(t, n.SendWithRetry(context.Background(), "anything"))
}

func TestNotifierDefaults(t *testing.T) {
	n := NewTelegramNotifier("123:abc", "-100", "")
	assert.Equal(t, "HTML", n.ParseMode)
	assert.Equal(t, 3, n.MaxRetries)
}
