package notifier

import (
	"fmt"
	"strings"

	"TickerRank/internal/model"
)

// FormatRunSummary formats a batch run result into a Telegram message.
func FormatRunSummary(summary *model.RunSummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>TickerRank run</b> | %s\n\n", summary.StartedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Scored: %d | Failed: %d\n", len(summary.Results), len(summary.Failed)))

	if summary.Best5 != nil {
		b.WriteString(fmt.Sprintf("Best 5-day : %s → %.1f/100\n", summary.Best5.Ticker, summary.Best5.Score5))
	}
	if summary.Best20 != nil {
		b.WriteString(fmt.Sprintf("Best 20-day: %s → %.1f/100\n", summary.Best20.Ticker, summary.Best20.Score20))
	}
	if len(summary.Results) == 0 {
		b.WriteString("No tickers scored successfully.\n")
	}

	if len(summary.Failed) > 0 {
		b.WriteString(fmt.Sprintf("\nFailed: %s\n", strings.Join(summary.Failed, ", ")))
	}

	return b.String()
}

// FormatBreakdown formats a single ticker's factor breakdown for display.
func FormatBreakdown(bd *model.ScoreBreakdown) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s | lookback %dd\n", bd.Ticker, bd.LookbackDays))
	for _, f := range bd.Factors {
		if f.Skipped {
			b.WriteString(fmt.Sprintf("  %-15s    --  (%s)\n", f.Name, f.Commentary))
			continue
		}
		b.WriteString(fmt.Sprintf("  %-15s %+6.2f (%s)\n", f.Name, f.Points, f.Commentary))
	}
	b.WriteString("  ─────────────────\n")
	b.WriteString(fmt.Sprintf("  raw %.2f → score %.1f/100\n", bd.RawTotal, bd.Score))
	return b.String()
}
