package batch

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"TickerRank/internal/model"
)

// LoadTickers reads a ticker list file, one symbol per line, skipping blanks.
func LoadTickers(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ticker list: %w", err)
	}
	defer f.Close()

	var tickers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		t := strings.TrimSpace(scanner.Text())
		if t != "" {
			tickers = append(tickers, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ticker list: %w", err)
	}
	return tickers, nil
}

// WriteCSV writes the report table: one row per scored ticker, input order.
func WriteCSV(path string, results []model.TickerScore) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"ticker", "score_5", "score_20"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Ticker,
			strconv.FormatFloat(r.Score5, 'f', 2, 64),
			strconv.FormatFloat(r.Score20, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
