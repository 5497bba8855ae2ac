package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"TickerRank/internal/model"
)

const defaultPolygonBaseURL = "https://api.polygon.io"

// PolygonFetcher implements Fetcher using the Polygon aggregates API.
type PolygonFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	limiter *rate.Limiter
}

// NewPolygonFetcher creates a fetcher with optional proxy support. The free
// Polygon tier allows 5 requests/minute; requestsPerMinute <= 0 falls back to
// that.
func NewPolygonFetcher(baseURL, apiKey, proxyURL string, requestsPerMinute int) *PolygonFetcher {
	if baseURL == "" {
		baseURL = defaultPolygonBaseURL
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = 5
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &PolygonFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60), 1),
	}
}

func (f *PolygonFetcher) Name() string { return "polygon" }

// polygonAggs is the response shape of the Polygon aggregates endpoint.
type polygonAggs struct {
	Status       string `json:"status"`
	ResultsCount int    `json:"resultsCount"`
	Results      []struct {
		Timestamp int64   `json:"t"` // milliseconds
		Open      float64 `json:"o"`
		High      float64 `json:"h"`
		Low       float64 `json:"l"`
		Close     float64 `json:"c"`
		Volume    float64 `json:"v"`
	} `json:"results"`
	Error string `json:"error"`
}

func (f *PolygonFetcher) FetchDailyBars(ticker string, start, end time.Time) ([]model.Bar, error) {
	endpoint := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/1/day/%s/%s?adjusted=true&sort=asc&limit=50000",
		f.BaseURL, url.PathEscape(ticker), start.Format("2006-01-02"), end.Format("2006-01-02"))

	if err := f.limiter.Wait(context.Background()); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("polygon fetch %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("polygon read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("polygon %s: status %d, body: %s", ticker, resp.StatusCode, string(body))
	}

	var aggs polygonAggs
	if err := json.Unmarshal(body, &aggs); err != nil {
		return nil, fmt.Errorf("polygon decode: %w", err)
	}
	if aggs.Error != "" {
		return nil, fmt.Errorf("polygon api error for %s: %s", ticker, aggs.Error)
	}
	if len(aggs.Results) == 0 {
		return nil, fmt.Errorf("%w: %s between %s and %s", ErrNoData,
			ticker, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	bars := make([]model.Bar, len(aggs.Results))
	for i, r := range aggs.Results {
		bars[i] = model.Bar{
			Date:   time.UnixMilli(r.Timestamp).UTC(),
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: r.Volume,
		}
	}
	return bars, nil
}
