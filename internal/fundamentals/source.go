// Package fundamentals retrieves and caches per-ticker fundamental ratios.
package fundamentals

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Source supplies the raw fundamentals mapping for a ticker. Implementations
// may fail or return partial data; the adapter swallows both.
type Source interface {
	Fetch(ticker string) (map[string]interface{}, error)
	Name() string
}

// HTTPSource fetches a flat JSON object of fundamental metrics per ticker.
type HTTPSource struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPSource creates a fundamentals source with optional proxy support.
func NewHTTPSource(baseURL, apiKey, proxyURL string, requestsPerMinute int) *HTTPSource {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 5
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPSource{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60), 1),
	}
}

func (s *HTTPSource) Name() string { return "http" }

func (s *HTTPSource) Fetch(ticker string) (map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/fundamentals/%s", s.BaseURL, url.PathEscape(ticker))

	if err := s.limiter.Wait(context.Background()); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fundamentals fetch %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fundamentals read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fundamentals %s: status %d", ticker, resp.StatusCode)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("fundamentals decode: %w", err)
	}
	return raw, nil
}
