// Package foodsource fetches the baseline food catalog, a plain CSV
// document with a header row served over HTTP.
package foodsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultSourceURL = "https://raw.githubusercontent.com/j1me/burntrack/main/data/indian_foods.csv"

type Client struct {
	SourceURL  string
	HTTPClient *http.Client
}

// FetchCatalog returns the raw CSV body. Parsing is the caller's concern;
// any transport or status failure is reported as an error so callers can
// take the fallback path.
func (c *Client) FetchCatalog(ctx context.Context) ([]byte, error) {
	url := strings.TrimSpace(c.SourceURL)
	if url == "" {
		url = defaultSourceURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create food source request: %w", err)
	}
	req.Header.Set("User-Agent", "burntrack/1.0 (+https://github.com/j1me/burntrack)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute food source request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read food source response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("food source request failed with status %d", resp.StatusCode)
	}
	return body, nil
}
