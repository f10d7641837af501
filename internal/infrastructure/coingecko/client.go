package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vitos/cointrackr/internal/domain"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// The public demo tier allows roughly 30 calls/min; stay under it.
const requestsPerMinute = 25

// Client talks to the CoinGecko REST API. Requests pass through a rate
// limiter so the periodic refresh and user-triggered chart fetches share
// one budget.
type Client struct {
	baseURL  string
	apiKey   string
	currency string
	client   *http.Client
	limiter  *rate.Limiter
}

func NewClient(baseURL, apiKey, currency string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if currency == "" {
		currency = "inr"
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		currency: currency,
		client:   &http.Client{Timeout: 10 * time.Second},
		limiter:  rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), requestsPerMinute),
	}
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("X-CG-Demo-API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error %s: %s - %s", path, resp.Status, string(body))
	}

	return body, nil
}

// Markets fetches the top 100 assets by market cap in the configured
// currency, with 1h/24h/7d percent changes.
func (c *Client) Markets(ctx context.Context) ([]domain.MarketEntry, error) {
	q := url.Values{}
	q.Set("vs_currency", c.currency)
	q.Set("order", "market_cap_desc")
	q.Set("per_page", "100")
	q.Set("page", "1")
	q.Set("sparkline", "false")
	q.Set("price_change_percentage", "1h,24h,7d")

	body, err := c.get(ctx, "/coins/markets?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var entries []domain.MarketEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("parse markets response: %w", err)
	}
	return entries, nil
}

// MarketChart fetches one asset's daily price series for the last `days`
// days. The API returns prices as [timestampMillis, price] pairs; a null
// price marks a gap day and is kept as a nil point.
func (c *Client) MarketChart(ctx context.Context, id string, days int) ([]domain.PriceHistoryPoint, error) {
	q := url.Values{}
	q.Set("vs_currency", c.currency)
	q.Set("days", fmt.Sprintf("%d", days))
	q.Set("interval", "daily")

	body, err := c.get(ctx, "/coins/"+url.PathEscape(id)+"/market_chart?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var payload struct {
		Prices [][2]*float64 `json:"prices"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse chart response for %s: %w", id, err)
	}

	points := make([]domain.PriceHistoryPoint, 0, len(payload.Prices))
	for _, pair := range payload.Prices {
		if pair[0] == nil {
			continue
		}
		points = append(points, domain.PriceHistoryPoint{
			TimestampMillis: int64(*pair[0]),
			Price:           pair[1],
		})
	}
	return points, nil
}
