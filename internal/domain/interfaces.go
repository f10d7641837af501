package domain

import "context"

// MarketDataSource defines the upstream market data API.
type MarketDataSource interface {
	// Markets returns the current top market entries, ordered by market cap.
	Markets(ctx context.Context) ([]MarketEntry, error)
	// MarketChart returns the chronological daily price series for one asset
	// covering the last `days` days.
	MarketChart(ctx context.Context, id string, days int) ([]PriceHistoryPoint, error)
}
