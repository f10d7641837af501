package domain

import "time"

// MarketEntry is one tracked asset as returned by the markets endpoint.
// Numeric fields are pointers because the API omits them for thin or newly
// listed assets; a nil pointer means "absent", not zero.
type MarketEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Symbol       string   `json:"symbol"`
	Rank         *int     `json:"market_cap_rank"`
	CurrentPrice *float64 `json:"current_price"`
	MarketCap    *float64 `json:"market_cap"`
	Volume24h    *float64 `json:"total_volume"`
	Change1h     *float64 `json:"price_change_percentage_1h_in_currency"`
	Change24h    *float64 `json:"price_change_percentage_24h"`
	Change7d     *float64 `json:"price_change_percentage_7d_in_currency"`
	ImageURL     string   `json:"image"`
}

// Snapshot is one complete fetched market list. It is never mutated after
// creation; a refresh builds a new Snapshot and swaps it in wholesale.
type Snapshot struct {
	Entries   []MarketEntry
	FetchedAt time.Time
}

// PriceHistoryPoint is one point of an asset's daily price series.
// Price is nil for gap days the API could not price.
type PriceHistoryPoint struct {
	TimestampMillis int64    `json:"t"`
	Price           *float64 `json:"price"`
}
