package domain

// SortKey selects the MarketEntry field the view is ordered by.
type SortKey string

const (
	SortByRank      SortKey = "rank"
	SortByName      SortKey = "name"
	SortByPrice     SortKey = "price"
	SortByMarketCap SortKey = "market_cap"
	SortByChange24h SortKey = "change_24h"
	SortByVolume    SortKey = "volume"
)

// ParseSortKey maps a user-supplied value to a SortKey, falling back to
// rank order for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByName, SortByPrice, SortByMarketCap, SortByChange24h, SortByVolume:
		return SortKey(s)
	default:
		return SortByRank
	}
}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

func ParseSortDirection(s string) SortDirection {
	if SortDirection(s) == Descending {
		return Descending
	}
	return Ascending
}

// ChartRange selects how much of the fetched 30-day price series is shown.
type ChartRange string

const (
	Range7d  ChartRange = "7d"
	Range30d ChartRange = "30d"
)

func ParseChartRange(s string) ChartRange {
	if ChartRange(s) == Range7d {
		return Range7d
	}
	return Range30d
}

// ViewState is the full set of user-controlled inputs to the view pipeline.
// It is a plain value: the pipeline holds no state of its own.
type ViewState struct {
	SearchTerm string
	SortKey    SortKey
	SortDir    SortDirection
	Page       int // 1-based
	PageSize   int
}
