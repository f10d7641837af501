package usecase

import "github.com/vitos/cointrackr/internal/domain"

// ChartSeries is a trimmed price series plus its display stats.
type ChartSeries struct {
	Points      []domain.PriceHistoryPoint `json:"points"`
	Highest     float64                    `json:"highest"`
	Lowest      float64                    `json:"lowest"`
	PointCount  int                        `json:"point_count"`
	PeriodLabel string                     `json:"period_label"`
}

// BuildChartSeries trims the fetched 30-day series to the selected range
// and computes high/low over the valid points. Gap points (nil price)
// count toward PointCount but not toward the stats. With zero valid
// points both stats are 0, which the chart renders as a flat empty state.
func BuildChartSeries(points []domain.PriceHistoryPoint, rng domain.ChartRange) ChartSeries {
	trimmed := points
	label := "30 Days"
	if rng == domain.Range7d {
		label = "7 Days"
		if len(points) > 7 {
			trimmed = points[len(points)-7:]
		}
	}

	var highest, lowest float64
	seen := false
	for _, p := range trimmed {
		if p.Price == nil {
			continue
		}
		if !seen || *p.Price > highest {
			highest = *p.Price
		}
		if !seen || *p.Price < lowest {
			lowest = *p.Price
		}
		seen = true
	}

	return ChartSeries{
		Points:      trimmed,
		Highest:     highest,
		Lowest:      lowest,
		PointCount:  len(trimmed),
		PeriodLabel: label,
	}
}
