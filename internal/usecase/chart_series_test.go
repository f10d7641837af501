package usecase

import (
	"testing"

	"github.com/vitos/cointrackr/internal/domain"
)

func points(prices ...*float64) []domain.PriceHistoryPoint {
	out := make([]domain.PriceHistoryPoint, len(prices))
	for i, p := range prices {
		out[i] = domain.PriceHistoryPoint{TimestampMillis: int64(i) * 86_400_000, Price: p}
	}
	return out
}

func TestBuildChartSeries_TrimsTo7Days(t *testing.T) {
	input := make([]domain.PriceHistoryPoint, 30)
	for i := range input {
		input[i] = domain.PriceHistoryPoint{TimestampMillis: int64(i) * 86_400_000, Price: fptr(float64(i + 1))}
	}

	series := BuildChartSeries(input, domain.Range7d)

	if series.PointCount != 7 {
		t.Fatalf("Expected 7 points, got %d", series.PointCount)
	}
	if series.PeriodLabel != "7 Days" {
		t.Errorf("Expected label '7 Days', got %q", series.PeriodLabel)
	}
	// Last 7 of 1..30 are 24..30
	if series.Lowest != 24 || series.Highest != 30 {
		t.Errorf("Expected low 24 / high 30, got %.0f/%.0f", series.Lowest, series.Highest)
	}
}

func TestBuildChartSeries_ShortInputKeptWhole(t *testing.T) {
	series := BuildChartSeries(points(fptr(3), fptr(1), fptr(2)), domain.Range7d)
	if series.PointCount != 3 {
		t.Errorf("Expected 3 points, got %d", series.PointCount)
	}
	if series.Lowest != 1 || series.Highest != 3 {
		t.Errorf("Expected low 1 / high 3, got %.0f/%.0f", series.Lowest, series.Highest)
	}
}

func TestBuildChartSeries_30DayRangeKeepsAll(t *testing.T) {
	input := make([]domain.PriceHistoryPoint, 30)
	for i := range input {
		input[i] = domain.PriceHistoryPoint{TimestampMillis: int64(i) * 86_400_000, Price: fptr(float64(i + 1))}
	}

	series := BuildChartSeries(input, domain.Range30d)
	if series.PointCount != 30 {
		t.Errorf("Expected 30 points, got %d", series.PointCount)
	}
	if series.PeriodLabel != "30 Days" {
		t.Errorf("Expected label '30 Days', got %q", series.PeriodLabel)
	}
	if series.Lowest != 1 || series.Highest != 30 {
		t.Errorf("Expected low 1 / high 30, got %.0f/%.0f", series.Lowest, series.Highest)
	}
}

func TestBuildChartSeries_GapPointsCountButDontScore(t *testing.T) {
	series := BuildChartSeries(points(fptr(10), nil, fptr(5), nil), domain.Range30d)

	if series.PointCount != 4 {
		t.Errorf("Expected gap points in count, got %d", series.PointCount)
	}
	if series.Lowest != 5 || series.Highest != 10 {
		t.Errorf("Expected low 5 / high 10, got %.0f/%.0f", series.Lowest, series.Highest)
	}
}

func TestBuildChartSeries_NoValidPoints(t *testing.T) {
	series := BuildChartSeries(points(nil, nil), domain.Range7d)

	if series.Highest != 0 || series.Lowest != 0 {
		t.Errorf("Expected 0/0 for all-gap series, got %.2f/%.2f", series.Highest, series.Lowest)
	}
	if series.PointCount != 2 {
		t.Errorf("Expected 2 points, got %d", series.PointCount)
	}

	empty := BuildChartSeries(nil, domain.Range30d)
	if empty.Highest != 0 || empty.Lowest != 0 || empty.PointCount != 0 {
		t.Errorf("Expected zeroed series for empty input, got %+v", empty)
	}
}
