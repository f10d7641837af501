package usecase

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	currencySymbol = "₹"
	placeholder    = "N/A"
)

// en-IN printer gives lakh/crore digit grouping (12,34,567).
var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatCurrency renders a price for display. Sub-unit prices keep 4-6
// fraction digits because crypto prices below one rupee are meaningless at
// 2 decimals; everything else is fixed at 2.
func FormatCurrency(v *float64) string {
	if v == nil {
		return placeholder
	}
	if *v < 1 {
		return currencySymbol + inrPrinter.Sprint(number.Decimal(*v,
			number.MinFractionDigits(4), number.MaxFractionDigits(6)))
	}
	return currencySymbol + inrPrinter.Sprint(number.Decimal(*v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatMagnitude abbreviates a large value (market cap, volume) with the
// usual T/B/M/K ladder.
func FormatMagnitude(v *float64) string {
	if v == nil {
		return placeholder
	}
	switch x := *v; {
	case x >= 1e12:
		return fmt.Sprintf("%s%.2fT", currencySymbol, x/1e12)
	case x >= 1e9:
		return fmt.Sprintf("%s%.2fB", currencySymbol, x/1e9)
	case x >= 1e6:
		return fmt.Sprintf("%s%.2fM", currencySymbol, x/1e6)
	case x >= 1e3:
		return fmt.Sprintf("%s%.2fK", currencySymbol, x/1e3)
	default:
		return fmt.Sprintf("%s%.2f", currencySymbol, x)
	}
}

// FormatSignedPercent renders a percent change with a direction arrow.
// Zero counts as up.
func FormatSignedPercent(v *float64) string {
	if v == nil {
		return placeholder
	}
	arrow := "↑"
	if *v < 0 {
		arrow = "↓"
	}
	return fmt.Sprintf("%s %.2f%%", arrow, math.Abs(*v))
}
