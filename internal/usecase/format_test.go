package usecase

import "testing"

func fptr(v float64) *float64 { return &v }

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(nil); got != "N/A" {
		t.Errorf("Expected N/A for nil, got %q", got)
	}

	// Sub-unit prices keep the extra precision
	if got := FormatCurrency(fptr(0.000123)); got != "₹0.000123" {
		t.Errorf("Expected ₹0.000123, got %q", got)
	}
	if got := FormatCurrency(fptr(0.5)); got != "₹0.5000" {
		t.Errorf("Expected ₹0.5000, got %q", got)
	}

	// At or above one unit: exactly 2 fraction digits
	if got := FormatCurrency(fptr(1234.5)); got != "₹1,234.50" {
		t.Errorf("Expected ₹1,234.50, got %q", got)
	}
	if got := FormatCurrency(fptr(1)); got != "₹1.00" {
		t.Errorf("Expected ₹1.00, got %q", got)
	}
}

func TestFormatMagnitude(t *testing.T) {
	cases := []struct {
		in   *float64
		want string
	}{
		{nil, "N/A"},
		{fptr(2.5e12), "₹2.50T"},
		{fptr(1_500_000_000), "₹1.50B"},
		{fptr(3.25e6), "₹3.25M"},
		{fptr(25_000), "₹25.00K"},
		{fptr(999), "₹999.00"},
	}
	for _, c := range cases {
		if got := FormatMagnitude(c.in); got != c.want {
			t.Errorf("FormatMagnitude: expected %q, got %q", c.want, got)
		}
	}
}

func TestFormatSignedPercent(t *testing.T) {
	if got := FormatSignedPercent(nil); got != "N/A" {
		t.Errorf("Expected N/A for nil, got %q", got)
	}
	// Zero counts as up
	if got := FormatSignedPercent(fptr(0)); got != "↑ 0.00%" {
		t.Errorf("Expected ↑ 0.00%%, got %q", got)
	}
	if got := FormatSignedPercent(fptr(4.567)); got != "↑ 4.57%" {
		t.Errorf("Expected ↑ 4.57%%, got %q", got)
	}
	// Negative renders the absolute value with a down arrow
	if got := FormatSignedPercent(fptr(-5.678)); got != "↓ 5.68%" {
		t.Errorf("Expected ↓ 5.68%%, got %q", got)
	}
}
