package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "₺0,00"},
		{"5", "₺5,00"},
		{"245.8", "₺245,80"},
		{"1234.56", "₺1.234,56"},
		{"1000000", "₺1.000.000,00"},
		{"10000000", "₺10.000.000,00"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(dec(tt.amount)); got != tt.want {
			t.Errorf("FormatCurrency(%s) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatCurrency_RoundTrip(t *testing.T) {
	// cents-granular sweep up to 10,000,000 lira with a prime step
	for cents := int64(0); cents <= 1_000_000_000; cents += 777_713 {
		v := decimal.New(cents, -2)
		parsed, err := ParseCurrency(FormatCurrency(v))
		if err != nil {
			t.Fatalf("ParseCurrency(%s): %v", FormatCurrency(v), err)
		}
		if !parsed.Equal(v) {
			t.Fatalf("round trip of %s produced %s", v, parsed)
		}
	}
	// and some hand-picked edge values
	for _, s := range []string{"0.01", "999.99", "1000", "10000000"} {
		v := dec(s)
		parsed, err := ParseCurrency(FormatCurrency(v))
		if err != nil {
			t.Fatalf("ParseCurrency: %v", err)
		}
		if !parsed.Equal(v) {
			t.Errorf("round trip of %s produced %s", v, parsed)
		}
	}
}

func TestFormatRelativeDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"today", now.Add(-2 * time.Hour), "Bugün"},
		{"yesterday", now.AddDate(0, 0, -1), "Dün"},
		{"three days ago", now.AddDate(0, 0, -3), "3 gün önce"},
		{"two weeks ago", now.AddDate(0, 0, -14), "2 hafta önce"},
		{"same year", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "2 Ocak"},
		{"other year", time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC), "30 Aralık 2023"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRelativeDate(tt.date, now); got != tt.want {
				t.Errorf("FormatRelativeDate = %q, want %q", got, tt.want)
			}
		})
	}
}
