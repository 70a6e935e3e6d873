package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TurkishMonths indexes month names by time.Month-1, for chart labels and
// long-form dates.
var TurkishMonths = [12]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// FormatCurrency renders an amount in tr-TR convention with the lira
// sign and two fraction digits: ₺1.234,56.
func FormatCurrency(amount decimal.Decimal) string {
	return "₺" + groupTR(amount.StringFixed(2))
}

// ParseCurrency inverts FormatCurrency back to the numeric value.
func ParseCurrency(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "₺"))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return parseAmount(s)
}

// formatGrouped renders an amount with tr-TR digit grouping and no forced
// fraction digits, the way chart and insight text shows round sums.
func formatGrouped(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return groupTR(amount.StringFixed(0))
	}
	return groupTR(amount.StringFixed(2))
}

// groupTR inserts dot thousands separators into a plain decimal string
// and swaps the fraction separator to a comma.
func groupTR(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte('.')
		}
	}
	if hasFrac {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatRelativeDate renders a transaction date relative to now: Bugün,
// Dün, N gün önce, N hafta önce, then a long-form date (with the year
// only when it differs from the current one).
func FormatRelativeDate(date, now time.Time) string {
	days := int(now.Sub(date).Hours() / 24)
	switch {
	case days <= 0:
		return "Bugün"
	case days == 1:
		return "Dün"
	case days < 7:
		return fmt.Sprintf("%d gün önce", days)
	case days < 30:
		return fmt.Sprintf("%d hafta önce", days/7)
	}
	if date.Year() != now.Year() {
		return fmt.Sprintf("%d %s %d", date.Day(), TurkishMonths[date.Month()-1], date.Year())
	}
	return fmt.Sprintf("%d %s", date.Day(), TurkishMonths[date.Month()-1])
}
