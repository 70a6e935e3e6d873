package analytics

import (
	"strings"

	"fintrack/internal/models"
)

// categoryKeywords maps description keywords to category names. Order
// matters: the first keyword found in the description decides the
// category, remaining keywords are never consulted.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"market", "Gıda & İçecek"},
	{"super", "Gıda & İçecek"},
	{"restaurant", "Gıda & İçecek"},
	{"cafe", "Gıda & İçecek"},
	{"benzin", "Ulaşım"},
	{"yakıt", "Ulaşım"},
	{"otobüs", "Ulaşım"},
	{"metro", "Ulaşım"},
	{"sinema", "Eğlence"},
	{"film", "Eğlence"},
	{"oyun", "Eğlence"},
	{"elektrik", "Faturalar"},
	{"su", "Faturalar"},
	{"internet", "Faturalar"},
	{"telefon", "Faturalar"},
}

// SuggestCategory keyword-matches a free-text description against the
// user's categories. The first matching keyword is authoritative; if its
// mapped category name is not in the supplied set the suggestion is nil,
// no fallback category is invented.
func SuggestCategory(description string, categories []*models.Category) *models.Category {
	desc := strings.ToLower(description)
	for _, rule := range categoryKeywords {
		if !strings.Contains(desc, rule.keyword) {
			continue
		}
		for _, c := range categories {
			if c.Name == rule.category {
				return c
			}
		}
		return nil
	}
	return nil
}
