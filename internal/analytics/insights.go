package analytics

import (
	"fmt"
	"math"
	"strings"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

type InsightKind string

const (
	InsightSavingTip      InsightKind = "saving_tip"
	InsightBudgetWarning  InsightKind = "budget_warning"
	InsightTrendAnalysis  InsightKind = "trend_analysis"
	InsightGoalSuggestion InsightKind = "goal_suggestion"
)

// Insight is one rule-generated observation. Content is the fully
// interpolated display string; higher Priority means more urgent.
type Insight struct {
	Kind     InsightKind
	Title    string
	Content  string
	Priority int
}

// InsightMeta is presentation metadata selected purely by kind.
type InsightMeta struct {
	Icon  string
	Color string
	Title string
}

// MetaFor maps an insight kind to its presentation metadata. Total:
// unknown kinds get the generic suggestion presentation.
func MetaFor(kind InsightKind) InsightMeta {
	switch kind {
	case InsightSavingTip:
		return InsightMeta{Icon: "lightbulb", Color: "#4CAF50", Title: "Tasarruf Önerisi"}
	case InsightBudgetWarning:
		return InsightMeta{Icon: "alert-triangle", Color: "#FF9800", Title: "Bütçe Uyarısı"}
	case InsightTrendAnalysis:
		return InsightMeta{Icon: "trending-up", Color: "#2196F3", Title: "Trend Analizi"}
	case InsightGoalSuggestion:
		return InsightMeta{Icon: "target", Color: "#9C27B0", Title: "Hedef Önerisi"}
	default:
		return InsightMeta{Icon: "lightbulb", Color: "#9E9E9E", Title: "Öneri"}
	}
}

// BudgetSpending pairs a budget with its derived spent amount and the
// category it covers, which is all the insight rules need.
type BudgetSpending struct {
	CategoryName string
	Amount       decimal.Decimal
	Spent        decimal.Decimal
}

const (
	// budget warning fires above 80% usage, priority bumps above 90%
	budgetWarnThreshold   = 0.8
	budgetDangerThreshold = 0.9
	// restaurant spending above this triggers the saving tip
	diningTipThreshold = 500
	// monthly expense swing (percent) worth calling out
	trendThreshold = 10
)

// GenerateInsights runs the four insight rules over the supplied data.
// Each rule is evaluated independently and appends in rule order; the
// emergency-fund suggestion is unconditional, so even empty inputs yield
// one insight. prev may be nil when no previous-month stats exist; a
// previous month with zero expenses has no defined change ratio and the
// trend rule is skipped.
func GenerateInsights(txs []*models.Transaction, budgets []BudgetSpending, stats MonthlyStats, prev *MonthlyStats) ([]Insight, error) {
	var insights []Insight

	// Budget warnings
	for _, b := range budgets {
		if b.Amount.Sign() <= 0 {
			continue
		}
		usage, _ := b.Spent.Div(b.Amount).Float64()
		if usage <= budgetWarnThreshold {
			continue
		}
		priority := 2
		if usage > budgetDangerThreshold {
			priority = 3
		}
		insights = append(insights, Insight{
			Kind:  InsightBudgetWarning,
			Title: "Bütçe Uyarısı",
			Content: fmt.Sprintf("%s kategorisinde bütçenizin %%%d'ini kullandınız. Dikkatli harcayın.",
				b.CategoryName, round(usage*100)),
			Priority: priority,
		})
	}

	// Saving tip for dining out
	dining := decimal.Zero
	for _, tx := range txs {
		if tx.Type != models.TransactionExpense {
			continue
		}
		if !strings.Contains(strings.ToLower(tx.Description), "restaurant") {
			continue
		}
		amount, err := parseAmount(tx.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.ID, err)
		}
		dining = dining.Add(amount)
	}
	if dining.GreaterThan(decimal.NewFromInt(diningTipThreshold)) {
		spending, _ := dining.Float64()
		insights = append(insights, Insight{
			Kind:  InsightSavingTip,
			Title: "Tasarruf Önerisi",
			Content: fmt.Sprintf("Hafta sonu ev yemekleri yaparak aylık ₺%d tasarruf edebilirsiniz. Restoran harcamalarınız ortalamanın üzerinde.",
				round(spending*0.4)),
			Priority: 1,
		})
	}

	// Trend analysis against the previous month
	if prev != nil && prev.TotalExpenses.Sign() != 0 {
		change, _ := stats.TotalExpenses.Sub(prev.TotalExpenses).
			Div(prev.TotalExpenses).Mul(hundred).Float64()
		if math.Abs(change) > trendThreshold {
			direction := "azaldı"
			tail := "Bu tempo devam ederse yıllık önemli tasarruf edeceksiniz."
			if change > 0 {
				direction = "arttı"
				tail = "Harcama artışının nedenlerini gözden geçirmenizi öneririm."
			}
			insights = append(insights, Insight{
				Kind:  InsightTrendAnalysis,
				Title: "Trend Analizi",
				Content: fmt.Sprintf("Bu ay harcamalarınız geçen aya göre %%%d %s. %s",
					round(math.Abs(change)), direction, tail),
				Priority: 1,
			})
		}
	}

	// Emergency fund suggestion, always emitted
	emergencyTarget := stats.TotalExpenses.Mul(decimal.NewFromInt(3))
	insights = append(insights, Insight{
		Kind:  InsightGoalSuggestion,
		Title: "Hedef Önerisi",
		Content: fmt.Sprintf("Acil durum fonu oluşturmayı düşünün. Aylık giderinizin 3 katı (₺%s) ideal olacaktır.",
			formatGrouped(emergencyTarget)),
		Priority: 1,
	})

	return insights, nil
}

func round(v float64) int {
	return int(math.Round(v))
}
