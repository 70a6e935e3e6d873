package analytics

import (
	"strings"
	"testing"
	"time"

	"fintrack/internal/models"
)

func TestGenerateInsights_EmptyInputs(t *testing.T) {
	stats := MonthlyStats{TotalExpenses: dec("1000")}

	insights, err := GenerateInsights(nil, nil, stats, nil)
	if err != nil {
		t.Fatalf("GenerateInsights failed: %v", err)
	}
	if len(insights) != 1 {
		t.Fatalf("got %d insights, want exactly the emergency fund suggestion", len(insights))
	}
	got := insights[0]
	if got.Kind != InsightGoalSuggestion {
		t.Errorf("Kind = %s, want %s", got.Kind, InsightGoalSuggestion)
	}
	if !strings.Contains(got.Content, "₺3.000") {
		t.Errorf("Content = %q, want the 3x expense target ₺3.000 in it", got.Content)
	}
	if got.Priority != 1 {
		t.Errorf("Priority = %d, want 1", got.Priority)
	}
}

func TestGenerateInsights_BudgetWarnings(t *testing.T) {
	budgets := []BudgetSpending{
		{CategoryName: "Gıda & İçecek", Amount: dec("100"), Spent: dec("95")},
		{CategoryName: "Ulaşım", Amount: dec("100"), Spent: dec("85")},
		{CategoryName: "Eğlence", Amount: dec("100"), Spent: dec("50")},
		{CategoryName: "Bozuk", Amount: dec("0"), Spent: dec("50")}, // undefined ratio, skipped
	}

	insights, err := GenerateInsights(nil, budgets, MonthlyStats{}, nil)
	if err != nil {
		t.Fatalf("GenerateInsights failed: %v", err)
	}

	var warnings []Insight
	for _, in := range insights {
		if in.Kind == InsightBudgetWarning {
			warnings = append(warnings, in)
		}
	}
	if len(warnings) != 2 {
		t.Fatalf("got %d budget warnings, want 2", len(warnings))
	}
	if warnings[0].Priority != 3 || !strings.Contains(warnings[0].Content, "%95") {
		t.Errorf("over-90%% warning = %+v, want priority 3 and %%95", warnings[0])
	}
	if warnings[1].Priority != 2 || !strings.Contains(warnings[1].Content, "Ulaşım") {
		t.Errorf("over-80%% warning = %+v, want priority 2 for Ulaşım", warnings[1])
	}
}

func TestGenerateInsights_SavingTip(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	txs := []*models.Transaction{
		tx("400", models.TransactionExpense, date),
		tx("200", models.TransactionExpense, date),
		tx("1000", models.TransactionIncome, date),
	}
	txs[0].Description = "Restaurant Değirmen"
	txs[1].Description = "restaurant siparişi"
	txs[2].Description = "Restaurant çalışanı maaşı" // income never counts

	insights, err := GenerateInsights(txs, nil, MonthlyStats{}, nil)
	if err != nil {
		t.Fatalf("GenerateInsights failed: %v", err)
	}

	var tip *Insight
	for i := range insights {
		if insights[i].Kind == InsightSavingTip {
			tip = &insights[i]
		}
	}
	if tip == nil {
		t.Fatal("spending 600 on restaurants should trigger the saving tip")
	}
	if !strings.Contains(tip.Content, "₺240") {
		t.Errorf("Content = %q, want the 40%% saving ₺240 in it", tip.Content)
	}
}

func TestGenerateInsights_SavingTipBelowThreshold(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	only := tx("500", models.TransactionExpense, date)
	only.Description = "restaurant"

	insights, err := GenerateInsights([]*models.Transaction{only}, nil, MonthlyStats{}, nil)
	if err != nil {
		t.Fatalf("GenerateInsights failed: %v", err)
	}
	for _, in := range insights {
		if in.Kind == InsightSavingTip {
			t.Error("exactly 500 must not trigger the tip, the threshold is strict")
		}
	}
}

func TestGenerateInsights_Trend(t *testing.T) {
	cur := MonthlyStats{TotalExpenses: dec("1200")}

	t.Run("increase over 10 percent", func(t *testing.T) {
		prev := MonthlyStats{TotalExpenses: dec("1000")}
		insights, err := GenerateInsights(nil, nil, cur, &prev)
		if err != nil {
			t.Fatalf("GenerateInsights failed: %v", err)
		}
		trend := findKind(insights, InsightTrendAnalysis)
		if trend == nil {
			t.Fatal("20% increase should produce a trend insight")
		}
		if !strings.Contains(trend.Content, "%20") || !strings.Contains(trend.Content, "arttı") {
			t.Errorf("Content = %q, want %%20 arttı", trend.Content)
		}
	})

	t.Run("decrease over 10 percent", func(t *testing.T) {
		prev := MonthlyStats{TotalExpenses: dec("2000")}
		insights, err := GenerateInsights(nil, nil, cur, &prev)
		if err != nil {
			t.Fatalf("GenerateInsights failed: %v", err)
		}
		trend := findKind(insights, InsightTrendAnalysis)
		if trend == nil || !strings.Contains(trend.Content, "azaldı") {
			t.Fatalf("trend = %+v, want a decrease insight", trend)
		}
	})

	t.Run("small change is quiet", func(t *testing.T) {
		prev := MonthlyStats{TotalExpenses: dec("1150")}
		insights, err := GenerateInsights(nil, nil, cur, &prev)
		if err != nil {
			t.Fatalf("GenerateInsights failed: %v", err)
		}
		if findKind(insights, InsightTrendAnalysis) != nil {
			t.Error("a change under 10% should not produce a trend insight")
		}
	})

	t.Run("zero previous expenses skips the rule", func(t *testing.T) {
		prev := MonthlyStats{TotalExpenses: dec("0")}
		insights, err := GenerateInsights(nil, nil, cur, &prev)
		if err != nil {
			t.Fatalf("GenerateInsights failed: %v", err)
		}
		if findKind(insights, InsightTrendAnalysis) != nil {
			t.Error("undefined change ratio must skip the trend rule")
		}
	})
}

func findKind(insights []Insight, kind InsightKind) *Insight {
	for i := range insights {
		if insights[i].Kind == kind {
			return &insights[i]
		}
	}
	return nil
}

func TestMetaFor(t *testing.T) {
	for _, kind := range []InsightKind{
		InsightSavingTip, InsightBudgetWarning, InsightTrendAnalysis, InsightGoalSuggestion,
	} {
		meta := MetaFor(kind)
		if meta.Icon == "" || meta.Color == "" || meta.Title == "" {
			t.Errorf("MetaFor(%s) = %+v, incomplete metadata", kind, meta)
		}
	}
	if got := MetaFor(InsightKind("whatever")); got.Title != "Öneri" {
		t.Errorf("unknown kind Title = %q, want the generic Öneri", got.Title)
	}
}
