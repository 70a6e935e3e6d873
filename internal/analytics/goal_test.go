package analytics

import (
	"testing"
	"time"
)

func TestEvaluateGoal_Progress(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	got := EvaluateGoal(dec("50"), dec("100"), now.AddDate(0, 0, 15), now, false)
	if got.ProgressPct != 50 {
		t.Errorf("ProgressPct = %v, want 50", got.ProgressPct)
	}
	if got.TimeRemaining != "15 gün kaldı" {
		t.Errorf("TimeRemaining = %q, want %q", got.TimeRemaining, "15 gün kaldı")
	}
	if got.IsOverdue {
		t.Error("goal 15 days out should not be overdue")
	}

	// progress is not clamped, overachievement stays visible
	over := EvaluateGoal(dec("150"), dec("100"), now.AddDate(0, 0, 15), now, false)
	if over.ProgressPct != 150 {
		t.Errorf("ProgressPct = %v, want 150", over.ProgressPct)
	}

	// non-positive target has no meaningful progress
	if p := EvaluateGoal(dec("50"), dec("0"), now, now, false); p.ProgressPct != 0 {
		t.Errorf("zero target ProgressPct = %v, want 0", p.ProgressPct)
	}
}

func TestEvaluateGoal_TimeRemaining(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		targetDate time.Time
		want       string
	}{
		{"past", now.AddDate(0, 0, -3), "Süresi geçti"},
		{"same instant", now, "Bugün"},
		{"tomorrow", now.AddDate(0, 0, 1), "1 gün kaldı"},
		{"under a month", now.AddDate(0, 0, 29), "29 gün kaldı"},
		{"exactly 30 days", now.AddDate(0, 0, 30), "1 ay kaldı"},
		{"45 days", now.AddDate(0, 0, 45), "2 ay kaldı"},
		{"under a year", now.AddDate(0, 0, 364), "13 ay kaldı"},
		{"exactly a year", now.AddDate(0, 0, 365), "1 yıl kaldı"},
		{"400 days", now.AddDate(0, 0, 400), "2 yıl kaldı"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateGoal(dec("0"), dec("100"), tt.targetDate, now, false)
			if got.TimeRemaining != tt.want {
				t.Errorf("TimeRemaining = %q, want %q", got.TimeRemaining, tt.want)
			}
		})
	}
}

func TestEvaluateGoal_Overdue(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -10)

	if !EvaluateGoal(dec("10"), dec("100"), past, now, false).IsOverdue {
		t.Error("past incomplete goal should be overdue")
	}
	if EvaluateGoal(dec("100"), dec("100"), past, now, true).IsOverdue {
		t.Error("completed goal is never overdue")
	}
	if EvaluateGoal(dec("10"), dec("100"), now.AddDate(0, 0, 10), now, false).IsOverdue {
		t.Error("future goal should not be overdue")
	}
}
