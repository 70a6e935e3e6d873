package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

type GoalProgress struct {
	ProgressPct   float64
	DaysRemaining int
	TimeRemaining string
	IsOverdue     bool
}

// EvaluateGoal computes completion progress toward a savings goal and a
// human time-remaining label. ProgressPct is deliberately not clamped at
// 100 so overachieved goals stay detectable; display layers clamp for
// progress bars. A non-positive target yields 0 progress.
func EvaluateGoal(current, target decimal.Decimal, targetDate, now time.Time, isCompleted bool) GoalProgress {
	pct := 0.0
	if target.Sign() > 0 {
		pct, _ = current.Div(target).Mul(hundred).Float64()
	}

	days := int(math.Ceil(targetDate.Sub(now).Hours() / 24))

	return GoalProgress{
		ProgressPct:   pct,
		DaysRemaining: days,
		TimeRemaining: timeRemainingLabel(days),
		IsOverdue:     targetDate.Before(now) && !isCompleted,
	}
}

func timeRemainingLabel(days int) string {
	switch {
	case days < 0:
		return "Süresi geçti"
	case days == 0:
		return "Bugün"
	case days == 1:
		return "1 gün kaldı"
	case days < 30:
		return fmt.Sprintf("%d gün kaldı", days)
	case days < 365:
		return fmt.Sprintf("%d ay kaldı", int(math.Ceil(float64(days)/30)))
	default:
		return fmt.Sprintf("%d yıl kaldı", int(math.Ceil(float64(days)/365)))
	}
}
