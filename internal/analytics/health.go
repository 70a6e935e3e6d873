package analytics

import "math"

type FactorScore struct {
	Score int
	Label string
}

// HealthScore is the composite 0-100 financial health metric with its
// four labeled sub-factors.
type HealthScore struct {
	Score      int
	Savings    FactorScore
	Budget     FactorScore
	Goals      FactorScore
	Discipline FactorScore
}

// ScoreHealth blends savings rate, budget adherence, spending discipline
// and goal progress into a weighted 0-100 score.
//
// savingsRate is a percentage (20 means 20%, which maps to a perfect
// savings sub-score); budgetAdherence and goalProgress are fractions in
// [0,1]. When totalIncome is zero the expense ratio is undefined: the
// discipline sub-score is 0 if anything was spent (maximal indiscipline)
// and 100 if nothing was.
func ScoreHealth(totalIncome, totalExpenses, savingsRate, budgetAdherence, goalProgress float64) HealthScore {
	savingsScore := math.Min(100, (savingsRate/20)*100)
	budgetScore := budgetAdherence * 100
	goalsScore := goalProgress * 100

	var disciplineScore float64
	switch {
	case totalIncome > 0:
		disciplineScore = math.Max(0, (1-totalExpenses/totalIncome)*100)
	case totalExpenses > 0:
		disciplineScore = 0
	default:
		disciplineScore = 100
	}

	overall := math.Round(savingsScore*0.30 + budgetScore*0.25 + disciplineScore*0.25 + goalsScore*0.20)
	overall = math.Min(100, math.Max(0, overall))

	return HealthScore{
		Score:      int(overall),
		Savings:    factor(savingsScore),
		Budget:     factor(budgetScore),
		Goals:      factor(goalsScore),
		Discipline: factor(disciplineScore),
	}
}

func factor(score float64) FactorScore {
	return FactorScore{Score: int(math.Round(score)), Label: ScoreLabel(score)}
}

// ScoreLabel bands a sub-score into its qualitative label. The same
// banding applies to every factor.
func ScoreLabel(score float64) string {
	switch {
	case score >= 90:
		return "Mükemmel"
	case score >= 70:
		return "İyi"
	case score >= 50:
		return "Orta"
	case score >= 30:
		return "Zayıf"
	default:
		return "Kritik"
	}
}
