package recommendation

import (
	"math"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
)

var budgetCeilings = map[domain.BudgetTier]float64{
	domain.BudgetLow:    50000,
	domain.BudgetMedium: 200000,
	domain.BudgetHigh:   1000000,
}

// BudgetCeiling maps a budget tier to its ceiling. Unknown tiers get the low ceiling.
func BudgetCeiling(tier domain.BudgetTier) float64 {
	if ceiling, ok := budgetCeilings[tier]; ok {
		return ceiling
	}
	return budgetCeilings[domain.BudgetLow]
}

// CompareBudget reports how far cost is from ceiling. Remaining is always a
// magnitude: callers tell surplus from deficit with IsOverBudget.
func CompareBudget(cost, ceiling float64) domain.BudgetComparison {
	remaining := ceiling - cost
	over := remaining < 0

	cmp := domain.BudgetComparison{
		Remaining:    math.Abs(remaining),
		IsOverBudget: over,
	}
	if over {
		cmp.OverageAmount = math.Abs(remaining)
	}
	return cmp
}
