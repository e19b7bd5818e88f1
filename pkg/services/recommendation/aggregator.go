package recommendation

import "github.com/de-tools/compliance-atlas/pkg/models/domain"

// Recommend prices every mandatory and optional requirement with the same
// totalSavings and compares the mandatory totals with the tier's ceiling.
// Optional requirements never count toward the totals.
func Recommend(
	mandatory, optional []domain.RequirementRecord,
	totalSavings float64,
	tier domain.BudgetTier,
) domain.RecommendationBundle {
	ceiling := BudgetCeiling(tier)

	bundle := domain.RecommendationBundle{
		Mandatory:    assess(mandatory, totalSavings),
		Optional:     assess(optional, totalSavings),
		TotalSavings: totalSavings,
	}

	for _, a := range bundle.Mandatory {
		bundle.Totals.Minimal += a.Costs.CostMinimal
		bundle.Totals.Standard += a.Costs.CostStandard
		bundle.Totals.Maximal += a.Costs.CostMaximal
	}

	bundle.Budget = domain.BudgetSummary{
		Ceiling:  ceiling,
		Minimal:  CompareBudget(bundle.Totals.Minimal, ceiling),
		Standard: CompareBudget(bundle.Totals.Standard, ceiling),
		Maximal:  CompareBudget(bundle.Totals.Maximal, ceiling),
	}

	return bundle
}

func assess(records []domain.RequirementRecord, totalSavings float64) []domain.Assessment {
	assessments := make([]domain.Assessment, 0, len(records))
	for _, r := range records {
		assessments = append(assessments, domain.Assessment{
			Requirement: r,
			Costs:       Breakdown(r, totalSavings),
		})
	}
	return assessments
}
