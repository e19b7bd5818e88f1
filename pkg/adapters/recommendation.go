package adapters

import (
	"github.com/de-tools/compliance-atlas/pkg/models/api"
	"github.com/de-tools/compliance-atlas/pkg/models/domain"
)

func MapProfileApiToDomainInput(p api.Profile) domain.ProfileInput {
	return domain.ProfileInput{
		Sector:         p.Sector,
		Size:           p.Size,
		Budget:         p.Budget,
		Maturity:       p.Maturity,
		Infrastructure: p.Infrastructure,
		AnnualRevenue:  p.AnnualRevenue,
	}
}

func MapProfileDomainToApi(p domain.Profile) api.Profile {
	infra := make([]string, 0, len(p.Infrastructure))
	for _, i := range p.Infrastructure {
		infra = append(infra, string(i))
	}

	return api.Profile{
		Sector:         string(p.Sector),
		Size:           string(p.Size),
		Budget:         string(p.BudgetTier),
		Maturity:       string(p.Maturity),
		Infrastructure: infra,
		AnnualRevenue:  p.AnnualRevenue,
	}
}

func MapSavingsItemDomainToApi(item domain.SavingsItem) api.SavingsItem {
	return api.SavingsItem{
		ID:          item.ID,
		Label:       item.Label,
		Description: item.Description,
		Category:    string(item.Category),
		Amount:      item.Amount,
	}
}

func MapRequirementDomainToApi(r domain.RequirementRecord) api.Requirement {
	return api.Requirement{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Sectors:     append([]string{}, r.Sectors...),
		CloudOnly:   r.CloudOnly,
		Mandatory:   r.Mandatory,
		BaseCost:    r.BaseCost,
	}
}

func MapCostBreakdownDomainToApi(c domain.CostBreakdown) api.CostBreakdown {
	return api.CostBreakdown{
		BaseCost:       c.BaseCost,
		SavingsApplied: c.SavingsApplied,
		SavingsPercent: c.SavingsPercent,
		CostMinimal:    c.CostMinimal,
		CostStandard:   c.CostStandard,
		CostMaximal:    c.CostMaximal,
	}
}

func MapAssessmentsDomainToApi(assessments []domain.Assessment) []api.Assessment {
	out := make([]api.Assessment, 0, len(assessments))
	for _, a := range assessments {
		out = append(out, api.Assessment{
			Requirement: MapRequirementDomainToApi(a.Requirement),
			Costs:       MapCostBreakdownDomainToApi(a.Costs),
		})
	}
	return out
}

func MapBudgetComparisonDomainToApi(b domain.BudgetComparison) api.BudgetComparison {
	return api.BudgetComparison{
		Remaining:     b.Remaining,
		IsOverBudget:  b.IsOverBudget,
		OverageAmount: b.OverageAmount,
	}
}

func MapRecommendationDomainToApi(bundle domain.RecommendationBundle) api.Recommendation {
	return api.Recommendation{
		Mandatory: MapAssessmentsDomainToApi(bundle.Mandatory),
		Optional:  MapAssessmentsDomainToApi(bundle.Optional),
		Totals: api.TierTotals{
			Minimal:  bundle.Totals.Minimal,
			Standard: bundle.Totals.Standard,
			Maximal:  bundle.Totals.Maximal,
		},
		Budget: api.BudgetSummary{
			Ceiling:  bundle.Budget.Ceiling,
			Minimal:  MapBudgetComparisonDomainToApi(bundle.Budget.Minimal),
			Standard: MapBudgetComparisonDomainToApi(bundle.Budget.Standard),
			Maximal:  MapBudgetComparisonDomainToApi(bundle.Budget.Maximal),
		},
		TotalSavings: bundle.TotalSavings,
	}
}

func MapTierGuidanceDomainToApi(guidance []domain.TierGuidance) []api.TierGuidance {
	out := make([]api.TierGuidance, 0, len(guidance))
	for _, g := range guidance {
		out = append(out, api.TierGuidance{
			Tier:              string(g.Tier),
			Title:             g.Title,
			Approach:          g.Approach,
			Practices:         append([]string{}, g.Practices...),
			TimelineMinMonths: g.TimelineMinMonths,
			TimelineMaxMonths: g.TimelineMaxMonths,
			Resources:         g.Resources,
			ChooseIf:          append([]string{}, g.ChooseIf...),
		})
	}
	return out
}

func MapPenaltyRiskDomainToApi(r domain.PenaltyRisk) *api.PenaltyRisk {
	return &api.PenaltyRisk{
		AnnualRevenue:         r.AnnualRevenue,
		AdministrativePenalty: r.AdministrativePenalty,
		PenalFine:             r.PenalFine,
	}
}
