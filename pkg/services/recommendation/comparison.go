package recommendation

import "github.com/de-tools/compliance-atlas/pkg/models/domain"

// ComparisonRows lays out how each tier of an assessment is reached from the
// base cost: existing-control savings apply to the economical and standard
// tiers, the optimisations only to the economical one, and the premium
// surcharge only to the premium one.
func ComparisonRows(a domain.Assessment) []domain.ComparisonRow {
	c := a.Costs
	optimisations := c.CostStandard - c.CostMinimal
	surcharge := c.CostMaximal - c.BaseCost

	return []domain.ComparisonRow{
		{Label: "Initial cost", Kind: domain.RowAmount, Minimal: ptr(c.BaseCost), Standard: ptr(c.BaseCost), Maximal: ptr(c.BaseCost)},
		{Label: "Existing controls", Kind: domain.RowDeduction, Minimal: ptr(c.SavingsApplied), Standard: ptr(c.SavingsApplied)},
		{Label: "Optimisations", Kind: domain.RowDeduction, Minimal: ptr(optimisations)},
		{Label: "Premium", Kind: domain.RowSurcharge, Maximal: ptr(surcharge)},
		{Label: "Total", Kind: domain.RowAmount, Minimal: ptr(c.CostMinimal), Standard: ptr(c.CostStandard), Maximal: ptr(c.CostMaximal)},
	}
}

func ptr(v float64) *float64 {
	return &v
}
