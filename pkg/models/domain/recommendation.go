package domain

type CostBreakdown struct {
	BaseCost       float64
	SavingsApplied float64
	SavingsPercent int
	CostMinimal    float64 // economical tier
	CostStandard   float64 // balanced tier
	CostMaximal    float64 // premium tier
}

// Assessment pairs a requirement with the costs computed for it.
type Assessment struct {
	Requirement RequirementRecord
	Costs       CostBreakdown
}

type TierTotals struct {
	Minimal  float64
	Standard float64
	Maximal  float64
}

// BudgetComparison reports Remaining as a magnitude; IsOverBudget carries the sign.
type BudgetComparison struct {
	Remaining     float64
	IsOverBudget  bool
	OverageAmount float64
}

type BudgetSummary struct {
	Ceiling  float64
	Minimal  BudgetComparison
	Standard BudgetComparison
	Maximal  BudgetComparison
}

type RecommendationBundle struct {
	Mandatory    []Assessment
	Optional     []Assessment
	Totals       TierTotals
	Budget       BudgetSummary
	TotalSavings float64
}

// PenaltyRisk is the maximum exposure under the Québec privacy law regime.
type PenaltyRisk struct {
	AnnualRevenue         float64
	AdministrativePenalty float64
	PenalFine             float64
}

type RowKind int

const (
	RowAmount RowKind = iota
	RowDeduction
	RowSurcharge
)

// ComparisonRow is one line of the per-requirement tier comparison table.
// Nil cells are not applicable to the tier.
type ComparisonRow struct {
	Label    string
	Kind     RowKind
	Minimal  *float64
	Standard *float64
	Maximal  *float64
}

type Tier string

const (
	TierEconomical  Tier = "economical"
	TierRecommended Tier = "recommended"
	TierPremium     Tier = "premium"
)

var Tiers = []Tier{TierEconomical, TierRecommended, TierPremium}

// TierGuidance describes how an implementation tier is delivered and when
// to pick it. It does not depend on the profile.
type TierGuidance struct {
	Tier              Tier
	Title             string
	Approach          string
	Practices         []string
	TimelineMinMonths int
	TimelineMaxMonths int
	Resources         string
	ChooseIf          []string
}
