package api

type Profile struct {
	Sector         string   `json:"sector"`
	Size           string   `json:"size"`
	Budget         string   `json:"budget"`
	Maturity       string   `json:"maturity"`
	Infrastructure []string `json:"infrastructure"`
	AnnualRevenue  *float64 `json:"annual_revenue,omitempty"`
}

type RecommendationRequest struct {
	Profile         Profile  `json:"profile"`
	SelectedSavings []string `json:"selected_savings"`
}

type CostBreakdown struct {
	BaseCost       float64 `json:"base_cost"`
	SavingsApplied float64 `json:"savings_applied"`
	SavingsPercent int     `json:"savings_percent"`
	CostMinimal    float64 `json:"cost_minimal"`
	CostStandard   float64 `json:"cost_standard"`
	CostMaximal    float64 `json:"cost_maximal"`
}

type Assessment struct {
	Requirement Requirement   `json:"requirement"`
	Costs       CostBreakdown `json:"costs"`
}

type TierTotals struct {
	Minimal  float64 `json:"minimal"`
	Standard float64 `json:"standard"`
	Maximal  float64 `json:"maximal"`
}

type BudgetComparison struct {
	Remaining     float64 `json:"remaining"`
	IsOverBudget  bool    `json:"is_over_budget"`
	OverageAmount float64 `json:"overage_amount"`
}

type BudgetSummary struct {
	Ceiling  float64          `json:"ceiling"`
	Minimal  BudgetComparison `json:"minimal"`
	Standard BudgetComparison `json:"standard"`
	Maximal  BudgetComparison `json:"maximal"`
}

type PenaltyRisk struct {
	AnnualRevenue         float64 `json:"annual_revenue"`
	AdministrativePenalty float64 `json:"administrative_penalty"`
	PenalFine             float64 `json:"penal_fine"`
}

type Recommendation struct {
	Mandatory       []Assessment   `json:"mandatory"`
	Optional        []Assessment   `json:"optional"`
	Totals          TierTotals     `json:"totals"`
	Budget          BudgetSummary  `json:"budget"`
	TotalSavings    float64        `json:"total_savings"`
	SavingsProgress int            `json:"savings_progress"`
	PenaltyRisk     *PenaltyRisk   `json:"penalty_risk,omitempty"`
	Guidance        []TierGuidance `json:"guidance"`
}

type TierGuidance struct {
	Tier              string   `json:"tier"`
	Title             string   `json:"title"`
	Approach          string   `json:"approach"`
	Practices         []string `json:"practices"`
	TimelineMinMonths int      `json:"timeline_min_months"`
	TimelineMaxMonths int      `json:"timeline_max_months"`
	Resources         string   `json:"resources"`
	ChooseIf          []string `json:"choose_if"`
}
