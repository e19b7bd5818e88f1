package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
)

var csvHeader = []string{
	"id", "name", "status", "base_cost", "savings_applied", "savings_percent",
	"cost_minimal", "cost_standard", "cost_maximal",
}

// WriteCSV writes one row per assessment, mandatory first, followed by the
// mandatory totals and the budget comparison of each tier.
func WriteCSV(w io.Writer, bundle domain.RecommendationBundle) error {
	cw := csv.NewWriter(w)

	rows := [][]string{csvHeader}
	for _, a := range bundle.Mandatory {
		rows = append(rows, assessmentRow(a, "mandatory"))
	}
	for _, a := range bundle.Optional {
		rows = append(rows, assessmentRow(a, "optional"))
	}

	rows = append(rows,
		[]string{"TOTAL", "", "mandatory", "", amount(bundle.TotalSavings), "",
			amount(bundle.Totals.Minimal), amount(bundle.Totals.Standard), amount(bundle.Totals.Maximal)},
		[]string{"BUDGET", amount(bundle.Budget.Ceiling), "", "", "", "",
			budgetCell(bundle.Budget.Minimal), budgetCell(bundle.Budget.Standard), budgetCell(bundle.Budget.Maximal)},
	)

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func assessmentRow(a domain.Assessment, status string) []string {
	return []string{
		a.Requirement.ID,
		a.Requirement.Name,
		status,
		amount(a.Costs.BaseCost),
		amount(a.Costs.SavingsApplied),
		strconv.Itoa(a.Costs.SavingsPercent),
		amount(a.Costs.CostMinimal),
		amount(a.Costs.CostStandard),
		amount(a.Costs.CostMaximal),
	}
}

// budgetCell is the signed remaining amount: negative when over budget.
func budgetCell(b domain.BudgetComparison) string {
	if b.IsOverBudget {
		return amount(-b.OverageAmount)
	}
	return amount(b.Remaining)
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
