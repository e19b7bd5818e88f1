package export

import (
	"bytes"
	"testing"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell(t *testing.T) {
	v := 1234.5

	assert.Equal(t, "-", cell(domain.RowAmount, nil))
	assert.Equal(t, "1 234 $", cell(domain.RowAmount, &v))
	assert.Equal(t, "-1 234 $", cell(domain.RowDeduction, &v))
	assert.Equal(t, "+1 234 $", cell(domain.RowSurcharge, &v))
}

func TestBudgetCell(t *testing.T) {
	assert.Equal(t, "5 000 $", budgetCell(domain.BudgetComparison{Remaining: 5000}))
	assert.Equal(t, "-5 000 $", budgetCell(domain.BudgetComparison{Remaining: 5000, IsOverBudget: true, OverageAmount: 5000}))
}

func TestReporter_HandleCatalog(t *testing.T) {
	catalog := &domain.Catalog{
		Savings: []domain.SavingsItem{
			{ID: "drills", Label: "Drills", Category: domain.CategoryProcess, Amount: 2000},
			{ID: "mfa", Label: "MFA", Category: domain.CategorySecurity, Amount: 1000},
		},
		Requirements: []domain.RequirementRecord{
			{ID: "r1", Name: "Rule one", Sectors: []string{"health", "finance"}, Mandatory: true, BaseCost: 30000},
		},
	}

	var out bytes.Buffer
	require.NoError(t, NewReporter(&out).HandleCatalog(NewCatalogReport(catalog)))

	text := out.String()
	assert.Contains(t, text, "Existing controls (up to 3 000 $)")
	assert.NotContains(t, text, "=== governance ===")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("=== security ===")), bytes.Index(out.Bytes(), []byte("=== process ===")))
	assert.Contains(t, text, "- r1: Rule one, mandatory, 30 000 $\n  sectors: health, finance")
}
