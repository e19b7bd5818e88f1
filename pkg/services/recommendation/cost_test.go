package recommendation

import (
	"testing"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

const delta = 1e-6

func TestBreakdown(t *testing.T) {
	tests := []struct {
		name         string
		baseCost     float64
		totalSavings float64
		expected     domain.CostBreakdown
	}{
		{
			name:         "no savings",
			baseCost:     60000,
			totalSavings: 0,
			expected: domain.CostBreakdown{
				BaseCost: 60000, CostStandard: 60000, CostMinimal: 27000, CostMaximal: 69000,
			},
		},
		{
			name:         "savings under the cap",
			baseCost:     60000,
			totalSavings: 20000,
			expected: domain.CostBreakdown{
				BaseCost: 60000, SavingsApplied: 20000, SavingsPercent: 33,
				CostStandard: 40000, CostMinimal: 18000, CostMaximal: 69000,
			},
		},
		{
			name:         "savings capped at 65 percent",
			baseCost:     60000,
			totalSavings: 1000000,
			expected: domain.CostBreakdown{
				BaseCost: 60000, SavingsApplied: 39000, SavingsPercent: 65,
				CostStandard: 21000, CostMinimal: 9450, CostMaximal: 69000,
			},
		},
		{
			name:         "savings scaled by proportion",
			baseCost:     30000,
			totalSavings: 20000,
			expected: domain.CostBreakdown{
				BaseCost: 30000, SavingsApplied: 10000, SavingsPercent: 33,
				CostStandard: 20000, CostMinimal: 9000, CostMaximal: 34500,
			},
		},
		{
			name:         "negative savings treated as zero",
			baseCost:     60000,
			totalSavings: -5000,
			expected: domain.CostBreakdown{
				BaseCost: 60000, CostStandard: 60000, CostMinimal: 27000, CostMaximal: 69000,
			},
		},
		{
			name:         "zero base cost",
			baseCost:     0,
			totalSavings: 50000,
			expected:     domain.CostBreakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Breakdown(domain.RequirementRecord{BaseCost: tt.baseCost}, tt.totalSavings)

			assert.InDelta(t, tt.expected.BaseCost, got.BaseCost, delta)
			assert.InDelta(t, tt.expected.SavingsApplied, got.SavingsApplied, delta)
			assert.Equal(t, tt.expected.SavingsPercent, got.SavingsPercent)
			assert.InDelta(t, tt.expected.CostMinimal, got.CostMinimal, delta)
			assert.InDelta(t, tt.expected.CostStandard, got.CostStandard, delta)
			assert.InDelta(t, tt.expected.CostMaximal, got.CostMaximal, delta)
		})
	}
}

func TestBreakdown_Invariants(t *testing.T) {
	baseCosts := []float64{1, 500, 15000, 30000, 60000, 80000, 250000}
	savings := []float64{0, 1, 1000, 20000, 39000, 170000, 1e7}

	for _, base := range baseCosts {
		for _, total := range savings {
			c := Breakdown(domain.RequirementRecord{BaseCost: base}, total)

			assert.LessOrEqual(t, c.CostMinimal, c.CostStandard)
			assert.LessOrEqual(t, c.CostStandard, c.BaseCost)
			assert.LessOrEqual(t, c.BaseCost, c.CostMaximal)
			assert.GreaterOrEqual(t, c.SavingsApplied, 0.0)
			assert.LessOrEqual(t, c.SavingsApplied, base*MaxSavingsShare+delta)
			assert.GreaterOrEqual(t, c.SavingsPercent, 0)
			assert.LessOrEqual(t, c.SavingsPercent, 65)
		}
	}
}
