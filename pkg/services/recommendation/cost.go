package recommendation

import (
	"math"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
)

const (
	// ReferenceBaseCost normalizes savings against the Loi 25 reference entry.
	ReferenceBaseCost = 60000.0
	// MaxSavingsShare caps the discount at 65% of a requirement's base cost.
	MaxSavingsShare = 0.65
	// MinimalTierFactor prices the economical tier off the standard cost.
	MinimalTierFactor = 0.45
	// MaximalTierFactor prices the premium tier off the undiscounted base cost.
	MaximalTierFactor = 1.15
)

// Breakdown prices a requirement in three tiers. The discount it receives is
// totalSavings scaled by the requirement's size relative to
// ReferenceBaseCost, capped at MaxSavingsShare of its base cost.
func Breakdown(record domain.RequirementRecord, totalSavings float64) domain.CostBreakdown {
	baseCost := record.BaseCost
	totalSavings = math.Max(totalSavings, 0)

	proportion := baseCost / ReferenceBaseCost
	applied := math.Min(totalSavings*proportion, baseCost*MaxSavingsShare)

	standard := baseCost - applied

	percent := 0
	if baseCost > 0 {
		percent = roundPercent(applied / baseCost * 100)
	}

	return domain.CostBreakdown{
		BaseCost:       baseCost,
		SavingsApplied: applied,
		SavingsPercent: percent,
		CostMinimal:    standard * MinimalTierFactor,
		CostStandard:   standard,
		CostMaximal:    baseCost * MaximalTierFactor,
	}
}

// roundPercent rounds half to even.
func roundPercent(v float64) int {
	return int(math.RoundToEven(v))
}
