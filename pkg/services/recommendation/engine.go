package recommendation

import (
	"fmt"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
)

// Engine runs the full recommendation flow against a loaded catalog.
// It holds no mutable state and is safe to share between sessions.
type Engine struct {
	catalog *domain.Catalog
	savings map[string]domain.SavingsItem
}

// NewEngine indexes the savings of catalog. The catalog must not be nil.
func NewEngine(catalog *domain.Catalog) (*Engine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	return &Engine{
		catalog: catalog,
		savings: catalog.SavingsByID(),
	}, nil
}

// Catalog returns the catalog the engine was built from.
func (e *Engine) Catalog() *domain.Catalog {
	return e.catalog
}

// TotalSavings sums the catalog savings for selected, ignoring unknown ids.
func (e *Engine) TotalSavings(selected []string) float64 {
	return TotalSavings(selected, e.savings)
}

// Evaluate computes the recommendation bundle for profile given the savings
// items the organization already has.
func (e *Engine) Evaluate(profile domain.Profile, selected []string) domain.RecommendationBundle {
	total := e.TotalSavings(selected)
	mandatory, optional := Partition(e.catalog.Requirements, profile)
	return Recommend(mandatory, optional, total, profile.BudgetTier)
}
