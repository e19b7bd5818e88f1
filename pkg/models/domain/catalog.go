package domain

// Category groups savings items the way the questionnaire presents them.
type Category string

const (
	CategoryGovernance Category = "governance"
	CategorySecurity   Category = "security"
	CategoryProcess    Category = "process"
)

var Categories = []Category{CategoryGovernance, CategorySecurity, CategoryProcess}

// SectorAll is the sector tag marking a requirement as applicable to every sector.
const SectorAll = "all"

// SavingsItem is an existing control an organization may already have in place.
type SavingsItem struct {
	ID          string
	Label       string
	Description string
	Category    Category
	Amount      float64
}

// RequirementRecord is a compliance framework ("référentiel") with its
// unoptimized implementation cost.
type RequirementRecord struct {
	ID          string
	Name        string
	Description string
	Sectors     []string
	CloudOnly   bool
	Mandatory   bool
	BaseCost    float64
}

// Catalog is loaded once and never mutated. Slices keep the document order.
type Catalog struct {
	Savings      []SavingsItem
	Requirements []RequirementRecord
}

// SavingsByID indexes the savings items by identifier.
func (c *Catalog) SavingsByID() map[string]SavingsItem {
	index := make(map[string]SavingsItem, len(c.Savings))
	for _, item := range c.Savings {
		index[item.ID] = item
	}
	return index
}

// MaxSavings is the total attainable when every savings item is selected.
func (c *Catalog) MaxSavings() float64 {
	var total float64
	for _, item := range c.Savings {
		total += item.Amount
	}
	return total
}
