package recommendation

import "github.com/de-tools/compliance-atlas/pkg/models/domain"

// TotalSavings sums the amounts of the selected savings items.
// Identifiers missing from the catalog are ignored.
func TotalSavings(selected []string, savings map[string]domain.SavingsItem) float64 {
	var total float64
	for _, id := range selected {
		if item, ok := savings[id]; ok {
			total += item.Amount
		}
	}
	return total
}

// SavingsProgress is the share of the maximum attainable savings reached by
// total, as a rounded percentage.
func SavingsProgress(total float64, catalog *domain.Catalog) int {
	maxSavings := catalog.MaxSavings()
	if total <= 0 || maxSavings <= 0 {
		return 0
	}
	return roundPercent(total / maxSavings * 100)
}

// GroupSavingsByCategory returns the items of each category in catalog order.
func GroupSavingsByCategory(items []domain.SavingsItem) map[domain.Category][]domain.SavingsItem {
	groups := make(map[domain.Category][]domain.SavingsItem, len(domain.Categories))
	for _, item := range items {
		groups[item.Category] = append(groups[item.Category], item)
	}
	return groups
}
