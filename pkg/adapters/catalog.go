package adapters

import (
	"fmt"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/de-tools/compliance-atlas/pkg/models/store"
)

var categoriesByName = map[string]domain.Category{
	"gouvernance": domain.CategoryGovernance,
	"securite":    domain.CategorySecurity,
	"processus":   domain.CategoryProcess,
	"governance":  domain.CategoryGovernance,
	"security":    domain.CategorySecurity,
	"process":     domain.CategoryProcess,
}

func MapCatalogDocumentToDomain(doc store.CatalogDocument) (*domain.Catalog, error) {
	cat := &domain.Catalog{
		Savings:      make([]domain.SavingsItem, 0, len(doc.Economies)),
		Requirements: make([]domain.RequirementRecord, 0, len(doc.Referentiels)),
	}

	seen := make(map[string]struct{})
	for _, e := range doc.Economies {
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("duplicate savings item %q", e.ID)
		}
		seen[e.ID] = struct{}{}

		item, err := MapSavingsEntryToDomain(e.ID, e.Entry)
		if err != nil {
			return nil, err
		}
		cat.Savings = append(cat.Savings, item)
	}

	seen = make(map[string]struct{})
	for _, r := range doc.Referentiels {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("duplicate requirement %q", r.ID)
		}
		seen[r.ID] = struct{}{}

		record, err := MapRequirementEntryToDomain(r.ID, r.Entry)
		if err != nil {
			return nil, err
		}
		cat.Requirements = append(cat.Requirements, record)
	}

	return cat, nil
}

func MapSavingsEntryToDomain(id string, e store.SavingsEntry) (domain.SavingsItem, error) {
	category, ok := categoriesByName[e.Categorie]
	if !ok {
		return domain.SavingsItem{}, fmt.Errorf("savings item %q has unknown category %q", id, e.Categorie)
	}
	if e.Economie < 0 {
		return domain.SavingsItem{}, fmt.Errorf("savings item %q has negative amount %v", id, e.Economie)
	}

	return domain.SavingsItem{
		ID:          id,
		Label:       e.Label,
		Description: e.Description,
		Category:    category,
		Amount:      e.Economie,
	}, nil
}

func MapRequirementEntryToDomain(id string, e store.RequirementEntry) (domain.RequirementRecord, error) {
	if e.BaseCost <= 0 {
		return domain.RequirementRecord{}, fmt.Errorf("requirement %q must have a positive base cost, got %v", id, e.BaseCost)
	}
	if len(e.Sectors) == 0 {
		return domain.RequirementRecord{}, fmt.Errorf("requirement %q lists no sectors", id)
	}

	return domain.RequirementRecord{
		ID:          id,
		Name:        e.Name,
		Description: e.Description,
		Sectors:     append([]string(nil), e.Sectors...),
		CloudOnly:   e.Cloud,
		Mandatory:   e.Mandatory,
		BaseCost:    e.BaseCost,
	}, nil
}
