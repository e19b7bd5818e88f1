package recommendation

import "github.com/de-tools/compliance-atlas/pkg/models/domain"

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Savings: []domain.SavingsItem{
			{ID: "privacy_officer", Category: domain.CategoryGovernance, Amount: 15000},
			{ID: "mfa", Category: domain.CategorySecurity, Amount: 20000},
			{ID: "incident_plan", Category: domain.CategoryProcess, Amount: 10000},
			{ID: "policies", Category: domain.CategoryGovernance, Amount: 5000},
		},
		Requirements: []domain.RequirementRecord{
			{ID: "loi25", Sectors: []string{domain.SectorAll}, Mandatory: true, BaseCost: 60000},
			{ID: "health_records", Sectors: []string{"health"}, Mandatory: true, BaseCost: 40000},
			{ID: "pci", Sectors: []string{"retail", "finance"}, Mandatory: true, BaseCost: 45000},
			{ID: "iso27001", Sectors: []string{domain.SectorAll}, BaseCost: 80000},
			{ID: "csa_star", Sectors: []string{domain.SectorAll}, CloudOnly: true, BaseCost: 20000},
			{ID: "cloud_privacy", Sectors: []string{domain.SectorAll}, CloudOnly: true, Mandatory: true, BaseCost: 30000},
		},
	}
}

func ids(records []domain.RequirementRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
