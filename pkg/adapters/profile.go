package adapters

import (
	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/de-tools/compliance-atlas/pkg/models/store"
)

func MapOrganizationProfileStoreToDomainInput(p store.OrganizationProfile) domain.ProfileInput {
	return domain.ProfileInput{
		Sector:         p.Sector,
		Size:           p.Size,
		Budget:         p.Budget,
		Maturity:       p.Maturity,
		Infrastructure: p.Infrastructure,
		AnnualRevenue:  p.AnnualRevenue,
	}
}
