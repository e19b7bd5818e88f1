package recommendation

import (
	"testing"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name              string
		profile           domain.Profile
		expectedMandatory []string
		expectedOptional  []string
	}{
		{
			name: "health on premises",
			profile: domain.Profile{
				Sector:         domain.SectorHealth,
				Infrastructure: []domain.Infrastructure{domain.InfraOnPrem},
			},
			expectedMandatory: []string{"loi25", "health_records"},
			expectedOptional:  []string{"iso27001"},
		},
		{
			name: "tech in the cloud",
			profile: domain.Profile{
				Sector:         domain.SectorTech,
				Infrastructure: []domain.Infrastructure{domain.InfraCloud},
			},
			expectedMandatory: []string{"loi25", "cloud_privacy"},
			expectedOptional:  []string{"iso27001", "csa_star"},
		},
		{
			name: "finance hybrid",
			profile: domain.Profile{
				Sector:         domain.SectorFinance,
				Infrastructure: []domain.Infrastructure{domain.InfraOnPrem, domain.InfraHybrid},
			},
			expectedMandatory: []string{"loi25", "pci", "cloud_privacy"},
			expectedOptional:  []string{"iso27001", "csa_star"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mandatory, optional := Partition(catalog.Requirements, tt.profile)

			assert.Equal(t, tt.expectedMandatory, ids(mandatory))
			assert.Equal(t, tt.expectedOptional, ids(optional))
		})
	}
}

func TestPartition_EveryRecordLandsInOnePlace(t *testing.T) {
	catalog := testCatalog()

	for _, sector := range domain.Sectors {
		for _, infra := range domain.Infrastructures {
			profile := domain.Profile{Sector: sector, Infrastructure: []domain.Infrastructure{infra}}
			mandatory, optional := Partition(catalog.Requirements, profile)

			seen := map[string]int{}
			for _, r := range append(mandatory, optional...) {
				seen[r.ID]++
			}
			for id, count := range seen {
				assert.Equal(t, 1, count, "record %s listed twice for %s/%s", id, sector, infra)
			}
			for _, r := range mandatory {
				assert.True(t, r.Mandatory)
			}
			for _, r := range optional {
				assert.False(t, r.Mandatory)
			}
		}
	}
}

func TestPartition_SectorRule(t *testing.T) {
	healthOnly := domain.RequirementRecord{ID: "h", Sectors: []string{"health"}, Mandatory: true, BaseCost: 1}
	everyone := domain.RequirementRecord{ID: "all", Sectors: []string{domain.SectorAll}, Mandatory: true, BaseCost: 1}
	records := []domain.RequirementRecord{healthOnly, everyone}

	mandatory, _ := Partition(records, domain.Profile{Sector: domain.SectorTech, Infrastructure: []domain.Infrastructure{domain.InfraOnPrem}})
	assert.Equal(t, []string{"all"}, ids(mandatory))

	for _, sector := range domain.Sectors {
		assert.True(t, AppliesToSector(everyone, sector))
	}
}

func TestPartition_CloudRule(t *testing.T) {
	records := []domain.RequirementRecord{{ID: "c", Sectors: []string{domain.SectorAll}, CloudOnly: true, BaseCost: 1}}

	_, optional := Partition(records, domain.Profile{Sector: domain.SectorOther, Infrastructure: []domain.Infrastructure{domain.InfraOnPrem}})
	assert.Empty(t, optional)

	for _, infra := range []domain.Infrastructure{domain.InfraCloud, domain.InfraHybrid} {
		_, optional = Partition(records, domain.Profile{Sector: domain.SectorOther, Infrastructure: []domain.Infrastructure{infra}})
		assert.Equal(t, []string{"c"}, ids(optional))
	}
}

func TestPartition_DoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog()
	before := testCatalog()

	Partition(catalog.Requirements, domain.Profile{Sector: domain.SectorRetail, Infrastructure: []domain.Infrastructure{domain.InfraCloud}})

	assert.Equal(t, before, catalog)
}
