package recommendation

import (
	"slices"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
)

// Partition splits the requirements that apply to profile into mandatory and
// optional lists. Requirements for other sectors, and cloud-only requirements
// when the profile has no cloud footprint, are left out of both.
// Catalog order is preserved within each list.
func Partition(
	requirements []domain.RequirementRecord,
	profile domain.Profile,
) (mandatory, optional []domain.RequirementRecord) {
	hasCloud := profile.HasCloud()

	for _, req := range requirements {
		if !AppliesToSector(req, profile.Sector) {
			continue
		}
		if req.CloudOnly && !hasCloud {
			continue
		}

		if req.Mandatory {
			mandatory = append(mandatory, req)
		} else {
			optional = append(optional, req)
		}
	}

	return mandatory, optional
}

// AppliesToSector reports whether req lists sector or the "all" wildcard.
func AppliesToSector(req domain.RequirementRecord, sector domain.Sector) bool {
	return slices.Contains(req.Sectors, domain.SectorAll) || slices.Contains(req.Sectors, string(sector))
}
