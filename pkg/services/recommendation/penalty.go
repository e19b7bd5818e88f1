package recommendation

import (
	"math"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
)

const (
	administrativePenaltyFloor = 10_000_000
	administrativePenaltyRate  = 0.02
	penalFineFloor             = 25_000_000
	penalFineRate              = 0.04
)

// EstimatePenaltyRisk returns the maximum administrative penalty and penal
// fine for an organization with the given worldwide annual revenue: the
// greater of a fixed amount and a share of revenue. It is informational and
// does not feed Recommend.
func EstimatePenaltyRisk(annualRevenue float64) domain.PenaltyRisk {
	revenue := math.Max(annualRevenue, 0)
	return domain.PenaltyRisk{
		AnnualRevenue:         revenue,
		AdministrativePenalty: math.Max(administrativePenaltyFloor, revenue*administrativePenaltyRate),
		PenalFine:             math.Max(penalFineFloor, revenue*penalFineRate),
	}
}
