package recommendation

import (
	"testing"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuidance(t *testing.T) {
	guidance := Guidance()
	require.Len(t, guidance, len(domain.Tiers))

	timelines := map[domain.Tier][2]int{
		domain.TierEconomical:  {9, 12},
		domain.TierRecommended: {6, 9},
		domain.TierPremium:     {3, 6},
	}

	for i, g := range guidance {
		assert.Equal(t, domain.Tiers[i], g.Tier)
		assert.Equal(t, timelines[g.Tier], [2]int{g.TimelineMinMonths, g.TimelineMaxMonths}, g.Tier)
		assert.NotEmpty(t, g.Practices, g.Tier)
		assert.NotEmpty(t, g.ChooseIf, g.Tier)
		assert.NotEmpty(t, g.Resources, g.Tier)
	}

	// faster tiers cost more: timelines shrink from economical to premium
	for i := 1; i < len(guidance); i++ {
		assert.Less(t, guidance[i].TimelineMaxMonths, guidance[i-1].TimelineMaxMonths)
	}
}

func TestGuidance_ReturnsCopy(t *testing.T) {
	first := Guidance()
	first[0].Practices[0] = "changed"
	first[1].TimelineMinMonths = 0

	second := Guidance()
	assert.NotEqual(t, "changed", second[0].Practices[0])
	assert.Equal(t, 6, second[1].TimelineMinMonths)
}
