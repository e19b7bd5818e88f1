package profiles

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilesFile = `
[acme]
sector = health
size = small
budget = medium
maturity = managed
infrastructure = onprem, cloud
annual_revenue = 12000000

[shop]
sector = retail
size = micro
budget = low
maturity = initial
infrastructure = onprem

[broken]
sector = retail
size = micro

[bad_revenue]
sector = retail
size = micro
budget = low
maturity = initial
infrastructure = onprem
annual_revenue = lots
`

func writeProfiles(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.ini")
	require.NoError(t, os.WriteFile(path, []byte(profilesFile), 0o644))
	return path
}

func TestRegistry_GetProfiles(t *testing.T) {
	reg, err := NewRegistry(writeProfiles(t))
	require.NoError(t, err)

	names, err := reg.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"acme", "shop", "broken", "bad_revenue"}, names)
}

func TestRegistry_GetProfile(t *testing.T) {
	ctx := context.Background()
	reg, err := NewRegistry(writeProfiles(t))
	require.NoError(t, err)

	t.Run("complete profile", func(t *testing.T) {
		p, err := reg.GetProfile(ctx, "acme")
		require.NoError(t, err)

		assert.Equal(t, domain.SectorHealth, p.Sector)
		assert.Equal(t, domain.BudgetMedium, p.BudgetTier)
		assert.Equal(t, []domain.Infrastructure{domain.InfraOnPrem, domain.InfraCloud}, p.Infrastructure)
		require.NotNil(t, p.AnnualRevenue)
		assert.Equal(t, 12000000.0, *p.AnnualRevenue)
	})

	t.Run("without revenue", func(t *testing.T) {
		p, err := reg.GetProfile(ctx, "shop")
		require.NoError(t, err)
		assert.Nil(t, p.AnnualRevenue)
		assert.False(t, p.HasCloud())
	})

	t.Run("incomplete profile", func(t *testing.T) {
		_, err := reg.GetProfile(ctx, "broken")
		assert.ErrorIs(t, err, domain.ErrIncompleteProfile)
	})

	t.Run("invalid revenue", func(t *testing.T) {
		_, err := reg.GetProfile(ctx, "bad_revenue")
		assert.Error(t, err)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := reg.GetProfile(ctx, "nobody")
		assert.Error(t, err)
	})
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "absent.ini"))
	assert.Error(t, err)
}
