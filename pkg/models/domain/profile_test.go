package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() ProfileInput {
	return ProfileInput{
		Sector:         "health",
		Size:           "small",
		Budget:         "medium",
		Maturity:       "managed",
		Infrastructure: []string{"onprem", "cloud", "cloud"},
	}
}

func TestProfileInput_Parse(t *testing.T) {
	profile, err := validInput().Parse()
	require.NoError(t, err)

	assert.Equal(t, SectorHealth, profile.Sector)
	assert.Equal(t, SizeSmall, profile.Size)
	assert.Equal(t, BudgetMedium, profile.BudgetTier)
	assert.Equal(t, MaturityManaged, profile.Maturity)
	assert.Equal(t, []Infrastructure{InfraOnPrem, InfraCloud}, profile.Infrastructure)
	assert.True(t, profile.HasCloud())
	assert.Nil(t, profile.AnnualRevenue)
}

func TestProfileInput_Parse_Errors(t *testing.T) {
	negative := -1.0

	tests := []struct {
		name     string
		mutate   func(*ProfileInput)
		expected error
	}{
		{name: "missing sector", mutate: func(in *ProfileInput) { in.Sector = "" }, expected: ErrIncompleteProfile},
		{name: "missing maturity", mutate: func(in *ProfileInput) { in.Maturity = "" }, expected: ErrIncompleteProfile},
		{name: "no infrastructure", mutate: func(in *ProfileInput) { in.Infrastructure = nil }, expected: ErrIncompleteProfile},
		{name: "unknown sector", mutate: func(in *ProfileInput) { in.Sector = "mining" }, expected: ErrInvalidProfile},
		{name: "unknown size", mutate: func(in *ProfileInput) { in.Size = "huge" }, expected: ErrInvalidProfile},
		{name: "unknown budget", mutate: func(in *ProfileInput) { in.Budget = "infinite" }, expected: ErrInvalidProfile},
		{name: "unknown infrastructure", mutate: func(in *ProfileInput) { in.Infrastructure = []string{"edge"} }, expected: ErrInvalidProfile},
		{name: "negative revenue", mutate: func(in *ProfileInput) { in.AnnualRevenue = &negative }, expected: ErrInvalidProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := in.Parse()
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestProfile_HasCloud(t *testing.T) {
	assert.False(t, Profile{Infrastructure: []Infrastructure{InfraOnPrem}}.HasCloud())
	assert.True(t, Profile{Infrastructure: []Infrastructure{InfraHybrid}}.HasCloud())
	assert.False(t, Profile{}.HasCloud())
}
