package session

import (
	"testing"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileInput() domain.ProfileInput {
	return domain.ProfileInput{
		Sector:         "finance",
		Size:           "medium",
		Budget:         "high",
		Maturity:       "defined",
		Infrastructure: []string{"hybrid"},
	}
}

func TestFlow(t *testing.T) {
	state := Reset()
	assert.Equal(t, StageProfile, state.Stage)
	assert.False(t, state.Ready())

	state, err := SubmitProfile(state, profileInput())
	require.NoError(t, err)
	assert.Equal(t, StageSavings, state.Stage)
	require.NotNil(t, state.Profile)
	assert.Equal(t, domain.SectorFinance, state.Profile.Sector)

	state, err = SubmitSavings(state, []string{"mfa", "efvp", "mfa"})
	require.NoError(t, err)
	assert.Equal(t, StageResults, state.Stage)
	assert.Equal(t, []string{"mfa", "efvp"}, state.SelectedSavings)
	assert.True(t, state.Ready())

	state = Back(state)
	assert.Equal(t, StageSavings, state.Stage)
	assert.Equal(t, []string{"mfa", "efvp"}, state.SelectedSavings)

	state = Back(Back(state))
	assert.Equal(t, StageProfile, state.Stage)
	assert.NotNil(t, state.Profile)

	assert.Equal(t, State{Stage: StageProfile}, Reset())
}

func TestSubmitProfile_Incomplete(t *testing.T) {
	in := profileInput()
	in.Infrastructure = nil

	state, err := SubmitProfile(Reset(), in)
	assert.ErrorIs(t, err, domain.ErrIncompleteProfile)
	assert.Equal(t, StageProfile, state.Stage)
	assert.Nil(t, state.Profile)
}

func TestSubmitSavings_BeforeProfile(t *testing.T) {
	_, err := SubmitSavings(Reset(), []string{"mfa"})
	assert.ErrorIs(t, err, ErrInvalidStage)
}

func TestTransitions_DoNotAlias(t *testing.T) {
	state, err := SubmitProfile(Reset(), profileInput())
	require.NoError(t, err)
	state, err = SubmitSavings(state, []string{"mfa"})
	require.NoError(t, err)

	back := Back(state)
	back.SelectedSavings[0] = "changed"
	back.Profile.Infrastructure[0] = domain.InfraOnPrem

	assert.Equal(t, []string{"mfa"}, state.SelectedSavings)
	assert.Equal(t, domain.InfraHybrid, state.Profile.Infrastructure[0])
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "profile", StageProfile.String())
	assert.Equal(t, "results", StageResults.String())
	assert.Equal(t, "stage(7)", Stage(7).String())
}
