// Package session holds the questionnaire state of each user: the profile,
// the savings items they already have and the stage they have reached.
package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
)

type Stage int

const (
	StageProfile Stage = iota + 1
	StageSavings
	StageResults
)

func (s Stage) String() string {
	switch s {
	case StageProfile:
		return "profile"
	case StageSavings:
		return "savings"
	case StageResults:
		return "results"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidStage    = errors.New("operation not allowed at this stage")
)

type State struct {
	Stage           Stage
	Profile         *domain.Profile
	SelectedSavings []string
}

// Reset returns the initial state.
func Reset() State {
	return State{Stage: StageProfile}
}

// SubmitProfile validates the profile and moves to the savings stage.
// The profile may be resubmitted from any stage; selected savings are kept.
func SubmitProfile(s State, in domain.ProfileInput) (State, error) {
	profile, err := in.Parse()
	if err != nil {
		return s, err
	}

	next := s.clone()
	next.Profile = &profile
	next.Stage = StageSavings
	return next, nil
}

// SubmitSavings records the savings items already in place and moves to the
// results stage. It requires a submitted profile.
func SubmitSavings(s State, selected []string) (State, error) {
	if s.Stage < StageSavings || s.Profile == nil {
		return s, fmt.Errorf("%w: savings submitted at %s stage", ErrInvalidStage, s.Stage)
	}

	next := s.clone()
	next.SelectedSavings = dedupe(selected)
	next.Stage = StageResults
	return next, nil
}

// Back returns to the previous stage, keeping what was entered.
func Back(s State) State {
	next := s.clone()
	if next.Stage > StageProfile {
		next.Stage--
	}
	return next
}

// Ready reports whether the state holds everything a recommendation needs.
func (s State) Ready() bool {
	return s.Stage == StageResults && s.Profile != nil
}

func (s State) clone() State {
	c := State{
		Stage:           s.Stage,
		SelectedSavings: slices.Clone(s.SelectedSavings),
	}
	if s.Profile != nil {
		p := *s.Profile
		p.Infrastructure = slices.Clone(s.Profile.Infrastructure)
		c.Profile = &p
	}
	return c
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
