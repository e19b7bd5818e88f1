package recommendation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/de-tools/compliance-atlas/pkg/adapters"
	"github.com/de-tools/compliance-atlas/pkg/export"
	"github.com/de-tools/compliance-atlas/pkg/models/api"
	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/de-tools/compliance-atlas/pkg/services/recommendation"
	"github.com/de-tools/compliance-atlas/pkg/services/session"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	engine   *recommendation.Engine
	sessions session.Store
}

func NewHandler(engine *recommendation.Engine, sessions session.Store) *Handler {
	return &Handler{
		engine:   engine,
		sessions: sessions,
	}
}

func (h *Handler) ListSavings(w http.ResponseWriter, r *http.Request) {
	cat := h.engine.Catalog()
	groups := recommendation.GroupSavingsByCategory(cat.Savings)

	response := api.SavingsCatalog{
		Groups:     make([]api.SavingsGroup, 0, len(domain.Categories)),
		MaxSavings: cat.MaxSavings(),
	}
	for _, category := range domain.Categories {
		group := api.SavingsGroup{Category: string(category), Items: []api.SavingsItem{}}
		for _, item := range groups[category] {
			group.Items = append(group.Items, adapters.MapSavingsItemDomainToApi(item))
		}
		response.Groups = append(response.Groups, group)
	}

	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) ListRequirements(w http.ResponseWriter, r *http.Request) {
	cat := h.engine.Catalog()

	response := make([]api.Requirement, 0, len(cat.Requirements))
	for _, req := range cat.Requirements {
		response = append(response, adapters.MapRequirementDomainToApi(req))
	}

	writeJSON(w, r, http.StatusOK, response)
}

// Recommend evaluates a profile without creating a session.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req api.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, api.Error{Error: "invalid request body"})
		return
	}

	profile, err := adapters.MapProfileApiToDomainInput(req.Profile).Parse()
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, h.buildRecommendation(profile, req.SelectedSavings))
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, state := h.sessions.Create()
	zerolog.Ctx(r.Context()).Info().Str("session", id).Msg("session created")

	writeJSON(w, r, http.StatusCreated, mapSession(id, state))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session")

	state, err := h.sessions.Get(id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, mapSession(id, state))
}

func (h *Handler) SubmitProfile(w http.ResponseWriter, r *http.Request) {
	var req api.Profile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, api.Error{Error: "invalid request body"})
		return
	}

	h.update(w, r, func(s session.State) (session.State, error) {
		return session.SubmitProfile(s, adapters.MapProfileApiToDomainInput(req))
	})
}

func (h *Handler) SubmitSavings(w http.ResponseWriter, r *http.Request) {
	var req api.SavingsSelection
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, api.Error{Error: "invalid request body"})
		return
	}

	h.update(w, r, func(s session.State) (session.State, error) {
		return session.SubmitSavings(s, req.SelectedSavings)
	})
}

func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, func(s session.State) (session.State, error) {
		return session.Back(s), nil
	})
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, func(session.State) (session.State, error) {
		return session.Reset(), nil
	})
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(chi.URLParam(r, "session")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSessionRecommendation(w http.ResponseWriter, r *http.Request) {
	state, ok := h.readyState(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, h.buildRecommendation(*state.Profile, state.SelectedSavings))
}

func (h *Handler) ExportSessionRecommendation(w http.ResponseWriter, r *http.Request) {
	state, ok := h.readyState(w, r)
	if !ok {
		return
	}

	bundle := h.engine.Evaluate(*state.Profile, state.SelectedSavings)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="recommendation.csv"`)
	if err := export.WriteCSV(w, bundle); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to export recommendation")
	}
}

func (h *Handler) readyState(w http.ResponseWriter, r *http.Request) (session.State, bool) {
	state, err := h.sessions.Get(chi.URLParam(r, "session"))
	if err != nil {
		writeError(w, r, err)
		return session.State{}, false
	}
	if !state.Ready() {
		writeError(w, r, fmt.Errorf("%w: recommendation requested at %s stage", session.ErrInvalidStage, state.Stage))
		return session.State{}, false
	}
	return state, true
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, fn func(session.State) (session.State, error)) {
	id := chi.URLParam(r, "session")

	state, err := h.sessions.Update(id, fn)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, mapSession(id, state))
}

func (h *Handler) buildRecommendation(profile domain.Profile, selected []string) api.Recommendation {
	bundle := h.engine.Evaluate(profile, selected)

	response := adapters.MapRecommendationDomainToApi(bundle)
	response.SavingsProgress = recommendation.SavingsProgress(bundle.TotalSavings, h.engine.Catalog())
	response.Guidance = adapters.MapTierGuidanceDomainToApi(recommendation.Guidance())
	if profile.AnnualRevenue != nil {
		response.PenaltyRisk = adapters.MapPenaltyRiskDomainToApi(recommendation.EstimatePenaltyRisk(*profile.AnnualRevenue))
	}
	return response
}

func mapSession(id string, state session.State) api.Session {
	s := api.Session{
		ID:              id,
		Stage:           int(state.Stage),
		SelectedSavings: append([]string{}, state.SelectedSavings...),
	}
	if state.Profile != nil {
		p := adapters.MapProfileDomainToApi(*state.Profile)
		s.Profile = &p
	}
	return s
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrInvalidStage):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrIncompleteProfile), errors.Is(err, domain.ErrInvalidProfile):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
	}

	writeJSON(w, r, status, api.Error{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}
