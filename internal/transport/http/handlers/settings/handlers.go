package settingshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrpro/internal/domain/core"
	"hrpro/internal/state"
	"hrpro/internal/transport/http/api"
	"hrpro/internal/transport/http/middleware"
)

// resetConfirmPhrase is the second step of the destructive reset: the first
// step is the client asking the user, the second is echoing this phrase.
const resetConfirmPhrase = "RESET"

type Handler struct {
	State *state.State
}

func NewHandler(st *state.State) *Handler {
	return &Handler{State: st}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/violations", h.handleListViolations)
		r.Post("/violations", h.handleCreateViolation)
		r.Delete("/violations/{violationID}", h.handleDeleteViolation)
		r.Get("/work", h.handleGetWorkSettings)
		r.Put("/work", h.handleUpdateWorkSettings)
		r.Post("/reset", h.handleReset)
	})
}

func (h *Handler) handleListViolations(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.State.ViolationTypes(), middleware.GetRequestID(r.Context()))
}

type violationRequest struct {
	Name                string  `json:"name"`
	DeductionPercentage float64 `json:"deductionPercentage"`
}

func (h *Handler) handleCreateViolation(w http.ResponseWriter, r *http.Request) {
	var payload violationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	vt, err := h.State.AddViolationType(payload.Name, payload.DeductionPercentage)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "violation_create_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, vt, middleware.GetRequestID(r.Context()))
}

// Deleting a violation type never touches penalties that reference it.
func (h *Handler) handleDeleteViolation(w http.ResponseWriter, r *http.Request) {
	if err := h.State.DeleteViolationType(chi.URLParam(r, "violationID")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "violation_delete_failed", "failed to delete violation type", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetWorkSettings(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.State.WorkSettings(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateWorkSettings(w http.ResponseWriter, r *http.Request) {
	var payload core.WorkSettings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.State.UpdateWorkSettings(payload); err != nil {
		api.Fail(w, http.StatusInternalServerError, "settings_update_failed", "failed to update work settings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

type resetRequest struct {
	Confirm string `json:"confirm"`
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var payload resetRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Confirm != resetConfirmPhrase {
		api.Fail(w, http.StatusBadRequest, "reset_not_confirmed", "reset requires explicit confirmation", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.State.Reset(); err != nil {
		api.Fail(w, http.StatusInternalServerError, "reset_failed", "failed to reset database", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "reset"}, middleware.GetRequestID(r.Context()))
}
