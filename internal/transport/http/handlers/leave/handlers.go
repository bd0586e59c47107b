package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrpro/internal/domain/leave"
	"hrpro/internal/state"
	"hrpro/internal/transport/http/api"
	"hrpro/internal/transport/http/middleware"
)

type Handler struct {
	State *state.State
}

func NewHandler(st *state.State) *Handler {
	return &Handler{State: st}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Get("/requests", h.handleList)
		r.Post("/requests", h.handleCreate)
		r.Post("/requests/{requestID}/approve", h.handleApprove)
		r.Post("/requests/{requestID}/reject", h.handleReject)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.State.Leaves(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload state.NewLeave
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	request, err := h.State.SubmitLeave(payload)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrEmployeeRequired):
			api.Fail(w, http.StatusBadRequest, "leave_invalid", err.Error(), middleware.GetRequestID(r.Context()))
		case errors.Is(err, state.ErrEmployeeNotFound):
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "leave_create_failed", "failed to submit leave request", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Created(w, request, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, leave.StatusApproved)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, leave.StatusRejected)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request, status string) {
	request, err := h.State.SetLeaveStatus(chi.URLParam(r, "requestID"), status)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrLeaveNotFound):
			api.Fail(w, http.StatusNotFound, "leave_not_found", "leave request not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, leave.ErrInvalidTransition):
			api.Fail(w, http.StatusConflict, "leave_status_final", "leave request status is final", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "leave_update_failed", "failed to update leave request", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Success(w, request, middleware.GetRequestID(r.Context()))
}
