package dashboardhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrpro/internal/reports"
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
	r.Get("/dashboard", h.handleSummary)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	dataset := h.State.Dataset()
	api.Success(w, reports.Dashboard(dataset.Employees, dataset.Attendance), middleware.GetRequestID(r.Context()))
}
