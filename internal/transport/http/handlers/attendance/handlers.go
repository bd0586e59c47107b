package attendancehandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

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
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/export", h.handleExport)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.State.Attendance(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload state.NewAttendance
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	record, err := h.State.RecordAttendance(payload)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrEmployeeRequired), errors.Is(err, state.ErrInvalidStatus):
			api.Fail(w, http.StatusBadRequest, "attendance_invalid", err.Error(), middleware.GetRequestID(r.Context()))
		case errors.Is(err, state.ErrEmployeeNotFound):
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "attendance_create_failed", "failed to record attendance", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Created(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	out, err := reports.AttendanceCSV(h.State.Attendance())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export attendance log", middleware.GetRequestID(r.Context()))
		return
	}

	filename := reports.StampFilename("attendance-log", "csv", time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if _, err := w.Write(out); err != nil {
		slog.Warn("attendance export write failed", "err", err)
	}
}
