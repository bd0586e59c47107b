package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrpro/internal/domain/payroll"
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
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/", h.handleRegister)
		r.Post("/penalties", h.handleApplyPenalty)
		r.Get("/export", h.handleExportCSV)
		r.Get("/export.xlsx", h.handleExportXLSX)
		r.Get("/absences/export", h.handleExportAbsences)
		r.Get("/{employeeID}", h.handleBreakdown)
		r.Get("/{employeeID}/payslip", h.handlePayslip)
	})
}

type registerResponse struct {
	Employees   []payroll.Breakdown `json:"employees"`
	Totals      payroll.Totals      `json:"totals"`
	Departments map[string]float64  `json:"departments"`
}

// handleRegister recomputes the whole payroll view from the live dataset on
// every call; there is no stored payroll entity.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	dataset := h.State.Dataset()
	breakdowns := make([]payroll.Breakdown, 0, len(dataset.Employees))
	for _, emp := range dataset.Employees {
		breakdowns = append(breakdowns, payroll.Compute(emp, dataset.Attendance))
	}
	response := registerResponse{
		Employees:   breakdowns,
		Totals:      payroll.Aggregate(dataset.Employees, dataset.Attendance),
		Departments: payroll.NetByDepartment(dataset.Employees, dataset.Attendance),
	}
	api.Success(w, response, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.State.Employee(chi.URLParam(r, "employeeID"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payroll.Compute(emp, h.State.Attendance()), middleware.GetRequestID(r.Context()))
}

type penaltyRequest struct {
	EmployeeID  string `json:"employeeId"`
	ViolationID string `json:"violationId"`
	Date        string `json:"date"`
}

func (h *Handler) handleApplyPenalty(w http.ResponseWriter, r *http.Request) {
	var payload penaltyRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.Date == "" {
		payload.Date = time.Now().Format("2006-01-02")
	}

	penalty, err := h.State.ApplyPenalty(payload.EmployeeID, payload.ViolationID, payload.Date)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrViolationRequired):
			api.Fail(w, http.StatusBadRequest, "violation_required", "a violation type must be selected", middleware.GetRequestID(r.Context()))
		case errors.Is(err, state.ErrEmployeeNotFound):
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "penalty_failed", "failed to apply penalty", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Created(w, penalty, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	dataset := h.State.Dataset()
	out, err := reports.PayrollCSV(dataset.Employees, dataset.Attendance)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export payroll register", middleware.GetRequestID(r.Context()))
		return
	}
	writeAttachment(w, reports.StampFilename("payroll-register", "csv", time.Now()), "text/csv; charset=utf-8", out)
}

func (h *Handler) handleExportAbsences(w http.ResponseWriter, r *http.Request) {
	dataset := h.State.Dataset()
	out, err := reports.AbsenceCSV(dataset.Employees, dataset.Attendance)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export absence report", middleware.GetRequestID(r.Context()))
		return
	}
	writeAttachment(w, reports.StampFilename("absence-report", "csv", time.Now()), "text/csv; charset=utf-8", out)
}

func (h *Handler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	dataset := h.State.Dataset()
	filename := reports.StampFilename("payroll-register", "xlsx", time.Now())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := reports.PayrollXLSX(w, dataset.Employees, dataset.Attendance); err != nil {
		slog.Warn("payroll xlsx export failed", "err", err)
	}
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.State.Employee(chi.URLParam(r, "employeeID"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}

	filename := reports.StampFilename("payslip", "pdf", time.Now())
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := reports.PayslipPDF(w, emp, h.State.Attendance(), time.Now()); err != nil {
		slog.Warn("payslip export failed", "err", err)
	}
}

func writeAttachment(w http.ResponseWriter, filename, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if _, err := w.Write(body); err != nil {
		slog.Warn("attachment write failed", "err", err)
	}
}
