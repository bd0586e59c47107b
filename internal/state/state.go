package state

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"hrpro/internal/domain/attendance"
	"hrpro/internal/domain/core"
	"hrpro/internal/domain/leave"
	"hrpro/internal/domain/payroll"
	"hrpro/internal/platform/db"
)

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmployeeRequired  = errors.New("employee selection required")
	ErrViolationRequired = errors.New("violation type selection required")
	ErrLeaveNotFound     = errors.New("leave request not found")
	ErrInvalidStatus     = errors.New("invalid attendance status")
)

// State owns the live dataset. Every mutation goes through a named operation
// here and persists the full snapshot afterwards, so invariants such as
// penalty amount freezing are enforced in exactly one place.
type State struct {
	mu    sync.RWMutex
	store *db.Store
	data  db.Dataset
}

// New loads the persisted dataset, degrading to seed data when the snapshot
// is missing or unparseable. Construction never fails; mutations are only
// reachable after this initial load, so defaults can never clobber saved
// state.
func New(store *db.Store) *State {
	dataset, err := store.Load()
	switch {
	case errors.Is(err, db.ErrNotFound):
		dataset = db.Seed()
	case err != nil:
		slog.Error("failed to load dataset, falling back to seed data", "err", err)
		dataset = db.Seed()
	default:
		dataset = db.FillDefaults(dataset)
	}
	return &State{store: store, data: dataset}
}

func (s *State) persist() error {
	if err := s.store.Save(s.data); err != nil {
		return fmt.Errorf("persist dataset: %w", err)
	}
	return nil
}

// Dataset returns a snapshot safe to read without holding the lock. Slices
// are copied; nested penalty slices are shared but only mutated under the
// write lock by appending through ApplyPenalty.
func (s *State) Dataset() db.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := s.data
	snapshot.Employees = append([]core.Employee(nil), s.data.Employees...)
	snapshot.Attendance = append([]attendance.Record(nil), s.data.Attendance...)
	snapshot.Leaves = append([]leave.Request(nil), s.data.Leaves...)
	snapshot.ViolationTypes = append([]core.ViolationType(nil), s.data.ViolationTypes...)
	if s.data.WorkSettings != nil {
		ws := *s.data.WorkSettings
		ws.WorkingDays = append([]string(nil), s.data.WorkSettings.WorkingDays...)
		snapshot.WorkSettings = &ws
	}
	return snapshot
}

func (s *State) Employees() []core.Employee {
	return s.Dataset().Employees
}

func (s *State) Attendance() []attendance.Record {
	return s.Dataset().Attendance
}

func (s *State) Leaves() []leave.Request {
	return s.Dataset().Leaves
}

func (s *State) ViolationTypes() []core.ViolationType {
	return s.Dataset().ViolationTypes
}

func (s *State) WorkSettings() core.WorkSettings {
	snapshot := s.Dataset()
	if snapshot.WorkSettings == nil {
		return core.WorkSettings{}
	}
	return *snapshot.WorkSettings
}

func (s *State) Employee(id string) (core.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, emp := range s.data.Employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return core.Employee{}, false
}

type NewEmployee struct {
	Name          string  `json:"name"`
	Position      string  `json:"position"`
	Department    string  `json:"department"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Nationality   string  `json:"nationality"`
	Gender        string  `json:"gender"`
	MaritalStatus string  `json:"maritalStatus"`
	Status        string  `json:"status"`
	JoinDate      string  `json:"joinDate"`
	BaseSalary    float64 `json:"baseSalary"`
	Image         string  `json:"image,omitempty"`
}

func (s *State) AddEmployee(input NewEmployee) (core.Employee, error) {
	if input.Name == "" {
		return core.Employee{}, errors.New("employee name is required")
	}
	status := input.Status
	if status == "" {
		status = core.StatusActive
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	emp := core.Employee{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Position:      input.Position,
		Department:    input.Department,
		Email:         input.Email,
		Phone:         input.Phone,
		Nationality:   input.Nationality,
		Gender:        input.Gender,
		MaritalStatus: input.MaritalStatus,
		Status:        status,
		JoinDate:      input.JoinDate,
		BaseSalary:    input.BaseSalary,
		Penalties:     []core.Penalty{},
		Image:         input.Image,
	}
	s.data.Employees = append(s.data.Employees, emp)
	if err := s.persist(); err != nil {
		return core.Employee{}, err
	}
	return emp, nil
}

// DeleteEmployee removes the roster entry only. Attendance and leave records
// referencing the employee are intentionally left in place.
func (s *State) DeleteEmployee(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, emp := range s.data.Employees {
		if emp.ID == id {
			s.data.Employees = append(s.data.Employees[:i], s.data.Employees[i+1:]...)
			return s.persist()
		}
	}
	return ErrEmployeeNotFound
}

type NewAttendance struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
}

func (s *State) RecordAttendance(input NewAttendance) (attendance.Record, error) {
	if input.EmployeeID == "" {
		return attendance.Record{}, ErrEmployeeRequired
	}
	if !attendance.ValidStatus(input.Status) {
		return attendance.Record{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	emp, ok := s.findEmployee(input.EmployeeID)
	if !ok {
		return attendance.Record{}, ErrEmployeeNotFound
	}
	record := attendance.Record{
		ID:           uuid.NewString(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Date:         input.Date,
		CheckIn:      input.CheckIn,
		CheckOut:     input.CheckOut,
		Status:       input.Status,
		Notes:        input.Notes,
	}
	s.data.Attendance = append(s.data.Attendance, record)
	if err := s.persist(); err != nil {
		return attendance.Record{}, err
	}
	return record, nil
}

type NewLeave struct {
	EmployeeID string `json:"employeeId"`
	Type       string `json:"type"`
	Duration   string `json:"duration"`
	From       string `json:"from"`
	To         string `json:"to"`
}

func (s *State) SubmitLeave(input NewLeave) (leave.Request, error) {
	if input.EmployeeID == "" {
		return leave.Request{}, ErrEmployeeRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	emp, ok := s.findEmployee(input.EmployeeID)
	if !ok {
		return leave.Request{}, ErrEmployeeNotFound
	}
	request := leave.Request{
		ID:           uuid.NewString(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Type:         input.Type,
		Duration:     input.Duration,
		From:         input.From,
		To:           input.To,
		Status:       leave.StatusPending,
	}
	s.data.Leaves = append(s.data.Leaves, request)
	if err := s.persist(); err != nil {
		return leave.Request{}, err
	}
	return request, nil
}

// SetLeaveStatus applies a monotonic status transition: pending requests can
// be approved or rejected once and never reopened.
func (s *State) SetLeaveStatus(id, status string) (leave.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, request := range s.data.Leaves {
		if request.ID != id {
			continue
		}
		next, err := leave.Transition(request.Status, status)
		if err != nil {
			return leave.Request{}, err
		}
		s.data.Leaves[i].Status = next
		if err := s.persist(); err != nil {
			return leave.Request{}, err
		}
		return s.data.Leaves[i], nil
	}
	return leave.Request{}, ErrLeaveNotFound
}

func (s *State) AddViolationType(name string, deductionPercentage float64) (core.ViolationType, error) {
	if name == "" {
		return core.ViolationType{}, errors.New("violation name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	vt := core.ViolationType{
		ID:                  uuid.NewString(),
		Name:                name,
		DeductionPercentage: deductionPercentage,
	}
	s.data.ViolationTypes = append(s.data.ViolationTypes, vt)
	if err := s.persist(); err != nil {
		return core.ViolationType{}, err
	}
	return vt, nil
}

// DeleteViolationType removes the catalog entry. Penalties referencing it
// keep their frozen amounts and their now-dangling violation id.
func (s *State) DeleteViolationType(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, vt := range s.data.ViolationTypes {
		if vt.ID == id {
			s.data.ViolationTypes = append(s.data.ViolationTypes[:i], s.data.ViolationTypes[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// ApplyPenalty snapshots the deduction amount from the violation percentage
// in force right now and appends the penalty to the employee. Later edits to
// the violation type do not change the recorded amount.
func (s *State) ApplyPenalty(employeeID, violationID, date string) (core.Penalty, error) {
	if violationID == "" {
		return core.Penalty{}, ErrViolationRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	vt, ok := core.FindViolationType(s.data.ViolationTypes, violationID)
	if !ok {
		return core.Penalty{}, ErrViolationRequired
	}
	for i, emp := range s.data.Employees {
		if emp.ID != employeeID {
			continue
		}
		penalty := core.Penalty{
			ID:             uuid.NewString(),
			EmployeeID:     emp.ID,
			ViolationID:    vt.ID,
			Date:           date,
			AmountDeducted: payroll.PenaltyAmount(emp.BaseSalary, vt.DeductionPercentage),
		}
		s.data.Employees[i].Penalties = append(s.data.Employees[i].Penalties, penalty)
		if err := s.persist(); err != nil {
			return core.Penalty{}, err
		}
		return penalty, nil
	}
	return core.Penalty{}, ErrEmployeeNotFound
}

func (s *State) UpdateWorkSettings(settings core.WorkSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.WorkSettings = &settings
	return s.persist()
}

// Reset deletes the snapshot file. The running session is expected to be
// discarded by the operator afterwards; in-memory state is left as is.
func (s *State) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Reset()
}

func (s *State) findEmployee(id string) (core.Employee, bool) {
	for _, emp := range s.data.Employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return core.Employee{}, false
}
