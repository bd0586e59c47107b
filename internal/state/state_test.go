package state

import (
	"errors"
	"path/filepath"
	"testing"

	"hrpro/internal/domain/attendance"
	"hrpro/internal/domain/core"
	"hrpro/internal/domain/leave"
	"hrpro/internal/platform/db"
)

func newTestState(t *testing.T) (*State, *db.Store) {
	t.Helper()
	store := db.NewStore(filepath.Join(t.TempDir(), "hrpro.json"))
	return New(store), store
}

func TestNewFallsBackToSeed(t *testing.T) {
	st, _ := newTestState(t)
	if len(st.Employees()) != 1 {
		t.Fatalf("expected seed roster of 1, got %d", len(st.Employees()))
	}
	if st.WorkSettings().StartTime != "08:00" {
		t.Fatalf("expected seed work settings, got %+v", st.WorkSettings())
	}
}

func TestAddEmployeePersists(t *testing.T) {
	st, store := newTestState(t)
	emp, err := st.AddEmployee(NewEmployee{Name: "سارة خالد", Department: "المبيعات", BaseSalary: 9000})
	if err != nil {
		t.Fatalf("add employee failed: %v", err)
	}
	if emp.ID == "" {
		t.Fatal("expected generated id")
	}
	if emp.Status != core.StatusActive {
		t.Fatalf("expected default active status, got %s", emp.Status)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Employees) != 2 {
		t.Fatalf("expected mutation persisted, got %d employees", len(loaded.Employees))
	}
}

func TestAddEmployeeRequiresName(t *testing.T) {
	st, _ := newTestState(t)
	if _, err := st.AddEmployee(NewEmployee{BaseSalary: 1000}); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	st, _ := newTestState(t)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		emp, err := st.AddEmployee(NewEmployee{Name: "موظف"})
		if err != nil {
			t.Fatalf("add employee failed: %v", err)
		}
		if seen[emp.ID] {
			t.Fatalf("duplicate id %s", emp.ID)
		}
		seen[emp.ID] = true
	}
}

func TestDeleteEmployeeKeepsAttendance(t *testing.T) {
	st, _ := newTestState(t)
	if err := st.DeleteEmployee("1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(st.Employees()) != 0 {
		t.Fatal("expected empty roster")
	}
	// No cascade: attendance and leave rows keep the dangling employee id.
	if len(st.Attendance()) != 1 {
		t.Fatalf("expected attendance preserved, got %d", len(st.Attendance()))
	}
	if len(st.Leaves()) != 1 {
		t.Fatalf("expected leaves preserved, got %d", len(st.Leaves()))
	}

	if err := st.DeleteEmployee("missing"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestRecordAttendance(t *testing.T) {
	st, _ := newTestState(t)
	record, err := st.RecordAttendance(NewAttendance{
		EmployeeID: "1",
		Date:       "2024-05-21",
		CheckIn:    "08:10 ص",
		CheckOut:   "04:00 م",
		Status:     attendance.StatusLate,
		Notes:      "تأخر 10 دقائق",
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if record.EmployeeName != "محمد أحمد" {
		t.Fatalf("expected denormalized name snapshot, got %q", record.EmployeeName)
	}

	if _, err := st.RecordAttendance(NewAttendance{Date: "2024-05-21", Status: attendance.StatusPresent}); !errors.Is(err, ErrEmployeeRequired) {
		t.Fatalf("expected ErrEmployeeRequired, got %v", err)
	}
	if _, err := st.RecordAttendance(NewAttendance{EmployeeID: "1", Status: "vacation"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestLeaveLifecycle(t *testing.T) {
	st, _ := newTestState(t)
	request, err := st.SubmitLeave(NewLeave{EmployeeID: "1", Type: "إجازة مرضية", Duration: "يومان", From: "2024-07-01", To: "2024-07-02"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if request.Status != leave.StatusPending {
		t.Fatalf("expected pending, got %s", request.Status)
	}

	approved, err := st.SetLeaveStatus(request.ID, leave.StatusApproved)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != leave.StatusApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}

	// Terminal: an approved request cannot be reopened or flipped.
	if _, err := st.SetLeaveStatus(request.ID, leave.StatusPending); !errors.Is(err, leave.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := st.SetLeaveStatus(request.ID, leave.StatusRejected); !errors.Is(err, leave.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	if _, err := st.SetLeaveStatus("missing", leave.StatusApproved); !errors.Is(err, ErrLeaveNotFound) {
		t.Fatalf("expected ErrLeaveNotFound, got %v", err)
	}
}

func TestApplyPenaltyFreezesAmount(t *testing.T) {
	st, _ := newTestState(t)
	penalty, err := st.ApplyPenalty("1", "1", "2024-05-25")
	if err != nil {
		t.Fatalf("apply penalty failed: %v", err)
	}
	if penalty.AmountDeducted != 750 {
		t.Fatalf("expected 5%% of 15000 = 750, got %v", penalty.AmountDeducted)
	}

	// Replacing the violation type with a higher percentage must not change
	// the recorded penalty.
	if err := st.DeleteViolationType("1"); err != nil {
		t.Fatalf("delete violation failed: %v", err)
	}
	if _, err := st.AddViolationType("تأخير صباحي", 20); err != nil {
		t.Fatalf("add violation failed: %v", err)
	}

	emp, ok := st.Employee("1")
	if !ok {
		t.Fatal("employee missing")
	}
	if len(emp.Penalties) != 1 || emp.Penalties[0].AmountDeducted != 750 {
		t.Fatalf("penalty amount must stay frozen at 750, got %+v", emp.Penalties)
	}

	// The dangling reference resolves to the unknown placeholder.
	if name := core.ViolationName(st.ViolationTypes(), emp.Penalties[0].ViolationID); name != core.UnknownViolationName {
		t.Fatalf("expected unknown placeholder, got %q", name)
	}
}

func TestApplyPenaltyRequiresViolation(t *testing.T) {
	st, _ := newTestState(t)
	if _, err := st.ApplyPenalty("1", "", "2024-05-25"); !errors.Is(err, ErrViolationRequired) {
		t.Fatalf("expected ErrViolationRequired, got %v", err)
	}
	if _, err := st.ApplyPenalty("1", "missing", "2024-05-25"); !errors.Is(err, ErrViolationRequired) {
		t.Fatalf("expected ErrViolationRequired for unknown id, got %v", err)
	}
	if _, err := st.ApplyPenalty("missing", "1", "2024-05-25"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestResetDropsSnapshot(t *testing.T) {
	st, store := newTestState(t)
	if _, err := st.AddEmployee(NewEmployee{Name: "سارة"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := st.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after reset, got %v", err)
	}

	// A fresh session starts from seed data again.
	fresh := New(store)
	if len(fresh.Employees()) != 1 || fresh.Employees()[0].ID != "1" {
		t.Fatalf("expected seed roster after reset, got %+v", fresh.Employees())
	}
}

func TestUpdateWorkSettings(t *testing.T) {
	st, store := newTestState(t)
	settings := core.WorkSettings{
		WorkingDays: []string{"الأحد", "الاثنين"},
		StartTime:   "09:00",
		EndTime:     "17:00",
	}
	if err := st.UpdateWorkSettings(settings); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.WorkSettings == nil || loaded.WorkSettings.StartTime != "09:00" {
		t.Fatalf("expected persisted settings, got %+v", loaded.WorkSettings)
	}
}
