package reports

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"hrpro/internal/domain/attendance"
	"hrpro/internal/domain/core"
)

func TestAttendanceCSVStartsWithBOM(t *testing.T) {
	out, err := AttendanceCSV([]attendance.Record{
		{EmployeeName: "محمد أحمد", Date: "2024-05-20", CheckIn: "08:00 ص", CheckOut: "04:00 م", Status: attendance.StatusPresent},
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("expected UTF-8 BOM prefix")
	}
	body := string(out)
	if !strings.Contains(body, "اسم الموظف") {
		t.Fatal("expected Arabic header row")
	}
	if !strings.Contains(body, "حاضر") {
		t.Fatal("expected localized status label")
	}
}

func TestAttendanceCSVEscapesQuotes(t *testing.T) {
	out, err := AttendanceCSV([]attendance.Record{
		{EmployeeName: `موظف "تجريبي"`, Date: "2024-05-20", Status: attendance.StatusLate, Notes: "وصل, متأخراً"},
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	body := string(out)
	if !strings.Contains(body, `"موظف ""تجريبي"""`) {
		t.Fatalf("expected doubled internal quotes, got:\n%s", body)
	}
	if !strings.Contains(body, `"وصل, متأخراً"`) {
		t.Fatalf("expected quoted comma field, got:\n%s", body)
	}
}

func TestAbsenceCSV(t *testing.T) {
	employees := []core.Employee{
		{ID: "1", Name: "محمد أحمد", BaseSalary: 15000},
		{ID: "2", Name: "سارة خالد", BaseSalary: 9000},
	}
	log := []attendance.Record{
		{EmployeeID: "1", Date: "2024-05-20", Status: attendance.StatusAbsent},
		{EmployeeID: "1", Date: "2024-05-22", Status: attendance.StatusAbsent},
	}

	out, err := AbsenceCSV(employees, log)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	body := string(out)
	if !strings.Contains(body, "2024-05-20 | 2024-05-22") {
		t.Fatalf("expected joined absence dates, got:\n%s", body)
	}
	// Employees with no absences get the placeholder, not an empty cell.
	if !strings.Contains(body, "لا يوجد") {
		t.Fatalf("expected no-absence placeholder, got:\n%s", body)
	}
}

func TestPayrollCSVFigures(t *testing.T) {
	employees := []core.Employee{
		{
			ID:         "1",
			Name:       "محمد أحمد",
			BaseSalary: 15000,
			Penalties:  []core.Penalty{{AmountDeducted: 750}},
		},
	}
	log := []attendance.Record{
		{EmployeeID: "1", Date: "2024-05-20", Status: attendance.StatusAbsent},
	}

	out, err := PayrollCSV(employees, log)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	body := string(out)
	for _, want := range []string{"15000.00", "500.00", "750.00", "1250.00", "13750.00"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in register, got:\n%s", want, body)
		}
	}
}

func TestStampFilename(t *testing.T) {
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	if got := StampFilename("payroll-register", "csv", now); got != "payroll-register-2024-05-20.csv" {
		t.Fatalf("unexpected filename %q", got)
	}
}
