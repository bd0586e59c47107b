package reports

import (
	"bytes"
	"testing"
	"time"

	"hrpro/internal/domain/attendance"
	"hrpro/internal/domain/core"
)

func TestPayslipPDF(t *testing.T) {
	emp := core.Employee{
		ID:         "1",
		Name:       "محمد أحمد",
		Department: "التطوير",
		BaseSalary: 15000,
		Penalties:  []core.Penalty{{AmountDeducted: 750}},
	}
	log := []attendance.Record{
		{EmployeeID: "1", Date: "2024-05-20", Status: attendance.StatusAbsent},
	}

	var buf bytes.Buffer
	if err := PayslipPDF(&buf, emp, log, time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("expected PDF magic bytes")
	}
	// A one-page payslip with the figure rows is well past this floor; an
	// empty or truncated render is not.
	if buf.Len() < 500 {
		t.Fatalf("suspiciously small payslip: %d bytes", buf.Len())
	}
}
