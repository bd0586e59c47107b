package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"hrpro/internal/domain/attendance"
	"hrpro/internal/domain/core"
	"hrpro/internal/domain/payroll"
)

// PayslipPDF writes a one-page payslip for the employee, recomputed from the
// live attendance log at generation time.
func PayslipPDF(w io.Writer, emp core.Employee, log []attendance.Record, now time.Time) error {
	breakdown := payroll.Compute(emp, log)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", emp.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", emp.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", now.Format("2006-01-02")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Base salary: %.2f", breakdown.Base))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Absence days: %d", breakdown.AbsenceCount))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Absence deduction: %.2f", breakdown.AbsenceDeduction))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Violation deduction: %.2f", breakdown.ViolationDeduction))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total deductions: %.2f", breakdown.TotalDeductions))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %.2f", breakdown.NetSalary))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render payslip: %w", err)
	}
	return nil
}
