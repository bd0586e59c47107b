package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"hrpro/internal/domain/attendance"
	"hrpro/internal/domain/core"
	"hrpro/internal/domain/payroll"
)

// PayrollXLSX writes the payroll register as a workbook: one row per
// employee plus a totals row. Same figures as PayrollCSV.
func PayrollXLSX(w io.Writer, employees []core.Employee, log []attendance.Record) error {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)
	headers := []any{"اسم الموظف", "الراتب الأساسي", "أيام الغياب", "خصم الغياب", "خصم المخالفات", "إجمالي الخصومات", "صافي الراتب"}
	if err := file.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("write register header: %w", err)
	}

	for i, emp := range employees {
		breakdown := payroll.Compute(emp, log)
		row := []any{
			emp.Name,
			breakdown.Base,
			breakdown.AbsenceCount,
			breakdown.AbsenceDeduction,
			breakdown.ViolationDeduction,
			breakdown.TotalDeductions,
			breakdown.NetSalary,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("register cell: %w", err)
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write register row: %w", err)
		}
	}

	totals := payroll.Aggregate(employees, log)
	totalsCell, err := excelize.CoordinatesToCellName(1, len(employees)+2)
	if err != nil {
		return fmt.Errorf("register totals cell: %w", err)
	}
	totalsRow := []any{
		"الإجمالي",
		totals.TotalBase,
		"",
		totals.TotalAbsenceDeduction,
		totals.TotalViolationDeduction,
		totals.TotalAbsenceDeduction + totals.TotalViolationDeduction,
		totals.TotalNet,
	}
	if err := file.SetSheetRow(sheet, totalsCell, &totalsRow); err != nil {
		return fmt.Errorf("write register totals: %w", err)
	}

	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("render register: %w", err)
	}
	return nil
}
