package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hrpro/internal/domain/attendance"
	"hrpro/internal/domain/core"
	"hrpro/internal/domain/payroll"
)

// utf8BOM makes spreadsheet tools detect the encoding so the Arabic headers
// render correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var attendanceStatusLabels = map[string]string{
	attendance.StatusPresent: "حاضر",
	attendance.StatusAbsent:  "غائب",
	attendance.StatusLate:    "متأخر",
}

func attendanceStatusLabel(status string) string {
	if label, ok := attendanceStatusLabels[status]; ok {
		return label
	}
	return status
}

func writeCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	writer := csv.NewWriter(&buf)
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// StampFilename appends the current date to an export base name.
func StampFilename(base, ext string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", base, now.Format("2006-01-02"), ext)
}

// AttendanceCSV renders the full attendance log.
func AttendanceCSV(log []attendance.Record) ([]byte, error) {
	headers := []string{"اسم الموظف", "التاريخ", "وقت الدخول", "وقت الخروج", "الحالة", "ملاحظات"}
	rows := make([][]string, 0, len(log))
	for _, record := range log {
		rows = append(rows, []string{
			record.EmployeeName,
			record.Date,
			record.CheckIn,
			record.CheckOut,
			attendanceStatusLabel(record.Status),
			record.Notes,
		})
	}
	return writeCSV(headers, rows)
}

// AbsenceCSV renders the absence-only report: one row per employee with the
// absence day count and the pipe-joined absence dates.
func AbsenceCSV(employees []core.Employee, log []attendance.Record) ([]byte, error) {
	headers := []string{"اسم الموظف", "عدد أيام الغياب", "تواريخ الغياب"}
	rows := make([][]string, 0, len(employees))
	for _, emp := range employees {
		summary := payroll.Absences(emp, log)
		dates := strings.Join(summary.Dates, " | ")
		if dates == "" {
			dates = "لا يوجد"
		}
		rows = append(rows, []string{emp.Name, strconv.Itoa(summary.Count), dates})
	}
	return writeCSV(headers, rows)
}

// PayrollCSV renders the full payroll register, one row per employee.
func PayrollCSV(employees []core.Employee, log []attendance.Record) ([]byte, error) {
	headers := []string{"اسم الموظف", "الراتب الأساسي", "أيام الغياب", "خصم الغياب", "خصم المخالفات", "إجمالي الخصومات", "صافي الراتب"}
	rows := make([][]string, 0, len(employees))
	for _, emp := range employees {
		breakdown := payroll.Compute(emp, log)
		rows = append(rows, []string{
			emp.Name,
			formatAmount(breakdown.Base),
			strconv.Itoa(breakdown.AbsenceCount),
			formatAmount(breakdown.AbsenceDeduction),
			formatAmount(breakdown.ViolationDeduction),
			formatAmount(breakdown.TotalDeductions),
			formatAmount(breakdown.NetSalary),
		})
	}
	return writeCSV(headers, rows)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
