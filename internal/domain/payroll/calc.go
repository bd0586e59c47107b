package payroll

import (
	"hrpro/internal/domain/attendance"
	"hrpro/internal/domain/core"
)

// All figures are derived on demand from the live dataset; nothing in this
// package caches or persists a computed payroll.

func DailyRate(baseSalary float64) float64 {
	return baseSalary / WorkingDaysPerMonth
}

// Absences collects the employee's absent records in log order. Records are
// not deduplicated by date: two absent entries on the same day count twice.
func Absences(emp core.Employee, log []attendance.Record) AbsenceSummary {
	summary := AbsenceSummary{Dates: []string{}}
	for _, record := range log {
		if record.EmployeeID != emp.ID || record.Status != attendance.StatusAbsent {
			continue
		}
		summary.Count++
		summary.Dates = append(summary.Dates, record.Date)
	}
	summary.Amount = float64(summary.Count) * DailyRate(emp.BaseSalary)
	return summary
}

// ViolationDeduction sums the frozen penalty amounts. It never consults the
// violation catalog, so later percentage edits do not change past penalties.
func ViolationDeduction(emp core.Employee) float64 {
	var total float64
	for _, penalty := range emp.Penalties {
		total += penalty.AmountDeducted
	}
	return total
}

// PenaltyAmount computes the deduction snapshotted onto a new penalty.
func PenaltyAmount(baseSalary, deductionPercentage float64) float64 {
	return baseSalary * deductionPercentage / 100
}

// Compute derives the full financial breakdown for one employee. Net salary
// is not clamped and may go negative.
func Compute(emp core.Employee, log []attendance.Record) Breakdown {
	absences := Absences(emp, log)
	violations := ViolationDeduction(emp)
	total := absences.Amount + violations
	return Breakdown{
		EmployeeID:         emp.ID,
		EmployeeName:       emp.Name,
		Department:         emp.Department,
		Base:               emp.BaseSalary,
		AbsenceCount:       absences.Count,
		AbsenceDeduction:   absences.Amount,
		ViolationDeduction: violations,
		TotalDeductions:    total,
		NetSalary:          emp.BaseSalary - total,
		AbsenceDates:       absences.Dates,
	}
}

func Aggregate(employees []core.Employee, log []attendance.Record) Totals {
	var totals Totals
	for _, emp := range employees {
		breakdown := Compute(emp, log)
		totals.TotalBase += breakdown.Base
		totals.TotalAbsenceDeduction += breakdown.AbsenceDeduction
		totals.TotalViolationDeduction += breakdown.ViolationDeduction
	}
	totals.TotalNet = totals.TotalBase - totals.TotalAbsenceDeduction - totals.TotalViolationDeduction
	return totals
}

// NetByDepartment sums net salaries per distinct department string,
// case-sensitive exact match.
func NetByDepartment(employees []core.Employee, log []attendance.Record) map[string]float64 {
	byDept := make(map[string]float64)
	for _, emp := range employees {
		byDept[emp.Department] += Compute(emp, log).NetSalary
	}
	return byDept
}
