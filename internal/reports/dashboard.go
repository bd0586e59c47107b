package reports

import (
	"hrpro/internal/domain/attendance"
	"hrpro/internal/domain/core"
	"hrpro/internal/domain/payroll"
)

type DashboardSummary struct {
	TotalEmployees      int                `json:"totalEmployees"`
	ActiveEmployees     int                `json:"activeEmployees"`
	OnLeaveEmployees    int                `json:"onLeaveEmployees"`
	TotalBaseSalary     float64            `json:"totalBaseSalary"`
	DepartmentHeadcount map[string]int     `json:"departmentHeadcount"`
	DepartmentNetTotals map[string]float64 `json:"departmentNetTotals"`
}

// Dashboard derives the landing-page figures from the live roster; nothing
// here is cached or stored.
func Dashboard(employees []core.Employee, log []attendance.Record) DashboardSummary {
	summary := DashboardSummary{
		TotalEmployees:      len(employees),
		DepartmentHeadcount: make(map[string]int),
		DepartmentNetTotals: payroll.NetByDepartment(employees, log),
	}
	for _, emp := range employees {
		summary.TotalBaseSalary += emp.BaseSalary
		summary.DepartmentHeadcount[emp.Department]++
		switch emp.Status {
		case core.StatusActive:
			summary.ActiveEmployees++
		case core.StatusOnLeave:
			summary.OnLeaveEmployees++
		}
	}
	return summary
}
