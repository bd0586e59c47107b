package db

import (
	"hrpro/internal/domain/attendance"
	"hrpro/internal/domain/core"
	"hrpro/internal/domain/leave"
)

// Seed returns the dataset a fresh installation starts from.
func Seed() Dataset {
	return Dataset{
		Employees: []core.Employee{
			{
				ID:            "1",
				Name:          "محمد أحمد",
				Position:      "مبرمج أول",
				Department:    "التطوير",
				Email:         "m.ahmed@example.com",
				Phone:         "0501234567",
				Nationality:   "سعودي",
				Gender:        "ذكر",
				MaritalStatus: "متزوج",
				Status:        core.StatusActive,
				JoinDate:      "2022-01-15",
				BaseSalary:    15000,
				Penalties:     []core.Penalty{},
			},
		},
		Attendance: []attendance.Record{
			{
				ID:           "1",
				EmployeeID:   "1",
				EmployeeName: "محمد أحمد",
				Date:         "2024-05-20",
				CheckIn:      "08:00 ص",
				CheckOut:     "04:00 م",
				Status:       attendance.StatusPresent,
			},
		},
		Leaves: []leave.Request{
			{
				ID:           "1",
				EmployeeID:   "1",
				EmployeeName: "محمد أحمد",
				Type:         "إجازة سنوية",
				Duration:     "5 أيام",
				From:         "2024-06-01",
				To:           "2024-06-05",
				Status:       leave.StatusPending,
			},
		},
		ViolationTypes: []core.ViolationType{
			{ID: "1", Name: "تأخير صباحي", DeductionPercentage: 5},
		},
		WorkSettings: &core.WorkSettings{
			WorkingDays: []string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس"},
			StartTime:   "08:00",
			EndTime:     "16:00",
		},
	}
}
