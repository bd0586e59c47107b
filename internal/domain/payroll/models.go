package payroll

type AbsenceSummary struct {
	Count  int      `json:"count"`
	Amount float64  `json:"amount"`
	Dates  []string `json:"dates"`
}

type Breakdown struct {
	EmployeeID         string   `json:"employeeId"`
	EmployeeName       string   `json:"employeeName"`
	Department         string   `json:"department"`
	Base               float64  `json:"base"`
	AbsenceCount       int      `json:"absenceCount"`
	AbsenceDeduction   float64  `json:"absenceDeduction"`
	ViolationDeduction float64  `json:"violationDeduction"`
	TotalDeductions    float64  `json:"totalDeductions"`
	NetSalary          float64  `json:"netSalary"`
	AbsenceDates       []string `json:"absenceDates"`
}

type Totals struct {
	TotalBase               float64 `json:"totalBase"`
	TotalAbsenceDeduction   float64 `json:"totalAbsenceDeduction"`
	TotalViolationDeduction float64 `json:"totalViolationDeduction"`
	TotalNet                float64 `json:"totalNet"`
}
